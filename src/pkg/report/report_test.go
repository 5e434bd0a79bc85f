package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"valuation-report/src/pkg/extract"
)

func TestFormatMoney(t *testing.T) {
	require.Equal(t, "1,234,567.89", FormatMoney(1234567.891))
	require.Equal(t, "1,234.50", FormatMoney(1234.5))
	require.Equal(t, "-1,234.50", FormatMoney(-1234.5))
	require.Equal(t, "0.00", FormatMoney(0))
	require.Equal(t, "999.99", FormatMoney(999.99))
}

func TestFormatDates(t *testing.T) {
	date := time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "22 de Febrero de 2026", FormatDateLong(date))
	require.Equal(t, "22-Feb-2026", FormatDateShort(date))

	// Peruvian spelling for September.
	september := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "7 de Setiembre de 2026", FormatDateLong(september))
	require.Equal(t, "07-Set-2026", FormatDateShort(september))

	require.Equal(t, "", FormatDateLong(time.Time{}))
	require.Equal(t, "", FormatDateShort(time.Time{}))
}

func TestSuggestedFileName(t *testing.T) {
	record := extract.ProjectRecord{
		ShortName: "ALMA MATER",
		Date:      time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC),
	}
	require.Equal(
		t, "COS-PR02-FR02_VAL_SEMANAL_ALMA_MATER_22-Feb-2026.html",
		SuggestedFileName(record),
	)

	require.Equal(
		t, "COS-PR02-FR02_VAL_SEMANAL_REPORTE.html",
		SuggestedFileName(extract.ProjectRecord{}),
	)
}

func TestCompareAmounts(t *testing.T) {
	comparison := CompareAmounts(150000, 140000)
	require.Equal(t, 10000.0, comparison.Variance)
	require.InDelta(t, 7.14, comparison.VariancePct, 0.01)
	require.Equal(t, StateGanancia, comparison.State)

	comparison = CompareAmounts(100000, 120000)
	require.Equal(t, -20000.0, comparison.Variance)
	require.Equal(t, StatePerdida, comparison.State)

	comparison = CompareAmounts(100000, 0)
	require.Equal(t, 0.0, comparison.VariancePct, "zero executed must not divide")
	require.Equal(t, StateGanancia, comparison.State)
}

func TestValuationTotals(t *testing.T) {
	rval := extract.ValuationSummary{
		CostoDirecto:    40000,
		GastosGenerales: 5000,
		Utilidad:        3200,
	}

	subTotal, igv, totalConIGV := ValuationTotals(rval)
	require.Equal(t, 48200.0, subTotal)
	require.InDelta(t, 8676.0, igv, 0.001)
	require.InDelta(t, 56876.0, totalConIGV, 0.001)
}

func TestSpreadLabels(t *testing.T) {
	badges := []valueBadge{
		{Y: 100, Text: "a"},
		{Y: 100, Text: "b"},
		{Y: 100, Text: "c"},
	}

	spread := spreadLabels(badges, badgeMinSeparation)

	require.Len(t, spread, 3)
	for index := 1; index < len(spread); index += 1 {
		gap := spread[index].Y - spread[index-1].Y
		require.GreaterOrEqual(t, gap, badgeMinSeparation, "badges must not overlap")
	}

	// Pushes are symmetric, so the centroid stays put.
	centroid := (spread[0].Y + spread[1].Y + spread[2].Y) / 3
	require.InDelta(t, 100.0, centroid, 0.001)
}

func TestSpreadLabelsLeavesDistantBadgesAlone(t *testing.T) {
	badges := []valueBadge{
		{Y: 200, Text: "low"},
		{Y: 50, Text: "high"},
	}

	spread := spreadLabels(badges, badgeMinSeparation)

	require.Equal(t, 50.0, spread[0].Y)
	require.Equal(t, 200.0, spread[1].Y)
}

func buildProgressSeries() *extract.ProgressSeries {
	return &extract.ProgressSeries{
		Contractual: []extract.MonthPoint{
			{Mes: "INICIO 5/1/2026", Parcial: 0, Acumulado: 0, AcumPct: 0},
			{Mes: "Ene 2026", Parcial: 100000, Acumulado: 100000, AcumPct: 0.10},
			{Mes: "Feb 2026", Parcial: 150000, Acumulado: 250000, AcumPct: 0.234},
		},
		Valorizado: []extract.MonthPoint{
			{Mes: "INICIO 5/1/2026"},
			{Mes: "Ene 2026", Parcial: 90000, Acumulado: 90000, AcumPct: 0.09},
			{Mes: "Feb 2026"},
		},
		MesActualIndex: 1,
		Total:          1000000,
	}
}

func buildRecord(curva *extract.ProgressSeries) extract.ProjectRecord {
	return extract.ProjectRecord{
		ResCosto: extract.CostBreakdown{
			PersonalObrero: 17000,
			Materiales:     8000,
			Alquileres:     3000,
			Subcontratos:   4000,
			CostosVarios:   1000,
			PlanillaStaff:  6000,
			OtrosGG:        1500,
			TotalCD:        33000,
			TotalGG:        7500,
		},
		Rval: extract.ValuationSummary{
			CostoDirecto:    40000,
			GastosGenerales: 5000,
			GGPercent:       12.5,
			Utilidad:        3200,
			UtilPercent:     8,
		},
		Curva:       curva,
		ProjectName: "EDIFICIO BEETHOVEN - ETAPA II",
		ShortName:   "BEETHOVEN",
		Date:        time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC),
	}
}

func TestRenderCurveSVG(t *testing.T) {
	curva := buildProgressSeries()
	window := buildZoomWindow(curva, false)

	svg := renderCurveSVG(window, false)

	require.Contains(t, svg, "<svg")
	require.Contains(t, svg, "HOY")
	require.Contains(t, svg, "PROYECCI")
	require.Contains(t, svg, "INICIO<")

	// Max accumulated is 23.4%, so the scale tops out at 27%: a 25% grid
	// line exists, a 30% one does not.
	require.Contains(t, svg, ">25%<")
	require.NotContains(t, svg, ">30%<")
}

func TestRenderCurveSVGPlaceholders(t *testing.T) {
	single := []zoomPoint{{Prog: extract.MonthPoint{Mes: "Ene 2026", AcumPct: 0.10}}}
	require.Equal(t, "<p>Datos insuficientes para grafico</p>", renderCurveSVG(single, false))

	flat := []zoomPoint{
		{Prog: extract.MonthPoint{Mes: "Ene 2026"}},
		{Prog: extract.MonthPoint{Mes: "Feb 2026"}},
	}
	require.Equal(t, "<p>Sin datos de porcentaje</p>", renderCurveSVG(flat, false))
}

func TestRenderCurveSVGAllProjectionWindow(t *testing.T) {
	curva := buildProgressSeries()
	curva.MesActualIndex = -1

	window := buildZoomWindow(curva, false)
	svg := renderCurveSVG(window, false)

	require.Contains(t, svg, "<svg")
	require.Contains(t, svg, "PROYECCI")
	require.NotContains(t, svg, "HOY")
}

func TestGenerateCurvaWithoutExecutedData(t *testing.T) {
	// A fresh project: contractual months exist, nothing valorized yet.
	curva := buildProgressSeries()
	curva.MesActualIndex = -1
	curva.Valorizado = []extract.MonthPoint{
		{Mes: "INICIO 5/1/2026"}, {Mes: "Ene 2026"}, {Mes: "Feb 2026"},
	}

	htmlDocument, _ := Generate(buildRecord(curva))

	require.Equal(t, 2, strings.Count(htmlDocument, `<div class="page">`))
	require.Contains(t, htmlDocument, "<svg")
	require.Contains(t, htmlDocument, "PROYECCI")
	require.NotContains(t, htmlDocument, "HOY")

	// Cards fall back to the last contractual month.
	require.Contains(t, htmlDocument, "25.00%")
}

func TestGenerateSinglePageWithoutCurva(t *testing.T) {
	htmlDocument, fileName := Generate(buildRecord(nil))

	require.Equal(t, 1, strings.Count(htmlDocument, `<div class="page">`))
	require.Contains(t, htmlDocument, "REPORTE DE VALORIZACI")
	require.Contains(t, htmlDocument, "BEETHOVEN")
	require.Contains(t, htmlDocument, "22 de Febrero de 2026")
	require.Equal(t, "COS-PR02-FR02_VAL_SEMANAL_BEETHOVEN_22-Feb-2026.html", fileName)
}

func TestGenerateTwoPagesWithCurva(t *testing.T) {
	htmlDocument, _ := Generate(buildRecord(buildProgressSeries()))

	require.Equal(t, 2, strings.Count(htmlDocument, `<div class="page">`))
	require.Contains(t, htmlDocument, "CURVA S - AVANCE ACUMULADO")
	require.Contains(t, htmlDocument, "<svg")
	require.Contains(t, htmlDocument, "<!DOCTYPE html>")
	require.Contains(t, htmlDocument, "@page { size: A4 portrait")
}

func TestGenerateValuationNumbers(t *testing.T) {
	htmlDocument, _ := Generate(buildRecord(nil))

	// Valuation cut: subtotal 48,200.00, IGV 8,676.00, total 56,876.00.
	require.Contains(t, htmlDocument, "48,200.00")
	require.Contains(t, htmlDocument, "8,676.00")
	require.Contains(t, htmlDocument, "56,876.00")

	// Comparative: CD 40,000 vs 33,000 executed is a gain.
	require.Contains(t, htmlDocument, "GANANCIA")
}

func TestGenerateDoesNotMutateRecord(t *testing.T) {
	curva := buildProgressSeries()
	record := buildRecord(curva)

	before := *curva
	beforeContractual := append([]extract.MonthPoint(nil), curva.Contractual...)

	_, _ = Generate(record)

	require.Equal(t, before.MesActualIndex, curva.MesActualIndex)
	require.Equal(t, before.Total, curva.Total)
	require.Equal(t, beforeContractual, curva.Contractual)
}

func TestGenerateOneMonthCurvaShowsPlaceholder(t *testing.T) {
	curva := &extract.ProgressSeries{
		Contractual:    []extract.MonthPoint{{Mes: "Ene 2026", AcumPct: 0.10}},
		Valorizado:     []extract.MonthPoint{{Mes: "Ene 2026", AcumPct: 0.08, Acumulado: 80000}},
		MesActualIndex: 0,
	}

	htmlDocument, _ := Generate(buildRecord(curva))

	require.Equal(t, 2, strings.Count(htmlDocument, `<div class="page">`))
	require.Contains(t, htmlDocument, "Datos insuficientes para grafico")
}
