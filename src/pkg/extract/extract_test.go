package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"valuation-report/src/pkg/workbook"
)

func buildResCostoSheet() *workbook.Sheet {
	sheet := workbook.NewSheet(SheetResCosto)

	sheet.Set(3, 1, "Proyecto:")
	sheet.Set(3, 2, "EDIFICIO BEETHOVEN - ETAPA II")
	sheet.Set(4, 1, "Elaborado por")
	sheet.Set(4, 2, "Ing. Quispe")
	sheet.Set(5, 5, "Fecha")
	sheet.Set(5, 6, time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC))

	sheet.Set(10, 1, "COSTO PERSONAL DE OBRERO")
	sheet.Set(11, 1, 1)
	sheet.Set(11, 2, "Capataz")
	sheet.Set(11, 3, 10000.0)
	sheet.Set(12, 1, 2)
	sheet.Set(12, 2, "Operario")
	sheet.Set(12, 3, 5000.0)
	sheet.Set(13, 1, "nota: incluye bonos de asistencia")
	sheet.Set(14, 1, 3)
	sheet.Set(14, 2, "Peon")
	sheet.Set(14, 3, 2000.0)

	sheet.Set(15, 1, "MATERIALES")
	sheet.Set(16, 1, 1)
	sheet.Set(16, 2, "Cemento")
	sheet.Set(16, 3, 8000.0)

	sheet.Set(17, 1, "ALQUILERES")
	sheet.Set(18, 1, 1)
	sheet.Set(18, 2, "Grua torre")
	sheet.Set(18, 3, 3000.0)

	sheet.Set(19, 1, "SUBCONTRATO")
	sheet.Set(20, 1, 1)
	sheet.Set(20, 2, "Instalaciones electricas")
	sheet.Set(20, 3, 4000.0)

	sheet.Set(21, 1, "COSTOS VARIOS")
	sheet.Set(22, 1, 1)
	sheet.Set(22, 2, "Otros")
	sheet.Set(22, 3, 1000.0)

	sheet.Set(23, 1, "COSTO DE OBRA GG")
	sheet.Set(24, 1, 1)
	sheet.Set(24, 2, "Planilla Staff")
	sheet.Set(24, 3, 6000.0)
	sheet.Set(25, 1, 2)
	sheet.Set(25, 2, "Seguros y polizas")
	sheet.Set(25, 3, 1500.0)

	return sheet
}

func buildRvalSheet() *workbook.Sheet {
	sheet := workbook.NewSheet(SheetRval)

	sheet.Set(3, 1, "Proyecto")
	sheet.Set(3, 2, "EDIFICIO BEETHOVEN - ETAPA II")

	// Near miss: mentions COSTO DIRECTO but is a composite total row.
	sheet.Set(11, 2, "COSTO DIRECTO TOTAL")
	sheet.Set(11, 6, 99999.0)

	sheet.Set(12, 2, "COSTO DIRECTO")
	sheet.Set(12, 6, 40000.0)
	sheet.Set(13, 2, "GASTOS GENERALES (12.5%)")
	sheet.Set(13, 6, 5000.0)
	sheet.Set(14, 2, "UTILIDAD (8%)")
	sheet.Set(14, 6, 3200.0)
	sheet.Set(16, 2, "TOTAL VALORIZACION")
	sheet.Set(16, 6, 56876.0)

	return sheet
}

func buildCurvaSheet(withTotalRow bool) *workbook.Sheet {
	sheet := workbook.NewSheet(SheetCurva)

	sheet.Set(1, 12, "PLANIFICADO")

	// Row 6: project start, everything at zero.
	sheet.Set(6, 0, "INICIO 5/1/2026")
	sheet.Set(6, 1, 0.0)
	sheet.Set(6, 2, 0.0)
	sheet.Set(6, 3, 0.0)
	sheet.Set(6, 4, 0.0)

	// Row 7: the executed month.
	sheet.Set(7, 0, "Ene 2026")
	sheet.Set(7, 1, 100000.0)
	sheet.Set(7, 2, 100000.0)
	sheet.Set(7, 3, 0.10)
	sheet.Set(7, 4, 0.10)
	sheet.Set(7, 7, 90000.0)
	sheet.Set(7, 8, 90000.0)
	sheet.Set(7, 9, 0.09)
	sheet.Set(7, 10, 0.09)
	sheet.Set(7, 13, 95000.0)
	sheet.Set(7, 14, 95000.0)
	sheet.Set(7, 15, 0.095)
	sheet.Set(7, 16, 0.095)

	// Row 8: contractual only, no executed data yet.
	sheet.Set(8, 0, "Feb 2026")
	sheet.Set(8, 1, 150000.0)
	sheet.Set(8, 2, 250000.0)
	sheet.Set(8, 3, 0.15)
	sheet.Set(8, 4, 0.25)
	sheet.Set(8, 13, 140000.0)
	sheet.Set(8, 14, 235000.0)
	sheet.Set(8, 15, 0.14)
	sheet.Set(8, 16, 0.235)

	if withTotalRow {
		sheet.Set(9, 0, "TOTAL")
		sheet.Set(9, 1, 1000000.0)
	}

	return sheet
}

func TestProcessWorkbookMissingMandatorySheet(t *testing.T) {
	wb := workbook.NewWorkbook(buildResCostoSheet())

	_, e := ProcessWorkbook(wb)
	require.NotNil(t, e, "missing RVAL must be fatal")

	wb = workbook.NewWorkbook(buildRvalSheet())
	_, e = ProcessWorkbook(wb)
	require.NotNil(t, e, "missing RES-COSTO must be fatal")
}

func TestProcessWorkbookWithoutCurva(t *testing.T) {
	wb := workbook.NewWorkbook(buildResCostoSheet(), buildRvalSheet())

	record, e := ProcessWorkbook(wb)
	require.Nil(t, e)
	require.Nil(t, record.Curva, "missing CURVA is not an error")

	require.Equal(t, "EDIFICIO BEETHOVEN - ETAPA II", record.ProjectName)
	require.Equal(t, "BEETHOVEN", record.ShortName)
	require.Equal(t, "Ing. Quispe", record.Author)
	require.Equal(t, 2026, record.Date.Year())
	require.Equal(t, time.February, record.Date.Month())
}

func TestExtractResCostoCategoryFold(t *testing.T) {
	result := extractResCosto(buildResCostoSheet())

	// The annotation row inside the block must not orphan the Peon row.
	require.Equal(t, 17000.0, result.PersonalObrero)
	require.Equal(t, 8000.0, result.Materiales)
	require.Equal(t, 3000.0, result.Alquileres)
	require.Equal(t, 4000.0, result.Subcontratos)
	require.Equal(t, 1000.0, result.CostosVarios)

	// GG rows route by description: staff vs everything else.
	require.Equal(t, 6000.0, result.PlanillaStaff)
	require.Equal(t, 1500.0, result.OtrosGG)

	// Totals are recomputed from components.
	require.Equal(t, 33000.0, result.TotalCD)
	require.Equal(t, 7500.0, result.TotalGG)

	require.Equal(t, "EDIFICIO BEETHOVEN - ETAPA II", result.ProjectName)
	require.Equal(t, "Ing. Quispe", result.Author)
	require.Equal(t, 22, result.Date.Day())
}

func TestExtractRvalLabelAnchoring(t *testing.T) {
	result := extractRval(buildRvalSheet())

	require.Equal(t, 40000.0, result.CostoDirecto, "composite COSTO DIRECTO TOTAL row must not win")
	require.Equal(t, 5000.0, result.GastosGenerales)
	require.Equal(t, 12.5, result.GGPercent)
	require.Equal(t, 3200.0, result.Utilidad)
	require.Equal(t, 8.0, result.UtilPercent)
	require.Equal(t, 56876.0, result.TotalValorizacion)
}

func TestExtractRvalRepairsPercentFromAmount(t *testing.T) {
	sheet := workbook.NewSheet(SheetRval)
	sheet.Set(12, 2, "COSTO DIRECTO")
	sheet.Set(12, 6, 30000.0)
	sheet.Set(13, 2, "GASTOS GENERALES")
	sheet.Set(13, 6, 5000.0)

	result := extractRval(sheet)

	require.InDelta(t, 16.67, result.GGPercent, 0.01, "missing percent is derived from amounts")
	require.Equal(t, 5000.0, result.GastosGenerales)
}

func TestExtractRvalRepairsAmountFromPercent(t *testing.T) {
	sheet := workbook.NewSheet(SheetRval)
	sheet.Set(12, 2, "COSTO DIRECTO")
	sheet.Set(12, 6, 30000.0)
	sheet.Set(14, 2, "UTILIDAD (8%)")

	result := extractRval(sheet)

	require.Equal(t, 8.0, result.UtilPercent)
	require.Equal(t, 2400.0, result.Utilidad, "missing amount is derived from the label percent")
}

func TestExtractCurva(t *testing.T) {
	series := extractCurva(buildCurvaSheet(true))

	require.Len(t, series.Contractual, 3, "TOTAL sentinel row is not a month")
	require.Len(t, series.Valorizado, 3)
	require.Len(t, series.Proyectado, 3)

	require.Equal(t, 1, series.MesActualIndex, "last month with executed data")
	require.Equal(t, 1000000.0, series.Total)

	require.Equal(t, "INICIO 5/1/2026", series.Contractual[0].Mes)
	require.Equal(t, 0.25, series.Contractual[2].AcumPct)
	require.Equal(t, 90000.0, series.Valorizado[1].Acumulado)
	require.Equal(t, 0.095, series.Proyectado[1].AcumPct)

	// Accumulated contractual percentages never decrease.
	for index := 1; index < len(series.Contractual); index += 1 {
		require.GreaterOrEqual(
			t, series.Contractual[index].AcumPct, series.Contractual[index-1].AcumPct,
		)
	}
}

func TestExtractCurvaTotalDefaultsToLastAcumulado(t *testing.T) {
	series := extractCurva(buildCurvaSheet(false))

	require.Equal(t, 250000.0, series.Total)
}

func TestExtractCurvaWithoutForecastGroup(t *testing.T) {
	sheet := buildCurvaSheet(true)
	bare := workbook.NewSheet(SheetCurva)
	for row := 6; row <= 9; row += 1 {
		for column := 0; column <= 10; column += 1 {
			bare.Set(row, column, sheet.Cell(row, column))
		}
	}

	series := extractCurva(bare)

	require.Nil(t, series.Proyectado)
	require.Len(t, series.Contractual, 3)
}

func TestDetectProjectName(t *testing.T) {
	wb := workbook.NewWorkbook(buildResCostoSheet(), buildRvalSheet())
	require.Equal(t, "EDIFICIO BEETHOVEN - ETAPA II", DetectProjectName(wb))

	require.Equal(t, "", DetectProjectName(workbook.NewWorkbook(workbook.NewSheet("OTRA"))))
}

func TestShortProjectName(t *testing.T) {
	require.Equal(t, "BEETHOVEN", ShortProjectName("EDIFICIO BEETHOVEN - ETAPA II"))
	require.Equal(t, "ALMA MATER", ShortProjectName("proyecto alma mater fase 3"))
	require.Equal(t, "PROYECTO", ShortProjectName(""))

	long := strings.Repeat("X", 40)
	require.Equal(t, strings.Repeat("X", 30), ShortProjectName(long))

	require.Equal(t, "OBRA NUEVA", ShortProjectName("OBRA NUEVA"))
}
