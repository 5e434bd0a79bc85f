package report

import (
	"bytes"
	"fmt"
	"strings"

	"valuation-report/src/pkg/extract"
	"valuation-report/src/pkg/util"
)

const dashCell = `<span class="dash">&mdash;</span>`

// monthDisplayLabel collapses "INICIO 5/1/2026" labels to "INICIO".
func monthDisplayLabel(mes string) string {
	return inicioLabelRegexp.ReplaceAllString(mes, "INICIO")
}

/*
buildZoomWindow aligns the three series over the visible range: from the
start of the project up to two months past the current one (clamped to
the series length). Months past the current one are marked as projection.
*/
func buildZoomWindow(curva *extract.ProgressSeries, hasPlan bool) []zoomPoint {
	zoomEnd := util.Clamp(curva.MesActualIndex+2, 0, len(curva.Contractual)-1)

	var window []zoomPoint
	for index := 0; index <= zoomEnd; index += 1 {
		point := zoomPoint{
			Index:        index,
			Prog:         curva.Contractual[index],
			Ejec:         curva.Valorizado[index],
			IsMesActual:  index == curva.MesActualIndex,
			IsProyeccion: index > curva.MesActualIndex,
		}
		if hasPlan && index < len(curva.Proyectado) {
			point.Plan = &curva.Proyectado[index]
		}
		window = append(window, point)
	}
	return window
}

/*
renderCurvePage builds page 2 of the report: the three accumulated-progress
summary cards, the S-curve chart over the zoom window, its legend, and the
monthly detail table. Projection months show dashes in the executed and
forecast columns.
*/
func renderCurvePage(record extract.ProjectRecord) string {
	curva := record.Curva
	hasPlan := len(curva.Proyectado) > 0

	window := buildZoomWindow(curva, hasPlan)

	// Cards read the current month. A series with no executed data yet
	// falls back to the last month, so the cards still show something.
	cardIndex := curva.MesActualIndex
	if cardIndex < 0 {
		cardIndex = len(curva.Contractual) - 1
	}
	progActual := curva.Contractual[cardIndex]
	ejecActual := curva.Valorizado[cardIndex]
	var planActual *extract.MonthPoint
	if hasPlan && cardIndex < len(curva.Proyectado) {
		planActual = &curva.Proyectado[cardIndex]
	}

	lastZoomMes := ""
	if len(window) > 0 {
		lastZoomMes = monthDisplayLabel(window[len(window)-1].Prog.Mes)
	}

	svgChart := renderCurveSVG(window, hasPlan)

	planCardPct := "N/D"
	planCardAmount := "Sin datos"
	planCardClass := "prog"
	planCardStyle := ` style="opacity:0.5"`
	planLabelColor := "#666"
	planValueColor := "#999"
	planLabelText := "Proyectado"
	if planActual != nil {
		planCardPct = FormatPercentFraction(planActual.AcumPct)
		planCardAmount = "S/ " + FormatMoney(planActual.Acumulado)
		planCardClass = "plan"
		planCardStyle = ""
		planLabelColor = "#856404"
		planValueColor = "#856404"
		planLabelText = "Proyectado Acum."
	}

	cardsHTML := fmt.Sprintf(`
    <div class="summary-cards-curva">
        <div class="summary-card-curva prog">
            <div class="card-label" style="color:#2c5aa0">Contractual Acum.</div>
            <div class="card-pct" style="color:#2c5aa0">%s</div>
            <div class="card-amt" style="color:#2c5aa0">S/ %s</div>
        </div>
        <div class="summary-card-curva ejec">
            <div class="card-label" style="color:#155724">Valorizado Acum.</div>
            <div class="card-pct" style="color:#155724">%s</div>
            <div class="card-amt" style="color:#155724">S/ %s</div>
        </div>
        <div class="summary-card-curva %s"%s>
            <div class="card-label" style="color:%s">%s</div>
            <div class="card-pct" style="color:%s">%s</div>
            <div class="card-amt" style="color:%s">%s</div>
        </div>
    </div>`,
		FormatPercentFraction(progActual.AcumPct), FormatMoney(progActual.Acumulado),
		FormatPercentFraction(ejecActual.AcumPct), FormatMoney(ejecActual.Acumulado),
		planCardClass, planCardStyle,
		planLabelColor, planLabelText,
		planValueColor, planCardPct,
		planValueColor, planCardAmount,
	)

	var tableRows bytes.Buffer
	for _, point := range window {
		rowClass := ""
		marker := ""
		if point.IsMesActual {
			rowClass = "mes-actual"
			marker = `<span style="color:#d4a017">&#9679;</span> `
		} else if point.IsProyeccion {
			rowClass = "mes-proyeccion"
		}

		ejecParcial, ejecAcumPct := dashCell, dashCell
		planParcial, planAcumPct := dashCell, dashCell
		if !point.IsProyeccion {
			ejecParcial = FormatMoney(point.Ejec.Parcial)
			ejecAcumPct = FormatPercentFraction(point.Ejec.AcumPct)
			if point.Plan != nil {
				planParcial = FormatMoney(point.Plan.Parcial)
				planAcumPct = FormatPercentFraction(point.Plan.AcumPct)
			}
		}

		progAcumStyle, ejecAcumStyle, planAcumStyle := "", "", ""
		if point.IsMesActual {
			progAcumStyle = "color:#2c5aa0;font-weight:700"
			ejecAcumStyle = "color:#28a745;font-weight:700"
			planAcumStyle = "color:#e6a817;font-weight:700"
		}

		fmt.Fprintf(&tableRows, `
        <tr class="%s">
            <td>%s%s</td>
            <td class="num">%s</td>
            <td class="num" style="%s">%s</td>
            <td class="num">%s</td>
            <td class="num" style="%s">%s</td>
            <td class="num">%s</td>
            <td class="num" style="%s">%s</td>
        </tr>`,
			rowClass,
			marker, escapeHTML(monthDisplayLabel(point.Prog.Mes)),
			FormatMoney(point.Prog.Parcial),
			progAcumStyle, FormatPercentFraction(point.Prog.AcumPct),
			ejecParcial,
			ejecAcumStyle, ejecAcumPct,
			planParcial,
			planAcumStyle, planAcumPct,
		)
	}

	var legend bytes.Buffer
	fmt.Fprintf(&legend, `<div class="legend-item"><div class="legend-swatch" style="background:%s"></div>Contractual</div>`, colorContractual)
	fmt.Fprintf(&legend, `<div class="legend-item"><div class="legend-swatch" style="background:%s"></div>Valorizado</div>`, colorValorizado)
	if hasPlan {
		fmt.Fprintf(
			&legend,
			`<div class="legend-item"><div class="legend-swatch" style="background:%s;background:repeating-linear-gradient(90deg,%s 0,%s 4px,transparent 4px,transparent 7px)"></div>Proyectado</div>`,
			colorProyectado, colorProyectado, colorProyectado,
		)
	}
	legend.WriteString(`<div class="legend-item"><div class="legend-square" style="background:#fff3cd;border:1px solid #d4a017"></div>Mes Actual</div>`)
	legend.WriteString(`<div class="legend-item"><div class="legend-square" style="background:#f0f4fa;border:1px solid #ccc"></div>Proyecci&#243;n</div>`)

	subtitleVs := ""
	if hasPlan {
		subtitleVs = "  vs Proyectado"
	}
	headerSubtitle := fmt.Sprintf(
		"Contractual vs Valorizado%s (CD + GG + Utilidad) &mdash; Zoom: Inicio &rarr; %s",
		subtitleVs, escapeHTML(lastZoomMes),
	)

	notaHTML := `<span class="nota-label">Nota:</span> Los montos y porcentajes <span class="nota-bold">Contractuales</span> corresponden a la valorizaci&#243;n del <span class="nota-mes">mes completo</span>, no al corte semanal.`

	return fmt.Sprintf(`
    <div class="page">
        <div class="header">
            <div class="header-titles">
                <h1>CURVA S - AVANCE ACUMULADO DEL PROYECTO</h1>
                <h2>%s</h2>
            </div>
            <div class="header-obra">
                <div><span class="header-obra-label">OBRA:</span> <span class="header-obra-value">%s</span></div>
                <div class="header-fecha">%s</div>
            </div>
        </div>

        %s

        <div class="section-title" style="margin-top:8px">
            <span class="numero">S</span>
            CURVA S - AVANCE ACUMULADO (%%) &mdash; ZOOM HASTA %s
        </div>
        <div class="chart-container">
            %s
        </div>

        <div class="legend-container">%s</div>

        <div class="nota-mes-completo">
            %s
        </div>

        <div class="section-title" style="margin-top:8px">
            <span class="numero">T</span>
            DETALLE DE AVANCE MENSUAL (CD + GG + UTILIDAD)
        </div>
        <table class="table-curva">
            <thead>
                <tr>
                    <th rowspan="2" style="border-bottom:2px solid #333">MES</th>
                    <th colspan="2" style="background:#e8edf5;color:#2c5aa0;text-align:center;border-bottom:2px solid #2c5aa0">CONTRACTUAL</th>
                    <th colspan="2" style="background:#d4edda;color:#155724;text-align:center;border-bottom:2px solid #28a745">VALORIZADO</th>
                    <th colspan="2" style="background:#fff3cd;color:#856404;text-align:center;border-bottom:2px solid #e6a817">PROYECTADO</th>
                </tr>
                <tr>
                    <th class="num" style="background:#e8edf5;color:#2c5aa0;border-bottom:1px solid #2c5aa0">Parcial (S/)</th>
                    <th class="num" style="background:#e8edf5;color:#2c5aa0;border-bottom:1px solid #2c5aa0">Acum.(%%)</th>
                    <th class="num" style="background:#d4edda;color:#155724;border-bottom:1px solid #28a745">Parcial (S/)</th>
                    <th class="num" style="background:#d4edda;color:#155724;border-bottom:1px solid #28a745">Acum.(%%)</th>
                    <th class="num" style="background:#fff3cd;color:#856404;border-bottom:1px solid #e6a817">Parcial (S/)</th>
                    <th class="num" style="background:#fff3cd;color:#856404;border-bottom:1px solid #e6a817">Acum.(%%)</th>
                </tr>
            </thead>
            <tbody>
                %s
            </tbody>
        </table>

        <div class="nota-mes-completo nota-tabla">
            %s
        </div>
    </div>`,
		headerSubtitle,
		escapeHTML(record.ShortName), FormatDateLong(record.Date),
		cardsHTML,
		escapeHTML(strings.ToUpper(lastZoomMes)),
		svgChart,
		legend.String(),
		notaHTML,
		tableRows.String(),
		notaHTML,
	)
}
