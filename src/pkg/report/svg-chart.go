package report

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"valuation-report/src/pkg/extract"
)

// S-curve chart geometry. The viewBox is fixed; the page scales it to
// full width.
const (
	chartWidth        = 730.0
	chartHeight       = 420.0
	chartMarginLeft   = 50.0
	chartMarginRight  = 60.0
	chartMarginTop    = 25.0
	chartMarginBottom = 55.0
)

// Series colors shared by the chart, the legend and the detail table.
const (
	colorContractual = "#2c5aa0"
	colorValorizado  = "#28a745"
	colorProyectado  = "#e6a817"
)

// inicioLabelRegexp collapses "INICIO 5/1/2026" style month labels down to
// just "INICIO" for axis and table display.
var inicioLabelRegexp = regexp.MustCompile(`INICIO \d+/\d+/\d+`)

/*
zoomPoint is one month inside the chart's zoom window, with the three
series aligned and the month's role resolved.
*/
type zoomPoint struct {
	Index        int
	Prog         extract.MonthPoint
	Ejec         extract.MonthPoint
	Plan         *extract.MonthPoint
	IsMesActual  bool
	IsProyeccion bool
}

/*
chartPoint is a plotted coordinate for one series at one month.
*/
type chartPoint struct {
	X     float64
	Y     float64
	Pct   float64
	Index int
}

// num renders an SVG coordinate without trailing zero noise.
func num(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

/*
renderCurveSVG draws the S-curve chart for the zoom window: background
zones for the current month and the projection range, a 5% grid, area
fills, the three series lines (contractual solid then dashed into the
projection), data points, a deviation bracket at the current month, and
the current-month value badges laid out with collision avoidance.

Fewer than two months yields a short placeholder instead of a chart, as
does a window whose percentages never leave zero.
*/
func renderCurveSVG(zoomData []zoomPoint, hasPlan bool) string {
	plotWidth := chartWidth - chartMarginLeft - chartMarginRight
	plotHeight := chartHeight - chartMarginTop - chartMarginBottom

	pointCount := len(zoomData)
	if pointCount < 2 {
		return "<p>Datos insuficientes para grafico</p>"
	}

	xStep := plotWidth / float64(pointCount-1)

	maxPct := 0.0
	for _, point := range zoomData {
		maxPct = math.Max(maxPct, point.Prog.AcumPct*100)
		maxPct = math.Max(maxPct, point.Ejec.AcumPct*100)
		if point.Plan != nil {
			maxPct = math.Max(maxPct, point.Plan.AcumPct*100)
		}
	}

	// Tight Y scale: next multiple of 5 above the data, plus 2% headroom.
	yMax := math.Ceil(maxPct/5)*5 + 2
	if yMax <= 2 {
		return "<p>Sin datos de porcentaje</p>"
	}

	xPos := func(index int) float64 {
		return chartMarginLeft + float64(index)*xStep
	}
	yPos := func(pct float64) float64 {
		return chartMarginTop + plotHeight - (pct/yMax)*plotHeight
	}

	var svg bytes.Buffer
	fmt.Fprintf(
		&svg,
		`<svg width="100%%" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg" style="font-family:'Segoe UI',sans-serif">`,
		int(chartWidth), int(chartHeight),
	)

	svg.WriteString(`<defs>
        <linearGradient id="gradProg" x1="0" y1="0" x2="0" y2="1">
            <stop offset="0%" stop-color="#2c5aa0" stop-opacity="0.18"/>
            <stop offset="100%" stop-color="#2c5aa0" stop-opacity="0.02"/>
        </linearGradient>
        <linearGradient id="gradEjec" x1="0" y1="0" x2="0" y2="1">
            <stop offset="0%" stop-color="#28a745" stop-opacity="0.12"/>
            <stop offset="100%" stop-color="#28a745" stop-opacity="0.01"/>
        </linearGradient>
    </defs>`)

	projStartIndex := -1
	mesActualLocalIndex := -1
	for index, point := range zoomData {
		if point.IsProyeccion && projStartIndex < 0 {
			projStartIndex = index
		}
		if point.IsMesActual {
			mesActualLocalIndex = index
		}
	}

	// Current month highlight band.
	if mesActualLocalIndex >= 0 {
		left := xPos(mesActualLocalIndex) - xStep/2
		right := xPos(mesActualLocalIndex) + xStep/2
		rectX := math.Max(chartMarginLeft, left)
		rectWidth := math.Min(right, chartMarginLeft+plotWidth) - rectX
		fmt.Fprintf(
			&svg, `<rect x="%s" y="%s" width="%s" height="%s" fill="#fff3cd" opacity="0.45"/>`,
			num(rectX), num(chartMarginTop), num(rectWidth), num(plotHeight),
		)
	}

	// Projection zone with its dashed boundary.
	if projStartIndex >= 0 {
		projX := xPos(projStartIndex) - xStep/2
		fmt.Fprintf(
			&svg, `<rect x="%s" y="%s" width="%s" height="%s" fill="#f5f7fb"/>`,
			num(projX), num(chartMarginTop), num(chartMarginLeft+plotWidth-projX), num(plotHeight),
		)
		fmt.Fprintf(
			&svg, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="#bbb" stroke-dasharray="6,3" stroke-width="1"/>`,
			num(projX), num(chartMarginTop), num(projX), num(chartMarginTop+plotHeight),
		)
		fmt.Fprintf(
			&svg, `<text x="%s" y="%s" text-anchor="middle" font-size="10" fill="#aaa" font-weight="700" letter-spacing="1">PROYECCI&#211;N</text>`,
			num((projX+chartMarginLeft+plotWidth)/2), num(chartMarginTop+14),
		)
	}

	// Horizontal grid every 5%, majors every 10%.
	for pct := 0; float64(pct) <= yMax; pct += 5 {
		y := yPos(float64(pct))
		isMajor := pct%10 == 0
		stroke, strokeWidth, fontSize, fill, fontWeight := "#eee", "0.5", "9", "#aaa", "400"
		if isMajor {
			stroke, strokeWidth, fontSize, fill, fontWeight = "#ddd", "1", "10", "#666", "600"
		}
		fmt.Fprintf(
			&svg, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`,
			num(chartMarginLeft), num(y), num(chartMarginLeft+plotWidth), num(y), stroke, strokeWidth,
		)
		fmt.Fprintf(
			&svg, `<text x="%s" y="%s" text-anchor="end" font-size="%s" fill="%s" font-weight="%s">%d%%</text>`,
			num(chartMarginLeft-8), num(y+4), fontSize, fill, fontWeight, pct,
		)
	}

	// Axes.
	fmt.Fprintf(
		&svg, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="#ddd" stroke-width="1"/>`,
		num(chartMarginLeft), num(chartMarginTop), num(chartMarginLeft), num(chartMarginTop+plotHeight),
	)
	fmt.Fprintf(
		&svg, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="#bbb" stroke-width="1"/>`,
		num(chartMarginLeft), num(chartMarginTop+plotHeight), num(chartMarginLeft+plotWidth), num(chartMarginTop+plotHeight),
	)

	// X axis labels: first word on one line, second word below.
	for index := 0; index < pointCount; index += 1 {
		x := xPos(index)
		label := inicioLabelRegexp.ReplaceAllString(zoomData[index].Prog.Mes, "INICIO")
		parts := strings.Split(label, " ")

		fmt.Fprintf(
			&svg, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="#bbb"/>`,
			num(x), num(chartMarginTop+plotHeight), num(x), num(chartMarginTop+plotHeight+4),
		)

		labelColor := "#555"
		labelWeight := "400"
		if index == mesActualLocalIndex {
			labelColor = "#856404"
			labelWeight = "700"
		} else if zoomData[index].IsProyeccion {
			labelColor = "#aaa"
		}
		fmt.Fprintf(
			&svg, `<text x="%s" y="%s" text-anchor="middle" font-size="9.5" fill="%s" font-weight="%s">%s</text>`,
			num(x), num(chartMarginTop+plotHeight+16), labelColor, labelWeight, escapeHTML(parts[0]),
		)
		if len(parts) > 1 {
			fmt.Fprintf(
				&svg, `<text x="%s" y="%s" text-anchor="middle" font-size="8.5" fill="%s" font-weight="%s">%s</text>`,
				num(x), num(chartMarginTop+plotHeight+27), labelColor, labelWeight, escapeHTML(parts[1]),
			)
		}
	}

	// Plotted coordinates per series. The executed series stops at the
	// current month; the forecast series keeps nonzero points plus the
	// window's first month.
	var progPoints []chartPoint
	var ejecPoints []chartPoint
	var planPoints []chartPoint

	for index := 0; index < pointCount; index += 1 {
		point := zoomData[index]
		progPct := point.Prog.AcumPct * 100
		progPoints = append(progPoints, chartPoint{X: xPos(index), Y: yPos(progPct), Pct: progPct, Index: index})

		if index <= mesActualLocalIndex {
			ejecPct := point.Ejec.AcumPct * 100
			ejecPoints = append(ejecPoints, chartPoint{X: xPos(index), Y: yPos(ejecPct), Pct: ejecPct, Index: index})
		}

		if hasPlan && point.Plan != nil {
			planPct := point.Plan.AcumPct * 100
			if planPct > 0 || index == 0 {
				planPoints = append(planPoints, chartPoint{X: xPos(index), Y: yPos(planPct), Pct: planPct, Index: index})
			}
		}
	}

	baseline := chartMarginTop + plotHeight

	// Area fill under the contractual line, up to the projection boundary.
	if len(progPoints) > 1 {
		progAreaEnd := len(progPoints)
		if projStartIndex >= 0 {
			progAreaEnd = projStartIndex
		}
		var areaPath bytes.Buffer
		fmt.Fprintf(&areaPath, "M%s,%s", num(progPoints[0].X), num(baseline))
		for index := 0; index < min(progAreaEnd, len(progPoints)); index += 1 {
			fmt.Fprintf(&areaPath, " L%s,%s", num(progPoints[index].X), num(progPoints[index].Y))
		}
		// With no solid segment (every month is projection) the fill
		// degenerates to the baseline, closed at the last point.
		lastIndex := min(progAreaEnd-1, len(progPoints)-1)
		if lastIndex < 0 {
			lastIndex = len(progPoints) - 1
		}
		fmt.Fprintf(&areaPath, " L%s,%s Z", num(progPoints[lastIndex].X), num(baseline))
		fmt.Fprintf(&svg, `<path d="%s" fill="url(#gradProg)"/>`, areaPath.String())
	}

	// Area fill under the executed line.
	if len(ejecPoints) > 1 {
		var areaPath bytes.Buffer
		fmt.Fprintf(&areaPath, "M%s,%s", num(ejecPoints[0].X), num(baseline))
		for _, point := range ejecPoints {
			fmt.Fprintf(&areaPath, " L%s,%s", num(point.X), num(point.Y))
		}
		fmt.Fprintf(&areaPath, " L%s,%s Z", num(ejecPoints[len(ejecPoints)-1].X), num(baseline))
		fmt.Fprintf(&svg, `<path d="%s" fill="url(#gradEjec)"/>`, areaPath.String())
	}

	// Contractual line: solid up to the projection boundary, dashed beyond.
	if len(progPoints) > 1 {
		solidEnd := len(progPoints)
		if projStartIndex >= 0 {
			solidEnd = projStartIndex
		}
		if solidEnd > 0 {
			var path bytes.Buffer
			fmt.Fprintf(&path, "M%s,%s", num(progPoints[0].X), num(progPoints[0].Y))
			for index := 1; index < min(solidEnd, len(progPoints)); index += 1 {
				fmt.Fprintf(&path, " L%s,%s", num(progPoints[index].X), num(progPoints[index].Y))
			}
			fmt.Fprintf(&svg, `<path d="%s" fill="none" stroke="%s" stroke-width="3" stroke-linejoin="round"/>`, path.String(), colorContractual)
		}
		if solidEnd > 0 && solidEnd < len(progPoints) {
			var path bytes.Buffer
			fmt.Fprintf(&path, "M%s,%s", num(progPoints[solidEnd-1].X), num(progPoints[solidEnd-1].Y))
			for index := solidEnd; index < len(progPoints); index += 1 {
				fmt.Fprintf(&path, " L%s,%s", num(progPoints[index].X), num(progPoints[index].Y))
			}
			fmt.Fprintf(&svg, `<path d="%s" fill="none" stroke="%s" stroke-width="2.5" stroke-dasharray="8,5" stroke-linejoin="round"/>`, path.String(), colorContractual)
		}
	}

	// Executed line.
	if len(ejecPoints) > 1 {
		var path bytes.Buffer
		fmt.Fprintf(&path, "M%s,%s", num(ejecPoints[0].X), num(ejecPoints[0].Y))
		for index := 1; index < len(ejecPoints); index += 1 {
			fmt.Fprintf(&path, " L%s,%s", num(ejecPoints[index].X), num(ejecPoints[index].Y))
		}
		fmt.Fprintf(&svg, `<path d="%s" fill="none" stroke="%s" stroke-width="3" stroke-linejoin="round"/>`, path.String(), colorValorizado)
	}

	// Forecast line, always dashed.
	if len(planPoints) > 1 {
		var path bytes.Buffer
		fmt.Fprintf(&path, "M%s,%s", num(planPoints[0].X), num(planPoints[0].Y))
		for index := 1; index < len(planPoints); index += 1 {
			fmt.Fprintf(&path, " L%s,%s", num(planPoints[index].X), num(planPoints[index].Y))
		}
		fmt.Fprintf(&svg, `<path d="%s" fill="none" stroke="%s" stroke-width="2.5" stroke-dasharray="8,5" stroke-linejoin="round"/>`, path.String(), colorProyectado)
	}

	// Data points. The current month gets a bigger, white-ringed marker.
	for index, point := range progPoints {
		isCurrent := index < len(zoomData) && zoomData[index].IsMesActual
		isProjection := index < len(zoomData) && zoomData[index].IsProyeccion
		radius := "4.5"
		opacity := "1"
		strokeAttr := ""
		if isCurrent {
			radius = "7"
			strokeAttr = ` stroke="white" stroke-width="3"`
		}
		if isProjection {
			opacity = "0.45"
		}
		fmt.Fprintf(
			&svg, `<circle cx="%s" cy="%s" r="%s" fill="%s" opacity="%s"%s/>`,
			num(point.X), num(point.Y), radius, colorContractual, opacity, strokeAttr,
		)
	}

	for _, point := range ejecPoints {
		radius := "4.5"
		strokeAttr := ""
		if point.Index == mesActualLocalIndex {
			radius = "7"
			strokeAttr = ` stroke="white" stroke-width="3"`
		}
		fmt.Fprintf(
			&svg, `<circle cx="%s" cy="%s" r="%s" fill="%s"%s/>`,
			num(point.X), num(point.Y), radius, colorValorizado, strokeAttr,
		)
	}

	for _, point := range planPoints {
		fmt.Fprintf(&svg, `<circle cx="%s" cy="%s" r="4.5" fill="%s"/>`, num(point.X), num(point.Y), colorProyectado)
	}

	if mesActualLocalIndex >= 0 {
		markerX := xPos(mesActualLocalIndex)
		progPctValue := zoomData[mesActualLocalIndex].Prog.AcumPct * 100
		ejecPctValue := zoomData[mesActualLocalIndex].Ejec.AcumPct * 100
		progY := yPos(progPctValue)
		ejecY := yPos(ejecPctValue)
		deviation := progPctValue - ejecPctValue

		// Deviation bracket between the contractual and executed points.
		if math.Abs(deviation) > 0.01 {
			topY := math.Min(progY, ejecY)
			bottomY := math.Max(progY, ejecY)
			bracketX := markerX - 16
			fmt.Fprintf(&svg, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="#dc3545" stroke-width="2.5"/>`, num(bracketX), num(topY), num(bracketX), num(bottomY))
			fmt.Fprintf(&svg, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="#dc3545" stroke-width="2.5"/>`, num(bracketX-5), num(topY), num(bracketX+5), num(topY))
			fmt.Fprintf(&svg, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="#dc3545" stroke-width="2.5"/>`, num(bracketX-5), num(bottomY), num(bracketX+5), num(bottomY))

			badgeY := (topY + bottomY) / 2
			devSign := "+"
			if deviation > 0 {
				devSign = "-"
			}
			devText := fmt.Sprintf("%s%.2f%%", devSign, math.Abs(deviation))
			devBadgeWidth := float64(len(devText))*6.5 + 10
			fmt.Fprintf(
				&svg, `<rect x="%s" y="%s" width="%s" height="20" rx="4" fill="#f8d7da" stroke="#dc3545" stroke-width="1"/>`,
				num(bracketX-devBadgeWidth+2), num(badgeY-10), num(devBadgeWidth),
			)
			fmt.Fprintf(
				&svg, `<text x="%s" y="%s" text-anchor="middle" font-size="10" fill="#dc3545" font-weight="700">%s</text>`,
				num(bracketX-devBadgeWidth/2+2), num(badgeY+4), devText,
			)
		}

		// Current-month value badges, spread to avoid overlap.
		badgeX := markerX + 12
		badgeWidth := 52.0
		currentBadges := []valueBadge{
			{Y: progY, Color: colorContractual, Text: fmt.Sprintf("%.2f%%", progPctValue)},
			{Y: ejecY, Color: colorValorizado, Text: fmt.Sprintf("%.2f%%", ejecPctValue)},
		}
		if hasPlan && zoomData[mesActualLocalIndex].Plan != nil {
			planPctValue := zoomData[mesActualLocalIndex].Plan.AcumPct * 100
			currentBadges = append(currentBadges, valueBadge{Y: yPos(planPctValue), Color: colorProyectado, Text: fmt.Sprintf("%.2f%%", planPctValue)})
		}

		currentBadges = spreadLabels(currentBadges, badgeMinSeparation)

		for _, b := range currentBadges {
			fmt.Fprintf(
				&svg, `<rect x="%s" y="%s" width="%s" height="%s" rx="4" fill="%s"/>`,
				num(badgeX), num(b.Y-9), num(badgeWidth), num(badgeHeight), b.Color,
			)
			fmt.Fprintf(
				&svg, `<text x="%s" y="%s" text-anchor="middle" font-size="10" fill="white" font-weight="700">%s</text>`,
				num(badgeX+badgeWidth/2), num(b.Y+4), b.Text,
			)
		}

		// HOY marker under the axis.
		fmt.Fprintf(
			&svg, `<rect x="%s" y="%s" width="32" height="18" rx="5" fill="#fff3cd" stroke="#d4a017" stroke-width="1.2"/>`,
			num(markerX-16), num(baseline+34),
		)
		fmt.Fprintf(
			&svg, `<text x="%s" y="%s" text-anchor="middle" font-size="10" fill="#856404" font-weight="700">HOY</text>`,
			num(markerX), num(baseline+46),
		)
	}

	// Faded percentage labels over projection months.
	for index := 0; index < pointCount; index += 1 {
		if zoomData[index].IsProyeccion && index < len(progPoints) {
			point := progPoints[index]
			fmt.Fprintf(
				&svg, `<rect x="%s" y="%s" width="44" height="16" rx="3" fill="%s" opacity="0.25"/>`,
				num(point.X-22), num(point.Y-20), colorContractual,
			)
			fmt.Fprintf(
				&svg, `<text x="%s" y="%s" text-anchor="middle" font-size="9.5" fill="%s" opacity="0.8" font-weight="600">%.1f%%</text>`,
				num(point.X), num(point.Y-9), colorContractual, point.Pct,
			)
		}
	}

	svg.WriteString("</svg>")
	return svg.String()
}
