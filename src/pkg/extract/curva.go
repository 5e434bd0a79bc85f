package extract

import (
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"valuation-report/src/pkg/workbook"
)

// Default CURVA column layout: the contractual group sits at A..E and the
// executed group at G..K. Each group is {month, parcial, acumulado,
// parcialPct, acumPct}. The forecast group has no fixed home and is found
// by its header.
const (
	curvaContractualStart = 0
	curvaValorizadoStart  = 6
	curvaFirstDataRow     = 6
	curvaHeaderScanWidth  = 21
)

/*
extractCurva scrapes the CURVA sheet into a ProgressSeries.

Rows are read from curvaFirstDataRow until the sheet's extent. A row whose
month cell reads TOTAL carries the grand contractual total and is captured
separately, not appended to the series. MesActualIndex tracks the last row
with nonzero executed data. The optional forecast group is located by a
"PLANIFICAD" header anywhere in row 1.
*/
func extractCurva(sheet *workbook.Sheet) ProgressSeries {
	result := ProgressSeries{
		MesActualIndex: -1,
	}

	proyectadoStart := -1
	for column := 0; column < curvaHeaderScanWidth; column += 1 {
		header, isText := sheet.Text(1, column)
		if isText && containsFold(header, "PLANIFICAD") {
			proyectadoStart = column
		}
	}

	for row := curvaFirstDataRow; row <= sheet.MaxRow(); row += 1 {
		monthLabel := strings.TrimSpace(sheet.Display(row, curvaContractualStart))
		if monthLabel == "" {
			continue
		}

		if strings.EqualFold(monthLabel, "TOTAL") {
			result.Total = sheet.Number(row, curvaContractualStart+1)
			if result.Total == 0 {
				result.Total = sheet.Number(row, curvaContractualStart+2)
			}
			continue
		}

		result.Contractual = append(result.Contractual, readMonthPoint(sheet, row, curvaContractualStart, monthLabel))

		valorizadoPoint := readMonthPoint(sheet, row, curvaValorizadoStart, monthLabel)
		result.Valorizado = append(result.Valorizado, valorizadoPoint)

		if valorizadoPoint.Parcial > 0 || valorizadoPoint.Acumulado > 0 {
			result.MesActualIndex = len(result.Contractual) - 1
		}

		if proyectadoStart >= 0 {
			result.Proyectado = append(result.Proyectado, readMonthPoint(sheet, row, proyectadoStart, monthLabel))
		}
	}

	if result.Total == 0 && len(result.Contractual) > 0 {
		result.Total = result.Contractual[len(result.Contractual)-1].Acumulado
	}

	tl.Log(
		tl.Info1, palette.Cyan, "S-curve: '%d' months, current month index '%d', forecast group present: '%v'",
		len(result.Contractual), result.MesActualIndex, proyectadoStart >= 0,
	)

	return result
}

/*
readMonthPoint reads one series group's {parcial, acumulado, parcialPct,
acumPct} for a row. The group's own month cell wins over fallbackLabel
when present (the groups usually repeat the month, but not always).
*/
func readMonthPoint(sheet *workbook.Sheet, row int, startColumn int, fallbackLabel string) MonthPoint {
	monthLabel := strings.TrimSpace(sheet.Display(row, startColumn))
	if monthLabel == "" {
		monthLabel = fallbackLabel
	}

	return MonthPoint{
		Mes:        monthLabel,
		Parcial:    sheet.Number(row, startColumn+1),
		Acumulado:  sheet.Number(row, startColumn+2),
		ParcialPct: sheet.Number(row, startColumn+3),
		AcumPct:    sheet.Number(row, startColumn+4),
	}
}
