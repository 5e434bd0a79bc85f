package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"valuation-report/src/pkg/workbook"
)

// percentInLabelRegexp pulls a percentage out of a label like
// "GASTOS GENERALES (12.5%)".
var percentInLabelRegexp = regexp.MustCompile(`\(([\d.]+)%?\)`)

// valueColumns are tried left to right when reading a summary amount next
// to a matched label; the first positive number wins.
var valueColumns = []int{columnG, columnF, columnH}

// labelColumns are tried in this order when looking for a summary label on
// a row; the first text cell longer than 3 characters wins.
var labelColumns = []int{columnC, columnB, columnD}

/*
extractRval scrapes the RVAL sheet: header info plus the valuation summary
(direct cost, overhead, profit, grand total), then runs the two-way
amount/percent repair.

Summary values are label-anchored: every row from 10 down is scanned for a
matching label and the amount is read from the first value column holding a
positive number, because these sheets move their summary block around.
*/
func extractRval(sheet *workbook.Sheet) ValuationSummary {
	result := ValuationSummary{}

	result.ProjectName, result.Author, result.Date = scanHeaderInfo(sheet, 9)

	// Some layouts carry the direct cost in the header block already.
	for row := 2; row <= 9; row += 1 {
		fLabel, isText := sheet.Text(row, columnF)
		if isText && containsFold(fLabel, "COSTO DIRECTO") {
			result.CostoDirecto = sheet.Number(row, columnG)
		}
	}

	for row := 10; row <= sheet.MaxRow(); row += 1 {
		labelText := findRowLabel(sheet, row)
		if labelText == "" {
			continue
		}

		upper := strings.ToUpper(strings.TrimSpace(labelText))

		if isCostoDirectoLabel(upper) {
			if value, found := firstPositiveValue(sheet, row); found {
				result.CostoDirecto = value
			}
		}

		if strings.Contains(upper, "GASTOS GENERALES") {
			if value, found := firstPositiveValue(sheet, row); found {
				result.GastosGenerales = value
			}
			if pct, found := percentFromLabel(labelText); found {
				result.GGPercent = pct
			}
		}

		if strings.Contains(upper, "UTILIDAD") && !strings.Contains(upper, "TOTAL") {
			if value, found := firstPositiveValue(sheet, row); found {
				result.Utilidad = value
			}
			if pct, found := percentFromLabel(labelText); found {
				result.UtilPercent = pct
			}
		}

		if strings.Contains(upper, "TOTAL") && mentionsValorizacion(upper) {
			if value, found := firstPositiveValue(sheet, row); found {
				result.TotalValorizacion = value
			}
		}
	}

	repairAmountsAndPercents(&result)

	return result
}

/*
isCostoDirectoLabel matches the direct-cost summary label while excluding
near misses: composite labels mentioning GASTOS or TOTAL, and long
free-text rows that merely contain the phrase.
*/
func isCostoDirectoLabel(upper string) bool {
	if upper == "COSTO DIRECTO" {
		return true
	}
	return strings.Contains(upper, "COSTO DIRECTO") &&
		!strings.Contains(upper, "GASTOS") &&
		!strings.Contains(upper, "TOTAL") &&
		utf8.RuneCountInString(upper) < 25
}

// mentionsValorizacion tolerates the accent variants and truncations these
// sheets use for "valorización".
func mentionsValorizacion(upper string) bool {
	for _, variant := range []string{"VALORIZACION", "VALORIZACIÓN", "VALORIZ"} {
		if strings.Contains(upper, variant) {
			return true
		}
	}
	return false
}

// findRowLabel returns the first plausible label cell text on the row.
func findRowLabel(sheet *workbook.Sheet, row int) string {
	for _, column := range labelColumns {
		text, isText := sheet.Text(row, column)
		if isText && utf8.RuneCountInString(strings.TrimSpace(text)) > 3 {
			return text
		}
	}
	return ""
}

// firstPositiveValue reads the row's amount from the first value column
// holding a positive number.
func firstPositiveValue(sheet *workbook.Sheet, row int) (value float64, found bool) {
	for _, column := range valueColumns {
		candidate := sheet.Number(row, column)
		if candidate > 0 {
			return candidate, true
		}
	}
	return 0, false
}

// percentFromLabel parses an embedded "(12.5%)" out of a label.
func percentFromLabel(labelText string) (pct float64, found bool) {
	match := percentInLabelRegexp.FindStringSubmatch(labelText)
	if match == nil {
		return 0, false
	}
	parsed, parseErr := strconv.ParseFloat(match[1], 64)
	if parseErr != nil {
		return 0, false
	}
	return parsed, true
}

/*
repairAmountsAndPercents keeps the (amount, percent) pairs mutually
consistent. It always runs, whichever side the scan found directly:

 1. amount := CostoDirecto * pct/100 when the amount is 0 and pct is known
 2. pct := amount / CostoDirecto * 100 when pct is 0

A percent equal to exactly 0 is treated as "missing" and re-derived, so a
legitimately-zero percentage is indistinguishable from an absent one. That
asymmetry matches the sheets this was built against; the log line below
makes the re-derivation visible instead of changing the behavior.
*/
func repairAmountsAndPercents(result *ValuationSummary) {
	if result.CostoDirecto <= 0 {
		return
	}

	if result.GastosGenerales == 0 && result.GGPercent > 0 {
		result.GastosGenerales = result.CostoDirecto * (result.GGPercent / 100)
	}
	if result.Utilidad == 0 && result.UtilPercent > 0 {
		result.Utilidad = result.CostoDirecto * (result.UtilPercent / 100)
	}

	if result.GGPercent == 0 && result.GastosGenerales > 0 {
		result.GGPercent = (result.GastosGenerales / result.CostoDirecto) * 100
		tl.Log(tl.Warning, palette.YellowDim, "GG percent was %s, derived '%v' from amounts", "zero/missing", result.GGPercent)
	}
	if result.UtilPercent == 0 && result.Utilidad > 0 {
		result.UtilPercent = (result.Utilidad / result.CostoDirecto) * 100
		tl.Log(tl.Warning, palette.YellowDim, "Utilidad percent was %s, derived '%v' from amounts", "zero/missing", result.UtilPercent)
	}
}
