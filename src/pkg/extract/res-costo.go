package extract

import (
	"strconv"
	"strings"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"valuation-report/src/pkg/workbook"
)

// 0-based column indices used by the header scans and row folds.
const (
	columnA = 0
	columnB = 1
	columnC = 2
	columnD = 3
	columnF = 5
	columnG = 6
	columnH = 7
)

/*
costCategories maps category header markers (matched case-insensitively as
substrings against the key cell) to the CostBreakdown field they feed.

Read-only lookup table; order matters because matching stops at the first
hit. The "gg" pseudo-field splits into PlanillaStaff/OtrosGG by the row's
description cell.
*/
var costCategories = []struct {
	Marker string
	Field  string
}{
	{"PERSONAL DE OBRERO", "personalObrero"},
	{"MATERIALES", "materiales"},
	{"ALQUILERES", "alquileres"},
	{"SUBCONTRATO", "subcontratos"},
	{"COSTOS VARIOS", "costosVarios"},
	{"COSTO DE OBRA GG", "gg"},
}

// costScanState is the explicit fold state threaded through the row loop:
// which category the rows currently being read belong to ("" = none yet).
type costScanState struct {
	currentCategory string
}

/*
extractResCosto scrapes the RES-COSTO sheet: project header info plus the
executed cost breakdown, category block by category block.
*/
func extractResCosto(sheet *workbook.Sheet) CostBreakdown {
	result := CostBreakdown{}

	result.ProjectName, result.Author, result.Date = scanHeaderInfo(sheet, 8)

	state := costScanState{}
	for row := 10; row <= sheet.MaxRow(); row += 1 {
		state = foldCostRow(state, sheet, row, &result)
	}

	// Totals are derived, never read from the sheet.
	result.TotalCD = result.PersonalObrero + result.Materiales + result.Alquileres +
		result.Subcontratos + result.CostosVarios
	result.TotalGG = result.PlanillaStaff + result.OtrosGG

	return result
}

/*
foldCostRow advances the category fold by one row: (state, row) -> state'.

A non-numeric text key cell is a candidate category header; one that
matches no known category is skipped WITHOUT resetting the active category,
so stray annotation rows inside a block don't orphan the rows after them.
A numeric key cell (item index) with a nonzero amount adds to the active
category's total.
*/
func foldCostRow(state costScanState, sheet *workbook.Sheet, row int, result *CostBreakdown) costScanState {
	keyCell := sheet.Cell(row, columnB)
	amount := sheet.Number(row, columnD)

	if keyCell.Type == workbook.CellText && !isNumericText(keyCell.Text) {
		upper := strings.ToUpper(keyCell.Text)
		for _, category := range costCategories {
			if strings.Contains(upper, category.Marker) {
				state.currentCategory = category.Field
				return state
			}
		}
		// Unrecognized text row: category state persists on purpose, but a
		// malformed header here would silently misattribute the rows below,
		// so leave a trace.
		if state.currentCategory != "" {
			tl.Log(
				tl.Verbose, palette.CyanDim, "Row '%d' text '%s' matches no category; keeping '%s' active",
				row, keyCell.Text, state.currentCategory,
			)
		}
		return state
	}

	if keyCell.Type == workbook.CellEmpty || amount == 0 {
		return state
	}

	isItemRow := keyCell.Type == workbook.CellNumber ||
		(keyCell.Type == workbook.CellText && isNumericText(keyCell.Text))
	if !isItemRow {
		return state
	}

	switch state.currentCategory {
	case "gg":
		description := strings.ToLower(sheet.Display(row, columnC))
		if strings.Contains(description, "staff") || strings.Contains(description, "planilla staff") {
			result.PlanillaStaff += amount
		} else {
			result.OtrosGG += amount
		}
	case "personalObrero":
		result.PersonalObrero += amount
	case "materiales":
		result.Materiales += amount
	case "alquileres":
		result.Alquileres += amount
	case "subcontratos":
		result.Subcontratos += amount
	case "costosVarios":
		result.CostosVarios += amount
	}

	return state
}

/*
scanHeaderInfo scans rows 2..lastRow for the "Proyecto" / "Elaborado" marker
labels in column B (value in C) and a report date in column G.

The date is taken from a date-typed G cell directly, or, when an adjacent
"fecha" label sits in column F, from a G cell holding an Excel serial
number. The value's exact column is not trusted beyond that.
*/
func scanHeaderInfo(sheet *workbook.Sheet, lastRow int) (projectName string, author string, date time.Time) {
	for row := 2; row <= lastRow; row += 1 {
		label, isText := sheet.Text(row, columnB)
		if isText && containsFold(label, "Proyecto") {
			projectName = sheet.Display(row, columnC)
		}
		if isText && containsFold(label, "Elaborado") {
			author = sheet.Display(row, columnC)
		}

		gCell := sheet.Cell(row, columnG)
		if gCell.Type == workbook.CellDate {
			date = gCell.Date
			continue
		}

		fLabel, fIsText := sheet.Text(row, columnF)
		if fIsText && containsFold(fLabel, "fecha") {
			parsed, ok := sheet.Date(row, columnG)
			if ok {
				date = parsed
			}
		}
	}

	return projectName, author, date
}

// isNumericText reports whether text parses as a plain number.
func isNumericText(text string) bool {
	_, parseErr := strconv.ParseFloat(strings.TrimSpace(text), 64)
	return parseErr == nil
}

// containsFold is a case-insensitive strings.Contains.
func containsFold(haystack string, needle string) bool {
	return strings.Contains(strings.ToUpper(haystack), strings.ToUpper(needle))
}
