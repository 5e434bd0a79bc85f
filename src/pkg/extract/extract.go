package extract

import (
	"fmt"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"valuation-report/src/pkg/workbook"
)

// Sheet names the extractor looks for. RES-COSTO and RVAL are mandatory;
// CURVA is optional and its absence only drops the S-curve page.
const (
	SheetResCosto = "RES-COSTO"
	SheetRval     = "RVAL"
	SheetCurva    = "CURVA"
)

/*
ProcessWorkbook extracts a ProjectRecord from a valuation workbook.

It fails with a *xerr.Error naming the sheet when a mandatory sheet is
missing. Everything below sheet level is best-effort: unparsable cells
become zero/empty and extraction continues.
*/
func ProcessWorkbook(wb *workbook.Workbook) (record ProjectRecord, e *xerr.Error) {
	for _, sheetName := range []string{SheetResCosto, SheetRval} {
		_, found := wb.Sheet(sheetName)
		if !found {
			err := fmt.Errorf("required sheet %q not found in workbook", sheetName)
			e = xerr.NewError(err, "validate workbook sheets", sheetName)
			return record, e
		}
	}

	resCostoSheet, _ := wb.Sheet(SheetResCosto)
	record.ResCosto = extractResCosto(resCostoSheet)

	rvalSheet, _ := wb.Sheet(SheetRval)
	record.Rval = extractRval(rvalSheet)

	curvaSheet, curvaFound := wb.Sheet(SheetCurva)
	if curvaFound {
		curva := extractCurva(curvaSheet)
		record.Curva = &curva
		tl.Log(tl.Info1, palette.Green, "Sheet '%s' found, S-curve extracted with '%d' months", SheetCurva, len(curva.Contractual))
	} else {
		tl.Log(
			tl.Info, palette.Cyan, "Sheet '%s' not found (sheets: %s). Report will have no S-curve page",
			SheetCurva, wb.SheetNames(),
		)
	}

	record.ProjectName = firstNonEmpty(record.ResCosto.ProjectName, record.Rval.ProjectName, "PROYECTO")
	record.ShortName = ShortProjectName(record.ProjectName)
	record.Author = firstNonEmpty(record.ResCosto.Author, record.Rval.Author, "")

	record.Date = record.ResCosto.Date
	if record.Date.IsZero() {
		record.Date = record.Rval.Date
	}
	if record.Date.IsZero() {
		record.Date = time.Now()
	}

	tl.Log(
		tl.Notice1, palette.GreenBold, "Extracted project '%s' (short name '%s', total CD '%v', total valorizacion '%v')",
		record.ProjectName, record.ShortName, record.ResCosto.TotalCD, record.Rval.TotalValorizacion,
	)

	return record, e
}

/*
DetectProjectName sniffs the project name from the workbook's header rows
without running a full extraction. Returns "" when nothing is found.

Useful for labeling output directories before (or instead of) processing.
*/
func DetectProjectName(wb *workbook.Workbook) string {
	lookups := []struct {
		sheetName string
		lastRow   int
	}{
		{SheetResCosto, 8},
		{SheetRval, 9},
	}

	for _, lookup := range lookups {
		sheet, found := wb.Sheet(lookup.sheetName)
		if !found {
			continue
		}
		for row := 2; row <= lookup.lastRow; row += 1 {
			label, isText := sheet.Text(row, columnB)
			if isText && containsFold(label, "Proyecto") {
				name := sheet.Display(row, columnC)
				if name != "" {
					return name
				}
			}
		}
	}

	return ""
}

// firstNonEmpty returns the first non-blank candidate.
func firstNonEmpty(candidates ...string) string {
	for _, candidate := range candidates {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}
