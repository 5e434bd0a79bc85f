package workbook

import (
	"bytes"
	"strconv"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
	"github.com/xuri/excelize/v2"
)

/*
LoadWorkbook parses .xlsx bytes into the in-memory workbook model.

Cells are read raw (no display formatting), so dates arrive as Excel serial
numbers and keep working through Sheet.Date. A cell whose raw value parses
as a number becomes a number cell; everything else non-blank becomes text.

It returns a *xerr.Error when the bytes are not a readable workbook.
*/
func LoadWorkbook(xlsxBytes []byte) (wb *Workbook, e *xerr.Error) {
	file, openErr := excelize.OpenReader(bytes.NewReader(xlsxBytes))
	if openErr != nil {
		e = xerr.NewError(openErr, "open xlsx workbook", "excelize.OpenReader")
		return wb, e
	}
	defer func() {
		_ = file.Close()
	}()

	sheetNames := file.GetSheetList()
	sheets := make([]*Sheet, 0, len(sheetNames))

	for _, sheetName := range sheetNames {
		rows, rowsErr := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
		if rowsErr != nil {
			// A single unreadable sheet degrades the output, it does not abort the load.
			tl.Log(
				tl.Warning, palette.PurpleBright, "Skipping unreadable sheet '%s': '%s'",
				sheetName, rowsErr,
			)
			continue
		}

		sheet := NewSheet(sheetName)
		for rowIndex, rowCells := range rows {
			for columnIndex, rawValue := range rowCells {
				trimmed := strings.TrimSpace(rawValue)
				if trimmed == "" {
					continue
				}

				rowNumber := rowIndex + 1
				parsed, parseErr := strconv.ParseFloat(trimmed, 64)
				if parseErr == nil {
					sheet.Set(rowNumber, columnIndex, parsed)
				} else {
					sheet.Set(rowNumber, columnIndex, rawValue)
				}
			}
		}
		sheets = append(sheets, sheet)
	}

	wb = NewWorkbook(sheets...)

	tl.Log(
		tl.Info1, palette.Cyan, "Loaded workbook with '%d' sheets: %s",
		len(sheetNames), strings.Join(sheetNames, ", "),
	)

	return wb, e
}
