/*
Package workbook holds a read-only, typed in-memory model of a spreadsheet
workbook: an ordered collection of named sheets, each a grid of typed cells
addressed by (row, column).

The extractor works against this model only; how the workbook got into
memory (.xlsx loader, test fixture) is the loader's business.
*/
package workbook

import (
	"strconv"
	"strings"
	"time"
)

// CellType tags what a cell holds.
type CellType int

const (
	CellEmpty CellType = iota
	CellNumber
	CellText
	CellDate
)

/*
Cell is a single typed cell value. Only the field matching Type is
meaningful; the zero Cell is an empty cell.
*/
type Cell struct {
	Type   CellType
	Number float64
	Text   string
	Date   time.Time
}

/*
Sheet is a 2-D grid of cells. Rows are 1-based (matching spreadsheet row
numbers), columns are 0-based indices (column A = 0).
*/
type Sheet struct {
	Name string

	rows   map[int]map[int]Cell
	maxRow int
}

/*
Workbook is an ordered collection of named sheets.
*/
type Workbook struct {
	sheets []*Sheet
	byName map[string]*Sheet
}

// NewSheet returns an empty sheet with the given name.
func NewSheet(name string) *Sheet {
	return &Sheet{
		Name: name,
		rows: make(map[int]map[int]Cell),
	}
}

/*
Set stores a value into the sheet at (row, column). Accepted value types:
float64/int (number), string (text, blank means empty), time.Time (date),
nil (empty). Used by loaders and test fixtures; extraction never mutates.
*/
func (sheet *Sheet) Set(row int, column int, value any) {
	cell := Cell{}

	switch typed := value.(type) {
	case nil:
		return
	case float64:
		cell = Cell{Type: CellNumber, Number: typed}
	case int:
		cell = Cell{Type: CellNumber, Number: float64(typed)}
	case string:
		if strings.TrimSpace(typed) == "" {
			return
		}
		cell = Cell{Type: CellText, Text: typed}
	case time.Time:
		cell = Cell{Type: CellDate, Date: typed}
	case Cell:
		if typed.Type == CellEmpty {
			return
		}
		cell = typed
	default:
		return
	}

	cells, exists := sheet.rows[row]
	if !exists {
		cells = make(map[int]Cell)
		sheet.rows[row] = cells
	}
	cells[column] = cell

	if row > sheet.maxRow {
		sheet.maxRow = row
	}
}

// MaxRow returns the highest 1-based row number holding any cell.
func (sheet *Sheet) MaxRow() int {
	return sheet.maxRow
}

// Cell returns the typed cell at (row, column); empty cells return the zero Cell.
func (sheet *Sheet) Cell(row int, column int) Cell {
	cells, exists := sheet.rows[row]
	if !exists {
		return Cell{}
	}
	return cells[column]
}

/*
Text returns the cell's string content and whether the cell holds text.
*/
func (sheet *Sheet) Text(row int, column int) (text string, ok bool) {
	cell := sheet.Cell(row, column)
	if cell.Type != CellText {
		return "", false
	}
	return cell.Text, true
}

/*
Number coerces the cell at (row, column) into a float64.

A numeric cell is returned as-is; a text cell is parsed after removing
thousands separators; anything else (dates, empties, unparsable text)
yields 0. Malformed cells never produce an error; best-effort extraction
depends on that.
*/
func (sheet *Sheet) Number(row int, column int) float64 {
	cell := sheet.Cell(row, column)

	switch cell.Type {
	case CellNumber:
		return cell.Number
	case CellText:
		cleaned := strings.ReplaceAll(strings.TrimSpace(cell.Text), ",", "")
		parsed, parseErr := strconv.ParseFloat(cleaned, 64)
		if parseErr != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

/*
Display returns the cell rendered as a label string: text as-is, numbers
without trailing zeros, dates as DD/MM/YYYY, empties as "".
*/
func (sheet *Sheet) Display(row int, column int) string {
	cell := sheet.Cell(row, column)

	switch cell.Type {
	case CellText:
		return cell.Text
	case CellNumber:
		return strconv.FormatFloat(cell.Number, 'f', -1, 64)
	case CellDate:
		return cell.Date.Format("02/01/2006")
	default:
		return ""
	}
}

/*
Date returns the cell interpreted as a date and whether that worked.

A date-typed cell is returned directly. A numeric cell inside the Excel
serial date window (40000 < n < 60000, i.e. roughly 2009..2064) is decoded
against the 1899-12-30 epoch, since manually authored sheets frequently
store dates as plain serial numbers.
*/
func (sheet *Sheet) Date(row int, column int) (date time.Time, ok bool) {
	cell := sheet.Cell(row, column)

	switch cell.Type {
	case CellDate:
		return cell.Date, true
	case CellNumber:
		if cell.Number > 40000 && cell.Number < 60000 {
			return DateFromSerial(cell.Number), true
		}
	}

	return date, false
}

// DateFromSerial decodes an Excel serial day number into a time.Time.
func DateFromSerial(serial float64) time.Time {
	epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	return epoch.AddDate(0, 0, int(serial))
}

// NewWorkbook builds a workbook from sheets, preserving their order.
func NewWorkbook(sheets ...*Sheet) *Workbook {
	wb := &Workbook{
		sheets: make([]*Sheet, 0, len(sheets)),
		byName: make(map[string]*Sheet, len(sheets)),
	}
	for _, sheet := range sheets {
		wb.sheets = append(wb.sheets, sheet)
		wb.byName[sheet.Name] = sheet
	}
	return wb
}

// Sheet returns the named sheet and whether it exists.
func (wb *Workbook) Sheet(name string) (sheet *Sheet, ok bool) {
	sheet, ok = wb.byName[name]
	return sheet, ok
}

// SheetNames returns the sheet names in workbook order.
func (wb *Workbook) SheetNames() []string {
	names := make([]string, 0, len(wb.sheets))
	for _, sheet := range wb.sheets {
		names = append(names, sheet.Name)
	}
	return names
}

/*
ColumnLetter converts a 0-based column index to its spreadsheet letter:
0 -> A, 1 -> B, 26 -> AA.
*/
func ColumnLetter(columnIndex int) string {
	result := ""
	column := columnIndex
	for {
		result = string(rune('A'+column%26)) + result
		column = column/26 - 1
		if column < 0 {
			break
		}
	}
	return result
}
