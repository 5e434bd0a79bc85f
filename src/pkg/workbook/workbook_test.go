package workbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNumberCoercion(t *testing.T) {
	sheet := NewSheet("S")
	sheet.Set(1, 0, 1234.56)
	sheet.Set(2, 0, "1,234.56")
	sheet.Set(3, 0, "  2,500 ")
	sheet.Set(4, 0, "no es un numero")
	sheet.Set(5, 0, time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC))

	require.Equal(t, 1234.56, sheet.Number(1, 0))
	require.Equal(t, 1234.56, sheet.Number(2, 0))
	require.Equal(t, 2500.0, sheet.Number(3, 0))
	require.Equal(t, 0.0, sheet.Number(4, 0), "unparsable text coerces to zero, never errors")
	require.Equal(t, 0.0, sheet.Number(5, 0), "dates do not coerce to their serial")
	require.Equal(t, 0.0, sheet.Number(99, 0), "missing cells coerce to zero")
}

func TestDisplay(t *testing.T) {
	sheet := NewSheet("S")
	sheet.Set(1, 0, "Proyecto")
	sheet.Set(2, 0, 42.0)
	sheet.Set(3, 0, time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC))

	require.Equal(t, "Proyecto", sheet.Display(1, 0))
	require.Equal(t, "42", sheet.Display(2, 0))
	require.Equal(t, "22/02/2026", sheet.Display(3, 0))
	require.Equal(t, "", sheet.Display(4, 0))
}

func TestDateFromSerial(t *testing.T) {
	// Well-known Excel anchors.
	require.Equal(t, time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), DateFromSerial(2))
	require.Equal(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), DateFromSerial(36526))
}

func TestDateSerialWindow(t *testing.T) {
	sheet := NewSheet("S")
	sheet.Set(1, 0, 45000.0)
	sheet.Set(2, 0, 150.0)
	sheet.Set(3, 0, 70000.0)
	sheet.Set(4, 0, time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC))

	date, ok := sheet.Date(1, 0)
	require.True(t, ok)
	require.Equal(t, DateFromSerial(45000), date)

	_, ok = sheet.Date(2, 0)
	require.False(t, ok, "small numbers are plain numbers, not dates")
	_, ok = sheet.Date(3, 0)
	require.False(t, ok, "numbers past the window are not dates")

	date, ok = sheet.Date(4, 0)
	require.True(t, ok)
	require.Equal(t, 2026, date.Year())
}

func TestSetBlankStringIsEmpty(t *testing.T) {
	sheet := NewSheet("S")
	sheet.Set(1, 0, "   ")

	require.Equal(t, CellEmpty, sheet.Cell(1, 0).Type)
	require.Equal(t, 0, sheet.MaxRow())
}

func TestWorkbookSheetLookup(t *testing.T) {
	first := NewSheet("RES-COSTO")
	second := NewSheet("RVAL")
	wb := NewWorkbook(first, second)

	found, ok := wb.Sheet("RVAL")
	require.True(t, ok)
	require.Equal(t, second, found)

	_, ok = wb.Sheet("CURVA")
	require.False(t, ok)

	require.Equal(t, []string{"RES-COSTO", "RVAL"}, wb.SheetNames())
}

func TestColumnLetter(t *testing.T) {
	require.Equal(t, "A", ColumnLetter(0))
	require.Equal(t, "G", ColumnLetter(6))
	require.Equal(t, "Z", ColumnLetter(25))
	require.Equal(t, "AA", ColumnLetter(26))
}
