package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Spanish month names for the long report date ("22 de Febrero de 2026").
// "Setiembre" is the Peruvian spelling these reports use.
var monthNames = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Setiembre", "Octubre", "Noviembre", "Diciembre",
}

// Spanish month abbreviations for file names ("22-Feb-2026").
var monthAbbreviations = []string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Set", "Oct", "Nov", "Dic",
}

/*
FormatMoney formats an amount with comma thousands separators and two
decimals: 1234567.891 -> "1,234,567.89". Negative amounts keep the sign in
front of the grouped digits.
*/
func FormatMoney(amount float64) string {
	fixed := strconv.FormatFloat(math.Abs(amount), 'f', 2, 64)
	parts := strings.SplitN(fixed, ".", 2)

	grouped := groupThousands(parts[0], ",")

	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + grouped + "." + parts[1]
}

// FormatPercentFraction renders a 0..1 fraction as a percentage: 0.1234 -> "12.34%".
func FormatPercentFraction(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}

// FormatPercent renders an already-scaled percentage value: 16.666 -> "16.67%".
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

/*
FormatDateLong renders a date the way the report header wants it:
"22 de Febrero de 2026". A zero date renders as "".
*/
func FormatDateLong(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d de %s de %d", date.Day(), monthNames[date.Month()-1], date.Year())
}

/*
FormatDateShort renders a date for file names: "22-Feb-2026", day always
two digits. A zero date renders as "".
*/
func FormatDateShort(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d-%s-%d", date.Day(), monthAbbreviations[date.Month()-1], date.Year())
}

/*
groupThousands groups digits in a base-10 string using the provided separator.
*/
func groupThousands(raw string, sep string) string {
	if len(raw) <= 3 {
		return raw
	}

	var builder strings.Builder
	firstGroupLen := len(raw) % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}

	builder.WriteString(raw[:firstGroupLen])

	for index := firstGroupLen; index < len(raw); index += 3 {
		builder.WriteString(sep)
		builder.WriteString(raw[index : index+3])
	}

	return builder.String()
}
