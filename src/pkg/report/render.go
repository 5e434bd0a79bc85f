/*
Package report renders a ProjectRecord into a standalone weekly valuation
report: a self-contained HTML document with embedded CSS and an inline
SVG S-curve chart, laid out as printable A4 pages.

Page 1 (valuation cut and comparative analysis) always renders; page 2
(S-curve) only when the record carries progress data. The renderer reads
the record and never mutates it.
*/
package report

import (
	"html"
	"regexp"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"valuation-report/src/pkg/extract"
)

func escapeHTML(raw string) string {
	return html.EscapeString(raw)
}

var whitespaceRegexp = regexp.MustCompile(`\s+`)

/*
SuggestedFileName builds the conventional report file name, for example
"COS-PR02-FR02_VAL_SEMANAL_BEETHOVEN_22-Feb-2026.html". Spaces in the
project short name become underscores; a zero date drops the date part.
*/
func SuggestedFileName(record extract.ProjectRecord) string {
	obra := strings.TrimSpace(record.ShortName)
	if obra == "" {
		obra = "REPORTE"
	}
	obra = whitespaceRegexp.ReplaceAllString(obra, "_")

	datePart := ""
	if shortDate := FormatDateShort(record.Date); shortDate != "" {
		datePart = "_" + shortDate
	}

	return "COS-PR02-FR02_VAL_SEMANAL_" + obra + datePart + ".html"
}

/*
Generate renders the full standalone report for a record and returns the
HTML document together with its suggested file name.
*/
func Generate(record extract.ProjectRecord) (htmlDocument string, fileName string) {
	var body strings.Builder
	body.WriteString(renderValuationPage(record))

	if record.Curva != nil && len(record.Curva.Contractual) > 0 {
		body.WriteString(renderCurvePage(record))
	} else {
		tl.Log(tl.Notice, palette.YellowDim, "No S-curve data, rendering a single page report")
	}

	return wrapStandaloneHTML(body.String()), SuggestedFileName(record)
}

/*
wrapStandaloneHTML wraps the report pages in a complete HTML document
with the stylesheet embedded, so the file opens correctly with no
external assets.
*/
func wrapStandaloneHTML(reportContent string) string {
	var document strings.Builder
	document.WriteString(`<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>COS-PR02-FR02 Reporte Valorizaci&#243;n Semanal</title>
    <style>
`)
	document.WriteString(reportCSS)
	document.WriteString(`    </style>
</head>
<body>
`)
	document.WriteString(reportContent)
	document.WriteString(`
</body>
</html>`)
	return document.String()
}
