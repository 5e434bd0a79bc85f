package report

import (
	"bytes"
	"fmt"

	"valuation-report/src/pkg/extract"
)

/*
renderVariationCard renders one of the three variation cards of the
comparative analysis section. Sign and colors follow the variation
amount; a zero variation shows as positive.
*/
func renderVariationCard(title string, pct float64, amount float64) string {
	valueClass := "positivo"
	amountClass := "ganancia"
	sign := "+"
	amountSign := "+"
	if amount < 0 {
		valueClass = "negativo"
		amountClass = "perdida"
		sign = ""
		amountSign = "-"
	}

	absAmount := amount
	if absAmount < 0 {
		absAmount = -absAmount
	}

	return fmt.Sprintf(`
    <div class="card">
        <div class="card-title">%s</div>
        <div class="card-value %s">%s%.2f%%</div>
        <div class="card-monto %s">%sS/ %s</div>
    </div>`, title, valueClass, sign, pct, amountClass, amountSign, FormatMoney(absAmount))
}

/*
renderComparisonRow renders one row of the comparative table from a
Comparison. Total rows get the highlighted total styling and bold cells.
*/
func renderComparisonRow(page *bytes.Buffer, concepto string, comparison Comparison, isTotal bool) {
	varianceClass := "valor-positivo"
	sign := "+"
	estadoClass := "estado-ganancia"
	estadoText := "GANANCIA"
	if comparison.Variance < 0 {
		varianceClass = "valor-negativo"
		sign = ""
		estadoClass = "estado-perdida"
		estadoText = "P&#201;RDIDA"
	}

	if isTotal {
		fmt.Fprintf(
			page,
			`<tr class="total-row">`+
				`<td><strong>%s</strong></td>`+
				`<td class="num"><strong>%s</strong></td>`+
				`<td class="num"><strong>%s</strong></td>`+
				`<td class="num %s"><strong>%s%s</strong></td>`+
				`<td class="num %s"><strong>%s%.2f%%</strong></td>`+
				`<td style="text-align:center"><span class="estado-box %s">%s</span></td>`+
				`</tr>`,
			concepto,
			FormatMoney(comparison.Valorizacion), FormatMoney(comparison.Ejecutado),
			varianceClass, sign, FormatMoney(comparison.Variance),
			varianceClass, sign, comparison.VariancePct,
			estadoClass, estadoText,
		)
		return
	}

	fmt.Fprintf(
		page,
		`<tr>`+
			`<td>%s</td>`+
			`<td class="num">%s</td>`+
			`<td class="num">%s</td>`+
			`<td class="num %s">%s%s</td>`+
			`<td class="num %s">%s%.2f%%</td>`+
			`<td style="text-align:center"><span class="estado-box %s">%s</span></td>`+
			`</tr>`,
		concepto,
		FormatMoney(comparison.Valorizacion), FormatMoney(comparison.Ejecutado),
		varianceClass, sign, FormatMoney(comparison.Variance),
		varianceClass, sign, comparison.VariancePct,
		estadoClass, estadoText,
	)
}

/*
renderValuationPage builds page 1 of the report: the valuation cut with
its tax block, the executed direct-cost and overhead breakdowns side by
side, and the comparative valorized-vs-executed analysis with cards and
table.
*/
func renderValuationPage(record extract.ProjectRecord) string {
	resCosto := record.ResCosto
	rval := record.Rval

	subTotal, igv, totalConIGV := ValuationTotals(rval)

	cdComparison := CompareAmounts(rval.CostoDirecto, resCosto.TotalCD)
	ggComparison := CompareAmounts(rval.GastosGenerales, resCosto.TotalGG)
	totalComparison := CompareAmounts(
		rval.CostoDirecto+rval.GastosGenerales,
		resCosto.TotalCD+resCosto.TotalGG,
	)

	cdItems := []struct {
		Name  string
		Value float64
	}{
		{"Costo de Materiales", resCosto.Materiales},
		{"Costo de Alquileres", resCosto.Alquileres},
		{"Costo de Subcontratos", resCosto.Subcontratos},
		{"Costo Varios", resCosto.CostosVarios},
		{"Costo Personal Obrero", resCosto.PersonalObrero},
	}

	ggItems := []struct {
		Name  string
		Value float64
	}{
		{"Planilla Staff", resCosto.PlanillaStaff},
		{"Otros Gastos Generales", resCosto.OtrosGG},
	}

	var cdRows bytes.Buffer
	for _, item := range cdItems {
		pct := "0.00%"
		if resCosto.TotalCD > 0 {
			pct = fmt.Sprintf("%.2f%%", (item.Value/resCosto.TotalCD)*100)
		}
		fmt.Fprintf(&cdRows, `<tr><td>%s</td><td class="num">%s</td><td class="num">%s</td></tr>`, item.Name, FormatMoney(item.Value), pct)
	}

	var ggRows bytes.Buffer
	for _, item := range ggItems {
		pct := "0.00%"
		if resCosto.TotalGG > 0 {
			pct = fmt.Sprintf("%.2f%%", (item.Value/resCosto.TotalGG)*100)
		}
		fmt.Fprintf(&ggRows, `<tr><td>%s</td><td class="num">%s</td><td class="num">%s</td></tr>`, item.Name, FormatMoney(item.Value), pct)
	}

	cardsHTML := renderVariationCard("COSTO DIRECTO", cdComparison.VariancePct, cdComparison.Variance) +
		renderVariationCard("GASTOS GENERALES", ggComparison.VariancePct, ggComparison.Variance) +
		renderVariationCard("VARIACI&#211;N TOTAL", totalComparison.VariancePct, totalComparison.Variance)

	var compRows bytes.Buffer
	renderComparisonRow(&compRows, "Costo Directo", cdComparison, false)
	renderComparisonRow(&compRows, "Gastos Generales", ggComparison, false)
	renderComparisonRow(&compRows, "TOTAL", totalComparison, true)

	var page bytes.Buffer
	fmt.Fprintf(&page, `
    <div class="page">
        <div class="header">
            <div class="header-titles">
                <h1>COS-PR02-FR02 REPORTE DE VALORIZACI&#211;N SEMANAL</h1>
                <h2>An&#225;lisis Comparativo: Valorizaci&#243;n vs Gastos Ejecutados</h2>
            </div>
            <div class="header-obra">
                <div><span class="header-obra-label">OBRA:</span> <span class="header-obra-value">%s</span></div>
                <div class="header-fecha">%s</div>
            </div>
        </div>

        <div class="section-title"><span class="numero">1</span>CORTE DE VALORIZACI&#211;N</div>
        <table>
            <thead><tr><th>Concepto</th><th class="num">Monto (S/)</th><th class="num">Porcentaje</th></tr></thead>
            <tbody>
                <tr><td>Costo Directo</td><td class="num">%s</td><td class="num">100.00%%</td></tr>
                <tr><td>Gastos Generales</td><td class="num">%s</td><td class="num">%s</td></tr>
                <tr><td>Utilidad</td><td class="num">%s</td><td class="num">%s</td></tr>
                <tr><td>Sub Total</td><td class="num">%s</td><td class="num">&mdash;</td></tr>
                <tr><td>IGV</td><td class="num">%s</td><td class="num">18.00%%</td></tr>
                <tr class="total-row"><td><strong>Total Valorizaci&#243;n</strong></td><td class="num"><strong>%s</strong></td><td class="num">&mdash;</td></tr>
            </tbody>
        </table>
`,
		escapeHTML(record.ShortName), FormatDateLong(record.Date),
		FormatMoney(rval.CostoDirecto),
		FormatMoney(rval.GastosGenerales), FormatPercent(rval.GGPercent),
		FormatMoney(rval.Utilidad), FormatPercent(rval.UtilPercent),
		FormatMoney(subTotal),
		FormatMoney(igv),
		FormatMoney(totalConIGV),
	)

	fmt.Fprintf(&page, `
        <div class="two-columns">
            <div>
                <div class="section-title"><span class="numero">2</span>GASTOS EJECUTADOS - COSTO DIRECTO</div>
                <table>
                    <thead><tr><th>Concepto</th><th class="num">Monto (S/)</th><th class="num">%%</th></tr></thead>
                    <tbody>
                        %s
                        <tr class="total-row"><td><strong>TOTAL CD EJECUTADO</strong></td><td class="num"><strong>%s</strong></td><td class="num"><strong>100.00%%</strong></td></tr>
                    </tbody>
                </table>
            </div>
            <div>
                <div class="section-title"><span class="numero">3</span>GASTOS GENERALES EJECUTADOS</div>
                <table>
                    <thead><tr><th>Concepto</th><th class="num">Monto (S/)</th><th class="num">%%</th></tr></thead>
                    <tbody>
                        %s
                        <tr class="total-row"><td><strong>TOTAL GG EJECUTADOS</strong></td><td class="num"><strong>%s</strong></td><td class="num"><strong>100.00%%</strong></td></tr>
                    </tbody>
                </table>
            </div>
        </div>

        <div class="section-title"><span class="numero">4</span>AN&#193;LISIS COMPARATIVO - VALORIZACI&#211;N VS GASTOS EJECUTADOS</div>
        <div class="cards-container">
            %s
        </div>
        <table class="tabla-comparativa">
            <thead><tr>
                <th>Concepto</th><th class="num">Valorizaci&#243;n (S/)</th><th class="num">Ejecutado (S/)</th>
                <th class="num">Variaci&#243;n (S/)</th><th class="num">Var. (%%)</th><th style="text-align:center">Estado</th>
            </tr></thead>
            <tbody>
                %s
            </tbody>
        </table>
    </div>`,
		cdRows.String(), FormatMoney(resCosto.TotalCD),
		ggRows.String(), FormatMoney(resCosto.TotalGG),
		cardsHTML,
		compRows.String(),
	)

	return page.String()
}
