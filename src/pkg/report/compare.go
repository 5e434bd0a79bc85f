package report

import "valuation-report/src/pkg/extract"

// Comparison states for the valorized-vs-executed analysis. A zero
// variance counts as GANANCIA (non-loss).
const (
	StateGanancia = "GANANCIA"
	StatePerdida  = "PERDIDA"
)

/*
Comparison is one row of the comparative analysis: how a valorized amount
stands against the executed cost it is supposed to cover.
*/
type Comparison struct {
	Valorizacion float64
	Ejecutado    float64
	Variance     float64
	VariancePct  float64
	State        string
}

/*
CompareAmounts computes variance = valorizacion - ejecutado, the variance
as a percentage of the executed amount (0 when ejecutado is 0), and the
GANANCIA/PERDIDA state by the sign of the variance.
*/
func CompareAmounts(valorizacion float64, ejecutado float64) Comparison {
	variance := valorizacion - ejecutado

	variancePct := 0.0
	if ejecutado != 0 {
		variancePct = (variance / ejecutado) * 100
	}

	state := StateGanancia
	if variance < 0 {
		state = StatePerdida
	}

	return Comparison{
		Valorizacion: valorizacion,
		Ejecutado:    ejecutado,
		Variance:     variance,
		VariancePct:  variancePct,
		State:        state,
	}
}

// igvRate is the fixed sales-tax policy constant applied to the valuation cut.
const igvRate = 0.18

/*
ValuationTotals derives the tax block of the valuation cut:
subtotal = CD + GG + utilidad, IGV at the fixed 18% rate, and the total
with IGV.
*/
func ValuationTotals(rval extract.ValuationSummary) (subTotal float64, igv float64, totalConIGV float64) {
	subTotal = rval.CostoDirecto + rval.GastosGenerales + rval.Utilidad
	igv = subTotal * igvRate
	totalConIGV = subTotal + igv
	return subTotal, igv, totalConIGV
}
