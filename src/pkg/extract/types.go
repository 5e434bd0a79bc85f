/*
Package extract turns a valuation workbook into a structured ProjectRecord.

Weekly valuation workbooks are authored by hand and their layout drifts, so
everything here is heuristic: bounded header scans for marker labels,
a category fold over item rows, label-anchored total lookups, and a two-way
amount/percent repair pass. Per-cell parse failures always degrade to
zero/empty; a partially-wrong report beats no report. Only a missing
mandatory sheet is fatal.
*/
package extract

import "time"

/*
CostBreakdown is the executed-cost summary scraped from the RES-COSTO sheet.

TotalCD and TotalGG are always recomputed from the component fields, never
trusted from the sheet.
*/
type CostBreakdown struct {
	ProjectName string    `json:"project_name"`
	Date        time.Time `json:"date"`
	Author      string    `json:"author"`

	PersonalObrero float64 `json:"personal_obrero"`
	Materiales     float64 `json:"materiales"`
	Alquileres     float64 `json:"alquileres"`
	Subcontratos   float64 `json:"subcontratos"`
	CostosVarios   float64 `json:"costos_varios"`
	PlanillaStaff  float64 `json:"planilla_staff"`
	OtrosGG        float64 `json:"otros_gg"`

	TotalCD float64 `json:"total_cd"`
	TotalGG float64 `json:"total_gg"`
}

/*
ValuationSummary is the billed-amount summary scraped from the RVAL sheet.

Amount and percent pairs (GastosGenerales/GGPercent, Utilidad/UtilPercent)
are kept mutually consistent by the repair pass in extractRval.
*/
type ValuationSummary struct {
	ProjectName string    `json:"project_name"`
	Date        time.Time `json:"date"`
	Author      string    `json:"author"`

	CostoDirecto      float64 `json:"costo_directo"`
	GastosGenerales   float64 `json:"gastos_generales"`
	GGPercent         float64 `json:"gg_percent"`
	Utilidad          float64 `json:"utilidad"`
	UtilPercent       float64 `json:"util_percent"`
	TotalValorizacion float64 `json:"total_valorizacion"`
}

/*
MonthPoint is one month of a progress series. ParcialPct and AcumPct are
fractions of the contract total (0.25 = 25%), as stored in the sheet.
*/
type MonthPoint struct {
	Mes        string  `json:"mes"`
	Parcial    float64 `json:"parcial"`
	Acumulado  float64 `json:"acumulado"`
	ParcialPct float64 `json:"parcial_pct"`
	AcumPct    float64 `json:"acum_pct"`
}

/*
ProgressSeries is the S-curve data from the CURVA sheet: three parallel
month series. Proyectado is nil when the sheet has no forecast column group.

MesActualIndex is the last index with nonzero executed data (-1 when the
sheet has none); every index beyond it is forecast. Total is the grand
contractual total, defaulting to the last contractual Acumulado when the
sheet has no TOTAL row.
*/
type ProgressSeries struct {
	Contractual []MonthPoint `json:"contractual"`
	Valorizado  []MonthPoint `json:"valorizado"`
	Proyectado  []MonthPoint `json:"proyectado,omitempty"`

	MesActualIndex int     `json:"mes_actual_index"`
	Total          float64 `json:"total"`
}

/*
ProjectRecord aggregates everything extracted from one workbook. It is
built once per extraction and read-only afterwards; the renderer never
mutates it.
*/
type ProjectRecord struct {
	ResCosto CostBreakdown    `json:"res_costo"`
	Rval     ValuationSummary `json:"rval"`
	Curva    *ProgressSeries  `json:"curva,omitempty"`

	ProjectName string    `json:"project_name"`
	ShortName   string    `json:"short_name"`
	Date        time.Time `json:"date"`
	Author      string    `json:"author"`
}
