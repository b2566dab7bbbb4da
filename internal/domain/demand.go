package domain

import (
	"encoding/json"
	"time"
)

// DailyDemandPoint representa a demanda total de um dia de calendário (UTC).
// A série produzida pelo agregador é contígua: um ponto por dia, sem lacunas,
// dias sem venda entram com Units igual a zero.
type DailyDemandPoint struct {
	Date  time.Time `json:"date"`
	Units int       `json:"units"`
}

type dailyDemandPointJSON struct {
	Date  string `json:"date"`
	Units int    `json:"units"`
}

// MarshalJSON serializa o ponto com a data no formato de calendário (ISO-8601)
func (p DailyDemandPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(dailyDemandPointJSON{
		Date:  p.Date.Format(time.DateOnly),
		Units: p.Units,
	})
}

// DemandHistory é o envelope da série diária de demanda de um produto em uma
// janela de datas fechada
type DemandHistory struct {
	ProductSKU  string             `json:"product_sku"`
	StartDate   time.Time          `json:"-"`
	EndDate     time.Time          `json:"-"`
	TotalUnits  int                `json:"total_units"`
	DailyDemand []DailyDemandPoint `json:"daily_demand"`
}

// MarshalJSON serializa a janela com datas no formato de calendário
func (h DemandHistory) MarshalJSON() ([]byte, error) {
	type alias DemandHistory
	return json.Marshal(struct {
		alias
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}{
		alias:     alias(h),
		StartDate: h.StartDate.Format(time.DateOnly),
		EndDate:   h.EndDate.Format(time.DateOnly),
	})
}

// TrendModel é o resultado imutável de um ajuste de tendência sobre a série
// diária de um produto. Consumido apenas pelo projetor de horizonte.
type TrendModel struct {
	Slope       float64 `json:"slope"`
	Intercept   float64 `json:"intercept"`
	FitScore    float64 `json:"fit_score"`
	SampleCount int     `json:"sample_count"`
	ResidualStd float64 `json:"residual_std"`
}
