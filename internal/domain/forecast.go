package domain

import (
	"encoding/json"
	"time"
)

// ModelLinearRegression é a tag do modelo de regressão linear simples
const ModelLinearRegression = "linear_regression"

// ForecastPoint é a previsão de demanda para um único dia futuro.
// Invariantes: PredictedDemand >= 0, LowerBound >= 0 e
// UpperBound >= PredictedDemand >= LowerBound.
type ForecastPoint struct {
	Date            time.Time
	PredictedDemand float64
	LowerBound      float64
	UpperBound      float64
}

// forecastPointJSON é a forma serializada de ForecastPoint, com a data
// como string de calendário (sem hora)
type forecastPointJSON struct {
	Date            string  `json:"date"`
	PredictedDemand float64 `json:"predicted_demand"`
	LowerBound      float64 `json:"lower_bound"`
	UpperBound      float64 `json:"upper_bound"`
}

// MarshalJSON serializa o ponto com a data no formato de calendário (ISO-8601)
func (p ForecastPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(forecastPointJSON{
		Date:            p.Date.Format(time.DateOnly),
		PredictedDemand: p.PredictedDemand,
		LowerBound:      p.LowerBound,
		UpperBound:      p.UpperBound,
	})
}

// UnmarshalJSON reconstrói o ponto a partir da forma serializada
func (p *ForecastPoint) UnmarshalJSON(data []byte) error {
	var raw forecastPointJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	date, err := time.ParseInLocation(time.DateOnly, raw.Date, time.UTC)
	if err != nil {
		return err
	}

	p.Date = date
	p.PredictedDemand = raw.PredictedDemand
	p.LowerBound = raw.LowerBound
	p.UpperBound = raw.UpperBound
	return nil
}

// ForecastResult é o envelope final de uma previsão de demanda por SKU
type ForecastResult struct {
	ProductSKU          string          `json:"product_sku"`
	ModelUsed           string          `json:"model_used"`
	ConfidenceScore     float64         `json:"confidence_score"`
	ForecastHorizonDays int             `json:"forecast_horizon_days"`
	GeneratedAt         time.Time       `json:"generated_at"`
	ForecastData        []ForecastPoint `json:"forecast_data"`
}

// ForecastEntry representa o cache persistido da última previsão de um SKU
type ForecastEntry struct {
	ID                  string          `json:"id"`
	ProductSKU          string          `json:"product_sku"`
	ModelUsed           string          `json:"model_used"`
	ConfidenceScore     float64         `json:"confidence_score"`
	ForecastHorizonDays int             `json:"forecast_horizon_days"`
	GeneratedAt         time.Time       `json:"generated_at"`
	ForecastData        []ForecastPoint `json:"forecast_data"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ToResult reconstrói o envelope de previsão a partir de uma entrada do cache
func (e *ForecastEntry) ToResult() *ForecastResult {
	if e == nil {
		return nil
	}

	return &ForecastResult{
		ProductSKU:          e.ProductSKU,
		ModelUsed:           e.ModelUsed,
		ConfidenceScore:     e.ConfidenceScore,
		ForecastHorizonDays: e.ForecastHorizonDays,
		GeneratedAt:         e.GeneratedAt,
		ForecastData:        e.ForecastData,
	}
}
