package forecasting

import (
	"time"

	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

// Forecaster define a interface do serviço de previsão de demanda
type Forecaster interface {
	// ForecastBySKU computa uma previsão nova para o produto e atualiza o cache.
	// Falha com ErrProductNotFound, ErrInsufficientHistory ou ErrInvalidHorizon.
	ForecastBySKU(sku string, horizonDays int) (*domain.ForecastResult, error)

	// LatestBySKU retorna a última previsão armazenada para o produto, sem
	// recomputar. Falha com ErrForecastNotFound quando não há cache.
	LatestBySKU(sku string) (*domain.ForecastResult, error)

	// DemandHistory retorna a série diária de demanda do produto na janela
	// [from, to]. Ponteiros nulos usam a janela padrão dos últimos 30 dias.
	DemandHistory(sku string, from, to *time.Time) (*domain.DemandHistory, error)
}
