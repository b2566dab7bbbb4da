package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-forecast-api/internal/metrics"
	"github.com/vfg2006/inventory-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/inventory-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-forecast-api/pkg/log"
)

// ForecastPolicy limita o horizonte aceito pela camada HTTP. O core em si só
// rejeita horizontes não positivos; o teto é decisão de política do serviço.
type ForecastPolicy struct {
	DefaultHorizonDays int
	MaxHorizonDays     int
}

// GetForecast computa uma previsão de demanda nova para o SKU informado
func GetForecast(service forecasting.Forecaster, policy ForecastPolicy, collector *metrics.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sku := httprouter.ParamsFromContext(r.Context()).ByName("sku")
		logger.WithField("product_sku", sku).Info("previsão: requisição de forecast recebida")

		horizonDays, err := parseHorizon(r.URL.Query().Get("days"), policy)
		if err != nil {
			logger.WithFields(log.Fields{
				"product_sku": sku,
				"days":        r.URL.Query().Get("days"),
				"error":       err.Error(),
			}).Warn("previsão: parâmetro days inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidHorizon, err.Error(), nil)
			return
		}

		start := time.Now()
		result, err := service.ForecastBySKU(sku, horizonDays)
		duration := time.Since(start)

		if err != nil {
			writeForecastError(w, logger, sku, err)
			if collector != nil {
				collector.ObserveForecast("error", duration)
			}
			return
		}

		if collector != nil {
			collector.ObserveForecast("success", duration)
		}

		logger.WithFields(log.Fields{
			"product_sku":      sku,
			"forecast_horizon": horizonDays,
		}).Info("previsão: forecast gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithFields(log.Fields{
				"product_sku": sku,
				"error":       err.Error(),
			}).Error("previsão: erro ao serializar resposta")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetLatestForecast retorna a última previsão persistida do SKU, sem recomputar
func GetLatestForecast(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sku := httprouter.ParamsFromContext(r.Context()).ByName("sku")
		logger.WithField("product_sku", sku).Info("previsão: buscando última previsão armazenada")

		result, err := service.LatestBySKU(sku)
		if err != nil {
			writeForecastError(w, logger, sku, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithFields(log.Fields{
				"product_sku": sku,
				"error":       err.Error(),
			}).Error("previsão: erro ao serializar resposta")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parseHorizon valida o parâmetro days contra a política configurada.
// Ausente usa o default; não inteiro, não positivo ou acima do teto falham.
func parseHorizon(raw string, policy ForecastPolicy) (int, error) {
	if raw == "" {
		return policy.DefaultHorizonDays, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrap(forecasting.ErrInvalidHorizon, raw)
	}

	if days < 1 {
		return 0, forecasting.ErrInvalidHorizon
	}

	if policy.MaxHorizonDays > 0 && days > policy.MaxHorizonDays {
		return 0, errors.Wrapf(forecasting.ErrInvalidHorizon,
			"máximo permitido é %d dias", policy.MaxHorizonDays)
	}

	return days, nil
}

// writeForecastError traduz os erros do core para a resposta HTTP padronizada
func writeForecastError(w http.ResponseWriter, logger log.Logger, sku string, err error) {
	switch {
	case errors.Is(err, forecasting.ErrProductNotFound):
		logger.WithField("product_sku", sku).Warn("previsão: produto não encontrado")
		apiErrors.WriteError(w, apiErrors.ErrProductNotFound, err.Error(), nil)

	case errors.Is(err, forecasting.ErrInsufficientHistory):
		logger.WithField("product_sku", sku).Warn("previsão: histórico insuficiente")
		apiErrors.WriteError(w, apiErrors.ErrInsufficientHistory, err.Error(), nil)

	case errors.Is(err, forecasting.ErrForecastNotFound):
		logger.WithField("product_sku", sku).Info("previsão: nenhuma previsão armazenada")
		apiErrors.WriteError(w, apiErrors.ErrForecastNotFound, err.Error(), nil)

	case errors.Is(err, forecasting.ErrInvalidHorizon):
		apiErrors.WriteError(w, apiErrors.ErrInvalidHorizon, err.Error(), nil)

	case errors.Is(err, forecasting.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		logger.WithFields(log.Fields{
			"product_sku": sku,
			"error":       err.Error(),
		}).Error("previsão: falha ao gerar forecast")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
