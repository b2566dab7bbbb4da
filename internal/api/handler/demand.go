package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/inventory-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/inventory-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-forecast-api/pkg/log"
	"github.com/vfg2006/inventory-forecast-api/pkg/utils"
)

// GetDemandHistory retorna a série diária de demanda agregada do SKU em uma
// janela de datas. Sem from/to usa a janela padrão do serviço.
func GetDemandHistory(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sku := httprouter.ParamsFromContext(r.Context()).ByName("sku")

		from, err := parseDateParam(r.URL.Query().Get("from"))
		if err != nil {
			logger.WithFields(log.Fields{
				"product_sku": sku,
				"from":        r.URL.Query().Get("from"),
			}).Warn("demanda: parâmetro from inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		to, err := parseDateParam(r.URL.Query().Get("to"))
		if err != nil {
			logger.WithFields(log.Fields{
				"product_sku": sku,
				"to":          r.URL.Query().Get("to"),
			}).Warn("demanda: parâmetro to inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		history, err := service.DemandHistory(sku, from, to)
		if err != nil {
			writeForecastError(w, logger, sku, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(history); err != nil {
			logger.WithFields(log.Fields{
				"product_sku": sku,
				"error":       err.Error(),
			}).Error("demanda: erro ao serializar resposta")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parseDateParam interpreta um parâmetro de data opcional (2006-01-02)
func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	return utils.ParseDate(raw)
}
