package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
	"github.com/vfg2006/inventory-forecast-api/internal/usecases/inventorying"
	"github.com/vfg2006/inventory-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-forecast-api/pkg/log"
)

// ListProducts lista o catálogo, com filtro opcional de status via query string
func ListProducts(service inventorying.InventoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var statuses []domain.ProductStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			statuses = append(statuses, domain.ProductStatus(raw))
		}

		products, err := service.ListProducts(statuses)
		if err != nil {
			logger.WithField("error", err.Error()).Error("catálogo: erro ao listar produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logger.WithField("error", err.Error()).Error("catálogo: erro ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetProductBySKU busca um único produto do catálogo
func GetProductBySKU(service inventorying.InventoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sku := httprouter.ParamsFromContext(r.Context()).ByName("sku")
		logger.WithField("product_sku", sku).Debug("catálogo: buscando produto")

		product, err := service.GetProductBySKU(sku)
		if err != nil {
			if errors.Is(err, inventorying.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProductNotFound, err.Error(), nil)
				return
			}

			if errors.Is(err, inventorying.ErrSKURequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			logger.WithFields(log.Fields{
				"product_sku": sku,
				"error":       err.Error(),
			}).Error("catálogo: erro ao buscar produto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(product); err != nil {
			logger.WithField("error", err.Error()).Error("catálogo: erro ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
