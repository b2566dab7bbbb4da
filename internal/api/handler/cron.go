package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-forecast-api/internal/scheduler"
	"github.com/vfg2006/inventory-forecast-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeForecast = "forecast"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ForecastSyncService *scheduler.ForecastSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeForecast:
			if services.ForecastSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recálculo de previsões não disponível", nil)
				return
			}
			services.ForecastSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: forecast", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}

		if services.ForecastSyncService != nil {
			status["forecast"] = map[string]any{
				"running":           services.ForecastSyncService.IsRunning(),
				"last_started_at":   services.ForecastSyncService.LastSyncStartedAt(),
				"last_completed_at": services.ForecastSyncService.LastSyncCompletedAt(),
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
