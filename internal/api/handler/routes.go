package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/inventory-forecast-api/internal/api/handler/router"
	"github.com/vfg2006/inventory-forecast-api/internal/metrics"
	"github.com/vfg2006/inventory-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/inventory-forecast-api/internal/usecases/inventorying"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(collector *metrics.Collector) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: collector.Handler(),
		},
	}
}

func Products(service inventorying.InventoryService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products/:sku",
			Method:  http.MethodGet,
			Handler: GetProductBySKU(service),
		},
	}
}

func Forecasts(service forecasting.Forecaster, policy ForecastPolicy, collector *metrics.Collector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products/:sku/forecast",
			Method:  http.MethodGet,
			Handler: GetForecast(service, policy, collector),
		},
		{
			Path:    "/v1/products/:sku/forecast/latest",
			Method:  http.MethodGet,
			Handler: GetLatestForecast(service),
		},
		{
			Path:    "/v1/products/:sku/demand",
			Method:  http.MethodGet,
			Handler: GetDemandHistory(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
