package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector expõe métricas Prometheus do serviço: latência/volume das
// requisições HTTP e contadores do pipeline de previsão.
type Collector struct {
	registry         *prometheus.Registry
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	forecastTotal    *prometheus.CounterVec
	forecastDuration prometheus.Histogram
}

// NewCollector constrói o coletor com os histogramas e contadores padrão
func NewCollector() (*Collector, error) {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "inventory_forecast",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Distribuição de latência das requisições HTTP recebidas.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inventory_forecast",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total de requisições HTTP recebidas.",
	}, []string{"method", "path", "status"})

	forecastTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inventory_forecast",
		Subsystem: "pipeline",
		Name:      "forecasts_total",
		Help:      "Total de previsões computadas, por resultado.",
	}, []string{"outcome"})

	forecastDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "inventory_forecast",
		Subsystem: "pipeline",
		Name:      "forecast_duration_seconds",
		Help:      "Distribuição de duração do pipeline de previsão.",
		Buckets:   prometheus.DefBuckets,
	})

	collectors := []prometheus.Collector{requestDuration, requestTotal, forecastTotal, forecastDuration}
	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return nil, err
		}
	}

	return &Collector{
		registry:         registry,
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		forecastTotal:    forecastTotal,
		forecastDuration: forecastDuration,
	}, nil
}

// Handler retorna o handler HTTP que expõe o registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// InstrumentHandler envolve o handler para registrar métricas HTTP
func (c *Collector) InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.status)
		path := r.URL.Path

		c.requestTotal.WithLabelValues(r.Method, path, status).Inc()
		c.requestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
	})
}

// ObserveForecast registra o resultado e a duração de um cômputo de previsão
func (c *Collector) ObserveForecast(outcome string, duration time.Duration) {
	c.forecastTotal.WithLabelValues(outcome).Inc()
	c.forecastDuration.Observe(duration.Seconds())
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
