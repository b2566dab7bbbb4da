package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/repository"
	"github.com/vfg2006/inventory-forecast-api/internal/config"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
	"github.com/vfg2006/inventory-forecast-api/internal/metrics"
	"github.com/vfg2006/inventory-forecast-api/internal/usecases/forecasting"
)

// ForecastSyncConfig representa a configuração do agendador de previsões
type ForecastSyncConfig struct {
	CronSchedule      string
	HorizonDays       int
	MaxConcurrentJobs int
	RetentionDays     int
	SyncEnabled       bool
}

// ForecastSyncService gerencia o recálculo noturno de previsões de demanda
// para todos os produtos ativos do catálogo
type ForecastSyncService struct {
	scheduler           *gocron.Scheduler
	config              ForecastSyncConfig
	productRepo         repository.ProductRepository
	forecastRepo        repository.ForecastRepository
	forecaster          forecasting.Forecaster
	collector           *metrics.Collector
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewForecastSyncService cria uma nova instância do serviço de sincronização de previsões
func NewForecastSyncService(
	productRepo repository.ProductRepository,
	forecastRepo repository.ForecastRepository,
	forecaster forecasting.Forecaster,
	collector *metrics.Collector,
	appConfig *config.Config,
) *ForecastSyncService {
	syncConfig := ForecastSyncConfig{
		CronSchedule:      appConfig.ForecastSync.CronSchedule,
		HorizonDays:       appConfig.ForecastSync.HorizonDays,
		MaxConcurrentJobs: appConfig.ForecastSync.MaxConcurrentJobs,
		RetentionDays:     appConfig.ForecastSync.RetentionDays,
		SyncEnabled:       appConfig.ForecastSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"horizon_days":        syncConfig.HorizonDays,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"retention_days":      syncConfig.RetentionDays,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de previsões carregada")

	return &ForecastSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		productRepo:  productRepo,
		forecastRepo: forecastRepo,
		forecaster:   forecaster,
		collector:    collector,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *ForecastSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recálculo noturno de previsões desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de previsões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllForecasts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recálculo de previsões: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de previsões")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara o recálculo fora do horário agendado
func (s *ForecastSyncService) TriggerManualSync() {
	go s.syncAllForecasts()
}

// IsRunning indica se há uma sincronização em andamento
func (s *ForecastSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// LastSyncStartedAt retorna o início da última sincronização
func (s *ForecastSyncService) LastSyncStartedAt() time.Time {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastSyncStartedAt
}

// LastSyncCompletedAt retorna o término da última sincronização
func (s *ForecastSyncService) LastSyncCompletedAt() time.Time {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastSyncCompletedAt
}

// syncAllForecasts recomputa as previsões de todos os produtos ativos
func (s *ForecastSyncService) syncAllForecasts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de previsões já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando recálculo de previsões para todos os produtos ativos")

	products, err := s.productRepo.ListProducts([]domain.ProductStatus{domain.ProductStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar produtos para recálculo de previsões")
		return
	}

	if len(products) == 0 {
		logrus.Info("Nenhum produto ativo encontrado para recálculo de previsões")
		return
	}

	succeeded, skipped, failed := s.processForecasts(products)

	if s.config.RetentionDays > 0 {
		deleted, err := s.forecastRepo.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			logrus.WithError(err).Error("Erro ao limpar previsões antigas")
		} else if deleted > 0 {
			logrus.WithField("deleted", deleted).Info("Previsões antigas removidas")
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"products":  len(products),
		"succeeded": succeeded,
		"skipped":   skipped,
		"failed":    failed,
	}).Info("Recálculo de previsões concluído")
}

// processForecasts recomputa as previsões com concorrência limitada.
// Produtos sem histórico suficiente são pulados, não contam como falha.
func (s *ForecastSyncService) processForecasts(products []*domain.Product) (succeeded, skipped, failed int) {
	maxJobs := s.config.MaxConcurrentJobs
	if maxJobs < 1 {
		maxJobs = 1
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		semaphore = make(chan struct{}, maxJobs)
	)

	for _, product := range products {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(product *domain.Product) {
			defer wg.Done()
			defer func() { <-semaphore }()

			start := time.Now()
			_, err := s.forecaster.ForecastBySKU(product.SKU, s.config.HorizonDays)
			duration := time.Since(start)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				succeeded++
				s.observe("success", duration)
			case errors.Is(err, forecasting.ErrInsufficientHistory):
				skipped++
				s.observe("skipped", duration)
				logrus.WithField("product_sku", product.SKU).
					Debug("Produto sem histórico suficiente, previsão pulada")
			default:
				failed++
				s.observe("error", duration)
				logrus.WithError(err).WithField("product_sku", product.SKU).
					Error("Erro ao recomputar previsão do produto")
			}
		}(product)
	}

	wg.Wait()
	return succeeded, skipped, failed
}

func (s *ForecastSyncService) observe(outcome string, duration time.Duration) {
	if s.collector != nil {
		s.collector.ObserveForecast(outcome, duration)
	}
}
