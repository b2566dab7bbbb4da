package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/repository/mocks"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
	"github.com/vfg2006/inventory-forecast-api/internal/metrics"
	"github.com/vfg2006/inventory-forecast-api/internal/usecases/forecasting"
	forecastingmocks "github.com/vfg2006/inventory-forecast-api/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(
	t *testing.T,
	productRepo *mocks.MockProductRepository,
	forecastRepo *mocks.MockForecastRepository,
	forecaster *forecastingmocks.MockForecaster,
	cfg ForecastSyncConfig,
) *ForecastSyncService {
	collector, err := metrics.NewCollector()
	assert.NoError(t, err)

	return &ForecastSyncService{
		scheduler:    gocron.NewScheduler(time.UTC),
		config:       cfg,
		productRepo:  productRepo,
		forecastRepo: forecastRepo,
		forecaster:   forecaster,
		collector:    collector,
	}
}

func activeProduct(sku string) *domain.Product {
	return &domain.Product{
		ID:     "prd001",
		SKU:    sku,
		Name:   "Produto " + sku,
		Status: domain.ProductStatusActive,
	}
}

func forecastResult(sku string, horizonDays int) *domain.ForecastResult {
	return &domain.ForecastResult{
		ProductSKU:          sku,
		ModelUsed:           domain.ModelLinearRegression,
		ForecastHorizonDays: horizonDays,
		GeneratedAt:         time.Now().UTC(),
	}
}

func TestForecastSyncService_SyncAllForecasts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := ForecastSyncConfig{
		CronSchedule:      "0 2 * * *",
		HorizonDays:       7,
		MaxConcurrentJobs: 2,
		RetentionDays:     30,
		SyncEnabled:       true,
	}

	tests := []struct {
		name  string
		setup func(*mocks.MockProductRepository, *mocks.MockForecastRepository, *forecastingmocks.MockForecaster)
	}{
		{
			name: "Todos os produtos ativos são recomputados e a retenção é aplicada",
			setup: func(productRepo *mocks.MockProductRepository, forecastRepo *mocks.MockForecastRepository, forecaster *forecastingmocks.MockForecaster) {
				productRepo.EXPECT().
					ListProducts([]domain.ProductStatus{domain.ProductStatusActive}).
					Return([]*domain.Product{
						activeProduct("SKU-A"),
						activeProduct("SKU-B"),
						activeProduct("SKU-C"),
					}, nil)

				forecaster.EXPECT().ForecastBySKU("SKU-A", 7).Return(forecastResult("SKU-A", 7), nil)
				forecaster.EXPECT().ForecastBySKU("SKU-B", 7).Return(forecastResult("SKU-B", 7), nil)
				forecaster.EXPECT().ForecastBySKU("SKU-C", 7).Return(forecastResult("SKU-C", 7), nil)

				forecastRepo.EXPECT().DeleteOlderThan(30).Return(int64(2), nil)
			},
		},
		{
			name: "Produto sem histórico é pulado sem abortar o lote",
			setup: func(productRepo *mocks.MockProductRepository, forecastRepo *mocks.MockForecastRepository, forecaster *forecastingmocks.MockForecaster) {
				productRepo.EXPECT().
					ListProducts([]domain.ProductStatus{domain.ProductStatusActive}).
					Return([]*domain.Product{
						activeProduct("SKU-NEW"),
						activeProduct("SKU-A"),
					}, nil)

				forecaster.EXPECT().ForecastBySKU("SKU-NEW", 7).
					Return(nil, forecasting.ErrInsufficientHistory)
				forecaster.EXPECT().ForecastBySKU("SKU-A", 7).
					Return(forecastResult("SKU-A", 7), nil)

				forecastRepo.EXPECT().DeleteOlderThan(30).Return(int64(0), nil)
			},
		},
		{
			name: "Falha em um produto não interrompe os demais",
			setup: func(productRepo *mocks.MockProductRepository, forecastRepo *mocks.MockForecastRepository, forecaster *forecastingmocks.MockForecaster) {
				productRepo.EXPECT().
					ListProducts([]domain.ProductStatus{domain.ProductStatusActive}).
					Return([]*domain.Product{
						activeProduct("SKU-BAD"),
						activeProduct("SKU-A"),
					}, nil)

				forecaster.EXPECT().ForecastBySKU("SKU-BAD", 7).
					Return(nil, errors.New("connection refused"))
				forecaster.EXPECT().ForecastBySKU("SKU-A", 7).
					Return(forecastResult("SKU-A", 7), nil)

				forecastRepo.EXPECT().DeleteOlderThan(30).Return(int64(0), nil)
			},
		},
		{
			name: "Erro ao listar produtos aborta a sincronização sem limpar o cache",
			setup: func(productRepo *mocks.MockProductRepository, _ *mocks.MockForecastRepository, _ *forecastingmocks.MockForecaster) {
				productRepo.EXPECT().
					ListProducts([]domain.ProductStatus{domain.ProductStatusActive}).
					Return(nil, errors.New("connection refused"))
			},
		},
		{
			name: "Catálogo vazio não dispara previsões nem retenção",
			setup: func(productRepo *mocks.MockProductRepository, _ *mocks.MockForecastRepository, _ *forecastingmocks.MockForecaster) {
				productRepo.EXPECT().
					ListProducts([]domain.ProductStatus{domain.ProductStatusActive}).
					Return([]*domain.Product{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := mocks.NewMockProductRepository(ctrl)
			forecastRepo := mocks.NewMockForecastRepository(ctrl)
			forecaster := forecastingmocks.NewMockForecaster(ctrl)
			tt.setup(productRepo, forecastRepo, forecaster)

			service := newTestSyncService(t, productRepo, forecastRepo, forecaster, cfg)
			service.syncAllForecasts()

			assert.False(t, service.IsRunning())
			assert.False(t, service.LastSyncStartedAt().IsZero())
			assert.False(t, service.LastSyncCompletedAt().IsZero())
		})
	}
}

func TestForecastSyncService_SyncAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	forecastRepo := mocks.NewMockForecastRepository(ctrl)
	forecaster := forecastingmocks.NewMockForecaster(ctrl)

	service := newTestSyncService(t, productRepo, forecastRepo, forecaster, ForecastSyncConfig{
		HorizonDays:       7,
		MaxConcurrentJobs: 1,
	})

	// Simula uma sincronização em andamento: a segunda chamada não toca os repositórios
	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	service.syncAllForecasts()

	assert.True(t, service.IsRunning())
}

func TestForecastSyncService_RetentionDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	forecastRepo := mocks.NewMockForecastRepository(ctrl)
	forecaster := forecastingmocks.NewMockForecaster(ctrl)

	productRepo.EXPECT().
		ListProducts([]domain.ProductStatus{domain.ProductStatusActive}).
		Return([]*domain.Product{activeProduct("SKU-A")}, nil)
	forecaster.EXPECT().ForecastBySKU("SKU-A", 7).Return(forecastResult("SKU-A", 7), nil)
	// RetentionDays zero desativa a limpeza: DeleteOlderThan nunca é chamado

	service := newTestSyncService(t, productRepo, forecastRepo, forecaster, ForecastSyncConfig{
		HorizonDays:       7,
		MaxConcurrentJobs: 2,
		RetentionDays:     0,
	})

	service.syncAllForecasts()

	assert.False(t, service.IsRunning())
}
