package forecasting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/repository/mocks"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// fixedClock congela o relógio do serviço no fim do último dia da série
var fixedNow = time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func activeProduct(sku string) *domain.Product {
	return &domain.Product{
		ID:     "prd001",
		SKU:    sku,
		Name:   "Produto de Teste",
		Status: domain.ProductStatusActive,
	}
}

// eventsOnePerDay gera um evento por dia, terminando no dia de fixedNow
func eventsOnePerDay(sku string, units []int) []*domain.OrderEvent {
	events := make([]*domain.OrderEvent, len(units))
	lastDay := day(2024, 3, 10)
	for i, u := range units {
		events[i] = &domain.OrderEvent{
			ID:         "ev0001",
			ProductSKU: sku,
			Quantity:   u,
			OccurredAt: lastDay.AddDate(0, 0, i-len(units)+1).Add(12 * time.Hour),
		}
	}
	return events
}

func newTestService(
	productRepo *mocks.MockProductRepository,
	eventRepo *mocks.MockOrderEventRepository,
	forecastRepo *mocks.MockForecastRepository,
) *Service {
	return &Service{
		productRepo:  productRepo,
		eventRepo:    eventRepo,
		forecastRepo: forecastRepo,
		model:        NewLinearRegression(),
		now:          fixedClock,
	}
}

func TestService_ForecastBySKU(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		sku         string
		horizonDays int
		setup       func(*mocks.MockProductRepository, *mocks.MockOrderEventRepository, *mocks.MockForecastRepository)
		wantErr     error
		validate    func(t *testing.T, result *domain.ForecastResult)
	}{
		{
			name:        "Horizonte não positivo falha antes de tocar o banco",
			sku:         "SKU-A",
			horizonDays: 0,
			setup:       func(_ *mocks.MockProductRepository, _ *mocks.MockOrderEventRepository, _ *mocks.MockForecastRepository) {},
			wantErr:     ErrInvalidHorizon,
		},
		{
			name:        "Produto inexistente",
			sku:         "SKU-MISSING",
			horizonDays: 7,
			setup: func(productRepo *mocks.MockProductRepository, _ *mocks.MockOrderEventRepository, _ *mocks.MockForecastRepository) {
				productRepo.EXPECT().GetBySKU("SKU-MISSING").Return(nil, nil)
			},
			wantErr: ErrProductNotFound,
		},
		{
			name:        "Erro de banco ao buscar produto",
			sku:         "SKU-A",
			horizonDays: 7,
			setup: func(productRepo *mocks.MockProductRepository, _ *mocks.MockOrderEventRepository, _ *mocks.MockForecastRepository) {
				productRepo.EXPECT().GetBySKU("SKU-A").Return(nil, errors.New("connection refused"))
			},
			wantErr: ErrDatabaseOperation,
		},
		{
			name:        "Produto sem histórico de pedidos",
			sku:         "SKU-A",
			horizonDays: 7,
			setup: func(productRepo *mocks.MockProductRepository, eventRepo *mocks.MockOrderEventRepository, _ *mocks.MockForecastRepository) {
				productRepo.EXPECT().GetBySKU("SKU-A").Return(activeProduct("SKU-A"), nil)
				eventRepo.EXPECT().ListBySKU("SKU-A").Return([]*domain.OrderEvent{}, nil)
			},
			wantErr: ErrInsufficientHistory,
		},
		{
			name:        "Dez dias de histórico com tendência de alta",
			sku:         "SKU-A",
			horizonDays: 5,
			setup: func(productRepo *mocks.MockProductRepository, eventRepo *mocks.MockOrderEventRepository, forecastRepo *mocks.MockForecastRepository) {
				productRepo.EXPECT().GetBySKU("SKU-A").Return(activeProduct("SKU-A"), nil)
				eventRepo.EXPECT().ListBySKU("SKU-A").
					Return(eventsOnePerDay("SKU-A", []int{3, 3, 4, 3, 5, 4, 6, 5, 7, 6}), nil)
				forecastRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.ForecastResult) {
				assert.Equal(t, "SKU-A", result.ProductSKU)
				assert.Equal(t, domain.ModelLinearRegression, result.ModelUsed)
				assert.Equal(t, 5, result.ForecastHorizonDays)
				assert.Equal(t, fixedNow, result.GeneratedAt)
				assert.Len(t, result.ForecastData, 5)

				assert.GreaterOrEqual(t, result.ConfidenceScore, 0.0)
				assert.LessOrEqual(t, result.ConfidenceScore, 1.0)

				previous := 0.0
				for i, point := range result.ForecastData {
					assert.Equal(t, day(2024, 3, 11).AddDate(0, 0, i), point.Date)
					assert.LessOrEqual(t, point.LowerBound, point.PredictedDemand)
					assert.GreaterOrEqual(t, point.UpperBound, point.PredictedDemand)
					assert.GreaterOrEqual(t, point.LowerBound, 0.0)

					// Tendência de alta: a previsão cresce ao longo do horizonte
					assert.Greater(t, point.PredictedDemand, previous)
					previous = point.PredictedDemand
				}
			},
		},
		{
			name:        "Falha ao persistir o cache não invalida o cômputo",
			sku:         "SKU-A",
			horizonDays: 3,
			setup: func(productRepo *mocks.MockProductRepository, eventRepo *mocks.MockOrderEventRepository, forecastRepo *mocks.MockForecastRepository) {
				productRepo.EXPECT().GetBySKU("SKU-A").Return(activeProduct("SKU-A"), nil)
				eventRepo.EXPECT().ListBySKU("SKU-A").
					Return(eventsOnePerDay("SKU-A", []int{2, 4, 6}), nil)
				forecastRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(errors.New("disk full"))
			},
			validate: func(t *testing.T, result *domain.ForecastResult) {
				assert.Len(t, result.ForecastData, 3)
			},
		},
		{
			name:        "Um único dia de histórico gera linha plana",
			sku:         "SKU-A",
			horizonDays: 4,
			setup: func(productRepo *mocks.MockProductRepository, eventRepo *mocks.MockOrderEventRepository, forecastRepo *mocks.MockForecastRepository) {
				productRepo.EXPECT().GetBySKU("SKU-A").Return(activeProduct("SKU-A"), nil)
				eventRepo.EXPECT().ListBySKU("SKU-A").
					Return(eventsOnePerDay("SKU-A", []int{9}), nil)
				forecastRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.ForecastResult) {
				assert.Equal(t, 0.0, result.ConfidenceScore)
				assert.Len(t, result.ForecastData, 4)
				for _, point := range result.ForecastData {
					assert.Equal(t, 9.0, point.PredictedDemand)
					assert.Equal(t, 9.0, point.LowerBound)
					assert.Equal(t, 9.0, point.UpperBound)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := mocks.NewMockProductRepository(ctrl)
			eventRepo := mocks.NewMockOrderEventRepository(ctrl)
			forecastRepo := mocks.NewMockForecastRepository(ctrl)
			tt.setup(productRepo, eventRepo, forecastRepo)

			service := newTestService(productRepo, eventRepo, forecastRepo)
			result, err := service.ForecastBySKU(tt.sku, tt.horizonDays)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestService_ForecastBySKU_CacheEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	eventRepo := mocks.NewMockOrderEventRepository(ctrl)
	forecastRepo := mocks.NewMockForecastRepository(ctrl)

	productRepo.EXPECT().GetBySKU("SKU-A").Return(activeProduct("SKU-A"), nil)
	eventRepo.EXPECT().ListBySKU("SKU-A").
		Return(eventsOnePerDay("SKU-A", []int{5, 7, 9}), nil)

	var saved *domain.ForecastEntry
	forecastRepo.EXPECT().SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(entry *domain.ForecastEntry) error {
			saved = entry
			return nil
		})

	service := newTestService(productRepo, eventRepo, forecastRepo)
	result, err := service.ForecastBySKU("SKU-A", 7)

	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, result.ProductSKU, saved.ProductSKU)
	assert.Equal(t, result.ModelUsed, saved.ModelUsed)
	assert.Equal(t, result.ConfidenceScore, saved.ConfidenceScore)
	assert.Equal(t, result.ForecastHorizonDays, saved.ForecastHorizonDays)
	assert.Equal(t, result.GeneratedAt, saved.GeneratedAt)
	assert.Equal(t, result.ForecastData, saved.ForecastData)
}

func TestService_DemandHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := day(2024, 3, 1)
	to := day(2024, 3, 5)

	t.Run("Janela explícita com série densa e total agregado", func(t *testing.T) {
		productRepo := mocks.NewMockProductRepository(ctrl)
		eventRepo := mocks.NewMockOrderEventRepository(ctrl)

		productRepo.EXPECT().GetBySKU("SKU-A").Return(activeProduct("SKU-A"), nil)
		eventRepo.EXPECT().
			ListBySKUAndDateRange("SKU-A", from, to.AddDate(0, 0, 1)).
			Return([]*domain.OrderEvent{
				{ID: "ev0001", ProductSKU: "SKU-A", Quantity: 3, OccurredAt: from.Add(10 * time.Hour)},
				{ID: "ev0002", ProductSKU: "SKU-A", Quantity: 5, OccurredAt: from.AddDate(0, 0, 3).Add(14 * time.Hour)},
			}, nil)

		service := newTestService(productRepo, eventRepo, nil)
		history, err := service.DemandHistory("SKU-A", &from, &to)

		assert.NoError(t, err)
		assert.Equal(t, "SKU-A", history.ProductSKU)
		assert.Equal(t, from, history.StartDate)
		assert.Equal(t, to, history.EndDate)
		assert.Equal(t, 8, history.TotalUnits)
		assert.Len(t, history.DailyDemand, 5)
		assert.Equal(t, 3, history.DailyDemand[0].Units)
		assert.Equal(t, 0, history.DailyDemand[1].Units)
		assert.Equal(t, 5, history.DailyDemand[3].Units)
	})

	t.Run("Sem datas usa a janela padrão de 30 dias até hoje", func(t *testing.T) {
		productRepo := mocks.NewMockProductRepository(ctrl)
		eventRepo := mocks.NewMockOrderEventRepository(ctrl)

		today := day(2024, 3, 10)
		expectedStart := today.AddDate(0, 0, -29)

		productRepo.EXPECT().GetBySKU("SKU-A").Return(activeProduct("SKU-A"), nil)
		eventRepo.EXPECT().
			ListBySKUAndDateRange("SKU-A", expectedStart, today.AddDate(0, 0, 1)).
			Return([]*domain.OrderEvent{}, nil)

		service := newTestService(productRepo, eventRepo, nil)
		history, err := service.DemandHistory("SKU-A", nil, nil)

		assert.NoError(t, err)
		assert.Equal(t, expectedStart, history.StartDate)
		assert.Equal(t, today, history.EndDate)
		assert.Equal(t, 0, history.TotalUnits)
		assert.Len(t, history.DailyDemand, 30)
	})

	t.Run("Janela invertida é rejeitada", func(t *testing.T) {
		productRepo := mocks.NewMockProductRepository(ctrl)

		productRepo.EXPECT().GetBySKU("SKU-A").Return(activeProduct("SKU-A"), nil)

		service := newTestService(productRepo, nil, nil)
		history, err := service.DemandHistory("SKU-A", &to, &from)

		assert.ErrorIs(t, err, ErrInvalidDateRange)
		assert.Nil(t, history)
	})

	t.Run("Produto inexistente", func(t *testing.T) {
		productRepo := mocks.NewMockProductRepository(ctrl)

		productRepo.EXPECT().GetBySKU("SKU-MISSING").Return(nil, nil)

		service := newTestService(productRepo, nil, nil)
		history, err := service.DemandHistory("SKU-MISSING", &from, &to)

		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Nil(t, history)
	})
}

func TestService_LatestBySKU(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entry := &domain.ForecastEntry{
		ID:                  "fct001",
		ProductSKU:          "SKU-A",
		ModelUsed:           domain.ModelLinearRegression,
		ConfidenceScore:     0.9532,
		ForecastHorizonDays: 7,
		GeneratedAt:         fixedNow,
		ForecastData: []domain.ForecastPoint{
			{Date: day(2024, 3, 11), PredictedDemand: 6.2, LowerBound: 4.1, UpperBound: 8.3},
		},
	}

	tests := []struct {
		name    string
		setup   func(*mocks.MockForecastRepository)
		wantErr error
	}{
		{
			name: "Previsão encontrada no cache",
			setup: func(forecastRepo *mocks.MockForecastRepository) {
				forecastRepo.EXPECT().GetBySKU("SKU-A").Return(entry, nil)
			},
		},
		{
			name: "Sem previsão persistida",
			setup: func(forecastRepo *mocks.MockForecastRepository) {
				forecastRepo.EXPECT().GetBySKU("SKU-A").Return(nil, nil)
			},
			wantErr: ErrForecastNotFound,
		},
		{
			name: "Erro de banco",
			setup: func(forecastRepo *mocks.MockForecastRepository) {
				forecastRepo.EXPECT().GetBySKU("SKU-A").Return(nil, errors.New("connection refused"))
			},
			wantErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecastRepo := mocks.NewMockForecastRepository(ctrl)
			tt.setup(forecastRepo)

			service := newTestService(nil, nil, forecastRepo)
			result, err := service.LatestBySKU("SKU-A")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, entry.ProductSKU, result.ProductSKU)
			assert.Equal(t, entry.ConfidenceScore, result.ConfidenceScore)
			assert.Equal(t, entry.ForecastData, result.ForecastData)
		})
	}
}
