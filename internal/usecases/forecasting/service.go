package forecasting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/repository"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
	"github.com/vfg2006/inventory-forecast-api/pkg/utils"
)

// Service implementa a interface Forecaster orquestrando o pipeline completo:
// busca de eventos, agregação diária, ajuste de tendência, projeção de
// horizonte e montagem do envelope. O pipeline é stateless: cada chamada é um
// cômputo atômico com exatamente um sucesso ou uma falha, nada persiste entre
// invocações além do cache de resultado.
type Service struct {
	productRepo  repository.ProductRepository
	eventRepo    repository.OrderEventRepository
	forecastRepo repository.ForecastRepository
	model        DemandModel
	now          func() time.Time
}

// NewService cria uma nova instância do serviço de previsão
func NewService(
	productRepo repository.ProductRepository,
	eventRepo repository.OrderEventRepository,
	forecastRepo repository.ForecastRepository,
) Forecaster {
	return &Service{
		productRepo:  productRepo,
		eventRepo:    eventRepo,
		forecastRepo: forecastRepo,
		model:        NewLinearRegression(),
		now:          time.Now,
	}
}

// WithModel substitui o modelo de previsão padrão (regressão linear)
func (s *Service) WithModel(model DemandModel) *Service {
	s.model = model
	return s
}

// WithClock injeta o relógio usado para asOf e generated_at. Mantém o core
// determinístico em testes; por padrão usa time.Now.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ForecastBySKU computa a previsão de demanda para um produto
func (s *Service) ForecastBySKU(sku string, horizonDays int) (*domain.ForecastResult, error) {
	logger := logrus.WithFields(logrus.Fields{
		"product_sku":  sku,
		"horizon_days": horizonDays,
	})

	// Guarda defensiva: a validação de política (1..N) é do handler, mas o
	// core nunca aceita horizonte não positivo
	if horizonDays < 1 {
		return nil, ErrInvalidHorizon
	}

	product, err := s.productRepo.GetBySKU(sku)
	if err != nil {
		logger.WithError(err).Error("previsão: erro ao buscar produto")
		return nil, NewForecastError(ErrDatabaseOperation, "SRV_002", sku, err.Error())
	}

	if product == nil {
		return nil, ErrProductNotFound
	}

	events, err := s.eventRepo.ListBySKU(sku)
	if err != nil {
		logger.WithError(err).Error("previsão: erro ao buscar histórico de pedidos")
		return nil, NewForecastError(ErrDatabaseOperation, "SRV_002", sku, err.Error())
	}

	generatedAt := s.now()

	series := Aggregate(events, generatedAt)
	if len(series) == 0 {
		// Nenhum chute fabricado: sem histórico o erro é explícito,
		// nunca uma previsão zerada
		return nil, ErrInsufficientHistory
	}

	trend, err := s.model.Fit(series)
	if err != nil {
		return nil, err
	}

	lastDate := series[len(series)-1].Date
	points, err := s.model.Project(trend, lastDate, horizonDays, len(series)-1)
	if err != nil {
		return nil, err
	}

	result := &domain.ForecastResult{
		ProductSKU:          sku,
		ModelUsed:           s.model.Tag(),
		ConfidenceScore:     utils.RoundWithFourDecimalPlace(trend.FitScore),
		ForecastHorizonDays: horizonDays,
		GeneratedAt:         generatedAt,
		ForecastData:        roundPoints(points),
	}

	// O cache é melhor esforço: falha ao persistir não invalida o cômputo
	if s.forecastRepo != nil {
		if err := s.forecastRepo.SaveOrUpdate(resultToEntry(result)); err != nil {
			logger.WithError(err).Warn("previsão: erro ao atualizar cache de previsões")
		}
	}

	logger.WithFields(logrus.Fields{
		"confidence_score": result.ConfidenceScore,
		"sample_count":     trend.SampleCount,
		"slope":            trend.Slope,
	}).Info("previsão: gerada com sucesso")

	return result, nil
}

// LatestBySKU retorna a última previsão persistida de um produto
func (s *Service) LatestBySKU(sku string) (*domain.ForecastResult, error) {
	entry, err := s.forecastRepo.GetBySKU(sku)
	if err != nil {
		logrus.WithError(err).WithField("product_sku", sku).
			Error("previsão: erro ao buscar cache de previsões")
		return nil, NewForecastError(ErrDatabaseOperation, "SRV_002", sku, err.Error())
	}

	if entry == nil {
		return nil, ErrForecastNotFound
	}

	return entry.ToResult(), nil
}

// DemandHistory monta a série diária de demanda do produto na janela pedida.
// Sem datas informadas usa os últimos 30 dias. A janela é fechada nos dois
// extremos e sempre densa: dias sem venda aparecem com zero unidades.
func (s *Service) DemandHistory(sku string, from, to *time.Time) (*domain.DemandHistory, error) {
	product, err := s.productRepo.GetBySKU(sku)
	if err != nil {
		logrus.WithError(err).WithField("product_sku", sku).
			Error("demanda: erro ao buscar produto")
		return nil, NewForecastError(ErrDatabaseOperation, "SRV_002", sku, err.Error())
	}

	if product == nil {
		return nil, ErrProductNotFound
	}

	endDate := truncateToDay(s.now())
	if to != nil {
		endDate = truncateToDay(*to)
	}

	startDate := endDate.AddDate(0, 0, -29)
	if from != nil {
		startDate = truncateToDay(*from)
	}

	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	// O filtro do repositório é por timestamp: estende a ponta final para
	// cobrir o dia inteiro de endDate; o agregador descarta o excedente
	events, err := s.eventRepo.ListBySKUAndDateRange(sku, startDate, endDate.AddDate(0, 0, 1))
	if err != nil {
		logrus.WithError(err).WithField("product_sku", sku).
			Error("demanda: erro ao buscar histórico de pedidos")
		return nil, NewForecastError(ErrDatabaseOperation, "SRV_002", sku, err.Error())
	}

	series := AggregateRange(events, startDate, endDate)

	totalUnits := 0
	for _, point := range series {
		totalUnits += point.Units
	}

	return &domain.DemandHistory{
		ProductSKU:  sku,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalUnits:  totalUnits,
		DailyDemand: series,
	}, nil
}

// roundPoints arredonda os valores do envelope para duas casas decimais,
// preservando as invariantes lower <= predicted <= upper
func roundPoints(points []domain.ForecastPoint) []domain.ForecastPoint {
	rounded := make([]domain.ForecastPoint, len(points))
	for i, point := range points {
		rounded[i] = domain.ForecastPoint{
			Date:            point.Date,
			PredictedDemand: utils.RoundWithTwoDecimalPlace(point.PredictedDemand),
			LowerBound:      utils.RoundWithTwoDecimalPlace(point.LowerBound),
			UpperBound:      utils.RoundWithTwoDecimalPlace(point.UpperBound),
		}
	}
	return rounded
}

func resultToEntry(result *domain.ForecastResult) *domain.ForecastEntry {
	return &domain.ForecastEntry{
		ProductSKU:          result.ProductSKU,
		ModelUsed:           result.ModelUsed,
		ConfidenceScore:     result.ConfidenceScore,
		ForecastHorizonDays: result.ForecastHorizonDays,
		GeneratedAt:         result.GeneratedAt,
		ForecastData:        result.ForecastData,
	}
}
