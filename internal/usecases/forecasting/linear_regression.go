package forecasting

import (
	"math"
	"time"

	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

// confidenceZ é o multiplicador fixo da meia-largura da banda de confiança
// (~68% de cobertura). Mantido constante em todas as saídas do serviço.
const confidenceZ = 1.0

// DemandModel é o conjunto de capacidades que qualquer modelo de previsão
// precisa expor. O assembler depende apenas desta interface, o que permite
// trocar a regressão linear por um modelo mais rico (ex: decomposição sazonal)
// sem alterar o contrato do serviço.
type DemandModel interface {
	// Tag retorna o identificador do modelo usado no envelope de resposta
	Tag() string

	// Fit ajusta o modelo sobre a série diária de demanda
	Fit(series []domain.DailyDemandPoint) (*domain.TrendModel, error)

	// Project extrapola o modelo ajustado por horizonDays dias após lastDate
	Project(model *domain.TrendModel, lastDate time.Time, horizonDays int, startIndex int) ([]domain.ForecastPoint, error)
}

// LinearRegression implementa DemandModel com uma reta de mínimos quadrados
// ordinários calculada em forma fechada (somas Σx, Σy, Σxy, Σx²). Sem
// otimização iterativa: é numericamente estável para as séries esperadas aqui
// (dezenas a poucas centenas de pontos).
type LinearRegression struct{}

// NewLinearRegression cria o modelo de regressão linear padrão
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Tag retorna a tag do modelo para o envelope de resposta
func (lr *LinearRegression) Tag() string {
	return domain.ModelLinearRegression
}

// Fit ajusta a reta y = slope·x + intercept sobre a série, com x sendo o
// índice do dia (0, 1, 2, ...) e y as unidades vendidas.
//
// Casos degenerados:
//   - série vazia falha com ErrInsufficientHistory;
//   - série de um único ponto vira modelo de linha plana (slope 0, fit 0);
//   - denominador zero (impossível com datas contíguas distintas, mas
//     protegido) também vira linha plana.
func (lr *LinearRegression) Fit(series []domain.DailyDemandPoint) (*domain.TrendModel, error) {
	n := len(series)
	if n == 0 {
		return nil, ErrInsufficientHistory
	}

	if n == 1 {
		// Nenhuma tendência pode ser inferida de um único ponto
		return &domain.TrendModel{
			Slope:       0,
			Intercept:   float64(series[0].Units),
			FitScore:    0,
			SampleCount: 1,
			ResidualStd: 0,
		}, nil
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, point := range series {
		x := float64(i)
		y := float64(point.Units)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	nf := float64(n)
	denominator := nf*sumXX - sumX*sumX
	if denominator == 0 {
		return flatLineModel(series), nil
	}

	slope := (nf*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / nf

	meanY := sumY / nf
	var ssRes, ssTot float64
	for i, point := range series {
		y := float64(point.Units)
		predicted := slope*float64(i) + intercept
		ssRes += (y - predicted) * (y - predicted)
		ssTot += (y - meanY) * (y - meanY)
	}

	return &domain.TrendModel{
		Slope:       slope,
		Intercept:   intercept,
		FitScore:    fitScore(ssRes, ssTot),
		SampleCount: n,
		ResidualStd: residualStd(ssRes, n),
	}, nil
}

// Project extrapola o modelo ajustado para horizonDays dias futuros,
// começando no dia seguinte a lastDate. A meia-largura da banda cresce com a
// distância no horizonte para refletir a incerteza acumulada:
//
//	halfWidth(day) = z · residualStd · sqrt(1 + day/sampleCount)
//
// Previsão e limite inferior são truncados em zero (demanda negativa não
// existe); o limite superior nunca é truncado para baixo.
func (lr *LinearRegression) Project(model *domain.TrendModel, lastDate time.Time, horizonDays int, startIndex int) ([]domain.ForecastPoint, error) {
	if model == nil {
		return nil, ErrInsufficientHistory
	}

	if horizonDays < 1 {
		return nil, ErrInvalidHorizon
	}

	points := make([]domain.ForecastPoint, 0, horizonDays)
	for day := 1; day <= horizonDays; day++ {
		x := float64(startIndex + day)
		predicted := math.Max(0, model.Slope*x+model.Intercept)

		halfWidth := confidenceZ * model.ResidualStd *
			math.Sqrt(1+float64(day)/float64(model.SampleCount))

		points = append(points, domain.ForecastPoint{
			Date:            lastDate.AddDate(0, 0, day),
			PredictedDemand: predicted,
			LowerBound:      math.Max(0, predicted-halfWidth),
			UpperBound:      predicted + halfWidth,
		})
	}

	return points, nil
}

// flatLineModel devolve o fallback de linha plana na média da série
func flatLineModel(series []domain.DailyDemandPoint) *domain.TrendModel {
	var sum float64
	for _, point := range series {
		sum += float64(point.Units)
	}
	mean := sum / float64(len(series))

	var ssRes float64
	for _, point := range series {
		diff := float64(point.Units) - mean
		ssRes += diff * diff
	}

	return &domain.TrendModel{
		Slope:       0,
		Intercept:   mean,
		FitScore:    0,
		SampleCount: len(series),
		ResidualStd: residualStd(ssRes, len(series)),
	}
}

// fitScore calcula o R² do ajuste, limitado a [0,1]. Quando a série observada
// é constante (SS_tot = 0) não há variância a explicar: um ajuste sem resíduo
// é perfeito (1) e qualquer resíduo é falha total (0), sem divisão por zero.
func fitScore(ssRes, ssTot float64) float64 {
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}

	r2 := 1 - ssRes/ssTot
	if r2 < 0 {
		return 0
	}
	if r2 > 1 {
		return 1
	}
	return r2
}

// residualStd é o erro padrão dos resíduos da regressão. O denominador n-2
// desconta os dois parâmetros estimados; com n <= 2 a reta passa exatamente
// pelos pontos e o desvio é zero.
func residualStd(ssRes float64, n int) float64 {
	if n <= 2 || ssRes <= 0 {
		return 0
	}
	return math.Sqrt(ssRes / float64(n-2))
}
