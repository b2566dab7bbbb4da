package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

func seriesFromUnits(start time.Time, units []int) []domain.DailyDemandPoint {
	series := make([]domain.DailyDemandPoint, len(units))
	for i, u := range units {
		series[i] = domain.DailyDemandPoint{Date: start.AddDate(0, 0, i), Units: u}
	}
	return series
}

func TestLinearRegression_Fit(t *testing.T) {
	model := NewLinearRegression()
	start := day(2024, 3, 1)

	tests := []struct {
		name     string
		units    []int
		wantErr  error
		validate func(t *testing.T, trend *domain.TrendModel)
	}{
		{
			name:    "Série vazia - histórico insuficiente",
			units:   []int{},
			wantErr: ErrInsufficientHistory,
		},
		{
			name:  "Um único ponto - linha plana sem tendência",
			units: []int{8},
			validate: func(t *testing.T, trend *domain.TrendModel) {
				assert.Equal(t, 0.0, trend.Slope)
				assert.Equal(t, 8.0, trend.Intercept)
				assert.Equal(t, 0.0, trend.FitScore)
				assert.Equal(t, 1, trend.SampleCount)
				assert.Equal(t, 0.0, trend.ResidualStd)
			},
		},
		{
			name:  "Ajuste perfeito y = 2x + 5",
			units: []int{5, 7, 9, 11, 13},
			validate: func(t *testing.T, trend *domain.TrendModel) {
				assert.InDelta(t, 2.0, trend.Slope, 1e-9)
				assert.InDelta(t, 5.0, trend.Intercept, 1e-9)
				assert.InDelta(t, 1.0, trend.FitScore, 1e-9)
				assert.InDelta(t, 0.0, trend.ResidualStd, 1e-9)
			},
		},
		{
			name:  "Série constante - sem variância a explicar, ajuste perfeito",
			units: []int{4, 4, 4, 4},
			validate: func(t *testing.T, trend *domain.TrendModel) {
				assert.InDelta(t, 0.0, trend.Slope, 1e-9)
				assert.InDelta(t, 4.0, trend.Intercept, 1e-9)
				assert.Equal(t, 1.0, trend.FitScore)
				assert.Equal(t, 0.0, trend.ResidualStd)
			},
		},
		{
			name:  "Série ruidosa - R² dentro de [0,1] e resíduo positivo",
			units: []int{3, 9, 2, 11, 4, 12},
			validate: func(t *testing.T, trend *domain.TrendModel) {
				assert.GreaterOrEqual(t, trend.FitScore, 0.0)
				assert.LessOrEqual(t, trend.FitScore, 1.0)
				assert.Greater(t, trend.ResidualStd, 0.0)
				assert.Equal(t, 6, trend.SampleCount)
			},
		},
		{
			name:  "Dois pontos - reta exata com resíduo zero",
			units: []int{10, 6},
			validate: func(t *testing.T, trend *domain.TrendModel) {
				assert.InDelta(t, -4.0, trend.Slope, 1e-9)
				assert.InDelta(t, 10.0, trend.Intercept, 1e-9)
				assert.Equal(t, 0.0, trend.ResidualStd)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend, err := model.Fit(seriesFromUnits(start, tt.units))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, trend)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, trend)
		})
	}
}

func TestLinearRegression_Project(t *testing.T) {
	model := NewLinearRegression()
	lastDate := day(2024, 3, 10)

	t.Run("Horizonte inválido", func(t *testing.T) {
		trend := &domain.TrendModel{Slope: 1, Intercept: 2, SampleCount: 5}

		_, err := model.Project(trend, lastDate, 0, 4)
		assert.ErrorIs(t, err, ErrInvalidHorizon)

		_, err = model.Project(trend, lastDate, -3, 4)
		assert.ErrorIs(t, err, ErrInvalidHorizon)
	})

	t.Run("Modelo nulo", func(t *testing.T) {
		_, err := model.Project(nil, lastDate, 7, 4)
		assert.ErrorIs(t, err, ErrInsufficientHistory)
	})

	t.Run("Um ponto por dia do horizonte, datas consecutivas", func(t *testing.T) {
		trend := &domain.TrendModel{Slope: 2, Intercept: 5, SampleCount: 5, ResidualStd: 1.5}

		points, err := model.Project(trend, lastDate, 7, 4)
		assert.NoError(t, err)
		assert.Len(t, points, 7)

		for i, point := range points {
			assert.Equal(t, lastDate.AddDate(0, 0, i+1), point.Date)
			// x continua do índice da série: primeiro dia futuro é x=5
			expected := 2.0*float64(5+i) + 5.0
			assert.InDelta(t, expected, point.PredictedDemand, 1e-9)
			assert.LessOrEqual(t, point.LowerBound, point.PredictedDemand)
			assert.GreaterOrEqual(t, point.UpperBound, point.PredictedDemand)
		}

		// A banda alarga conforme o horizonte avança
		firstWidth := points[0].UpperBound - points[0].LowerBound
		lastWidth := points[6].UpperBound - points[6].LowerBound
		assert.Greater(t, lastWidth, firstWidth)
	})

	t.Run("Tendência negativa nunca projeta demanda negativa", func(t *testing.T) {
		trend := &domain.TrendModel{Slope: -3, Intercept: 10, SampleCount: 6, ResidualStd: 2}

		points, err := model.Project(trend, lastDate, 10, 5)
		assert.NoError(t, err)

		for _, point := range points {
			assert.GreaterOrEqual(t, point.PredictedDemand, 0.0)
			assert.GreaterOrEqual(t, point.LowerBound, 0.0)
			assert.GreaterOrEqual(t, point.UpperBound, point.PredictedDemand,
				"limite superior não é truncado em zero")
		}
	})

	t.Run("Resíduo zero colapsa a banda na própria previsão", func(t *testing.T) {
		trend := &domain.TrendModel{Slope: 1, Intercept: 3, SampleCount: 4, ResidualStd: 0}

		points, err := model.Project(trend, lastDate, 3, 3)
		assert.NoError(t, err)

		for _, point := range points {
			assert.Equal(t, point.PredictedDemand, point.LowerBound)
			assert.Equal(t, point.PredictedDemand, point.UpperBound)
		}
	})
}
