package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
	"github.com/vfg2006/inventory-forecast-api/pkg/utils"
)

const (
	forecastsTable = "forecasts f"
)

type ForecastRepository interface {
	GetBySKU(sku string) (*domain.ForecastEntry, error)
	SaveOrUpdate(entry *domain.ForecastEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type forecastRepository struct {
	conn *postgres.Connection
}

func NewForecastRepository(conn *postgres.Connection) ForecastRepository {
	return &forecastRepository{
		conn: conn,
	}
}

func (r *forecastRepository) GetBySKU(sku string) (*domain.ForecastEntry, error) {
	query, args, err := squirrel.
		Select("f.id, f.product_sku, f.model_used, f.confidence_score, f.forecast_horizon_days, f.generated_at, f.forecast_data, f.created_at, f.updated_at").
		From(forecastsTable).
		Where(squirrel.Eq{"f.product_sku": sku}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	var entry domain.ForecastEntry
	var forecastData []byte

	err = row.Scan(
		&entry.ID,
		&entry.ProductSKU,
		&entry.ModelUsed,
		&entry.ConfidenceScore,
		&entry.ForecastHorizonDays,
		&entry.GeneratedAt,
		&forecastData,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear previsão: %w", err)
	}

	if len(forecastData) > 0 {
		if err := json.Unmarshal(forecastData, &entry.ForecastData); err != nil {
			return nil, fmt.Errorf("erro ao desserializar forecast_data: %w", err)
		}
	}

	return &entry, nil
}

// SaveOrUpdate faz upsert da última previsão do produto. Cada SKU mantém
// exatamente uma linha de cache; recomputações sobrescrevem a anterior.
func (r *forecastRepository) SaveOrUpdate(entry *domain.ForecastEntry) error {
	forecastData, err := json.Marshal(entry.ForecastData)
	if err != nil {
		return fmt.Errorf("erro ao serializar forecast_data para JSON: %w", err)
	}

	id := entry.ID
	if id == "" {
		id, err = utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID da previsão: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("forecasts").
		Columns("id", "product_sku", "model_used", "confidence_score", "forecast_horizon_days", "generated_at", "forecast_data").
		Values(
			id,
			entry.ProductSKU,
			entry.ModelUsed,
			entry.ConfidenceScore,
			entry.ForecastHorizonDays,
			entry.GeneratedAt,
			forecastData,
		).
		Suffix(`
			ON CONFLICT (product_sku) DO UPDATE SET
				model_used = EXCLUDED.model_used,
				confidence_score = EXCLUDED.confidence_score,
				forecast_horizon_days = EXCLUDED.forecast_horizon_days,
				generated_at = EXCLUDED.generated_at,
				forecast_data = EXCLUDED.forecast_data,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// DeleteOlderThan remove previsões que não são atualizadas há mais de N dias
func (r *forecastRepository) DeleteOlderThan(days int) (int64, error) {
	query, args, err := squirrel.
		Delete("forecasts").
		Where(squirrel.Expr("updated_at < NOW() - make_interval(days => ?)", days)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
