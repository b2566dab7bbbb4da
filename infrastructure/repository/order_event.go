package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

const (
	orderEventsTable = "order_events oe"
)

type OrderEventRepository interface {
	ListBySKU(sku string) ([]*domain.OrderEvent, error)
	ListBySKUAndDateRange(sku string, startDate, endDate time.Time) ([]*domain.OrderEvent, error)
}

type orderEventRepository struct {
	conn *postgres.Connection
}

func NewOrderEventRepository(conn *postgres.Connection) OrderEventRepository {
	return &orderEventRepository{
		conn: conn,
	}
}

// ListBySKU retorna todo o histórico de eventos de pedido de um produto,
// em ordem cronológica ascendente
func (r *orderEventRepository) ListBySKU(sku string) ([]*domain.OrderEvent, error) {
	query, args, err := squirrel.
		Select("oe.id, oe.product_sku, oe.quantity, oe.occurred_at").
		From(orderEventsTable).
		Where(squirrel.Eq{"oe.product_sku": sku}).
		OrderBy("oe.occurred_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEvents(query, args...)
}

// ListBySKUAndDateRange retorna os eventos de pedido de um produto dentro do
// período informado (inclusive nas duas pontas)
func (r *orderEventRepository) ListBySKUAndDateRange(sku string, startDate, endDate time.Time) ([]*domain.OrderEvent, error) {
	query, args, err := squirrel.
		Select("oe.id, oe.product_sku, oe.quantity, oe.occurred_at").
		From(orderEventsTable).
		Where(squirrel.Eq{"oe.product_sku": sku}).
		Where(squirrel.GtOrEq{"oe.occurred_at": startDate}).
		Where(squirrel.LtOrEq{"oe.occurred_at": endDate}).
		OrderBy("oe.occurred_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEvents(query, args...)
}

func (r *orderEventRepository) queryEvents(query string, args ...any) ([]*domain.OrderEvent, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.OrderEvent, 0)
	for rows.Next() {
		var event domain.OrderEvent
		err := rows.Scan(
			&event.ID,
			&event.ProductSKU,
			&event.Quantity,
			&event.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear eventos de pedido: %w", err)
		}
		events = append(events, &event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}
