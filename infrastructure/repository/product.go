package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

const (
	productsTable = "products p"
)

type ProductRepository interface {
	GetBySKU(sku string) (*domain.Product, error)
	ListProducts(statuses []domain.ProductStatus) ([]*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) GetBySKU(sku string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.sku, p.name, p.category, p.unit_price, p.stock_quantity, p.status, p.created_at, p.updated_at").
		From(productsTable).
		Where(squirrel.Eq{"p.sku": sku}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	product, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListProducts(statuses []domain.ProductStatus) ([]*domain.Product, error) {
	builder := squirrel.
		Select("p.id, p.sku, p.name, p.category, p.unit_price, p.stock_quantity, p.status, p.created_at, p.updated_at").
		From(productsTable).
		OrderBy("p.sku ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"p.status": statuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produtos: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var product domain.Product
	var unitPrice string

	err := row.Scan(
		&product.ID,
		&product.SKU,
		&product.Name,
		&product.Category,
		&unitPrice,
		&product.StockQuantity,
		&product.Status,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(unitPrice)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter unit_price: %w", err)
	}
	product.UnitPrice = price

	return &product, nil
}
