package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "ACTIVE"
	ProductStatusDiscontinued ProductStatus = "DISCONTINUED"
)

// Product representa um item do catálogo com seu nível de estoque atual
type Product struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Category      *string         `json:"category"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int             `json:"stock_quantity"`
	Status        ProductStatus   `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsActive indica se o produto ainda participa das rotinas de previsão
func (p *Product) IsActive() bool {
	return p != nil && p.Status == ProductStatusActive
}
