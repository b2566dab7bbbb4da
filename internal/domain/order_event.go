package domain

import "time"

// OrderEvent representa uma linha de pedido registrada para um produto.
// É a entrada bruta do pipeline de previsão; o core nunca a modifica.
type OrderEvent struct {
	ID         string    `json:"id"`
	ProductSKU string    `json:"product_sku"`
	Quantity   int       `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"`
}
