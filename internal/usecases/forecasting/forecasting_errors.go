package forecasting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de previsão de demanda
var (
	// Erros de entrada
	ErrInsufficientHistory = errors.New("histórico de pedidos insuficiente para gerar previsão")
	ErrInvalidHorizon      = errors.New("horizonte de previsão deve ser um inteiro positivo")
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrInvalidDateRange    = errors.New("intervalo de datas inválido")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrForecastNotFound  = errors.New("nenhuma previsão armazenada para o produto")
)

// ForecastError é um erro com contexto adicional para previsões
type ForecastError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	ProductSKU string // SKU do produto envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ForecastError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ForecastError) Unwrap() error {
	return e.Err
}

// NewForecastError cria um novo ForecastError com o SKU do produto
func NewForecastError(err error, code string, sku string, details string) *ForecastError {
	return &ForecastError{
		Err:        err,
		Code:       code,
		ProductSKU: sku,
		Details:    details,
	}
}

// IsNotFoundError verifica se o erro deve ser exposto como "não encontrado"
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrInsufficientHistory) ||
		errors.Is(err, ErrForecastNotFound)
}

// IsValidationError verifica se o erro veio de entrada inválida do cliente
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidHorizon) || errors.Is(err, ErrInvalidDateRange)
}
