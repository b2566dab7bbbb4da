package inventorying

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/repository"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

// Erros específicos para o contexto de catálogo
var (
	ErrSKURequired       = errors.New("SKU do produto é obrigatório")
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// InventoryService define a interface do serviço de catálogo de produtos.
// É a fronteira que resolve identidade de produto antes do core de previsão.
type InventoryService interface {
	// ListProducts lista os produtos do catálogo, opcionalmente por status
	ListProducts(statuses []domain.ProductStatus) ([]*domain.Product, error)

	// GetProductBySKU busca um produto pelo SKU; falha com ErrProductNotFound
	GetProductBySKU(sku string) (*domain.Product, error)
}

type service struct {
	productRepo repository.ProductRepository
}

// NewService cria uma nova instância do serviço de catálogo
func NewService(productRepo repository.ProductRepository) InventoryService {
	return &service{
		productRepo: productRepo,
	}
}

func (s *service) ListProducts(statuses []domain.ProductStatus) ([]*domain.Product, error) {
	products, err := s.productRepo.ListProducts(statuses)
	if err != nil {
		logrus.WithError(err).Error("catálogo: erro ao listar produtos")
		return nil, ErrDatabaseOperation
	}

	return products, nil
}

func (s *service) GetProductBySKU(sku string) (*domain.Product, error) {
	if sku == "" {
		return nil, ErrSKURequired
	}

	product, err := s.productRepo.GetBySKU(sku)
	if err != nil {
		logrus.WithError(err).WithField("product_sku", sku).
			Error("catálogo: erro ao buscar produto")
		return nil, ErrDatabaseOperation
	}

	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}
