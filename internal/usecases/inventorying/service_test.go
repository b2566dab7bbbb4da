package inventorying

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/repository/mocks"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetProductBySKU(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	product := &domain.Product{
		ID:     "prd001",
		SKU:    "SKU-A",
		Name:   "Produto de Teste",
		Status: domain.ProductStatusActive,
	}

	tests := []struct {
		name    string
		sku     string
		setup   func(*mocks.MockProductRepository)
		wantErr error
	}{
		{
			name: "Produto encontrado",
			sku:  "SKU-A",
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().GetBySKU("SKU-A").Return(product, nil)
			},
		},
		{
			name:  "SKU vazio falha antes de tocar o banco",
			sku:   "",
			setup: func(_ *mocks.MockProductRepository) {},
			wantErr: ErrSKURequired,
		},
		{
			name: "Produto inexistente",
			sku:  "SKU-MISSING",
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().GetBySKU("SKU-MISSING").Return(nil, nil)
			},
			wantErr: ErrProductNotFound,
		},
		{
			name: "Erro de banco",
			sku:  "SKU-A",
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().GetBySKU("SKU-A").Return(nil, errors.New("connection refused"))
			},
			wantErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := mocks.NewMockProductRepository(ctrl)
			tt.setup(productRepo)

			service := NewService(productRepo)
			result, err := service.GetProductBySKU(tt.sku)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, product, result)
		})
	}
}

func TestService_ListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Filtro de status é repassado ao repositório", func(t *testing.T) {
		productRepo := mocks.NewMockProductRepository(ctrl)
		statuses := []domain.ProductStatus{domain.ProductStatusActive}

		productRepo.EXPECT().ListProducts(statuses).
			Return([]*domain.Product{{ID: "prd001", SKU: "SKU-A"}}, nil)

		service := NewService(productRepo)
		products, err := service.ListProducts(statuses)

		assert.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("Erro de banco vira ErrDatabaseOperation", func(t *testing.T) {
		productRepo := mocks.NewMockProductRepository(ctrl)

		productRepo.EXPECT().ListProducts(nil).
			Return(nil, errors.New("connection refused"))

		service := NewService(productRepo)
		products, err := service.ListProducts(nil)

		assert.ErrorIs(t, err, ErrDatabaseOperation)
		assert.Nil(t, products)
	})
}
