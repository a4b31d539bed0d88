// internal/services/product_service.go
package services

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/atelier-gestor/atelier/internal/i18n"
	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/utils"
)

type ProductService struct {
	crud *CrudService[models.Product]
}

type ProductSearchParams struct {
	utils.PaginationParams
	PriceMin *decimal.Decimal `json:"min_preco,omitempty"`
	PriceMax *decimal.Decimal `json:"max_preco,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{
		crud: &CrudService[models.Product]{
			db:            db,
			notFoundKey:   i18n.KeyProductNotFound,
			duplicateKey:  i18n.KeyProductNameTaken,
			inUseKey:      i18n.KeyProductInUse,
			searchColumns: []string{"name", "description", "unit"},
			defaultOrder:  "name ASC",
		},
	}
}

func (s *ProductService) SearchProducts(ctx context.Context, params ProductSearchParams) ([]models.Product, int64, error) {
	return s.crud.List(ctx, params.PaginationParams, func(db *gorm.DB) *gorm.DB {
		if params.PriceMin != nil {
			db = db.Where("base_price >= ?", *params.PriceMin)
		}
		if params.PriceMax != nil {
			db = db.Where("base_price <= ?", *params.PriceMax)
		}
		return db
	})
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.crud.Get(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, req *models.ProductCreate) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Unit:        req.Unit,
	}
	if err := s.crud.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req *models.ProductUpdate) (*models.Product, error) {
	return s.crud.Update(ctx, id, req.Updates())
}

// DeleteProduct refuses to delete a product used by order items.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	return s.crud.Delete(ctx, id)
}
