// internal/handlers/product.go
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/services"
	"github.com/atelier-gestor/atelier/internal/utils"
)

type ProductService interface {
	SearchProducts(ctx context.Context, params services.ProductSearchParams) ([]models.Product, int64, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, req *models.ProductCreate) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, req *models.ProductUpdate) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductHandler struct {
	productService ProductService
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /produtos
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params, errs := utils.GetPaginationParams(c)

	// Build search parameters
	searchParams := services.ProductSearchParams{
		PaginationParams: params,
	}

	var verr *utils.ValidationError
	if searchParams.PriceMin, verr = utils.QueryDecimal(c, "min_preco"); verr != nil {
		errs = append(errs, *verr)
	}
	if searchParams.PriceMax, verr = utils.QueryDecimal(c, "max_preco"); verr != nil {
		errs = append(errs, *verr)
	}
	if len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	products, total, err := h.productService.SearchProducts(c.Request.Context(), searchParams)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.PaginatedResponse(c, products, total)
}

// POST /produtos
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.ProductCreate
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, product)
}

// GET /produtos/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, product)
}

// PATCH /produtos/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req models.ProductUpdate
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, product)
}

// DELETE /produtos/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
