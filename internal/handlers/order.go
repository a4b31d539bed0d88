// internal/handlers/order.go
package handlers

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/atelier-gestor/atelier/internal/i18n"
	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/services"
	"github.com/atelier-gestor/atelier/internal/utils"
)

type OrderService interface {
	SearchOrders(ctx context.Context, params services.OrderSearchParams) ([]models.Order, int64, error)
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	CreateOrder(ctx context.Context, req *models.OrderCreate) (*models.Order, error)
	UpdateOrder(ctx context.Context, id uint, req *models.OrderUpdate) (*models.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
	AddItem(ctx context.Context, id uint, in *models.OrderItemInput) (*models.Order, error)
	UpdateItem(ctx context.Context, id, productID uint, req *models.OrderItemUpdate) (*models.Order, error)
	RemoveItem(ctx context.Context, id, productID uint) (*models.Order, error)
	UploadArt(ctx context.Context, id, productID uint, file io.Reader) (*models.Order, error)
}

type OrderHandler struct {
	orderService OrderService
}

func NewOrderHandler(orderService OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GET /pedidos
func (h *OrderHandler) GetOrders(c *gin.Context) {
	params, errs := utils.GetPaginationParams(c)

	searchParams := services.OrderSearchParams{
		PaginationParams: params,
	}

	if status := c.Query("status"); status != "" {
		orderStatus := models.OrderStatus(status)
		if !orderStatus.Valid() {
			errs = append(errs, utils.ValidationError{
				Loc:  []string{"query", "status"},
				Msg:  i18n.T(utils.GetLangFromContext(c), i18n.KeyValidationStatus),
				Type: "enum",
			})
		}
		searchParams.Status = &orderStatus
	}

	var verr *utils.ValidationError
	if searchParams.OrderDate, verr = utils.QueryDate(c, "data_pedido"); verr != nil {
		errs = append(errs, *verr)
	}
	if searchParams.CompletionDate, verr = utils.QueryDate(c, "data_conclusao"); verr != nil {
		errs = append(errs, *verr)
	}
	if searchParams.TotalMin, verr = utils.QueryDecimal(c, "min_total"); verr != nil {
		errs = append(errs, *verr)
	}
	if searchParams.TotalMax, verr = utils.QueryDecimal(c, "max_total"); verr != nil {
		errs = append(errs, *verr)
	}
	if len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	orders, total, err := h.orderService.SearchOrders(c.Request.Context(), searchParams)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.PaginatedResponse(c, orders, total)
}

// POST /pedidos
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.OrderCreate
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, order)
}

// GET /pedidos/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, order)
}

// PATCH /pedidos/:id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req models.OrderUpdate
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, order)
}

// DELETE /pedidos/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// POST /pedidos/:id/itens
func (h *OrderHandler) AddItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req models.OrderItemInput
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.AddItem(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, order)
}

// PATCH /pedidos/:id/itens/:produtoId
func (h *OrderHandler) UpdateItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	productID, ok := paramID(c, "produtoId")
	if !ok {
		return
	}

	var req models.OrderItemUpdate
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateItem(c.Request.Context(), id, productID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, order)
}

// DELETE /pedidos/:id/itens/:produtoId
func (h *OrderHandler) RemoveItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	productID, ok := paramID(c, "produtoId")
	if !ok {
		return
	}

	order, err := h.orderService.RemoveItem(c.Request.Context(), id, productID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, order)
}

// POST /pedidos/:id/itens/:produtoId/upload-arte
func (h *OrderHandler) UploadArt(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	productID, ok := paramID(c, "produtoId")
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		utils.ValidationErrorResponse(c, []utils.ValidationError{{
			Loc:  []string{"body", "file"},
			Msg:  i18n.T(lang, i18n.KeyFileMissing),
			Type: "missing",
		}})
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileCorrupted))
		return
	}
	defer file.Close()

	order, err := h.orderService.UploadArt(c.Request.Context(), id, productID, file)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, order)
}
