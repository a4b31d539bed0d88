// internal/handlers/client.go
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/utils"
)

type ClientService interface {
	ListClients(ctx context.Context, params utils.PaginationParams) ([]models.Client, int64, error)
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	CreateClient(ctx context.Context, req *models.ClientCreate) (*models.Client, error)
	UpdateClient(ctx context.Context, id uint, req *models.ClientUpdate) (*models.Client, error)
	DeleteClient(ctx context.Context, id uint) error
}

type ClientHandler struct {
	clientService ClientService
}

func NewClientHandler(clientService ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// GET /clientes
func (h *ClientHandler) GetClients(c *gin.Context) {
	params, errs := utils.GetPaginationParams(c)
	if len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	clients, total, err := h.clientService.ListClients(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.PaginatedResponse(c, clients, total)
}

// POST /clientes
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req models.ClientCreate
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, client)
}

// GET /clientes/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, client)
}

// PATCH /clientes/:id
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req models.ClientUpdate
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, client)
}

// DELETE /clientes/:id
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
