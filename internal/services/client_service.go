// internal/services/client_service.go
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/atelier-gestor/atelier/internal/i18n"
	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/utils"
)

type ClientService struct {
	crud *CrudService[models.Client]
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{
		crud: &CrudService[models.Client]{
			db:            db,
			notFoundKey:   i18n.KeyClientNotFound,
			duplicateKey:  i18n.KeyClientEmailTaken,
			inUseKey:      i18n.KeyClientHasOrders,
			searchColumns: []string{"name", "email", "phone"},
			defaultOrder:  "name ASC",
		},
	}
}

func (s *ClientService) ListClients(ctx context.Context, params utils.PaginationParams) ([]models.Client, int64, error) {
	return s.crud.List(ctx, params)
}

func (s *ClientService) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	return s.crud.Get(ctx, id)
}

func (s *ClientService) CreateClient(ctx context.Context, req *models.ClientCreate) (*models.Client, error) {
	client := &models.Client{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		BirthDate: req.BirthDate,
		Notes:     req.Notes,
	}
	if err := s.crud.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, id uint, req *models.ClientUpdate) (*models.Client, error) {
	return s.crud.Update(ctx, id, req.Updates())
}

// DeleteClient refuses to delete a client referenced by orders.
func (s *ClientService) DeleteClient(ctx context.Context, id uint) error {
	return s.crud.Delete(ctx, id)
}
