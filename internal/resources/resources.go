// internal/resources/resources.go
package resources

import (
	"context"
	"fmt"
	"net/url"

	"github.com/atelier-gestor/atelier/internal/apiclient"
	"github.com/atelier-gestor/atelier/internal/models"
)

// Crud is the uniform service every REST resource gets.
type Crud[T, C, U any] struct {
	client   *apiclient.Client
	resource string
}

func NewCrud[T, C, U any](client *apiclient.Client, resource string) *Crud[T, C, U] {
	return &Crud[T, C, U]{client: client, resource: resource}
}

func (s *Crud[T, C, U]) List(ctx context.Context, query url.Values) (*models.Page[T], error) {
	page := &models.Page[T]{}
	if err := s.client.Get(ctx, s.resource, query, page); err != nil {
		return nil, err
	}
	if page.Data == nil {
		page.Data = []T{}
	}
	return page, nil
}

func (s *Crud[T, C, U]) Get(ctx context.Context, id uint) (*T, error) {
	var obj T
	if err := s.client.Get(ctx, s.path(id), nil, &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

func (s *Crud[T, C, U]) Create(ctx context.Context, data C) (*T, error) {
	var obj T
	if err := s.client.Post(ctx, s.resource, data, &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

func (s *Crud[T, C, U]) Update(ctx context.Context, id uint, data U) (*T, error) {
	var obj T
	if err := s.client.Patch(ctx, s.path(id), data, &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

func (s *Crud[T, C, U]) Delete(ctx context.Context, id uint) error {
	return s.client.Delete(ctx, s.path(id))
}

func (s *Crud[T, C, U]) path(id uint) string {
	return fmt.Sprintf("%s/%d", s.resource, id)
}

type (
	Clients  = Crud[models.Client, models.ClientCreate, models.ClientUpdate]
	Products = Crud[models.Product, models.ProductCreate, models.ProductUpdate]
)

func NewClients(client *apiclient.Client) *Clients {
	return NewCrud[models.Client, models.ClientCreate, models.ClientUpdate](client, "clientes")
}

func NewProducts(client *apiclient.Client) *Products {
	return NewCrud[models.Product, models.ProductCreate, models.ProductUpdate](client, "produtos")
}

// File is an artwork picked by the user.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

type Orders struct {
	*Crud[models.Order, models.OrderCreate, models.OrderUpdate]
}

func NewOrders(client *apiclient.Client) *Orders {
	return &Orders{Crud: NewCrud[models.Order, models.OrderCreate, models.OrderUpdate](client, "pedidos")}
}

func (s *Orders) AddItem(ctx context.Context, orderID uint, item models.OrderItemInput) (*models.Order, error) {
	var order models.Order
	if err := s.client.Post(ctx, s.itemsPath(orderID), item, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Orders) UpdateItem(ctx context.Context, orderID, productID uint, update models.OrderItemUpdate) (*models.Order, error) {
	var order models.Order
	if err := s.client.Patch(ctx, s.itemPath(orderID, productID), update, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Orders) RemoveItem(ctx context.Context, orderID, productID uint) (*models.Order, error) {
	var order models.Order
	if err := s.client.DeleteInto(ctx, s.itemPath(orderID, productID), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UploadArt sends the file in the multipart field "file".
func (s *Orders) UploadArt(ctx context.Context, orderID, productID uint, file File) (*models.Order, error) {
	body := apiclient.NewMultipart()
	if err := body.WriteFile("file", file.Name, file.ContentType, file.Content); err != nil {
		return nil, err
	}
	if err := body.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}

	var order models.Order
	path := s.itemPath(orderID, productID) + "/upload-arte"
	if err := s.client.Post(ctx, path, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Orders) itemsPath(orderID uint) string {
	return fmt.Sprintf("%s/itens", s.path(orderID))
}

func (s *Orders) itemPath(orderID, productID uint) string {
	return fmt.Sprintf("%s/%d", s.itemsPath(orderID), productID)
}

type Dashboard struct {
	client *apiclient.Client
}

func NewDashboard(client *apiclient.Client) *Dashboard {
	return &Dashboard{client: client}
}

func (s *Dashboard) Get(ctx context.Context) (*models.Dashboard, error) {
	var dashboard models.Dashboard
	if err := s.client.Get(ctx, "dashboard", nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}
