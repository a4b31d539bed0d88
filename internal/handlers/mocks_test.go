// internal/handlers/mocks_test.go
package handlers

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/services"
	"github.com/atelier-gestor/atelier/internal/utils"
)

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) ListClients(ctx context.Context, params utils.PaginationParams) ([]models.Client, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Client), args.Get(1).(int64), args.Error(2)
}

func (m *MockClientService) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientService) CreateClient(ctx context.Context, req *models.ClientCreate) (*models.Client, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientService) UpdateClient(ctx context.Context, id uint, req *models.ClientUpdate) (*models.Client, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientService) DeleteClient(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) SearchOrders(ctx context.Context, params services.OrderSearchParams) ([]models.Order, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	args := m.Called(ctx, id)
	return orderResult(args)
}

func (m *MockOrderService) CreateOrder(ctx context.Context, req *models.OrderCreate) (*models.Order, error) {
	args := m.Called(ctx, req)
	return orderResult(args)
}

func (m *MockOrderService) UpdateOrder(ctx context.Context, id uint, req *models.OrderUpdate) (*models.Order, error) {
	args := m.Called(ctx, id, req)
	return orderResult(args)
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderService) AddItem(ctx context.Context, id uint, in *models.OrderItemInput) (*models.Order, error) {
	args := m.Called(ctx, id, in)
	return orderResult(args)
}

func (m *MockOrderService) UpdateItem(ctx context.Context, id, productID uint, req *models.OrderItemUpdate) (*models.Order, error) {
	args := m.Called(ctx, id, productID, req)
	return orderResult(args)
}

func (m *MockOrderService) RemoveItem(ctx context.Context, id, productID uint) (*models.Order, error) {
	args := m.Called(ctx, id, productID)
	return orderResult(args)
}

func (m *MockOrderService) UploadArt(ctx context.Context, id, productID uint, file io.Reader) (*models.Order, error) {
	args := m.Called(ctx, id, productID, file)
	return orderResult(args)
}

func orderResult(args mock.Arguments) (*models.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dashboard), args.Error(1)
}
