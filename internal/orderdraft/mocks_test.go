// internal/orderdraft/mocks_test.go
package orderdraft

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/resources"
)

type MockOrderAPI struct {
	mock.Mock
}

func (m *MockOrderAPI) order(args mock.Arguments) (*models.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderAPI) Update(ctx context.Context, id uint, data models.OrderUpdate) (*models.Order, error) {
	return m.order(m.Called(ctx, id, data))
}

func (m *MockOrderAPI) AddItem(ctx context.Context, orderID uint, item models.OrderItemInput) (*models.Order, error) {
	return m.order(m.Called(ctx, orderID, item))
}

func (m *MockOrderAPI) UpdateItem(ctx context.Context, orderID, productID uint, update models.OrderItemUpdate) (*models.Order, error) {
	return m.order(m.Called(ctx, orderID, productID, update))
}

func (m *MockOrderAPI) RemoveItem(ctx context.Context, orderID, productID uint) (*models.Order, error) {
	return m.order(m.Called(ctx, orderID, productID))
}

func (m *MockOrderAPI) UploadArt(ctx context.Context, orderID, productID uint, file resources.File) (*models.Order, error) {
	return m.order(m.Called(ctx, orderID, productID, file))
}

type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Submit(ctx context.Context, submission *Submission) (*models.Order, error) {
	args := m.Called(ctx, submission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

// scriptedConfirmer answers questions in order and remembers them.
type scriptedConfirmer struct {
	answers []bool
	asked   []string
}

func (c *scriptedConfirmer) Confirm(message string) bool {
	c.asked = append(c.asked, message)
	if len(c.answers) == 0 {
		return false
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer
}
