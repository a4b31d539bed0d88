// internal/services/order_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/atelier-gestor/atelier/internal/database"
	"github.com/atelier-gestor/atelier/internal/i18n"
	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/utils"
)

// DashboardInvalidator is told whenever an order changes.
type DashboardInvalidator interface {
	Invalidate(ctx context.Context)
}

type OrderService struct {
	db        *gorm.DB
	storage   ArtStorage
	dashboard DashboardInvalidator
}

type OrderSearchParams struct {
	utils.PaginationParams
	Status         *models.OrderStatus `json:"status,omitempty"`
	OrderDate      *models.Date        `json:"data_pedido,omitempty"`
	CompletionDate *models.Date        `json:"data_conclusao,omitempty"`
	TotalMin       *decimal.Decimal    `json:"min_total,omitempty"`
	TotalMax       *decimal.Decimal    `json:"max_total,omitempty"`
}

func NewOrderService(db *gorm.DB, storage ArtStorage, dashboard DashboardInvalidator) *OrderService {
	return &OrderService{
		db:        db,
		storage:   storage,
		dashboard: dashboard,
	}
}

func (s *OrderService) SearchOrders(ctx context.Context, params OrderSearchParams) ([]models.Order, int64, error) {
	var (
		orders []models.Order
		total  int64
	)

	query := s.db.WithContext(ctx).Model(&models.Order{}).
		Joins("JOIN clients ON clients.id = orders.client_id")
	query = utils.ApplySearch(query, params.Search, "clients.name", "orders.notes")

	if params.Status != nil {
		query = query.Where("orders.status = ?", *params.Status)
	}
	if params.OrderDate != nil {
		query = query.Where("orders.order_date = ?", *params.OrderDate)
	}
	if params.CompletionDate != nil {
		query = query.Where("orders.completion_date = ?", *params.CompletionDate)
	}
	if params.TotalMin != nil {
		query = query.Where("orders.total >= ?", *params.TotalMin)
	}
	if params.TotalMax != nil {
		query = query.Where("orders.total <= ?", *params.TotalMax)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	err := utils.ApplyPagination(query, params.PaginationParams).
		Preload("Client").
		Preload("Items").
		Order("orders.id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search orders: %w", err)
	}

	return orders, total, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	return s.loadOrder(s.db.WithContext(ctx), id)
}

func (s *OrderService) loadOrder(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Client").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(i18n.KeyOrderNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

// CreateOrder persists an order with its full item list. Repeated products
// are folded into one row, prices default to the product base price.
func (s *OrderService) CreateOrder(ctx context.Context, req *models.OrderCreate) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, invalid(i18n.KeyOrderEmpty)
	}

	order := &models.Order{
		ClientID:       req.ClientID,
		OrderDate:      req.OrderDate,
		CompletionDate: req.CompletionDate,
		Status:         req.Status,
		Notes:          req.Notes,
		Discount:       req.Discount,
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = models.Today()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusAwaitingPayment
	}
	if order.Status == models.OrderStatusCompleted && order.CompletionDate == nil {
		today := models.Today()
		order.CompletionDate = &today
	}

	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := s.ensureClient(tx, req.ClientID); err != nil {
			return err
		}

		products := make(map[uint]*models.Product)
		for _, in := range req.Items {
			product, ok := products[in.ProductID]
			if !ok {
				var err error
				if product, err = s.findProduct(tx, in.ProductID); err != nil {
					return err
				}
				products[in.ProductID] = product
			}
			order.MergeItem(in, product.BasePrice, product.Name)
		}

		if err := s.recalculate(order); err != nil {
			return err
		}

		if err := tx.Create(order).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return invalid(i18n.KeyOrderDuplicate)
			}
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	logrus.WithFields(logrus.Fields{
		"order_id":  order.ID,
		"client_id": order.ClientID,
		"items":     len(order.Items),
		"total":     order.Total.StringFixed(2),
	}).Info("Order created")

	return s.GetOrder(ctx, order.ID)
}

// UpdateOrder patches header fields and recomputes the total.
func (s *OrderService) UpdateOrder(ctx context.Context, id uint, req *models.OrderUpdate) (*models.Order, error) {
	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		order, err := s.loadOrder(tx, id)
		if err != nil {
			return err
		}

		if req.ClientID.Set && !req.ClientID.Null {
			if err := s.ensureClient(tx, req.ClientID.Value); err != nil {
				return err
			}
		}

		req.Apply(order)
		if err := s.recalculate(order); err != nil {
			return err
		}

		return s.saveHeader(tx, order)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return s.GetOrder(ctx, id)
}

// DeleteOrder removes the order, its items and their artwork.
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	var arts []*string

	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		order, err := s.loadOrder(tx, id)
		if err != nil {
			return err
		}
		for _, item := range order.Items {
			arts = append(arts, item.ArtPath)
		}

		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		if err := tx.Delete(&models.Order{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Files go only once the rows are gone
	for _, art := range arts {
		deleteArtQuietly(ctx, s.storage, art)
	}

	s.invalidate(ctx)
	return nil
}

// AddItem adds a product to the order or bumps the quantity of its row.
func (s *OrderService) AddItem(ctx context.Context, id uint, in *models.OrderItemInput) (*models.Order, error) {
	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		order, err := s.loadOrder(tx, id)
		if err != nil {
			return err
		}
		product, err := s.findProduct(tx, in.ProductID)
		if err != nil {
			return err
		}

		merged := order.MergeItem(*in, product.BasePrice, product.Name)
		if err := s.recalculate(order); err != nil {
			return err
		}

		item := order.FindItem(in.ProductID)
		if merged {
			err = tx.Model(item).Select("quantity", "unit_price", "notes").Updates(item).Error
		} else {
			err = tx.Create(item).Error
		}
		if err != nil {
			return fmt.Errorf("failed to save order item: %w", err)
		}

		return s.saveTotal(tx, order)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return s.GetOrder(ctx, id)
}

func (s *OrderService) UpdateItem(ctx context.Context, id, productID uint, req *models.OrderItemUpdate) (*models.Order, error) {
	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		order, err := s.loadOrder(tx, id)
		if err != nil {
			return err
		}
		item := order.FindItem(productID)
		if item == nil {
			return notFound(i18n.KeyOrderItemNotFound)
		}

		req.Apply(item)
		if err := s.recalculate(order); err != nil {
			return err
		}

		if err := tx.Model(item).Select("quantity", "unit_price", "notes").Updates(item).Error; err != nil {
			return fmt.Errorf("failed to update order item: %w", err)
		}
		return s.saveTotal(tx, order)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return s.GetOrder(ctx, id)
}

// RemoveItem refuses to leave the order empty. The artwork of the removed
// item is deleted after the commit.
func (s *OrderService) RemoveItem(ctx context.Context, id, productID uint) (*models.Order, error) {
	var orphan *string

	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		order, err := s.loadOrder(tx, id)
		if err != nil {
			return err
		}
		if len(order.Items) <= 1 {
			return invalid(i18n.KeyOrderLastItem)
		}

		removed, ok := order.RemoveItem(productID)
		if !ok {
			return notFound(i18n.KeyOrderItemNotFound)
		}
		if err := s.recalculate(order); err != nil {
			return err
		}

		if err := tx.Where("order_id = ? AND product_id = ?", id, productID).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete order item: %w", err)
		}
		orphan = removed.ArtPath
		return s.saveTotal(tx, order)
	})
	if err != nil {
		return nil, err
	}

	deleteArtQuietly(ctx, s.storage, orphan)
	s.invalidate(ctx)
	return s.GetOrder(ctx, id)
}

// UploadArt stores the artwork of one item and replaces the previous one.
func (s *OrderService) UploadArt(ctx context.Context, id, productID uint, file io.Reader) (*models.Order, error) {
	var item models.OrderItem
	err := s.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", id, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(i18n.KeyOrderItemNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	artPath, err := s.storage.SaveArt(ctx, id, productID, file)
	if err != nil {
		return nil, err
	}

	previous := item.ArtPath
	err = s.db.WithContext(ctx).Model(&item).Update("art_path", artPath).Error
	if err != nil {
		// Keep the old file, drop the one nobody references
		deleteArtQuietly(ctx, s.storage, &artPath)
		return nil, fmt.Errorf("failed to save artwork path: %w", err)
	}

	deleteArtQuietly(ctx, s.storage, previous)

	logrus.WithFields(logrus.Fields{
		"order_id":   id,
		"product_id": productID,
		"art_path":   artPath,
	}).Info("Item artwork stored")

	return s.GetOrder(ctx, id)
}

func (s *OrderService) ensureClient(tx *gorm.DB, clientID uint) error {
	var count int64
	if err := tx.Model(&models.Client{}).Where("id = ?", clientID).Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return notFound(i18n.KeyOrderClientMissing, clientID)
	}
	return nil
}

func (s *OrderService) findProduct(tx *gorm.DB, productID uint) (*models.Product, error) {
	var product models.Product
	if err := tx.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(i18n.KeyProductMissing, productID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// recalculate maps discount failures to user-facing errors.
func (s *OrderService) recalculate(order *models.Order) error {
	err := order.Recalculate()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrNegativeDiscount):
		return invalid(i18n.KeyOrderDiscountNegative)
	case errors.Is(err, models.ErrDiscountExceedsSubtotal):
		return invalid(i18n.KeyOrderDiscountTooHigh,
			order.Discount.StringFixed(2), order.Subtotal().StringFixed(2))
	default:
		return err
	}
}

func (s *OrderService) saveHeader(tx *gorm.DB, order *models.Order) error {
	err := tx.Model(order).
		Select("client_id", "order_date", "completion_date", "status", "notes", "discount", "total").
		Updates(order).Error
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

func (s *OrderService) saveTotal(tx *gorm.DB, order *models.Order) error {
	if err := tx.Model(order).Update("total", order.Total).Error; err != nil {
		return fmt.Errorf("failed to update order total: %w", err)
	}
	return nil
}

func (s *OrderService) invalidate(ctx context.Context) {
	if s.dashboard != nil {
		s.dashboard.Invalidate(ctx)
	}
}
