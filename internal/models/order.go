// internal/models/order.go
package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmptyOrder              = errors.New("order must contain at least one item")
	ErrNegativeDiscount        = errors.New("discount cannot be negative")
	ErrDiscountExceedsSubtotal = errors.New("discount exceeds order subtotal")
	ErrTotalNotPositive        = errors.New("order total must be positive")
)

type Order struct {
	BaseModel
	ClientID       uint            `json:"cliente_id" gorm:"not null;index"`
	OrderDate      Date            `json:"data_pedido" gorm:"type:date;not null;index"`
	CompletionDate *Date           `json:"data_conclusao" gorm:"type:date;index"`
	Status         OrderStatus     `json:"status" gorm:"type:varchar(30);not null;default:'Aguardando Pagamento';index"`
	Notes          *string         `json:"observacoes" gorm:"type:text"`
	Discount       decimal.Decimal `json:"desconto" gorm:"type:decimal(10,2);not null;default:0"`
	Total          decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null;default:0;index"`

	// Relationships
	Client *Client     `json:"cliente,omitempty" gorm:"foreignKey:ClientID"`
	Items  []OrderItem `json:"itens" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	OrderID     uint            `json:"pedido_id" gorm:"primaryKey;autoIncrement:false"`
	ProductID   uint            `json:"produto_id" gorm:"primaryKey;autoIncrement:false"`
	Quantity    int             `json:"quantidade" gorm:"not null;default:1"`
	UnitPrice   decimal.Decimal `json:"preco_unitario" gorm:"type:decimal(10,2);not null;default:0"`
	ProductName string          `json:"nome_produto" gorm:"size:255;not null"`
	ArtPath     *string         `json:"caminho_arte" gorm:"size:500"`
	Notes       *string         `json:"observacoes" gorm:"type:text"`
	LineTotal   decimal.Decimal `json:"valor_total" gorm:"-"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Product *Product `json:"-" gorm:"foreignKey:ProductID"`
}

func (i *OrderItem) AfterFind(tx *gorm.DB) error {
	i.LineTotal = i.Subtotal()
	return nil
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderItemInput is the body of an item addition. A nil UnitPrice means
// "use the product base price".
type OrderItemInput struct {
	ProductID uint             `json:"produto_id" validate:"required"`
	Quantity  int              `json:"quantidade" validate:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"preco_unitario,omitempty" validate:"omitempty,gte=0"`
	Notes     *string          `json:"observacoes,omitempty"`
}

type OrderItemUpdate struct {
	Quantity  Field[int]             `json:"quantidade,omitzero" validate:"omitempty,min=1"`
	UnitPrice Field[decimal.Decimal] `json:"preco_unitario,omitzero" validate:"omitempty,gte=0"`
	Notes     Field[string]          `json:"observacoes,omitzero"`
}

type OrderCreate struct {
	ClientID       uint             `json:"cliente_id" validate:"required"`
	OrderDate      Date             `json:"data_pedido"`
	CompletionDate *Date            `json:"data_conclusao,omitempty"`
	Status         OrderStatus      `json:"status,omitempty" validate:"omitempty,order_status"`
	Notes          *string          `json:"observacoes,omitempty"`
	Discount       decimal.Decimal  `json:"desconto" validate:"gte=0"`
	Items          []OrderItemInput `json:"itens" validate:"required,min=1,dive"`
}

type OrderUpdate struct {
	ClientID       Field[uint]            `json:"cliente_id,omitzero"`
	OrderDate      Field[Date]            `json:"data_pedido,omitzero"`
	CompletionDate Field[Date]            `json:"data_conclusao,omitzero"`
	Status         Field[OrderStatus]     `json:"status,omitzero" validate:"omitempty,order_status"`
	Notes          Field[string]          `json:"observacoes,omitzero"`
	Discount       Field[decimal.Decimal] `json:"desconto,omitzero" validate:"omitempty,gte=0"`
}

// Apply copies the set header fields onto the order.
func (u OrderUpdate) Apply(o *Order) {
	if u.ClientID.Set && !u.ClientID.Null {
		o.ClientID = u.ClientID.Value
	}
	if u.OrderDate.Set && !u.OrderDate.Null {
		o.OrderDate = u.OrderDate.Value
	}
	if u.CompletionDate.Set {
		o.CompletionDate = u.CompletionDate.Ptr()
	}
	if u.Status.Set && !u.Status.Null {
		o.Status = u.Status.Value
	}
	if u.Notes.Set {
		o.Notes = u.Notes.Ptr()
	}
	if u.Discount.Set {
		o.Discount = decimal.Zero
		if !u.Discount.Null {
			o.Discount = u.Discount.Value
		}
	}
	if o.Status == OrderStatusCompleted && o.CompletionDate == nil {
		today := Today()
		o.CompletionDate = &today
	}
}

func (u OrderItemUpdate) Apply(item *OrderItem) {
	if u.Quantity.Set && !u.Quantity.Null {
		item.Quantity = u.Quantity.Value
	}
	if u.UnitPrice.Set && !u.UnitPrice.Null {
		item.UnitPrice = u.UnitPrice.Value
	}
	if u.Notes.Set {
		item.Notes = u.Notes.Ptr()
	}
	item.LineTotal = item.Subtotal()
}

func (o *Order) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	return subtotal
}

func (o *Order) FindItem(productID uint) *OrderItem {
	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			return &o.Items[i]
		}
	}
	return nil
}

// MergeItem adds an item or bumps the quantity of the row for the same product.
// The unit price is overwritten only when given; the note only when non-blank.
func (o *Order) MergeItem(in OrderItemInput, basePrice decimal.Decimal, productName string) (merged bool) {
	if existing := o.FindItem(in.ProductID); existing != nil {
		existing.Quantity += in.Quantity
		if in.UnitPrice != nil {
			existing.UnitPrice = *in.UnitPrice
		}
		if in.Notes != nil && *in.Notes != "" {
			existing.Notes = in.Notes
		}
		existing.LineTotal = existing.Subtotal()
		return true
	}

	price := basePrice
	if in.UnitPrice != nil {
		price = *in.UnitPrice
	}
	item := OrderItem{
		OrderID:     o.ID,
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		UnitPrice:   price,
		ProductName: productName,
		Notes:       in.Notes,
	}
	item.LineTotal = item.Subtotal()
	o.Items = append(o.Items, item)
	return false
}

// RemoveItem drops the row for productID and returns it.
func (o *Order) RemoveItem(productID uint) (OrderItem, bool) {
	for i, item := range o.Items {
		if item.ProductID == productID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			return item, true
		}
	}
	return OrderItem{}, false
}

// Recalculate recomputes the total in memory. The discount must stay within
// [0, subtotal].
func (o *Order) Recalculate() error {
	subtotal := o.Subtotal()
	if err := ValidateDiscount(subtotal, o.Discount); err != nil {
		return err
	}
	o.Total = subtotal.Sub(o.Discount)
	return nil
}

func ValidateDiscount(subtotal, discount decimal.Decimal) error {
	if discount.IsNegative() {
		return ErrNegativeDiscount
	}
	if discount.GreaterThan(subtotal) {
		return ErrDiscountExceedsSubtotal
	}
	return nil
}

// ValidateTotal is the submit rule of the order form: a valid discount and
// subtotal - discount > 0.
func ValidateTotal(subtotal, discount decimal.Decimal) error {
	if err := ValidateDiscount(subtotal, discount); err != nil {
		return err
	}
	if !subtotal.Sub(discount).IsPositive() {
		return ErrTotalNotPositive
	}
	return nil
}
