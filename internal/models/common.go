// internal/models/common.go
package models

import (
	"time"
)

// Base model with common fields
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Page is the list envelope used by every paginated endpoint.
type Page[T any] struct {
	Data  []T   `json:"dados"`
	Total int64 `json:"total"`
}

// Enums
type OrderStatus string

const (
	OrderStatusAwaitingPayment OrderStatus = "Aguardando Pagamento"
	OrderStatusAwaitingArtwork OrderStatus = "Aguardando Arte"
	OrderStatusInProduction    OrderStatus = "Em Produção"
	OrderStatusReadyForPickup  OrderStatus = "Pronto para Retirada"
	OrderStatusCompleted       OrderStatus = "Concluído"
	OrderStatusCancelled       OrderStatus = "Cancelado"
)

func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusAwaitingPayment,
		OrderStatusAwaitingArtwork,
		OrderStatusInProduction,
		OrderStatusReadyForPickup,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
}

func (s OrderStatus) Valid() bool {
	for _, status := range OrderStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// Active orders still need work from the atelier.
func (s OrderStatus) Active() bool {
	return s != OrderStatusCompleted && s != OrderStatusCancelled
}

// Billable orders count towards revenue.
func (s OrderStatus) Billable() bool {
	switch s {
	case OrderStatusCancelled, OrderStatusAwaitingPayment, OrderStatusAwaitingArtwork:
		return false
	}
	return true
}
