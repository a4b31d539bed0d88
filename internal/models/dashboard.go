// internal/models/dashboard.go
package models

import (
	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	Total           int64           `json:"totalGeral"`
	Revenue         decimal.Decimal `json:"faturamento"`
	Active          int64           `json:"totalAtivos"`
	Cancelled       int64           `json:"cancelados"`
	AwaitingPayment int64           `json:"aguardandoPagamento"`
	InProduction    int64           `json:"emProducao"`
	Ready           int64           `json:"pronto"`
	Completed       int64           `json:"concluidos"`
	AwaitingArtwork int64           `json:"aguardandoArte"`
}

type Dashboard struct {
	Stats        DashboardStats `json:"status"`
	RecentOrders []Order        `json:"pedidosRecentes"`
	Birthdays    []Client       `json:"aniversariantes"`
}

// StatusCount is one row of the per-status aggregate.
type StatusCount struct {
	Status OrderStatus
	Count  int64
	Sum    decimal.Decimal
}

// Add folds one aggregate row into the stats.
func (s *DashboardStats) Add(row StatusCount) {
	s.Total += row.Count

	switch row.Status {
	case OrderStatusCancelled:
		s.Cancelled = row.Count
	case OrderStatusAwaitingPayment:
		s.AwaitingPayment = row.Count
	case OrderStatusAwaitingArtwork:
		s.AwaitingArtwork = row.Count
	case OrderStatusInProduction:
		s.InProduction = row.Count
	case OrderStatusReadyForPickup:
		s.Ready = row.Count
	case OrderStatusCompleted:
		s.Completed = row.Count
	}

	if row.Status.Billable() {
		s.Revenue = s.Revenue.Add(row.Sum)
	}
	if row.Status.Active() {
		s.Active += row.Count
	}
}
