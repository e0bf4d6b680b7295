package repository

import (
	"marketplace-service/internal/domain"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	Save(order *domain.Order) error
	FindByID(id string) (*domain.Order, error)
	FindByBuyerID(buyerID string) ([]domain.Order, error)
	// UpdateStatus is a compare-and-set: the row is updated only when its
	// status still equals from. Returns false when another writer won.
	UpdateStatus(id string, from, to domain.OrderStatus, updates map[string]any) (bool, error)
}

type ProductRepository interface {
	FindByID(id string) (*domain.Product, error)
	// DecrementStock atomically subtracts qty when stock suffices and returns
	// the resulting stock. ok is false when stock was insufficient.
	DecrementStock(id string, qty int) (newStock int, ok bool, err error)
	IncrementStock(id string, qty int) (newStock int, err error)
	SetStock(id string, stock int) error
}

type BranchRepository interface {
	FindByID(id string) (*domain.Branch, error)
	FirstActive() (*domain.Branch, error)
}

type AdminRepository interface {
	IsAdmin(id string) (bool, error)
}

type SellerStatsRepository interface {
	// RecordSale bumps the seller aggregates by one sale, units items and the
	// order's frozen revenue.
	RecordSale(sellerID string, revenue decimal.Decimal, units int) error
}
