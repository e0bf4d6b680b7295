package services

import (
	"context"
	"log"

	"marketplace-service/internal/domain"
	"marketplace-service/internal/infra"
	"marketplace-service/internal/repository"
)

// Stock signal thresholds. Fixed policy, not per-seller.
const lowStockThreshold = 5

// StockService guards the product stock counter. Every mutation goes through
// a single atomic conditional update in the repository so stock can never go
// negative, even with concurrent reservers.
type StockService struct {
	products repository.ProductRepository
	notifier infra.Notifier
}

func NewStockService(products repository.ProductRepository, notifier infra.Notifier) *StockService {
	return &StockService{products: products, notifier: notifier}
}

func (s *StockService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	p, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// CheckAvailable is the read-only pre-check. It reports why a quantity cannot
// be served but reserves nothing.
func (s *StockService) CheckAvailable(ctx context.Context, productID string, qty int) error {
	if qty < 1 {
		return domain.ErrInvalidQuantity
	}
	p, err := s.products.FindByID(productID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrProductNotFound
	}
	if !p.IsActive {
		return domain.ErrProductInactive
	}
	if p.Stock < qty {
		return domain.ErrInsufficientStock
	}
	return nil
}

// Reserve validates the product and decrements its stock atomically. The
// returned product carries the post-decrement stock. Fails closed with
// ErrInsufficientStock when concurrent reservers exhausted the stock between
// check and write.
func (s *StockService) Reserve(ctx context.Context, productID string, qty int) (*domain.Product, error) {
	if qty < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	p, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	if !p.IsActive {
		return nil, domain.ErrProductInactive
	}

	newStock, ok, err := s.products.DecrementStock(productID, qty)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInsufficientStock
	}

	p.Stock = newStock
	s.emitStockSignals(ctx, p)
	return p, nil
}

// Restore puts quantity back, used when an order is cancelled. No upper bound.
func (s *StockService) Restore(ctx context.Context, productID string, qty int) error {
	_, err := s.products.IncrementStock(productID, qty)
	return err
}

// ManualSet overwrites the stock counter. Only the owning seller may do this.
func (s *StockService) ManualSet(ctx context.Context, productID string, newStock int, ownerID string) error {
	if newStock < 0 {
		return domain.ErrInvalidQuantity
	}
	p, err := s.products.FindByID(productID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrProductNotFound
	}
	if p.SellerID != ownerID {
		return domain.ErrForbidden
	}
	if err := s.products.SetStock(productID, newStock); err != nil {
		return err
	}
	p.Stock = newStock
	s.emitStockSignals(ctx, p)
	return nil
}

// emitStockSignals notifies the seller when stock ran low or out. Best-effort:
// a failed notification never fails the stock mutation.
func (s *StockService) emitStockSignals(ctx context.Context, p *domain.Product) {
	var kind string
	switch {
	case p.Stock == 0:
		kind = domain.EventStockOut
	case p.Stock <= lowStockThreshold:
		kind = domain.EventStockLow
	default:
		return
	}
	err := s.notifier.Notify(ctx, p.SellerID, kind, map[string]any{
		"productId": p.ID,
		"stock":     p.Stock,
	})
	if err != nil {
		log.Printf("stock signal %s for product %s: %v", kind, p.ID, err)
	}
}
