package services

import (
	"context"
	"sync"

	"marketplace-service/internal/domain"
)

// fakeProductRepo backs concurrency tests with the same conditional-update
// semantics the SQL repository provides.
type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*domain.Product
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*domain.Product{}}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) FindByID(id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) DecrementStock(id string, qty int) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return 0, false, domain.ErrProductNotFound
	}
	if p.Stock < qty {
		return p.Stock, false, nil
	}
	p.Stock -= qty
	return p.Stock, true, nil
}

func (r *fakeProductRepo) IncrementStock(id string, qty int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	p.Stock += qty
	return p.Stock, nil
}

func (r *fakeProductRepo) SetStock(id string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Stock = stock
	return nil
}

func (r *fakeProductRepo) stock(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[id].Stock
}

// countingNotifier records notifications per event kind.
type countingNotifier struct {
	mu     sync.Mutex
	counts map[string]int
}

func (n *countingNotifier) Notify(ctx context.Context, userID, kind string, payload map[string]any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.counts == nil {
		n.counts = map[string]int{}
	}
	n.counts[kind]++
	return nil
}

func (n *countingNotifier) count(kind string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.counts[kind]
}
