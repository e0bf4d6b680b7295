package mocks

import (
	"context"

	"marketplace-service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id string) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByBuyerID(buyerID string) ([]domain.Order, error) {
	args := m.Called(buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id string, from, to domain.OrderStatus, updates map[string]any) (bool, error) {
	args := m.Called(id, from, to, updates)
	return args.Bool(0), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(id string) (*domain.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) DecrementStock(id string, qty int) (int, bool, error) {
	args := m.Called(id, qty)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockProductRepository) IncrementStock(id string, qty int) (int, error) {
	args := m.Called(id, qty)
	return args.Int(0), args.Error(1)
}

func (m *MockProductRepository) SetStock(id string, stock int) error {
	args := m.Called(id, stock)
	return args.Error(0)
}

type MockBranchRepository struct {
	mock.Mock
}

func (m *MockBranchRepository) FindByID(id string) (*domain.Branch, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchRepository) FirstActive() (*domain.Branch, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) IsAdmin(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type MockSellerStatsRepository struct {
	mock.Mock
}

func (m *MockSellerStatsRepository) RecordSale(sellerID string, revenue decimal.Decimal, units int) error {
	args := m.Called(sellerID, revenue, units)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, userID, kind string, payload map[string]any) error {
	args := m.Called(ctx, userID, kind, payload)
	return args.Error(0)
}
