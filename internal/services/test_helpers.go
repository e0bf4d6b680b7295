package services

import (
	"marketplace-service/internal/domain"

	"github.com/shopspring/decimal"
)

func CreateTestProduct(id, sellerID string, price int64, stock int) *domain.Product {
	return &domain.Product{
		ID:       id,
		SellerID: sellerID,
		Name:     "Test Product",
		Price:    decimal.NewFromInt(price),
		Stock:    stock,
		IsActive: true,
	}
}

func CreateTestOrder(id string, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:           id,
		BuyerID:      TestBuyerID,
		SellerID:     TestSellerID,
		ProductID:    TestProductID,
		Quantity:     TestQuantity,
		Total:        decimal.NewFromInt(TestProductPrice * TestQuantity),
		Status:       status,
		DeliveryMode: domain.DeliveryModePickup,
	}
}

const (
	TestProductID    = "prod-1"
	TestOrderID      = "order-1"
	TestBuyerID      = "buyer-1"
	TestSellerID     = "seller-1"
	TestAdminID      = "admin-1"
	TestBranchID     = "branch-1"
	TestQuantity     = 2
	TestProductPrice = int64(500)
)
