package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryMode string

const (
	DeliveryModePickup   DeliveryMode = "PICKUP"
	DeliveryModeDelivery DeliveryMode = "DELIVERY"
)

type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;size:36"`
	BuyerID         string          `json:"buyerId" gorm:"size:36;not null;index"`
	SellerID        string          `json:"sellerId" gorm:"size:36;not null;index"`
	ProductID       string          `json:"productId" gorm:"size:36;not null;index"`
	Quantity        int             `json:"quantity" gorm:"not null"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(12,2);not null"`
	Status          OrderStatus     `json:"status" gorm:"size:32;not null;index"`
	DeliveryMode    DeliveryMode    `json:"deliveryMode" gorm:"size:16;not null"`
	DeliveryAddress string          `json:"deliveryAddress,omitempty" gorm:"size:255"`
	BranchID        *string         `json:"branchId,omitempty" gorm:"size:36"`
	QRCode          string          `json:"qrCode" gorm:"type:text"`
	QRSecretToken   string          `json:"-" gorm:"size:64"`
	PickupCode      string          `json:"-" gorm:"size:6"`
	Note            string          `json:"note,omitempty" gorm:"size:500"`
	PaymentMethod   string          `json:"paymentMethod,omitempty" gorm:"size:32"`
	CreatedAt       time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}
