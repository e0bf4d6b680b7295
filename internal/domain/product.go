package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        string          `json:"id" gorm:"primaryKey;size:36"`
	SellerID  string          `json:"sellerId" gorm:"size:36;not null;index"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Stock     int             `json:"stock" gorm:"not null;default:0"`
	IsActive  bool            `json:"isActive" gorm:"not null;default:true"`
	CreatedAt time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

type Branch struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Address   string    `json:"address,omitempty" gorm:"size:255"`
	IsActive  bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// SellerStats is a per-seller aggregate row updated with atomic increments
// whenever one of the seller's orders reaches DELIVERED.
type SellerStats struct {
	SellerID     string          `json:"sellerId" gorm:"primaryKey;size:36"`
	TotalSales   int64           `json:"totalSales" gorm:"not null;default:0"`
	ProductsSold int64           `json:"productsSold" gorm:"not null;default:0"`
	TotalRevenue decimal.Decimal `json:"totalRevenue" gorm:"type:decimal(14,2);not null;default:0"`
	UpdatedAt    time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}
