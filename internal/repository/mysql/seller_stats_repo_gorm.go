package mysql

import (
	"marketplace-service/internal/domain"
	"marketplace-service/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sellerStatsRepo struct {
	db *gorm.DB
}

func NewSellerStatsRepository(db *gorm.DB) repository.SellerStatsRepository {
	return &sellerStatsRepo{db: db}
}

// RecordSale upserts the aggregate row with atomic increments so concurrent
// deliveries for the same seller never lose counts.
func (r *sellerStatsRepo) RecordSale(sellerID string, revenue decimal.Decimal, units int) error {
	stats := domain.SellerStats{
		SellerID:     sellerID,
		TotalSales:   1,
		ProductsSold: int64(units),
		TotalRevenue: revenue,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "seller_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"total_sales":   gorm.Expr("total_sales + 1"),
			"products_sold": gorm.Expr("products_sold + ?", units),
			"total_revenue": gorm.Expr("total_revenue + ?", revenue),
		}),
	}).Create(&stats).Error
}
