package mysql

import (
	"errors"

	"marketplace-service/internal/domain"
	"marketplace-service/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) FindByID(id string) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// DecrementStock locks the product row, re-checks sufficiency and subtracts in
// one transaction so concurrent reservers can never drive stock negative.
func (r *productRepo) DecrementStock(id string, qty int) (int, bool, error) {
	var (
		newStock int
		ok       bool
	)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var p domain.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&p, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProductNotFound
			}
			return err
		}
		if p.Stock < qty {
			newStock = p.Stock
			return nil
		}
		if err := tx.Model(&domain.Product{}).Where("id = ?", id).
			UpdateColumn("stock", gorm.Expr("stock - ?", qty)).Error; err != nil {
			return err
		}
		newStock = p.Stock - qty
		ok = true
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return newStock, ok, nil
}

func (r *productRepo) IncrementStock(id string, qty int) (int, error) {
	var newStock int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var p domain.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&p, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProductNotFound
			}
			return err
		}
		if err := tx.Model(&domain.Product{}).Where("id = ?", id).
			UpdateColumn("stock", gorm.Expr("stock + ?", qty)).Error; err != nil {
			return err
		}
		newStock = p.Stock + qty
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newStock, nil
}

func (r *productRepo) SetStock(id string, stock int) error {
	res := r.db.Model(&domain.Product{}).Where("id = ?", id).
		UpdateColumn("stock", stock)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
