package mysql

import (
	"errors"

	"marketplace-service/internal/domain"
	"marketplace-service/internal/repository"

	"gorm.io/gorm"
)

type branchRepo struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) repository.BranchRepository {
	return &branchRepo{db: db}
}

func (r *branchRepo) FindByID(id string) (*domain.Branch, error) {
	var b domain.Branch
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *branchRepo) FirstActive() (*domain.Branch, error) {
	var b domain.Branch
	err := r.db.Where("is_active = ?", true).Order("created_at").First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}
