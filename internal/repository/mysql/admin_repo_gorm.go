package mysql

import (
	"marketplace-service/internal/domain"
	"marketplace-service/internal/repository"

	"gorm.io/gorm"
)

type adminRepo struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) IsAdmin(id string) (bool, error) {
	var n int64
	if err := r.db.Model(&domain.AdminUser{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
