package repository

import (
	"hcga-dashboard-backend/internal/model"

	"gorm.io/gorm"
)

type KontakRepository interface {
	Create(kontak *model.KontakHR) error
	GetAll() ([]model.KontakHR, error)
	CountByStatus(status string) (int64, error)
}

type kontakRepository struct {
	db *gorm.DB
}

func NewKontakRepository(db *gorm.DB) KontakRepository {
	return &kontakRepository{db}
}

func (r *kontakRepository) Create(kontak *model.KontakHR) error {
	return r.db.Create(kontak).Error
}

func (r *kontakRepository) GetAll() ([]model.KontakHR, error) {
	var list []model.KontakHR
	err := r.db.Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *kontakRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.KontakHR{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
