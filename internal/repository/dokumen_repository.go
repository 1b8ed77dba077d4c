package repository

import (
	"strings"

	"hcga-dashboard-backend/internal/model"

	"gorm.io/gorm"
)

type DokumenRepository interface {
	Create(dokumen *model.Dokumen) error
	GetAll(search, kategori string) ([]model.Dokumen, error)
	GetByID(id uint) (*model.Dokumen, error)
	Delete(id uint) error
	Count() (int64, error)
}

type dokumenRepository struct {
	db *gorm.DB
}

func NewDokumenRepository(db *gorm.DB) DokumenRepository {
	return &dokumenRepository{db}
}

func (r *dokumenRepository) Create(dokumen *model.Dokumen) error {
	return r.db.Create(dokumen).Error
}

func (r *dokumenRepository) GetAll(search, kategori string) ([]model.Dokumen, error) {
	var list []model.Dokumen
	q := r.db.Order("created_at desc")

	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(nama) LIKE ? OR LOWER(kategori) LIKE ? OR LOWER(sub_folder) LIKE ?",
			term, term, term,
		)
	}
	if kategori != "" && kategori != "all" {
		q = q.Where("kategori = ?", kategori)
	}

	err := q.Find(&list).Error
	return list, err
}

func (r *dokumenRepository) GetByID(id uint) (*model.Dokumen, error) {
	var dokumen model.Dokumen
	err := r.db.First(&dokumen, id).Error
	return &dokumen, err
}

func (r *dokumenRepository) Delete(id uint) error {
	return r.db.Delete(&model.Dokumen{}, id).Error
}

func (r *dokumenRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Dokumen{}).Count(&count).Error
	return count, err
}
