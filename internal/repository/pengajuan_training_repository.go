package repository

import (
	"strings"

	"hcga-dashboard-backend/internal/model"

	"gorm.io/gorm"
)

type PengajuanTrainingRepository interface {
	Create(pengajuan *model.PengajuanTraining) error
	GetAll(filter PengajuanFilter) ([]model.PengajuanTraining, error)
	GetByID(id uint) (*model.PengajuanTraining, error)
	Update(pengajuan *model.PengajuanTraining) error
	CountByStatus(status string) (int64, error)
}

type pengajuanTrainingRepository struct {
	db *gorm.DB
}

func NewPengajuanTrainingRepository(db *gorm.DB) PengajuanTrainingRepository {
	return &pengajuanTrainingRepository{db}
}

func (r *pengajuanTrainingRepository) Create(pengajuan *model.PengajuanTraining) error {
	return r.db.Create(pengajuan).Error
}

func (r *pengajuanTrainingRepository) GetAll(filter PengajuanFilter) ([]model.PengajuanTraining, error) {
	var list []model.PengajuanTraining
	q := r.db.Order("created_at desc")

	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(nama) LIKE ? OR LOWER(nik) LIKE ? OR LOWER(jabatan) LIKE ? OR LOWER(departemen) LIKE ? OR LOWER(jenis_training) LIKE ?",
			term, term, term, term, term,
		)
	}
	if filter.Departemen != "" && filter.Departemen != "all" {
		q = q.Where("departemen = ?", filter.Departemen)
	}
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}

	err := q.Find(&list).Error
	return list, err
}

func (r *pengajuanTrainingRepository) GetByID(id uint) (*model.PengajuanTraining, error) {
	var pengajuan model.PengajuanTraining
	err := r.db.First(&pengajuan, id).Error
	return &pengajuan, err
}

func (r *pengajuanTrainingRepository) Update(pengajuan *model.PengajuanTraining) error {
	return r.db.Save(pengajuan).Error
}

func (r *pengajuanTrainingRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.PengajuanTraining{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
