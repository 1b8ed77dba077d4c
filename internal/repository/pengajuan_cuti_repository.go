package repository

import (
	"strings"

	"hcga-dashboard-backend/internal/model"

	"gorm.io/gorm"
)

// PengajuanFilter dipakai list pengajuan cuti maupun training.
// Search = substring case-insensitive di nama/nik/jabatan/departemen/jenis.
type PengajuanFilter struct {
	Search     string
	Departemen string
	Status     string
}

type PengajuanCutiRepository interface {
	Create(pengajuan *model.PengajuanCuti) error
	GetAll(filter PengajuanFilter) ([]model.PengajuanCuti, error)
	GetByID(id uint) (*model.PengajuanCuti, error)
	Update(pengajuan *model.PengajuanCuti) error
	CountByStatus(status string) (int64, error)
}

type pengajuanCutiRepository struct {
	db *gorm.DB
}

func NewPengajuanCutiRepository(db *gorm.DB) PengajuanCutiRepository {
	return &pengajuanCutiRepository{db}
}

func (r *pengajuanCutiRepository) Create(pengajuan *model.PengajuanCuti) error {
	return r.db.Create(pengajuan).Error
}

func (r *pengajuanCutiRepository) GetAll(filter PengajuanFilter) ([]model.PengajuanCuti, error) {
	var list []model.PengajuanCuti
	q := r.db.Order("created_at desc")

	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(nama) LIKE ? OR LOWER(nik) LIKE ? OR LOWER(jabatan) LIKE ? OR LOWER(departemen) LIKE ? OR LOWER(jenis_pengajuan_cuti) LIKE ?",
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

func (r *pengajuanCutiRepository) GetByID(id uint) (*model.PengajuanCuti, error) {
	var pengajuan model.PengajuanCuti
	err := r.db.First(&pengajuan, id).Error
	return &pengajuan, err
}

func (r *pengajuanCutiRepository) Update(pengajuan *model.PengajuanCuti) error {
	return r.db.Save(pengajuan).Error
}

func (r *pengajuanCutiRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.PengajuanCuti{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
