package repository

import (
	"strings"

	"hcga-dashboard-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	GetAll(search, departemen string) ([]model.User, error)
	GetByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	Delete(id uint) error
	Count() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetAll(search, departemen string) ([]model.User, error) {
	var list []model.User
	q := r.db.Order("created_at desc")

	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(nik) LIKE ? OR LOWER(jabatan) LIKE ? OR LOWER(departemen) LIKE ?",
			term, term, term, term,
		)
	}
	if departemen != "" && departemen != "all" {
		q = q.Where("departemen = ?", departemen)
	}

	err := q.Find(&list).Error
	return list, err
}

func (r *userRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(id uint) error {
	return r.db.Delete(&model.User{}, id).Error
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Count(&count).Error
	return count, err
}
