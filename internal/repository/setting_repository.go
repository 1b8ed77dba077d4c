package repository

import (
	"errors"

	"hcga-dashboard-backend/internal/model"

	"gorm.io/gorm"
)

type SettingRepository interface {
	GetAll() ([]model.WebSetting, error)
	// UpsertMany menyimpan semua key dalam satu transaksi: kalau satu
	// gagal, tidak ada yang tersimpan.
	UpsertMany(settings map[string]string) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db}
}

func (r *settingRepository) GetAll() ([]model.WebSetting, error) {
	var list []model.WebSetting
	err := r.db.Order("updated_at desc").Find(&list).Error
	return list, err
}

func (r *settingRepository) UpsertMany(settings map[string]string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range settings {
			var existing model.WebSetting
			err := tx.Where("`key` = ?", key).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := tx.Create(&model.WebSetting{Key: key, Value: value}).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			existing.Value = value
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
