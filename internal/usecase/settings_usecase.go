package usecase

import (
	"fmt"

	"hcga-dashboard-backend/internal/model"
	"hcga-dashboard-backend/internal/repository"
)

// DefaultSettings adalah pengaturan bawaan website. Nilai di tabel
// web_settings menimpa default ini per key.
var DefaultSettings = map[string]string{
	"siteTitle":          "HCGA 3S-GSM Dashboard",
	"siteDescription":    "Sistem Manajemen Sumber Daya Manusia",
	"footerText":         "© 2024 HCGA 3S-GSM Dashboard - Developed by Yan Firdaus",
	"primaryColor":       "#1E3A8A",
	"secondaryColor":     "#6B7280",
	"accentColor":        "#3B82F6",
	"fontFamily":         "Inter",
	"contactEmail":       "hr@hcga.com",
	"contactPhone":       "(021) 1234-5678",
	"contactAddress":     "Jl. HR. Rasuna Said No. 123, Jakarta Selatan 12940",
	"welcomeMessage":     "Selamat Datang di HCGA Dashboard",
	"welcomeDescription": "Kelola kebutuhan HR Anda dengan mudah dan efisien",
	"operatingHours":     "Senin - Jumat: 08:00 - 17:00, Sabtu: 08:00 - 12:00",
}

type SettingsUsecase struct {
	repo repository.SettingRepository
}

func NewSettingsUsecase(repo repository.SettingRepository) *SettingsUsecase {
	return &SettingsUsecase{repo: repo}
}

// GetAll mengembalikan override yang tersimpan, terbaru dulu.
func (u *SettingsUsecase) GetAll() ([]model.WebSetting, error) {
	return u.repo.GetAll()
}

// SaveAll meng-upsert seluruh map dalam satu transaksi. Semua nilai
// dipaksa jadi string, mengikuti kolom value bertipe teks.
func (u *SettingsUsecase) SaveAll(settings map[string]interface{}) error {
	coerced := make(map[string]string, len(settings))
	for key, value := range settings {
		coerced[key] = fmt.Sprint(value)
	}
	return u.repo.UpsertMany(coerced)
}

// Effective menggabungkan default dengan override tersimpan;
// nilai tersimpan selalu menang.
func (u *SettingsUsecase) Effective() (map[string]string, error) {
	overrides, err := u.repo.GetAll()
	if err != nil {
		return nil, err
	}

	effective := make(map[string]string, len(DefaultSettings)+len(overrides))
	for key, value := range DefaultSettings {
		effective[key] = value
	}
	for _, s := range overrides {
		effective[s.Key] = s.Value
	}
	return effective, nil
}
