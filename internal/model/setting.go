package model

import "gorm.io/gorm"

// WebSetting adalah override per-key untuk pengaturan website.
// Konfigurasi efektif = default bawaan + override dari tabel ini.
type WebSetting struct {
	gorm.Model
	Key   string `json:"key" gorm:"unique;not null"`
	Value string `json:"value"`
}
