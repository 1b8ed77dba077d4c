package model

import "gorm.io/gorm"

type Dokumen struct {
	gorm.Model
	Nama      string `json:"nama"`
	Kategori  string `json:"kategori"` // SOP, IK, Internal Memo, Form Template
	SubFolder string `json:"subFolder"`
	FilePath  string `json:"filePath"` // Path relatif: uploads/[subFolder/]timestamp_nama
}
