package model

import "gorm.io/gorm"

type KontakHR struct {
	gorm.Model
	UserID *uint  `json:"userId"` // Diisi kalau pengirim sedang login
	Nama   string `json:"nama"`
	Email  string `json:"email"`
	Subjek string `json:"subjek"`
	Pesan  string `json:"pesan"`
	Status string `json:"status" gorm:"default:unread"`
}
