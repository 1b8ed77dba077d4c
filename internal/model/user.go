package model

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name           string `json:"name"`
	Email          string `json:"email" gorm:"unique;not null"`
	Password       string `json:"-"` // Hash bcrypt, jangan pernah dikirim ke client
	Role           string `json:"role" gorm:"default:user"` // "user" atau "admin"
	NIK            string `json:"nik" gorm:"column:nik"`
	Jabatan        string `json:"jabatan"`
	Departemen     string `json:"departemen"`
	Site           string `json:"site"`
	POH            string `json:"poh" gorm:"column:poh"`
	StatusKaryawan string `json:"statusKaryawan"` // Kontrak atau Tetap
	NoKtp          string `json:"noKtp"`
	NoTelp         string `json:"noTelp"`
}
