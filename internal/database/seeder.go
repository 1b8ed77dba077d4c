package database

import (
	"log"

	"hcga-dashboard-backend/config"
	"hcga-dashboard-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed Akun Admin Pertama
	password := config.GetEnv("ADMIN_PASSWORD", "admin123")
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	admin := model.User{
		Name:           "Administrator HCGA",
		Email:          config.GetEnv("ADMIN_EMAIL", "admin@hcga.com"),
		Password:       string(hashedPassword),
		Role:           "admin",
		NIK:            "00000001",
		Jabatan:        "HR Administrator",
		Departemen:     "HCGA",
		Site:           "Head Office",
		POH:            "Jakarta",
		StatusKaryawan: "Tetap",
	}

	result := db.FirstOrCreate(&admin, model.User{Email: admin.Email})
	if result.Error == nil {
		// Paksa update password agar selalu sinkron dengan env ADMIN_PASSWORD
		db.Model(&admin).Update("password", string(hashedPassword))
		log.Println("Seeding Admin berhasil!")
	}

	// 2. Seed contoh karyawan untuk demo direktori
	contoh := model.User{
		Name:           "Budi Santoso",
		Email:          "budi.santoso@hcga.com",
		Role:           "user",
		NIK:            "00000002",
		Jabatan:        "Operator",
		Departemen:     "Produksi",
		Site:           "Site GSM",
		POH:            "Balikpapan",
		StatusKaryawan: "Kontrak",
	}
	db.FirstOrCreate(&contoh, model.User{Email: contoh.Email})
}
