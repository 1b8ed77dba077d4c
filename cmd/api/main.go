package main

import (
	"fmt"

	"hcga-dashboard-backend/config"
	"hcga-dashboard-backend/internal/handler"
	"hcga-dashboard-backend/internal/mailer"
	"hcga-dashboard-backend/internal/repository"
	"hcga-dashboard-backend/internal/repository/memory"
	"hcga-dashboard-backend/internal/routes"
	"hcga-dashboard-backend/internal/storage"
	"hcga-dashboard-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	var (
		userRepo     repository.UserRepository
		cutiRepo     repository.PengajuanCutiRepository
		trainingRepo repository.PengajuanTrainingRepository
		dokumenRepo  repository.DokumenRepository
		kontakRepo   repository.KontakRepository
		settingRepo  repository.SettingRepository
		fileStore    storage.FileStore
	)

	// STORAGE_DRIVER=memory menjalankan server tanpa database, untuk
	// demo dan development frontend. Default: MySQL.
	if config.GetEnv("STORAGE_DRIVER", "mysql") == "memory" {
		fmt.Println("2. Mode memory aktif, data tidak dipersist.")
		userRepo = memory.NewUserRepository()
		cutiRepo = memory.NewPengajuanCutiRepository()
		trainingRepo = memory.NewPengajuanTrainingRepository()
		dokumenRepo = memory.NewDokumenRepository()
		kontakRepo = memory.NewKontakRepository()
		settingRepo = memory.NewSettingRepository()
		fileStore = storage.NewMemoryStore()
	} else {
		fmt.Println("2. Mencoba koneksi ke Database...")
		config.ConnectDB()
		fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")
		userRepo = repository.NewUserRepository(config.DB)
		cutiRepo = repository.NewPengajuanCutiRepository(config.DB)
		trainingRepo = repository.NewPengajuanTrainingRepository(config.DB)
		dokumenRepo = repository.NewDokumenRepository(config.DB)
		kontakRepo = repository.NewKontakRepository(config.DB)
		settingRepo = repository.NewSettingRepository(config.DB)
		fileStore = storage.NewDiskStore(".")
	}

	mail := mailer.New(
		config.GetEnv("SMTP_HOST", ""),
		config.GetEnvAsInt("SMTP_PORT", 587),
		config.GetEnv("SMTP_USER", ""),
		config.GetEnv("SMTP_PASS", ""),
		config.GetEnv("SMTP_FROM", "no-reply@hcga.com"),
		config.GetEnv("HR_EMAIL", ""),
	)

	pengajuanUC := usecase.NewPengajuanUsecase(cutiRepo, trainingRepo)
	dokumenUC := usecase.NewDokumenUsecase(dokumenRepo, fileStore)
	settingsUC := usecase.NewSettingsUsecase(settingRepo)
	dashboardHdl := handler.NewDashboardHandler(userRepo, cutiRepo, trainingRepo, dokumenRepo, kontakRepo)

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari frontend di domain/port lain
	app.Use(logger.New()) // Agar log request muncul di terminal

	// Serve Static Files (dokumen bisa dibuka via http://localhost:3000/uploads/...)
	app.Static("/uploads", "./uploads")

	routes.SetupAuthRoutes(app, userRepo)
	routes.SetupKaryawanRoutes(app, userRepo)
	routes.SetupPengajuanRoutes(app, pengajuanUC)
	routes.SetupDokumenRoutes(app, dokumenUC)
	routes.SetupKontakRoutes(app, kontakRepo, mail)
	routes.SetupAdminRoutes(app, settingsUC, dashboardHdl)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
