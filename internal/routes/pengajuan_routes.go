package routes

import (
	"hcga-dashboard-backend/internal/handler"
	"hcga-dashboard-backend/internal/middleware"
	"hcga-dashboard-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupPengajuanRoutes(app *fiber.App, uc *usecase.PengajuanUsecase) {
	cutiHdl := handler.NewPengajuanCutiHandler(uc)
	trainingHdl := handler.NewPengajuanTrainingHandler(uc)

	// Form pengajuan bisa diisi tanpa login, mengikuti portal lama.
	// Perubahan status hanya dari console admin.
	cuti := app.Group("/api/pengajuan-cuti")
	cuti.Get("/", cutiHdl.GetAll)
	cuti.Post("/", cutiHdl.Create)
	cuti.Put("/update-status", middleware.Auth, middleware.Role("admin"), cutiHdl.UpdateStatus)

	training := app.Group("/api/pengajuan-training")
	training.Get("/", trainingHdl.GetAll)
	training.Post("/", trainingHdl.Create)
	training.Put("/update-status", middleware.Auth, middleware.Role("admin"), trainingHdl.UpdateStatus)
}
