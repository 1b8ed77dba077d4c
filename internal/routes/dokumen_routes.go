package routes

import (
	"hcga-dashboard-backend/internal/handler"
	"hcga-dashboard-backend/internal/middleware"
	"hcga-dashboard-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupDokumenRoutes(app *fiber.App, uc *usecase.DokumenUsecase) {
	hdl := handler.NewDokumenHandler(uc)

	api := app.Group("/api/dokumen")
	api.Get("/", hdl.GetAll)

	// Upload dan hapus dokumen hanya oleh admin
	api.Post("/", middleware.Auth, middleware.Role("admin"), hdl.Upload)
	api.Delete("/", middleware.Auth, middleware.Role("admin"), hdl.Delete)
}
