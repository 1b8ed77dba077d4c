package routes

import (
	"hcga-dashboard-backend/internal/handler"
	"hcga-dashboard-backend/internal/middleware"
	"hcga-dashboard-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupKaryawanRoutes(app *fiber.App, userRepo repository.UserRepository) {
	hdl := handler.NewKaryawanHandler(userRepo)

	// Direktori karyawan bisa dilihat semua user yang login,
	// perubahan data hanya oleh admin
	api := app.Group("/api/data-karyawan", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Post("/", middleware.Role("admin"), hdl.Create)
	api.Put("/", middleware.Role("admin"), hdl.Update)
	api.Delete("/", middleware.Role("admin"), hdl.Delete)
}
