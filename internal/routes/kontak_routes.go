package routes

import (
	"hcga-dashboard-backend/internal/handler"
	"hcga-dashboard-backend/internal/mailer"
	"hcga-dashboard-backend/internal/middleware"
	"hcga-dashboard-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupKontakRoutes(app *fiber.App, repo repository.KontakRepository, mail *mailer.Mailer) {
	hdl := handler.NewKontakHandler(repo, mail)

	api := app.Group("/api/kontak-hr")
	api.Post("/", hdl.Create)

	// Inbox pesan hanya untuk admin
	api.Get("/", middleware.Auth, middleware.Role("admin"), hdl.GetAll)
}
