package routes

import (
	"hcga-dashboard-backend/internal/handler"
	"hcga-dashboard-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, userRepo repository.UserRepository) {
	hdl := handler.NewAuthHandler(userRepo)

	app.Post("/api/login", hdl.Login)
}
