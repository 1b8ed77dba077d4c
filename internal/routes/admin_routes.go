package routes

import (
	"hcga-dashboard-backend/internal/handler"
	"hcga-dashboard-backend/internal/middleware"
	"hcga-dashboard-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App, settingsUC *usecase.SettingsUsecase, dashboardHdl *handler.DashboardHandler) {
	settingsHdl := handler.NewSettingsHandler(settingsUC)

	// Pengaturan efektif (default + override) untuk halaman publik
	app.Get("/api/settings", settingsHdl.GetEffective)

	admin := app.Group("/api/admin", middleware.Auth, middleware.Role("admin"))
	admin.Get("/settings", settingsHdl.GetAll)
	admin.Post("/settings", settingsHdl.Save)
	admin.Get("/dashboard", dashboardHdl.GetStats)
}
