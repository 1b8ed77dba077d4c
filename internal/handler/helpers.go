package handler

import (
	"errors"
	"log"

	"hcga-dashboard-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// jsonError memetakan error usecase ke status HTTP. Detail error
// internal hanya masuk log, client cuma dapat pesan generik.
func jsonError(c *fiber.Ctx, err error) error {
	if usecase.IsValidationError(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if errors.Is(err, usecase.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	log.Println("Server error:", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Terjadi kesalahan server"})
}
