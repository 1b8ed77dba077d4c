package handler

import (
	"hcga-dashboard-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	uc *usecase.SettingsUsecase
}

func NewSettingsHandler(uc *usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetAll mengembalikan baris override, dipakai form admin.
func (h *SettingsHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.uc.GetAll()
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(list)
}

// GetEffective mengembalikan default + override, dipakai halaman publik.
func (h *SettingsHandler) GetEffective(c *fiber.Ctx) error {
	effective, err := h.uc.Effective()
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(effective)
}

func (h *SettingsHandler) Save(c *fiber.Ctx) error {
	var settings map[string]interface{}
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	if err := h.uc.SaveAll(settings); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Pengaturan berhasil disimpan",
		"data":    settings,
	})
}
