package handler

import (
	"hcga-dashboard-backend/internal/repository"
	"hcga-dashboard-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PengajuanCutiHandler struct {
	uc *usecase.PengajuanUsecase
}

func NewPengajuanCutiHandler(uc *usecase.PengajuanUsecase) *PengajuanCutiHandler {
	return &PengajuanCutiHandler{uc: uc}
}

func (h *PengajuanCutiHandler) GetAll(c *fiber.Ctx) error {
	filter := repository.PengajuanFilter{
		Search:     c.Query("search"),
		Departemen: c.Query("departemen"),
		Status:     c.Query("status"),
	}

	list, err := h.uc.ListCuti(filter)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(list)
}

func (h *PengajuanCutiHandler) Create(c *fiber.Ctx) error {
	var input usecase.CutiInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	pengajuan, err := h.uc.SubmitCuti(input)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Pengajuan cuti berhasil disimpan",
		"data":    pengajuan,
	})
}

type UpdateStatusRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

func (h *PengajuanCutiHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	if req.ID == 0 || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID dan status harus disertakan"})
	}

	pengajuan, err := h.uc.UpdateStatusCuti(req.ID, req.Status)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Status berhasil diperbarui",
		"data":    pengajuan,
	})
}
