package handler

import (
	"hcga-dashboard-backend/internal/repository"
	"hcga-dashboard-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PengajuanTrainingHandler struct {
	uc *usecase.PengajuanUsecase
}

func NewPengajuanTrainingHandler(uc *usecase.PengajuanUsecase) *PengajuanTrainingHandler {
	return &PengajuanTrainingHandler{uc: uc}
}

func (h *PengajuanTrainingHandler) GetAll(c *fiber.Ctx) error {
	filter := repository.PengajuanFilter{
		Search:     c.Query("search"),
		Departemen: c.Query("departemen"),
		Status:     c.Query("status"),
	}

	list, err := h.uc.ListTraining(filter)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(list)
}

func (h *PengajuanTrainingHandler) Create(c *fiber.Ctx) error {
	var input usecase.TrainingInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	pengajuan, err := h.uc.SubmitTraining(input)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Pengajuan training berhasil disimpan",
		"data":    pengajuan,
	})
}

func (h *PengajuanTrainingHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	if req.ID == 0 || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID dan status harus disertakan"})
	}

	pengajuan, err := h.uc.UpdateStatusTraining(req.ID, req.Status)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Status berhasil diperbarui",
		"data":    pengajuan,
	})
}
