package handler

import (
	"hcga-dashboard-backend/internal/repository"
	"hcga-dashboard-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	userRepo     repository.UserRepository
	cutiRepo     repository.PengajuanCutiRepository
	trainingRepo repository.PengajuanTrainingRepository
	dokumenRepo  repository.DokumenRepository
	kontakRepo   repository.KontakRepository
}

func NewDashboardHandler(
	userRepo repository.UserRepository,
	cutiRepo repository.PengajuanCutiRepository,
	trainingRepo repository.PengajuanTrainingRepository,
	dokumenRepo repository.DokumenRepository,
	kontakRepo repository.KontakRepository,
) *DashboardHandler {
	return &DashboardHandler{
		userRepo:     userRepo,
		cutiRepo:     cutiRepo,
		trainingRepo: trainingRepo,
		dokumenRepo:  dokumenRepo,
		kontakRepo:   kontakRepo,
	}
}

// GetStats menyediakan angka ringkasan untuk halaman admin.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	totalKaryawan, err := h.userRepo.Count()
	if err != nil {
		return jsonError(c, err)
	}
	cutiPending, err := h.cutiRepo.CountByStatus(usecase.StatusPending)
	if err != nil {
		return jsonError(c, err)
	}
	trainingPending, err := h.trainingRepo.CountByStatus(usecase.StatusPending)
	if err != nil {
		return jsonError(c, err)
	}
	totalDokumen, err := h.dokumenRepo.Count()
	if err != nil {
		return jsonError(c, err)
	}
	pesanUnread, err := h.kontakRepo.CountByStatus("unread")
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil statistik",
		"data": fiber.Map{
			"total_karyawan":   totalKaryawan,
			"cuti_pending":     cutiPending,
			"training_pending": trainingPending,
			"total_dokumen":    totalDokumen,
			"pesan_unread":     pesanUnread,
		},
	})
}
