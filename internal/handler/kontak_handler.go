package handler

import (
	"hcga-dashboard-backend/internal/mailer"
	"hcga-dashboard-backend/internal/model"
	"hcga-dashboard-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type KontakHandler struct {
	repo repository.KontakRepository
	mail *mailer.Mailer
}

func NewKontakHandler(repo repository.KontakRepository, mail *mailer.Mailer) *KontakHandler {
	return &KontakHandler{repo: repo, mail: mail}
}

func (h *KontakHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(list)
}

type KontakInput struct {
	UserID *uint  `json:"userId"`
	Nama   string `json:"nama"`
	Email  string `json:"email"`
	Subjek string `json:"subjek"`
	Pesan  string `json:"pesan"`
}

func (h *KontakHandler) Create(c *fiber.Ctx) error {
	var input KontakInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	if input.Nama == "" || input.Email == "" || input.Subjek == "" || input.Pesan == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama, email, subjek, dan pesan harus diisi"})
	}

	kontak := model.KontakHR{
		UserID: input.UserID,
		Nama:   input.Nama,
		Email:  input.Email,
		Subjek: input.Subjek,
		Pesan:  input.Pesan,
		Status: "unread",
	}

	if err := h.repo.Create(&kontak); err != nil {
		return jsonError(c, err)
	}

	// Kirim notifikasi di background agar respon tidak menunggu SMTP
	go h.mail.SendKontakNotification(kontak.Nama, kontak.Email, kontak.Subjek, kontak.Pesan)

	return c.JSON(fiber.Map{
		"message": "Pesan berhasil dikirim",
		"data":    kontak,
	})
}
