package handler

import (
	"errors"
	"strconv"

	"hcga-dashboard-backend/internal/model"
	"hcga-dashboard-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type KaryawanHandler struct {
	repo repository.UserRepository
}

func NewKaryawanHandler(repo repository.UserRepository) *KaryawanHandler {
	return &KaryawanHandler{repo: repo}
}

func (h *KaryawanHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll(c.Query("search"), c.Query("departemen"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(list)
}

type KaryawanInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	NIK            string `json:"nik"`
	Jabatan        string `json:"jabatan"`
	Departemen     string `json:"departemen"`
	Site           string `json:"site"`
	POH            string `json:"poh"`
	StatusKaryawan string `json:"statusKaryawan"`
	NoKtp          string `json:"noKtp"`
	NoTelp         string `json:"noTelp"`
}

func (h *KaryawanHandler) Create(c *fiber.Ctx) error {
	var input KaryawanInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	if input.Name == "" || input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama dan email harus diisi"})
	}

	user := model.User{
		Name:           input.Name,
		Email:          input.Email,
		Role:           "user", // Role admin hanya lewat seeder atau edit manual
		NIK:            input.NIK,
		Jabatan:        input.Jabatan,
		Departemen:     input.Departemen,
		Site:           input.Site,
		POH:            input.POH,
		StatusKaryawan: input.StatusKaryawan,
		NoKtp:          input.NoKtp,
		NoTelp:         input.NoTelp,
	}

	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return jsonError(c, err)
		}
		user.Password = string(hashed)
	}

	if err := h.repo.Create(&user); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Data karyawan berhasil ditambahkan",
		"data":    user,
	})
}

type KaryawanUpdateRequest struct {
	ID uint `json:"id"`
	KaryawanInput
}

func (h *KaryawanHandler) Update(c *fiber.Ctx) error {
	var req KaryawanUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	user, err := h.repo.GetByID(req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
		}
		return jsonError(c, err)
	}

	// Hanya field yang dikirim (non-kosong) yang diperbarui
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.NIK != "" {
		user.NIK = req.NIK
	}
	if req.Jabatan != "" {
		user.Jabatan = req.Jabatan
	}
	if req.Departemen != "" {
		user.Departemen = req.Departemen
	}
	if req.Site != "" {
		user.Site = req.Site
	}
	if req.POH != "" {
		user.POH = req.POH
	}
	if req.StatusKaryawan != "" {
		user.StatusKaryawan = req.StatusKaryawan
	}
	if req.NoKtp != "" {
		user.NoKtp = req.NoKtp
	}
	if req.NoTelp != "" {
		user.NoTelp = req.NoTelp
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return jsonError(c, err)
		}
		user.Password = string(hashed)
	}

	if err := h.repo.Update(user); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Data karyawan berhasil diperbarui",
		"data":    user,
	})
}

func (h *KaryawanHandler) Delete(c *fiber.Ctx) error {
	idStr := c.Query("id")
	if idStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID karyawan harus disertakan"})
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID karyawan tidak valid"})
	}

	if _, err := h.repo.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
		}
		return jsonError(c, err)
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Data karyawan berhasil dihapus"})
}
