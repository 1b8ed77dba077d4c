package handler

import (
	"io"
	"strconv"

	"hcga-dashboard-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DokumenHandler struct {
	uc *usecase.DokumenUsecase
}

func NewDokumenHandler(uc *usecase.DokumenUsecase) *DokumenHandler {
	return &DokumenHandler{uc: uc}
}

func (h *DokumenHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("search"), c.Query("kategori"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(list)
}

func (h *DokumenHandler) Upload(c *fiber.Ctx) error {
	nama := c.FormValue("nama")
	kategori := c.FormValue("kategori")
	subFolder := c.FormValue("subFolder")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File, nama, dan kategori harus diisi"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return jsonError(c, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return jsonError(c, err)
	}

	dokumen, err := h.uc.Upload(nama, kategori, subFolder, fileHeader.Filename, data)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Dokumen berhasil diunggah",
		"data":    dokumen,
	})
}

func (h *DokumenHandler) Delete(c *fiber.Ctx) error {
	idStr := c.Query("id")
	if idStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID dokumen harus disertakan"})
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID dokumen tidak valid"})
	}

	if err := h.uc.Remove(uint(id)); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Dokumen berhasil dihapus"})
}
