package usecase

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"hcga-dashboard-backend/internal/model"
	"hcga-dashboard-backend/internal/repository"
	"hcga-dashboard-backend/internal/storage"

	"gorm.io/gorm"
)

// DokumenUsecase mengurus pusat dokumen: simpan file ke storage,
// catat path-nya di tabel dokumen, dan hapus keduanya saat remove.
type DokumenUsecase struct {
	repo  repository.DokumenRepository
	files storage.FileStore
}

func NewDokumenUsecase(repo repository.DokumenRepository, files storage.FileStore) *DokumenUsecase {
	return &DokumenUsecase{repo: repo, files: files}
}

func (u *DokumenUsecase) Upload(nama, kategori, subFolder, fileName string, data []byte) (*model.Dokumen, error) {
	if len(data) == 0 || nama == "" || kategori == "" {
		return nil, NewValidationError("File, nama, dan kategori harus diisi")
	}

	// Prefix timestamp milidetik supaya dua upload dengan nama file
	// sama tetap dapat path berbeda
	timestamp := time.Now().UnixMilli()
	fileName = filepath.Base(fileName)

	var path string
	if subFolder != "" {
		path = fmt.Sprintf("uploads/%s/%d_%s", subFolder, timestamp, fileName)
	} else {
		path = fmt.Sprintf("uploads/%d_%s", timestamp, fileName)
	}

	if err := u.files.Save(path, data); err != nil {
		return nil, err
	}

	dokumen := model.Dokumen{
		Nama:      nama,
		Kategori:  kategori,
		SubFolder: subFolder,
		FilePath:  path,
	}
	if err := u.repo.Create(&dokumen); err != nil {
		return nil, err
	}
	return &dokumen, nil
}

func (u *DokumenUsecase) List(search, kategori string) ([]model.Dokumen, error) {
	return u.repo.GetAll(search, kategori)
}

// Remove menghapus file dulu baru baris katalognya, supaya tidak ada
// file yatim di folder uploads. Kalau hapus file gagal, baris dokumen
// dibiarkan supaya masih bisa dicoba ulang.
func (u *DokumenUsecase) Remove(id uint) error {
	dokumen, err := u.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := u.files.Remove(dokumen.FilePath); err != nil {
		return err
	}
	return u.repo.Delete(id)
}
