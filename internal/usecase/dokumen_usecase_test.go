package usecase_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"hcga-dashboard-backend/internal/repository/memory"
	"hcga-dashboard-backend/internal/storage"
	"hcga-dashboard-backend/internal/usecase"
)

func newDokumenUsecase() (*usecase.DokumenUsecase, *storage.MemoryStore) {
	files := storage.NewMemoryStore()
	return usecase.NewDokumenUsecase(memory.NewDokumenRepository(), files), files
}

func TestUploadDokumen(t *testing.T) {
	uc, files := newDokumenUsecase()

	dokumen, err := uc.Upload("Kebijakan Cuti", "SOP", "2024", "policy.pdf", []byte("isi pdf"))
	if err != nil {
		t.Fatalf("Upload gagal: %v", err)
	}

	pattern := regexp.MustCompile(`^uploads/2024/\d+_policy\.pdf$`)
	if !pattern.MatchString(dokumen.FilePath) {
		t.Errorf("path %q tidak sesuai pola uploads/2024/<timestamp>_policy.pdf", dokumen.FilePath)
	}

	data, ok := files.Get(dokumen.FilePath)
	if !ok {
		t.Fatal("file tidak tersimpan di storage")
	}
	if string(data) != "isi pdf" {
		t.Errorf("isi file = %q, harusnya %q", data, "isi pdf")
	}
}

func TestUploadDokumenTanpaSubFolder(t *testing.T) {
	uc, _ := newDokumenUsecase()

	dokumen, err := uc.Upload("Form Lembur", "Form Template", "", "lembur.xlsx", []byte("x"))
	if err != nil {
		t.Fatalf("Upload gagal: %v", err)
	}

	pattern := regexp.MustCompile(`^uploads/\d+_lembur\.xlsx$`)
	if !pattern.MatchString(dokumen.FilePath) {
		t.Errorf("path %q tidak sesuai pola uploads/<timestamp>_lembur.xlsx", dokumen.FilePath)
	}
}

func TestUploadNamaFileSamaPathBeda(t *testing.T) {
	uc, _ := newDokumenUsecase()

	first, err := uc.Upload("Kebijakan Cuti", "SOP", "", "policy.pdf", []byte("a"))
	if err != nil {
		t.Fatalf("Upload pertama gagal: %v", err)
	}

	// Prefix timestamp milidetik, jadi beri jeda supaya pasti beda
	time.Sleep(2 * time.Millisecond)

	second, err := uc.Upload("Kebijakan Cuti Revisi", "SOP", "", "policy.pdf", []byte("b"))
	if err != nil {
		t.Fatalf("Upload kedua gagal: %v", err)
	}

	if first.FilePath == second.FilePath {
		t.Errorf("dua upload dengan nama file sama dapat path sama: %q", first.FilePath)
	}
}

func TestUploadValidasiInput(t *testing.T) {
	uc, _ := newDokumenUsecase()

	cases := []struct {
		label    string
		nama     string
		kategori string
		data     []byte
	}{
		{"tanpa file", "Kebijakan", "SOP", nil},
		{"tanpa nama", "", "SOP", []byte("x")},
		{"tanpa kategori", "Kebijakan", "", []byte("x")},
	}

	for _, tc := range cases {
		if _, err := uc.Upload(tc.nama, tc.kategori, "", "f.pdf", tc.data); !usecase.IsValidationError(err) {
			t.Errorf("%s harusnya ValidationError, dapat %v", tc.label, err)
		}
	}
}

func TestRemoveDokumen(t *testing.T) {
	uc, files := newDokumenUsecase()

	dokumen, err := uc.Upload("Kebijakan Cuti", "SOP", "2024", "policy.pdf", []byte("isi"))
	if err != nil {
		t.Fatalf("Upload gagal: %v", err)
	}

	if err := uc.Remove(dokumen.ID); err != nil {
		t.Fatalf("Remove gagal: %v", err)
	}

	list, _ := uc.List("", "")
	if len(list) != 0 {
		t.Errorf("dokumen masih muncul di list setelah dihapus")
	}

	if _, ok := files.Get(dokumen.FilePath); ok {
		t.Error("file masih ada di storage setelah dokumen dihapus")
	}
}

func TestRemoveDokumenTidakDitemukan(t *testing.T) {
	uc, _ := newDokumenUsecase()

	if err := uc.Remove(42); !errors.Is(err, usecase.ErrNotFound) {
		t.Errorf("id tidak ada harusnya ErrNotFound, dapat %v", err)
	}
}

func TestListDokumenFilter(t *testing.T) {
	uc, _ := newDokumenUsecase()

	if _, err := uc.Upload("Kebijakan Cuti", "SOP", "2024", "a.pdf", []byte("a")); err != nil {
		t.Fatalf("Upload gagal: %v", err)
	}
	if _, err := uc.Upload("Memo Libur", "Internal Memo", "", "b.pdf", []byte("b")); err != nil {
		t.Fatalf("Upload gagal: %v", err)
	}

	list, _ := uc.List("memo", "")
	if len(list) != 1 || list[0].Nama != "Memo Libur" {
		t.Errorf("filter search salah, dapat %d hasil", len(list))
	}

	list, _ = uc.List("", "SOP")
	if len(list) != 1 || list[0].Kategori != "SOP" {
		t.Errorf("filter kategori salah, dapat %d hasil", len(list))
	}
}
