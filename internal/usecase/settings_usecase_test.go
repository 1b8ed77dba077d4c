package usecase_test

import (
	"testing"

	"hcga-dashboard-backend/internal/repository/memory"
	"hcga-dashboard-backend/internal/usecase"
)

func TestSettingsKosongPakaiDefault(t *testing.T) {
	uc := usecase.NewSettingsUsecase(memory.NewSettingRepository())

	list, err := uc.GetAll()
	if err != nil {
		t.Fatalf("GetAll gagal: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("tanpa override GetAll harusnya kosong, dapat %d baris", len(list))
	}

	effective, err := uc.Effective()
	if err != nil {
		t.Fatalf("Effective gagal: %v", err)
	}
	if effective["siteTitle"] != usecase.DefaultSettings["siteTitle"] {
		t.Errorf("siteTitle = %q, harusnya default %q", effective["siteTitle"], usecase.DefaultSettings["siteTitle"])
	}
}

func TestSettingsOverrideMenang(t *testing.T) {
	uc := usecase.NewSettingsUsecase(memory.NewSettingRepository())

	if err := uc.SaveAll(map[string]interface{}{"siteTitle": "X"}); err != nil {
		t.Fatalf("SaveAll gagal: %v", err)
	}

	list, err := uc.GetAll()
	if err != nil {
		t.Fatalf("GetAll gagal: %v", err)
	}
	if len(list) != 1 || list[0].Key != "siteTitle" || list[0].Value != "X" {
		t.Fatalf("override tidak tersimpan: %+v", list)
	}

	effective, err := uc.Effective()
	if err != nil {
		t.Fatalf("Effective gagal: %v", err)
	}
	if effective["siteTitle"] != "X" {
		t.Errorf("siteTitle efektif = %q, harusnya override %q", effective["siteTitle"], "X")
	}
	// Key lain tetap default
	if effective["contactEmail"] != usecase.DefaultSettings["contactEmail"] {
		t.Errorf("contactEmail ikut berubah: %q", effective["contactEmail"])
	}
}

func TestSettingsUpsertGantiNilaiLama(t *testing.T) {
	uc := usecase.NewSettingsUsecase(memory.NewSettingRepository())

	if err := uc.SaveAll(map[string]interface{}{"siteTitle": "Lama", "fontFamily": "Arial"}); err != nil {
		t.Fatalf("SaveAll gagal: %v", err)
	}
	if err := uc.SaveAll(map[string]interface{}{"siteTitle": "Baru"}); err != nil {
		t.Fatalf("SaveAll kedua gagal: %v", err)
	}

	list, _ := uc.GetAll()
	if len(list) != 2 {
		t.Fatalf("jumlah override = %d, harusnya 2 (upsert, bukan insert baru)", len(list))
	}

	effective, _ := uc.Effective()
	if effective["siteTitle"] != "Baru" {
		t.Errorf("siteTitle = %q, harusnya %q", effective["siteTitle"], "Baru")
	}
	if effective["fontFamily"] != "Arial" {
		t.Errorf("fontFamily = %q, harusnya tetap %q", effective["fontFamily"], "Arial")
	}
}

func TestSettingsNilaiNonStringDipaksaString(t *testing.T) {
	uc := usecase.NewSettingsUsecase(memory.NewSettingRepository())

	if err := uc.SaveAll(map[string]interface{}{"maxUploadMb": 25}); err != nil {
		t.Fatalf("SaveAll gagal: %v", err)
	}

	effective, _ := uc.Effective()
	if effective["maxUploadMb"] != "25" {
		t.Errorf("maxUploadMb = %q, harusnya %q", effective["maxUploadMb"], "25")
	}
}
