package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"hcga-dashboard-backend/internal/handler"
	"hcga-dashboard-backend/internal/mailer"
	"hcga-dashboard-backend/internal/model"
	"hcga-dashboard-backend/internal/repository/memory"
	"hcga-dashboard-backend/internal/routes"
	"hcga-dashboard-backend/internal/storage"
	"hcga-dashboard-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// newTestApp merakit app lengkap dengan repository memory dan satu
// akun admin (admin@hcga.com / admin123).
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	userRepo := memory.NewUserRepository()
	cutiRepo := memory.NewPengajuanCutiRepository()
	trainingRepo := memory.NewPengajuanTrainingRepository()
	dokumenRepo := memory.NewDokumenRepository()
	kontakRepo := memory.NewKontakRepository()
	settingRepo := memory.NewSettingRepository()
	fileStore := storage.NewMemoryStore()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("gagal hash password: %v", err)
	}
	if err := userRepo.Create(&model.User{
		Name:     "Administrator HCGA",
		Email:    "admin@hcga.com",
		Password: string(hash),
		Role:     "admin",
	}); err != nil {
		t.Fatalf("gagal seed admin: %v", err)
	}

	pengajuanUC := usecase.NewPengajuanUsecase(cutiRepo, trainingRepo)
	dokumenUC := usecase.NewDokumenUsecase(dokumenRepo, fileStore)
	settingsUC := usecase.NewSettingsUsecase(settingRepo)
	dashboardHdl := handler.NewDashboardHandler(userRepo, cutiRepo, trainingRepo, dokumenRepo, kontakRepo)
	mail := mailer.New("", 0, "", "", "", "") // SMTP mati di test

	app := fiber.New()
	routes.SetupAuthRoutes(app, userRepo)
	routes.SetupKaryawanRoutes(app, userRepo)
	routes.SetupPengajuanRoutes(app, pengajuanUC)
	routes.SetupDokumenRoutes(app, dokumenUC)
	routes.SetupKontakRoutes(app, kontakRepo, mail)
	routes.SetupAdminRoutes(app, settingsUC, dashboardHdl)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("gagal marshal body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s %s gagal: %v", method, path, err)
	}

	raw, _ := io.ReadAll(resp.Body)
	var parsed map[string]interface{}
	json.Unmarshal(raw, &parsed)
	return resp, parsed
}

func loginAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, body := doJSON(t, app, "POST", "/api/login", "", map[string]string{
		"email":    "admin@hcga.com",
		"password": "admin123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login admin gagal, status %d: %v", resp.StatusCode, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login tidak mengembalikan token")
	}
	return token
}

func cutiPayload() map[string]interface{} {
	return map[string]interface{}{
		"nama":               "Budi Santoso",
		"nik":                "12345678",
		"jabatan":            "Operator",
		"departemen":         "Produksi",
		"site":               "Site GSM",
		"poh":                "Balikpapan",
		"statusKaryawan":     "Kontrak",
		"noKtp":              "6471000000000001",
		"noTelp":             "081234567890",
		"jenisPengajuanCuti": "Cuti Tahunan",
		"tanggalCuti":        "2024-05-28",
		"tanggalMulaiCuti":   "2024-06-01",
		"tanggalAkhirCuti":   "2024-06-05",
	}
}

func TestLoginTidakBocorkanAkun(t *testing.T) {
	app := newTestApp(t)

	// Password salah vs email tidak terdaftar harus identik,
	// supaya tidak bisa dipakai menebak email yang ada
	respSalah, bodySalah := doJSON(t, app, "POST", "/api/login", "", map[string]string{
		"email":    "admin@hcga.com",
		"password": "bukan-passwordnya",
	})
	respAsing, bodyAsing := doJSON(t, app, "POST", "/api/login", "", map[string]string{
		"email":    "tidak-ada@hcga.com",
		"password": "apapun",
	})

	if respSalah.StatusCode != http.StatusUnauthorized || respAsing.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d dan %d, dua-duanya harusnya 401", respSalah.StatusCode, respAsing.StatusCode)
	}
	if bodySalah["error"] != bodyAsing["error"] {
		t.Errorf("pesan error beda: %q vs %q", bodySalah["error"], bodyAsing["error"])
	}
}

func TestLoginBerhasilTanpaPasswordDiRespon(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/api/login", "", map[string]string{
		"email":    "admin@hcga.com",
		"password": "admin123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, harusnya 200", resp.StatusCode)
	}

	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("respon tidak berisi profil user: %v", body)
	}
	if user["role"] != "admin" {
		t.Errorf("role = %v, harusnya admin", user["role"])
	}
	if _, ada := user["password"]; ada {
		t.Error("hash password ikut terkirim di respon login")
	}
}

func TestPengajuanCutiEndToEnd(t *testing.T) {
	app := newTestApp(t)

	// Submit tanpa login, seperti form portal
	resp, body := doJSON(t, app, "POST", "/api/pengajuan-cuti", "", cutiPayload())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit gagal, status %d: %v", resp.StatusCode, body)
	}
	data := body["data"].(map[string]interface{})
	if data["status"] != "pending" {
		t.Errorf("status awal = %v, harusnya pending", data["status"])
	}
	id := data["ID"].(float64)

	// Update status tanpa token harus ditolak
	resp, _ = doJSON(t, app, "PUT", "/api/pengajuan-cuti/update-status", "", map[string]interface{}{
		"id": id, "status": "approved",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("update tanpa token status = %d, harusnya 401", resp.StatusCode)
	}

	token := loginAdmin(t, app)

	// Status di luar enum ditolak
	resp, _ = doJSON(t, app, "PUT", "/api/pengajuan-cuti/update-status", token, map[string]interface{}{
		"id": id, "status": "dibatalkan",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status tidak valid = %d, harusnya 400", resp.StatusCode)
	}

	// ID tidak ada
	resp, _ = doJSON(t, app, "PUT", "/api/pengajuan-cuti/update-status", token, map[string]interface{}{
		"id": 999, "status": "approved",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("id tidak ada = %d, harusnya 404", resp.StatusCode)
	}

	// Approve beneran
	resp, body = doJSON(t, app, "PUT", "/api/pengajuan-cuti/update-status", token, map[string]interface{}{
		"id": id, "status": "approved",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("approve gagal, status %d: %v", resp.StatusCode, body)
	}

	// List memuat status baru
	resp, _ = doJSON(t, app, "GET", "/api/pengajuan-cuti", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list gagal, status %d", resp.StatusCode)
	}
}

func TestPengajuanCutiFieldKurang(t *testing.T) {
	app := newTestApp(t)

	payload := cutiPayload()
	delete(payload, "nik")

	resp, body := doJSON(t, app, "POST", "/api/pengajuan-cuti", "", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("payload tanpa nik status = %d, harusnya 400: %v", resp.StatusCode, body)
	}
}

func TestPengajuanTrainingStatusSempit(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/api/pengajuan-training", "", map[string]interface{}{
		"nama":             "Budi Santoso",
		"nik":              "12345678",
		"jabatan":          "Operator",
		"departemen":       "Produksi",
		"site":             "Site GSM",
		"poh":              "Balikpapan",
		"statusKaryawan":   "Kontrak",
		"noKtp":            "6471000000000001",
		"noTelp":           "081234567890",
		"jenisTraining":    "Mandatory",
		"tanggalPelatihan": "2024-07-10",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit training gagal, status %d: %v", resp.StatusCode, body)
	}
	id := body["data"].(map[string]interface{})["ID"].(float64)

	token := loginAdmin(t, app)

	// in_progress hanya milik cuti
	resp, _ = doJSON(t, app, "PUT", "/api/pengajuan-training/update-status", token, map[string]interface{}{
		"id": id, "status": "in_progress",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("in_progress untuk training = %d, harusnya 400", resp.StatusCode)
	}
}

func uploadDokumen(t *testing.T, app *fiber.App, token, nama, kategori, subFolder, fileName string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("nama", nama)
	w.WriteField("kategori", kategori)
	w.WriteField("subFolder", subFolder)
	fw, err := w.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("gagal membuat form file: %v", err)
	}
	fw.Write([]byte("isi dokumen"))
	w.Close()

	req := httptest.NewRequest("POST", "/api/dokumen", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("upload gagal: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var parsed map[string]interface{}
	json.Unmarshal(raw, &parsed)
	return resp, parsed
}

func TestDokumenUploadDanHapus(t *testing.T) {
	app := newTestApp(t)
	token := loginAdmin(t, app)

	// Upload tanpa token ditolak
	resp, _ := uploadDokumen(t, app, "", "Kebijakan Cuti", "SOP", "2024", "policy.pdf")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("upload tanpa token = %d, harusnya 401", resp.StatusCode)
	}

	resp, body := uploadDokumen(t, app, token, "Kebijakan Cuti", "SOP", "2024", "policy.pdf")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload gagal, status %d: %v", resp.StatusCode, body)
	}
	data := body["data"].(map[string]interface{})
	id := data["ID"].(float64)

	resp, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/dokumen?id=%d", int(id)), token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("hapus dokumen gagal, status %d", resp.StatusCode)
	}

	// Hapus lagi harus 404
	resp, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/dokumen?id=%d", int(id)), token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("hapus dokumen yang sudah tidak ada = %d, harusnya 404", resp.StatusCode)
	}
}

func TestSettingsPublikDanAdmin(t *testing.T) {
	app := newTestApp(t)

	// Endpoint publik mengembalikan default saat belum ada override
	resp, _ := doJSON(t, app, "GET", "/api/settings", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get settings publik gagal, status %d", resp.StatusCode)
	}

	// Simpan tanpa token ditolak
	resp, _ = doJSON(t, app, "POST", "/api/admin/settings", "", map[string]interface{}{"siteTitle": "X"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("simpan settings tanpa token = %d, harusnya 401", resp.StatusCode)
	}

	token := loginAdmin(t, app)
	resp, _ = doJSON(t, app, "POST", "/api/admin/settings", token, map[string]interface{}{"siteTitle": "X"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("simpan settings gagal, status %d", resp.StatusCode)
	}

	// Override terbaca di endpoint publik
	req := httptest.NewRequest("GET", "/api/settings", nil)
	respEff, err := app.Test(req)
	if err != nil {
		t.Fatalf("get settings gagal: %v", err)
	}
	raw, _ := io.ReadAll(respEff.Body)
	var effective map[string]string
	if err := json.Unmarshal(raw, &effective); err != nil {
		t.Fatalf("respon settings bukan map: %v", err)
	}
	if effective["siteTitle"] != "X" {
		t.Errorf("siteTitle efektif = %q, harusnya %q", effective["siteTitle"], "X")
	}
}

func TestKontakHR(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/api/kontak-hr", "", map[string]string{
		"nama":   "Budi Santoso",
		"email":  "budi@hcga.com",
		"subjek": "Pertanyaan BPJS",
		"pesan":  "Kapan kartu BPJS saya terbit?",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("kirim pesan gagal, status %d: %v", resp.StatusCode, body)
	}
	if body["data"].(map[string]interface{})["status"] != "unread" {
		t.Errorf("status pesan baru = %v, harusnya unread", body["data"].(map[string]interface{})["status"])
	}

	// Field kosong ditolak
	resp, _ = doJSON(t, app, "POST", "/api/kontak-hr", "", map[string]string{"nama": "Budi"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("pesan tidak lengkap = %d, harusnya 400", resp.StatusCode)
	}

	// Inbox hanya untuk admin
	resp, _ = doJSON(t, app, "GET", "/api/kontak-hr", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("baca inbox tanpa token = %d, harusnya 401", resp.StatusCode)
	}

	token := loginAdmin(t, app)
	resp, _ = doJSON(t, app, "GET", "/api/kontak-hr", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("baca inbox dengan token admin = %d, harusnya 200", resp.StatusCode)
	}
}

func TestDashboardStats(t *testing.T) {
	app := newTestApp(t)
	token := loginAdmin(t, app)

	if resp, _ := doJSON(t, app, "POST", "/api/pengajuan-cuti", "", cutiPayload()); resp.StatusCode != http.StatusOK {
		t.Fatalf("submit cuti gagal, status %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, "GET", "/api/admin/dashboard", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard gagal, status %d: %v", resp.StatusCode, body)
	}
	data := body["data"].(map[string]interface{})
	if data["cuti_pending"].(float64) != 1 {
		t.Errorf("cuti_pending = %v, harusnya 1", data["cuti_pending"])
	}
	if data["total_karyawan"].(float64) != 1 {
		t.Errorf("total_karyawan = %v, harusnya 1", data["total_karyawan"])
	}
}

func TestDataKaryawanAksesDanCRUD(t *testing.T) {
	app := newTestApp(t)

	// Direktori butuh login
	resp, _ := doJSON(t, app, "GET", "/api/data-karyawan", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("direktori tanpa token = %d, harusnya 401", resp.StatusCode)
	}

	token := loginAdmin(t, app)

	resp, body := doJSON(t, app, "POST", "/api/data-karyawan", token, map[string]string{
		"name":       "Siti Aminah",
		"email":      "siti@hcga.com",
		"nik":        "00000003",
		"jabatan":    "Staff",
		"departemen": "HCGA",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("tambah karyawan gagal, status %d: %v", resp.StatusCode, body)
	}
	id := body["data"].(map[string]interface{})["ID"].(float64)

	resp, body = doJSON(t, app, "PUT", "/api/data-karyawan", token, map[string]interface{}{
		"id":      id,
		"jabatan": "Supervisor",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update karyawan gagal, status %d: %v", resp.StatusCode, body)
	}
	if body["data"].(map[string]interface{})["jabatan"] != "Supervisor" {
		t.Errorf("jabatan = %v, harusnya Supervisor", body["data"].(map[string]interface{})["jabatan"])
	}
	// Field lain tidak tersentuh
	if body["data"].(map[string]interface{})["name"] != "Siti Aminah" {
		t.Errorf("name berubah: %v", body["data"].(map[string]interface{})["name"])
	}

	resp, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/data-karyawan?id=%d", int(id)), token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("hapus karyawan gagal, status %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/data-karyawan?id=%d", int(id)), token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("hapus karyawan yang sudah tidak ada = %d, harusnya 404", resp.StatusCode)
	}
}
