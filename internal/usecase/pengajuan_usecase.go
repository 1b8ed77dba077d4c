package usecase

import (
	"errors"
	"fmt"
	"time"

	"hcga-dashboard-backend/internal/model"
	"hcga-dashboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Status pengajuan. Cuti memakai lima status, training hanya tiga.
const (
	StatusPending    = "pending"
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

var (
	legalStatusCuti     = []string{StatusPending, StatusApproved, StatusRejected, StatusInProgress, StatusCompleted}
	legalStatusTraining = []string{StatusPending, StatusApproved, StatusRejected}
)

// Transisi status sengaja tidak dibatasi berdasarkan status sebelumnya:
// admin boleh memindah pengajuan ke status apa pun yang valid, termasuk
// mengembalikan completed ke pending kalau salah klik.
func isLegalStatus(legal []string, status string) bool {
	for _, s := range legal {
		if s == status {
			return true
		}
	}
	return false
}

type CutiInput struct {
	Nama           string `json:"nama" validate:"required"`
	NIK            string `json:"nik" validate:"required"`
	Jabatan        string `json:"jabatan" validate:"required"`
	Departemen     string `json:"departemen" validate:"required"`
	Site           string `json:"site" validate:"required"`
	POH            string `json:"poh" validate:"required"`
	StatusKaryawan string `json:"statusKaryawan" validate:"required"`
	NoKtp          string `json:"noKtp" validate:"required"`
	NoTelp         string `json:"noTelp" validate:"required"`

	JenisPengajuanCuti string `json:"jenisPengajuanCuti" validate:"required"`
	TanggalCuti        string `json:"tanggalCuti" validate:"required"`
	TanggalMulaiCuti   string `json:"tanggalMulaiCuti" validate:"required"`
	TanggalAkhirCuti   string `json:"tanggalAkhirCuti" validate:"required"`

	BerangkatDari          string `json:"berangkatDari"`
	Tujuan                 string `json:"tujuan"`
	RuteCuti               string `json:"ruteCuti"`
	SisaCuti               *int   `json:"sisaCuti"`
	SisaCutiTahunan        *int   `json:"sisaCutiTahunan"`
	CutiPeriodikBerikutnya string `json:"cutiPeriodikBerikutnya"`
	DokumenPendukung       string `json:"dokumenPendukung"` // Path hasil upload di pusat dokumen
}

type TrainingInput struct {
	Nama           string `json:"nama" validate:"required"`
	NIK            string `json:"nik" validate:"required"`
	Jabatan        string `json:"jabatan" validate:"required"`
	Departemen     string `json:"departemen" validate:"required"`
	Site           string `json:"site" validate:"required"`
	POH            string `json:"poh" validate:"required"`
	StatusKaryawan string `json:"statusKaryawan" validate:"required"`
	NoKtp          string `json:"noKtp" validate:"required"`
	NoTelp         string `json:"noTelp" validate:"required"`

	JenisTraining    string `json:"jenisTraining" validate:"required"`
	TanggalPelatihan string `json:"tanggalPelatihan" validate:"required"`
	CatatanTambahan  string `json:"catatanTambahan"`

	DokumenIkatanDinas string `json:"dokumenIkatanDinas"`
	DokumenValidasi    string `json:"dokumenValidasi"`
}

// PengajuanUsecase mengatur lifecycle pengajuan cuti dan training:
// validasi payload, status awal pending, dan perubahan status.
type PengajuanUsecase struct {
	cutiRepo     repository.PengajuanCutiRepository
	trainingRepo repository.PengajuanTrainingRepository
	validate     *validator.Validate
}

func NewPengajuanUsecase(cutiRepo repository.PengajuanCutiRepository, trainingRepo repository.PengajuanTrainingRepository) *PengajuanUsecase {
	return &PengajuanUsecase{
		cutiRepo:     cutiRepo,
		trainingRepo: trainingRepo,
		validate:     validator.New(),
	}
}

// parseTanggal menormalkan input tanggal ke format YYYY-MM-DD.
func parseTanggal(field, value string) (string, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return "", NewValidationError(fmt.Sprintf("Format tanggal %s tidak valid", field))
	}
	return t.Format("2006-01-02"), nil
}

func validationMessage(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return NewValidationError(fmt.Sprintf("Field %s wajib diisi", errs[0].Field()))
	}
	return NewValidationError("Data pengajuan tidak valid")
}

func (u *PengajuanUsecase) SubmitCuti(input CutiInput) (*model.PengajuanCuti, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, validationMessage(err)
	}

	tanggalCuti, err := parseTanggal("tanggalCuti", input.TanggalCuti)
	if err != nil {
		return nil, err
	}
	tanggalMulai, err := parseTanggal("tanggalMulaiCuti", input.TanggalMulaiCuti)
	if err != nil {
		return nil, err
	}
	tanggalAkhir, err := parseTanggal("tanggalAkhirCuti", input.TanggalAkhirCuti)
	if err != nil {
		return nil, err
	}

	// Tanggal mulai > tanggal akhir sengaja tidak ditolak, mengikuti
	// perilaku form lama. Menunggu keputusan HR sebelum diperketat.
	periodikBerikutnya := ""
	if input.CutiPeriodikBerikutnya != "" {
		periodikBerikutnya, err = parseTanggal("cutiPeriodikBerikutnya", input.CutiPeriodikBerikutnya)
		if err != nil {
			return nil, err
		}
	}

	pengajuan := model.PengajuanCuti{
		Nama:           input.Nama,
		NIK:            input.NIK,
		Jabatan:        input.Jabatan,
		Departemen:     input.Departemen,
		Site:           input.Site,
		POH:            input.POH,
		StatusKaryawan: input.StatusKaryawan,
		NoKtp:          input.NoKtp,
		NoTelp:         input.NoTelp,

		JenisPengajuanCuti: input.JenisPengajuanCuti,
		TanggalCuti:        tanggalCuti,
		TanggalMulaiCuti:   tanggalMulai,
		TanggalAkhirCuti:   tanggalAkhir,

		BerangkatDari:          input.BerangkatDari,
		Tujuan:                 input.Tujuan,
		RuteCuti:               input.RuteCuti,
		SisaCuti:               input.SisaCuti,
		SisaCutiTahunan:        input.SisaCutiTahunan,
		CutiPeriodikBerikutnya: periodikBerikutnya,
		DokumenPendukung:       input.DokumenPendukung,

		Status: StatusPending,
	}

	if err := u.cutiRepo.Create(&pengajuan); err != nil {
		return nil, err
	}
	return &pengajuan, nil
}

func (u *PengajuanUsecase) ListCuti(filter repository.PengajuanFilter) ([]model.PengajuanCuti, error) {
	return u.cutiRepo.GetAll(filter)
}

func (u *PengajuanUsecase) UpdateStatusCuti(id uint, status string) (*model.PengajuanCuti, error) {
	if !isLegalStatus(legalStatusCuti, status) {
		return nil, NewValidationError("Status tidak valid")
	}

	pengajuan, err := u.cutiRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	pengajuan.Status = status
	if err := u.cutiRepo.Update(pengajuan); err != nil {
		return nil, err
	}
	return pengajuan, nil
}

func (u *PengajuanUsecase) SubmitTraining(input TrainingInput) (*model.PengajuanTraining, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, validationMessage(err)
	}

	tanggalPelatihan, err := parseTanggal("tanggalPelatihan", input.TanggalPelatihan)
	if err != nil {
		return nil, err
	}

	pengajuan := model.PengajuanTraining{
		Nama:           input.Nama,
		NIK:            input.NIK,
		Jabatan:        input.Jabatan,
		Departemen:     input.Departemen,
		Site:           input.Site,
		POH:            input.POH,
		StatusKaryawan: input.StatusKaryawan,
		NoKtp:          input.NoKtp,
		NoTelp:         input.NoTelp,

		JenisTraining:    input.JenisTraining,
		TanggalPelatihan: tanggalPelatihan,
		CatatanTambahan:  input.CatatanTambahan,

		DokumenIkatanDinas: input.DokumenIkatanDinas,
		DokumenValidasi:    input.DokumenValidasi,

		Status: StatusPending,
	}

	if err := u.trainingRepo.Create(&pengajuan); err != nil {
		return nil, err
	}
	return &pengajuan, nil
}

func (u *PengajuanUsecase) ListTraining(filter repository.PengajuanFilter) ([]model.PengajuanTraining, error) {
	return u.trainingRepo.GetAll(filter)
}

func (u *PengajuanUsecase) UpdateStatusTraining(id uint, status string) (*model.PengajuanTraining, error) {
	if !isLegalStatus(legalStatusTraining, status) {
		return nil, NewValidationError("Status tidak valid")
	}

	pengajuan, err := u.trainingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	pengajuan.Status = status
	if err := u.trainingRepo.Update(pengajuan); err != nil {
		return nil, err
	}
	return pengajuan, nil
}
