package model

import "gorm.io/gorm"

// PengajuanCuti menyimpan snapshot data pemohon saat submit.
// Sengaja tidak pakai foreign key ke users: kalau data karyawan
// berubah belakangan, isi pengajuan lama tetap seperti saat diajukan.
type PengajuanCuti struct {
	gorm.Model
	Nama           string `json:"nama"`
	NIK            string `json:"nik" gorm:"column:nik"`
	Jabatan        string `json:"jabatan"`
	Departemen     string `json:"departemen"`
	Site           string `json:"site"`
	POH            string `json:"poh" gorm:"column:poh"`
	StatusKaryawan string `json:"statusKaryawan"`
	NoKtp          string `json:"noKtp"`
	NoTelp         string `json:"noTelp"`

	JenisPengajuanCuti string `json:"jenisPengajuanCuti"` // Cuti Periodik, Cuti Tahunan, Cuti Emergency, Dinas Luar, Ijin PP
	TanggalCuti        string `json:"tanggalCuti"`        // Format YYYY-MM-DD
	TanggalMulaiCuti   string `json:"tanggalMulaiCuti"`
	TanggalAkhirCuti   string `json:"tanggalAkhirCuti"`

	BerangkatDari          string `json:"berangkatDari"`
	Tujuan                 string `json:"tujuan"`
	RuteCuti               string `json:"ruteCuti"`
	SisaCuti               *int   `json:"sisaCuti"`
	SisaCutiTahunan        *int   `json:"sisaCutiTahunan"`
	CutiPeriodikBerikutnya string `json:"cutiPeriodikBerikutnya"`
	DokumenPendukung       string `json:"dokumenPendukung"` // Path file di folder uploads

	Status string `json:"status" gorm:"default:pending"`
}

type PengajuanTraining struct {
	gorm.Model
	Nama           string `json:"nama"`
	NIK            string `json:"nik" gorm:"column:nik"`
	Jabatan        string `json:"jabatan"`
	Departemen     string `json:"departemen"`
	Site           string `json:"site"`
	POH            string `json:"poh" gorm:"column:poh"`
	StatusKaryawan string `json:"statusKaryawan"`
	NoKtp          string `json:"noKtp"`
	NoTelp         string `json:"noTelp"`

	JenisTraining    string `json:"jenisTraining"` // Mandatory, Pengembangan, Perpanjangan Sertifikasi
	TanggalPelatihan string `json:"tanggalPelatihan"`
	CatatanTambahan  string `json:"catatanTambahan"`

	DokumenIkatanDinas string `json:"dokumenIkatanDinas"` // Surat Pernyataan Ikatan Dinas
	DokumenValidasi    string `json:"dokumenValidasi"`

	Status string `json:"status" gorm:"default:pending"`
}
