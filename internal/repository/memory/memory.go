// Package memory berisi implementasi repository tanpa database,
// dipakai untuk mode demo (STORAGE_DRIVER=memory) dan unit test.
// Perilakunya mengikuti implementasi GORM: error not-found memakai
// gorm.ErrRecordNotFound dan urutan list created_at descending.
package memory

import (
	"strings"
	"sync"
	"time"

	"hcga-dashboard-backend/internal/model"
	"hcga-dashboard-backend/internal/repository"

	"gorm.io/gorm"
)

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

// --- Pengajuan Cuti ---

type pengajuanCutiMemory struct {
	mu     sync.Mutex
	nextID uint
	data   []model.PengajuanCuti
}

func NewPengajuanCutiRepository() repository.PengajuanCutiRepository {
	return &pengajuanCutiMemory{nextID: 1}
}

func (m *pengajuanCutiMemory) Create(p *model.PengajuanCuti) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextID
	m.nextID++
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	m.data = append(m.data, *p)
	return nil
}

func (m *pengajuanCutiMemory) GetAll(filter repository.PengajuanFilter) ([]model.PengajuanCuti, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []model.PengajuanCuti
	// Iterasi mundur supaya urutan created_at desc seperti query GORM
	for i := len(m.data) - 1; i >= 0; i-- {
		p := m.data[i]
		if filter.Search != "" {
			if !containsFold(p.Nama, filter.Search) &&
				!containsFold(p.NIK, filter.Search) &&
				!containsFold(p.Jabatan, filter.Search) &&
				!containsFold(p.Departemen, filter.Search) &&
				!containsFold(p.JenisPengajuanCuti, filter.Search) {
				continue
			}
		}
		if filter.Departemen != "" && filter.Departemen != "all" && p.Departemen != filter.Departemen {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && p.Status != filter.Status {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

func (m *pengajuanCutiMemory) GetByID(id uint) (*model.PengajuanCuti, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data {
		if m.data[i].ID == id {
			p := m.data[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *pengajuanCutiMemory) Update(p *model.PengajuanCuti) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data {
		if m.data[i].ID == p.ID {
			p.UpdatedAt = time.Now()
			m.data[i] = *p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *pengajuanCutiMemory) CountByStatus(status string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for i := range m.data {
		if m.data[i].Status == status {
			count++
		}
	}
	return count, nil
}

// --- Pengajuan Training ---

type pengajuanTrainingMemory struct {
	mu     sync.Mutex
	nextID uint
	data   []model.PengajuanTraining
}

func NewPengajuanTrainingRepository() repository.PengajuanTrainingRepository {
	return &pengajuanTrainingMemory{nextID: 1}
}

func (m *pengajuanTrainingMemory) Create(p *model.PengajuanTraining) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextID
	m.nextID++
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	m.data = append(m.data, *p)
	return nil
}

func (m *pengajuanTrainingMemory) GetAll(filter repository.PengajuanFilter) ([]model.PengajuanTraining, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []model.PengajuanTraining
	for i := len(m.data) - 1; i >= 0; i-- {
		p := m.data[i]
		if filter.Search != "" {
			if !containsFold(p.Nama, filter.Search) &&
				!containsFold(p.NIK, filter.Search) &&
				!containsFold(p.Jabatan, filter.Search) &&
				!containsFold(p.Departemen, filter.Search) &&
				!containsFold(p.JenisTraining, filter.Search) {
				continue
			}
		}
		if filter.Departemen != "" && filter.Departemen != "all" && p.Departemen != filter.Departemen {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && p.Status != filter.Status {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

func (m *pengajuanTrainingMemory) GetByID(id uint) (*model.PengajuanTraining, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data {
		if m.data[i].ID == id {
			p := m.data[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *pengajuanTrainingMemory) Update(p *model.PengajuanTraining) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data {
		if m.data[i].ID == p.ID {
			p.UpdatedAt = time.Now()
			m.data[i] = *p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *pengajuanTrainingMemory) CountByStatus(status string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for i := range m.data {
		if m.data[i].Status == status {
			count++
		}
	}
	return count, nil
}

// --- Dokumen ---

type dokumenMemory struct {
	mu     sync.Mutex
	nextID uint
	data   []model.Dokumen
}

func NewDokumenRepository() repository.DokumenRepository {
	return &dokumenMemory{nextID: 1}
}

func (m *dokumenMemory) Create(d *model.Dokumen) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ID = m.nextID
	m.nextID++
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	m.data = append(m.data, *d)
	return nil
}

func (m *dokumenMemory) GetAll(search, kategori string) ([]model.Dokumen, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []model.Dokumen
	for i := len(m.data) - 1; i >= 0; i-- {
		d := m.data[i]
		if search != "" {
			if !containsFold(d.Nama, search) &&
				!containsFold(d.Kategori, search) &&
				!containsFold(d.SubFolder, search) {
				continue
			}
		}
		if kategori != "" && kategori != "all" && d.Kategori != kategori {
			continue
		}
		list = append(list, d)
	}
	return list, nil
}

func (m *dokumenMemory) GetByID(id uint) (*model.Dokumen, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data {
		if m.data[i].ID == id {
			d := m.data[i]
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *dokumenMemory) Delete(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data {
		if m.data[i].ID == id {
			m.data = append(m.data[:i], m.data[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *dokumenMemory) Count() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.data)), nil
}

// --- Kontak HR ---

type kontakMemory struct {
	mu     sync.Mutex
	nextID uint
	data   []model.KontakHR
}

func NewKontakRepository() repository.KontakRepository {
	return &kontakMemory{nextID: 1}
}

func (m *kontakMemory) Create(k *model.KontakHR) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k.ID = m.nextID
	m.nextID++
	now := time.Now()
	k.CreatedAt = now
	k.UpdatedAt = now
	m.data = append(m.data, *k)
	return nil
}

func (m *kontakMemory) GetAll() ([]model.KontakHR, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]model.KontakHR, 0, len(m.data))
	for i := len(m.data) - 1; i >= 0; i-- {
		list = append(list, m.data[i])
	}
	return list, nil
}

func (m *kontakMemory) CountByStatus(status string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for i := range m.data {
		if m.data[i].Status == status {
			count++
		}
	}
	return count, nil
}

// --- User / Karyawan ---

type userMemory struct {
	mu     sync.Mutex
	nextID uint
	data   []model.User
}

func NewUserRepository() repository.UserRepository {
	return &userMemory{nextID: 1}
}

func (m *userMemory) Create(u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = m.nextID
	m.nextID++
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	m.data = append(m.data, *u)
	return nil
}

func (m *userMemory) GetAll(search, departemen string) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []model.User
	for i := len(m.data) - 1; i >= 0; i-- {
		u := m.data[i]
		if search != "" {
			if !containsFold(u.Name, search) &&
				!containsFold(u.NIK, search) &&
				!containsFold(u.Jabatan, search) &&
				!containsFold(u.Departemen, search) {
				continue
			}
		}
		if departemen != "" && departemen != "all" && u.Departemen != departemen {
			continue
		}
		list = append(list, u)
	}
	return list, nil
}

func (m *userMemory) GetByID(id uint) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data {
		if m.data[i].ID == id {
			u := m.data[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *userMemory) FindByEmail(email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data {
		if m.data[i].Email == email {
			u := m.data[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *userMemory) Update(u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data {
		if m.data[i].ID == u.ID {
			u.UpdatedAt = time.Now()
			m.data[i] = *u
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *userMemory) Delete(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data {
		if m.data[i].ID == id {
			m.data = append(m.data[:i], m.data[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *userMemory) Count() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.data)), nil
}

// --- Web Settings ---

type settingMemory struct {
	mu     sync.Mutex
	nextID uint
	data   []model.WebSetting
}

func NewSettingRepository() repository.SettingRepository {
	return &settingMemory{nextID: 1}
}

func (m *settingMemory) GetAll() ([]model.WebSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]model.WebSetting, len(m.data))
	copy(list, m.data)
	// Urut updated_at desc seperti query GORM
	sortByUpdatedAtDesc(list)
	return list, nil
}

func sortByUpdatedAtDesc(list []model.WebSetting) {
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && list[j].UpdatedAt.After(list[j-1].UpdatedAt); j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
}

func (m *settingMemory) UpsertMany(settings map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	for key, value := range settings {
		found := false
		for i := range m.data {
			if m.data[i].Key == key {
				m.data[i].Value = value
				m.data[i].UpdatedAt = now
				found = true
				break
			}
		}
		if !found {
			m.data = append(m.data, model.WebSetting{
				Model: gorm.Model{ID: m.nextID, CreatedAt: now, UpdatedAt: now},
				Key:   key,
				Value: value,
			})
			m.nextID++
		}
	}
	return nil
}
