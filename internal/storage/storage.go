package storage

import (
	"os"
	"path/filepath"
	"sync"
)

// FileStore menyimpan file upload berdasarkan path relatif
// (contoh: uploads/2024/1717171717171_policy.pdf).
type FileStore interface {
	Save(path string, data []byte) error
	Remove(path string) error
}

// DiskStore menulis ke filesystem lokal di bawah baseDir.
type DiskStore struct {
	baseDir string
}

func NewDiskStore(baseDir string) *DiskStore {
	return &DiskStore{baseDir: baseDir}
}

func (s *DiskStore) Save(path string, data []byte) error {
	full := filepath.Join(s.baseDir, filepath.FromSlash(path))

	// Buat folder jika belum ada
	dir := filepath.Dir(full)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(full, data, 0644)
}

func (s *DiskStore) Remove(path string) error {
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(path)))
	if os.IsNotExist(err) {
		// File sudah tidak ada, anggap selesai
		return nil
	}
	return err
}

// MemoryStore menyimpan file di map, untuk mode demo dan test.
type MemoryStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{files: make(map[string][]byte)}
}

func (s *MemoryStore) Save(path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.files[path] = buf
	return nil
}

func (s *MemoryStore) Remove(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	return nil
}

// Get dipakai test untuk memeriksa isi file yang tersimpan.
func (s *MemoryStore) Get(path string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	return data, ok
}
