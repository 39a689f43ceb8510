package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// KV is the minimal key-value persistence surface. Values are JSON blobs.
// No cross-process locking is provided; the dashboard assumes a single
// writer, and concurrent writers may race (accepted limitation).
type KV interface {
	// Load returns the stored value for key, or ok=false when absent.
	Load(key string) (value []byte, ok bool, err error)
	Save(key string, value []byte) error
	Delete(key string) error
}

// MemKV is a map-backed KV used in tests and for guest sessions.
type MemKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemKV() *MemKV {
	return &MemKV{data: map[string][]byte{}}
}

func (m *MemKV) Load(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemKV) Save(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// FileKV persists each key as one JSON file under a data directory.
type FileKV struct {
	dir string
}

// NewFileKV creates the data directory if needed.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) string {
	// Keys are fixed strings plus usernames; strip anything path-hostile.
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_' || r == '-' || r == '.':
			return r
		}
		return '_'
	}, key)
	return filepath.Join(f.dir, safe+".json")
}

func (f *FileKV) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return data, true, nil
}

func (f *FileKV) Save(key string, value []byte) error {
	if err := os.WriteFile(f.path(key), value, 0o644); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (f *FileKV) Delete(key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
