// Package session implements the client-side session used by the CLI
// and demo tooling: a small state machine over a persisted token and
// user snapshot, with pluggable credential exchangers.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Storage keys. These are part of the persisted format; renaming them
// invalidates existing session files.
const (
	keyAuthToken = "auth_token"
	keyUserData  = "user_data"
)

// Store is a string key-value store for session state.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore persists keys as a single JSON object on disk.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by the given file. The file and
// its parent directory are created lazily on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session store: %w", err)
	}

	var kv map[string]string
	if err := json.Unmarshal(data, &kv); err != nil {
		return nil, fmt.Errorf("parse session store: %w", err)
	}
	return kv, nil
}

func (f *FileStore) save(kv map[string]string) error {
	data, err := json.Marshal(kv)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write session store: %w", err)
	}
	return nil
}

func (f *FileStore) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	kv, err := f.load()
	if err != nil {
		return "", false, err
	}
	value, ok := kv[key]
	return value, ok, nil
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	kv, err := f.load()
	if err != nil {
		// A corrupt store is replaced rather than kept broken.
		kv = map[string]string{}
	}
	kv[key] = value
	return f.save(kv)
}

func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	kv, err := f.load()
	if err != nil {
		kv = map[string]string{}
	}
	delete(kv, key)
	return f.save(kv)
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu sync.Mutex
	kv map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{kv: map[string]string{}}
}

func (m *MemStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.kv[key]
	return value, ok, nil
}

func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[key] = value
	return nil
}

func (m *MemStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.kv, key)
	return nil
}
