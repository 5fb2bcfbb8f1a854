package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage is the object store uploads land in. Put writes the object and
// PublicURL resolves the address it is served from afterwards.
type Storage interface {
	Put(path string, data []byte) error
	PublicURL(path string) string
}

// LocalStorage stores objects under a directory on disk and serves them
// from a static URL prefix.
type LocalStorage struct {
	Dir       string
	URLPrefix string
}

// NewLocalStorage constructs a disk-backed Storage.
func NewLocalStorage(dir, urlPrefix string) *LocalStorage {
	return &LocalStorage{Dir: dir, URLPrefix: strings.TrimRight(urlPrefix, "/")}
}

// Put writes the object bytes, creating parent directories as needed.
func (s *LocalStorage) Put(path string, data []byte) error {
	full := filepath.Join(s.Dir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create upload directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("write upload: %w", err)
	}
	return nil
}

// PublicURL maps an object path to its served address.
func (s *LocalStorage) PublicURL(path string) string {
	return s.URLPrefix + "/" + strings.TrimLeft(path, "/")
}
