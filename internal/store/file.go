package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend stores each collection as a JSON file under a base
// directory. It is the default backend when no remote store is
// configured.
type FileBackend struct {
	baseDir string
}

// NewFileBackend creates a FileBackend rooted at baseDir. The directory
// is created lazily on first write.
func NewFileBackend(baseDir string) *FileBackend {
	return &FileBackend{baseDir: baseDir}
}

var _ Backend = (*FileBackend)(nil)

func (b *FileBackend) Get(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(b.path(name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", name, err)
	}
	return data, nil
}

// Set writes via a temp file and rename so a crash mid-write cannot leave
// a truncated collection behind.
func (b *FileBackend) Set(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(b.baseDir, 0o755); err != nil {
		return fmt.Errorf("store: mkdir: %w", err)
	}

	dest := b.path(name)
	tmp, err := os.CreateTemp(b.baseDir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("store: create temp: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: rename %s: %w", name, err)
	}
	return nil
}

func (b *FileBackend) Ping(_ context.Context) error {
	if err := os.MkdirAll(b.baseDir, 0o755); err != nil {
		return fmt.Errorf("store: data dir unavailable: %w", err)
	}
	return nil
}

func (b *FileBackend) Name() string { return "filesystem" }

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.baseDir, name+".json")
}
