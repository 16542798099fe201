package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Blob is the narrow persistence contract the durable entity stores rely
// on: whole values read and written under a single key. Implementations
// must return ErrNotFound for absent keys.
type Blob interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

var ErrNotFound = errors.New("blob not found")

// FileBlob keeps one JSON file per key under a data directory.
type FileBlob struct {
	dir string
}

func NewFileBlob(dir string) (*FileBlob, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileBlob{dir: dir}, nil
}

func (b *FileBlob) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *FileBlob) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return data, nil
}

func (b *FileBlob) Write(ctx context.Context, key string, data []byte) error {
	if err := os.WriteFile(b.path(key), data, 0o644); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return nil
}

func (b *FileBlob) Delete(ctx context.Context, key string) error {
	err := os.Remove(b.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}
