package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// fileStore implements Store on top of a local directory, one JSON file
// per key. This is the default backend for single-machine use.
type fileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a
// file-backed Store.
func NewFileStore(dir string) (Store, error) {
	if dir == "" {
		return nil, errors.New("storage: data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create data dir: %w", err)
	}
	return &fileStore{dir: dir}, nil
}

func (f *fileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Save writes atomically: a temp file in the same directory is renamed
// over the target so a crash mid-write never leaves a truncated snapshot.
func (f *fileStore) Save(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, f.path(key))
}

func (f *fileStore) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}
