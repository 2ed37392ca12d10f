// Package storage provides the persisted key-value blob contract and its
// file-backed implementation.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes persisted blobs by key.
// Task logic never touches the filesystem directly.
type Store interface {
	// Get returns the value for key. The second return is false when the
	// key has never been written.
	Get(key string) ([]byte, bool, error)

	// Set durably replaces the value for key.
	Set(key string, value []byte) error
}

// FileStore persists each key as a JSON file under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the file path backing key.
func (f *FileStore) Path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get implements Store.
func (f *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.Path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", f.Path(key), err)
	}
	return data, true, nil
}

// Set implements Store. The value is written to a temp file and renamed
// into place, so a reader never observes a partial write.
func (f *FileStore) Set(key string, value []byte) error {
	if err := os.MkdirAll(f.dir, 0700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, f.Path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", tmpName, err)
	}
	return nil
}
