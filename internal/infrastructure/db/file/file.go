// Package file stores documents as JSON files in a single directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopkeep/storefront/internal/core/domain"
)

// DocumentStore keeps one file per document under Dir.
type DocumentStore struct {
	dir string
}

// New returns a store rooted at dir, creating the directory if needed.
func New(dir string) (*DocumentStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &DocumentStore{dir: dir}, nil
}

// Dir returns the root directory.
func (s *DocumentStore) Dir() string { return s.dir }

func (s *DocumentStore) Load(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", name, domain.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return data, nil
}

// Save writes to a temporary file in the same directory and renames it over
// the target, so readers see either the old or the new document.
func (s *DocumentStore) Save(_ context.Context, name string, data []byte) error {
	base := filepath.Base(name)
	tmp, err := os.CreateTemp(s.dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, base)); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func (s *DocumentStore) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("data dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", s.dir)
	}
	return nil
}

func (s *DocumentStore) path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}
