package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"contract_tracker/internal/usecase/interfaces"
)

var (
	ErrInvalidKey = errors.New("invalid key")

	keyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// FileKVRepository stores each key as <dir>/<key>.json. Writes go to a temp
// file that is renamed over the old one, so a crash never leaves half a value.

type FileKVRepository struct {
	dir string
}

var _ interfaces.IKeyValueStore = (*FileKVRepository)(nil)

func NewFileKVRepository(dir string) (*FileKVRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileKVRepository{dir: dir}, nil
}

func (r *FileKVRepository) GetItem(_ context.Context, key string) ([]byte, bool, error) {
	path, err := r.path(key)
	if err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return b, true, nil
}

func (r *FileKVRepository) SetItem(_ context.Context, key string, value []byte) error {
	path, err := r.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(r.dir, "."+key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

func (r *FileKVRepository) path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(r.dir, key+".json"), nil
}
