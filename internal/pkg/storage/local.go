package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps files on the local disk under a base directory and
// serves them from a static base URL.
type LocalStorage struct {
	baseDir string
	baseURL string // e.g. "http://localhost:8080/uploads"
}

func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// resolve maps a key onto the base directory, rejecting traversal outside it.
func (s *LocalStorage) resolve(key string) (clean, full string, err error) {
	clean = filepath.ToSlash(filepath.Clean(key))
	full = filepath.Join(s.baseDir, filepath.FromSlash(clean))
	if clean == "." || strings.HasPrefix(clean, "..") {
		return "", "", fmt.Errorf("invalid storage key: %s", key)
	}
	return clean, full, nil
}

func (s *LocalStorage) Save(ctx context.Context, key string, content io.Reader) (string, error) {
	clean, full, err := s.resolve(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return clean, nil
}

func (s *LocalStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	_, full, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

func (s *LocalStorage) Remove(ctx context.Context, key string) error {
	_, full, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (s *LocalStorage) URL(key string) string {
	clean := filepath.ToSlash(filepath.Clean(key))
	return fmt.Sprintf("%s/%s", s.baseURL, clean)
}
