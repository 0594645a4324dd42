package cloud

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalDocumentStore is the filesystem fallback used when no S3 bucket is
// configured. Keys never contain path separators, but reject them anyway.
type LocalDocumentStore struct {
	directory string
}

func NewLocalDocumentStore(directory string) (*LocalDocumentStore, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalDocumentStore{directory: directory}, nil
}

func (store *LocalDocumentStore) Put(_ context.Context, key string, _ string, body io.Reader, _ int64) error {
	path, err := store.resolve(key)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create document file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, body); err != nil {
		return fmt.Errorf("write document file: %w", err)
	}
	return nil
}

func (store *LocalDocumentStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := store.resolve(key)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document file: %w", err)
	}
	return file, nil
}

func (store *LocalDocumentStore) resolve(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(store.directory, key), nil
}
