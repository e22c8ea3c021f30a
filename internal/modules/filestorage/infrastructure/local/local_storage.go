package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/unilab/labdash/internal/modules/filestorage/domain"
)

// LocalStorage keeps archived files under a directory served at baseURL
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// BasePath is the directory the gateway serves.
func (l *LocalStorage) BasePath() string {
	return l.basePath
}

// resolve maps key to a path inside basePath, rejecting keys that climb out.
func (l *LocalStorage) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidKey, key)
	}
	return filepath.Join(l.basePath, filepath.FromSlash(clean)), nil
}

func (l *LocalStorage) publicURL(key string) string {
	return l.baseURL + "/" + strings.TrimLeft(path.Clean("/"+key), "/")
}

func (l *LocalStorage) UploadFile(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	fullPath, err := l.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", fmt.Errorf("failed to store file: %w", err)
	}
	return l.publicURL(key), nil
}

// GetPresignedDownloadURL returns the public URL; the filename travels as a
// query hint the file server ignores.
func (l *LocalStorage) GetPresignedDownloadURL(ctx context.Context, key, filename string, expiration time.Duration) (string, error) {
	if _, err := l.resolve(key); err != nil {
		return "", err
	}
	u := l.publicURL(key)
	if filename != "" {
		u += "?filename=" + url.QueryEscape(filename)
	}
	return u, nil
}

func (l *LocalStorage) DeleteFile(ctx context.Context, key string) error {
	fullPath, err := l.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
