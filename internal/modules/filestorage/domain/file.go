package domain

import (
	"context"
	"errors"
	"io"
	"time"
)

var ErrInvalidKey = errors.New("invalid storage key")

// File describes an archived report.
type File struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// FileStorage keeps exported reports. Implemented by the local filesystem and S3/MinIO.
type FileStorage interface {
	// UploadFile stores body under key and returns its public URL.
	UploadFile(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	// GetPresignedDownloadURL returns a URL that downloads key as filename
	// until expiration passes. Stores without signing return the public URL.
	GetPresignedDownloadURL(ctx context.Context, key, filename string, expiration time.Duration) (string, error)
	DeleteFile(ctx context.Context, key string) error
}
