package application

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/unilab/labdash/internal/modules/filestorage/domain"
)

const defaultURLExpiry = 24 * time.Hour

// ArchiveRequest is one file to keep.
type ArchiveRequest struct {
	Folder      string
	Filename    string
	ContentType string
	Body        []byte
}

// ArchiveService names, stores and links archived files
type ArchiveService struct {
	storage   domain.FileStorage
	urlExpiry time.Duration
	now       func() time.Time
	newID     func() string
}

func NewArchiveService(storage domain.FileStorage, urlExpiry time.Duration) *ArchiveService {
	if urlExpiry <= 0 {
		urlExpiry = defaultURLExpiry
	}
	return &ArchiveService{
		storage:   storage,
		urlExpiry: urlExpiry,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

// Archive stores req under <folder>/<yyyy>/<mm>/<uuid><ext> and returns a
// download link for it.
func (s *ArchiveService) Archive(ctx context.Context, req ArchiveRequest) (*domain.File, error) {
	if len(req.Body) == 0 {
		return nil, fmt.Errorf("archive %s: empty file", req.Filename)
	}
	key := s.keyFor(req.Folder, req.Filename)

	if _, err := s.storage.UploadFile(ctx, key, bytes.NewReader(req.Body), req.ContentType); err != nil {
		return nil, fmt.Errorf("archive %s: %w", key, err)
	}
	url, err := s.storage.GetPresignedDownloadURL(ctx, key, req.Filename, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("link %s: %w", key, err)
	}
	return &domain.File{
		Key:         key,
		URL:         url,
		Filename:    req.Filename,
		ContentType: req.ContentType,
		Size:        int64(len(req.Body)),
	}, nil
}

// DownloadURL links an already archived key.
func (s *ArchiveService) DownloadURL(ctx context.Context, key, filename string) (string, error) {
	return s.storage.GetPresignedDownloadURL(ctx, key, filename, s.urlExpiry)
}

func (s *ArchiveService) Delete(ctx context.Context, key string) error {
	return s.storage.DeleteFile(ctx, key)
}

func (s *ArchiveService) keyFor(folder, filename string) string {
	folder = strings.Trim(path.Clean("/"+folder), "/")
	if folder == "" {
		folder = "archivo"
	}
	now := s.now().UTC()
	return fmt.Sprintf("%s/%04d/%02d/%s%s", folder, now.Year(), int(now.Month()), s.newID(), strings.ToLower(path.Ext(filename)))
}
