package filestorage

import (
	"context"
	"fmt"

	"github.com/unilab/labdash/internal/modules/filestorage/application"
	"github.com/unilab/labdash/internal/modules/filestorage/domain"
	"github.com/unilab/labdash/internal/modules/filestorage/infrastructure/local"
	"github.com/unilab/labdash/internal/modules/filestorage/infrastructure/s3"
	"github.com/unilab/labdash/internal/shared/infrastructure/config"
)

// Module represents the report archive
type Module struct {
	service *application.ArchiveService
	storage domain.FileStorage
	// localDir is set when files live on disk and the gateway must serve them
	localDir string
}

func NewModule(ctx context.Context, cfg config.FileStorageConfig) (*Module, error) {
	var storage domain.FileStorage
	var localDir string

	if cfg.UseS3 {
		st, err := s3.NewS3Storage(ctx, s3.S3Config{
			BucketName:     cfg.S3BucketName,
			Region:         cfg.S3Region,
			Endpoint:       cfg.S3Endpoint,
			PublicEndpoint: cfg.S3PublicEndpoint,
			AccessKey:      cfg.S3AccessKey,
			SecretKey:      cfg.S3SecretKey,
			UseSSL:         cfg.S3UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		storage = st
	} else {
		st, err := local.NewLocalStorage(cfg.LocalPath, cfg.LocalBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		storage = st
		localDir = st.BasePath()
	}

	return &Module{
		service:  application.NewArchiveService(storage, 0),
		storage:  storage,
		localDir: localDir,
	}, nil
}

func (m *Module) Service() *application.ArchiveService {
	return m.service
}

// LocalDir is the directory to serve under /exports/, empty on S3.
func (m *Module) LocalDir() string {
	return m.localDir
}
