package filestorage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unilab/labdash/internal/shared/infrastructure/config"
)

func TestNewModule_LocalAndS3Error(t *testing.T) {
	dir := t.TempDir()
	m, err := NewModule(context.Background(), config.FileStorageConfig{LocalPath: dir, LocalBaseURL: "http://localhost:8080/exports"})
	require.NoError(t, err)
	require.NotNil(t, m.Service())
	assert.Equal(t, dir, m.LocalDir())

	_, err = NewModule(context.Background(), config.FileStorageConfig{UseS3: true})
	require.Error(t, err)
}

func TestNewModule_S3(t *testing.T) {
	m, err := NewModule(context.Background(), config.FileStorageConfig{
		UseS3: true, S3BucketName: "reportes", S3Region: "us-east-1", S3Endpoint: "localhost:9000",
		S3AccessKey: "x", S3SecretKey: "y",
	})
	require.NoError(t, err)
	assert.Empty(t, m.LocalDir())
}
