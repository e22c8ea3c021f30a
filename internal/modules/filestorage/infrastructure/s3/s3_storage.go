package s3

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the bucket location. Endpoint is set for MinIO; the public
// endpoint is the host browsers reach when it differs from the internal one.
type S3Config struct {
	BucketName     string
	Region         string
	Endpoint       string
	PublicEndpoint string
	AccessKey      string
	SecretKey      string
	UseSSL         bool
}

// S3Storage archives files in an S3 or MinIO bucket
type S3Storage struct {
	client  *s3.Client
	presign *s3.PresignClient
	config  S3Config
}

func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, withEndpoint(cfg.Endpoint, cfg.UseSSL))

	signer := client
	if cfg.Endpoint != "" && cfg.PublicEndpoint != "" && cfg.PublicEndpoint != cfg.Endpoint {
		signer = s3.NewFromConfig(awsCfg, withEndpoint(cfg.PublicEndpoint, cfg.UseSSL))
	}

	return &S3Storage{
		client:  client,
		presign: s3.NewPresignClient(signer),
		config:  cfg,
	}, nil
}

// withEndpoint points the client at a MinIO style endpoint with path-style addressing.
func withEndpoint(endpoint string, useSSL bool) func(*s3.Options) {
	return func(o *s3.Options) {
		if endpoint == "" {
			return
		}
		o.BaseEndpoint = aws.String(endpointURL(endpoint, useSSL))
		o.UsePathStyle = true
	}
}

func endpointURL(endpoint string, useSSL bool) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return strings.TrimRight(endpoint, "/")
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

func (s *S3Storage) UploadFile(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to s3: %w", err)
	}
	return s.publicURL(key), nil
}

func (s *S3Storage) publicURL(key string) string {
	if ep := s.config.PublicEndpoint; ep != "" {
		return fmt.Sprintf("%s/%s/%s", endpointURL(ep, s.config.UseSSL), s.config.BucketName, key)
	}
	if ep := s.config.Endpoint; ep != "" {
		return fmt.Sprintf("%s/%s/%s", endpointURL(ep, s.config.UseSSL), s.config.BucketName, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.BucketName, s.config.Region, key)
}

// GetPresignedDownloadURL signs a GET that makes browsers save the object as filename.
func (s *S3Storage) GetPresignedDownloadURL(ctx context.Context, key, filename string, expiration time.Duration) (string, error) {
	if filename == "" || filename == "." {
		filename = path.Base(key)
	}
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": filename})

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket:                     aws.String(s.config.BucketName),
		Key:                        aws.String(key),
		ResponseContentDisposition: aws.String(disposition),
	}, s3.WithPresignExpires(expiration))
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned download URL: %w", err)
	}
	return req.URL, nil
}

func (s *S3Storage) DeleteFile(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from s3: %w", err)
	}
	return nil
}
