// Package storage hands out presigned URLs for applicant documents kept in an
// S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	"hr-portal/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrNotConfigured = errors.New("object storage not configured")

type S3 struct {
	client      *s3.Client
	presign     *s3.PresignClient
	bucket      string
	uploadTTL   time.Duration
	downloadTTL time.Duration
}

func NewS3(ctx context.Context, cfg config.StorageConfig) (*S3, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, err
	}
	return NewS3WithConfig(awsCfg, cfg), nil
}

// NewS3WithConfig builds the client from an already resolved AWS config. A
// custom endpoint switches to path-style addressing for MinIO and friends.
func NewS3WithConfig(awsCfg aws.Config, cfg config.StorageConfig) *S3 {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	uploadTTL := cfg.UploadURLTTL
	if uploadTTL <= 0 {
		uploadTTL = 15 * time.Minute
	}
	downloadTTL := cfg.DownloadURLTTL
	if downloadTTL <= 0 {
		downloadTTL = time.Hour
	}

	return &S3{
		client:      client,
		presign:     s3.NewPresignClient(client),
		bucket:      strings.TrimSpace(cfg.Bucket),
		uploadTTL:   uploadTTL,
		downloadTTL: downloadTTL,
	}
}

// NewUploadURL allocates a fresh storage id and returns it with a presigned
// PUT URL for it.
func (s *S3) NewUploadURL(ctx context.Context) (string, string, error) {
	if s == nil || s.bucket == "" {
		return "", "", ErrNotConfigured
	}
	key := uuid.NewString()
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.uploadTTL))
	if err != nil {
		return "", "", err
	}
	return key, req.URL, nil
}

func (s *S3) DownloadURL(ctx context.Context, key string) (string, error) {
	if s == nil || s.bucket == "" {
		return "", ErrNotConfigured
	}
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.downloadTTL))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (s *S3) Delete(ctx context.Context, key string) error {
	if s == nil || s.bucket == "" {
		return ErrNotConfigured
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
