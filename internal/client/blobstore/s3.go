package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/bettybooth/bettybooth/internal/client/locator"
)

// Wrappers around AWS SDK constructors so tests can substitute them.
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
)

// newBlobID returns a fresh blob id. Ids must stay alphanumeric so the
// resulting locator matches the extraction pattern.
var newBlobID = func() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Config carries the S3 connection settings and the public base URL under
// which uploaded objects are reachable.
type Config struct {
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	MediaBaseURL string
}

// S3Store is the S3/MinIO-backed BlobStore.
type S3Store struct {
	cfg    Config
	client *s3.Client
}

// NewS3Store builds the SDK client once. Credentials are static
// (MinIO-style); Endpoint overrides the SDK default for self-hosted stores.
func NewS3Store(ctx context.Context, cfg Config) (*S3Store, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Store{cfg: cfg, client: client}, nil
}

func (s *S3Store) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	id := newBlobID()
	key := locator.ObjectKey(id)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return locator.Build(s.cfg.MediaBaseURL, id), nil
}

func (s *S3Store) Delete(ctx context.Context, blobID string) error {
	key := locator.ObjectKey(blobID)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}
