package s3infra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pampered-pooch/site-api/internal/config"
	"github.com/pampered-pooch/site-api/internal/domain"
)

// Store persists the review cache as a single JSON object in an S3 bucket,
// for deployments without a writable local disk.
type Store struct {
	client *s3.Client
	bucket string
	key    string
}

// NewClient creates an S3 client. When cfg.AWSEndpointURL is set (LocalStack),
// it overrides the endpoint and enables path-style addressing.
func NewClient(cfg *config.Config) *s3.Client {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}

	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		panic("failed to load AWS config for S3: " + err.Error())
	}

	clientOpts := []func(*s3.Options){}
	if cfg.AWSEndpointURL != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
			o.UsePathStyle = true
		})
	}

	return s3.NewFromConfig(awsCfg, clientOpts...)
}

// NewStore creates a Store writing the cache document to bucket/key.
func NewStore(client *s3.Client, bucket, key string) *Store {
	return &Store{client: client, bucket: bucket, key: key}
}

// Load reads the cache object. A missing or malformed object is an empty cache.
func (s *Store) Load(ctx context.Context) (*domain.ReviewCache, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if !errors.As(err, &noKey) {
			slog.Warn("read reviews cache object", "bucket", s.bucket, "key", s.key, "err", err)
		}
		return &domain.ReviewCache{}, nil
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return &domain.ReviewCache{}, nil
	}
	var cache domain.ReviewCache
	if err := json.Unmarshal(raw, &cache); err != nil || cache.Data == nil {
		slog.Warn("malformed reviews cache object, starting empty", "key", s.key, "err", err)
		return &domain.ReviewCache{}, nil
	}
	return &cache, nil
}

// Save replaces the cache object wholesale.
func (s *Store) Save(ctx context.Context, cache *domain.ReviewCache) error {
	raw, err := json.Marshal(cache)
	if err != nil {
		return fmt.Errorf("marshal reviews cache: %w", err)
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(raw),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 put reviews cache: %w", err)
	}
	return nil
}
