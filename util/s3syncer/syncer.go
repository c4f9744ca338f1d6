// Copyright 2025-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package s3syncer

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ethereum/go-ethereum/log"
)

// ObjectClient is the subset of the S3 API needed to fetch one object.
type ObjectClient interface {
	manager.DownloadAPIClient
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// DataHandler processes downloaded data and the associated digest.
type DataHandler func(data []byte, digest string) error

// Syncer fetches a single S3 object and skips the download when its ETag is unchanged.
type Syncer struct {
	client         ObjectClient
	config         *Config
	downloadConfig DownloadConfig
	handleData     DataHandler
	digestETag     string
	mutex          sync.Mutex
}

type Option func(*Syncer)

const bytesInMB = 1024 * 1024

func WithDownloadConfig(dc DownloadConfig) Option {
	return func(s *Syncer) {
		s.downloadConfig = dc
	}
}

// WithS3Client sets a custom S3 client (useful for testing).
func WithS3Client(client ObjectClient) Option {
	return func(s *Syncer) {
		s.client = client
	}
}

func NewS3Client(ctx context.Context, config *Config) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(config.Region))
	if config.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.AccessKey, config.SecretKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

func NewSyncer(
	ctx context.Context,
	config *Config,
	dataHandler DataHandler,
	opts ...Option,
) (*Syncer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	s := &Syncer{
		config:         config,
		downloadConfig: DefaultDownloadConfig(),
		handleData:     dataHandler,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		client, err := NewS3Client(ctx, config)
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.client = client
	}
	return s, nil
}

// CheckAndSync downloads the object only if its ETag changed since the last sync.
func (s *Syncer) CheckAndSync(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	headOutput, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(s.config.ObjectKey),
	})
	if err != nil {
		return fmt.Errorf("HeadObject failed for s3://%s/%s: %w", s.config.Bucket, s.config.ObjectKey, err)
	}
	currentETag := aws.ToString(headOutput.ETag)
	if currentETag == s.digestETag {
		log.Debug("S3 object unchanged", "etag", currentETag, "bucket", s.config.Bucket, "key", s.config.ObjectKey)
		return nil
	}
	log.Info("S3 object changed, downloading",
		"old_etag", s.digestETag,
		"new_etag", currentETag,
		"bucket", s.config.Bucket,
		"key", s.config.ObjectKey,
	)
	if err := s.downloadAndHandle(ctx, currentETag, aws.ToInt64(headOutput.ContentLength)); err != nil {
		return err
	}
	s.digestETag = currentETag
	return nil
}

func (s *Syncer) downloadAndHandle(ctx context.Context, etagDigest string, objectSize int64) error {
	downloader := manager.NewDownloader(s.client, func(d *manager.Downloader) {
		d.PartSize = int64(s.downloadConfig.PartSizeMB) * bytesInMB
		d.PartBodyMaxRetries = s.downloadConfig.PartBodyMaxRetries
		d.Concurrency = s.downloadConfig.Concurrency
	})
	buffer := manager.NewWriteAtBuffer(make([]byte, 0, objectSize))
	_, err := downloader.Download(ctx, buffer, &s3.GetObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(s.config.ObjectKey),
	})
	if err != nil {
		return fmt.Errorf("download failed for s3://%s/%s: %w", s.config.Bucket, s.config.ObjectKey, err)
	}
	return s.handleData(buffer.Bytes(), etagDigest)
}
