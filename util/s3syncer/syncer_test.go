// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package s3syncer

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "valid config",
			config: Config{Bucket: "test-bucket", Region: "us-east-1", ObjectKey: "harness.json"},
		},
		{
			name:    "missing bucket",
			config:  Config{Region: "us-east-1", ObjectKey: "harness.json"},
			wantErr: true,
		},
		{
			name:    "missing region",
			config:  Config{Bucket: "test-bucket", ObjectKey: "harness.json"},
			wantErr: true,
		},
		{
			name:    "missing object key",
			config:  Config{Bucket: "test-bucket", Region: "us-east-1"},
			wantErr: true,
		},
		{
			name:    "access key without secret",
			config:  Config{Bucket: "test-bucket", Region: "us-east-1", ObjectKey: "harness.json", AccessKey: "key"},
			wantErr: true,
		},
		{
			name: "valid config with credentials",
			config: Config{
				Bucket: "test-bucket", Region: "us-east-1", ObjectKey: "harness.json",
				AccessKey: "key", SecretKey: "secret",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

type fakeObjectClient struct {
	data  []byte
	etag  string
	gets  int
	heads int
}

func (f *fakeObjectClient) HeadObject(_ context.Context, _ *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.heads++
	return &s3.HeadObjectOutput{
		ETag:          aws.String(f.etag),
		ContentLength: aws.Int64(int64(len(f.data))),
	}, nil
}

func (f *fakeObjectClient) GetObject(_ context.Context, _ *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.gets++
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(f.data)),
		ContentLength: aws.Int64(int64(len(f.data))),
	}, nil
}

func TestCheckAndSyncSkipsUnchangedObject(t *testing.T) {
	ctx := context.Background()
	client := &fakeObjectClient{data: []byte(`{"log-level":"DEBUG"}`), etag: "v1"}
	var received [][]byte
	syncer, err := NewSyncer(ctx, &Config{Bucket: "b", Region: "r", ObjectKey: "k"}, func(data []byte, digest string) error {
		received = append(received, append([]byte(nil), data...))
		return nil
	}, WithS3Client(client), WithDownloadConfig(DownloadConfig{PartSizeMB: 1, PartBodyMaxRetries: 1, Concurrency: 1}))
	require.NoError(t, err)

	require.NoError(t, syncer.CheckAndSync(ctx))
	require.NoError(t, syncer.CheckAndSync(ctx))
	require.Len(t, received, 1)
	require.Equal(t, client.data, received[0])

	client.etag = "v2"
	require.NoError(t, syncer.CheckAndSync(ctx))
	require.Len(t, received, 2)
	require.Equal(t, 3, client.heads)
}
