// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package confighelpers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/offchainlabs/forkharness/cmd/genericconf"
)

type sampleConfig struct {
	Conf     genericconf.ConfConfig `koanf:"conf"`
	LogLevel string                 `koanf:"log-level"`
	Timeout  time.Duration          `koanf:"timeout"`
	Node     struct {
		URL string `koanf:"url"`
	} `koanf:"node"`
}

func sampleFlags() *flag.FlagSet {
	f := flag.NewFlagSet("sample", flag.ContinueOnError)
	genericconf.ConfConfigAddOptions("conf", f)
	f.String("log-level", "INFO", "log level")
	f.Duration("timeout", time.Minute, "timeout")
	f.String("node.url", "http://127.0.0.1:8545", "node url")
	return f
}

func parse(t *testing.T, args []string) (*sampleConfig, error) {
	t.Helper()
	k, err := BeginCommonParse(sampleFlags(), args)
	if err != nil {
		return nil, err
	}
	var config sampleConfig
	if err := EndCommonParse(k, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func TestDefaultsApply(t *testing.T) {
	config, err := parse(t, nil)
	require.NoError(t, err)
	require.Equal(t, "INFO", config.LogLevel)
	require.Equal(t, time.Minute, config.Timeout)
	require.Equal(t, "http://127.0.0.1:8545", config.Node.URL)
}

func TestSourcePriority(t *testing.T) {
	dir := t.TempDir()
	confFile := filepath.Join(dir, "harness.json")
	require.NoError(t, os.WriteFile(confFile, []byte(`{"log-level":"DEBUG","timeout":"2m","node":{"url":"http://file:8545"}}`), 0o600))

	config, err := parse(t, []string{"--conf.file", confFile})
	require.NoError(t, err)
	require.Equal(t, "DEBUG", config.LogLevel)
	require.Equal(t, 2*time.Minute, config.Timeout)
	require.Equal(t, "http://file:8545", config.Node.URL)

	config, err = parse(t, []string{"--conf.file", confFile, "--conf.string", `{"log-level":"WARN"}`})
	require.NoError(t, err)
	require.Equal(t, "WARN", config.LogLevel)

	t.Setenv("FORKTEST_NODE_URL", "http://env:8545")
	config, err = parse(t, []string{"--conf.file", confFile, "--conf.env-prefix", "FORKTEST"})
	require.NoError(t, err)
	require.Equal(t, "http://env:8545", config.Node.URL)

	config, err = parse(t, []string{"--conf.file", confFile, "--conf.env-prefix", "FORKTEST", "--node.url", "http://flag:8545"})
	require.NoError(t, err)
	require.Equal(t, "http://flag:8545", config.Node.URL)
}

func TestUnknownKeysRejected(t *testing.T) {
	_, err := parse(t, []string{"--conf.string", `{"no-such-key":1}`})
	require.Error(t, err)
}

func TestVersionAndPositional(t *testing.T) {
	_, err := parse(t, []string{"--version"})
	require.True(t, errors.Is(err, ErrVersion))
	_, err = parse(t, []string{"extra"})
	require.Error(t, err)
}

type fakeS3 struct {
	body []byte
}

func (f *fakeS3) HeadObject(context.Context, *s3.HeadObjectInput, ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	return &s3.HeadObjectOutput{ETag: aws.String("etag"), ContentLength: aws.Int64(int64(len(f.body)))}, nil
}

func (f *fakeS3) GetObject(context.Context, *s3.GetObjectInput, ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(f.body)), ContentLength: aws.Int64(int64(len(f.body)))}, nil
}

func TestS3Source(t *testing.T) {
	S3ClientOverride = &fakeS3{body: []byte(`{"log-level":"TRACE"}`)}
	defer func() { S3ClientOverride = nil }()
	config, err := parse(t, []string{
		"--conf.s3.bucket", "configs",
		"--conf.s3.region", "us-east-1",
		"--conf.s3.object-key", "forkharness.json",
	})
	require.NoError(t, err)
	require.Equal(t, "TRACE", config.LogLevel)
}
