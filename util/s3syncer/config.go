// Copyright 2025-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package s3syncer

import (
	"errors"

	flag "github.com/spf13/pflag"
)

type Config struct {
	AccessKey string `koanf:"access-key"`
	Bucket    string `koanf:"bucket"`
	ObjectKey string `koanf:"object-key"`
	Region    string `koanf:"region"`
	SecretKey string `koanf:"secret-key"`
}

var DefaultConfig = Config{}

func ConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.String(prefix+".access-key", DefaultConfig.AccessKey, "S3 access key")
	f.String(prefix+".bucket", DefaultConfig.Bucket, "S3 bucket")
	f.String(prefix+".object-key", DefaultConfig.ObjectKey, "S3 object key")
	f.String(prefix+".region", DefaultConfig.Region, "S3 region")
	f.String(prefix+".secret-key", DefaultConfig.SecretKey, "S3 secret key")
}

// Enabled reports whether enough settings are present to attempt a download.
func (c *Config) Enabled() bool {
	return c.Bucket != "" || c.ObjectKey != ""
}

func (c *Config) Validate() error {
	if c.Bucket == "" {
		return errors.New("s3 bucket is required")
	}
	if c.Region == "" {
		return errors.New("s3 region is required")
	}
	if c.ObjectKey == "" {
		return errors.New("s3 object key is required")
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return errors.New("s3 access key and secret key must be set together")
	}
	return nil
}

type DownloadConfig struct {
	PartSizeMB         int
	PartBodyMaxRetries int
	Concurrency        int
}

func DefaultDownloadConfig() DownloadConfig {
	return DownloadConfig{
		PartSizeMB:         5,
		PartBodyMaxRetries: 3,
		Concurrency:        2,
	}
}
