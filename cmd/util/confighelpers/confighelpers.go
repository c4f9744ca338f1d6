// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package confighelpers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/mitchellh/mapstructure"
	flag "github.com/spf13/pflag"

	"github.com/ethereum/go-ethereum/log"

	"github.com/offchainlabs/forkharness/util/s3syncer"
)

var ErrVersion = errors.New("version requested")

// S3ClientOverride lets tests replace the client used for conf.s3.
var S3ClientOverride s3syncer.ObjectClient

func GetVersion() (string, string, string) {
	vcsRevision := "development"
	strippedRevision := "development"
	vcsTime := "development"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return vcsRevision, strippedRevision, vcsTime
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			vcsRevision = setting.Value
			strippedRevision = setting.Value
			if len(strippedRevision) > 7 {
				strippedRevision = strippedRevision[:7]
			}
		case "vcs.time":
			vcsTime = setting.Value
		}
	}
	return vcsRevision, strippedRevision, vcsTime
}

func PrintErrorAndExit(err error, usage func(string)) {
	vcsRevision, _, vcsTime := GetVersion()
	fmt.Printf("Version: %v, time: %v\n", vcsRevision, vcsTime)
	if errors.Is(err, ErrVersion) {
		os.Exit(0)
	}
	usage(os.Args[0])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	fmt.Printf("\nFatal configuration error: %s\n", err.Error())
	os.Exit(1)
}

// BeginCommonParse layers configuration sources in increasing priority:
// flag defaults, S3, files, the conf.string JSON, environment, explicit flags.
func BeginCommonParse(f *flag.FlagSet, args []string) (*koanf.Koanf, error) {
	for _, arg := range args {
		if arg == "--version" || arg == "-v" {
			return nil, ErrVersion
		}
	}
	if err := f.Parse(args); err != nil {
		return nil, err
	}
	if f.NArg() != 0 {
		return nil, fmt.Errorf("unexpected positional parameters: %v", f.Args())
	}

	var k = koanf.New(".")
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	s3Config := s3syncer.Config{
		AccessKey: k.String("conf.s3.access-key"),
		Bucket:    k.String("conf.s3.bucket"),
		ObjectKey: k.String("conf.s3.object-key"),
		Region:    k.String("conf.s3.region"),
		SecretKey: k.String("conf.s3.secret-key"),
	}
	if s3Config.Enabled() {
		if err := loadS3Variables(k, &s3Config); err != nil {
			return nil, fmt.Errorf("error loading S3 settings: %w", err)
		}
	}

	for _, configFile := range k.Strings("conf.file") {
		if err := k.Load(file.Provider(configFile), json.Parser()); err != nil {
			return nil, fmt.Errorf("error loading local config file %s: %w", configFile, err)
		}
	}

	if configString := k.String("conf.string"); len(configString) > 0 {
		if err := k.Load(rawbytes.Provider([]byte(configString)), json.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config string: %w", err)
		}
	}

	if err := loadEnvironmentVariables(k); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	// Explicitly set flags win over everything loaded above.
	if err := k.Load(posflag.ProviderWithFlag(f, ".", nil, func(fl *flag.Flag) (string, interface{}) {
		if !fl.Changed {
			return "", nil
		}
		return fl.Name, posflag.FlagVal(f, fl)
	}), nil); err != nil {
		return nil, fmt.Errorf("error loading command line flags: %w", err)
	}

	return k, nil
}

func loadEnvironmentVariables(k *koanf.Koanf) error {
	envPrefix := k.String("conf.env-prefix")
	if len(envPrefix) == 0 {
		return nil
	}
	return k.Load(env.Provider(envPrefix+"_", ".", func(s string) string {
		// FOO__BAR -> foo-bar to handle dash in config names
		s = strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, envPrefix+"_")), "__", "-")
		return strings.ReplaceAll(s, "_", ".")
	}), nil)
}

func loadS3Variables(k *koanf.Koanf, config *s3syncer.Config) error {
	var opts []s3syncer.Option
	if S3ClientOverride != nil {
		opts = append(opts, s3syncer.WithS3Client(S3ClientOverride))
	}
	ctx := context.Background()
	syncer, err := s3syncer.NewSyncer(ctx, config, func(data []byte, digest string) error {
		log.Info("loading configuration from S3", "bucket", config.Bucket, "key", config.ObjectKey, "etag", digest)
		return k.Load(rawbytes.Provider(data), json.Parser())
	}, opts...)
	if err != nil {
		return err
	}
	return syncer.CheckAndSync(ctx)
}

func EndCommonParse(k *koanf.Koanf, config interface{}) error {
	decoderConfig := mapstructure.DecoderConfig{
		ErrorUnused: true,

		// Default values
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		Metadata:         nil,
		Result:           config,
		WeaklyTypedInput: true,
	}
	err := k.UnmarshalWithConf("", config, koanf.UnmarshalConf{DecoderConfig: &decoderConfig})
	if err != nil {
		return err
	}
	return nil
}

// DumpConfig prints the effective configuration as JSON after applying overrides,
// which callers use to redact secrets.
func DumpConfig(k *koanf.Koanf, extraOverrideFields map[string]interface{}) error {
	overrideFields := map[string]interface{}{"conf.dump": false}
	for key, value := range extraOverrideFields {
		overrideFields[key] = value
	}
	if err := k.Load(confmap.Provider(overrideFields, "."), nil); err != nil {
		return fmt.Errorf("error removing extra parameters before dump: %w", err)
	}
	c, err := k.Marshal(json.Parser())
	if err != nil {
		return fmt.Errorf("unable to marshal config file to JSON: %w", err)
	}
	fmt.Println(string(c))
	return nil
}
