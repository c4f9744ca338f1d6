// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/offchainlabs/forkharness/accounts"
	"github.com/offchainlabs/forkharness/cmd/genericconf"
	"github.com/offchainlabs/forkharness/cmd/util"
	"github.com/offchainlabs/forkharness/cmd/util/confighelpers"
	"github.com/offchainlabs/forkharness/forknode"
	"github.com/offchainlabs/forkharness/harness"
)

type CompilerConfig struct {
	Version string `koanf:"version"`
}

type EtherscanConfig struct {
	APIKey string `koanf:"api-key"`
}

type PathsConfig struct {
	Sources   string `koanf:"sources"`
	Tests     string `koanf:"tests"`
	Cache     string `koanf:"cache"`
	Artifacts string `koanf:"artifacts"`
}

type ForkHarnessConfig struct {
	Network          string                        `koanf:"network"`
	Node             forknode.Config               `koanf:"node"`
	harness.Config   `koanf:",squash"`
	Accounts         []string                      `koanf:"accounts"`
	Keystore         accounts.KeystoreConfig       `koanf:"keystore"`
	Compiler         CompilerConfig                `koanf:"compiler"`
	Etherscan        EtherscanConfig               `koanf:"etherscan"`
	Paths            PathsConfig                   `koanf:"paths"`
	ArtifactCache    int                           `koanf:"artifact-cache"`
	ListScenarios    bool                          `koanf:"list-scenarios"`
	LogLevel         string                        `koanf:"log-level"`
	LogType          string                        `koanf:"log-type"`
	FileLogging      genericconf.FileLoggingConfig `koanf:"file-logging"`
	Conf             genericconf.ConfConfig        `koanf:"conf"`
	util.MetricsOpts `koanf:",squash"`
}

var DefaultForkHarnessConfig = ForkHarnessConfig{
	Network:       "hardhat",
	Node:          forknode.DefaultConfig,
	Config:        harness.DefaultConfig,
	Accounts:      nil,
	Keystore:      accounts.KeystoreConfigDefault,
	Compiler:      CompilerConfig{Version: "0.8.8"},
	Etherscan:     EtherscanConfig{APIKey: ""},
	Paths:         PathsConfig{Sources: "./contracts", Tests: "./test", Cache: "./cache", Artifacts: "./artifacts"},
	ArtifactCache: 32,
	ListScenarios: false,
	LogLevel:      "INFO",
	LogType:       "plaintext",
	FileLogging:   genericconf.DefaultFileLoggingConfig,
	Conf:          genericconf.ConfConfigDefault,
	MetricsOpts: util.MetricsOpts{
		Metrics:       false,
		MetricsServer: genericconf.MetricsServerConfigDefault,
	},
}

func ForkHarnessConfigAddOptions(f *flag.FlagSet) {
	f.String("network", DefaultForkHarnessConfig.Network, "name of the network the scenarios run on")
	forknode.ConfigAddOptions("node", f)
	harness.ConfigAddOptions(f)
	f.StringSlice("accounts", DefaultForkHarnessConfig.Accounts, "hex private keys of the signing accounts (default: the node's dev accounts)")
	accounts.KeystoreConfigAddOptions("keystore", f)
	f.String("compiler.version", DefaultForkHarnessConfig.Compiler.Version, "solidity version the artifacts are expected to be compiled with")
	f.String("etherscan.api-key", DefaultForkHarnessConfig.Etherscan.APIKey, "etherscan API key of the hardhat project")
	f.String("paths.sources", DefaultForkHarnessConfig.Paths.Sources, "contract sources directory")
	f.String("paths.tests", DefaultForkHarnessConfig.Paths.Tests, "tests directory")
	f.String("paths.cache", DefaultForkHarnessConfig.Paths.Cache, "compiler cache directory")
	f.String("paths.artifacts", DefaultForkHarnessConfig.Paths.Artifacts, "compiled artifacts directory")
	f.Int("artifact-cache", DefaultForkHarnessConfig.ArtifactCache, "number of parsed artifacts kept in memory")
	f.Bool("list-scenarios", DefaultForkHarnessConfig.ListScenarios, "print the available scenarios and exit")
	f.String("log-level", DefaultForkHarnessConfig.LogLevel, "log level, valid values are CRIT, ERROR, WARN, INFO, DEBUG, TRACE")
	f.String("log-type", DefaultForkHarnessConfig.LogType, "log type (plaintext or json)")
	genericconf.FileLoggingConfigAddOptions("file-logging", f)
	genericconf.ConfConfigAddOptions("conf", f)
	f.Bool("metrics", DefaultForkHarnessConfig.Metrics, "enable metrics")
	genericconf.MetricsServerAddOptions("metrics-server", f)
}

func (c *ForkHarnessConfig) Validate() error {
	if err := c.Node.Validate(); err != nil {
		return fmt.Errorf("%w: %w", harness.ErrConfiguration, err)
	}
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if c.Paths.Artifacts == "" {
		return fmt.Errorf("%w: paths.artifacts is required", harness.ErrConfiguration)
	}
	if c.ArtifactCache <= 0 {
		return fmt.Errorf("%w: artifact-cache must be positive", harness.ErrConfiguration)
	}
	return nil
}

// redactedFields are blanked out of --conf.dump output.
var redactedFields = map[string]interface{}{
	"accounts":           []string{},
	"etherscan.api-key":  "",
	"keystore.password":  "",
	"conf.s3.access-key": "",
	"conf.s3.secret-key": "",
}

func ParseForkHarness(args []string) (*ForkHarnessConfig, error) {
	f := flag.NewFlagSet("forkharness", flag.ContinueOnError)
	ForkHarnessConfigAddOptions(f)

	k, err := confighelpers.BeginCommonParse(f, args)
	if err != nil {
		return nil, err
	}
	var config ForkHarnessConfig
	if err := confighelpers.EndCommonParse(k, &config); err != nil {
		return nil, err
	}
	if config.Conf.Dump {
		if err := confighelpers.DumpConfig(k, redactedFields); err != nil {
			return nil, err
		}
		return nil, errDumped
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
