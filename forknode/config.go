// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package forknode

import (
	"errors"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/offchainlabs/forkharness/util/rpcclient"
)

type Config struct {
	rpcclient.ClientConfig `koanf:",squash"`
	Dialect                string      `koanf:"dialect"`
	Anvil                  AnvilConfig `koanf:"anvil"`
}

type ConfigFetcher func() *Config

var DefaultConfig = Config{
	ClientConfig: rpcclient.ClientConfig{
		URL:            "http://127.0.0.1:8545",
		Timeout:        0,
		ConnectionWait: 30 * time.Second,
		ArgLogLimit:    2048,
	},
	Dialect: Hardhat.Name,
	Anvil:   DefaultAnvilConfig,
}

func ConfigAddOptions(prefix string, f *flag.FlagSet) {
	rpcclient.RPCClientAddOptions(prefix, f, &DefaultConfig.ClientConfig)
	f.String(prefix+".dialect", DefaultConfig.Dialect, "cheat RPC dialect of the node [hardhat|anvil]")
	AnvilConfigAddOptions(prefix+".anvil", f)
}

func (c *Config) Validate() error {
	if _, err := DialectByName(c.Dialect); err != nil {
		return err
	}
	if c.Anvil.Enable {
		if c.Dialect != Anvil.Name {
			return errors.New("node.anvil.enable requires node.dialect=anvil")
		}
		return c.Anvil.Validate()
	}
	if c.URL == "" {
		return errors.New("node.url is required")
	}
	return nil
}

type AnvilConfig struct {
	Enable         bool          `koanf:"enable"`
	Binary         string        `koanf:"binary"`
	Port           int           `koanf:"port"`
	ExtraArgs      []string      `koanf:"extra-args"`
	StartupTimeout time.Duration `koanf:"startup-timeout"`
}

var DefaultAnvilConfig = AnvilConfig{
	Enable:         false,
	Binary:         "",
	Port:           8545,
	ExtraArgs:      nil,
	StartupTimeout: 30 * time.Second,
}

func AnvilConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.Bool(prefix+".enable", DefaultAnvilConfig.Enable, "launch a local anvil process forking forking.url")
	f.String(prefix+".binary", DefaultAnvilConfig.Binary, "anvil binary (default $ANVIL or ~/.foundry/bin/anvil)")
	f.Int(prefix+".port", DefaultAnvilConfig.Port, "port for the launched anvil")
	f.StringSlice(prefix+".extra-args", DefaultAnvilConfig.ExtraArgs, "additional anvil command line arguments")
	f.Duration(prefix+".startup-timeout", DefaultAnvilConfig.StartupTimeout, "how long to wait for anvil to answer requests")
}

func (c *AnvilConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New("node.anvil.port out of range")
	}
	if c.StartupTimeout <= 0 {
		return errors.New("node.anvil.startup-timeout must be positive")
	}
	return nil
}
