// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package harness

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/offchainlabs/forkharness/forknode"
	"github.com/offchainlabs/forkharness/util/arbmath"
)

// DefaultForkBlock is the mainnet height the Compound scenarios were written against.
const DefaultForkBlock = 16427933

type ForkingConfig struct {
	Enabled           bool   `koanf:"enabled"`
	URL               string `koanf:"url"`
	BlockNumber       uint64 `koanf:"block-number"`
	ImpersonatedFunds uint64 `koanf:"impersonated-funds"`
}

var DefaultForkingConfig = ForkingConfig{
	Enabled:           true,
	URL:               "",
	BlockNumber:       DefaultForkBlock,
	ImpersonatedFunds: 0,
}

func ForkingConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.Bool(prefix+".enabled", DefaultForkingConfig.Enabled, "run against a fork of forking.url; impersonation is only available when enabled")
	f.String(prefix+".url", DefaultForkingConfig.URL, "archival JSON-RPC endpoint to fork from")
	f.Uint64(prefix+".block-number", DefaultForkingConfig.BlockNumber, "block to pin the fork to (0 follows the upstream head)")
	f.Uint64(prefix+".impersonated-funds", DefaultForkingConfig.ImpersonatedFunds, "ether to top impersonated accounts up to before use, for gas (0 leaves their balance untouched)")
}

// ForkPoint is the state every scenario starts from. Without forking it is the
// node's own empty chain.
func (c *ForkingConfig) ForkPoint() forknode.ForkPoint {
	if !c.Enabled {
		return forknode.ForkPoint{}
	}
	return forknode.ForkPoint{URL: c.URL, BlockNumber: c.BlockNumber}
}

func (c *ForkingConfig) Validate() error {
	if c.Enabled && c.URL == "" {
		return fmt.Errorf("%w: forking.url is required when forking.enabled is set", ErrConfiguration)
	}
	return nil
}

type ScenarioConfig struct {
	Timeout time.Duration `koanf:"timeout"`
	Run     []string      `koanf:"run"`
}

var DefaultScenarioConfig = ScenarioConfig{
	Timeout: 100000000 * time.Millisecond,
	Run:     nil,
}

func ScenarioConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.Duration(prefix+".timeout", DefaultScenarioConfig.Timeout, "upper bound on the duration of a single scenario (0 disables)")
	f.StringSlice(prefix+".run", DefaultScenarioConfig.Run, "scenarios to run (default all)")
}

type AssertionsConfig struct {
	Strict        bool  `koanf:"strict"`
	ToleranceBips int64 `koanf:"tolerance-bips"`
}

var DefaultAssertionsConfig = AssertionsConfig{
	Strict:        true,
	ToleranceBips: 1,
}

func AssertionsConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.Bool(prefix+".strict", DefaultAssertionsConfig.Strict, "fail a scenario on a mismatched expectation instead of logging a warning")
	f.Int64(prefix+".tolerance-bips", DefaultAssertionsConfig.ToleranceBips, "relative tolerance of approximate expectations, in basis points")
}

func (c *AssertionsConfig) Tolerance() arbmath.Bips {
	return arbmath.Bips(c.ToleranceBips)
}

type Config struct {
	Forking    ForkingConfig    `koanf:"forking"`
	Scenario   ScenarioConfig   `koanf:"scenario"`
	Assertions AssertionsConfig `koanf:"assertions"`
}

type ConfigFetcher func() *Config

var DefaultConfig = Config{
	Forking:    DefaultForkingConfig,
	Scenario:   DefaultScenarioConfig,
	Assertions: DefaultAssertionsConfig,
}

func ConfigAddOptions(f *flag.FlagSet) {
	ForkingConfigAddOptions("forking", f)
	ScenarioConfigAddOptions("scenario", f)
	AssertionsConfigAddOptions("assertions", f)
}

func (c *Config) Validate() error {
	if err := c.Forking.Validate(); err != nil {
		return err
	}
	if c.Scenario.Timeout < 0 {
		return fmt.Errorf("%w: scenario.timeout must not be negative", ErrConfiguration)
	}
	if c.Assertions.ToleranceBips < 0 || arbmath.Bips(c.Assertions.ToleranceBips) > arbmath.OneInBips {
		return fmt.Errorf("%w: assertions.tolerance-bips must be between 0 and %d", ErrConfiguration, arbmath.OneInBips)
	}
	return nil
}
