// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package main

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/offchainlabs/forkharness/accounts"
	"github.com/offchainlabs/forkharness/harness"
)

func TestParseDefaults(t *testing.T) {
	config, err := ParseForkHarness([]string{"--forking.url=http://archive.invalid"})
	require.NoError(t, err)
	require.True(t, config.Forking.Enabled)
	require.Equal(t, uint64(harness.DefaultForkBlock), config.Forking.BlockNumber)
	require.Equal(t, 100000000*time.Millisecond, config.Scenario.Timeout)
	require.True(t, config.Assertions.Strict)
	require.Equal(t, int64(1), config.Assertions.ToleranceBips)
	require.Equal(t, "hardhat", config.Node.Dialect)
	require.Equal(t, "http://127.0.0.1:8545", config.Node.URL)
	require.Equal(t, "0.8.8", config.Compiler.Version)
	require.Equal(t, "./artifacts", config.Paths.Artifacts)
}

func TestParseOverrides(t *testing.T) {
	config, err := ParseForkHarness([]string{
		"--forking.url=http://archive.invalid",
		"--forking.block-number=17000000",
		"--forking.impersonated-funds=2",
		"--scenario.run=supply-eth,borrow-eth",
		"--scenario.timeout=90s",
		"--assertions.strict=false",
		"--node.dialect=anvil",
		"--node.anvil.enable",
		`--conf.string={"network":"mainnet-fork","paths":{"artifacts":"/tmp/out"}}`,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(17000000), config.Forking.BlockNumber)
	require.Equal(t, uint64(2), config.Forking.ImpersonatedFunds)
	require.Equal(t, []string{"supply-eth", "borrow-eth"}, config.Scenario.Run)
	require.Equal(t, 90*time.Second, config.Scenario.Timeout)
	require.False(t, config.Assertions.Strict)
	require.True(t, config.Node.Anvil.Enable)
	require.Equal(t, "mainnet-fork", config.Network)
	require.Equal(t, "/tmp/out", config.Paths.Artifacts)
}

func TestParseRejects(t *testing.T) {
	_, err := ParseForkHarness(nil)
	require.ErrorIs(t, err, harness.ErrConfiguration)

	_, err = ParseForkHarness([]string{"--forking.url=http://archive.invalid", "--node.dialect=ganache"})
	require.ErrorIs(t, err, harness.ErrConfiguration)

	_, err = ParseForkHarness([]string{"--forking.url=http://archive.invalid", "--node.anvil.enable"})
	require.ErrorIs(t, err, harness.ErrConfiguration)

	_, err = ParseForkHarness([]string{"--forking.enabled=false", "--assertions.tolerance-bips=-1"})
	require.ErrorIs(t, err, harness.ErrConfiguration)

	_, err = ParseForkHarness([]string{"--forking.enabled=false", `--conf.string={"no-such-key":1}`})
	require.Error(t, err)
}

func TestLoadKeys(t *testing.T) {
	config := DefaultForkHarnessConfig
	keys, err := loadKeys(&config)
	require.NoError(t, err)
	require.Len(t, keys, len(accounts.DevKeys))

	config.Accounts = []string{"0x" + accounts.DevKeys[3]}
	keys, err = loadKeys(&config)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	expected, err := accounts.ParseKey(accounts.DevKeys[3])
	require.NoError(t, err)
	require.Equal(t, crypto.PubkeyToAddress(expected.PublicKey), crypto.PubkeyToAddress(keys[0].PublicKey))

	config.Keystore.Pathname = t.TempDir()
	_, err = loadKeys(&config)
	require.Error(t, err, "keystore without password")
}
