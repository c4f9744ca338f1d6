// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package main

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/log"

	"github.com/offchainlabs/forkharness/accounts"
	"github.com/offchainlabs/forkharness/artifacts"
	"github.com/offchainlabs/forkharness/cmd/genericconf"
	"github.com/offchainlabs/forkharness/cmd/util"
	"github.com/offchainlabs/forkharness/cmd/util/confighelpers"
	"github.com/offchainlabs/forkharness/compound"
	"github.com/offchainlabs/forkharness/forknode"
	"github.com/offchainlabs/forkharness/harness"
)

var errDumped = errors.New("configuration dumped")

func printSampleUsage(name string) {
	fmt.Printf("Sample usage: %s --forking.url=<archive node url> [--node.url=http://127.0.0.1:8545] [--scenario.run=supply-eth,borrow-eth]\n", name)
	fmt.Printf("              %s --node.dialect=anvil --node.anvil.enable --forking.url=<archive node url>\n", name)
}

func main() {
	os.Exit(mainImpl())
}

// Returns the exit code: 1 when any scenario failed or the harness could not start.
func mainImpl() int {
	config, err := ParseForkHarness(os.Args[1:])
	if errors.Is(err, errDumped) {
		return 0
	}
	if err != nil {
		confighelpers.PrintErrorAndExit(err, printSampleUsage)
	}
	if config.ListScenarios {
		for _, scenario := range compound.Scenarios() {
			fmt.Printf("%-34s %s\n", scenario.Name, scenario.Description)
		}
		return 0
	}

	pathResolver := genericconf.DefaultPathResolver(".")
	if err := genericconf.InitLog(config.LogType, config.LogLevel, &config.FileLogging, pathResolver); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		return 1
	}
	defer func() {
		if err := genericconf.CloseFileLogger(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
		}
	}()
	vcsRevision, _, vcsTime := confighelpers.GetVersion()
	log.Info("starting forkharness", "revision", vcsRevision, "vcs.time", vcsTime, "network", config.Network, "fork", config.Forking.ForkPoint())
	log.Debug("project settings", "compiler", config.Compiler.Version, "sources", config.Paths.Sources, "tests", config.Paths.Tests, "cache", config.Paths.Cache, "etherscanKeySet", config.Etherscan.APIKey != "")

	if err := util.StartMetrics(&config.MetricsOpts); err != nil {
		log.Error("starting metrics", "err", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	results, err := run(ctx, config, pathResolver)
	if err != nil {
		log.Error("forkharness failed", "err", err)
		return 1
	}
	if harness.Report(os.Stdout, results) > 0 {
		return 1
	}
	return 0
}

func run(ctx context.Context, config *ForkHarnessConfig, pathResolver func(string) string) ([]harness.Result, error) {
	scenarios, err := harness.Select(compound.Scenarios(), config.Scenario.Run)
	if err != nil {
		return nil, err
	}
	store, err := artifacts.NewStore(pathResolver(config.Paths.Artifacts), config.Compiler.Version, config.ArtifactCache)
	if err != nil {
		return nil, err
	}

	if config.Node.Anvil.Enable {
		anvil, err := forknode.NewAnvilLocal(&config.Node.Anvil, config.Forking.ForkPoint())
		if err != nil {
			return nil, err
		}
		if err := anvil.Start(ctx); err != nil {
			return nil, err
		}
		defer anvil.Stop()
		config.Node.URL = anvil.URL()
	}
	node, err := forknode.NewNode(func() *forknode.Config { return &config.Node })
	if err != nil {
		return nil, err
	}
	if err := node.Start(ctx); err != nil {
		return nil, err
	}
	defer node.Close()

	keys, err := loadKeys(config)
	if err != nil {
		return nil, err
	}
	signers := accounts.NewKeyedSigners(keys, node.ChainID(), node.Client())
	runner, err := harness.NewRunner(func() *harness.Config { return &config.Config }, node, node.Client(), store, signers)
	if err != nil {
		return nil, err
	}
	return runner.Run(ctx, scenarios...), nil
}

// loadKeys puts keystore accounts first so they become the default signer. The
// node's dev keys are used only when neither accounts nor a keystore is configured.
func loadKeys(config *ForkHarnessConfig) ([]*ecdsa.PrivateKey, error) {
	keys, err := accounts.LoadKeystore(&config.Keystore)
	if err != nil {
		return nil, err
	}
	if len(keys) > 0 && len(config.Accounts) == 0 {
		return keys, nil
	}
	configured, err := accounts.ParseKeys(config.Accounts)
	if err != nil {
		return nil, err
	}
	return append(keys, configured...), nil
}
