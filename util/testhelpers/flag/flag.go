// Copyright 2024-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package testflag

import (
	"flag"
	"log"
	"os"
)

var (
	fs              = flag.NewFlagSet("test", flag.ExitOnError)
	ForkURLFlag     = fs.String("test_fork_url", "", "Upstream archive node to fork from in fork-gated tests")
	ForkBlockFlag   = fs.Uint64("test_fork_block", 0, "Block to pin the fork to (0 uses the configured default)")
	NodeURLFlag     = fs.String("test_node_url", "", "Already running hardhat or anvil node for fork-gated tests")
	NodeDialectFlag = fs.String("test_node_dialect", "", "Cheat RPC dialect of the node under test [hardhat|anvil]")
	AnvilBinaryFlag = fs.String("test_anvil_binary", "", "Anvil binary to launch when no node url is given")
	ArtifactsFlag   = fs.String("test_artifacts", "", "Compiled contract artifacts directory for fork-gated tests")
	LogLevelFlag    = fs.String("test_loglevel", "", "Log level for tests")
)

// Flags can only be passed to the package that defines them, so test flags
// come after a "--" delimiter and are parsed here.
func init() {
	var args []string
	foundDelimiter := false
	for _, arg := range os.Args {
		if foundDelimiter {
			args = append(args, arg)
		}
		if arg == "--" {
			foundDelimiter = true
		}
	}
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}
}
