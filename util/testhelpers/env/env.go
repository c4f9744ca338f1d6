// Copyright 2024-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package env

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/log"

	testflag "github.com/offchainlabs/forkharness/util/testhelpers/flag"
)

// Fork-gated tests read their upstream from a test flag first and the
// environment second, so CI can set FORK_URL without touching go test args.
func GetForkURL() string {
	if *testflag.ForkURLFlag != "" {
		return *testflag.ForkURLFlag
	}
	return os.Getenv("FORK_URL")
}

func GetForkBlock() uint64 {
	if *testflag.ForkBlockFlag != 0 {
		return *testflag.ForkBlockFlag
	}
	raw := os.Getenv("FORK_BLOCK")
	if raw == "" {
		return 0
	}
	block, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		log.Warn("invalid FORK_BLOCK; using default", "value", raw, "err", err)
		return 0
	}
	return block
}

func GetNodeURL() string {
	if *testflag.NodeURLFlag != "" {
		return *testflag.NodeURLFlag
	}
	return os.Getenv("FORK_NODE_URL")
}

func GetNodeDialect() string {
	if *testflag.NodeDialectFlag != "" {
		return *testflag.NodeDialectFlag
	}
	return os.Getenv("FORK_NODE_DIALECT")
}

func GetAnvilBinary() string {
	if *testflag.AnvilBinaryFlag != "" {
		return *testflag.AnvilBinaryFlag
	}
	return os.Getenv("ANVIL_BINARY")
}

// GetArtifactsDir defaults to the artifacts directory of a hardhat project at the module root.
func GetArtifactsDir(moduleRoot string) string {
	if *testflag.ArtifactsFlag != "" {
		return *testflag.ArtifactsFlag
	}
	if dir := os.Getenv("FORK_ARTIFACTS"); dir != "" {
		return dir
	}
	return filepath.Join(moduleRoot, "artifacts")
}

func GetTestLogLevel() slog.Level {
	switch strings.ToLower(*testflag.LogLevelFlag) {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
