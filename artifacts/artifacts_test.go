// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/stretchr/testify/require"
)

const counterABI = `[
	{"inputs":[],"name":"increment","outputs":[],"stateMutability":"payable","type":"function"},
	{"inputs":[{"internalType":"address","name":"who","type":"address"}],"name":"count","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

var counterMeta = &bind.MetaData{ABI: counterABI}

func writeFile(t *testing.T, path string, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
}

func hardhatArtifact(bytecode string) string {
	return `{"_format":"hh-sol-artifact-1","contractName":"Counter","abi":` + counterABI + `,"bytecode":"` + bytecode + `","deployedBytecode":"0x"}`
}

func TestLoadHardhatArtifact(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "contracts", "Counter.sol", "Counter.json"), hardhatArtifact("0x6001600055"))
	writeFile(t, filepath.Join(root, "contracts", "Counter.sol", "Counter.dbg.json"), `{"buildInfo":"../../build-info/x.json"}`)
	writeFile(t, filepath.Join(root, "build-info", "Counter.json"), `{}`)

	store, err := NewStore(root, "0.8.8", 8)
	require.NoError(t, err)
	artifact, err := store.Load("Counter")
	require.NoError(t, err)
	require.Equal(t, FormatHardhat, artifact.Format)
	require.Equal(t, []byte{0x60, 0x01, 0x60, 0x00, 0x55}, artifact.Bytecode)
	require.NoError(t, artifact.Deployable())
	require.NoError(t, artifact.CheckAgainst(counterMeta))

	// served from cache even after the file disappears
	require.NoError(t, os.RemoveAll(filepath.Join(root, "contracts")))
	again, err := store.Load("Counter")
	require.NoError(t, err)
	require.Same(t, artifact, again)
}

func TestLoadFoundryArtifact(t *testing.T) {
	root := t.TempDir()
	foundry := `{"abi":` + counterABI + `,"bytecode":{"object":"0x6001600055","linkReferences":{}},` +
		`"metadata":{"compiler":{"version":"0.8.19+commit.7dd6d404"}}}`
	writeFile(t, filepath.Join(root, "Counter.sol", "Counter.json"), foundry)

	store, err := NewStore(root, "0.8.8", 8)
	require.NoError(t, err)
	artifact, err := store.Load("Counter")
	require.NoError(t, err)
	require.Equal(t, FormatFoundry, artifact.Format)
	require.Equal(t, "0.8.19+commit.7dd6d404", artifact.CompilerVersion)
	require.Len(t, artifact.Bytecode, 5)
}

func TestFoundryStringMetadata(t *testing.T) {
	data := `{"abi":[],"bytecode":{"object":"6001"},"metadata":"{\"compiler\":{\"version\":\"0.8.8+commit.dddeac2f\"}}"}`
	artifact, err := Parse("Empty", "Empty.json", []byte(data))
	require.NoError(t, err)
	require.Equal(t, "0.8.8+commit.dddeac2f", artifact.CompilerVersion)
	require.Equal(t, []byte{0x60, 0x01}, artifact.Bytecode)
}

func TestCheckAgainstDetectsMismatch(t *testing.T) {
	drifted := `[{"inputs":[{"internalType":"uint256","name":"by","type":"uint256"}],"name":"increment","outputs":[],"stateMutability":"payable","type":"function"},
		{"inputs":[{"internalType":"address","name":"who","type":"address"}],"name":"count","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}]`
	artifact, err := Parse("Counter", "Counter.json", []byte(`{"abi":`+drifted+`,"bytecode":"0x00"}`))
	require.NoError(t, err)
	require.ErrorIs(t, artifact.CheckAgainst(counterMeta), ErrConfiguration)

	missing, err := Parse("Counter", "Counter.json", []byte(`{"abi":[],"bytecode":"0x00"}`))
	require.NoError(t, err)
	require.ErrorIs(t, missing.CheckAgainst(counterMeta), ErrConfiguration)

	nonPayable := `[{"inputs":[],"name":"increment","outputs":[],"stateMutability":"nonpayable","type":"function"},
		{"inputs":[{"internalType":"address","name":"who","type":"address"}],"name":"count","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}]`
	artifact, err = Parse("Counter", "Counter.json", []byte(`{"abi":`+nonPayable+`,"bytecode":"0x00"}`))
	require.NoError(t, err)
	require.ErrorIs(t, artifact.CheckAgainst(counterMeta), ErrConfiguration)
}

func TestParseFailures(t *testing.T) {
	for name, data := range map[string]string{
		"not json":      `{"abi":`,
		"no abi":        `{"bytecode":"0x00"}`,
		"no bytecode":   `{"abi":[]}`,
		"unlinked":      `{"abi":[],"bytecode":"0x73__$abcdef$__"}`,
		"odd bytecode":  `{"abi":[],"bytecode":"0x123"}`,
		"abi not array": `{"abi":{},"bytecode":"0x00"}`,
	} {
		_, err := Parse("X", "X.json", []byte(data))
		require.ErrorIs(t, err, ErrConfiguration, name)
	}
	empty, err := Parse("IERC20", "IERC20.json", []byte(`{"abi":[],"bytecode":"0x"}`))
	require.NoError(t, err)
	require.ErrorIs(t, empty.Deployable(), ErrConfiguration)
}

func TestStoreMissingAndAmbiguous(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root, "", 8)
	require.NoError(t, err)
	_, err = store.Load("Nope")
	require.ErrorIs(t, err, ErrArtifactNotFound)

	writeFile(t, filepath.Join(root, "a", "Counter.json"), hardhatArtifact("0x00"))
	writeFile(t, filepath.Join(root, "b", "Counter.json"), hardhatArtifact("0x00"))
	_, err = store.Load("Counter")
	require.ErrorIs(t, err, ErrConfiguration)

	missingRoot, err := NewStore(filepath.Join(root, "absent"), "", 8)
	require.NoError(t, err)
	_, err = missingRoot.Load("Counter")
	require.ErrorIs(t, err, ErrConfiguration)
}
