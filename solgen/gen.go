// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

// Command gen regenerates the contract bindings under solgen/go from compiled artifacts.
//
//	go run ./solgen [artifacts-dir]
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/offchainlabs/forkharness/artifacts"
)

// Bytecode is left out of every binding: harness contracts are deployed from
// the artifacts at run time and the Compound contracts already live on the fork.
var modules = map[string][]string{
	"compoundgen": {"CToken", "ERC20"},
	"harnessgen":  {"BorrowingAssetsFromCompound", "SupplyingAssetsToCompound"},
}

func main() {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		log.Fatal("bad path")
	}
	root := filepath.Dir(filename)
	artifactsDir := filepath.Join(root, "..", "artifacts")
	if len(os.Args) > 1 {
		artifactsDir = os.Args[1]
	}
	store, err := artifacts.NewStore(artifactsDir, "", 16)
	if err != nil {
		log.Fatal(err)
	}

	generated := 0
	for module, names := range modules {
		abis := make([]string, 0, len(names))
		bytecodes := make([]string, 0, len(names))
		for _, name := range names {
			artifact, err := store.Load(name)
			if err != nil {
				log.Fatal("could not load artifact for contract ", name, ": ", err)
			}
			abis = append(abis, artifact.RawABI)
			bytecodes = append(bytecodes, "")
		}
		code, err := bind.Bind(names, abis, bytecodes, nil, module, bind.LangGo, nil, nil)
		if err != nil {
			log.Fatal(err)
		}
		folder := filepath.Join(root, "go", module)
		if err := os.MkdirAll(folder, 0o755); err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(folder, module+".go"), []byte(code), 0o644); err != nil {
			log.Fatal(err)
		}
		generated += len(names)
	}
	fmt.Println("successfully generated", generated, "bindings")
}
