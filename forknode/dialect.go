// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package forknode

import (
	"fmt"
	"strings"
)

// Dialect names the cheat methods of one local node implementation.
type Dialect struct {
	Name              string
	Reset             string
	Impersonate       string
	StopImpersonating string
	SetBalance        string
	Mine              string
	Snapshot          string
	Revert            string
}

var Hardhat = Dialect{
	Name:              "hardhat",
	Reset:             "hardhat_reset",
	Impersonate:       "hardhat_impersonateAccount",
	StopImpersonating: "hardhat_stopImpersonatingAccount",
	SetBalance:        "hardhat_setBalance",
	Mine:              "hardhat_mine",
	Snapshot:          "evm_snapshot",
	Revert:            "evm_revert",
}

var Anvil = Dialect{
	Name:              "anvil",
	Reset:             "anvil_reset",
	Impersonate:       "anvil_impersonateAccount",
	StopImpersonating: "anvil_stopImpersonatingAccount",
	SetBalance:        "anvil_setBalance",
	Mine:              "anvil_mine",
	Snapshot:          "evm_snapshot",
	Revert:            "evm_revert",
}

var dialects = map[string]Dialect{
	Hardhat.Name: Hardhat,
	Anvil.Name:   Anvil,
}

func DialectByName(name string) (Dialect, error) {
	dialect, ok := dialects[strings.ToLower(name)]
	if !ok {
		return Dialect{}, fmt.Errorf("unknown node dialect %q (expected hardhat or anvil)", name)
	}
	return dialect, nil
}
