// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package harness

import (
	"errors"
	"fmt"

	"github.com/offchainlabs/forkharness/artifacts"
	"github.com/offchainlabs/forkharness/forknode"
	"github.com/offchainlabs/forkharness/txutil"
)

// The sentinels returned by the lower layers are re-exported unchanged so callers
// only need this package for errors.Is checks.
var (
	ErrConfiguration       = artifacts.ErrConfiguration
	ErrReset               = forknode.ErrReset
	ErrImpersonation       = forknode.ErrImpersonation
	ErrImpersonatedSend    = forknode.ErrImpersonatedSend
	ErrTransaction         = txutil.ErrTransaction
	ErrOutOfGas            = txutil.ErrOutOfGas
	ErrInsufficientBalance = txutil.ErrInsufficientBalance
)

var (
	ErrDeployment = errors.New("deployment failed")
	ErrTimeout    = errors.New("scenario timed out")
	ErrAssertion  = errors.New("assertion failed")
)

// StepError records which step of which scenario failed. Err keeps the node's
// or contract's original message.
type StepError struct {
	Scenario string
	Step     string
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("scenario %s: step %s: %v", e.Scenario, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
