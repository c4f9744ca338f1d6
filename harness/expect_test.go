// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package harness

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/offchainlabs/forkharness/util/testhelpers"
)

func expectSession(strict bool, toleranceBips int64) *Session {
	config := DefaultConfig
	config.Assertions.Strict = strict
	config.Assertions.ToleranceBips = toleranceBips
	return newSession("expect", &config, nil, nil, nil, nil)
}

func balance(amount uint64) *TokenBalance {
	return &TokenBalance{Amount: uint256.NewInt(amount)}
}

func TestExpectStrict(t *testing.T) {
	s := expectSession(true, 1)
	require.NoError(t, s.ExpectDelta("exact", balance(10), balance(15), uint256.NewInt(5)))
	require.ErrorIs(t, s.ExpectDelta("short", balance(10), balance(14), uint256.NewInt(5)), ErrAssertion)
	require.ErrorIs(t, s.ExpectDelta("fell", balance(10), balance(9), uint256.NewInt(5)), ErrAssertion)
	require.NoError(t, s.ExpectDecrease("spent", balance(10), balance(4), uint256.NewInt(6)))
	require.ErrorIs(t, s.ExpectDecrease("rose", balance(10), balance(11), uint256.NewInt(1)), ErrAssertion)
	require.NoError(t, s.ExpectPositive("one", uint256.NewInt(1)))
	require.ErrorIs(t, s.ExpectPositive("zero", new(uint256.Int)), ErrAssertion)
	require.NoError(t, s.ExpectEqual("same", uint256.NewInt(3), uint256.NewInt(3)))
	require.Empty(t, s.Warnings())
}

func TestExpectWithinTolerance(t *testing.T) {
	s := expectSession(true, 1)
	fiveEther := new(uint256.Int).Mul(uint256.NewInt(5), uint256.NewInt(1e18))
	// 1 bip of 5 ether
	bound := uint256.NewInt(5e14)

	require.NoError(t, s.ExpectWithinTolerance("exact", fiveEther, fiveEther, nil))
	require.NoError(t, s.ExpectWithinTolerance("below", new(uint256.Int).Sub(fiveEther, bound), fiveEther, nil))
	require.NoError(t, s.ExpectWithinTolerance("above", new(uint256.Int).Add(fiveEther, bound), fiveEther, nil))
	tooLow := new(uint256.Int).Sub(fiveEther, new(uint256.Int).AddUint64(bound, 1))
	require.ErrorIs(t, s.ExpectWithinTolerance("too low", tooLow, fiveEther, nil), ErrAssertion)

	strictZero := expectSession(true, 0)
	require.ErrorIs(t, strictZero.ExpectWithinTolerance("rounded", uint256.NewInt(99), uint256.NewInt(100), nil), ErrAssertion)
	require.NoError(t, strictZero.ExpectWithinTolerance("rounded", uint256.NewInt(99), uint256.NewInt(100), uint256.NewInt(1)))
}

func TestExpectFailure(t *testing.T) {
	s := expectSession(true, 1)
	require.NoError(t, s.ExpectFailure("any", errors.New("boom"), nil))
	require.NoError(t, s.ExpectFailure("typed", ErrOutOfGas, ErrTransaction))
	require.ErrorIs(t, s.ExpectFailure("wrong", ErrDeployment, ErrTransaction), ErrAssertion)
	require.ErrorIs(t, s.ExpectFailure("succeeded", nil, ErrTransaction), ErrAssertion)

	reverted := fmt.Errorf("%w: execution reverted", ErrTransaction)
	require.NoError(t, s.ExpectFailure("revert", reverted, ErrTransaction, ErrOutOfGas, ErrInsufficientBalance))
	require.ErrorIs(t, s.ExpectFailure("gas", ErrOutOfGas, ErrTransaction, ErrOutOfGas, ErrInsufficientBalance), ErrAssertion)
	unfunded := fmt.Errorf("%w: %w", ErrInsufficientBalance, ErrImpersonatedSend)
	require.ErrorIs(t, s.ExpectFailure("refused", unfunded, ErrImpersonatedSend, ErrInsufficientBalance), ErrAssertion)
}

func TestExpectLenient(t *testing.T) {
	logs := testhelpers.InitTestLog(t, log.LevelInfo)
	s := expectSession(false, 1)
	require.NoError(t, s.ExpectPositive("zero", new(uint256.Int)))
	require.NoError(t, s.ExpectDelta("short", balance(10), balance(14), uint256.NewInt(5)))
	warnings := s.Warnings()
	require.Len(t, warnings, 2)
	require.Contains(t, warnings[0], "zero")
	require.Contains(t, warnings[1], "expected increase of 5, got 4")
	require.True(t, logs.WasLogged("expectation not met"))
}
