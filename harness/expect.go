// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package harness

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/offchainlabs/forkharness/util/arbmath"
)

// mismatch fails the scenario in strict mode. Otherwise the mismatch is logged
// and kept in the result's warnings.
func (s *Session) mismatch(label string, format string, args ...interface{}) error {
	err := fmt.Errorf("%w: %s: %s", ErrAssertion, label, fmt.Sprintf(format, args...))
	if s.config.Assertions.Strict {
		return err
	}
	s.logger.Warn("expectation not met", "label", label, "err", err)
	s.warnings = append(s.warnings, err.Error())
	return nil
}

func (s *Session) Warnings() []string {
	return append([]string(nil), s.warnings...)
}

// ExpectDelta checks that a balance grew by exactly delta.
func (s *Session) ExpectDelta(label string, before, after *TokenBalance, delta *uint256.Int) error {
	if after.Amount.Lt(before.Amount) {
		return s.mismatch(label, "expected increase of %v, balance fell from %v to %v", delta, before.Amount, after.Amount)
	}
	got := new(uint256.Int).Sub(after.Amount, before.Amount)
	if !got.Eq(delta) {
		return s.mismatch(label, "expected increase of %v, got %v", delta, got)
	}
	return nil
}

// ExpectDecrease checks that a balance shrank by exactly delta.
func (s *Session) ExpectDecrease(label string, before, after *TokenBalance, delta *uint256.Int) error {
	if before.Amount.Lt(after.Amount) {
		return s.mismatch(label, "expected decrease of %v, balance rose from %v to %v", delta, before.Amount, after.Amount)
	}
	got := new(uint256.Int).Sub(before.Amount, after.Amount)
	if !got.Eq(delta) {
		return s.mismatch(label, "expected decrease of %v, got %v", delta, got)
	}
	return nil
}

func (s *Session) ExpectPositive(label string, value *uint256.Int) error {
	if value.IsZero() {
		return s.mismatch(label, "expected a positive value, got 0")
	}
	return nil
}

func (s *Session) ExpectEqual(label string, got, expected *uint256.Int) error {
	if !got.Eq(expected) {
		return s.mismatch(label, "expected %v, got %v", expected, got)
	}
	return nil
}

// ExpectWithinTolerance accepts got when it is within assertions.tolerance-bips
// of expected, or within absolute of it, whichever bound is larger.
func (s *Session) ExpectWithinTolerance(label string, got, expected, absolute *uint256.Int) error {
	bound := arbmath.U256MulByBips(expected, s.config.Assertions.Tolerance())
	if absolute != nil {
		bound = arbmath.U256Max(bound, absolute)
	}
	if !arbmath.U256Within(got, expected, bound) {
		return s.mismatch(label, "expected %v within %v, got %v (off by %v)", expected, bound, got, arbmath.U256AbsDiff(got, expected))
	}
	return nil
}

// ExpectFailure checks that err is set and, when target is given, matches it.
// An err matching any of excluded is a failure for some other reason.
func (s *Session) ExpectFailure(label string, err error, target error, excluded ...error) error {
	if err == nil {
		return s.mismatch(label, "expected failure, operation succeeded")
	}
	if target != nil && !errors.Is(err, target) {
		return s.mismatch(label, "expected %v, got %v", target, err)
	}
	for _, other := range excluded {
		if errors.Is(err, other) {
			return s.mismatch(label, "expected %v, got %v", target, err)
		}
	}
	s.logger.Info("expected failure observed", "label", label, "err", err)
	return nil
}
