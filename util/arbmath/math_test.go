// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package arbmath

import (
	"errors"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

func TestBigToU256(t *testing.T) {
	v, err := BigToU256(big.NewInt(42))
	if err != nil {
		t.Fatal(err)
	}
	if v.Uint64() != 42 {
		t.Errorf("expected 42, got %v", v)
	}
	if _, err := BigToU256(big.NewInt(-1)); !errors.Is(err, ErrNotUint256) {
		t.Errorf("expected ErrNotUint256 for negative input, got %v", err)
	}
	tooBig := new(big.Int).Lsh(big.NewInt(1), 256)
	if _, err := BigToU256(tooBig); !errors.Is(err, ErrNotUint256) {
		t.Errorf("expected ErrNotUint256 for 2^256, got %v", err)
	}
	zero, err := BigToU256(nil)
	if err != nil || !zero.IsZero() {
		t.Errorf("expected zero for nil input, got %v %v", zero, err)
	}
}

func TestU256Within(t *testing.T) {
	five := U256FromEther(5)
	almost := new(uint256.Int).Sub(five, uint256.NewInt(3))
	if !U256Within(five, almost, uint256.NewInt(3)) {
		t.Error("expected values 3 wei apart to be within 3 wei")
	}
	if U256Within(almost, five, uint256.NewInt(2)) {
		t.Error("expected values 3 wei apart not to be within 2 wei")
	}
}

func TestU256MulByBips(t *testing.T) {
	got := U256MulByBips(U256FromEther(5), 1)
	if got.Uint64() != 5e14 {
		t.Errorf("expected 5e14, got %v", got)
	}
	if !U256MulByBips(U256FromEther(5), -3).IsZero() {
		t.Error("expected zero for negative bips")
	}
	if U256MulByBips(uint256.NewInt(100), 5000).Uint64() != 50 {
		t.Error("expected half")
	}
}
