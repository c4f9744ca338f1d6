// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package arbmath

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

var ErrNotUint256 = errors.New("value does not fit in uint256")

// BigToU256 converts a big integer into a uint256, rejecting negative and oversized values.
func BigToU256(value *big.Int) (*uint256.Int, error) {
	if value == nil {
		return new(uint256.Int), nil
	}
	if value.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative value %v", ErrNotUint256, value)
	}
	res, overflow := uint256.FromBig(value)
	if overflow {
		return nil, fmt.Errorf("%w: %v", ErrNotUint256, value)
	}
	return res, nil
}

func U256AbsDiff(a, b *uint256.Int) *uint256.Int {
	if a.Lt(b) {
		return new(uint256.Int).Sub(b, a)
	}
	return new(uint256.Int).Sub(a, b)
}

// U256Within reports whether a and b differ by at most bound.
func U256Within(a, b, bound *uint256.Int) bool {
	return !U256AbsDiff(a, b).Gt(bound)
}

func U256Max(first, second *uint256.Int) *uint256.Int {
	if first.Lt(second) {
		return second
	}
	return first
}

// U256FromEther returns the given amount of ether expressed in wei.
func U256FromEther(ether uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(ether), uint256.NewInt(1e18))
}
