// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package arbmath

import (
	"github.com/holiman/uint256"
)

type Bips int64

const OneInBips Bips = 10000

// U256MulByBips returns value * bips / 10000 rounded down. Negative bips are treated as zero.
func U256MulByBips(value *uint256.Int, bips Bips) *uint256.Int {
	if bips <= 0 {
		return new(uint256.Int)
	}
	res, overflow := new(uint256.Int).MulDivOverflow(value, uint256.NewInt(uint64(bips)), uint256.NewInt(uint64(OneInBips)))
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return res
}
