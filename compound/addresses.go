// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package compound

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Ethereum mainnet deployments at the default fork height.
var (
	CETH        = common.HexToAddress("0x4Ddc2D193948926D02f9B1fE9e1daa0718270ED5")
	CDAI        = common.HexToAddress("0x5d3a536E4D6DbD6114cc1Ead35777bAB948E3643")
	DAI         = common.HexToAddress("0x6b175474e89094c44da98b954eedeac495271d0f")
	Comptroller = common.HexToAddress("0x3d9819210A31b4961b30EF54bE2aeD79B9c9Cd3B")
	PriceFeed   = common.HexToAddress("0x922018674c12a7f0d394ebeef9b58f186cde13c1")

	// DAIHolder has held enough DAI and ETH at the fork height to fund the scenarios.
	DAIHolder = common.HexToAddress("0x85D5b6EECE5451e43B63a68f9aCD1b9A5a01AF36")
)

const (
	SupplyingContract = "SupplyingAssetsToCompound"
	BorrowingContract = "BorrowingAssetsFromCompound"
)

const (
	SupplyETHGas     = 1700000
	TokenTransferGas = 100000
	BorrowETHGas     = 3000000
)

// exchange rates are mantissas scaled by 1e18
var expScale = uint256.NewInt(1e18)

// roundingBound is how far balanceOfUnderlying can drift from the supplied
// amount because the cToken amount was truncated: one cToken unit at rate.
func roundingBound(rate *uint256.Int) *uint256.Int {
	bound := new(uint256.Int).Div(rate, expScale)
	return bound.AddUint64(bound, 1)
}
