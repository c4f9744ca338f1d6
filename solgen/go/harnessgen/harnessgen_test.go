// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package harnessgen

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
)

func TestHarnessMethods(t *testing.T) {
	supply, err := SupplyingAssetsToCompoundMetaData.GetAbi()
	require.NoError(t, err)
	require.True(t, supply.Methods["SupplyETHtoCompound"].IsPayable())
	require.False(t, supply.Methods["SupplyERC20toCompound"].IsPayable())
	require.Equal(t, "RedeemERC20FromCompound(uint256,bool)", supply.Methods["RedeemERC20FromCompound"].Sig)

	borrow, err := BorrowingAssetsFromCompoundMetaData.GetAbi()
	require.NoError(t, err)
	require.True(t, borrow.Methods["BorrowERC20FromCompound"].IsPayable())
	require.Equal(t, "0x4babb9ea", hexutil.Encode(borrow.Methods["BorrowERC20FromCompound"].ID))
	require.Equal(t, "0x6e42272a", hexutil.Encode(borrow.Methods["BorrowETHFromCompound"].ID))
}
