// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package compoundgen

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
)

func TestSelectors(t *testing.T) {
	erc20, err := ERC20MetaData.GetAbi()
	require.NoError(t, err)
	ctoken, err := CTokenMetaData.GetAbi()
	require.NoError(t, err)
	for name, id := range map[string]string{
		"balanceOf": "0x70a08231",
		"transfer":  "0xa9059cbb",
		"approve":   "0x095ea7b3",
		"allowance": "0xdd62ed3e",
		"decimals":  "0x313ce567",
		"symbol":    "0x95d89b41",
	} {
		require.Equal(t, id, hexutil.Encode(erc20.Methods[name].ID), name)
	}
	for name, id := range map[string]string{
		"balanceOf":           "0x70a08231",
		"exchangeRateCurrent": "0xbd6d894d",
		"exchangeRateStored":  "0x182df0f5",
		"balanceOfUnderlying": "0x3af9e669",
	} {
		require.Equal(t, id, hexutil.Encode(ctoken.Methods[name].ID), name)
	}
	require.False(t, ctoken.Methods["exchangeRateCurrent"].IsConstant())
}
