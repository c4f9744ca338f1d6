// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package forknode

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// ImpersonatedAccount sends transactions as an address whose key nobody holds.
// It only works against a node that is impersonating the address, so it exists
// only in this package and never in production signing paths.
type ImpersonatedAccount struct {
	node    *Node
	address common.Address
}

func (a *ImpersonatedAccount) Address() common.Address {
	return a.address
}

// TransactOpts builds transactions without signing or sending them; Send submits them.
func (a *ImpersonatedAccount) TransactOpts(ctx context.Context) *bind.TransactOpts {
	return &bind.TransactOpts{
		From:    a.address,
		Context: ctx,
		NoSend:  true,
		Signer: func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if address != a.address {
				return nil, bind.ErrNotAuthorized
			}
			return tx, nil
		},
	}
}

type sendTxArgs struct {
	From                 common.Address  `json:"from"`
	To                   *common.Address `json:"to,omitempty"`
	Gas                  hexutil.Uint64  `json:"gas"`
	GasPrice             *hexutil.Big    `json:"gasPrice,omitempty"`
	MaxFeePerGas         *hexutil.Big    `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *hexutil.Big    `json:"maxPriorityFeePerGas,omitempty"`
	Value                *hexutil.Big    `json:"value"`
	Data                 hexutil.Bytes   `json:"data"`
	Nonce                hexutil.Uint64  `json:"nonce"`
}

func argsFromTx(from common.Address, tx *types.Transaction) sendTxArgs {
	args := sendTxArgs{
		From:  from,
		To:    tx.To(),
		Gas:   hexutil.Uint64(tx.Gas()),
		Value: (*hexutil.Big)(tx.Value()),
		Data:  tx.Data(),
		Nonce: hexutil.Uint64(tx.Nonce()),
	}
	if tx.Type() == types.LegacyTxType || tx.Type() == types.AccessListTxType {
		args.GasPrice = (*hexutil.Big)(tx.GasPrice())
	} else {
		args.MaxFeePerGas = (*hexutil.Big)(tx.GasFeeCap())
		args.MaxPriorityFeePerGas = (*hexutil.Big)(tx.GasTipCap())
	}
	return args
}

// Send submits tx through eth_sendTransaction and returns the hash the node assigned.
func (a *ImpersonatedAccount) Send(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	var hash common.Hash
	if err := a.node.rpc.CallContext(ctx, &hash, "eth_sendTransaction", argsFromTx(a.address, tx)); err != nil {
		return common.Hash{}, fmt.Errorf("%w: %v: %w", ErrImpersonatedSend, a.address, err)
	}
	return hash, nil
}

func (a *ImpersonatedAccount) Stop(ctx context.Context) error {
	return a.node.StopImpersonating(ctx, a.address)
}
