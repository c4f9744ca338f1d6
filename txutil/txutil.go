// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

// Package txutil submits transactions, waits for their receipts and explains failures.
package txutil

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"

	"github.com/offchainlabs/forkharness/accounts"
)

var (
	ErrTransaction         = errors.New("transaction failed")
	ErrOutOfGas            = fmt.Errorf("%w: %w", ErrTransaction, vm.ErrOutOfGas)
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrTransaction)
)

var (
	txSentCounter   = metrics.NewRegisteredCounter("forkharness/tx/sent", nil)
	txFailedCounter = metrics.NewRegisteredCounter("forkharness/tx/failed", nil)
	txWaitTimer     = metrics.NewRegisteredTimer("forkharness/tx/wait", nil)
)

const DefaultPollInterval = 100 * time.Millisecond

// Backend is the chain access needed to build, submit and explain transactions.
type Backend interface {
	bind.ContractBackend
	ethereum.TransactionReader
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

type headSubscriber interface {
	SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)
}

// WaitForReceipt waits for hash to be mined. It listens for new heads when the
// client supports subscriptions and otherwise polls every pollInterval.
func WaitForReceipt(ctx context.Context, client ethereum.TransactionReader, hash common.Hash, pollInterval time.Duration) (*types.Receipt, error) {
	start := time.Now()
	defer txWaitTimer.UpdateSince(start)
	if subscriber, ok := client.(headSubscriber); ok {
		heads := make(chan *types.Header, 1)
		sub, err := subscriber.SubscribeNewHead(ctx, heads)
		if err == nil {
			defer sub.Unsubscribe()
			return waitWithHeads(ctx, client, hash, heads, sub, pollInterval)
		}
	}
	return pollForReceipt(ctx, client, hash, pollInterval)
}

func waitWithHeads(ctx context.Context, client ethereum.TransactionReader, hash common.Hash, heads <-chan *types.Header, sub ethereum.Subscription, pollInterval time.Duration) (*types.Receipt, error) {
	// heads can be missed between the first lookup and the subscription, so poll as well
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		receipt, err := client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !receiptPending(err) {
			return nil, fmt.Errorf("reading receipt of %v: %w", hash, err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case err := <-sub.Err():
			if err != nil {
				return nil, fmt.Errorf("head subscription error while waiting for tx: %w", err)
			}
			return pollForReceipt(ctx, client, hash, pollInterval)
		case <-heads:
		case <-ticker.C:
		}
	}
}

func pollForReceipt(ctx context.Context, client ethereum.TransactionReader, hash common.Hash, pollInterval time.Duration) (*types.Receipt, error) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		receipt, err := client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !receiptPending(err) {
			return nil, fmt.Errorf("reading receipt of %v: %w", hash, err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// receiptPending reports whether err only means the receipt is not available yet.
func receiptPending(err error) bool {
	return errors.Is(err, ethereum.NotFound) || strings.Contains(err.Error(), "transaction indexing is in progress")
}

// SendAndWait submits tx through signer and returns its receipt, detailing any failure.
func SendAndWait(ctx context.Context, client Backend, signer accounts.Signer, tx *types.Transaction) (*types.Receipt, error) {
	txSentCounter.Inc(1)
	hash, err := signer.Send(ctx, tx)
	if err != nil {
		txFailedCounter.Inc(1)
		return nil, ClassifySendError(err)
	}
	receipt, err := WaitForReceipt(ctx, client, hash, DefaultPollInterval)
	if err != nil {
		return nil, fmt.Errorf("waiting for tx %v: %w", hash, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		txFailedCounter.Inc(1)
		return receipt, DetailTxError(ctx, client, tx, signer.Address(), receipt)
	}
	log.Debug("transaction mined", "hash", hash, "from", signer.Address(), "gasUsed", receipt.GasUsed, "block", receipt.BlockNumber)
	return receipt, nil
}

// ClassifySendError maps node rejections at submission time onto the package sentinels.
// Nodes that mine failing transactions eagerly (hardhat) report the failure here.
func ClassifySendError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient funds"),
		strings.Contains(msg, "doesn't have enough funds"),
		strings.Contains(msg, "transfer amount exceeds balance"):
		return fmt.Errorf("%w: %w", ErrInsufficientBalance, err)
	case strings.Contains(msg, "out of gas"),
		strings.Contains(msg, "intrinsic gas too low"):
		return fmt.Errorf("%w: %w", ErrOutOfGas, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransaction, err)
	}
}

func SendTxAsCall(ctx context.Context, client bind.ContractCaller, tx *types.Transaction, from common.Address, blockNum *big.Int, unlimitedGas bool) ([]byte, error) {
	var gas uint64
	if !unlimitedGas {
		gas = tx.Gas()
	}
	callMsg := ethereum.CallMsg{
		From:       from,
		To:         tx.To(),
		Gas:        gas,
		GasFeeCap:  tx.GasFeeCap(),
		GasTipCap:  tx.GasTipCap(),
		Value:      tx.Value(),
		Data:       tx.Data(),
		AccessList: tx.AccessList(),
	}
	if tx.Type() == types.LegacyTxType {
		callMsg.GasPrice = tx.GasPrice()
		callMsg.GasFeeCap = nil
		callMsg.GasTipCap = nil
	}
	return client.CallContract(ctx, callMsg, blockNum)
}

// DetailTxError re-executes a failed transaction as a call against the state it
// started from to tell out-of-gas apart from a revert.
func DetailTxError(ctx context.Context, client bind.ContractCaller, tx *types.Transaction, from common.Address, receipt *types.Receipt) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if receipt == nil {
		return errors.New("expected receipt")
	}
	if receipt.Status == types.ReceiptStatusSuccessful {
		return nil
	}
	var parent *big.Int
	if receipt.BlockNumber != nil && receipt.BlockNumber.Sign() > 0 {
		parent = new(big.Int).Sub(receipt.BlockNumber, common.Big1)
	}
	_, err := SendTxAsCall(ctx, client, tx, from, parent, false)
	if err == nil {
		return fmt.Errorf("%w: tx %v failed but call succeeded", ErrTransaction, receipt.TxHash)
	}
	callErr := err
	if _, err := SendTxAsCall(ctx, client, tx, from, parent, true); err == nil {
		return fmt.Errorf("%w: tx %v used %d of %d gas", ErrOutOfGas, receipt.TxHash, receipt.GasUsed, tx.Gas())
	}
	if strings.Contains(strings.ToLower(callErr.Error()), "insufficient") {
		return fmt.Errorf("%w: tx %v: %w", ErrInsufficientBalance, receipt.TxHash, callErr)
	}
	return fmt.Errorf("%w: tx %v: %w", ErrTransaction, receipt.TxHash, callErr)
}
