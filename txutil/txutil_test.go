// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package txutil

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"

	"github.com/offchainlabs/forkharness/accounts"
)

// Runtime code SSTOREs 1 into slot 0, which does not fit in 30000 gas.
var sstoreInitCode = hexutil.MustDecode("0x656001600055006000526006601af3")

// Runtime code always reverts.
var revertInitCode = hexutil.MustDecode("0x6460006000fd6000526005601bf3")

type committingSender struct {
	backend *simulated.Backend
}

func (c *committingSender) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.backend.Client().SendTransaction(ctx, tx); err != nil {
		return err
	}
	c.backend.Commit()
	return nil
}

type env struct {
	backend *simulated.Backend
	client  simulated.Client
	signer  *accounts.KeyedSigner
}

func newEnv(t *testing.T) *env {
	t.Helper()
	key, err := accounts.ParseKey(accounts.DevKeys[0])
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(key.PublicKey)
	backend := simulated.NewBackend(types.GenesisAlloc{
		address: {Balance: new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18))},
	})
	t.Cleanup(func() { _ = backend.Close() })
	chainID, err := backend.Client().ChainID(context.Background())
	require.NoError(t, err)
	return &env{
		backend: backend,
		client:  backend.Client(),
		signer:  accounts.NewKeyedSigner(key, chainID, &committingSender{backend}),
	}
}

func (e *env) buildTx(t *testing.T, to *common.Address, gas uint64, value *big.Int, data []byte) *types.Transaction {
	t.Helper()
	ctx := context.Background()
	opts := e.signer.TransactOpts(ctx)
	nonce, err := e.client.PendingNonceAt(ctx, opts.From)
	require.NoError(t, err)
	head, err := e.client.HeaderByNumber(ctx, nil)
	require.NoError(t, err)
	tip := big.NewInt(1e9)
	feeCap := new(big.Int).Add(new(big.Int).Mul(head.BaseFee, big.NewInt(2)), tip)
	tx := types.NewTx(&types.DynamicFeeTx{
		Nonce:     nonce,
		To:        to,
		Gas:       gas,
		GasFeeCap: feeCap,
		GasTipCap: tip,
		Value:     value,
		Data:      data,
	})
	signed, err := opts.Signer(opts.From, tx)
	require.NoError(t, err)
	return signed
}

func (e *env) deploy(t *testing.T, initCode []byte) common.Address {
	t.Helper()
	tx := e.buildTx(t, nil, 200000, big.NewInt(0), initCode)
	receipt, err := SendAndWait(context.Background(), e.client, e.signer, tx)
	require.NoError(t, err)
	require.NotEqual(t, common.Address{}, receipt.ContractAddress)
	return receipt.ContractAddress
}

func TestOutOfGasIsDetailed(t *testing.T) {
	e := newEnv(t)
	contract := e.deploy(t, sstoreInitCode)

	tx := e.buildTx(t, &contract, 30000, big.NewInt(0), nil)
	receipt, err := SendAndWait(context.Background(), e.client, e.signer, tx)
	require.NotNil(t, receipt)
	require.Equal(t, types.ReceiptStatusFailed, receipt.Status)
	require.ErrorIs(t, err, ErrOutOfGas)
	require.ErrorIs(t, err, ErrTransaction)
	require.True(t, errors.Is(err, vm.ErrOutOfGas))

	tx = e.buildTx(t, &contract, 100000, big.NewInt(0), nil)
	_, err = SendAndWait(context.Background(), e.client, e.signer, tx)
	require.NoError(t, err)
}

func TestRevertIsNotOutOfGas(t *testing.T) {
	e := newEnv(t)
	contract := e.deploy(t, revertInitCode)

	tx := e.buildTx(t, &contract, 100000, big.NewInt(0), nil)
	_, err := SendAndWait(context.Background(), e.client, e.signer, tx)
	require.ErrorIs(t, err, ErrTransaction)
	require.NotErrorIs(t, err, ErrOutOfGas)
}

func TestInsufficientBalanceOnSend(t *testing.T) {
	e := newEnv(t)
	to := common.Address{0x42}
	tooMuch := new(big.Int).Mul(big.NewInt(1000), big.NewInt(1e18))
	tx := e.buildTx(t, &to, 21000, tooMuch, nil)
	_, err := SendAndWait(context.Background(), e.client, e.signer, tx)
	require.ErrorIs(t, err, ErrInsufficientBalance)
	require.ErrorIs(t, err, ErrTransaction)
}

func TestDetailTxErrorOnSuccess(t *testing.T) {
	e := newEnv(t)
	to := common.Address{0x43}
	tx := e.buildTx(t, &to, 21000, big.NewInt(1), nil)
	receipt, err := SendAndWait(context.Background(), e.client, e.signer, tx)
	require.NoError(t, err)
	require.NoError(t, DetailTxError(context.Background(), e.client, tx, e.signer.Address(), receipt))
	require.Error(t, DetailTxError(context.Background(), e.client, tx, e.signer.Address(), nil))
}

func TestWaitForReceiptHonoursContext(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, err := WaitForReceipt(ctx, e.client, common.Hash{1}, 10*time.Millisecond)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClassifySendError(t *testing.T) {
	require.NoError(t, ClassifySendError(nil))
	require.ErrorIs(t, ClassifySendError(errors.New("Transaction ran out of gas")), ErrOutOfGas)
	require.ErrorIs(t, ClassifySendError(errors.New("sender doesn't have enough funds to send tx")), ErrInsufficientBalance)
	err := ClassifySendError(errors.New("VM Exception while processing transaction: reverted with reason string 'nope'"))
	require.ErrorIs(t, err, ErrTransaction)
	require.NotErrorIs(t, err, ErrOutOfGas)
	require.Contains(t, err.Error(), "nope")
}

// receiptReader answers NotFound for the first pending lookups, then fails with
// err or returns receipt.
type receiptReader struct {
	pending int
	err     error
	receipt *types.Receipt
	calls   int
}

func (r *receiptReader) TransactionByHash(context.Context, common.Hash) (*types.Transaction, bool, error) {
	return nil, false, ethereum.NotFound
}

func (r *receiptReader) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	r.calls++
	if r.calls <= r.pending {
		return nil, ethereum.NotFound
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.receipt, nil
}

func TestWaitForReceiptPollsUntilMined(t *testing.T) {
	reader := &receiptReader{pending: 3, receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful}}
	receipt, err := WaitForReceipt(context.Background(), reader, common.Hash{1}, time.Millisecond)
	require.NoError(t, err)
	require.Same(t, reader.receipt, receipt)
	require.Equal(t, 4, reader.calls)
}

func TestWaitForReceiptReturnsNodeError(t *testing.T) {
	reader := &receiptReader{pending: 1, err: errors.New("dial tcp 127.0.0.1:8545: connect: connection refused")}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	hash := common.Hash{2}
	_, err := WaitForReceipt(ctx, reader, hash, time.Millisecond)
	require.ErrorIs(t, err, reader.err)
	require.ErrorContains(t, err, hash.Hex())
	require.NoError(t, ctx.Err())
	require.Equal(t, 2, reader.calls)
}
