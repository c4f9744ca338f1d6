// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package forknode

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
)

// cheatAPI mimics the hardhat and anvil cheat namespaces.
type cheatAPI struct {
	mutex        sync.Mutex
	resets       []resetParams
	impersonated map[common.Address]bool
	balances     map[common.Address]*big.Int
	mined        uint64
	snapshots    uint64
}

func newCheatAPI() *cheatAPI {
	return &cheatAPI{
		impersonated: make(map[common.Address]bool),
		balances:     make(map[common.Address]*big.Int),
	}
}

func (c *cheatAPI) Reset(params *resetParams) (bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if params == nil {
		params = &resetParams{}
	}
	c.resets = append(c.resets, *params)
	c.impersonated = make(map[common.Address]bool)
	return true, nil
}

func (c *cheatAPI) ImpersonateAccount(address common.Address) (bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.impersonated[address] = true
	return true, nil
}

func (c *cheatAPI) StopImpersonatingAccount(address common.Address) (bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.impersonated, address)
	return true, nil
}

func (c *cheatAPI) SetBalance(address common.Address, balance hexutil.Big) (bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.balances[address] = balance.ToInt()
	return true, nil
}

func (c *cheatAPI) Mine(blocks hexutil.Uint64) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.mined += uint64(blocks)
	return nil
}

type evmAPI struct {
	cheat *cheatAPI
}

func (e *evmAPI) Snapshot() hexutil.Big {
	e.cheat.mutex.Lock()
	defer e.cheat.mutex.Unlock()
	e.cheat.snapshots++
	return hexutil.Big(*new(big.Int).SetUint64(e.cheat.snapshots))
}

func (e *evmAPI) Revert(id hexutil.Big) bool {
	e.cheat.mutex.Lock()
	defer e.cheat.mutex.Unlock()
	return id.ToInt().Uint64() <= e.cheat.snapshots
}

type ethAPI struct {
	cheat *cheatAPI
	sent  []sendTxArgs
	stall chan struct{}
}

// GetBalance answers 7 wei for every account, or blocks until stall is closed.
func (e *ethAPI) GetBalance(ctx context.Context, address common.Address, block string) (*hexutil.Big, error) {
	if e.stall != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-e.stall:
		}
	}
	return (*hexutil.Big)(big.NewInt(7)), nil
}

func (e *ethAPI) GetTransactionReceipt(hash common.Hash) (map[string]interface{}, error) {
	return nil, nil
}

func (e *ethAPI) ChainId() hexutil.Big {
	return hexutil.Big(*big.NewInt(31337))
}

func (e *ethAPI) SendTransaction(args sendTxArgs) (common.Hash, error) {
	e.cheat.mutex.Lock()
	defer e.cheat.mutex.Unlock()
	if !e.cheat.impersonated[args.From] {
		return common.Hash{}, errors.New("unknown account")
	}
	e.sent = append(e.sent, args)
	return common.BigToHash(big.NewInt(int64(len(e.sent)))), nil
}

type fakeNode struct {
	cheat *cheatAPI
	eth   *ethAPI
	node  *Node
}

func startFakeNode(t *testing.T, dialect Dialect, namespaces ...string) *fakeNode {
	t.Helper()
	config := DefaultConfig
	config.Dialect = dialect.Name
	return startFakeNodeWithConfig(t, config, namespaces...)
}

func startFakeNodeWithConfig(t *testing.T, config Config, namespaces ...string) *fakeNode {
	t.Helper()
	cheat := newCheatAPI()
	eth := &ethAPI{cheat: cheat}
	server := rpc.NewServer()
	for _, namespace := range namespaces {
		require.NoError(t, server.RegisterName(namespace, cheat))
	}
	require.NoError(t, server.RegisterName("evm", &evmAPI{cheat: cheat}))
	require.NoError(t, server.RegisterName("eth", eth))
	t.Cleanup(server.Stop)

	node, err := NewNode(func() *Config { return &config })
	require.NoError(t, err)
	require.NoError(t, node.Attach(context.Background(), rpc.DialInProc(server)))
	t.Cleanup(node.Close)
	return &fakeNode{cheat: cheat, eth: eth, node: node}
}

func TestResetParams(t *testing.T) {
	ctx := context.Background()
	for _, dialect := range []Dialect{Hardhat, Anvil} {
		fake := startFakeNode(t, dialect, dialect.Name)
		require.Equal(t, int64(31337), fake.node.ChainID().Int64())

		require.NoError(t, fake.node.Reset(ctx, ForkPoint{URL: "https://archive.example", BlockNumber: 16427933}))
		require.NoError(t, fake.node.Reset(ctx, ForkPoint{URL: "https://archive.example"}))
		require.NoError(t, fake.node.Reset(ctx, ForkPoint{}))

		require.Len(t, fake.cheat.resets, 3)
		first := fake.cheat.resets[0].Forking
		require.NotNil(t, first)
		require.Equal(t, "https://archive.example", first.JSONRPCURL)
		require.Equal(t, uint64(16427933), *first.BlockNumber)
		require.Nil(t, fake.cheat.resets[1].Forking.BlockNumber)
		require.Nil(t, fake.cheat.resets[2].Forking)
	}
}

func TestResetUnsupported(t *testing.T) {
	fake := startFakeNode(t, Hardhat)
	err := fake.node.Reset(context.Background(), ForkPoint{URL: "https://archive.example"})
	require.ErrorIs(t, err, ErrReset)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestImpersonationLifecycle(t *testing.T) {
	ctx := context.Background()
	fake := startFakeNode(t, Anvil, "anvil")
	holder := common.HexToAddress("0x85D5b6EECE5451e43B63a68f9aCD1b9A5a01AF36")

	account, err := fake.node.Impersonate(ctx, holder)
	require.NoError(t, err)
	require.Equal(t, holder, account.Address())
	require.True(t, fake.node.IsImpersonating(holder))

	to := common.HexToAddress("0x6b175474e89094c44da98b954eedeac495271d0f")
	tx := types.NewTx(&types.DynamicFeeTx{
		Nonce:     3,
		To:        &to,
		Gas:       100000,
		GasFeeCap: big.NewInt(2e9),
		GasTipCap: big.NewInt(1e9),
		Value:     big.NewInt(0),
		Data:      []byte{0xa9, 0x05, 0x9c, 0xbb},
	})
	hash, err := account.Send(ctx, tx)
	require.NoError(t, err)
	require.NotEqual(t, common.Hash{}, hash)
	sent := fake.eth.sent[0]
	require.Equal(t, holder, sent.From)
	require.Equal(t, hexutil.Uint64(3), sent.Nonce)
	require.Equal(t, big.NewInt(2e9), sent.MaxFeePerGas.ToInt())
	require.Nil(t, sent.GasPrice)

	require.NoError(t, fake.node.StopAllImpersonations(ctx))
	require.False(t, fake.node.IsImpersonating(holder))
	_, err = account.Send(ctx, tx)
	require.ErrorIs(t, err, ErrImpersonatedSend)
	require.ErrorContains(t, err, "unknown account")
}

func TestImpersonationUnsupported(t *testing.T) {
	fake := startFakeNode(t, Hardhat)
	_, err := fake.node.Impersonate(context.Background(), common.Address{1})
	require.ErrorIs(t, err, ErrImpersonation)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestResetClearsImpersonation(t *testing.T) {
	ctx := context.Background()
	fake := startFakeNode(t, Hardhat, "hardhat")
	_, err := fake.node.Impersonate(ctx, common.Address{2})
	require.NoError(t, err)
	require.NoError(t, fake.node.Reset(ctx, ForkPoint{URL: "https://archive.example"}))
	require.False(t, fake.node.IsImpersonating(common.Address{2}))
}

func TestCheats(t *testing.T) {
	ctx := context.Background()
	fake := startFakeNode(t, Hardhat, "hardhat")
	address := common.Address{3}
	require.NoError(t, fake.node.SetBalance(ctx, address, big.NewInt(1e18)))
	require.Equal(t, big.NewInt(1e18), fake.cheat.balances[address])
	require.NoError(t, fake.node.Mine(ctx, 5))
	require.Equal(t, uint64(5), fake.cheat.mined)

	id, err := fake.node.Snapshot(ctx)
	require.NoError(t, err)
	require.NoError(t, fake.node.Revert(ctx, id))
	require.Error(t, fake.node.Revert(ctx, (*hexutil.Big)(big.NewInt(99))))
}

func TestClientReadsThroughNodeTimeout(t *testing.T) {
	config := DefaultConfig
	config.Timeout = 50 * time.Millisecond
	fake := startFakeNodeWithConfig(t, config, "hardhat")
	ctx := context.Background()
	client := fake.node.Client()

	balance, err := client.BalanceAt(ctx, common.Address{4}, nil)
	require.NoError(t, err)
	require.Equal(t, int64(7), balance.Int64())

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	fake.eth.stall = release
	start := time.Now()
	_, err = client.BalanceAt(ctx, common.Address{4}, nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), 10*time.Second)
}

func TestClientMissingReceipt(t *testing.T) {
	fake := startFakeNode(t, Hardhat, "hardhat")
	_, err := fake.node.Client().TransactionReceipt(context.Background(), common.Hash{1})
	require.ErrorIs(t, err, ethereum.NotFound)
}

func TestBlockNumArgs(t *testing.T) {
	require.Equal(t, "latest", toBlockNumArg(nil))
	require.Equal(t, "0xfaab9d", toBlockNumArg(big.NewInt(16427933)))
	require.Equal(t, "pending", toBlockNumArg(big.NewInt(int64(rpc.PendingBlockNumber))))
}

func TestDialectByName(t *testing.T) {
	dialect, err := DialectByName("ANVIL")
	require.NoError(t, err)
	require.Equal(t, "anvil_reset", dialect.Reset)
	_, err = DialectByName("ganache")
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	config := DefaultConfig
	require.NoError(t, config.Validate())
	config.Anvil.Enable = true
	require.Error(t, config.Validate())
	config.Dialect = Anvil.Name
	require.NoError(t, config.Validate())
	config.Anvil.Port = 0
	require.Error(t, config.Validate())
}

func TestAnvilArgs(t *testing.T) {
	config := DefaultAnvilConfig
	config.Port = 8686
	config.ExtraArgs = []string{"--steps-tracing"}
	anvil, err := NewAnvilLocal(&config, ForkPoint{URL: "https://archive.example", BlockNumber: 16427933})
	require.NoError(t, err)
	require.Equal(t, []string{
		"--port=8686",
		"--fork-url=https://archive.example",
		"--fork-block-number=16427933",
		"--steps-tracing",
	}, anvil.args())
	require.Equal(t, "http://127.0.0.1:8686", anvil.URL())
}

func TestWaitReadyStopsWhenProcessExits(t *testing.T) {
	exited := make(chan struct{})
	close(exited)
	err := WaitReady(context.Background(), "http://127.0.0.1:1", time.Minute, exited)
	require.Error(t, err)
}
