// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package forknode

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/offchainlabs/forkharness/util/rpcclient"
)

// ForkPoint is the upstream state a fork is pinned to. An empty URL resets to a
// non-forked local chain and a zero BlockNumber follows the upstream head.
type ForkPoint struct {
	URL         string
	BlockNumber uint64
}

func (p ForkPoint) String() string {
	if p.URL == "" {
		return "local"
	}
	if p.BlockNumber == 0 {
		return "latest"
	}
	return fmt.Sprintf("#%d", p.BlockNumber)
}

type forkingParams struct {
	JSONRPCURL  string  `json:"jsonRpcUrl"`
	BlockNumber *uint64 `json:"blockNumber,omitempty"`
}

type resetParams struct {
	Forking *forkingParams `json:"forking,omitempty"`
}

// Node is a local hardhat or anvil node reached over JSON-RPC.
type Node struct {
	config  ConfigFetcher
	dialect Dialect
	rpc     *rpcclient.RpcClient
	client  *Client

	mutex        sync.Mutex
	chainID      *big.Int
	impersonated map[common.Address]struct{}
}

func NewNode(config ConfigFetcher) (*Node, error) {
	dialect, err := DialectByName(config().Dialect)
	if err != nil {
		return nil, err
	}
	rpcClient := rpcclient.NewRpcClient(func() *rpcclient.ClientConfig { return &config().ClientConfig })
	return &Node{
		config:       config,
		dialect:      dialect,
		rpc:          rpcClient,
		client:       &Client{rpc: rpcClient},
		impersonated: make(map[common.Address]struct{}),
	}, nil
}

// Start dials node.url and reads the chain id.
func (n *Node) Start(ctx context.Context) error {
	if err := n.rpc.Start(ctx); err != nil {
		return fmt.Errorf("connecting to %s node at %s: %w", n.dialect.Name, n.config().URL, err)
	}
	return n.init(ctx)
}

// Attach uses an existing connection instead of dialing.
func (n *Node) Attach(ctx context.Context, client *rpc.Client) error {
	n.rpc.Attach(client)
	return n.init(ctx)
}

func (n *Node) init(ctx context.Context) error {
	if err := n.refreshChainID(ctx); err != nil {
		return err
	}
	log.Info("connected to node", "dialect", n.dialect.Name, "chainId", n.ChainID())
	return nil
}

func (n *Node) refreshChainID(ctx context.Context) error {
	var chainID hexutil.Big
	if err := n.rpc.CallContext(ctx, &chainID, "eth_chainId"); err != nil {
		return fmt.Errorf("reading chain id: %w", err)
	}
	n.mutex.Lock()
	n.chainID = chainID.ToInt()
	n.mutex.Unlock()
	return nil
}

func (n *Node) Close() {
	n.rpc.Close()
}

func (n *Node) Dialect() Dialect {
	return n.dialect
}

// Client is the chain backend for bindings, signers and the harness.
func (n *Node) Client() *Client {
	return n.client
}

func (n *Node) ChainID() *big.Int {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	if n.chainID == nil {
		return nil
	}
	return new(big.Int).Set(n.chainID)
}

// Reset discards all local state and re-forks from point. Impersonations do not survive a reset.
func (n *Node) Reset(ctx context.Context, point ForkPoint) error {
	var params resetParams
	if point.URL != "" {
		params.Forking = &forkingParams{JSONRPCURL: point.URL}
		if point.BlockNumber != 0 {
			block := point.BlockNumber
			params.Forking.BlockNumber = &block
		}
	}
	var ok interface{}
	if err := n.rpc.CallContext(ctx, &ok, n.dialect.Reset, params); err != nil {
		if isMethodNotFound(err) {
			return fmt.Errorf("%w: %w: %s (is the node a forking %s network?)", ErrReset, ErrUnsupported, n.dialect.Reset, n.dialect.Name)
		}
		return fmt.Errorf("%w: %s to %s: %w", ErrReset, n.dialect.Reset, point, err)
	}
	n.mutex.Lock()
	n.impersonated = make(map[common.Address]struct{})
	n.mutex.Unlock()
	if err := n.refreshChainID(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrReset, err)
	}
	log.Info("fork reset", "dialect", n.dialect.Name, "fork", point)
	return nil
}

// Impersonate lets the node accept unsigned transactions from address.
func (n *Node) Impersonate(ctx context.Context, address common.Address) (*ImpersonatedAccount, error) {
	if err := n.rpc.CallContext(ctx, nil, n.dialect.Impersonate, address); err != nil {
		if isMethodNotFound(err) {
			return nil, fmt.Errorf("%w: %w: %s", ErrImpersonation, ErrUnsupported, n.dialect.Impersonate)
		}
		return nil, fmt.Errorf("%w: %v: %w", ErrImpersonation, address, err)
	}
	n.mutex.Lock()
	n.impersonated[address] = struct{}{}
	n.mutex.Unlock()
	log.Debug("impersonating account", "address", address)
	return &ImpersonatedAccount{node: n, address: address}, nil
}

func (n *Node) StopImpersonating(ctx context.Context, address common.Address) error {
	if err := n.rpc.CallContext(ctx, nil, n.dialect.StopImpersonating, address); err != nil {
		return fmt.Errorf("%w: stopping %v: %w", ErrImpersonation, address, err)
	}
	n.mutex.Lock()
	delete(n.impersonated, address)
	n.mutex.Unlock()
	return nil
}

// StopAllImpersonations ends every impersonation started through this node.
func (n *Node) StopAllImpersonations(ctx context.Context) error {
	n.mutex.Lock()
	addresses := make([]common.Address, 0, len(n.impersonated))
	for address := range n.impersonated {
		addresses = append(addresses, address)
	}
	n.mutex.Unlock()
	for _, address := range addresses {
		if err := n.StopImpersonating(ctx, address); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) IsImpersonating(address common.Address) bool {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	_, ok := n.impersonated[address]
	return ok
}

func (n *Node) SetBalance(ctx context.Context, address common.Address, wei *big.Int) error {
	if err := n.rpc.CallContext(ctx, nil, n.dialect.SetBalance, address, (*hexutil.Big)(wei)); err != nil {
		return n.cheatError(n.dialect.SetBalance, err)
	}
	return nil
}

func (n *Node) Mine(ctx context.Context, blocks uint64) error {
	if err := n.rpc.CallContext(ctx, nil, n.dialect.Mine, hexutil.Uint64(blocks)); err != nil {
		return n.cheatError(n.dialect.Mine, err)
	}
	return nil
}

// Snapshot returns an id that Revert can roll the chain back to.
func (n *Node) Snapshot(ctx context.Context) (*hexutil.Big, error) {
	var id hexutil.Big
	if err := n.rpc.CallContext(ctx, &id, n.dialect.Snapshot); err != nil {
		return nil, n.cheatError(n.dialect.Snapshot, err)
	}
	return &id, nil
}

func (n *Node) Revert(ctx context.Context, id *hexutil.Big) error {
	var reverted bool
	if err := n.rpc.CallContext(ctx, &reverted, n.dialect.Revert, id); err != nil {
		return n.cheatError(n.dialect.Revert, err)
	}
	if !reverted {
		return fmt.Errorf("%s: snapshot %v was not reverted", n.dialect.Revert, id)
	}
	return nil
}

func (n *Node) cheatError(method string, err error) error {
	if isMethodNotFound(err) {
		return fmt.Errorf("%w: %s", ErrUnsupported, method)
	}
	return fmt.Errorf("%s: %w", method, err)
}
