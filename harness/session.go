// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

// Package harness drives scenarios against a forked chain: it resets the fork,
// hands each scenario a Session, and collects the results.
package harness

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/holiman/uint256"

	"github.com/offchainlabs/forkharness/accounts"
	"github.com/offchainlabs/forkharness/artifacts"
	"github.com/offchainlabs/forkharness/forknode"
	"github.com/offchainlabs/forkharness/solgen/go/compoundgen"
	"github.com/offchainlabs/forkharness/txutil"
	"github.com/offchainlabs/forkharness/util/arbmath"
)

// Node is the part of a forking node the harness controls directly.
// *forknode.Node implements it.
type Node interface {
	Reset(ctx context.Context, point forknode.ForkPoint) error
	Impersonate(ctx context.Context, address common.Address) (*forknode.ImpersonatedAccount, error)
	IsImpersonating(address common.Address) bool
	StopAllImpersonations(ctx context.Context) error
	SetBalance(ctx context.Context, address common.Address, wei *big.Int) error
	Mine(ctx context.Context, blocks uint64) error
	Snapshot(ctx context.Context) (*hexutil.Big, error)
	Revert(ctx context.Context, id *hexutil.Big) error
}

type DeployedContract struct {
	Name    string
	Address common.Address
	Tx      *types.Transaction
	Receipt *types.Receipt
}

// TokenBalance is a read-only snapshot. A zero Asset means ether.
type TokenBalance struct {
	Holder common.Address
	Asset  common.Address
	Amount *uint256.Int
	Block  uint64
}

type Observation struct {
	Label  string
	Holder common.Address
	Asset  common.Address
	Value  *uint256.Int
}

// TxOptions are the explicit value and gas of a protocol call. A zero GasLimit
// lets the node estimate it.
type TxOptions struct {
	Value    *big.Int
	GasLimit uint64
}

// Session is the handle a scenario uses to reach the forked chain. It is not
// safe for concurrent use; steps of a scenario run strictly in order.
type Session struct {
	scenario string
	config   *Config
	node     Node
	client   txutil.Backend
	store    *artifacts.Store
	signers  []accounts.Signer
	logger   log.Logger

	step         string
	failedStep   string
	observations []Observation
	warnings     []string
}

func newSession(scenario string, config *Config, node Node, client txutil.Backend, store *artifacts.Store, signers []accounts.Signer) *Session {
	return &Session{
		scenario: scenario,
		config:   config,
		node:     node,
		client:   client,
		store:    store,
		signers:  signers,
		logger:   log.New("scenario", scenario),
	}
}

func (s *Session) Scenario() string {
	return s.scenario
}

// Client is the chain backend, for binding constructors.
func (s *Session) Client() txutil.Backend {
	return s.client
}

func (s *Session) Config() *Config {
	return s.config
}

func (s *Session) Observations() []Observation {
	return append([]Observation(nil), s.observations...)
}

// Step runs fn as the named step of the scenario. A failure comes back as a
// *StepError naming this step, unless fn already returned one from a nested step.
func (s *Session) Step(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	outer := s.step
	s.step = name
	defer func() { s.step = outer }()
	s.logger.Debug("step started", "step", name)
	start := time.Now()
	err := fn(ctx)
	metrics.GetOrRegisterTimer("forkharness/step/"+name, nil).UpdateSince(start)
	if err == nil {
		s.logger.Info("step done", "step", name, "elapsed", time.Since(start))
		return nil
	}
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return err
	}
	s.failedStep = name
	s.logger.Warn("step failed", "step", name, "err", err)
	return &StepError{Scenario: s.scenario, Step: name, Err: err}
}

// Reset re-forks from the configured fork point. The runner already does this
// before every scenario.
func (s *Session) Reset(ctx context.Context) error {
	return s.node.Reset(ctx, s.config.Forking.ForkPoint())
}

// DefaultSigner returns the i-th configured or pre-funded dev account.
func (s *Session) DefaultSigner(i int) (accounts.Signer, error) {
	if i < 0 || i >= len(s.signers) {
		return nil, fmt.Errorf("%w: signer %d requested, %d configured", ErrConfiguration, i, len(s.signers))
	}
	return s.signers[i], nil
}

// Impersonate makes the node accept transactions from address. It is refused
// without forking, which is where a production network would be reached.
func (s *Session) Impersonate(ctx context.Context, address common.Address) (*forknode.ImpersonatedAccount, error) {
	if !s.config.Forking.Enabled {
		return nil, fmt.Errorf("%w: %v: forking is disabled", ErrImpersonation, address)
	}
	account, err := s.node.Impersonate(ctx, address)
	if err != nil {
		return nil, err
	}
	s.logger.Info("impersonating", "address", address)
	if err := s.fundImpersonated(ctx, address); err != nil {
		return nil, err
	}
	return account, nil
}

// fundImpersonated tops address up to forking.impersonated-funds ether. A balance
// already above it is left alone.
func (s *Session) fundImpersonated(ctx context.Context, address common.Address) error {
	if s.config.Forking.ImpersonatedFunds == 0 {
		return nil
	}
	target := arbmath.U256FromEther(s.config.Forking.ImpersonatedFunds)
	balance, err := s.ETHBalance(ctx, address)
	if err != nil {
		return err
	}
	if !balance.Amount.Lt(target) {
		return nil
	}
	if err := s.node.SetBalance(ctx, address, target.ToBig()); err != nil {
		return fmt.Errorf("%w: funding %v: %w", ErrImpersonation, address, err)
	}
	s.logger.Info("funded impersonated account", "address", address, "from", balance.Amount, "to", target)
	return nil
}

// Impersonating reports whether the node still accepts unsigned transactions from address.
func (s *Session) Impersonating(address common.Address) bool {
	return s.node.IsImpersonating(address)
}

// Snapshot marks the current chain state so Revert can return to it without re-forking.
func (s *Session) Snapshot(ctx context.Context) (*hexutil.Big, error) {
	id, err := s.node.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReset, err)
	}
	return id, nil
}

// Revert rolls the chain back to a snapshot. The snapshot is used up.
func (s *Session) Revert(ctx context.Context, id *hexutil.Big) error {
	if err := s.node.Revert(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrReset, err)
	}
	return nil
}

func (s *Session) Mine(ctx context.Context, blocks uint64) error {
	return s.node.Mine(ctx, blocks)
}

// Deploy submits the named artifact's bytecode from signer and waits for it to
// be mined. When meta is set, the artifact ABI must cover every method of the binding.
func (s *Session) Deploy(ctx context.Context, name string, meta *bind.MetaData, signer accounts.Signer, params ...interface{}) (*DeployedContract, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: %w: no artifact store", ErrDeployment, ErrConfiguration)
	}
	artifact, err := s.store.Load(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeployment, err)
	}
	if err := artifact.Deployable(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeployment, err)
	}
	if meta != nil {
		if err := artifact.CheckAgainst(meta); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDeployment, err)
		}
	}
	opts := signer.TransactOpts(ctx)
	_, tx, _, err := bind.DeployContract(opts, artifact.ABI, artifact.Bytecode, s.client, params...)
	if err != nil {
		return nil, fmt.Errorf("%w: building %s deployment: %w", ErrDeployment, name, txutil.ClassifySendError(err))
	}
	receipt, err := txutil.SendAndWait(ctx, s.client, signer, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDeployment, name, err)
	}
	address := receipt.ContractAddress
	if address == (common.Address{}) {
		address = crypto.CreateAddress(signer.Address(), tx.Nonce())
	}
	code, err := s.client.CodeAt(ctx, address, receipt.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: reading code of %s at %v: %w", ErrDeployment, name, address, err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: %s at %v has no code", ErrDeployment, name, address)
	}
	s.logger.Info("deployed", "contract", name, "address", address, "gasUsed", receipt.GasUsed)
	return &DeployedContract{Name: name, Address: address, Tx: tx, Receipt: receipt}, nil
}

// TransferETH sends amount wei from signer to the recipient with an explicit gas limit.
func (s *Session) TransferETH(ctx context.Context, from accounts.Signer, to common.Address, amount *uint256.Int, gasLimit uint64) (*types.Receipt, error) {
	balance, err := s.ETHBalance(ctx, from.Address())
	if err != nil {
		return nil, err
	}
	if balance.Amount.Lt(amount) {
		return nil, fmt.Errorf("%w: %v holds %v wei, transfer needs %v", ErrInsufficientBalance, from.Address(), balance.Amount, amount)
	}
	contract := bind.NewBoundContract(to, abi.ABI{}, s.client, s.client, s.client)
	opts := from.TransactOpts(ctx)
	opts.Value = amount.ToBig()
	opts.GasLimit = gasLimit
	tx, err := contract.Transfer(opts)
	if err != nil {
		return nil, txutil.ClassifySendError(err)
	}
	return txutil.SendAndWait(ctx, s.client, from, tx)
}

// TransferToken moves amount of an ERC20 token. The holder's balance is checked
// first; there is no fallback to another account.
func (s *Session) TransferToken(ctx context.Context, from accounts.Signer, token common.Address, to common.Address, amount *uint256.Int, gasLimit uint64) (*types.Receipt, error) {
	erc20, err := compoundgen.NewERC20(token, s.client)
	if err != nil {
		return nil, err
	}
	balance, err := s.TokenBalance(ctx, token, from.Address())
	if err != nil {
		return nil, err
	}
	if balance.Amount.Lt(amount) {
		return nil, fmt.Errorf("%w: %v holds %v of token %v, transfer needs %v", ErrInsufficientBalance, from.Address(), balance.Amount, token, amount)
	}
	opts := from.TransactOpts(ctx)
	opts.GasLimit = gasLimit
	tx, err := erc20.Transfer(opts, to, amount.ToBig())
	if err != nil {
		return nil, txutil.ClassifySendError(err)
	}
	return txutil.SendAndWait(ctx, s.client, from, tx)
}

// Transact builds a transaction with fn, typically a binding method, and submits it from signer.
func (s *Session) Transact(ctx context.Context, signer accounts.Signer, txOpts TxOptions, fn func(opts *bind.TransactOpts) (*types.Transaction, error)) (*types.Receipt, error) {
	opts := signer.TransactOpts(ctx)
	opts.Value = txOpts.Value
	opts.GasLimit = txOpts.GasLimit
	tx, err := fn(opts)
	if err != nil {
		return nil, txutil.ClassifySendError(err)
	}
	return txutil.SendAndWait(ctx, s.client, signer, tx)
}

func (s *Session) head(ctx context.Context) (*big.Int, error) {
	header, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("reading head: %w", err)
	}
	return header.Number, nil
}

func (s *Session) ETHBalance(ctx context.Context, holder common.Address) (*TokenBalance, error) {
	block, err := s.head(ctx)
	if err != nil {
		return nil, err
	}
	wei, err := s.client.BalanceAt(ctx, holder, block)
	if err != nil {
		return nil, fmt.Errorf("reading balance of %v: %w", holder, err)
	}
	amount, err := arbmath.BigToU256(wei)
	if err != nil {
		return nil, err
	}
	return &TokenBalance{Holder: holder, Amount: amount, Block: block.Uint64()}, nil
}

func (s *Session) TokenBalance(ctx context.Context, token common.Address, holder common.Address) (*TokenBalance, error) {
	block, err := s.head(ctx)
	if err != nil {
		return nil, err
	}
	caller, err := compoundgen.NewERC20Caller(token, s.client)
	if err != nil {
		return nil, err
	}
	raw, err := caller.BalanceOf(&bind.CallOpts{Context: ctx, BlockNumber: block}, holder)
	if err != nil {
		return nil, fmt.Errorf("reading balance of %v in token %v: %w", holder, token, err)
	}
	amount, err := arbmath.BigToU256(raw)
	if err != nil {
		return nil, err
	}
	return &TokenBalance{Holder: holder, Asset: token, Amount: amount, Block: block.Uint64()}, nil
}

// staticCall runs a state-changing cToken method through eth_call and returns its uint256 result.
func (s *Session) staticCall(ctx context.Context, cToken common.Address, method string, params ...interface{}) (*uint256.Int, error) {
	caller, err := compoundgen.NewCTokenCaller(cToken, s.client)
	if err != nil {
		return nil, err
	}
	raw := &compoundgen.CTokenCallerRaw{Contract: caller}
	var out []interface{}
	if err := raw.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, fmt.Errorf("static call %s on %v: %w", method, cToken, err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("static call %s on %v returned %d values", method, cToken, len(out))
	}
	value, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("static call %s on %v returned %T", method, cToken, out[0])
	}
	return arbmath.BigToU256(value)
}

// ExchangeRateCurrent is the cToken exchange rate after accruing interest, scaled by 1e18.
func (s *Session) ExchangeRateCurrent(ctx context.Context, cToken common.Address) (*uint256.Int, error) {
	return s.staticCall(ctx, cToken, "exchangeRateCurrent")
}

// BalanceOfUnderlying is holder's cToken position expressed in the underlying asset.
func (s *Session) BalanceOfUnderlying(ctx context.Context, cToken common.Address, holder common.Address) (*uint256.Int, error) {
	return s.staticCall(ctx, cToken, "balanceOfUnderlying", holder)
}

// Observe records a labelled value in the scenario result.
func (s *Session) Observe(label string, holder common.Address, asset common.Address, value *uint256.Int) {
	s.observations = append(s.observations, Observation{
		Label:  label,
		Holder: holder,
		Asset:  asset,
		Value:  new(uint256.Int).Set(value),
	})
	s.logger.Info("observed", "label", label, "holder", holder, "asset", asset, "value", value)
}

func (s *Session) ObserveBalance(label string, balance *TokenBalance) {
	s.Observe(label, balance.Holder, balance.Asset, balance.Amount)
}

func (s *Session) close(ctx context.Context) {
	if s.node == nil {
		return
	}
	if err := s.node.StopAllImpersonations(ctx); err != nil {
		s.logger.Warn("stopping impersonations", "err", err)
	}
}
