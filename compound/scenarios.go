// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

// Package compound holds the scenarios that exercise the supplying and borrowing
// contracts against Compound on a mainnet fork.
package compound

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/offchainlabs/forkharness/accounts"
	"github.com/offchainlabs/forkharness/harness"
	"github.com/offchainlabs/forkharness/solgen/go/harnessgen"
	"github.com/offchainlabs/forkharness/util/arbmath"
)

// Scenarios returns every scenario in the order they are run by default.
func Scenarios() []harness.Scenario {
	return []harness.Scenario{
		{Name: "supply-eth", Description: "supply 5 ETH and receive cETH", Run: SupplyETH},
		{Name: "supply-erc20", Description: "supply 1 DAI taken from a holder, then redeem it", Run: SupplyERC20},
		{Name: "borrow-erc20", Description: "borrow DAI against 1 ETH of collateral", Run: BorrowERC20},
		{Name: "borrow-erc20-undercollateralized", Description: "borrowing DAI against dust collateral fails", Run: BorrowERC20Undercollateralized},
		{Name: "borrow-eth", Description: "borrow ETH against 5000 DAI of collateral", Run: BorrowETH},
		{Name: "reset-idempotent", Description: "a snapshot revert and two resets in a row give identical balances", Run: ResetIdempotent},
		{Name: "transfer-conservation", Description: "a DAI transfer moves exactly the amount", Run: TransferConservation},
		{Name: "deploy-distinct", Description: "two deployments get distinct, empty addresses", Run: DeployDistinct},
		{Name: "impersonation-scope", Description: "impersonation only signs inside a forked session", Run: ImpersonationScope},
	}
}

func deploy(ctx context.Context, s *harness.Session, name string, meta *bind.MetaData) (accounts.Signer, *harness.DeployedContract, error) {
	var signer accounts.Signer
	var contract *harness.DeployedContract
	err := s.Step(ctx, "deploy "+name, func(ctx context.Context) error {
		var err error
		signer, err = s.DefaultSigner(0)
		if err != nil {
			return err
		}
		contract, err = s.Deploy(ctx, name, meta, signer)
		return err
	})
	return signer, contract, err
}

func deploySupplying(ctx context.Context, s *harness.Session) (accounts.Signer, *harness.DeployedContract, *harnessgen.SupplyingAssetsToCompoundTransactor, error) {
	signer, contract, err := deploy(ctx, s, SupplyingContract, harnessgen.SupplyingAssetsToCompoundMetaData)
	if err != nil {
		return nil, nil, nil, err
	}
	binding, err := harnessgen.NewSupplyingAssetsToCompoundTransactor(contract.Address, s.Client())
	if err != nil {
		return nil, nil, nil, err
	}
	return signer, contract, binding, nil
}

func deployBorrowing(ctx context.Context, s *harness.Session) (accounts.Signer, *harness.DeployedContract, *harnessgen.BorrowingAssetsFromCompoundTransactor, error) {
	signer, contract, err := deploy(ctx, s, BorrowingContract, harnessgen.BorrowingAssetsFromCompoundMetaData)
	if err != nil {
		return nil, nil, nil, err
	}
	binding, err := harnessgen.NewBorrowingAssetsFromCompoundTransactor(contract.Address, s.Client())
	if err != nil {
		return nil, nil, nil, err
	}
	return signer, contract, binding, nil
}

// checkUnderlying observes a cToken position and checks it is worth expected of
// the underlying, up to the truncation the exchange rate introduces.
func checkUnderlying(ctx context.Context, s *harness.Session, cToken common.Address, holder common.Address, expected *uint256.Int) error {
	rate, err := s.ExchangeRateCurrent(ctx, cToken)
	if err != nil {
		return err
	}
	s.Observe("exchange rate", cToken, cToken, rate)
	underlying, err := s.BalanceOfUnderlying(ctx, cToken, holder)
	if err != nil {
		return err
	}
	s.Observe("underlying balance", holder, cToken, underlying)
	return s.ExpectWithinTolerance("underlying balance", underlying, expected, roundingBound(rate))
}

func SupplyETH(ctx context.Context, s *harness.Session) error {
	signer, supplying, binding, err := deploySupplying(ctx, s)
	if err != nil {
		return err
	}
	amount := arbmath.U256FromEther(5)
	var before *harness.TokenBalance
	if err := s.Step(ctx, "supply ETH", func(ctx context.Context) error {
		before, err = s.TokenBalance(ctx, CETH, supplying.Address)
		if err != nil {
			return err
		}
		if err := s.ExpectEqual("cETH before supply", before.Amount, new(uint256.Int)); err != nil {
			return err
		}
		_, err = s.Transact(ctx, signer, harness.TxOptions{Value: amount.ToBig(), GasLimit: SupplyETHGas}, binding.SupplyETHtoCompound)
		return err
	}); err != nil {
		return err
	}
	return s.Step(ctx, "observe cETH", func(ctx context.Context) error {
		after, err := s.TokenBalance(ctx, CETH, supplying.Address)
		if err != nil {
			return err
		}
		s.ObserveBalance("cETH minted", after)
		if err := s.ExpectPositive("cETH minted", after.Amount); err != nil {
			return err
		}
		return checkUnderlying(ctx, s, CETH, supplying.Address, amount)
	})
}

// fundFromHolder impersonates the DAI holder and sends amount DAI to recipient.
// The recipient's balance must grow by exactly amount.
func fundFromHolder(ctx context.Context, s *harness.Session, recipient common.Address, amount *uint256.Int) error {
	return s.Step(ctx, "fund from DAI holder", func(ctx context.Context) error {
		holder, err := s.Impersonate(ctx, DAIHolder)
		if err != nil {
			return err
		}
		before, err := s.TokenBalance(ctx, DAI, recipient)
		if err != nil {
			return err
		}
		if _, err := s.TransferToken(ctx, holder, DAI, recipient, amount, TokenTransferGas); err != nil {
			return err
		}
		after, err := s.TokenBalance(ctx, DAI, recipient)
		if err != nil {
			return err
		}
		s.ObserveBalance("DAI received", after)
		return s.ExpectDelta("DAI received", before, after, amount)
	})
}

func SupplyERC20(ctx context.Context, s *harness.Session) error {
	oneDAI := arbmath.U256FromEther(1)
	signer, err := s.DefaultSigner(0)
	if err != nil {
		return err
	}
	if err := fundFromHolder(ctx, s, signer.Address(), oneDAI); err != nil {
		return err
	}
	_, supplying, binding, err := deploySupplying(ctx, s)
	if err != nil {
		return err
	}
	if err := s.Step(ctx, "transfer DAI to contract", func(ctx context.Context) error {
		_, err := s.TransferToken(ctx, signer, DAI, supplying.Address, oneDAI, TokenTransferGas)
		return err
	}); err != nil {
		return err
	}
	var cDAI *harness.TokenBalance
	if err := s.Step(ctx, "mint cDAI", func(ctx context.Context) error {
		if _, err := s.Transact(ctx, signer, harness.TxOptions{}, binding.SupplyERC20toCompound); err != nil {
			return err
		}
		remaining, err := s.TokenBalance(ctx, DAI, supplying.Address)
		if err != nil {
			return err
		}
		s.ObserveBalance("DAI left after mint", remaining)
		cDAI, err = s.TokenBalance(ctx, CDAI, supplying.Address)
		if err != nil {
			return err
		}
		s.ObserveBalance("cDAI minted", cDAI)
		if err := s.ExpectPositive("cDAI minted", cDAI.Amount); err != nil {
			return err
		}
		return checkUnderlying(ctx, s, CDAI, supplying.Address, oneDAI)
	}); err != nil {
		return err
	}
	return s.Step(ctx, "redeem cDAI", func(ctx context.Context) error {
		redeem := func(opts *bind.TransactOpts) (*types.Transaction, error) {
			return binding.RedeemERC20FromCompound(opts, cDAI.Amount.ToBig(), false)
		}
		if _, err := s.Transact(ctx, signer, harness.TxOptions{}, redeem); err != nil {
			return err
		}
		left, err := s.TokenBalance(ctx, CDAI, supplying.Address)
		if err != nil {
			return err
		}
		s.ObserveBalance("cDAI after redeem", left)
		redeemed, err := s.TokenBalance(ctx, DAI, supplying.Address)
		if err != nil {
			return err
		}
		s.ObserveBalance("DAI after redeem", redeemed)
		return s.ExpectPositive("DAI after redeem", redeemed.Amount)
	})
}

func borrowERC20(binding *harnessgen.BorrowingAssetsFromCompoundTransactor) func(opts *bind.TransactOpts) (*types.Transaction, error) {
	return func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return binding.BorrowERC20FromCompound(opts, CETH, Comptroller, PriceFeed, CDAI)
	}
}

func BorrowERC20(ctx context.Context, s *harness.Session) error {
	signer, borrowing, binding, err := deployBorrowing(ctx, s)
	if err != nil {
		return err
	}
	return s.Step(ctx, "borrow DAI", func(ctx context.Context) error {
		collateral := arbmath.U256FromEther(1)
		if _, err := s.Transact(ctx, signer, harness.TxOptions{Value: collateral.ToBig()}, borrowERC20(binding)); err != nil {
			return err
		}
		collateralTokens, err := s.TokenBalance(ctx, CETH, borrowing.Address)
		if err != nil {
			return err
		}
		s.ObserveBalance("cETH collateral", collateralTokens)
		borrowed, err := s.TokenBalance(ctx, DAI, borrowing.Address)
		if err != nil {
			return err
		}
		s.ObserveBalance("DAI borrowed", borrowed)
		return nil
	})
}

// dustCollateral is far below what any DAI borrow needs at the fork height.
var dustCollateral = uint256.NewInt(1)

func BorrowERC20Undercollateralized(ctx context.Context, s *harness.Session) error {
	signer, _, binding, err := deployBorrowing(ctx, s)
	if err != nil {
		return err
	}
	return s.Step(ctx, "borrow DAI on dust", func(ctx context.Context) error {
		_, err := s.Transact(ctx, signer, harness.TxOptions{Value: dustCollateral.ToBig(), GasLimit: BorrowETHGas}, borrowERC20(binding))
		return s.ExpectFailure("undercollateralized borrow", err, harness.ErrTransaction, harness.ErrOutOfGas, harness.ErrInsufficientBalance)
	})
}

func BorrowETH(ctx context.Context, s *harness.Session) error {
	signer, borrowing, binding, err := deployBorrowing(ctx, s)
	if err != nil {
		return err
	}
	if err := fundFromHolder(ctx, s, borrowing.Address, arbmath.U256FromEther(5000)); err != nil {
		return err
	}
	return s.Step(ctx, "borrow ETH", func(ctx context.Context) error {
		before, err := s.ETHBalance(ctx, borrowing.Address)
		if err != nil {
			return err
		}
		borrow := func(opts *bind.TransactOpts) (*types.Transaction, error) {
			return binding.BorrowETHFromCompound(opts, DAI, CDAI, Comptroller, PriceFeed, CETH)
		}
		if _, err := s.Transact(ctx, signer, harness.TxOptions{GasLimit: BorrowETHGas}, borrow); err != nil {
			return err
		}
		after, err := s.ETHBalance(ctx, borrowing.Address)
		if err != nil {
			return err
		}
		s.ObserveBalance("ETH before borrow", before)
		s.ObserveBalance("ETH after borrow", after)
		collateral, err := s.TokenBalance(ctx, CDAI, borrowing.Address)
		if err != nil {
			return err
		}
		s.ObserveBalance("cDAI collateral", collateral)
		return nil
	})
}

type balanceWatch struct {
	label  string
	holder common.Address
	asset  common.Address
}

var resetWatches = []balanceWatch{
	{"holder ETH", DAIHolder, common.Address{}},
	{"holder DAI", DAIHolder, DAI},
	{"cETH ETH", CETH, common.Address{}},
	{"cDAI DAI", CDAI, DAI},
}

func readWatches(ctx context.Context, s *harness.Session) ([]*harness.TokenBalance, error) {
	balances := make([]*harness.TokenBalance, 0, len(resetWatches))
	for _, watch := range resetWatches {
		var balance *harness.TokenBalance
		var err error
		if watch.asset == (common.Address{}) {
			balance, err = s.ETHBalance(ctx, watch.holder)
		} else {
			balance, err = s.TokenBalance(ctx, watch.asset, watch.holder)
		}
		if err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}
	return balances, nil
}

// disturb moves ether to the DAI holder and mines a few blocks on top.
func disturb(ctx context.Context, s *harness.Session) error {
	signer, err := s.DefaultSigner(0)
	if err != nil {
		return err
	}
	if _, err := s.TransferETH(ctx, signer, DAIHolder, arbmath.U256FromEther(1), 21000); err != nil {
		return err
	}
	return s.Mine(ctx, 5)
}

func compareWatches(s *harness.Session, label string, got []*harness.TokenBalance, want []*harness.TokenBalance) error {
	for j, watch := range resetWatches {
		if err := s.ExpectEqual(watch.label+" "+label, got[j].Amount, want[j].Amount); err != nil {
			return err
		}
	}
	return nil
}

// ResetIdempotent disturbs the fork, rolls it back through a snapshot, disturbs
// it again, then resets twice and compares the balances every rollback produced.
func ResetIdempotent(ctx context.Context, s *harness.Session) error {
	var initial []*harness.TokenBalance
	var snapshot *hexutil.Big
	if err := s.Step(ctx, "read initial", func(ctx context.Context) error {
		var err error
		initial, err = readWatches(ctx, s)
		if err != nil {
			return err
		}
		snapshot, err = s.Snapshot(ctx)
		return err
	}); err != nil {
		return err
	}
	if err := s.Step(ctx, "disturb", func(ctx context.Context) error {
		return disturb(ctx, s)
	}); err != nil {
		return err
	}
	if err := s.Step(ctx, "revert", func(ctx context.Context) error {
		if err := s.Revert(ctx, snapshot); err != nil {
			return err
		}
		reverted, err := readWatches(ctx, s)
		if err != nil {
			return err
		}
		return compareWatches(s, "after revert", reverted, initial)
	}); err != nil {
		return err
	}
	if err := s.Step(ctx, "disturb again", func(ctx context.Context) error {
		return disturb(ctx, s)
	}); err != nil {
		return err
	}
	var snapshots [2][]*harness.TokenBalance
	for i := range snapshots {
		if err := s.Step(ctx, fmt.Sprintf("reset %d", i+1), func(ctx context.Context) error {
			if err := s.Reset(ctx); err != nil {
				return err
			}
			var err error
			snapshots[i], err = readWatches(ctx, s)
			return err
		}); err != nil {
			return err
		}
	}
	return s.Step(ctx, "compare", func(ctx context.Context) error {
		for j, watch := range resetWatches {
			s.ObserveBalance(watch.label, snapshots[1][j])
		}
		if err := compareWatches(s, "across resets", snapshots[1], snapshots[0]); err != nil {
			return err
		}
		return compareWatches(s, "against initial", snapshots[0], initial)
	})
}

// TransferConservation checks both sides of a DAI transfer. Gas is paid in ETH,
// so it does not affect the DAI balances.
func TransferConservation(ctx context.Context, s *harness.Session) error {
	amount := arbmath.U256FromEther(1)
	return s.Step(ctx, "transfer DAI", func(ctx context.Context) error {
		recipient, err := s.DefaultSigner(0)
		if err != nil {
			return err
		}
		holder, err := s.Impersonate(ctx, DAIHolder)
		if err != nil {
			return err
		}
		senderBefore, err := s.TokenBalance(ctx, DAI, holder.Address())
		if err != nil {
			return err
		}
		recipientBefore, err := s.TokenBalance(ctx, DAI, recipient.Address())
		if err != nil {
			return err
		}
		if _, err := s.TransferToken(ctx, holder, DAI, recipient.Address(), amount, TokenTransferGas); err != nil {
			return err
		}
		senderAfter, err := s.TokenBalance(ctx, DAI, holder.Address())
		if err != nil {
			return err
		}
		recipientAfter, err := s.TokenBalance(ctx, DAI, recipient.Address())
		if err != nil {
			return err
		}
		s.ObserveBalance("sender DAI", senderAfter)
		s.ObserveBalance("recipient DAI", recipientAfter)
		if err := s.ExpectDecrease("sender DAI", senderBefore, senderAfter, amount); err != nil {
			return err
		}
		return s.ExpectDelta("recipient DAI", recipientBefore, recipientAfter, amount)
	})
}

func DeployDistinct(ctx context.Context, s *harness.Session) error {
	_, first, err := deploy(ctx, s, SupplyingContract, harnessgen.SupplyingAssetsToCompoundMetaData)
	if err != nil {
		return err
	}
	_, second, err := deploy(ctx, s, SupplyingContract, harnessgen.SupplyingAssetsToCompoundMetaData)
	if err != nil {
		return err
	}
	return s.Step(ctx, "compare deployments", func(ctx context.Context) error {
		if first.Address == second.Address {
			return fmt.Errorf("%w: both deployments at %v", harness.ErrAssertion, first.Address)
		}
		for _, contract := range []*harness.DeployedContract{first, second} {
			eth, err := s.ETHBalance(ctx, contract.Address)
			if err != nil {
				return err
			}
			if err := s.ExpectEqual("fresh ETH balance", eth.Amount, new(uint256.Int)); err != nil {
				return err
			}
			for _, token := range []common.Address{DAI, CETH, CDAI} {
				balance, err := s.TokenBalance(ctx, token, contract.Address)
				if err != nil {
					return err
				}
				if err := s.ExpectEqual("fresh token balance", balance.Amount, new(uint256.Int)); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// ImpersonationScope checks that the holder can sign while impersonated inside a
// fork, and not once the impersonation is stopped. Without forking, impersonation
// itself must be refused.
func ImpersonationScope(ctx context.Context, s *harness.Session) error {
	if !s.Config().Forking.Enabled {
		return s.Step(ctx, "impersonate without fork", func(ctx context.Context) error {
			_, err := s.Impersonate(ctx, DAIHolder)
			return s.ExpectFailure("impersonation without fork", err, harness.ErrImpersonation)
		})
	}
	recipient := common.HexToAddress("0x000000000000000000000000000000000000dEaD")
	oneWei := uint256.NewInt(1)
	return s.Step(ctx, "impersonate in fork", func(ctx context.Context) error {
		holder, err := s.Impersonate(ctx, DAIHolder)
		if err != nil {
			return err
		}
		if _, err := s.TransferToken(ctx, holder, DAI, recipient, oneWei, TokenTransferGas); err != nil {
			return err
		}
		if err := holder.Stop(ctx); err != nil {
			return err
		}
		if s.Impersonating(DAIHolder) {
			return fmt.Errorf("%w: node still impersonates %v after stop", harness.ErrAssertion, DAIHolder)
		}
		_, err = s.TransferToken(ctx, holder, DAI, recipient, oneWei, TokenTransferGas)
		return s.ExpectFailure("send after impersonation stopped", err, harness.ErrImpersonatedSend, harness.ErrInsufficientBalance)
	})
}
