// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

// Package accounts holds first-party signers backed by private keys.
package accounts

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer produces transaction options for an account and submits the transactions built with them.
type Signer interface {
	Address() common.Address
	TransactOpts(ctx context.Context) *bind.TransactOpts
	Send(ctx context.Context, tx *types.Transaction) (common.Hash, error)
}

// TransactionSender is the part of ethclient.Client a KeyedSigner submits through.
type TransactionSender interface {
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

type KeyedSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
	sender  TransactionSender
}

func NewKeyedSigner(key *ecdsa.PrivateKey, chainID *big.Int, sender TransactionSender) *KeyedSigner {
	return &KeyedSigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: new(big.Int).Set(chainID),
		sender:  sender,
	}
}

func (s *KeyedSigner) Address() common.Address {
	return s.address
}

// TransactOpts signs locally but leaves submission to Send.
func (s *KeyedSigner) TransactOpts(ctx context.Context) *bind.TransactOpts {
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainID)
	if err != nil {
		// only fails for a nil chain id, which NewKeyedSigner rules out
		panic(err)
	}
	opts.Context = ctx
	opts.NoSend = true
	return opts
}

func (s *KeyedSigner) Send(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	if err := s.sender.SendTransaction(ctx, tx); err != nil {
		return common.Hash{}, err
	}
	return tx.Hash(), nil
}

func NewKeyedSigners(keys []*ecdsa.PrivateKey, chainID *big.Int, sender TransactionSender) []Signer {
	signers := make([]Signer, 0, len(keys))
	for _, key := range keys {
		signers = append(signers, NewKeyedSigner(key, chainID, sender))
	}
	return signers
}

// DevKeys are the publicly known keys hardhat and anvil fund from the "test test ... junk" mnemonic.
// These are not real accounts. Don't even try to use them.
var DevKeys = []string{
	"ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
	"59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d",
	"5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a",
	"7c852118294e51e653712a81e05800f419141751be58f605c371e15141b007a6",
	"47e179ec197488593b187f80a00eb0da91f1b9d0b13f8733639f19c30a34926a",
	"8b3a350cf5c34c9194ca85829a2df0ec3153be0318b5e2d3348e872092edffba",
	"92db14e403b83dfe3df233f83dfa3a0d7096f21ca9b0d6d6b8d88b2b4ec1564e",
	"4bbbf85ce3377467afe5d46f804f221813b2bb87f24d81f60f1fcdbf7cbf4356",
	"dbda1821b80551c9d65939329250298aa3472ba22feea921c0cf5d620ea67b97",
	"2a871d0798f97d79848a013d4936a73bf4cc922c825d33c1cf7073dff6d409c6",
}

var ErrNoKeys = errors.New("no signing keys configured")

func ParseKey(hexKey string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}

// ParseKeys falls back to DevKeys when hexKeys is empty.
func ParseKeys(hexKeys []string) ([]*ecdsa.PrivateKey, error) {
	if len(hexKeys) == 0 {
		hexKeys = DevKeys
	}
	keys := make([]*ecdsa.PrivateKey, 0, len(hexKeys))
	for i, hexKey := range hexKeys {
		key, err := ParseKey(hexKey)
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	return keys, nil
}
