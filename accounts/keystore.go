// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package accounts

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	flag "github.com/spf13/pflag"
)

const PASSWORD_NOT_SET = "PASSWORD_NOT_SET"

// KeystoreConfig loads additional signers from an encrypted geth keystore.
type KeystoreConfig struct {
	Pathname string `koanf:"pathname"`
	Password string `koanf:"password"`
	Account  string `koanf:"account"`
}

var KeystoreConfigDefault = KeystoreConfig{
	Pathname: "",
	Password: PASSWORD_NOT_SET,
	Account:  "",
}

func KeystoreConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.String(prefix+".pathname", KeystoreConfigDefault.Pathname, "keystore directory with additional signing accounts")
	f.String(prefix+".password", KeystoreConfigDefault.Password, "keystore passphrase")
	f.String(prefix+".account", KeystoreConfigDefault.Account, "account to load (default is every account in keystore)")
}

func (c *KeystoreConfig) Pwd() *string {
	if c.Password == PASSWORD_NOT_SET {
		return nil
	}
	return &c.Password
}

// LoadKeystore decrypts keys from c.Pathname. It returns nothing when no pathname is set.
func LoadKeystore(c *KeystoreConfig) ([]*ecdsa.PrivateKey, error) {
	if c.Pathname == "" {
		return nil, nil
	}
	password := c.Pwd()
	if password == nil {
		return nil, errors.New("keystore password not set")
	}
	ks := keystore.NewKeyStore(c.Pathname, keystore.LightScryptN, keystore.LightScryptP)
	var keys []*ecdsa.PrivateKey
	for _, account := range ks.Accounts() {
		if c.Account != "" && account.Address != common.HexToAddress(c.Account) {
			continue
		}
		keyJSON, err := os.ReadFile(account.URL.Path)
		if err != nil {
			return nil, fmt.Errorf("reading keystore entry %v: %w", account.Address, err)
		}
		key, err := keystore.DecryptKey(keyJSON, *password)
		if err != nil {
			return nil, fmt.Errorf("decrypting keystore entry %v: %w", account.Address, err)
		}
		if crypto.PubkeyToAddress(key.PrivateKey.PublicKey) != account.Address {
			return nil, fmt.Errorf("keystore entry %v holds a different key", account.Address)
		}
		keys = append(keys, key.PrivateKey)
	}
	if c.Account != "" && len(keys) == 0 {
		return nil, fmt.Errorf("account %s not found in keystore %s", c.Account, c.Pathname)
	}
	return keys, nil
}
