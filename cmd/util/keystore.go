// Copyright 2021-2022, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package util

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/offchainlabs/feetoken-bridge/cmd/genericconf"
)

// DataSignerFunc signs a 32 byte hash with the wallet's key.
type DataSignerFunc func(data []byte) ([]byte, error)

func OpenWallet(description string, walletConfig *genericconf.WalletConfig, chainId *big.Int) (*bind.TransactOpts, DataSignerFunc, error) {
	if walletConfig.PrivateKey != "" {
		privateKey, err := crypto.HexToECDSA(walletConfig.PrivateKey)
		if err != nil {
			return nil, nil, err
		}

		txOpts, err := bind.NewKeyedTransactorWithChainID(privateKey, chainId)
		if err != nil {
			return nil, nil, err
		}

		signer := func(data []byte) ([]byte, error) {
			return crypto.Sign(data, privateKey)
		}

		return txOpts, signer, nil
	}

	account, ks, newKeystoreCreated, err := openKeystore(description, walletConfig, readPass)
	if err != nil {
		return nil, nil, err
	}
	if newKeystoreCreated {
		return nil, nil, errors.New("wallet key created, backup key (" + walletConfig.Pathname + ") and remove --" + description + ".wallet.only-create-key to run normally")
	}

	var txOpts *bind.TransactOpts
	if chainId != nil {
		txOpts, err = bind.NewKeyStoreTransactorWithChainID(ks, *account, chainId)
		if err != nil {
			return nil, nil, err
		}
	}

	signer := func(data []byte) ([]byte, error) {
		return ks.SignHash(*account, data)
	}

	return txOpts, signer, nil
}

func openKeystore(description string, walletConfig *genericconf.WalletConfig, getPassword func() (string, error)) (*accounts.Account, *keystore.KeyStore, bool, error) {
	ks := keystore.NewKeyStore(
		walletConfig.Pathname,
		keystore.StandardScryptN,
		keystore.StandardScryptP,
	)

	creatingNew := len(ks.Accounts()) == 0
	if creatingNew && !walletConfig.OnlyCreateKey {
		return nil, nil, false, fmt.Errorf("no wallet exists at path: %s, to create a wallet add the parameter --%s.wallet.only-create-key", walletConfig.Pathname, description)
	}
	if !creatingNew && walletConfig.OnlyCreateKey {
		return nil, nil, false, fmt.Errorf("wallet key already created, backup key (%s) and remove --%s.wallet.only-create-key to run normally", walletConfig.Pathname, description)
	}

	passOpt := walletConfig.Pwd()
	var password string
	if passOpt != nil {
		password = *passOpt
	} else {
		if creatingNew {
			fmt.Print("Enter new account password: ")
		} else {
			fmt.Print("Enter account password: ")
		}
		var err error
		password, err = getPassword()
		if err != nil {
			return nil, nil, false, err
		}
	}

	if creatingNew {
		account, err := ks.NewAccount(password)
		if err != nil {
			return nil, nil, false, err
		}
		return &account, ks, true, nil
	}

	var account accounts.Account
	if walletConfig.Account == "" {
		if len(ks.Accounts()) > 1 {
			names := make([]string, 0, len(ks.Accounts()))
			for _, acct := range ks.Accounts() {
				names = append(names, acct.Address.Hex())
			}
			return nil, nil, false, fmt.Errorf("too many existing accounts, choose one with the --%s.wallet.account parameter: %s", description, strings.Join(names, ","))
		}
		account = ks.Accounts()[0]
	} else {
		address := common.HexToAddress(walletConfig.Account)
		if address == (common.Address{}) {
			return nil, nil, false, fmt.Errorf("supplied address is invalid: %s", walletConfig.Account)
		}
		var err error
		account, err = ks.Find(accounts.Account{Address: address})
		if err != nil {
			return nil, nil, false, err
		}
	}

	if err := ks.Unlock(account, password); err != nil {
		return nil, nil, false, err
	}

	return &account, ks, false, nil
}

func readPass() (string, error) {
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(bytePassword)), nil
}
