// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package bridgeclient

import (
	"context"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/offchainlabs/feetoken-bridge/retryables"
)

func testAccounts(t *testing.T) (*bind.TransactOpts, *bind.TransactOpts) {
	t.Helper()
	key, err := crypto.GenerateKey()
	Require(t, err)
	parentAuth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(parentChainIdNum))
	Require(t, err)
	childAuth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(childChainIdNum))
	Require(t, err)
	return parentAuth, childAuth
}

func TestNewClientDiscoversBridgeAndToken(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	client := newTestClient(t, ctx, w, testClientConfig())
	if client.InboxAddress() != testInboxAddress {
		Fail(t, "wrong inbox address", client.InboxAddress())
	}
	if client.BridgeAddress() != testBridgeAddress {
		Fail(t, "wrong bridge address", client.BridgeAddress())
	}
	if client.TokenAddress() != testTokenAddress {
		Fail(t, "wrong token address", client.TokenAddress())
	}
	if client.Lifetime() != retryables.RetryableLifetimeSeconds {
		Fail(t, "wrong lifetime", client.Lifetime())
	}
}

func TestNewClientRejectsBridgeWithoutFeeToken(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	w.noNativeToken = true
	parentAuth, childAuth := testAccounts(t)
	_, err := NewClient(ctx, testClientConfig(), w.parent, w.child, parentAuth, childAuth)
	if err == nil || !strings.Contains(err.Error(), "no native fee token") {
		Fail(t, "expected missing fee token error, got", err)
	}
}

func TestNewClientRejectsUnregisteredInbox(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	config := testClientConfig()
	config.Inbox = testOtherInboxAddress.Hex()
	parentAuth, childAuth := testAccounts(t)
	_, err := NewClient(ctx, config, w.parent, w.child, parentAuth, childAuth)
	if err == nil || !strings.Contains(err.Error(), "is not registered with bridge") {
		Fail(t, "expected unregistered inbox error, got", err)
	}
}

func TestNewClientRejectsLifetimeMismatch(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	config := testClientConfig()
	config.TicketLifetime = time.Hour
	parentAuth, childAuth := testAccounts(t)
	_, err := NewClient(ctx, config, w.parent, w.child, parentAuth, childAuth)
	if err == nil || !strings.Contains(err.Error(), "does not match the chain's") {
		Fail(t, "expected lifetime mismatch error, got", err)
	}
}

func TestNewClientSkipsChainChecks(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	config := testClientConfig()
	config.TicketLifetime = time.Hour
	config.SkipChainChecks = true
	parentAuth, childAuth := testAccounts(t)
	client, err := NewClient(ctx, config, w.parent, w.child, parentAuth, childAuth)
	Require(t, err)
	if client.Lifetime() != 3600 {
		Fail(t, "wrong lifetime", client.Lifetime())
	}
}

func TestNewClientRejectsBadConfig(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	config := testClientConfig()
	config.Inbox = "not-an-address"
	parentAuth, childAuth := testAccounts(t)
	_, err := NewClient(ctx, config, w.parent, w.child, parentAuth, childAuth)
	if err == nil || !strings.Contains(err.Error(), "is not a valid inbox address") {
		Fail(t, "expected inbox validation error, got", err)
	}
}
