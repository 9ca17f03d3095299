// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package bridgeclient

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/params"

	"github.com/offchainlabs/feetoken-bridge/util/testhelpers"
)

func TestApproveSetsAllowance(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	client := newTestClient(t, ctx, w, testClientConfig())
	amount := new(big.Int).Mul(big.NewInt(5), big.NewInt(params.Ether))

	tx, err := client.ApproveInbox(ctx, amount)
	Require(t, err)
	_, err = client.ensureParentTx(ctx, tx)
	Require(t, err)

	allowance, err := client.AllowanceOf(ctx, client.parentAuth.From, testInboxAddress)
	Require(t, err)
	if allowance.Cmp(amount) != 0 {
		Fail(t, "wrong allowance", allowance, "expected", amount)
	}
}

func TestApproveNilAmountGrantsMaximum(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	client := newTestClient(t, ctx, w, testClientConfig())

	tx, err := client.ApproveInbox(ctx, nil)
	Require(t, err)
	_, err = client.ensureParentTx(ctx, tx)
	Require(t, err)

	allowance, err := client.AllowanceOf(ctx, client.parentAuth.From, testInboxAddress)
	Require(t, err)
	if allowance.Cmp(math.MaxBig256) != 0 {
		Fail(t, "expected maximum allowance, got", allowance)
	}
}

func TestApproveRejectsBadInput(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	client := newTestClient(t, ctx, w, testClientConfig())

	_, err := client.Approve(ctx, common.Address{}, big.NewInt(1))
	if !errors.Is(err, ErrInvalidInput) {
		Fail(t, "expected input error for zero spender, got", err)
	}
	_, err = client.ApproveInbox(ctx, big.NewInt(-1))
	if !errors.Is(err, ErrInvalidInput) {
		Fail(t, "expected input error for negative amount, got", err)
	}
}

func TestApproveRequiresParentAccount(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	_, childAuth := testAccounts(t)
	client, err := NewClient(ctx, testClientConfig(), w.parent, w.child, nil, childAuth)
	Require(t, err)

	_, err = client.ApproveInbox(ctx, big.NewInt(1))
	if !errors.Is(err, ErrInvalidInput) {
		Fail(t, "expected input error without parent account, got", err)
	}
}

func TestAllowanceIsNeverCached(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	client := newTestClient(t, ctx, w, testClientConfig())
	owner := testhelpers.RandomAddress()

	w.setAllowance(owner, testInboxAddress, big.NewInt(100))
	allowance, err := client.AllowanceOf(ctx, owner, testInboxAddress)
	Require(t, err)
	if allowance.Cmp(big.NewInt(100)) != 0 {
		Fail(t, "wrong first read", allowance)
	}

	w.setAllowance(owner, testInboxAddress, big.NewInt(7))
	allowance, err = client.AllowanceOf(ctx, owner, testInboxAddress)
	Require(t, err)
	if allowance.Cmp(big.NewInt(7)) != 0 {
		Fail(t, "stale allowance read", allowance)
	}
}
