// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package bridgeclient

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/params"

	"github.com/offchainlabs/feetoken-bridge/retryables"
)

func expectStatus(t *testing.T, ctx context.Context, client *Client, ticket *retryables.Ticket, expected TicketStatus) {
	t.Helper()
	status, err := client.TicketStatus(ctx, ticket)
	Require(t, err)
	if status != expected {
		Fail(t, "wrong status", status, "expected", expected)
	}
}

func TestStatusCreatedWhileUnsequenced(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	w.sequencerDown = true
	client := newTestClient(t, ctx, w, testClientConfig())

	ticket := depositTicket(t, ctx, client, big.NewInt(params.Ether))
	expectStatus(t, ctx, client, ticket, StatusCreated)

	Require(t, w.flushSequencer())
	expectStatus(t, ctx, client, ticket, StatusRedeemed)
}

func TestStatusCreatedUnfunded(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	config := testClientConfig()
	config.AutoRedeemGas.Disable = true
	client := newTestClient(t, ctx, w, config)

	ticket := depositTicket(t, ctx, client, big.NewInt(params.Ether))
	expectStatus(t, ctx, client, ticket, StatusCreated)
}

func TestStatusAutoRedeemAttempted(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	w.retriesPaused = true
	client := newTestClient(t, ctx, w, testClientConfig())

	ticket := depositTicket(t, ctx, client, big.NewInt(params.Ether))
	expectStatus(t, ctx, client, ticket, StatusAutoRedeemAttempted)

	w.flushRetries()
	expectStatus(t, ctx, client, ticket, StatusRedeemed)
}

func TestStatusAutoRedeemFailed(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	w.retryFailures = 1
	client := newTestClient(t, ctx, w, testClientConfig())

	ticket := depositTicket(t, ctx, client, big.NewInt(params.Ether))
	expectStatus(t, ctx, client, ticket, StatusAutoRedeemFailed)
}

func TestStatusRedeemedAutomatically(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	client := newTestClient(t, ctx, w, testClientConfig())

	ticket := depositTicket(t, ctx, client, big.NewInt(params.Ether))
	expectStatus(t, ctx, client, ticket, StatusRedeemed)
}

func TestStatusRedeemedManually(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	w.retryFailures = 1
	client := newTestClient(t, ctx, w, testClientConfig())

	ticket := depositTicket(t, ctx, client, big.NewInt(params.Ether))
	expectStatus(t, ctx, client, ticket, StatusAutoRedeemFailed)

	_, err := client.RedeemTicket(ctx, ticket.Id)
	Require(t, err)
	expectStatus(t, ctx, client, ticket, StatusRedeemed)
}

func TestStatusExpiredWhenCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	config := testClientConfig()
	config.AutoRedeemGas.Disable = true
	client := newTestClient(t, ctx, w, config)

	ticket := depositTicket(t, ctx, client, big.NewInt(params.Ether))
	_, err := client.CancelTicket(ctx, ticket.Id)
	Require(t, err)
	expectStatus(t, ctx, client, ticket, StatusExpired)
}

func TestStatusExpiredPastDeadline(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	config := testClientConfig()
	config.AutoRedeemGas.Disable = true
	client := newTestClient(t, ctx, w, config)

	ticket := depositTicket(t, ctx, client, big.NewInt(params.Ether))
	expectStatus(t, ctx, client, ticket, StatusCreated)

	w.advance(retryables.RetryableLifetimeSeconds + 1)
	expectStatus(t, ctx, client, ticket, StatusExpired)
}

func TestStatusExpiredNeverSequenced(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	w.sequencerDown = true
	client := newTestClient(t, ctx, w, testClientConfig())

	ticket := depositTicket(t, ctx, client, big.NewInt(params.Ether))
	w.advance(retryables.RetryableLifetimeSeconds + 1)
	expectStatus(t, ctx, client, ticket, StatusExpired)
}

func TestStatusGoneWithoutTraceIsAnError(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	config := testClientConfig()
	config.AutoRedeemGas.Disable = true
	client := newTestClient(t, ctx, w, config)

	ticket := depositTicket(t, ctx, client, big.NewInt(params.Ether))
	w.dropTicket(ticket.Id)
	_, err := client.TicketStatus(ctx, ticket)
	if err == nil || !strings.Contains(err.Error(), "gone but neither redeemed") {
		Fail(t, "expected unexplained disappearance error, got", err)
	}
}

func TestStatusRejectsNilTicket(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := newBridgeWorld()
	client := newTestClient(t, ctx, w, testClientConfig())

	_, err := client.TicketStatus(ctx, nil)
	if !errors.Is(err, ErrInvalidInput) {
		Fail(t, "expected input error, got", err)
	}
}

func TestStatusTerminal(t *testing.T) {
	t.Parallel()
	for status := StatusCreated; status <= StatusExpired; status++ {
		terminal := status == StatusRedeemed || status == StatusExpired
		if status.Terminal() != terminal {
			Fail(t, "wrong terminality for", status)
		}
	}
}

func TestIsNoTicketError(t *testing.T) {
	t.Parallel()
	if !isNoTicketError(noTicketRevert()) {
		Fail(t, "selector revert not recognized")
	}
	if !isNoTicketError(fmt.Errorf("call failed: %w", noTicketRevert())) {
		Fail(t, "wrapped selector revert not recognized")
	}
	if !isNoTicketError(errors.New("execution reverted: NoTicketWithID()")) {
		Fail(t, "named revert not recognized")
	}
	if isNoTicketError(errors.New("connection refused")) {
		Fail(t, "unrelated error misread as missing ticket")
	}
	if isNoTicketError(nil) {
		Fail(t, "nil error misread as missing ticket")
	}
}
