// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package bridgeclient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/offchainlabs/feetoken-bridge/retryables"
	"github.com/offchainlabs/feetoken-bridge/solgen/go/precompilesgen"
)

// TicketStatus is where a ticket stands in its redemption lifecycle.
type TicketStatus uint8

const (
	StatusCreated TicketStatus = iota
	StatusAutoRedeemAttempted
	StatusAutoRedeemFailed
	StatusManualRedeemAttempted
	StatusManualRedeemFailed
	StatusRedeemed
	StatusExpired
)

func (s TicketStatus) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusAutoRedeemAttempted:
		return "auto-redeem attempted"
	case StatusAutoRedeemFailed:
		return "auto-redeem failed"
	case StatusManualRedeemAttempted:
		return "manual redeem attempted"
	case StatusManualRedeemFailed:
		return "manual redeem failed"
	case StatusRedeemed:
		return "redeemed"
	case StatusExpired:
		return "expired"
	}
	return fmt.Sprintf("invalid status %d", uint8(s))
}

// Terminal reports whether no further transition is possible.
func (s TicketStatus) Terminal() bool {
	return s == StatusRedeemed || s == StatusExpired
}

var redeemScheduledID common.Hash
var noTicketSelector string

func init() {
	parsedABI, err := precompilesgen.ArbRetryableTxMetaData.GetAbi()
	if err != nil {
		panic(err)
	}
	redeemScheduledID = parsedABI.Events["RedeemScheduled"].ID
	noTicketID := parsedABI.Errors["NoTicketWithID"].ID
	noTicketSelector = "0x" + common.Bytes2Hex(noTicketID[:4])
}

// TicketStatus reads where the ticket stands right now, one shot, purely from
// the child chain. Redeemed is only ever reported against an on-chain receipt
// or event, never inferred. A cancelled ticket reads as expired: same economic
// outcome, the beneficiary was refunded instead of credited.
func (c *Client) TicketStatus(ctx context.Context, ticket *retryables.Ticket) (TicketStatus, error) {
	if ticket == nil {
		return StatusCreated, inputError("nil ticket")
	}
	submitReceipt, err := c.childClient.TransactionReceipt(ctx, ticket.Id)
	if err != nil && !errors.Is(err, ethereum.NotFound) {
		return StatusCreated, err
	}
	if submitReceipt == nil || err != nil {
		// Not sequenced yet. Once the window closes it never will be.
		expired, err := c.pastDeadline(ctx, ticket)
		if err != nil {
			return StatusCreated, err
		}
		if expired {
			return StatusExpired, nil
		}
		return StatusCreated, nil
	}
	if submitReceipt.Status != types.ReceiptStatusSuccessful {
		return StatusCreated, fmt.Errorf("submit transaction %v failed on the child chain", ticket.Id)
	}
	autoRetryTx, scheduled := c.scheduledRetryTx(submitReceipt, ticket.Id)
	if scheduled {
		retryReceipt, err := c.childClient.TransactionReceipt(ctx, autoRetryTx)
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			return StatusCreated, err
		}
		if retryReceipt == nil || err != nil {
			return StatusAutoRedeemAttempted, nil
		}
		if retryReceipt.Status == types.ReceiptStatusSuccessful {
			return StatusRedeemed, nil
		}
	}
	// No successful auto-redeem. The ticket is either still waiting for a
	// manual redeem, already manually redeemed, expired, or cancelled.
	_, err = c.retryableTx.GetTimeout(c.callOpts(ctx), ticket.Id)
	if err == nil {
		if scheduled {
			return StatusAutoRedeemFailed, nil
		}
		return StatusCreated, nil
	}
	if !isNoTicketError(err) {
		return StatusCreated, err
	}
	redeemed, err := c.wasRedeemed(ctx, ticket.Id, submitReceipt.BlockNumber.Uint64())
	if err != nil {
		return StatusCreated, err
	}
	if redeemed {
		return StatusRedeemed, nil
	}
	canceled, err := c.wasCanceled(ctx, ticket.Id, submitReceipt.BlockNumber.Uint64())
	if err != nil {
		return StatusCreated, err
	}
	if canceled {
		return StatusExpired, nil
	}
	expired, err := c.pastDeadline(ctx, ticket)
	if err != nil {
		return StatusCreated, err
	}
	if expired {
		return StatusExpired, nil
	}
	return StatusCreated, fmt.Errorf("ticket %v is gone but neither redeemed, cancelled, nor past its deadline", ticket.Id)
}

// scheduledRetryTx finds the retry transaction a receipt scheduled for the
// ticket, from the submit transaction's auto-redeem or from a manual redeem.
func (c *Client) scheduledRetryTx(receipt *types.Receipt, ticketId common.Hash) (common.Hash, bool) {
	for _, ethLog := range receipt.Logs {
		if ethLog.Address != retryables.ArbRetryableTxAddress || len(ethLog.Topics) == 0 || ethLog.Topics[0] != redeemScheduledID {
			continue
		}
		event, err := c.retryableTx.ParseRedeemScheduled(*ethLog)
		if err != nil {
			continue
		}
		if event.TicketId == ticketId {
			return event.RetryTxHash, true
		}
	}
	return common.Hash{}, false
}

func (c *Client) wasRedeemed(ctx context.Context, ticketId common.Hash, start uint64) (bool, error) {
	it, err := c.retryableTx.FilterRedeemed(&bind.FilterOpts{Start: start, Context: ctx}, [][32]byte{ticketId})
	if err != nil {
		return false, err
	}
	return it.Next(), nil
}

func (c *Client) wasCanceled(ctx context.Context, ticketId common.Hash, start uint64) (bool, error) {
	it, err := c.retryableTx.FilterCanceled(&bind.FilterOpts{Start: start, Context: ctx}, [][32]byte{ticketId})
	if err != nil {
		return false, err
	}
	return it.Next(), nil
}

func (c *Client) pastDeadline(ctx context.Context, ticket *retryables.Ticket) (bool, error) {
	header, err := c.childClient.HeaderByNumber(ctx, nil)
	if err != nil {
		return false, err
	}
	return header.Time > ticket.SubmissionDeadline, nil
}

// isNoTicketError matches the precompile's NoTicketWithID revert, by selector
// when the node passed the revert data through and by name otherwise.
func isNoTicketError(err error) bool {
	if err == nil {
		return false
	}
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if data, ok := dataErr.ErrorData().(string); ok && strings.HasPrefix(data, noTicketSelector) {
			return true
		}
	}
	return strings.Contains(err.Error(), "NoTicketWithID")
}
