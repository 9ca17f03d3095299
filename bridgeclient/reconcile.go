// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package bridgeclient

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/offchainlabs/feetoken-bridge/retryables"
	"github.com/offchainlabs/feetoken-bridge/util/arbmath"
)

// CreditResult is the observed outcome of a deposit on the child chain: how
// much the beneficiary's native balance grew from the baseline taken at entry,
// and how long it took.
type CreditResult struct {
	Delta   *big.Int
	Elapsed time.Duration
}

// AwaitCredit watches the beneficiary's child balance until the deposit is
// credited. It polls ticket status first and balance second, so control
// returns as soon as the ticket is terminal: an expired ticket raises a
// TicketExpiredError, a lapsed timeout a TimeoutError, and those two are never
// conflated. A zero beneficiary defaults to the ticket's, a nil expected
// amount to the ticket's value, a zero timeout to whatever ctx allows.
//
// AwaitCredit only observes. Pair it with MonitorTicket when the ticket also
// needs redeeming.
func (c *Client) AwaitCredit(ctx context.Context, beneficiary common.Address, expectedAmount *big.Int, ticket *retryables.Ticket, timeout time.Duration) (*CreditResult, error) {
	if ticket == nil {
		return nil, inputError("nil ticket")
	}
	if beneficiary == (common.Address{}) {
		beneficiary = ticket.Beneficiary()
	}
	if expectedAmount == nil {
		expectedAmount = ticket.Value()
	}
	if expectedAmount.Sign() <= 0 {
		return nil, inputError("expected credit %v is not positive", expectedAmount)
	}
	waitCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	baseline, err := c.childClient.BalanceAt(waitCtx, beneficiary, nil)
	if err != nil {
		return nil, err
	}
	started := time.Now()
	var lastStatus TicketStatus
	for {
		status, err := c.TicketStatus(waitCtx, ticket)
		if err == nil {
			lastStatus = status
			if status == StatusExpired {
				return nil, TicketExpiredError{TicketId: ticket.Id, Deadline: ticket.SubmissionDeadline}
			}
			if status == StatusRedeemed {
				balance, err := c.childClient.BalanceAt(waitCtx, beneficiary, nil)
				if err != nil {
					return nil, err
				}
				return &CreditResult{Delta: arbmath.BigSub(balance, baseline), Elapsed: time.Since(started)}, nil
			}
		} else if waitCtx.Err() == nil {
			log.Warn("failed reading ticket status while awaiting credit", "ticketId", ticket.Id, "err", err)
		}
		balance, err := c.childClient.BalanceAt(waitCtx, beneficiary, nil)
		if err == nil {
			delta := arbmath.BigSub(balance, baseline)
			if delta.Cmp(expectedAmount) >= 0 {
				return &CreditResult{Delta: delta, Elapsed: time.Since(started)}, nil
			}
		}
		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, TimeoutError{TicketId: ticket.Id, LastStatus: lastStatus, Waited: time.Since(started)}
		case <-time.After(c.config.Redeem.StatusPollDelay):
		}
	}
}
