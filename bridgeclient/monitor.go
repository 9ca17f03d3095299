// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package bridgeclient

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"

	"github.com/offchainlabs/feetoken-bridge/retryables"
	"github.com/offchainlabs/feetoken-bridge/util/containers"
	"github.com/offchainlabs/feetoken-bridge/util/stopwaiter"
)

var (
	monitorsStartedCounter     = metrics.NewRegisteredCounter("feetoken/monitor/started", nil)
	manualRedeemAttemptCounter = metrics.NewRegisteredCounter("feetoken/redeem/manual/attempted", nil)
	redeemExhaustedCounter     = metrics.NewRegisteredCounter("feetoken/redeem/exhausted", nil)
	ticketsRedeemedCounter     = metrics.NewRegisteredCounter("feetoken/ticket/redeemed", nil)
	ticketsExpiredCounter      = metrics.NewRegisteredCounter("feetoken/ticket/expired", nil)
)

// TicketMonitor drives one ticket to a terminal state: it polls status and,
// when the ticket is waiting on a redeem, submits manual redemptions with
// fresh gas parameters, paced by exponential backoff and bounded by the
// attempt budget. Monitors share nothing but the client; stopping one cancels
// observation without touching chain state.
type TicketMonitor struct {
	stopwaiter.StopWaiter
	client  *Client
	ticket  *retryables.Ticket
	backoff *backoff.ExponentialBackOff

	terminal containers.Promise[TicketStatus]

	mutex      sync.Mutex
	attempts   int
	lastStatus TicketStatus
	lastErr    error
}

// MonitorTicket starts observing the ticket, or returns the monitor already
// doing so. The context bounds the monitor's whole life, not a single call.
func (c *Client) MonitorTicket(ctx context.Context, ticket *retryables.Ticket) (*TicketMonitor, error) {
	if ticket == nil {
		return nil, inputError("nil ticket")
	}
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.config.Redeem.BackoffInitial
	bo.MaxInterval = c.config.Redeem.BackoffMax
	bo.MaxElapsedTime = 0
	bo.Reset()
	monitor := &TicketMonitor{
		client:   c,
		ticket:   ticket,
		backoff:  bo,
		terminal: containers.NewPromise[TicketStatus](),
	}
	existing, loaded := c.monitors.LoadOrStore(ticket.Id, monitor)
	if loaded {
		return existing, nil
	}
	monitorsStartedCounter.Inc(1)
	monitor.Start(ctx, monitor)
	monitor.CallIteratively(monitor.observe)
	return monitor, nil
}

// AwaitTerminal monitors the ticket until it is redeemed or expired, the
// attempt budget runs out, or the timeout lapses. A zero timeout waits as
// long as ctx allows.
func (c *Client) AwaitTerminal(ctx context.Context, ticket *retryables.Ticket, timeout time.Duration) (TicketStatus, error) {
	monitor, err := c.MonitorTicket(ctx, ticket)
	if err != nil {
		return StatusCreated, err
	}
	waitCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	started := time.Now()
	status, err := monitor.terminal.Await(waitCtx)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return StatusCreated, TimeoutError{TicketId: ticket.Id, LastStatus: monitor.LastStatus(), Waited: time.Since(started)}
	}
	return status, err
}

// AwaitTerminal blocks until the monitor settles or ctx expires.
func (m *TicketMonitor) AwaitTerminal(ctx context.Context) (TicketStatus, error) {
	return m.terminal.Await(ctx)
}

func (m *TicketMonitor) Ticket() *retryables.Ticket {
	return m.ticket
}

// LastStatus is the monitor's most recent view, including its own in-flight
// manual attempts.
func (m *TicketMonitor) LastStatus() TicketStatus {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.lastStatus
}

func (m *TicketMonitor) Attempts() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.attempts
}

func (m *TicketMonitor) observe(ctx context.Context) time.Duration {
	status, err := m.client.TicketStatus(ctx, m.ticket)
	if err != nil {
		if ctx.Err() != nil {
			return 0
		}
		log.Warn("failed reading ticket status", "ticketId", m.ticket.Id, "err", err)
		return m.client.config.Redeem.StatusPollDelay
	}
	m.noteChainStatus(status)
	switch status {
	case StatusRedeemed:
		ticketsRedeemedCounter.Inc(1)
		log.Info("ticket redeemed", "ticketId", m.ticket.Id, "value", m.ticket.Value(), "beneficiary", m.ticket.Beneficiary())
		m.finish(StatusRedeemed)
	case StatusExpired:
		ticketsExpiredCounter.Inc(1)
		log.Warn("ticket expired unredeemed", "ticketId", m.ticket.Id, "deadline", m.ticket.SubmissionDeadline)
		m.finish(StatusExpired)
	case StatusAutoRedeemFailed:
		return m.attemptRedeem(ctx)
	case StatusCreated:
		if !m.ticket.Funded() {
			// No auto-redeem is coming. Redeem as soon as the ticket is live.
			return m.attemptRedeem(ctx)
		}
	}
	return m.client.config.Redeem.StatusPollDelay
}

// attemptRedeem submits one manual redemption if the ticket is currently
// redeemable. Racing a competing redeem or the deadline is not an error here;
// the next status probe settles what actually happened.
func (m *TicketMonitor) attemptRedeem(ctx context.Context) time.Duration {
	c := m.client
	if _, err := c.retryableTx.GetTimeout(c.callOpts(ctx), m.ticket.Id); err != nil {
		return c.config.Redeem.StatusPollDelay
	}
	m.noteAttempt()
	attempt := m.Attempts()
	manualRedeemAttemptCounter.Inc(1)
	log.Info("submitting manual redeem", "ticketId", m.ticket.Id, "attempt", attempt)
	retryReceipt, err := c.redeemOnce(ctx, m.ticket.Id)
	if err != nil {
		if ctx.Err() != nil {
			return 0
		}
		if isNoTicketError(err) {
			return c.config.Redeem.StatusPollDelay
		}
		m.noteFailure(err)
		log.Warn("manual redeem attempt failed", "ticketId", m.ticket.Id, "attempt", attempt, "err", err)
	} else if retryReceipt.Status == types.ReceiptStatusSuccessful {
		// Redeemed. The next probe reads it off the chain and finishes.
		return 0
	} else {
		m.noteFailure(errors.New("retry transaction reverted"))
		log.Warn("manual redeem retry reverted", "ticketId", m.ticket.Id, "attempt", attempt, "retryTx", retryReceipt.TxHash)
	}
	if attempt >= c.config.Redeem.MaxAttempts {
		m.finishExhausted()
		return 0
	}
	return m.backoff.NextBackOff()
}

func (m *TicketMonitor) noteChainStatus(status TicketStatus) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	// A chain probe can't see this monitor's own failed attempts. Don't let it
	// roll the view back while the manual loop is in progress.
	if m.attempts > 0 && (status == StatusAutoRedeemFailed || status == StatusCreated) {
		return
	}
	m.lastStatus = status
}

func (m *TicketMonitor) noteAttempt() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.attempts++
	m.lastStatus = StatusManualRedeemAttempted
}

func (m *TicketMonitor) noteFailure(err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.lastStatus = StatusManualRedeemFailed
	m.lastErr = err
}

func (m *TicketMonitor) finish(status TicketStatus) {
	m.terminal.Produce(status)
	m.StopOnly()
}

// finishExhausted gives up without a terminal chain state. The registry slot
// is freed so a later MonitorTicket can resume with a fresh budget.
func (m *TicketMonitor) finishExhausted() {
	m.mutex.Lock()
	err := RedemptionError{
		TicketId:   m.ticket.Id,
		Attempts:   m.attempts,
		LastStatus: m.lastStatus,
		cause:      m.lastErr,
	}
	m.mutex.Unlock()
	redeemExhaustedCounter.Inc(1)
	log.Error("giving up on ticket redemption", "ticketId", m.ticket.Id, "attempts", err.Attempts)
	m.client.monitors.Delete(m.ticket.Id)
	m.terminal.ProduceError(err)
	m.StopOnly()
}
