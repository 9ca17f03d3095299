// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package bridgeclient

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinels for errors.Is matching. Everything the client returns wraps
// exactly one of these.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrAllowanceInsufficient = errors.New("allowance insufficient")
	ErrSubmission            = errors.New("submission failed")
	ErrRedemptionFailed      = errors.New("redemption failed")
	ErrTicketExpired         = errors.New("ticket expired")
	ErrAwaitTimeout          = errors.New("await timed out")
)

// InputError rejects a call before any chain interaction.
type InputError struct {
	reason string
}

func (e InputError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidInput, e.reason)
}

func (e InputError) Unwrap() error { return ErrInvalidInput }

func inputError(format string, args ...interface{}) error {
	return InputError{reason: fmt.Sprintf(format, args...)}
}

// AllowanceError reports a deposit the inbox rejected because it could not
// pull the tokens. Have and Need are nil when the revert reason didn't say.
type AllowanceError struct {
	Owner   common.Address
	Spender common.Address
	Have    *big.Int
	Need    *big.Int
}

func (e AllowanceError) Error() string {
	if e.Have != nil && e.Need != nil {
		return fmt.Sprintf("%v: owner %v spender %v have %v need %v", ErrAllowanceInsufficient, e.Owner, e.Spender, e.Have, e.Need)
	}
	return fmt.Sprintf("%v: owner %v spender %v", ErrAllowanceInsufficient, e.Owner, e.Spender)
}

func (e AllowanceError) Unwrap() error { return ErrAllowanceInsufficient }

// SubmissionError reports a parent-chain transaction that wasn't included or
// reverted for a cause other than allowance. The cause is never retried here.
type SubmissionError struct {
	TxHash common.Hash
	cause  error
}

func (e SubmissionError) Error() string {
	return fmt.Sprintf("%v: tx %v: %v", ErrSubmission, e.TxHash, e.cause)
}

func (e SubmissionError) Unwrap() error { return ErrSubmission }

// RedemptionError reports a ticket whose manual redemption attempts ran out
// without reaching a terminal state. The ticket is still alive; the caller may
// resume monitoring later.
type RedemptionError struct {
	TicketId   common.Hash
	Attempts   int
	LastStatus TicketStatus
	cause      error
}

func (e RedemptionError) Error() string {
	return fmt.Sprintf("%v: ticket %v after %v attempts, last status %v: %v", ErrRedemptionFailed, e.TicketId, e.Attempts, e.LastStatus, e.cause)
}

func (e RedemptionError) Unwrap() error { return ErrRedemptionFailed }

// TicketExpiredError reports a ticket past its submission deadline and no
// longer redeemable. Terminal.
type TicketExpiredError struct {
	TicketId common.Hash
	Deadline uint64
}

func (e TicketExpiredError) Error() string {
	return fmt.Sprintf("%v: ticket %v deadline %v", ErrTicketExpired, e.TicketId, e.Deadline)
}

func (e TicketExpiredError) Unwrap() error { return ErrTicketExpired }

// TimeoutError reports a caller-supplied wait that lapsed while the ticket was
// still live. Distinct from expiry.
type TimeoutError struct {
	TicketId   common.Hash
	LastStatus TicketStatus
	Waited     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("%v: ticket %v still %v after %v", ErrAwaitTimeout, e.TicketId, e.LastStatus, e.Waited)
}

func (e TimeoutError) Unwrap() error { return ErrAwaitTimeout }
