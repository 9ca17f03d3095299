// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

// Package retryables models parent-to-child retryable tickets the way a
// bridge client sees them: the submit message a deposit delivers through the
// inbox, the deterministic ticket id the child chain assigns to it, and the
// protocol constants governing a ticket's lifetime.
package retryables

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// RetryableLifetimeSeconds is how long an unredeemed ticket stays valid,
// counted from creation. Keepalive extends the window by the same amount.
const RetryableLifetimeSeconds = 7 * 24 * 60 * 60 // one week

// SubmitRetryableTxType is the child chain's typed-transaction id for the
// transaction that creates a retryable ticket. A ticket's id is the hash of
// that transaction.
const SubmitRetryableTxType = 0x69

// Delayed message kinds, as found in the Kind field of the bridge's
// MessageDelivered event.
const (
	L1MessageType_SubmitRetryable = 9
	L1MessageType_EthDeposit      = 12
)

// MaxL2MessageSize bounds the calldata a single delayed message may carry.
const MaxL2MessageSize = 256 * 1024

var (
	// ArbRetryableTxAddress is the child chain precompile managing ticket
	// redemption, timeouts and cancellation.
	ArbRetryableTxAddress = common.HexToAddress("0x6e")
	// NodeInterfaceAddress is the node's virtual contract for retryable gas
	// estimation. It only exists over RPC, never on chain.
	NodeInterfaceAddress = common.HexToAddress("0xc8")
)

// Ticket is a client-side view of one retryable ticket, assembled from the
// confirmed parent transaction that created it. It carries everything the
// redemption paths need without consulting child chain state.
type Ticket struct {
	Id             common.Hash
	CreationTxHash common.Hash

	// SubmissionDeadline is the provisional unix time the ticket expires,
	// derived from the parent block timestamp. The chain's view moves if the
	// ticket is kept alive, so treat it as a floor, not an oracle.
	SubmissionDeadline uint64

	Message *SubmitRetryableMessage
}

// NewTicket derives the ticket a confirmed submit-retryable message created.
func NewTicket(msg *SubmitRetryableMessage, chainId *big.Int, creationTx common.Hash, lifetime uint64) (*Ticket, error) {
	id, err := msg.TicketId(chainId)
	if err != nil {
		return nil, err
	}
	return &Ticket{
		Id:                 id,
		CreationTxHash:     creationTx,
		SubmissionDeadline: msg.ParentTimestamp + lifetime,
		Message:            msg,
	}, nil
}

func (t *Ticket) MessageNum() *big.Int {
	return t.Message.MessageNum
}

// From is the child chain sender of the submit transaction, already aliased.
func (t *Ticket) From() common.Address {
	return t.Message.From
}

// Beneficiary receives the callvalue on redemption and is refunded it if the
// ticket instead expires or is cancelled.
func (t *Ticket) Beneficiary() common.Address {
	return t.Message.Beneficiary
}

// Value is the amount the beneficiary is credited when the ticket redeems.
func (t *Ticket) Value() *big.Int {
	return t.Message.L2CallValue
}

// Funded reports whether the submit message bought gas for an automatic
// redemption attempt. Unfunded tickets only redeem manually.
func (t *Ticket) Funded() bool {
	return t.Message.GasLimit > 0 && t.Message.GasFeeCap.Sign() > 0
}
