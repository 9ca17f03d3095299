// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package retryables

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/offchainlabs/feetoken-bridge/util/testhelpers"
)

func TestRemapL1Address(t *testing.T) {
	aliased := RemapL1Address(testSender)
	want := common.HexToAddress("0x04b0d6e51aad88f6f4ce6ab8827279cfffb93377")
	if aliased != want {
		Fail(t, "wrong alias", aliased)
	}
	if InverseRemapL1Address(aliased) != testSender {
		Fail(t, "alias does not invert")
	}

	if RemapL1Address(common.Address{}) != common.HexToAddress("0x1111000000000000000000000000000000001111") {
		Fail(t, "wrong alias for the zero address")
	}

	// The alias wraps modulo 2^160.
	top := common.HexToAddress("0xffffffffffffffffffffffffffffffffffffffff")
	wrapped := RemapL1Address(top)
	if wrapped != common.HexToAddress("0x1111000000000000000000000000000000001110") {
		Fail(t, "alias does not wrap", wrapped)
	}
	if InverseRemapL1Address(wrapped) != top {
		Fail(t, "wrapped alias does not invert")
	}
}

func TestRemapL1AddressRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		addr := testhelpers.RandomAddress()
		if InverseRemapL1Address(RemapL1Address(addr)) != addr {
			Fail(t, "alias round trip failed", addr)
		}
	}
}

func TestNewTicket(t *testing.T) {
	msg := fundedSubmitMessage()
	creationTx := testhelpers.RandomHash()
	ticket, err := NewTicket(msg, testChainId, creationTx, RetryableLifetimeSeconds)
	Require(t, err)

	wantId, err := msg.TicketId(testChainId)
	Require(t, err)
	if ticket.Id != wantId {
		Fail(t, "ticket id mismatch", ticket.Id, wantId)
	}
	if ticket.CreationTxHash != creationTx {
		Fail(t, "creation tx mismatch")
	}
	if ticket.SubmissionDeadline != msg.ParentTimestamp+RetryableLifetimeSeconds {
		Fail(t, "wrong deadline", ticket.SubmissionDeadline)
	}
	if ticket.Beneficiary() != testSender {
		Fail(t, "wrong beneficiary")
	}
	if ticket.Value().Cmp(msg.L2CallValue) != 0 {
		Fail(t, "wrong value")
	}
	if !ticket.Funded() {
		Fail(t, "funded ticket reported unfunded")
	}
}

func TestUnfundedTicket(t *testing.T) {
	msg := fundedSubmitMessage()
	msg.GasLimit = 0
	ticket, err := NewTicket(msg, testChainId, testhelpers.RandomHash(), RetryableLifetimeSeconds)
	Require(t, err)
	if ticket.Funded() {
		Fail(t, "unfunded ticket reported funded")
	}
}

func Require(t *testing.T, err error, printables ...interface{}) {
	t.Helper()
	testhelpers.RequireImpl(t, err, printables...)
}

func Fail(t *testing.T, printables ...interface{}) {
	t.Helper()
	testhelpers.FailImpl(t, printables...)
}
