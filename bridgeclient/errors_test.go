// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package bridgeclient

import (
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/offchainlabs/feetoken-bridge/util/testhelpers"
)

func TestErrorSentinels(t *testing.T) {
	t.Parallel()
	ticketId := testhelpers.RandomHash()
	testCases := []struct {
		err      error
		sentinel error
		contains []string
	}{
		{
			err:      inputError("amount %v is bad", 7),
			sentinel: ErrInvalidInput,
			contains: []string{"amount 7 is bad"},
		},
		{
			err:      AllowanceError{Owner: testhelpers.RandomAddress(), Spender: testInboxAddress, Have: big.NewInt(3), Need: big.NewInt(9)},
			sentinel: ErrAllowanceInsufficient,
			contains: []string{"have 3", "need 9"},
		},
		{
			err:      SubmissionError{TxHash: ticketId, cause: errors.New("nonce too low")},
			sentinel: ErrSubmission,
			contains: []string{"nonce too low"},
		},
		{
			err:      RedemptionError{TicketId: ticketId, Attempts: 5, LastStatus: StatusManualRedeemFailed, cause: errors.New("retry transaction reverted")},
			sentinel: ErrRedemptionFailed,
			contains: []string{ticketId.Hex(), "5 attempts", "manual redeem failed"},
		},
		{
			err:      TicketExpiredError{TicketId: ticketId, Deadline: 1755604800},
			sentinel: ErrTicketExpired,
			contains: []string{ticketId.Hex(), "1755604800"},
		},
		{
			err:      TimeoutError{TicketId: ticketId, LastStatus: StatusCreated, Waited: time.Second},
			sentinel: ErrAwaitTimeout,
			contains: []string{ticketId.Hex(), "created"},
		},
	}
	for _, testCase := range testCases {
		if !errors.Is(testCase.err, testCase.sentinel) {
			Fail(t, "error does not match its sentinel", testCase.err)
		}
		for _, other := range testCases {
			if other.sentinel != testCase.sentinel && errors.Is(testCase.err, other.sentinel) {
				Fail(t, "error matches a foreign sentinel", testCase.err, other.sentinel)
			}
		}
		text := testCase.err.Error()
		for _, want := range testCase.contains {
			if !strings.Contains(text, want) {
				Fail(t, "error text missing detail", text, "want", want)
			}
		}
	}
}

func TestAllowanceErrorWithoutAmounts(t *testing.T) {
	t.Parallel()
	err := AllowanceError{Owner: testhelpers.RandomAddress(), Spender: testInboxAddress}
	if strings.Contains(err.Error(), "have") || strings.Contains(err.Error(), "need") {
		Fail(t, "unknown amounts should not be printed", err.Error())
	}
}
