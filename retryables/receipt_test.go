// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package retryables

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/offchainlabs/feetoken-bridge/solgen/go/bridgegen"
	"github.com/offchainlabs/feetoken-bridge/util/testhelpers"
)

var (
	testBridge     = common.HexToAddress("0x5eCF728ffC5C5E802091875f96281B5aeECf6C49")
	testInbox      = common.HexToAddress("0x9f8c1c641336A371031499e3c362e40d58d0f254")
	testOtherInbox = common.HexToAddress("0x3EE18B2214AFF97000D974cf647E7C347E8fa585")
)

func deliveredLog(t *testing.T, inbox common.Address, messageIndex int64, kind uint8, sender common.Address, baseFee *big.Int, timestamp uint64, dataHash common.Hash) *types.Log {
	t.Helper()
	bridgeABI, err := bridgegen.IERC20BridgeMetaData.GetAbi()
	Require(t, err)
	data, err := bridgeABI.Events["MessageDelivered"].Inputs.NonIndexed().Pack(
		inbox, kind, sender, dataHash, baseFee, timestamp,
	)
	Require(t, err)
	return &types.Log{
		Address: testBridge,
		Topics:  []common.Hash{messageDeliveredID, common.BigToHash(big.NewInt(messageIndex)), testhelpers.RandomHash()},
		Data:    data,
	}
}

func payloadLog(t *testing.T, inbox common.Address, messageIndex int64, payload []byte) *types.Log {
	t.Helper()
	providerABI, err := bridgegen.IDelayedMessageProviderMetaData.GetAbi()
	Require(t, err)
	data, err := providerABI.Events["InboxMessageDelivered"].Inputs.NonIndexed().Pack(payload)
	Require(t, err)
	return &types.Log{
		Address: inbox,
		Topics:  []common.Hash{inboxMessageDeliveredID, common.BigToHash(big.NewInt(messageIndex))},
		Data:    data,
	}
}

func TestParseSubmitRetryableReceipt(t *testing.T) {
	want := fundedSubmitMessage()
	payload, err := want.Encode()
	Require(t, err)

	// Payload before its MessageDelivered, plus an unrelated message through
	// another inbox: correlation must not depend on log order and must skip
	// messages that are not ours.
	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			payloadLog(t, testInbox, 1057, payload),
			deliveredLog(t, testOtherInbox, 1056, L1MessageType_SubmitRetryable, testhelpers.RandomAddress(),
				big.NewInt(1), 1755000000, testhelpers.RandomHash()),
			deliveredLog(t, testInbox, 1057, L1MessageType_SubmitRetryable, testSender,
				big.NewInt(1500000000), 1755000000, crypto.Keccak256Hash(payload)),
		},
	}

	msg, err := ParseSubmitRetryable(receipt, testInbox, testBridge)
	Require(t, err)
	checkSamePayload(t, want, msg)
	if msg.MessageNum.Cmp(big.NewInt(1057)) != 0 {
		Fail(t, "wrong message number", msg.MessageNum)
	}
	if msg.From != RemapL1Address(testSender) {
		Fail(t, "sender not aliased", msg.From)
	}
	if msg.L1BaseFee.Cmp(big.NewInt(1500000000)) != 0 {
		Fail(t, "wrong parent base fee", msg.L1BaseFee)
	}
	if msg.ParentTimestamp != 1755000000 {
		Fail(t, "wrong parent timestamp", msg.ParentTimestamp)
	}

	id, err := msg.TicketId(testChainId)
	Require(t, err)
	if id != common.HexToHash("0x68f710f5343e44f295d5a2c85fd37fd55260abb6cebbf49ff1ec549198da9dd9") {
		Fail(t, "receipt-derived ticket id mismatch", id)
	}
}

func TestParseSubmitRetryableBadHash(t *testing.T) {
	payload, err := fundedSubmitMessage().Encode()
	Require(t, err)
	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			deliveredLog(t, testInbox, 7, L1MessageType_SubmitRetryable, testSender,
				big.NewInt(1), 1755000000, testhelpers.RandomHash()),
			payloadLog(t, testInbox, 7, payload),
		},
	}
	if _, err := ParseSubmitRetryable(receipt, testInbox, testBridge); err == nil {
		Fail(t, "accepted a payload with the wrong hash")
	}
}

func TestParseSubmitRetryableMissingPayload(t *testing.T) {
	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			deliveredLog(t, testInbox, 7, L1MessageType_SubmitRetryable, testSender,
				big.NewInt(1), 1755000000, testhelpers.RandomHash()),
		},
	}
	if _, err := ParseSubmitRetryable(receipt, testInbox, testBridge); err == nil {
		Fail(t, "accepted a message with no payload")
	}
}

func TestParseDepositReceipt(t *testing.T) {
	to := testhelpers.RandomAddress()
	value := big.NewInt(2000000000000000000)
	payload := append(to.Bytes(), common.BigToHash(value).Bytes()...)
	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			deliveredLog(t, testInbox, 99, L1MessageType_EthDeposit, testSender,
				big.NewInt(1), 1755000017, crypto.Keccak256Hash(payload)),
			payloadLog(t, testInbox, 99, payload),
		},
	}

	msg, err := ParseDeposit(receipt, testInbox, testBridge)
	Require(t, err)
	if msg.To != to {
		Fail(t, "wrong deposit destination", msg.To)
	}
	if msg.Value.Cmp(value) != 0 {
		Fail(t, "wrong deposit value", msg.Value)
	}
	if msg.MessageNum.Cmp(big.NewInt(99)) != 0 {
		Fail(t, "wrong message number", msg.MessageNum)
	}
	if msg.ParentTimestamp != 1755000017 {
		Fail(t, "wrong parent timestamp", msg.ParentTimestamp)
	}

	// The same receipt holds no retryable.
	if _, err := ParseSubmitRetryable(receipt, testInbox, testBridge); err == nil {
		Fail(t, "found a retryable in a plain deposit")
	}
}
