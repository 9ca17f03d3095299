// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package retryables

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/offchainlabs/feetoken-bridge/solgen/go/bridgegen"
)

var messageDeliveredID common.Hash
var inboxMessageDeliveredID common.Hash

func init() {
	parsedBridgeABI, err := bridgegen.IERC20BridgeMetaData.GetAbi()
	if err != nil {
		panic(err)
	}
	messageDeliveredID = parsedBridgeABI.Events["MessageDelivered"].ID

	parsedProviderABI, err := bridgegen.IDelayedMessageProviderMetaData.GetAbi()
	if err != nil {
		panic(err)
	}
	inboxMessageDeliveredID = parsedProviderABI.Events["InboxMessageDelivered"].ID
}

type deliveredMessage struct {
	log  *bridgegen.IERC20BridgeMessageDelivered
	data []byte
}

// deliveredMessages pairs each MessageDelivered event the bridge emitted in
// this receipt with the payload bytes the inbox published for it, checking
// the payload against the delivered data hash.
func deliveredMessages(receipt *types.Receipt, inbox, bridge common.Address) ([]*deliveredMessage, error) {
	bridgeFilterer, err := bridgegen.NewIERC20BridgeFilterer(bridge, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	providerFilterer, err := bridgegen.NewIDelayedMessageProviderFilterer(inbox, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var parsedLogs []*bridgegen.IERC20BridgeMessageDelivered
	messageData := make(map[common.Hash][]byte)
	for _, ethLog := range receipt.Logs {
		if len(ethLog.Topics) == 0 {
			continue
		}
		switch {
		case ethLog.Address == bridge && ethLog.Topics[0] == messageDeliveredID:
			parsedLog, err := bridgeFilterer.ParseMessageDelivered(*ethLog)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			parsedLogs = append(parsedLogs, parsedLog)
		case ethLog.Address == inbox && ethLog.Topics[0] == inboxMessageDeliveredID:
			parsedLog, err := providerFilterer.ParseInboxMessageDelivered(*ethLog)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			messageData[common.BigToHash(parsedLog.MessageNum)] = parsedLog.Data
		}
	}

	messages := make([]*deliveredMessage, 0, len(parsedLogs))
	for _, parsedLog := range parsedLogs {
		if parsedLog.Inbox != inbox {
			continue
		}
		data, ok := messageData[common.BigToHash(parsedLog.MessageIndex)]
		if !ok {
			return nil, errors.New("message data not found")
		}
		if crypto.Keccak256Hash(data) != parsedLog.MessageDataHash {
			return nil, errors.New("found message data with mismatched hash")
		}
		messages = append(messages, &deliveredMessage{log: parsedLog, data: data})
	}
	return messages, nil
}

// ParseSubmitRetryable extracts the submit-retryable message a confirmed
// deposit transaction delivered through the given inbox. The first matching
// message wins; a deposit delivers exactly one.
func ParseSubmitRetryable(receipt *types.Receipt, inbox, bridge common.Address) (*SubmitRetryableMessage, error) {
	delivered, err := deliveredMessages(receipt, inbox, bridge)
	if err != nil {
		return nil, err
	}
	for _, delivery := range delivered {
		if delivery.log.Kind != L1MessageType_SubmitRetryable {
			continue
		}
		msg, err := parseSubmitRetryableData(bytes.NewReader(delivery.data))
		if err != nil {
			return nil, errors.Wrap(err, "bad submit-retryable payload")
		}
		msg.MessageNum = delivery.log.MessageIndex
		msg.From = RemapL1Address(delivery.log.Sender)
		msg.L1BaseFee = delivery.log.BaseFeeL1
		msg.ParentTimestamp = delivery.log.Timestamp
		return msg, nil
	}
	return nil, errors.New("no submit-retryable message in receipt")
}

// ParseDeposit extracts the plain deposit message a confirmed depositERC20
// transaction delivered through the given inbox.
func ParseDeposit(receipt *types.Receipt, inbox, bridge common.Address) (*DepositMessage, error) {
	delivered, err := deliveredMessages(receipt, inbox, bridge)
	if err != nil {
		return nil, err
	}
	for _, delivery := range delivered {
		if delivery.log.Kind != L1MessageType_EthDeposit {
			continue
		}
		msg, err := parseDepositData(bytes.NewReader(delivery.data))
		if err != nil {
			return nil, errors.Wrap(err, "bad deposit payload")
		}
		msg.MessageNum = delivery.log.MessageIndex
		msg.ParentTimestamp = delivery.log.Timestamp
		return msg, nil
	}
	return nil, errors.New("no deposit message in receipt")
}
