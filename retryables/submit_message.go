// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package retryables

import (
	"bytes"
	"errors"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// SubmitRetryableMessage is one submit-retryable delayed message: the packed
// inbox payload plus the delivery metadata the bridge event carries. All of a
// ticket's economics live here, and together with the chain id it determines
// the ticket id.
type SubmitRetryableMessage struct {
	// Delivery metadata from the MessageDelivered event.
	MessageNum      *big.Int
	From            common.Address // parent chain sender, already aliased
	L1BaseFee       *big.Int
	ParentTimestamp uint64

	// Packed payload fields, in wire order.
	RetryTo          *common.Address // nil if the wire target was zero
	L2CallValue      *big.Int
	DepositValue     *big.Int
	MaxSubmissionFee *big.Int
	FeeRefundAddress common.Address
	Beneficiary      common.Address
	GasLimit         uint64
	GasFeeCap        *big.Int
	RetryData        []byte
}

// RequestId is the delayed-message sequence number as a 32-byte id.
func (msg *SubmitRetryableMessage) RequestId() common.Hash {
	return common.BigToHash(msg.MessageNum)
}

func parseSubmitRetryableData(rd io.Reader) (*SubmitRetryableMessage, error) {
	retryTo, err := addressFrom256FromReader(rd)
	if err != nil {
		return nil, err
	}
	var pRetryTo *common.Address
	if retryTo != (common.Address{}) {
		pRetryTo = &retryTo
	}
	l2CallValue, err := hashFromReader(rd)
	if err != nil {
		return nil, err
	}
	depositValue, err := hashFromReader(rd)
	if err != nil {
		return nil, err
	}
	maxSubmissionFee, err := hashFromReader(rd)
	if err != nil {
		return nil, err
	}
	feeRefundAddress, err := addressFrom256FromReader(rd)
	if err != nil {
		return nil, err
	}
	beneficiary, err := addressFrom256FromReader(rd)
	if err != nil {
		return nil, err
	}
	gasLimit256, err := hashFromReader(rd)
	if err != nil {
		return nil, err
	}
	gasLimit := gasLimit256.Big()
	if !gasLimit.IsUint64() {
		return nil, errors.New("retryable gas limit too large")
	}
	gasFeeCap, err := hashFromReader(rd)
	if err != nil {
		return nil, err
	}
	dataLength256, err := hashFromReader(rd)
	if err != nil {
		return nil, err
	}
	dataLength := dataLength256.Big()
	if !dataLength.IsUint64() {
		return nil, errors.New("retryable data length too large")
	}
	if dataLength.Uint64() > MaxL2MessageSize {
		return nil, errors.New("retryable data too large")
	}
	data := make([]byte, dataLength.Uint64())
	if _, err := io.ReadFull(rd, data); err != nil {
		return nil, err
	}
	return &SubmitRetryableMessage{
		RetryTo:          pRetryTo,
		L2CallValue:      l2CallValue.Big(),
		DepositValue:     depositValue.Big(),
		MaxSubmissionFee: maxSubmissionFee.Big(),
		FeeRefundAddress: feeRefundAddress,
		Beneficiary:      beneficiary,
		GasLimit:         gasLimit.Uint64(),
		GasFeeCap:        gasFeeCap.Big(),
		RetryData:        data,
	}, nil
}

// Encode packs the payload fields back into the inbox wire format. A parsed
// message re-encodes to the exact bytes the inbox delivered.
func (msg *SubmitRetryableMessage) Encode() ([]byte, error) {
	wr := &bytes.Buffer{}
	retryTo := common.Address{}
	if msg.RetryTo != nil {
		retryTo = *msg.RetryTo
	}
	if err := addressTo256ToWriter(retryTo, wr); err != nil {
		return nil, err
	}
	if err := hashToWriter(common.BigToHash(msg.L2CallValue), wr); err != nil {
		return nil, err
	}
	if err := hashToWriter(common.BigToHash(msg.DepositValue), wr); err != nil {
		return nil, err
	}
	if err := hashToWriter(common.BigToHash(msg.MaxSubmissionFee), wr); err != nil {
		return nil, err
	}
	if err := addressTo256ToWriter(msg.FeeRefundAddress, wr); err != nil {
		return nil, err
	}
	if err := addressTo256ToWriter(msg.Beneficiary, wr); err != nil {
		return nil, err
	}
	if err := hashToWriter(common.BigToHash(new(big.Int).SetUint64(msg.GasLimit)), wr); err != nil {
		return nil, err
	}
	if err := hashToWriter(common.BigToHash(msg.GasFeeCap), wr); err != nil {
		return nil, err
	}
	if err := hashToWriter(common.BigToHash(new(big.Int).SetUint64(uint64(len(msg.RetryData)))), wr); err != nil {
		return nil, err
	}
	if _, err := wr.Write(msg.RetryData); err != nil {
		return nil, err
	}
	return wr.Bytes(), nil
}

// DepositMessage is the parsed form of a plain fee-token deposit delivered
// through depositERC20: the destination is credited directly, no retryable
// involved.
type DepositMessage struct {
	MessageNum      *big.Int
	To              common.Address
	Value           *big.Int
	ParentTimestamp uint64
}

func parseDepositData(rd io.Reader) (*DepositMessage, error) {
	to, err := addressFromReader(rd)
	if err != nil {
		return nil, err
	}
	balance, err := hashFromReader(rd)
	if err != nil {
		return nil, err
	}
	return &DepositMessage{
		To:    to,
		Value: balance.Big(),
	}, nil
}

func hashFromReader(rd io.Reader) (common.Hash, error) {
	buf := make([]byte, 32)
	if _, err := io.ReadFull(rd, buf); err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(buf), nil
}

func addressFromReader(rd io.Reader) (common.Address, error) {
	buf := make([]byte, 20)
	if _, err := io.ReadFull(rd, buf); err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(buf), nil
}

func addressFrom256FromReader(rd io.Reader) (common.Address, error) {
	h, err := hashFromReader(rd)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(h.Bytes()[12:]), nil
}

func hashToWriter(val common.Hash, wr io.Writer) error {
	_, err := wr.Write(val.Bytes())
	return err
}

func addressTo256ToWriter(val common.Address, wr io.Writer) error {
	if _, err := wr.Write(make([]byte, 12)); err != nil {
		return err
	}
	_, err := wr.Write(val.Bytes())
	return err
}
