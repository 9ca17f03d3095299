// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package retryables

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// submitRetryableTx mirrors the child chain's submit-retryable transaction
// for hashing. Field order is the execution layer's RLP order; changing it
// changes every derived ticket id.
type submitRetryableTx struct {
	ChainId          *big.Int
	RequestId        common.Hash
	From             common.Address
	L1BaseFee        *big.Int
	DepositValue     *big.Int
	GasFeeCap        *big.Int
	Gas              uint64
	RetryTo          *common.Address `rlp:"nil"`
	RetryValue       *big.Int
	Beneficiary      common.Address
	MaxSubmissionFee *big.Int
	FeeRefundAddr    common.Address
	RetryData        []byte
}

// TicketId computes the hash the child chain assigns to this message's
// submit transaction, which doubles as the retryable's ticket id. It only
// depends on the confirmed parent transaction, so it is known before the
// child chain processes the message.
func (msg *SubmitRetryableMessage) TicketId(chainId *big.Int) (common.Hash, error) {
	inner := &submitRetryableTx{
		ChainId:          chainId,
		RequestId:        msg.RequestId(),
		From:             msg.From,
		L1BaseFee:        msg.L1BaseFee,
		DepositValue:     msg.DepositValue,
		GasFeeCap:        msg.GasFeeCap,
		Gas:              msg.GasLimit,
		RetryTo:          msg.RetryTo,
		RetryValue:       msg.L2CallValue,
		Beneficiary:      msg.Beneficiary,
		MaxSubmissionFee: msg.MaxSubmissionFee,
		FeeRefundAddr:    msg.FeeRefundAddress,
		RetryData:        msg.RetryData,
	}
	encoded, err := rlp.EncodeToBytes(inner)
	if err != nil {
		return common.Hash{}, errors.WithStack(err)
	}
	return crypto.Keccak256Hash(append([]byte{SubmitRetryableTxType}, encoded...)), nil
}
