// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package bridgeclient

import (
	"context"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/params"

	"github.com/offchainlabs/feetoken-bridge/retryables"
	"github.com/offchainlabs/feetoken-bridge/util/arbmath"
)

// DepositEstimate is the funding breakdown of a prospective deposit.
// TokenTotal is what the inbox will pull from the depositor: the amount itself
// plus the submission fee plus the auto-redeem gas purchase.
type DepositEstimate struct {
	GasLimit      uint64
	MaxFeePerGas  *big.Int
	SubmissionFee *big.Int
	TokenTotal    *big.Int
}

// DepositResult is a confirmed deposit: the parent transaction that locked the
// tokens and the ticket it created. Confirmation guarantees ticket creation
// only, not redemption.
type DepositResult struct {
	ParentTx      *types.Transaction
	ParentReceipt *types.Receipt
	Ticket        *retryables.Ticket
}

// EstimateDeposit dry-runs the funding of a deposit without submitting
// anything. With auto-redeem gas disabled the gas fields are zero and
// TokenTotal covers the amount and submission fee alone.
func (c *Client) EstimateDeposit(ctx context.Context, amount *big.Int, destination common.Address) (*DepositEstimate, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, inputError("deposit amount %v is not positive", amount)
	}
	if destination == (common.Address{}) {
		if c.parentAuth == nil {
			return nil, inputError("no destination and no parent-chain account to default to")
		}
		destination = c.parentAuth.From
	}
	submissionFee, err := c.inbox.CalculateRetryableSubmissionFee(c.callOpts(ctx), common.Big0, common.Big0)
	if err != nil {
		return nil, errors.Wrap(err, "failed reading submission fee from inbox")
	}
	estimate := &DepositEstimate{
		GasLimit:      0,
		MaxFeePerGas:  common.Big0,
		SubmissionFee: submissionFee,
		TokenTotal:    arbmath.BigAdd(amount, submissionFee),
	}
	if c.config.AutoRedeemGas.Disable {
		return estimate, nil
	}
	gasLimit, err := c.estimateRedeemGas(ctx, amount, destination)
	if err != nil {
		return nil, err
	}
	gasPrice, err := c.childClient.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed reading child gas price")
	}
	estimate.GasLimit = uint64(float64(gasLimit) * c.config.AutoRedeemGas.LimitPadding)
	estimate.MaxFeePerGas = arbmath.BigMulByFrac(gasPrice, int64(c.config.AutoRedeemGas.FeeCapPadding*100), 100)
	gasCost := arbmath.BigMulByUint(estimate.MaxFeePerGas, estimate.GasLimit)
	estimate.TokenTotal = arbmath.BigAdd(estimate.TokenTotal, gasCost)
	return estimate, nil
}

// estimateRedeemGas asks the child node how much gas the scheduled redemption
// of this deposit would burn. The node simulates the submit transaction, so
// the sender is the parent address and aliasing is its concern, not ours.
func (c *Client) estimateRedeemGas(ctx context.Context, amount *big.Int, destination common.Address) (uint64, error) {
	opts, err := c.childTxOpts(ctx)
	if err != nil {
		return 0, err
	}
	opts.NoSend = true
	// Simulation funding, not a real transfer. One whole token of headroom
	// keeps the fake submit from running dry at any sane gas price.
	simDeposit := arbmath.BigAdd(amount, big.NewInt(params.Ether))
	tx, err := c.nodeInterface.EstimateRetryableTicket(
		opts,
		c.depositorAddress(),
		simDeposit,
		destination,
		amount,
		c.depositorAddress(),
		c.depositorAddress(),
		[]byte{},
	)
	if err != nil {
		return 0, errors.Wrap(err, "failed estimating redeem gas")
	}
	return tx.Gas(), nil
}

func (c *Client) depositorAddress() common.Address {
	if c.parentAuth == nil {
		return common.Address{}
	}
	return c.parentAuth.From
}

// Deposit locks amount of the fee token in the bridge and requests a ticket
// crediting destination on the child chain, in one parent transaction. A zero
// destination defaults to the sender. The returned ticket's id is derived
// locally from the confirmed receipt; monitoring can begin immediately.
func (c *Client) Deposit(ctx context.Context, amount *big.Int, destination common.Address) (*DepositResult, error) {
	estimate, err := c.EstimateDeposit(ctx, amount, destination)
	if err != nil {
		return nil, err
	}
	opts, err := c.parentTxOpts(ctx)
	if err != nil {
		return nil, err
	}
	sender := opts.From
	if destination == (common.Address{}) {
		destination = sender
	}
	tx, err := c.inbox.CreateRetryableTicket(
		opts,
		destination,
		amount,
		estimate.SubmissionFee,
		sender,
		sender,
		arbmath.UintToBig(estimate.GasLimit),
		estimate.MaxFeePerGas,
		estimate.TokenTotal,
		[]byte{},
	)
	if err != nil {
		return nil, c.classifyDepositError(ctx, sender, estimate.TokenTotal, common.Hash{}, err)
	}
	receipt, err := c.ensureParentTx(ctx, tx)
	if err != nil {
		return nil, c.classifyDepositError(ctx, sender, estimate.TokenTotal, tx.Hash(), err)
	}
	msg, err := retryables.ParseSubmitRetryable(receipt, c.inboxAddress, c.bridgeAddress)
	if err != nil {
		return nil, errors.Wrap(err, "deposit confirmed but receipt yielded no ticket")
	}
	ticket, err := retryables.NewTicket(msg, c.childChainId, tx.Hash(), c.Lifetime())
	if err != nil {
		return nil, err
	}
	log.Info("submitted retryable ticket",
		"ticketId", ticket.Id, "amount", amount, "destination", destination,
		"parentTx", tx.Hash(), "messageNum", ticket.MessageNum(), "funded", ticket.Funded())
	return &DepositResult{ParentTx: tx, ParentReceipt: receipt, Ticket: ticket}, nil
}

// DepositDirect uses the inbox's plain deposit path: no ticket, no redemption,
// the credited address chosen by the inbox (the sender, aliased when it is a
// contract). Returns the parsed deposit message from the confirmed receipt.
func (c *Client) DepositDirect(ctx context.Context, amount *big.Int) (*types.Transaction, *retryables.DepositMessage, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, nil, inputError("deposit amount %v is not positive", amount)
	}
	opts, err := c.parentTxOpts(ctx)
	if err != nil {
		return nil, nil, err
	}
	tx, err := c.inbox.DepositERC20(opts, amount)
	if err != nil {
		return nil, nil, c.classifyDepositError(ctx, opts.From, amount, common.Hash{}, err)
	}
	receipt, err := c.ensureParentTx(ctx, tx)
	if err != nil {
		return nil, nil, c.classifyDepositError(ctx, opts.From, amount, tx.Hash(), err)
	}
	msg, err := retryables.ParseDeposit(receipt, c.inboxAddress, c.bridgeAddress)
	if err != nil {
		return nil, nil, errors.Wrap(err, "deposit confirmed but receipt yielded no message")
	}
	log.Info("deposited fee token directly", "amount", amount, "to", msg.To, "parentTx", tx.Hash(), "messageNum", msg.MessageNum)
	return tx, msg, nil
}

// Revert reasons the OpenZeppelin token implementations use when a transferFrom
// exceeds the approval.
var allowanceRevertPhrases = []string{
	"insufficient allowance",
	"transfer amount exceeds allowance",
}

// classifyDepositError tells an underfunded allowance apart from every other
// submission failure. The failed call was already re-executed upstream, so the
// revert reason is in the error text.
func (c *Client) classifyDepositError(ctx context.Context, owner common.Address, need *big.Int, txHash common.Hash, err error) error {
	text := err.Error()
	for _, phrase := range allowanceRevertPhrases {
		if !strings.Contains(text, phrase) {
			continue
		}
		allowanceErr := AllowanceError{Owner: owner, Spender: c.inboxAddress, Need: need}
		if have, readErr := c.AllowanceOf(ctx, owner, c.inboxAddress); readErr == nil {
			allowanceErr.Have = have
		}
		return allowanceErr
	}
	return SubmissionError{TxHash: txHash, cause: err}
}
