// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package bridgeclient

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"

	"github.com/offchainlabs/feetoken-bridge/arbutil"
	"github.com/offchainlabs/feetoken-bridge/retryables"
)

// redeemOnce submits one redeem transaction and waits for both it and the
// retry transaction it schedules. Returns the retry receipt; its status says
// whether the redemption actually executed.
func (c *Client) redeemOnce(ctx context.Context, ticketId common.Hash) (*types.Receipt, error) {
	opts, err := c.childTxOpts(ctx)
	if err != nil {
		return nil, err
	}
	redeemTx, err := c.retryableTx.Redeem(opts, ticketId)
	if err != nil {
		return nil, err
	}
	redeemReceipt, err := c.ensureChildTx(ctx, redeemTx)
	if err != nil {
		return nil, err
	}
	retryHash, ok := c.scheduledRetryTx(redeemReceipt, ticketId)
	if !ok {
		return nil, fmt.Errorf("redeem %v scheduled no retry transaction", redeemTx.Hash())
	}
	waitCtx, cancel := context.WithTimeout(ctx, c.config.TxTimeout)
	defer cancel()
	return arbutil.WaitForTx(waitCtx, c.childClient, retryHash, c.config.TxTimeout/10)
}

// RedeemTicket makes one explicit manual redemption. Redeeming a ticket that
// is already gone because someone else redeemed it is success with a nil
// receipt, not an error; otherwise the retry receipt is returned.
func (c *Client) RedeemTicket(ctx context.Context, ticketId common.Hash) (*types.Receipt, error) {
	retryReceipt, err := c.redeemOnce(ctx, ticketId)
	if err != nil {
		if !isNoTicketError(err) {
			return nil, err
		}
		redeemed, redeemedErr := c.wasRedeemed(ctx, ticketId, 0)
		if redeemedErr != nil {
			return nil, redeemedErr
		}
		if redeemed {
			log.Info("ticket already redeemed", "ticketId", ticketId)
			return nil, nil
		}
		return nil, err
	}
	if retryReceipt.Status != types.ReceiptStatusSuccessful {
		return retryReceipt, RedemptionError{
			TicketId:   ticketId,
			Attempts:   1,
			LastStatus: StatusManualRedeemFailed,
			cause:      errors.New("retry transaction reverted"),
		}
	}
	log.Info("redeemed ticket", "ticketId", ticketId, "retryTx", retryReceipt.TxHash)
	return retryReceipt, nil
}

// KeepaliveTicket extends the ticket's deadline by one lifetime and returns
// the new timeout.
func (c *Client) KeepaliveTicket(ctx context.Context, ticketId common.Hash) (*big.Int, error) {
	opts, err := c.childTxOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := c.retryableTx.Keepalive(opts, ticketId)
	if err != nil {
		return nil, err
	}
	receipt, err := c.ensureChildTx(ctx, tx)
	if err != nil {
		return nil, err
	}
	for _, ethLog := range receipt.Logs {
		if ethLog.Address != retryables.ArbRetryableTxAddress {
			continue
		}
		event, err := c.retryableTx.ParseLifetimeExtended(*ethLog)
		if err != nil || event.TicketId != ticketId {
			continue
		}
		log.Info("extended ticket lifetime", "ticketId", ticketId, "newTimeout", event.NewTimeout)
		return event.NewTimeout, nil
	}
	return c.retryableTx.GetTimeout(c.callOpts(ctx), ticketId)
}

// CancelTicket cancels the ticket, refunding its callvalue to the
// beneficiary. Only the beneficiary's account can do this.
func (c *Client) CancelTicket(ctx context.Context, ticketId common.Hash) (*types.Receipt, error) {
	opts, err := c.childTxOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := c.retryableTx.Cancel(opts, ticketId)
	if err != nil {
		return nil, err
	}
	receipt, err := c.ensureChildTx(ctx, tx)
	if err != nil {
		return nil, err
	}
	log.Info("cancelled ticket", "ticketId", ticketId)
	return receipt, nil
}

func (c *Client) TicketBeneficiary(ctx context.Context, ticketId common.Hash) (common.Address, error) {
	return c.retryableTx.GetBeneficiary(c.callOpts(ctx), ticketId)
}

// TicketTimeout reads the ticket's current deadline as a unix timestamp. The
// chain's view, not the locally derived one, so keepalives are reflected.
func (c *Client) TicketTimeout(ctx context.Context, ticketId common.Hash) (*big.Int, error) {
	return c.retryableTx.GetTimeout(c.callOpts(ctx), ticketId)
}
