// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package bridgeclient

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
)

// Approve grants spender an allowance on the fee token and returns the pending
// parent-chain transaction without waiting for it. A nil amount grants the
// maximum representable allowance. Submission failures surface verbatim; no
// retries.
func (c *Client) Approve(ctx context.Context, spender common.Address, amount *big.Int) (*types.Transaction, error) {
	if spender == (common.Address{}) {
		return nil, inputError("approval spender is the zero address")
	}
	if amount == nil {
		amount = math.MaxBig256
	} else if amount.Sign() < 0 {
		return nil, inputError("approval amount %v is negative", amount)
	}
	opts, err := c.parentTxOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := c.token.Approve(opts, spender, amount)
	if err != nil {
		return nil, err
	}
	log.Info("approving fee token spend", "token", c.tokenAddress, "spender", spender, "amount", amount, "tx", tx.Hash())
	return tx, nil
}

// ApproveInbox approves the configured inbox, the spender a deposit needs.
func (c *Client) ApproveInbox(ctx context.Context, amount *big.Int) (*types.Transaction, error) {
	return c.Approve(ctx, c.inboxAddress, amount)
}

// AllowanceOf reads the current allowance straight from the chain.
func (c *Client) AllowanceOf(ctx context.Context, owner common.Address, spender common.Address) (*big.Int, error) {
	return c.token.Allowance(c.callOpts(ctx), owner, spender)
}
