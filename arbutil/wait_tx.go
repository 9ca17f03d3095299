// Copyright 2024-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package arbutil

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// WaitForTx waits for a transaction to be mined and returns its receipt.
// It tries to subscribe to new heads for near-instant notification (requires
// a WebSocket connection). If subscriptions aren't supported (HTTP), it falls
// back to polling at the given interval.
func WaitForTx(ctx context.Context, client ChainClient, txHash common.Hash, pollInterval time.Duration) (*types.Receipt, error) {
	heads := make(chan *types.Header, 1)
	sub, subErr := client.SubscribeNewHead(ctx, heads)
	if subErr != nil {
		return pollForReceipt(ctx, client, txHash, pollInterval)
	}
	defer sub.Unsubscribe()

	for {
		receipt, err := client.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case err := <-sub.Err():
			if err != nil {
				return nil, fmt.Errorf("head subscription error while waiting for tx: %w", err)
			}
			return nil, errors.New("head subscription closed unexpectedly")
		case <-heads:
		}
	}
}

func pollForReceipt(ctx context.Context, client ChainClient, txHash common.Hash, pollInterval time.Duration) (*types.Receipt, error) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		receipt, err := client.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func EnsureTxSucceeded(ctx context.Context, client ChainClient, tx *types.Transaction) (*types.Receipt, error) {
	return EnsureTxSucceededWithTimeout(ctx, client, tx, time.Second*5)
}

// EnsureTxSucceededWithTimeout waits for tx to be mined and checks that it
// did not revert. A reverted transaction is re-executed as a call to surface
// the revert reason in the returned error.
func EnsureTxSucceededWithTimeout(ctx context.Context, client ChainClient, tx *types.Transaction, timeout time.Duration) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	txRes, err := WaitForTx(waitCtx, client, tx.Hash(), timeout/10)
	if err != nil {
		return nil, fmt.Errorf("waitForTx (tx=%s) got: %w", tx.Hash().Hex(), err)
	}
	return txRes, DetailTxError(ctx, client, tx, txRes)
}
