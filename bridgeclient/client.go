// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

// Package bridgeclient moves a child chain's native ERC-20 gas token from the
// parent chain into child-chain balance and drives the resulting retryable
// tickets to redemption.
package bridgeclient

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/pkg/errors"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/offchainlabs/feetoken-bridge/arbutil"
	"github.com/offchainlabs/feetoken-bridge/retryables"
	"github.com/offchainlabs/feetoken-bridge/solgen/go/bridgegen"
	"github.com/offchainlabs/feetoken-bridge/solgen/go/node_interfacegen"
	"github.com/offchainlabs/feetoken-bridge/solgen/go/precompilesgen"
	"github.com/offchainlabs/feetoken-bridge/util/arbmath"
	"github.com/offchainlabs/feetoken-bridge/util/containers"
)

// Client is a fee-token bridge client bound to one parent-chain inbox and the
// child chain it feeds. It holds no state between calls beyond in-flight
// ticket monitors; allowances, balances, and ticket status are re-read from
// the chains on every query.
type Client struct {
	config       *Config
	parentClient arbutil.ChainClient
	childClient  arbutil.ChainClient
	parentAuth   *bind.TransactOpts
	childAuth    *bind.TransactOpts

	inboxAddress  common.Address
	bridgeAddress common.Address
	tokenAddress  common.Address

	inbox         *bridgegen.IERC20Inbox
	bridge        *bridgegen.IERC20Bridge
	token         *bridgegen.ERC20
	retryableTx   *precompilesgen.ArbRetryableTx
	nodeInterface *node_interfacegen.NodeInterface

	childChainId *big.Int

	monitors containers.SyncMap[common.Hash, *TicketMonitor]
}

// NewClient discovers the bridge and its native fee token from the configured
// inbox and verifies the setup against both chains. The transact opts may be
// nil; operations needing the missing account fail with an input error.
func NewClient(ctx context.Context, config *Config, parentClient, childClient arbutil.ChainClient, parentAuth, childAuth *bind.TransactOpts) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	callOpts := &bind.CallOpts{Context: ctx}
	inboxAddress := config.InboxAddress()
	inbox, err := bridgegen.NewIERC20Inbox(inboxAddress, parentClient)
	if err != nil {
		return nil, err
	}
	bridgeAddress, err := inbox.Bridge(callOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed reading bridge address from inbox")
	}
	bridge, err := bridgegen.NewIERC20Bridge(bridgeAddress, parentClient)
	if err != nil {
		return nil, err
	}
	tokenAddress, err := bridge.NativeToken(callOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed reading native token from bridge")
	}
	if tokenAddress == (common.Address{}) {
		return nil, fmt.Errorf("bridge %v has no native fee token", bridgeAddress)
	}
	token, err := bridgegen.NewERC20(tokenAddress, parentClient)
	if err != nil {
		return nil, err
	}
	retryableTx, err := precompilesgen.NewArbRetryableTx(retryables.ArbRetryableTxAddress, childClient)
	if err != nil {
		return nil, err
	}
	nodeInterface, err := node_interfacegen.NewNodeInterface(retryables.NodeInterfaceAddress, childClient)
	if err != nil {
		return nil, err
	}
	childChainId, err := childClient.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed reading child chain id")
	}
	c := &Client{
		config:        config,
		parentClient:  parentClient,
		childClient:   childClient,
		parentAuth:    parentAuth,
		childAuth:     childAuth,
		inboxAddress:  inboxAddress,
		bridgeAddress: bridgeAddress,
		tokenAddress:  tokenAddress,
		inbox:         inbox,
		bridge:        bridge,
		token:         token,
		retryableTx:   retryableTx,
		nodeInterface: nodeInterface,
		childChainId:  childChainId,
	}
	if !config.SkipChainChecks {
		if err := c.checkChains(ctx); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Client) checkChains(ctx context.Context) error {
	callOpts := &bind.CallOpts{Context: ctx}
	allowed, err := c.bridge.AllowedDelayedInboxes(callOpts, c.inboxAddress)
	if err != nil {
		return errors.Wrap(err, "failed checking inbox registration")
	}
	if !allowed {
		return fmt.Errorf("inbox %v is not registered with bridge %v", c.inboxAddress, c.bridgeAddress)
	}
	lifetime, err := c.retryableTx.GetLifetime(callOpts)
	if err != nil {
		return errors.Wrap(err, "failed reading retryable lifetime")
	}
	configured := int64(c.config.TicketLifetime / time.Second)
	if !arbmath.BigEquals(lifetime, big.NewInt(configured)) {
		return fmt.Errorf("configured ticket lifetime %vs does not match the chain's %vs", configured, lifetime)
	}
	return nil
}

func (c *Client) InboxAddress() common.Address  { return c.inboxAddress }
func (c *Client) BridgeAddress() common.Address { return c.bridgeAddress }
func (c *Client) TokenAddress() common.Address  { return c.tokenAddress }

// Lifetime is the validity window of tickets this client creates.
func (c *Client) Lifetime() uint64 {
	return uint64(c.config.TicketLifetime / time.Second)
}

func (c *Client) callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

func (c *Client) parentTxOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if c.parentAuth == nil {
		return nil, inputError("no parent-chain account configured")
	}
	opts := *c.parentAuth
	opts.Context = ctx
	return &opts, nil
}

func (c *Client) childTxOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if c.childAuth == nil {
		return nil, inputError("no child-chain account configured")
	}
	opts := *c.childAuth
	opts.Context = ctx
	return &opts, nil
}

// ensureParentTx waits for a parent-chain transaction and surfaces a revert
// reason when it failed.
func (c *Client) ensureParentTx(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return arbutil.EnsureTxSucceededWithTimeout(ctx, c.parentClient, tx, c.config.TxTimeout)
}

func (c *Client) ensureChildTx(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return arbutil.EnsureTxSucceededWithTimeout(ctx, c.childClient, tx, c.config.TxTimeout)
}
