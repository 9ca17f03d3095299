// Copyright 2021-2024, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package bridgeclient

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"

	"github.com/offchainlabs/feetoken-bridge/arbutil"
	"github.com/offchainlabs/feetoken-bridge/retryables"
	"github.com/offchainlabs/feetoken-bridge/solgen/go/bridgegen"
	"github.com/offchainlabs/feetoken-bridge/solgen/go/precompilesgen"
	"github.com/offchainlabs/feetoken-bridge/util/testhelpers"
)

func Require(t *testing.T, err error, printables ...interface{}) {
	t.Helper()
	testhelpers.RequireImpl(t, err, printables...)
}

func Fail(t *testing.T, printables ...interface{}) {
	t.Helper()
	testhelpers.FailImpl(t, printables...)
}

const (
	parentChainIdNum = 1337
	childChainIdNum  = 412346
)

var (
	testInboxAddress      = common.HexToAddress("0x9f8c1c641336A371031499e3c362e40d58d0f254")
	testOtherInboxAddress = common.HexToAddress("0x3EE18B2214AFF97000D974cf647E7C347E8fa585")
	testBridgeAddress     = common.HexToAddress("0x5eCF728ffC5C5E802091875f96281B5aeECf6C49")
	testTokenAddress      = common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831")
)

var (
	testERC20ABI     *abi.ABI
	testInboxABI     *abi.ABI
	testBridgeABI    *abi.ABI
	testProviderABI  *abi.ABI
	testRetryableABI *abi.ABI

	testMessageDeliveredID      common.Hash
	testInboxMessageDeliveredID common.Hash
	testTicketCreatedID         common.Hash
	testRedeemedID              common.Hash
	testCanceledID              common.Hash
	testLifetimeExtendedID      common.Hash
)

func init() {
	var err error
	if testERC20ABI, err = bridgegen.ERC20MetaData.GetAbi(); err != nil {
		panic(err)
	}
	if testInboxABI, err = bridgegen.IERC20InboxMetaData.GetAbi(); err != nil {
		panic(err)
	}
	if testBridgeABI, err = bridgegen.IERC20BridgeMetaData.GetAbi(); err != nil {
		panic(err)
	}
	if testProviderABI, err = bridgegen.IDelayedMessageProviderMetaData.GetAbi(); err != nil {
		panic(err)
	}
	if testRetryableABI, err = precompilesgen.ArbRetryableTxMetaData.GetAbi(); err != nil {
		panic(err)
	}
	testMessageDeliveredID = testBridgeABI.Events["MessageDelivered"].ID
	testInboxMessageDeliveredID = testProviderABI.Events["InboxMessageDelivered"].ID
	testTicketCreatedID = testRetryableABI.Events["TicketCreated"].ID
	testRedeemedID = testRetryableABI.Events["Redeemed"].ID
	testCanceledID = testRetryableABI.Events["Canceled"].ID
	testLifetimeExtendedID = testRetryableABI.Events["LifetimeExtended"].ID
}

// revertError mimics the error an RPC node returns for a reverted call, with
// the raw revert data attached the way ethclient attaches it.
type revertError struct {
	msg  string
	data string
}

func (e revertError) Error() string {
	return e.msg
}

func (e revertError) ErrorData() interface{} {
	return e.data
}

func noTicketRevert() error {
	return revertError{msg: "execution reverted", data: noTicketSelector}
}

// chainBackend is a scripted in-memory chain. Contract behavior lives in the
// three handler funcs; everything else is bookkeeping shared by both chains of
// a bridgeWorld.
type chainBackend struct {
	world   *bridgeWorld
	chainId *big.Int

	call     func(msg ethereum.CallMsg) ([]byte, error)
	estimate func(msg ethereum.CallMsg) (uint64, error)
	process  func(tx *types.Transaction) error

	mutex    sync.Mutex
	blockNum uint64
	nonces   map[common.Address]uint64
	balances map[common.Address]*big.Int
	receipts map[common.Hash]*types.Receipt
	txs      map[common.Hash]*types.Transaction
	logs     []types.Log
}

var _ arbutil.ChainClient = (*chainBackend)(nil)

func newChainBackend(world *bridgeWorld, chainId int64) *chainBackend {
	return &chainBackend{
		world:    world,
		chainId:  big.NewInt(chainId),
		nonces:   make(map[common.Address]uint64),
		balances: make(map[common.Address]*big.Int),
		receipts: make(map[common.Hash]*types.Receipt),
		txs:      make(map[common.Hash]*types.Transaction),
	}
}

func (b *chainBackend) signer() types.Signer {
	return types.LatestSignerForChainID(b.chainId)
}

// addReceipt mines one transaction into its own block and indexes its logs.
func (b *chainBackend) addReceipt(txHash common.Hash, status uint64, logs []*types.Log) *types.Receipt {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.blockNum++
	for i, ethLog := range logs {
		ethLog.BlockNumber = b.blockNum
		ethLog.TxHash = txHash
		ethLog.Index = uint(i)
		b.logs = append(b.logs, *ethLog)
	}
	receipt := &types.Receipt{
		Status:      status,
		TxHash:      txHash,
		Logs:        logs,
		BlockNumber: new(big.Int).SetUint64(b.blockNum),
		BlockHash:   common.BigToHash(new(big.Int).SetUint64(b.blockNum)),
		GasUsed:     21000,
	}
	b.receipts[txHash] = receipt
	return receipt
}

func (b *chainBackend) creditBalance(account common.Address, amount *big.Int) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	current := b.balances[account]
	if current == nil {
		current = big.NewInt(0)
	}
	b.balances[account] = new(big.Int).Add(current, amount)
}

func (b *chainBackend) ChainID(ctx context.Context) (*big.Int, error) {
	return b.chainId, nil
}

func (b *chainBackend) BlockNumber(ctx context.Context) (uint64, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.blockNum, nil
}

func (b *chainBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	now := b.world.now.Load()
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return &types.Header{
		Number:     new(big.Int).SetUint64(b.blockNum),
		Time:       now,
		BaseFee:    big.NewInt(params.GWei / 10),
		Difficulty: common.Big0,
	}, nil
}

func (b *chainBackend) HeaderByHash(ctx context.Context, hash common.Hash) (*types.Header, error) {
	return b.HeaderByNumber(ctx, nil)
}

func (b *chainBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x01}, nil
}

func (b *chainBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return []byte{0x01}, nil
}

func (b *chainBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.nonces[account], nil
}

func (b *chainBackend) NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error) {
	return b.PendingNonceAt(ctx, account)
}

func (b *chainBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(params.GWei / 10), nil
}

func (b *chainBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(params.GWei / 100), nil
}

func (b *chainBackend) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	balance := b.balances[account]
	if balance == nil {
		return big.NewInt(0), nil
	}
	return new(big.Int).Set(balance), nil
}

func (b *chainBackend) StorageAt(ctx context.Context, account common.Address, key common.Hash, blockNumber *big.Int) ([]byte, error) {
	return make([]byte, 32), nil
}

func (b *chainBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return b.call(msg)
}

func (b *chainBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	return b.estimate(msg)
}

func (b *chainBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	from, err := types.Sender(b.signer(), tx)
	if err != nil {
		return err
	}
	b.mutex.Lock()
	b.txs[tx.Hash()] = tx
	b.nonces[from]++
	b.mutex.Unlock()
	return b.process(tx)
}

func (b *chainBackend) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	var matched []types.Log
	for _, ethLog := range b.logs {
		if q.FromBlock != nil && ethLog.BlockNumber < q.FromBlock.Uint64() {
			continue
		}
		if q.ToBlock != nil && ethLog.BlockNumber > q.ToBlock.Uint64() {
			continue
		}
		if len(q.Addresses) > 0 && !containsAddress(q.Addresses, ethLog.Address) {
			continue
		}
		if !topicsMatch(q.Topics, ethLog.Topics) {
			continue
		}
		matched = append(matched, ethLog)
	}
	return matched, nil
}

func (b *chainBackend) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return nil, errors.New("subscriptions not supported")
}

func (b *chainBackend) SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error) {
	return nil, errors.New("subscriptions not supported")
}

func (b *chainBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	receipt := b.receipts[txHash]
	if receipt == nil {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

func (b *chainBackend) TransactionByHash(ctx context.Context, txHash common.Hash) (*types.Transaction, bool, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	tx := b.txs[txHash]
	if tx == nil {
		return nil, false, ethereum.NotFound
	}
	return tx, false, nil
}

func (b *chainBackend) TransactionSender(ctx context.Context, tx *types.Transaction, block common.Hash, index uint) (common.Address, error) {
	return types.Sender(b.signer(), tx)
}

func (b *chainBackend) BlockByHash(ctx context.Context, hash common.Hash) (*types.Block, error) {
	return nil, errors.New("blocks not recorded")
}

func (b *chainBackend) BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error) {
	return nil, errors.New("blocks not recorded")
}

func (b *chainBackend) TransactionCount(ctx context.Context, blockHash common.Hash) (uint, error) {
	return 0, errors.New("blocks not recorded")
}

func (b *chainBackend) TransactionInBlock(ctx context.Context, blockHash common.Hash, index uint) (*types.Transaction, error) {
	return nil, errors.New("blocks not recorded")
}

func containsAddress(addresses []common.Address, address common.Address) bool {
	for _, candidate := range addresses {
		if candidate == address {
			return true
		}
	}
	return false
}

func topicsMatch(filter [][]common.Hash, topics []common.Hash) bool {
	if len(filter) > len(topics) {
		return false
	}
	for i, alternatives := range filter {
		if len(alternatives) == 0 {
			continue
		}
		matched := false
		for _, want := range alternatives {
			if topics[i] == want {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

type worldTicket struct {
	timeout     uint64
	to          common.Address
	beneficiary common.Address
	callvalue   *big.Int
}

type pendingRetry struct {
	ticketId  common.Hash
	retryHash common.Hash
}

// bridgeWorld is a parent and a child chain sharing one clock, with the fee
// token, the inbox, the bridge, and the retryable precompile scripted in
// memory. Deposits submitted to the parent are sequenced into child tickets
// synchronously unless the test pauses part of the pipeline.
type bridgeWorld struct {
	now atomic.Uint64

	parent *chainBackend
	child  *chainBackend

	mutex         sync.Mutex
	allowances    map[common.Address]map[common.Address]*big.Int
	tokenBalances map[common.Address]*big.Int
	custody       *big.Int
	messageCount  uint64
	submissionFee *big.Int
	noNativeToken bool

	lifetime          uint64
	redeemGas         uint64
	tickets           map[common.Hash]*worldTicket
	retrySeq          uint64
	retryFailures     int
	sequencerDown     bool
	unsequenced       []*retryables.SubmitRetryableMessage
	retriesPaused     bool
	pendingRetries    []pendingRetry
	redeemEstimateErr error
}

func newBridgeWorld() *bridgeWorld {
	w := &bridgeWorld{
		allowances:    make(map[common.Address]map[common.Address]*big.Int),
		tokenBalances: make(map[common.Address]*big.Int),
		custody:       big.NewInt(0),
		submissionFee: big.NewInt(0),
		lifetime:      retryables.RetryableLifetimeSeconds,
		redeemGas:     21000,
		tickets:       make(map[common.Hash]*worldTicket),
	}
	w.now.Store(1755000000)
	w.parent = newChainBackend(w, parentChainIdNum)
	w.child = newChainBackend(w, childChainIdNum)
	w.parent.call = w.parentCall
	w.parent.estimate = w.parentEstimate
	w.parent.process = w.parentProcess
	w.child.call = w.childCall
	w.child.estimate = w.childEstimate
	w.child.process = w.childProcess
	return w
}

// advance moves both chains' clocks forward.
func (w *bridgeWorld) advance(seconds uint64) {
	w.now.Add(seconds)
}

func (w *bridgeWorld) setTokenBalance(owner common.Address, amount *big.Int) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.tokenBalances[owner] = new(big.Int).Set(amount)
}

func (w *bridgeWorld) setAllowance(owner, spender common.Address, amount *big.Int) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.setAllowanceHeld(owner, spender, amount)
}

func (w *bridgeWorld) setAllowanceHeld(owner, spender common.Address, amount *big.Int) {
	spenders := w.allowances[owner]
	if spenders == nil {
		spenders = make(map[common.Address]*big.Int)
		w.allowances[owner] = spenders
	}
	spenders[spender] = new(big.Int).Set(amount)
}

func (w *bridgeWorld) allowance(owner, spender common.Address) *big.Int {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.allowanceHeld(owner, spender)
}

func (w *bridgeWorld) allowanceHeld(owner, spender common.Address) *big.Int {
	granted := w.allowances[owner][spender]
	if granted == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(granted)
}

func (w *bridgeWorld) tokenBalance(owner common.Address) *big.Int {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	balance := w.tokenBalances[owner]
	if balance == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(balance)
}

func (w *bridgeWorld) custodyBalance() *big.Int {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return new(big.Int).Set(w.custody)
}

func (w *bridgeWorld) ticketAlive(ticketId common.Hash) bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	ticket := w.tickets[ticketId]
	return ticket != nil && ticket.timeout >= w.now.Load()
}

func (w *bridgeWorld) ticketTimeout(ticketId common.Hash) uint64 {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	ticket := w.tickets[ticketId]
	if ticket == nil {
		return 0
	}
	return ticket.timeout
}

// dropTicket erases a ticket without leaving any event behind, a state no
// healthy chain produces.
func (w *bridgeWorld) dropTicket(ticketId common.Hash) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	delete(w.tickets, ticketId)
}

// flushSequencer delivers submit messages held back while sequencerDown.
func (w *bridgeWorld) flushSequencer() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.sequencerDown = false
	held := w.unsequenced
	w.unsequenced = nil
	for _, msg := range held {
		if err := w.sequenceSubmit(msg); err != nil {
			return err
		}
	}
	return nil
}

// flushRetries executes retry transactions held back while retriesPaused.
func (w *bridgeWorld) flushRetries() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.retriesPaused = false
	held := w.pendingRetries
	w.pendingRetries = nil
	for _, pending := range held {
		w.executeRetry(pending.ticketId, pending.retryHash)
	}
}

func (w *bridgeWorld) parentCall(msg ethereum.CallMsg) ([]byte, error) {
	if msg.To == nil || len(msg.Data) < 4 {
		return nil, errors.New("malformed parent call")
	}
	w.mutex.Lock()
	defer w.mutex.Unlock()
	switch *msg.To {
	case testInboxAddress, testOtherInboxAddress:
		method, err := testInboxABI.MethodById(msg.Data[:4])
		if err != nil {
			return nil, err
		}
		switch method.Name {
		case "bridge":
			return method.Outputs.Pack(testBridgeAddress)
		case "calculateRetryableSubmissionFee":
			return method.Outputs.Pack(new(big.Int).Set(w.submissionFee))
		}
	case testBridgeAddress:
		method, err := testBridgeABI.MethodById(msg.Data[:4])
		if err != nil {
			return nil, err
		}
		switch method.Name {
		case "nativeToken":
			if w.noNativeToken {
				return method.Outputs.Pack(common.Address{})
			}
			return method.Outputs.Pack(testTokenAddress)
		case "allowedDelayedInboxes":
			args, err := method.Inputs.Unpack(msg.Data[4:])
			if err != nil {
				return nil, err
			}
			inbox, _ := args[0].(common.Address)
			return method.Outputs.Pack(inbox == testInboxAddress)
		}
	case testTokenAddress:
		method, err := testERC20ABI.MethodById(msg.Data[:4])
		if err != nil {
			return nil, err
		}
		switch method.Name {
		case "allowance":
			args, err := method.Inputs.Unpack(msg.Data[4:])
			if err != nil {
				return nil, err
			}
			owner, _ := args[0].(common.Address)
			spender, _ := args[1].(common.Address)
			return method.Outputs.Pack(w.allowanceHeld(owner, spender))
		case "balanceOf":
			args, err := method.Inputs.Unpack(msg.Data[4:])
			if err != nil {
				return nil, err
			}
			owner, _ := args[0].(common.Address)
			balance := w.tokenBalances[owner]
			if balance == nil {
				balance = big.NewInt(0)
			}
			return method.Outputs.Pack(new(big.Int).Set(balance))
		}
	}
	return nil, fmt.Errorf("unexpected parent call to %v", msg.To)
}

func (w *bridgeWorld) parentEstimate(msg ethereum.CallMsg) (uint64, error) {
	if msg.To == nil || len(msg.Data) < 4 {
		return 0, errors.New("malformed parent estimate")
	}
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if *msg.To != testInboxAddress {
		return 60000, nil
	}
	method, err := testInboxABI.MethodById(msg.Data[:4])
	if err != nil {
		return 0, err
	}
	args, err := method.Inputs.Unpack(msg.Data[4:])
	if err != nil {
		return 0, err
	}
	switch method.Name {
	case "createRetryableTicket":
		tokenTotal, _ := args[7].(*big.Int)
		if err := w.checkPull(msg.From, tokenTotal); err != nil {
			return 0, err
		}
		return 200000, nil
	case "depositERC20":
		amount, _ := args[0].(*big.Int)
		if err := w.checkPull(msg.From, amount); err != nil {
			return 0, err
		}
		return 100000, nil
	}
	return 0, fmt.Errorf("unexpected parent estimate for %v", method.Name)
}

func (w *bridgeWorld) checkPull(owner common.Address, amount *big.Int) error {
	if w.allowanceHeld(owner, testInboxAddress).Cmp(amount) < 0 {
		return revertError{msg: "execution reverted: ERC20: insufficient allowance"}
	}
	balance := w.tokenBalances[owner]
	if balance == nil || balance.Cmp(amount) < 0 {
		return revertError{msg: "execution reverted: ERC20: transfer amount exceeds balance"}
	}
	return nil
}

// pull moves tokens from the owner into bridge custody. An unlimited approval
// is never decremented, matching the usual token implementations.
func (w *bridgeWorld) pull(owner common.Address, amount *big.Int) error {
	if err := w.checkPull(owner, amount); err != nil {
		return err
	}
	granted := w.allowances[owner][testInboxAddress]
	if granted.Cmp(math.MaxBig256) != 0 {
		granted.Sub(granted, amount)
	}
	w.tokenBalances[owner].Sub(w.tokenBalances[owner], amount)
	w.custody.Add(w.custody, amount)
	return nil
}

func (w *bridgeWorld) parentProcess(tx *types.Transaction) error {
	from, err := types.Sender(w.parent.signer(), tx)
	if err != nil {
		return err
	}
	if tx.To() == nil || len(tx.Data()) < 4 {
		return errors.New("malformed parent transaction")
	}
	w.mutex.Lock()
	defer w.mutex.Unlock()
	switch *tx.To() {
	case testTokenAddress:
		method, err := testERC20ABI.MethodById(tx.Data()[:4])
		if err != nil {
			return err
		}
		if method.Name != "approve" {
			return fmt.Errorf("unexpected token transaction %v", method.Name)
		}
		args, err := method.Inputs.Unpack(tx.Data()[4:])
		if err != nil {
			return err
		}
		spender, _ := args[0].(common.Address)
		amount, _ := args[1].(*big.Int)
		w.setAllowanceHeld(from, spender, amount)
		w.parent.addReceipt(tx.Hash(), types.ReceiptStatusSuccessful, nil)
		return nil
	case testInboxAddress:
		method, err := testInboxABI.MethodById(tx.Data()[:4])
		if err != nil {
			return err
		}
		switch method.Name {
		case "createRetryableTicket":
			return w.processCreateRetryable(from, tx, method)
		case "depositERC20":
			return w.processDepositERC20(from, tx, method)
		}
		return fmt.Errorf("unexpected inbox transaction %v", method.Name)
	}
	return fmt.Errorf("unexpected parent transaction to %v", tx.To())
}

// processCreateRetryable is the inbox's submit path: pull the total, deliver
// the message, and hand it to the child chain. Callers hold w.mutex.
func (w *bridgeWorld) processCreateRetryable(from common.Address, tx *types.Transaction, method *abi.Method) error {
	args, err := method.Inputs.Unpack(tx.Data()[4:])
	if err != nil {
		return err
	}
	to, _ := args[0].(common.Address)
	l2CallValue, _ := args[1].(*big.Int)
	maxSubmissionCost, _ := args[2].(*big.Int)
	excessFeeRefund, _ := args[3].(common.Address)
	callValueRefund, _ := args[4].(common.Address)
	gasLimit, _ := args[5].(*big.Int)
	maxFeePerGas, _ := args[6].(*big.Int)
	tokenTotal, _ := args[7].(*big.Int)
	data, _ := args[8].([]byte)
	if err := w.pull(from, tokenTotal); err != nil {
		return err
	}
	w.messageCount++
	var retryTo *common.Address
	if to != (common.Address{}) {
		target := to
		retryTo = &target
	}
	msg := &retryables.SubmitRetryableMessage{
		MessageNum:       new(big.Int).SetUint64(w.messageCount),
		From:             retryables.RemapL1Address(from),
		L1BaseFee:        big.NewInt(params.GWei),
		ParentTimestamp:  w.now.Load(),
		RetryTo:          retryTo,
		L2CallValue:      new(big.Int).Set(l2CallValue),
		DepositValue:     new(big.Int).Set(tokenTotal),
		MaxSubmissionFee: new(big.Int).Set(maxSubmissionCost),
		FeeRefundAddress: excessFeeRefund,
		Beneficiary:      callValueRefund,
		GasLimit:         gasLimit.Uint64(),
		GasFeeCap:        new(big.Int).Set(maxFeePerGas),
		RetryData:        data,
	}
	payload, err := msg.Encode()
	if err != nil {
		return err
	}
	logs := []*types.Log{
		messageDeliveredLog(w.messageCount, retryables.L1MessageType_SubmitRetryable, from, msg.L1BaseFee, msg.ParentTimestamp, crypto.Keccak256Hash(payload)),
		inboxMessageLog(w.messageCount, payload),
	}
	w.parent.addReceipt(tx.Hash(), types.ReceiptStatusSuccessful, logs)
	if w.sequencerDown {
		w.unsequenced = append(w.unsequenced, msg)
		return nil
	}
	return w.sequenceSubmit(msg)
}

// processDepositERC20 is the inbox's plain deposit path: the sender's child
// account is credited directly. Callers hold w.mutex.
func (w *bridgeWorld) processDepositERC20(from common.Address, tx *types.Transaction, method *abi.Method) error {
	args, err := method.Inputs.Unpack(tx.Data()[4:])
	if err != nil {
		return err
	}
	amount, _ := args[0].(*big.Int)
	if err := w.pull(from, amount); err != nil {
		return err
	}
	w.messageCount++
	payload := append(from.Bytes(), common.BigToHash(amount).Bytes()...)
	logs := []*types.Log{
		messageDeliveredLog(w.messageCount, retryables.L1MessageType_EthDeposit, from, big.NewInt(params.GWei), w.now.Load(), crypto.Keccak256Hash(payload)),
		inboxMessageLog(w.messageCount, payload),
	}
	w.parent.addReceipt(tx.Hash(), types.ReceiptStatusSuccessful, logs)
	w.child.creditBalance(from, amount)
	return nil
}

// sequenceSubmit creates the ticket on the child chain. The submit
// transaction's hash is the ticket id; a funded submit also schedules and runs
// the automatic redemption. Callers hold w.mutex.
func (w *bridgeWorld) sequenceSubmit(msg *retryables.SubmitRetryableMessage) error {
	ticketId, err := msg.TicketId(big.NewInt(childChainIdNum))
	if err != nil {
		return err
	}
	retryTo := msg.Beneficiary
	if msg.RetryTo != nil {
		retryTo = *msg.RetryTo
	}
	w.tickets[ticketId] = &worldTicket{
		timeout:     msg.ParentTimestamp + w.lifetime,
		to:          retryTo,
		beneficiary: msg.Beneficiary,
		callvalue:   new(big.Int).Set(msg.L2CallValue),
	}
	logs := []*types.Log{ticketCreatedLog(ticketId)}
	funded := msg.GasLimit > 0 && msg.GasFeeCap.Sign() > 0
	var retryHash common.Hash
	if funded {
		retryHash = w.nextRetryHash(ticketId)
		logs = append(logs, redeemScheduledLog(ticketId, retryHash, 0))
	}
	w.child.addReceipt(ticketId, types.ReceiptStatusSuccessful, logs)
	if funded {
		w.executeRetry(ticketId, retryHash)
	}
	return nil
}

func (w *bridgeWorld) nextRetryHash(ticketId common.Hash) common.Hash {
	w.retrySeq++
	return crypto.Keccak256Hash(ticketId[:], common.BigToHash(new(big.Int).SetUint64(w.retrySeq)).Bytes())
}

// executeRetry runs one scheduled retry transaction. A successful retry pays
// the callvalue to the retry's destination; the beneficiary only collects on
// cancellation or expiry. Callers hold w.mutex.
func (w *bridgeWorld) executeRetry(ticketId, retryHash common.Hash) {
	if w.retriesPaused {
		w.pendingRetries = append(w.pendingRetries, pendingRetry{ticketId: ticketId, retryHash: retryHash})
		return
	}
	ticket := w.tickets[ticketId]
	if ticket == nil || w.retryFailures > 0 {
		if w.retryFailures > 0 {
			w.retryFailures--
		}
		w.child.addReceipt(retryHash, types.ReceiptStatusFailed, nil)
		return
	}
	w.child.creditBalance(ticket.to, ticket.callvalue)
	delete(w.tickets, ticketId)
	w.child.addReceipt(retryHash, types.ReceiptStatusSuccessful, []*types.Log{redeemedLog(ticketId)})
}

func (w *bridgeWorld) childCall(msg ethereum.CallMsg) ([]byte, error) {
	if msg.To == nil || len(msg.Data) < 4 {
		return nil, errors.New("malformed child call")
	}
	if *msg.To != retryables.ArbRetryableTxAddress {
		return nil, fmt.Errorf("unexpected child call to %v", msg.To)
	}
	w.mutex.Lock()
	defer w.mutex.Unlock()
	method, err := testRetryableABI.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	switch method.Name {
	case "getLifetime":
		return method.Outputs.Pack(new(big.Int).SetUint64(w.lifetime))
	case "getTimeout":
		ticket, err := w.liveTicket(method, msg.Data)
		if err != nil {
			return nil, err
		}
		return method.Outputs.Pack(new(big.Int).SetUint64(ticket.timeout))
	case "getBeneficiary":
		ticket, err := w.liveTicket(method, msg.Data)
		if err != nil {
			return nil, err
		}
		return method.Outputs.Pack(ticket.beneficiary)
	}
	return nil, fmt.Errorf("unexpected child call %v", method.Name)
}

// liveTicket resolves a bytes32 ticket argument against tickets that still
// exist and have not timed out. Callers hold w.mutex.
func (w *bridgeWorld) liveTicket(method *abi.Method, data []byte) (*worldTicket, error) {
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, err
	}
	id, ok := args[0].([32]byte)
	if !ok {
		return nil, errors.New("bad ticket id argument")
	}
	ticket := w.tickets[common.Hash(id)]
	if ticket == nil || ticket.timeout < w.now.Load() {
		return nil, noTicketRevert()
	}
	return ticket, nil
}

func (w *bridgeWorld) childEstimate(msg ethereum.CallMsg) (uint64, error) {
	if msg.To == nil || len(msg.Data) < 4 {
		return 0, errors.New("malformed child estimate")
	}
	w.mutex.Lock()
	defer w.mutex.Unlock()
	switch *msg.To {
	case retryables.NodeInterfaceAddress:
		if w.redeemEstimateErr != nil {
			return 0, w.redeemEstimateErr
		}
		return w.redeemGas, nil
	case retryables.ArbRetryableTxAddress:
		method, err := testRetryableABI.MethodById(msg.Data[:4])
		if err != nil {
			return 0, err
		}
		switch method.Name {
		case "redeem", "cancel", "keepalive":
			if _, err := w.liveTicket(method, msg.Data); err != nil {
				return 0, err
			}
			return 120000, nil
		}
		return 0, fmt.Errorf("unexpected child estimate for %v", method.Name)
	}
	return 0, fmt.Errorf("unexpected child estimate to %v", msg.To)
}

func (w *bridgeWorld) childProcess(tx *types.Transaction) error {
	if tx.To() == nil || len(tx.Data()) < 4 {
		return errors.New("malformed child transaction")
	}
	if *tx.To() != retryables.ArbRetryableTxAddress {
		return fmt.Errorf("unexpected child transaction to %v", tx.To())
	}
	w.mutex.Lock()
	defer w.mutex.Unlock()
	method, err := testRetryableABI.MethodById(tx.Data()[:4])
	if err != nil {
		return err
	}
	args, err := method.Inputs.Unpack(tx.Data()[4:])
	if err != nil {
		return err
	}
	id, ok := args[0].([32]byte)
	if !ok {
		return errors.New("bad ticket id argument")
	}
	ticketId := common.Hash(id)
	ticket := w.tickets[ticketId]
	if ticket == nil || ticket.timeout < w.now.Load() {
		return noTicketRevert()
	}
	switch method.Name {
	case "redeem":
		retryHash := w.nextRetryHash(ticketId)
		w.child.addReceipt(tx.Hash(), types.ReceiptStatusSuccessful, []*types.Log{redeemScheduledLog(ticketId, retryHash, w.retrySeq)})
		w.executeRetry(ticketId, retryHash)
	case "cancel":
		delete(w.tickets, ticketId)
		w.child.addReceipt(tx.Hash(), types.ReceiptStatusSuccessful, []*types.Log{canceledLog(ticketId)})
		w.child.creditBalance(ticket.beneficiary, ticket.callvalue)
	case "keepalive":
		ticket.timeout += w.lifetime
		w.child.addReceipt(tx.Hash(), types.ReceiptStatusSuccessful, []*types.Log{lifetimeExtendedLog(ticketId, ticket.timeout)})
	default:
		return fmt.Errorf("unexpected child transaction %v", method.Name)
	}
	return nil
}

func messageDeliveredLog(messageNum uint64, kind uint8, sender common.Address, baseFee *big.Int, timestamp uint64, dataHash common.Hash) *types.Log {
	data, err := testBridgeABI.Events["MessageDelivered"].Inputs.NonIndexed().Pack(
		testInboxAddress, kind, sender, dataHash, baseFee, timestamp,
	)
	if err != nil {
		panic(err)
	}
	return &types.Log{
		Address: testBridgeAddress,
		Topics:  []common.Hash{testMessageDeliveredID, common.BigToHash(new(big.Int).SetUint64(messageNum)), testhelpers.RandomHash()},
		Data:    data,
	}
}

func inboxMessageLog(messageNum uint64, payload []byte) *types.Log {
	data, err := testProviderABI.Events["InboxMessageDelivered"].Inputs.NonIndexed().Pack(payload)
	if err != nil {
		panic(err)
	}
	return &types.Log{
		Address: testInboxAddress,
		Topics:  []common.Hash{testInboxMessageDeliveredID, common.BigToHash(new(big.Int).SetUint64(messageNum))},
		Data:    data,
	}
}

func ticketCreatedLog(ticketId common.Hash) *types.Log {
	return &types.Log{
		Address: retryables.ArbRetryableTxAddress,
		Topics:  []common.Hash{testTicketCreatedID, ticketId},
	}
}

func redeemScheduledLog(ticketId, retryHash common.Hash, sequenceNum uint64) *types.Log {
	data, err := testRetryableABI.Events["RedeemScheduled"].Inputs.NonIndexed().Pack(
		uint64(0), common.Address{}, big.NewInt(0), big.NewInt(0),
	)
	if err != nil {
		panic(err)
	}
	return &types.Log{
		Address: retryables.ArbRetryableTxAddress,
		Topics: []common.Hash{
			redeemScheduledID, ticketId, retryHash,
			common.BigToHash(new(big.Int).SetUint64(sequenceNum)),
		},
		Data: data,
	}
}

func redeemedLog(ticketId common.Hash) *types.Log {
	return &types.Log{
		Address: retryables.ArbRetryableTxAddress,
		Topics:  []common.Hash{testRedeemedID, ticketId},
	}
}

func canceledLog(ticketId common.Hash) *types.Log {
	return &types.Log{
		Address: retryables.ArbRetryableTxAddress,
		Topics:  []common.Hash{testCanceledID, ticketId},
	}
}

func lifetimeExtendedLog(ticketId common.Hash, newTimeout uint64) *types.Log {
	data, err := testRetryableABI.Events["LifetimeExtended"].Inputs.NonIndexed().Pack(new(big.Int).SetUint64(newTimeout))
	if err != nil {
		panic(err)
	}
	return &types.Log{
		Address: retryables.ArbRetryableTxAddress,
		Topics:  []common.Hash{testLifetimeExtendedID, ticketId},
		Data:    data,
	}
}

func testClientConfig() *Config {
	config := TestConfig
	config.Inbox = testInboxAddress.Hex()
	return &config
}

// newTestClient funds a fresh account with fee tokens on the parent chain and
// builds a client around it, signing for both chains with the same key.
func newTestClient(t *testing.T, ctx context.Context, w *bridgeWorld, config *Config) *Client {
	t.Helper()
	key, err := crypto.GenerateKey()
	Require(t, err)
	parentAuth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(parentChainIdNum))
	Require(t, err)
	childAuth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(childChainIdNum))
	Require(t, err)
	w.setTokenBalance(parentAuth.From, new(big.Int).Mul(big.NewInt(1000), big.NewInt(params.Ether)))
	client, err := NewClient(ctx, config, w.parent, w.child, parentAuth, childAuth)
	Require(t, err)
	return client
}

// depositTicket approves the inbox without limit and deposits to the client's
// own address, returning the resulting ticket.
func depositTicket(t *testing.T, ctx context.Context, client *Client, amount *big.Int) *retryables.Ticket {
	t.Helper()
	_, err := client.ApproveInbox(ctx, nil)
	Require(t, err)
	result, err := client.Deposit(ctx, amount, client.parentAuth.From)
	Require(t, err)
	return result.Ticket
}
