// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bindingstest provides an in-memory chain backend for exercising the
// RandomnessSender bindings without a node.
package bindingstest

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
)

const (
	// DefaultGas is returned by EstimateGas unless a method is set to fail.
	DefaultGas uint64 = 100_000

	selectorLen = 4
)

var (
	_ bind.ContractBackend = (*Backend)(nil)
	_ bind.DeployBackend   = (*Backend)(nil)

	DefaultChainID  = big.NewInt(1337)
	DefaultBaseFee  = big.NewInt(1_000_000_000)
	DefaultGasPrice = big.NewInt(3_000_000_000)
	DefaultTip      = big.NewInt(1)

	errUnknownBlock = errors.New("unknown block")
)

// CallHandler answers an eth_call with the packed return data.
type CallHandler func(from common.Address, input []byte) ([]byte, error)

// TxHandler runs when a transaction calling the method is mined. It returns
// the logs emitted by the transaction, or revert data to fail it.
type TxHandler func(from common.Address, tx *types.Transaction) (logs []types.Log, revert []byte)

// RevertError mirrors the JSON-RPC error returned by a node when execution
// reverts. It implements rpc.DataError.
type RevertError struct {
	Data []byte
}

func (*RevertError) Error() string {
	return "execution reverted"
}

func (*RevertError) ErrorCode() int {
	return 3
}

func (e *RevertError) ErrorData() interface{} {
	return hexutil.Encode(e.Data)
}

// Backend is a single-node chain kept in memory. Every sent transaction is
// mined into its own block.
type Backend struct {
	lock sync.Mutex

	chainID *big.Int
	baseFee *big.Int
	head    uint64

	code      map[common.Address][]byte
	nonces    map[common.Address]uint64
	calls     map[[selectorLen]byte]CallHandler
	txs       map[[selectorLen]byte]TxHandler
	estimates map[[selectorLen]byte][]byte
	receipts  map[common.Hash]*types.Receipt
	sent      []*types.Transaction
	logs      []types.Log
	callCount map[[selectorLen]byte]int

	// filterErr fails the next filterFailures FilterLogs calls, or every call
	// when filterFailures is negative.
	filterErr      error
	filterFailures int
	filterCalls    int

	feed event.Feed
}

func NewBackend() *Backend {
	return &Backend{
		chainID:   new(big.Int).Set(DefaultChainID),
		baseFee:   new(big.Int).Set(DefaultBaseFee),
		code:      make(map[common.Address][]byte),
		nonces:    make(map[common.Address]uint64),
		calls:     make(map[[selectorLen]byte]CallHandler),
		txs:       make(map[[selectorLen]byte]TxHandler),
		estimates: make(map[[selectorLen]byte][]byte),
		receipts:  make(map[common.Hash]*types.Receipt),
		callCount: make(map[[selectorLen]byte]int),
	}
}

// SetCode marks [addr] as a contract account.
func (b *Backend) SetCode(addr common.Address, code []byte) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.code[addr] = code
}

// SetBaseFee sets the base fee of every header. A nil fee makes the chain
// pre-London, pricing transactions with SuggestGasPrice only.
func (b *Backend) SetBaseFee(fee *big.Int) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.baseFee = fee
}

// FailFilterLogs makes the next [times] FilterLogs calls return [err]. A
// negative [times] fails every call.
func (b *Backend) FailFilterLogs(err error, times int) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.filterErr = err
	b.filterFailures = times
}

// FilterCalls returns the number of FilterLogs calls made.
func (b *Backend) FilterCalls() int {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.filterCalls
}

// HandleCall registers the eth_call handler for [selector].
func (b *Backend) HandleCall(selector [4]byte, h CallHandler) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.calls[selector] = h
}

// HandleTransaction registers the mining handler for [selector].
func (b *Backend) HandleTransaction(selector [4]byte, h TxHandler) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.txs[selector] = h
}

// FailEstimate makes gas estimation for [selector] revert with [revert].
func (b *Backend) FailEstimate(selector [4]byte, revert []byte) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.estimates[selector] = revert
}

// Calls returns how many eth_calls hit [selector].
func (b *Backend) Calls(selector [4]byte) int {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.callCount[selector]
}

// Sent returns the transactions mined so far, oldest first.
func (b *Backend) Sent() []*types.Transaction {
	b.lock.Lock()
	defer b.lock.Unlock()

	return append([]*types.Transaction(nil), b.sent...)
}

// Head returns the latest block number.
func (b *Backend) Head() uint64 {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.head
}

// Commit mines [n] empty blocks.
func (b *Backend) Commit(n uint64) uint64 {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.head += n
	return b.head
}

// Emit mines a block holding [logs] as if emitted by an external
// transaction, and returns the block number.
func (b *Backend) Emit(logs ...types.Log) uint64 {
	b.lock.Lock()
	b.head++
	txHash := crypto.Keccak256Hash(new(big.Int).SetUint64(b.head).Bytes(), []byte("emit"))
	mined := b.appendLogs(txHash, logs)
	head := b.head
	b.lock.Unlock()

	b.publish(mined)
	return head
}

// Assumes [b.lock] is held
func (b *Backend) appendLogs(txHash common.Hash, logs []types.Log) []*types.Log {
	blockHash := crypto.Keccak256Hash(new(big.Int).SetUint64(b.head).Bytes())
	mined := make([]*types.Log, len(logs))
	for i, l := range logs {
		l.BlockNumber = b.head
		l.BlockHash = blockHash
		l.TxHash = txHash
		l.TxIndex = 0
		l.Index = uint(len(b.logs))
		b.logs = append(b.logs, l)
		mined[i] = &l
	}
	return mined
}

func (b *Backend) publish(logs []*types.Log) {
	for _, l := range logs {
		b.feed.Send(*l)
	}
}

func (b *Backend) ChainID(context.Context) (*big.Int, error) {
	return new(big.Int).Set(b.chainID), nil
}

func (b *Backend) BlockNumber(context.Context) (uint64, error) {
	return b.Head(), nil
}

func (b *Backend) CodeAt(_ context.Context, contract common.Address, _ *big.Int) ([]byte, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.code[contract], nil
}

func (b *Backend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return b.CodeAt(ctx, account, nil)
}

func (b *Backend) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if len(call.Data) < selectorLen {
		return nil, nil
	}
	var selector [selectorLen]byte
	copy(selector[:], call.Data)

	b.lock.Lock()
	h, ok := b.calls[selector]
	b.callCount[selector]++
	b.lock.Unlock()

	if !ok {
		return nil, fmt.Errorf("no call handler for selector %x", selector)
	}
	return h(call.From, call.Data)
}

func (b *Backend) HeaderByNumber(_ context.Context, number *big.Int) (*types.Header, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	n := b.head
	if number != nil && number.Sign() >= 0 {
		if !number.IsUint64() || number.Uint64() > b.head {
			return nil, ethereum.NotFound
		}
		n = number.Uint64()
	}
	header := &types.Header{
		Number:   new(big.Int).SetUint64(n),
		GasLimit: 30_000_000,
	}
	if b.baseFee != nil {
		header.BaseFee = new(big.Int).Set(b.baseFee)
	}
	return header, nil
}

func (b *Backend) PendingNonceAt(_ context.Context, account common.Address) (uint64, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.nonces[account], nil
}

func (*Backend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return new(big.Int).Set(DefaultGasPrice), nil
}

func (*Backend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return new(big.Int).Set(DefaultTip), nil
}

func (b *Backend) EstimateGas(_ context.Context, call ethereum.CallMsg) (uint64, error) {
	if len(call.Data) >= selectorLen {
		var selector [selectorLen]byte
		copy(selector[:], call.Data)

		b.lock.Lock()
		revert, ok := b.estimates[selector]
		b.lock.Unlock()
		if ok {
			return 0, &RevertError{Data: revert}
		}
	}
	return DefaultGas, nil
}

func (b *Backend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	from, err := types.Sender(types.LatestSignerForChainID(b.chainID), tx)
	if err != nil {
		return fmt.Errorf("invalid transaction signature: %w", err)
	}

	b.lock.Lock()
	if want := b.nonces[from]; tx.Nonce() != want {
		b.lock.Unlock()
		return fmt.Errorf("invalid nonce for %s: have %d, want %d", from, tx.Nonce(), want)
	}
	b.nonces[from]++

	var (
		handler TxHandler
		ok      bool
	)
	if data := tx.Data(); len(data) >= selectorLen {
		var selector [selectorLen]byte
		copy(selector[:], data)
		handler, ok = b.txs[selector]
	}
	b.lock.Unlock()

	// Handlers may read chain state so they run without the lock.
	var (
		logs   []types.Log
		revert []byte
	)
	if ok {
		logs, revert = handler(from, tx)
	}

	b.lock.Lock()
	b.head++
	receipt := &types.Receipt{
		Type:              tx.Type(),
		Status:            types.ReceiptStatusSuccessful,
		CumulativeGasUsed: tx.Gas(),
		GasUsed:           tx.Gas(),
		TxHash:            tx.Hash(),
		BlockHash:         crypto.Keccak256Hash(new(big.Int).SetUint64(b.head).Bytes()),
		BlockNumber:       new(big.Int).SetUint64(b.head),
		TransactionIndex:  0,
	}
	var mined []*types.Log
	if revert != nil {
		receipt.Status = types.ReceiptStatusFailed
	} else {
		if to := tx.To(); to != nil {
			for i := range logs {
				if logs[i].Address == (common.Address{}) {
					logs[i].Address = *to
				}
			}
		}
		mined = b.appendLogs(tx.Hash(), logs)
		receipt.Logs = mined
	}
	b.receipts[tx.Hash()] = receipt
	b.sent = append(b.sent, tx)
	b.lock.Unlock()

	b.publish(mined)
	return nil
}

func (b *Backend) TransactionReceipt(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	receipt, ok := b.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

func (b *Backend) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.filterCalls++
	if b.filterErr != nil && b.filterFailures != 0 {
		if b.filterFailures > 0 {
			b.filterFailures--
		}
		return nil, b.filterErr
	}
	if q.BlockHash != nil {
		return nil, fmt.Errorf("%w: filtering by block hash", errUnknownBlock)
	}
	var logs []types.Log
	for _, l := range b.logs {
		if matches(q, l, b.head) {
			logs = append(logs, l)
		}
	}
	return logs, nil
}

func (b *Backend) SubscribeFilterLogs(_ context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	sink := make(chan types.Log, 64)
	sub := b.feed.Subscribe(sink)
	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case l := <-sink:
				if !matches(q, l, l.BlockNumber) {
					continue
				}
				select {
				case ch <- l:
				case <-quit:
					return nil
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}), nil
}

func matches(q ethereum.FilterQuery, l types.Log, head uint64) bool {
	if q.FromBlock != nil && q.FromBlock.Sign() >= 0 && l.BlockNumber < q.FromBlock.Uint64() {
		return false
	}
	to := head
	if q.ToBlock != nil && q.ToBlock.Sign() >= 0 {
		to = q.ToBlock.Uint64()
	}
	if l.BlockNumber > to {
		return false
	}
	if len(q.Addresses) > 0 {
		found := false
		for _, addr := range q.Addresses {
			if addr == l.Address {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(q.Topics) > len(l.Topics) {
		return false
	}
	for i, options := range q.Topics {
		if len(options) == 0 {
			continue
		}
		found := false
		for _, topic := range options {
			if topic == l.Topics[i] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
