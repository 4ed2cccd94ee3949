// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings"
	"github.com/randa-mu/dcipher-sub000/utils/logging"
)

var (
	ErrNoSigner            = errors.New("client has no signer")
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrEventNotFound       = errors.New("event not found in receipt")
)

// Backend is the node connection used by a Client. *ethclient.Client
// satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend

	ChainID(ctx context.Context) (*big.Int, error)
}

// Client sends and reads RandomnessSender calls on behalf of a single account.
type Client struct {
	config   Config
	backend  Backend
	signer   Signer
	log      logging.Logger
	metrics  *clientMetrics
	contract *bindings.RandomnessSender
	raw      *bindings.RandomnessSenderRaw
	decoder  *EventDecoder

	chainIDLock sync.Mutex
	chainID     *big.Int
}

// NewClient binds the contract at [config.Address]. [signer] may be nil for a
// read-only client.
func NewClient(
	config Config,
	backend Backend,
	signer Signer,
	log logging.Logger,
	registerer prometheus.Registerer,
) (*Client, error) {
	if err := config.Verify(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}
	contract, err := bindings.NewRandomnessSender(config.Address, backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind RandomnessSender: %w", err)
	}
	decoder, err := NewEventDecoder(config.Address)
	if err != nil {
		return nil, err
	}
	metrics, err := newClientMetrics(registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register client metrics: %w", err)
	}
	return &Client{
		config:   config,
		backend:  backend,
		signer:   signer,
		log:      log.With(zap.Stringer("contract", config.Address)),
		metrics:  metrics,
		contract: contract,
		raw:      &bindings.RandomnessSenderRaw{Contract: contract},
		decoder:  decoder,
	}, nil
}

func (c *Client) Address() common.Address {
	return c.config.Address
}

func (c *Client) Config() Config {
	return c.config
}

// Contract exposes the underlying binding.
func (c *Client) Contract() *bindings.RandomnessSender {
	return c.contract
}

func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	c.chainIDLock.Lock()
	defer c.chainIDLock.Unlock()

	if c.chainID == nil {
		chainID, err := c.backend.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch chain ID: %w", err)
		}
		c.chainID = chainID
	}
	return new(big.Int).Set(c.chainID), nil
}

func (c *Client) callOpts(ctx context.Context) *bind.CallOpts {
	opts := &bind.CallOpts{Context: ctx}
	if c.signer != nil {
		opts.From = c.signer.Address()
	}
	return opts
}

// call decorates a read error with the method name and decoded revert.
func (c *Client) call(method string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to call %s: %w", method, c.observeRevert(WrapRevert(err)))
}

func (c *Client) observeRevert(err error) error {
	var contractErr *ContractError
	if errors.As(err, &contractErr) {
		c.metrics.reverts.WithLabelValues(contractErr.Name).Inc()
	}
	return err
}

// gasFees are the fee fields a transaction is sent with. Pre-London chains
// only set GasPrice.
type gasFees struct {
	GasPrice  *big.Int
	GasTipCap *big.Int
	GasFeeCap *big.Int
}

// maxPrice is the highest gas price a transaction sent with f can pay.
func (f *gasFees) maxPrice() *big.Int {
	if f.GasFeeCap != nil {
		return f.GasFeeCap
	}
	return f.GasPrice
}

// suggestFees prices a transaction the way bind does by default: a fee cap of
// twice the head base fee plus the suggested tip.
func (c *Client) suggestFees(ctx context.Context) (*gasFees, error) {
	head, err := c.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch head header: %w", err)
	}
	if head.BaseFee == nil {
		gasPrice, err := c.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", err)
		}
		return &gasFees{GasPrice: gasPrice}, nil
	}
	tip, err := c.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas tip cap: %w", err)
	}
	feeCap := new(big.Int).Mul(head.BaseFee, big.NewInt(2))
	feeCap.Add(feeCap, tip)
	return &gasFees{
		GasTipCap: tip,
		GasFeeCap: feeCap,
	}, nil
}

// transact signs and sends a call to [method] with [value] attached at the
// suggested fees and waits for its receipt.
func (c *Client) transact(ctx context.Context, value *big.Int, method string, args ...interface{}) (*types.Receipt, error) {
	if c.signer == nil {
		return nil, ErrNoSigner
	}
	fees, err := c.suggestFees(ctx)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, fees, value, method, args...)
}

// send signs and sends a call to [method] with [value] attached at [fees] and
// waits for its receipt. Reverts are returned as *ContractError when the node
// exposes the revert data.
func (c *Client) send(ctx context.Context, fees *gasFees, value *big.Int, method string, args ...interface{}) (*types.Receipt, error) {
	if c.signer == nil {
		return nil, ErrNoSigner
	}
	parsed, err := ABI()
	if err != nil {
		return nil, err
	}
	input, err := parsed.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}
	chainID, err := c.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	opts, err := c.signer.TransactOpts(ctx, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Value = value
	opts.GasPrice = fees.GasPrice
	opts.GasTipCap = fees.GasTipCap
	opts.GasFeeCap = fees.GasFeeCap

	log := c.log.With(
		zap.String("method", method),
		zap.Stringer("from", opts.From),
	)

	opts.GasLimit = c.config.GasLimit
	if opts.GasLimit == 0 {
		estimate, err := c.backend.EstimateGas(ctx, ethereum.CallMsg{
			From:      opts.From,
			To:        &c.config.Address,
			GasPrice:  fees.GasPrice,
			GasTipCap: fees.GasTipCap,
			GasFeeCap: fees.GasFeeCap,
			Value:     value,
			Data:      input,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to estimate gas for %s: %w", method, c.observeRevert(WrapRevert(err)))
		}
		opts.GasLimit = estimate + estimate*c.config.GasBufferPercent/100
	}

	tx, err := c.raw.Transact(opts, method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s: %w", method, c.observeRevert(WrapRevert(err)))
	}
	c.metrics.transactions.WithLabelValues(method).Inc()
	log.Debug("sent transaction",
		zap.Stringer("txHash", tx.Hash()),
		zap.Uint64("nonce", tx.Nonce()),
		zap.Uint64("gas", tx.Gas()),
		zap.Stringer("value", tx.Value()),
	)

	waitCtx, cancel := context.WithTimeout(ctx, c.config.ReceiptTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, c.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s receipt of %s: %w", method, tx.Hash(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		err := c.replay(ctx, opts.From, tx, receipt)
		log.Warn("transaction reverted",
			zap.Stringer("txHash", tx.Hash()),
			zap.Stringer("block", receipt.BlockNumber),
			zap.Error(err),
		)
		return receipt, err
	}

	log.Debug("transaction mined",
		zap.Stringer("txHash", tx.Hash()),
		zap.Stringer("block", receipt.BlockNumber),
		zap.Uint64("gasUsed", receipt.GasUsed),
	)
	return receipt, nil
}

// replay re-executes a failed transaction on its parent state to recover the
// revert reason.
func (c *Client) replay(ctx context.Context, from common.Address, tx *types.Transaction, receipt *types.Receipt) error {
	var block *big.Int
	if receipt.BlockNumber != nil && receipt.BlockNumber.Sign() > 0 {
		block = new(big.Int).Sub(receipt.BlockNumber, common.Big1)
	}
	_, err := c.backend.CallContract(ctx, ethereum.CallMsg{
		From:  from,
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}, block)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrTransactionReverted, tx.Hash())
	}
	var contractErr *ContractError
	if wrapped := WrapRevert(err); errors.As(wrapped, &contractErr) {
		c.observeRevert(contractErr)
		return fmt.Errorf("%w: %s: %w", ErrTransactionReverted, tx.Hash(), contractErr)
	}
	return fmt.Errorf("%w: %s", ErrTransactionReverted, tx.Hash())
}

// findEvent decodes the first log of [receipt] emitted by the contract as
// event [name].
func (c *Client) findEvent(receipt *types.Receipt, name string) (*Event, error) {
	topic := Topic(name)
	for _, log := range receipt.Logs {
		if log.Address != c.config.Address || len(log.Topics) == 0 || log.Topics[0] != topic {
			continue
		}
		return c.decoder.Decode(*log)
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrEventNotFound, name, receipt.TxHash)
}
