// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings"
)

const (
	methodRequestRandomness                 = "requestRandomness"
	methodRequestRandomnessWithSubscription = "requestRandomnessWithSubscription"
)

// Request is a randomness request accepted by the contract.
type Request struct {
	ID          *big.Int       `json:"id"`
	Nonce       *big.Int       `json:"nonce"`
	Requester   common.Address `json:"requester"`
	RequestedAt *big.Int       `json:"requestedAt"`
	// SubscriptionID is nil for directly funded requests.
	SubscriptionID   *big.Int    `json:"subscriptionId,omitempty"`
	CallbackGasLimit uint32      `json:"callbackGasLimit"`
	Paid             *big.Int    `json:"paid"`
	TxHash           common.Hash `json:"txHash"`
	BlockNumber      uint64      `json:"blockNumber"`
}

// Price quotes a directly funded request at the highest gas price a
// transaction sent now may pay. calculateRequestPriceNative prices at the
// call's own gas price, which is zero in an eth_call.
func (c *Client) Price(ctx context.Context, callbackGasLimit uint32) (*big.Int, error) {
	fees, err := c.suggestFees(ctx)
	if err != nil {
		return nil, err
	}
	return c.EstimatePrice(ctx, callbackGasLimit, fees.maxPrice())
}

// EstimatePrice quotes a directly funded request at [gasPrice] wei.
func (c *Client) EstimatePrice(ctx context.Context, callbackGasLimit uint32, gasPrice *big.Int) (*big.Int, error) {
	price, err := c.contract.EstimateRequestPriceNative(c.callOpts(ctx), callbackGasLimit, gasPrice)
	return price, c.call("estimateRequestPriceNative", err)
}

// BufferedPrice is Price increased by the configured buffer percentage.
func (c *Client) BufferedPrice(ctx context.Context, callbackGasLimit uint32) (*big.Int, error) {
	price, err := c.Price(ctx, callbackGasLimit)
	if err != nil {
		return nil, err
	}
	return addPercent(price, c.config.PriceBufferPercent), nil
}

// RequestRandomness sends a directly funded request. It pays the buffered
// price quoted at the fee cap the transaction is sent with. A zero
// [callbackGasLimit] uses the configured default.
func (c *Client) RequestRandomness(ctx context.Context, callbackGasLimit uint32) (*Request, error) {
	if c.signer == nil {
		return nil, ErrNoSigner
	}
	callbackGasLimit = c.callbackGasLimit(callbackGasLimit)
	fees, err := c.suggestFees(ctx)
	if err != nil {
		return nil, err
	}
	price, err := c.EstimatePrice(ctx, callbackGasLimit, fees.maxPrice())
	if err != nil {
		return nil, err
	}
	price = addPercent(price, c.config.PriceBufferPercent)
	receipt, err := c.send(ctx, fees, price, methodRequestRandomness, callbackGasLimit)
	if err != nil {
		return nil, err
	}
	req, err := c.requestFromReceipt(receipt)
	if err != nil {
		return nil, err
	}
	req.CallbackGasLimit = callbackGasLimit
	req.Paid = price
	c.log.Info("requested randomness",
		zap.Stringer("requestID", req.ID),
		zap.Stringer("paid", price),
		zap.Uint64("block", req.BlockNumber),
	)
	return req, nil
}

// RequestRandomnessWithSubscription sends a request charged to subscription
// [subID]. The sender must be a registered consumer of the subscription.
func (c *Client) RequestRandomnessWithSubscription(ctx context.Context, callbackGasLimit uint32, subID *big.Int) (*Request, error) {
	callbackGasLimit = c.callbackGasLimit(callbackGasLimit)
	receipt, err := c.transact(ctx, nil, methodRequestRandomnessWithSubscription, callbackGasLimit, subID)
	if err != nil {
		return nil, err
	}
	req, err := c.requestFromReceipt(receipt)
	if err != nil {
		return nil, err
	}
	req.CallbackGasLimit = callbackGasLimit
	req.SubscriptionID = new(big.Int).Set(subID)
	req.Paid = new(big.Int)
	c.log.Info("requested randomness",
		zap.Stringer("requestID", req.ID),
		zap.Stringer("subscription", subID),
		zap.Uint64("block", req.BlockNumber),
	)
	return req, nil
}

func (c *Client) callbackGasLimit(limit uint32) uint32 {
	if limit == 0 {
		return c.config.CallbackGasLimit
	}
	return limit
}

func (c *Client) requestFromReceipt(receipt *types.Receipt) (*Request, error) {
	ev, err := c.findEvent(receipt, EventRandomnessRequested)
	if err != nil {
		return nil, err
	}
	requested := ev.Payload.(*bindings.RandomnessSenderRandomnessRequested)
	return &Request{
		ID:          requested.RequestID,
		Nonce:       requested.Nonce,
		Requester:   requested.Requester,
		RequestedAt: requested.RequestedAt,
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}

// GetRequest returns the stored request [id].
func (c *Client) GetRequest(ctx context.Context, id *big.Int) (bindings.TypesLibRandomnessRequest, error) {
	req, err := c.contract.GetRequest(c.callOpts(ctx), id)
	return req, c.call("getRequest", err)
}

// IsInFlight reports whether request [id] is still awaiting its callback.
func (c *Client) IsInFlight(ctx context.Context, id *big.Int) (bool, error) {
	inFlight, err := c.contract.IsInFlight(c.callOpts(ctx), id)
	return inFlight, c.call("isInFlight", err)
}

// AllRequests returns every stored request.
func (c *Client) AllRequests(ctx context.Context) ([]bindings.TypesLibRandomnessRequest, error) {
	reqs, err := c.contract.GetAllRequests(c.callOpts(ctx))
	return reqs, c.call("getAllRequests", err)
}

// MessageFor returns the message the signers must sign for a request with
// [nonce] made by [callback].
func (c *Client) MessageFor(ctx context.Context, nonce *big.Int, callback common.Address) ([]byte, error) {
	msg, err := c.contract.MessageFrom(c.callOpts(ctx), bindings.TypesLibRandomnessRequestCreationParams{
		Nonce:    nonce,
		Callback: callback,
	})
	return msg, c.call("messageFrom", err)
}

// Nonce returns the contract's request counter.
func (c *Client) Nonce(ctx context.Context) (*big.Int, error) {
	nonce, err := c.contract.Nonce(c.callOpts(ctx))
	return nonce, c.call("nonce", err)
}

func addPercent(v *big.Int, percent uint64) *big.Int {
	extra := new(big.Int).Mul(v, new(big.Int).SetUint64(percent))
	extra.Quo(extra, big.NewInt(100))
	return extra.Add(extra, v)
}

func (r *Request) String() string {
	return fmt.Sprintf("request %s (nonce %s) by %s", r.ID, r.Nonce, r.Requester)
}
