// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings"
)

var ErrNotFulfilled = errors.New("request not fulfilled")

// Fulfillment is the outcome of a request's callback.
type Fulfillment struct {
	RequestID *big.Int `json:"requestId"`
	// Success is false when the consumer callback reverted. The randomness is
	// still delivered on chain but the consumer did not accept it.
	Success     bool        `json:"success"`
	Randomness  common.Hash `json:"randomness,omitempty"`
	Signature   []byte      `json:"signature,omitempty"`
	TxHash      common.Hash `json:"txHash"`
	BlockNumber uint64      `json:"blockNumber"`
}

// WaitForFulfillment polls for the callback of [req] until it is found or the
// configured fulfillment timeout elapses. Failed log queries are retried until
// the timeout. Once the timeout or [ctx] ends the wait, the error wraps
// ErrNotFulfilled and the context error.
func (c *Client) WaitForFulfillment(ctx context.Context, req *Request) (*Fulfillment, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.config.FulfillmentTimeout)
	defer cancel()

	query := FulfillmentQuery(c.config.Address, req.ID, req.BlockNumber)
	log := c.log.With(zap.Stringer("requestID", req.ID))
	log.Debug("waiting for fulfillment")

	ticker := time.NewTicker(c.config.PollInterval)
	defer ticker.Stop()
	for {
		f, err := c.findFulfillment(ctx, query)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %s: %w: %w", ErrNotFulfilled, req.ID, ctx.Err(), err)
			}
			return nil, err
		}
		if f != nil {
			c.metrics.fulfillmentWait.Observe(time.Since(start).Seconds())
			log.Info("request fulfilled",
				zap.Bool("success", f.Success),
				zap.Stringer("randomness", f.Randomness),
				zap.Uint64("block", f.BlockNumber),
			)
			return f, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFulfilled, req.ID, ctx.Err())
		case <-ticker.C:
		}
	}
}

// FulfillmentQuery filters the callback events of request [id] emitted at or
// after [fromBlock].
func FulfillmentQuery(address common.Address, id *big.Int, fromBlock uint64) ethereum.FilterQuery {
	return ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: []common.Address{address},
		Topics: [][]common.Hash{
			{Topic(EventRandomnessCallbackSuccess), Topic(EventRandomnessCallbackFailed)},
			{common.BigToHash(id)},
		},
	}
}

func (c *Client) findFulfillment(ctx context.Context, query ethereum.FilterQuery) (*Fulfillment, error) {
	logs, err := backoff.RetryWithData(func() ([]types.Log, error) {
		logs, err := c.backend.FilterLogs(ctx, query)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(err)
			}
			c.log.Debug("failed to filter logs", zap.Error(err))
		}
		return logs, err
	}, backoff.WithContext(c.newBackOff(), ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to filter callback logs: %w", err)
	}

	for _, log := range logs {
		if log.Removed {
			continue
		}
		ev, err := c.decoder.Decode(log)
		if err != nil {
			return nil, err
		}
		return fulfillmentFromEvent(ev), nil
	}
	return nil, nil
}

func fulfillmentFromEvent(ev *Event) *Fulfillment {
	f := &Fulfillment{
		TxHash:      ev.Log.TxHash,
		BlockNumber: ev.Log.BlockNumber,
	}
	switch p := ev.Payload.(type) {
	case *bindings.RandomnessSenderRandomnessCallbackSuccess:
		f.RequestID = p.RequestID
		f.Success = true
		f.Randomness = p.Randomness
		f.Signature = p.Signature
	case *bindings.RandomnessSenderRandomnessCallbackFailed:
		f.RequestID = p.RequestID
	default:
		return nil
	}
	return f
}

func (c *Client) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.config.PollInterval / 4
	b.MaxInterval = c.config.PollInterval
	// The fulfillment timeout on the context bounds the retries.
	b.MaxElapsedTime = 0
	return b
}
