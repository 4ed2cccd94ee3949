// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings"
)

var errNonPositiveAmount = errors.New("amount must be positive")

// Subscription is the on-chain state of a subscription.
type Subscription struct {
	ID            *big.Int         `json:"id"`
	NativeBalance *big.Int         `json:"nativeBalance"`
	ReqCount      uint64           `json:"reqCount"`
	Owner         common.Address   `json:"owner"`
	Consumers     []common.Address `json:"consumers"`
}

// CreateSubscription opens a subscription owned by the signer and returns its
// id.
func (c *Client) CreateSubscription(ctx context.Context) (*big.Int, error) {
	receipt, err := c.transact(ctx, nil, "createSubscription")
	if err != nil {
		return nil, err
	}
	ev, err := c.findEvent(receipt, EventSubscriptionCreated)
	if err != nil {
		return nil, err
	}
	created := ev.Payload.(*bindings.RandomnessSenderSubscriptionCreated)
	c.log.Info("created subscription",
		zap.Stringer("subscription", created.SubId),
		zap.Stringer("owner", created.Owner),
	)
	return created.SubId, nil
}

// FundSubscription deposits [amount] wei into [subID] and returns the new
// balance.
func (c *Client) FundSubscription(ctx context.Context, subID, amount *big.Int) (*big.Int, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, errNonPositiveAmount
	}
	receipt, err := c.transact(ctx, amount, "fundSubscriptionWithNative", subID)
	if err != nil {
		return nil, err
	}
	ev, err := c.findEvent(receipt, EventSubscriptionFundedWithNative)
	if err != nil {
		return nil, err
	}
	funded := ev.Payload.(*bindings.RandomnessSenderSubscriptionFundedWithNative)
	c.log.Info("funded subscription",
		zap.Stringer("subscription", subID),
		zap.Stringer("oldBalance", funded.OldNativeBalance),
		zap.Stringer("newBalance", funded.NewNativeBalance),
	)
	return funded.NewNativeBalance, nil
}

func (c *Client) AddConsumer(ctx context.Context, subID *big.Int, consumer common.Address) error {
	_, err := c.transact(ctx, nil, "addConsumer", subID, consumer)
	return err
}

func (c *Client) RemoveConsumer(ctx context.Context, subID *big.Int, consumer common.Address) error {
	_, err := c.transact(ctx, nil, "removeConsumer", subID, consumer)
	return err
}

// CancelSubscription closes [subID] and refunds its balance to [to]. It
// returns the refunded amount.
func (c *Client) CancelSubscription(ctx context.Context, subID *big.Int, to common.Address) (*big.Int, error) {
	receipt, err := c.transact(ctx, nil, "cancelSubscription", subID, to)
	if err != nil {
		return nil, err
	}
	ev, err := c.findEvent(receipt, EventSubscriptionCanceled)
	if err != nil {
		return nil, err
	}
	canceled := ev.Payload.(*bindings.RandomnessSenderSubscriptionCanceled)
	c.log.Info("canceled subscription",
		zap.Stringer("subscription", subID),
		zap.Stringer("to", canceled.To),
		zap.Stringer("refund", canceled.AmountNative),
	)
	return canceled.AmountNative, nil
}

// RequestSubscriptionOwnerTransfer starts a two step ownership transfer that
// [newOwner] completes with AcceptSubscriptionOwnerTransfer.
func (c *Client) RequestSubscriptionOwnerTransfer(ctx context.Context, subID *big.Int, newOwner common.Address) error {
	_, err := c.transact(ctx, nil, "requestSubscriptionOwnerTransfer", subID, newOwner)
	return err
}

func (c *Client) AcceptSubscriptionOwnerTransfer(ctx context.Context, subID *big.Int) error {
	_, err := c.transact(ctx, nil, "acceptSubscriptionOwnerTransfer", subID)
	return err
}

func (c *Client) GetSubscription(ctx context.Context, subID *big.Int) (*Subscription, error) {
	sub, err := c.contract.GetSubscription(c.callOpts(ctx), subID)
	if err != nil {
		return nil, c.call("getSubscription", err)
	}
	return &Subscription{
		ID:            subID,
		NativeBalance: sub.NativeBalance,
		ReqCount:      sub.ReqCount,
		Owner:         sub.SubOwner,
		Consumers:     sub.Consumers,
	}, nil
}

// PendingRequestExists reports whether [subID] has requests awaiting a
// callback. Such subscriptions cannot be canceled.
func (c *Client) PendingRequestExists(ctx context.Context, subID *big.Int) (bool, error) {
	pending, err := c.contract.PendingRequestExists(c.callOpts(ctx), subID)
	return pending, c.call("pendingRequestExists", err)
}

// ActiveSubscriptionIDs pages through every subscription with a balance or
// pending request.
func (c *Client) ActiveSubscriptionIDs(ctx context.Context) ([]*big.Int, error) {
	var (
		opts     = c.callOpts(ctx)
		pageSize = new(big.Int).SetUint64(c.config.PageSize)
		start    = new(big.Int)
		ids      []*big.Int
	)
	for {
		page, err := c.contract.GetActiveSubscriptionIds(opts, start, pageSize)
		if err != nil {
			err = c.call("getActiveSubscriptionIds", err)
			// The contract rejects a start index at or past the number of
			// active subscriptions, including zero when there are none.
			if errors.Is(err, ErrIndexOutOfRange) {
				return ids, nil
			}
			return nil, err
		}
		ids = append(ids, page...)
		if uint64(len(page)) < c.config.PageSize {
			return ids, nil
		}
		start = new(big.Int).Add(start, pageSize)
	}
}
