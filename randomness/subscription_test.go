// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings/bindingstest"
)

func TestCreateSubscription(t *testing.T) {
	require := require.New(t)
	client, backend, signer := newTestClient(t, testConfig())

	backend.OnTransact(t, "createSubscription", func(from common.Address, _ *types.Transaction) ([]types.Log, []byte) {
		return []types.Log{
			bindingstest.EventLog(t, EventSubscriptionCreated, big.NewInt(11), from),
		}, nil
	})

	subID, err := client.CreateSubscription(t.Context())
	require.NoError(err)
	require.Equal(big.NewInt(11), subID)

	sent := backend.Sent()
	require.Len(sent, 1)
	require.Equal(bindingstest.ContractAddress, *sent[0].To())
	from, err := types.Sender(types.LatestSignerForChainID(bindingstest.DefaultChainID), sent[0])
	require.NoError(err)
	require.Equal(signer.Address(), from)
}

func TestFundSubscription(t *testing.T) {
	require := require.New(t)
	client, backend, _ := newTestClient(t, testConfig())

	amount := big.NewInt(5_000)
	backend.OnTransact(t, "fundSubscriptionWithNative", func(_ common.Address, tx *types.Transaction) ([]types.Log, []byte) {
		require.Equal(amount, tx.Value())
		args := bindingstest.UnpackInput(t, "fundSubscriptionWithNative", tx.Data())
		require.Equal([]interface{}{big.NewInt(11)}, args)
		return []types.Log{
			bindingstest.EventLog(t, EventSubscriptionFundedWithNative, big.NewInt(11), big.NewInt(1_000), big.NewInt(6_000)),
		}, nil
	})

	balance, err := client.FundSubscription(t.Context(), big.NewInt(11), amount)
	require.NoError(err)
	require.Equal(big.NewInt(6_000), balance)

	_, err = client.FundSubscription(t.Context(), big.NewInt(11), new(big.Int))
	require.ErrorIs(err, errNonPositiveAmount)
	require.Len(backend.Sent(), 1)
}

func TestCancelSubscription(t *testing.T) {
	require := require.New(t)
	client, backend, _ := newTestClient(t, testConfig())

	backend.OnTransact(t, "cancelSubscription", func(_ common.Address, tx *types.Transaction) ([]types.Log, []byte) {
		args := bindingstest.UnpackInput(t, "cancelSubscription", tx.Data())
		require.Equal([]interface{}{big.NewInt(11), consumer}, args)
		return []types.Log{
			bindingstest.EventLog(t, EventSubscriptionCanceled, big.NewInt(11), consumer, big.NewInt(4_200)),
		}, nil
	})

	refund, err := client.CancelSubscription(t.Context(), big.NewInt(11), consumer)
	require.NoError(err)
	require.Equal(big.NewInt(4_200), refund)
}

func TestSubscriptionTransactions(t *testing.T) {
	newOwner := common.HexToAddress("0x0000000000000000000000000000000000000def")
	subID := big.NewInt(11)

	tests := map[string]struct {
		method       string
		call         func(t *testing.T, client *Client) error
		expectedArgs []interface{}
	}{
		"add consumer": {
			method: "addConsumer",
			call: func(t *testing.T, client *Client) error {
				return client.AddConsumer(t.Context(), subID, consumer)
			},
			expectedArgs: []interface{}{subID, consumer},
		},
		"remove consumer": {
			method: "removeConsumer",
			call: func(t *testing.T, client *Client) error {
				return client.RemoveConsumer(t.Context(), subID, consumer)
			},
			expectedArgs: []interface{}{subID, consumer},
		},
		"request owner transfer": {
			method: "requestSubscriptionOwnerTransfer",
			call: func(t *testing.T, client *Client) error {
				return client.RequestSubscriptionOwnerTransfer(t.Context(), subID, newOwner)
			},
			expectedArgs: []interface{}{subID, newOwner},
		},
		"accept owner transfer": {
			method: "acceptSubscriptionOwnerTransfer",
			call: func(t *testing.T, client *Client) error {
				return client.AcceptSubscriptionOwnerTransfer(t.Context(), subID)
			},
			expectedArgs: []interface{}{subID},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			client, backend, _ := newTestClient(t, testConfig())

			require.NoError(test.call(t, client))
			sent := backend.Sent()
			require.Len(sent, 1)
			require.Equal(test.expectedArgs, bindingstest.UnpackInput(t, test.method, sent[0].Data()))
		})
	}
}

func TestGetSubscription(t *testing.T) {
	require := require.New(t)
	client, backend, signer := newTestClient(t, testConfig())

	backend.Returns(t, "getSubscription", big.NewInt(9_000), uint64(3), signer.Address(), []common.Address{consumer})
	backend.Returns(t, "pendingRequestExists", true)

	sub, err := client.GetSubscription(t.Context(), big.NewInt(11))
	require.NoError(err)
	require.Equal(&Subscription{
		ID:            big.NewInt(11),
		NativeBalance: big.NewInt(9_000),
		ReqCount:      3,
		Owner:         signer.Address(),
		Consumers:     []common.Address{consumer},
	}, sub)

	pending, err := client.PendingRequestExists(t.Context(), big.NewInt(11))
	require.NoError(err)
	require.True(pending)
}

func TestGetSubscriptionInvalid(t *testing.T) {
	client, backend, _ := newTestClient(t, testConfig())
	backend.Reverts(t, "getSubscription", bindingstest.ErrorData(t, "InvalidSubscription"))

	_, err := client.GetSubscription(t.Context(), big.NewInt(11))
	require.ErrorIs(t, err, ErrInvalidSubscription)
}

func TestActiveSubscriptionIDs(t *testing.T) {
	tests := map[string]struct {
		active        int64
		pageSize      uint64
		expectedCalls int
	}{
		"empty": {
			active:        0,
			pageSize:      2,
			expectedCalls: 1,
		},
		"partial last page": {
			active:        5,
			pageSize:      2,
			expectedCalls: 3,
		},
		"full last page": {
			active:        4,
			pageSize:      2,
			expectedCalls: 3,
		},
		"single page": {
			active:        1,
			pageSize:      2,
			expectedCalls: 1,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			config := testConfig()
			config.PageSize = test.pageSize
			client, backend, _ := newTestClient(t, config)

			method := mustABI().Methods["getActiveSubscriptionIds"]
			backend.HandleCall(bindingstest.Selector(t, "getActiveSubscriptionIds"), func(_ common.Address, input []byte) ([]byte, error) {
				args := bindingstest.UnpackInput(t, "getActiveSubscriptionIds", input)
				start := args[0].(*big.Int).Int64()
				count := args[1].(*big.Int).Int64()
				if start >= test.active {
					return nil, &bindingstest.RevertError{Data: bindingstest.ErrorData(t, "IndexOutOfRange")}
				}
				ids := []*big.Int{}
				for id := start; id < min(start+count, test.active); id++ {
					ids = append(ids, big.NewInt(id+1))
				}
				return method.Outputs.Pack(ids)
			})

			ids, err := client.ActiveSubscriptionIDs(t.Context())
			require.NoError(err)
			require.Len(ids, int(test.active))
			for i, id := range ids {
				require.Equal(big.NewInt(int64(i+1)), id)
			}
			require.Equal(test.expectedCalls, backend.Calls(bindingstest.Selector(t, "getActiveSubscriptionIds")))
		})
	}
}
