// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings"
	"github.com/randa-mu/dcipher-sub000/contracts/bindings/bindingstest"
	"github.com/randa-mu/dcipher-sub000/utils/logging"
)

var consumer = common.HexToAddress("0x00000000000000000000000000000000000c0ffe")

func testConfig() Config {
	config := DefaultConfig(bindingstest.ContractAddress)
	config.PollInterval = 10 * time.Millisecond
	config.ReceiptTimeout = 5 * time.Second
	config.FulfillmentTimeout = time.Second
	return config
}

func newTestClient(t *testing.T, config Config) (*Client, *bindingstest.Backend, *KeySigner) {
	t.Helper()
	require := require.New(t)

	key, err := crypto.GenerateKey()
	require.NoError(err)
	signer := NewKeySigner(key)

	backend := bindingstest.NewContractBackend()
	client, err := NewClient(config, backend, signer, logging.NoLog{}, prometheus.NewRegistry())
	require.NoError(err)
	return client, backend, signer
}

func TestNewClientInvalidConfig(t *testing.T) {
	config := testConfig()
	config.Address = common.Address{}
	_, err := NewClient(config, bindingstest.NewBackend(), nil, logging.NoLog{}, prometheus.NewRegistry())
	require.ErrorIs(t, err, errZeroAddress)
}

func TestNewClientDuplicateMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	backend := bindingstest.NewContractBackend()
	_, err := NewClient(testConfig(), backend, nil, logging.NoLog{}, registry)
	require.NoError(t, err)
	_, err = NewClient(testConfig(), backend, nil, logging.NoLog{}, registry)
	require.Error(t, err)
}

func TestChainIDCached(t *testing.T) {
	require := require.New(t)
	client, _, _ := newTestClient(t, testConfig())

	chainID, err := client.ChainID(t.Context())
	require.NoError(err)
	require.Zero(bindingstest.DefaultChainID.Cmp(chainID))

	// Callers must not be able to mutate the cached value.
	chainID.SetUint64(1)
	chainID, err = client.ChainID(t.Context())
	require.NoError(err)
	require.Zero(bindingstest.DefaultChainID.Cmp(chainID))
}

// quoteAtGasPrice answers estimateRequestPriceNative with the callback gas
// limit times the quoted gas price, recording every quoted gas price.
func quoteAtGasPrice(t *testing.T, backend *bindingstest.Backend) *[]*big.Int {
	quoted := &[]*big.Int{}
	backend.HandleCall(bindingstest.Selector(t, "estimateRequestPriceNative"), func(_ common.Address, input []byte) ([]byte, error) {
		args := bindingstest.UnpackInput(t, "estimateRequestPriceNative", input)
		gasPrice := args[1].(*big.Int)
		*quoted = append(*quoted, gasPrice)
		price := new(big.Int).Mul(gasPrice, big.NewInt(int64(args[0].(uint32))))
		return packOutputs(t, "estimateRequestPriceNative", price)
	})
	return quoted
}

func TestRequestRandomness(t *testing.T) {
	require := require.New(t)
	client, backend, signer := newTestClient(t, testConfig())

	quoted := quoteAtGasPrice(t, backend)
	backend.OnTransact(t, methodRequestRandomness, func(from common.Address, tx *types.Transaction) ([]types.Log, []byte) {
		args := bindingstest.UnpackInput(t, methodRequestRandomness, tx.Data())
		require.Equal([]interface{}{DefaultCallbackGasLimit}, args)
		return []types.Log{
			bindingstest.EventLog(t, EventRandomnessRequested, big.NewInt(7), big.NewInt(3), from, big.NewInt(1_700_000_000)),
		}, nil
	})

	req, err := client.RequestRandomness(t.Context(), 0)
	require.NoError(err)
	require.Equal(big.NewInt(7), req.ID)
	require.Equal(big.NewInt(3), req.Nonce)
	require.Equal(signer.Address(), req.Requester)
	require.Equal(big.NewInt(1_700_000_000), req.RequestedAt)
	require.Nil(req.SubscriptionID)
	require.Equal(DefaultCallbackGasLimit, req.CallbackGasLimit)
	require.Equal(uint64(1), req.BlockNumber)

	sent := backend.Sent()
	require.Len(sent, 1)
	tx := sent[0]
	require.Equal(req.TxHash, tx.Hash())
	require.Equal(bindingstest.DefaultGas*120/100, tx.Gas())
	require.Equal(types.DynamicFeeTxType, int(tx.Type()))

	// The price is quoted at the fee cap the transaction carries.
	expectedFeeCap := new(big.Int).Mul(bindingstest.DefaultBaseFee, big.NewInt(2))
	expectedFeeCap.Add(expectedFeeCap, bindingstest.DefaultTip)
	require.Zero(expectedFeeCap.Cmp(tx.GasFeeCap()))
	require.Zero(bindingstest.DefaultTip.Cmp(tx.GasTipCap()))
	require.Equal([]*big.Int{tx.GasFeeCap()}, *quoted)

	estimate := new(big.Int).Mul(tx.GasFeeCap(), big.NewInt(int64(DefaultCallbackGasLimit)))
	require.GreaterOrEqual(tx.Value().Cmp(estimate), 0)
	require.Equal(addPercent(estimate, DefaultPriceBufferPercent), tx.Value())
	require.Equal(tx.Value(), req.Paid)
	require.Zero(backend.Calls(bindingstest.Selector(t, "calculateRequestPriceNative")))

	require.InDelta(1, testutil.ToFloat64(client.metrics.transactions.WithLabelValues(methodRequestRandomness)), 0)
}

func TestRequestRandomnessPreLondon(t *testing.T) {
	require := require.New(t)
	client, backend, _ := newTestClient(t, testConfig())
	backend.SetBaseFee(nil)

	quoted := quoteAtGasPrice(t, backend)
	backend.OnTransact(t, methodRequestRandomness, func(from common.Address, _ *types.Transaction) ([]types.Log, []byte) {
		return []types.Log{
			bindingstest.EventLog(t, EventRandomnessRequested, big.NewInt(1), big.NewInt(1), from, big.NewInt(1)),
		}, nil
	})

	req, err := client.RequestRandomness(t.Context(), 0)
	require.NoError(err)

	sent := backend.Sent()
	require.Len(sent, 1)
	tx := sent[0]
	require.Equal(types.LegacyTxType, int(tx.Type()))
	require.Zero(bindingstest.DefaultGasPrice.Cmp(tx.GasPrice()))
	require.Equal([]*big.Int{tx.GasPrice()}, *quoted)

	estimate := new(big.Int).Mul(tx.GasPrice(), big.NewInt(int64(DefaultCallbackGasLimit)))
	require.GreaterOrEqual(tx.Value().Cmp(estimate), 0)
	require.Equal(tx.Value(), req.Paid)
}

func TestPrice(t *testing.T) {
	dynamicFeeCap := new(big.Int).Mul(bindingstest.DefaultBaseFee, big.NewInt(2))
	dynamicFeeCap.Add(dynamicFeeCap, bindingstest.DefaultTip)

	tests := map[string]struct {
		baseFee          *big.Int
		expectedGasPrice *big.Int
	}{
		"dynamic fees": {
			baseFee:          bindingstest.DefaultBaseFee,
			expectedGasPrice: dynamicFeeCap,
		},
		"pre-london": {
			expectedGasPrice: bindingstest.DefaultGasPrice,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			client, backend, _ := newTestClient(t, testConfig())
			backend.SetBaseFee(test.baseFee)
			quoted := quoteAtGasPrice(t, backend)

			estimate := new(big.Int).Mul(test.expectedGasPrice, big.NewInt(50_000))
			price, err := client.Price(t.Context(), 50_000)
			require.NoError(err)
			require.Equal(estimate, price)

			buffered, err := client.BufferedPrice(t.Context(), 50_000)
			require.NoError(err)
			require.Equal(addPercent(estimate, DefaultPriceBufferPercent), buffered)
			require.Equal([]*big.Int{test.expectedGasPrice, test.expectedGasPrice}, *quoted)
		})
	}
}

func TestRequestRandomnessWithSubscription(t *testing.T) {
	require := require.New(t)
	client, backend, _ := newTestClient(t, testConfig())

	subID := big.NewInt(42)
	backend.OnTransact(t, methodRequestRandomnessWithSubscription, func(from common.Address, tx *types.Transaction) ([]types.Log, []byte) {
		args := bindingstest.UnpackInput(t, methodRequestRandomnessWithSubscription, tx.Data())
		require.Equal([]interface{}{uint32(250_000), subID}, args)
		require.Zero(tx.Value().Sign())
		return []types.Log{
			bindingstest.EventLog(t, EventRandomnessRequested, big.NewInt(8), big.NewInt(4), from, big.NewInt(1_700_000_001)),
		}, nil
	})

	req, err := client.RequestRandomnessWithSubscription(t.Context(), 250_000, subID)
	require.NoError(err)
	require.Equal(big.NewInt(8), req.ID)
	require.Equal(subID, req.SubscriptionID)
	require.Equal(uint32(250_000), req.CallbackGasLimit)
	require.Zero(req.Paid.Sign())
	require.Zero(backend.Calls(bindingstest.Selector(t, "estimateRequestPriceNative")))
}

func TestRequestRandomnessMissingEvent(t *testing.T) {
	client, backend, _ := newTestClient(t, testConfig())
	backend.Returns(t, "estimateRequestPriceNative", big.NewInt(1_000))

	_, err := client.RequestRandomness(t.Context(), 0)
	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestTransactFixedGasLimit(t *testing.T) {
	require := require.New(t)
	config := testConfig()
	config.GasLimit = 500_000
	client, backend, _ := newTestClient(t, config)

	backend.FailEstimate(bindingstest.Selector(t, "disable"), bindingstest.ErrorData(t, "InvalidCalldata"))
	require.NoError(client.Disable(t.Context()))

	sent := backend.Sent()
	require.Len(sent, 1)
	require.Equal(uint64(500_000), sent[0].Gas())
}

func TestTransactErrors(t *testing.T) {
	owner := common.HexToAddress("0x0000000000000000000000000000000000000abc")

	tests := map[string]struct {
		setup       func(t *testing.T, backend *bindingstest.Backend)
		call        func(t *testing.T, client *Client) error
		expectedErr error
		revertName  string
		sent        int
	}{
		"estimate reverts with custom error": {
			setup: func(t *testing.T, backend *bindingstest.Backend) {
				backend.FailEstimate(
					bindingstest.Selector(t, "removeConsumer"),
					bindingstest.ErrorData(t, "MustBeSubOwner", owner),
				)
			},
			call: func(t *testing.T, client *Client) error {
				return client.RemoveConsumer(t.Context(), big.NewInt(1), consumer)
			},
			expectedErr: ErrMustBeSubOwner,
			revertName:  "MustBeSubOwner",
		},
		"mined transaction reverts": {
			setup: func(t *testing.T, backend *bindingstest.Backend) {
				data := bindingstest.ErrorData(t, "TooManyConsumers")
				backend.OnTransact(t, "addConsumer", func(common.Address, *types.Transaction) ([]types.Log, []byte) {
					return nil, data
				})
				backend.Reverts(t, "addConsumer", data)
			},
			call: func(t *testing.T, client *Client) error {
				return client.AddConsumer(t.Context(), big.NewInt(1), consumer)
			},
			expectedErr: ErrTooManyConsumers,
			revertName:  "TooManyConsumers",
			sent:        1,
		},
		"mined transaction reverts without reason": {
			setup: func(t *testing.T, backend *bindingstest.Backend) {
				backend.OnTransact(t, "enable", func(common.Address, *types.Transaction) ([]types.Log, []byte) {
					return nil, []byte{}
				})
				backend.HandleCall(bindingstest.Selector(t, "enable"), func(common.Address, []byte) ([]byte, error) {
					return nil, nil
				})
			},
			call: func(t *testing.T, client *Client) error {
				return client.Enable(t.Context())
			},
			expectedErr: ErrTransactionReverted,
			sent:        1,
		},
		"no signer": {
			setup: func(*testing.T, *bindingstest.Backend) {},
			call: func(t *testing.T, client *Client) error {
				client.signer = nil
				return client.Disable(t.Context())
			},
			expectedErr: ErrNoSigner,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			client, backend, _ := newTestClient(t, testConfig())
			test.setup(t, backend)

			err := test.call(t, client)
			require.ErrorIs(err, test.expectedErr)
			require.Len(backend.Sent(), test.sent)

			if test.revertName == "" {
				return
			}
			var contractErr *ContractError
			require.True(errors.As(err, &contractErr))
			require.Equal(test.revertName, contractErr.Name)
			require.InDelta(1, testutil.ToFloat64(client.metrics.reverts.WithLabelValues(test.revertName)), 0)
		})
	}
}

func TestReadCalls(t *testing.T) {
	require := require.New(t)
	client, backend, signer := newTestClient(t, testConfig())

	stored := bindings.TypesLibRandomnessRequest{
		SubId:                big.NewInt(1),
		DirectFundingFeePaid: big.NewInt(2),
		CallbackGasLimit:     100_000,
		RequestId:            big.NewInt(3),
		Message:              []byte("message"),
		Condition:            []byte{},
		Signature:            []byte{},
		Nonce:                big.NewInt(4),
		Callback:             consumer,
	}
	backend.Returns(t, "getRequest", stored)
	backend.Returns(t, "getAllRequests", []bindings.TypesLibRandomnessRequest{stored})
	backend.Returns(t, "isInFlight", true)
	backend.Returns(t, "nonce", big.NewInt(5))
	backend.Returns(t, "estimateRequestPriceNative", big.NewInt(9_000))
	backend.HandleCall(bindingstest.Selector(t, "messageFrom"), func(from common.Address, _ []byte) ([]byte, error) {
		require.Equal(signer.Address(), from)
		return packOutputs(t, "messageFrom", []byte("signed message"))
	})

	req, err := client.GetRequest(t.Context(), big.NewInt(3))
	require.NoError(err)
	require.Equal(stored, req)

	all, err := client.AllRequests(t.Context())
	require.NoError(err)
	require.Equal([]bindings.TypesLibRandomnessRequest{stored}, all)

	inFlight, err := client.IsInFlight(t.Context(), big.NewInt(3))
	require.NoError(err)
	require.True(inFlight)

	nonce, err := client.Nonce(t.Context())
	require.NoError(err)
	require.Equal(big.NewInt(5), nonce)

	price, err := client.EstimatePrice(t.Context(), 100_000, big.NewInt(30))
	require.NoError(err)
	require.Equal(big.NewInt(9_000), price)

	msg, err := client.MessageFor(t.Context(), big.NewInt(4), consumer)
	require.NoError(err)
	require.Equal([]byte("signed message"), msg)
}

func TestCallRevert(t *testing.T) {
	require := require.New(t)
	client, backend, _ := newTestClient(t, testConfig())

	backend.Reverts(t, "isInFlight", bindingstest.ErrorData(t, "InvalidCalldata"))
	_, err := client.IsInFlight(t.Context(), big.NewInt(1))
	require.ErrorIs(err, ErrInvalidCalldata)
	require.ErrorContains(err, "failed to call isInFlight")
}

func TestAddPercent(t *testing.T) {
	tests := map[string]struct {
		value    int64
		percent  uint64
		expected int64
	}{
		"zero percent": {value: 1_000, percent: 0, expected: 1_000},
		"ten percent":  {value: 1_000, percent: 10, expected: 1_100},
		"rounds down":  {value: 15, percent: 10, expected: 16},
		"doubles":      {value: 7, percent: 100, expected: 14},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			value := big.NewInt(test.value)
			require.Equal(t, big.NewInt(test.expected), addPercent(value, test.percent))
			require.Equal(t, big.NewInt(test.value), value)
		})
	}
}

// packOutputs packs [values] as the return data of [method].
func packOutputs(t *testing.T, method string, values ...interface{}) ([]byte, error) {
	t.Helper()
	m, ok := mustABI().Methods[method]
	require.True(t, ok)
	return m.Outputs.Pack(values...)
}
