// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings"
	"github.com/randa-mu/dcipher-sub000/contracts/bindings/bindingstest"
)

func TestDecodeLog(t *testing.T) {
	requester := common.HexToAddress("0x0000000000000000000000000000000000000abc")
	randomness := common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")

	tests := map[string]struct {
		log      func(t *testing.T) types.Log
		name     string
		validate func(require *require.Assertions, payload interface{})
	}{
		"randomness requested": {
			log: func(t *testing.T) types.Log {
				return bindingstest.EventLog(t, EventRandomnessRequested, big.NewInt(1), big.NewInt(2), requester, big.NewInt(3))
			},
			name: EventRandomnessRequested,
			validate: func(require *require.Assertions, payload interface{}) {
				ev := payload.(*bindings.RandomnessSenderRandomnessRequested)
				require.Equal(big.NewInt(1), ev.RequestID)
				require.Equal(big.NewInt(2), ev.Nonce)
				require.Equal(requester, ev.Requester)
				require.Equal(big.NewInt(3), ev.RequestedAt)
			},
		},
		"callback success": {
			log: func(t *testing.T) types.Log {
				return bindingstest.EventLog(t, EventRandomnessCallbackSuccess, big.NewInt(1), randomness, []byte{0x01})
			},
			name: EventRandomnessCallbackSuccess,
			validate: func(require *require.Assertions, payload interface{}) {
				ev := payload.(*bindings.RandomnessSenderRandomnessCallbackSuccess)
				require.Equal(big.NewInt(1), ev.RequestID)
				require.Equal([32]byte(randomness), ev.Randomness)
				require.Equal([]byte{0x01}, ev.Signature)
			},
		},
		"subscription funded": {
			log: func(t *testing.T) types.Log {
				return bindingstest.EventLog(t, EventSubscriptionFundedWithNative, big.NewInt(4), big.NewInt(5), big.NewInt(6))
			},
			name: EventSubscriptionFundedWithNative,
			validate: func(require *require.Assertions, payload interface{}) {
				ev := payload.(*bindings.RandomnessSenderSubscriptionFundedWithNative)
				require.Equal(big.NewInt(4), ev.SubId)
				require.Equal(big.NewInt(5), ev.OldNativeBalance)
				require.Equal(big.NewInt(6), ev.NewNativeBalance)
			},
		},
		"disabled": {
			log: func(t *testing.T) types.Log {
				return bindingstest.EventLog(t, EventDisabled)
			},
			name: EventDisabled,
			validate: func(require *require.Assertions, payload interface{}) {
				require.IsType(&bindings.RandomnessSenderDisabled{}, payload)
			},
		},
		"signature sender updated": {
			log: func(t *testing.T) types.Log {
				return bindingstest.EventLog(t, EventSignatureSenderUpdated, requester)
			},
			name: EventSignatureSenderUpdated,
			validate: func(require *require.Assertions, payload interface{}) {
				ev := payload.(*bindings.RandomnessSenderSignatureSenderUpdated)
				require.Equal(requester, ev.SignatureSender)
			},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			log := test.log(t)
			ev, err := DecodeLog(log)
			require.NoError(err)
			require.Equal(test.name, ev.Name)
			require.Equal(log, ev.Log)
			test.validate(require, ev.Payload)
		})
	}
}

func TestEveryEventHasParser(t *testing.T) {
	require := require.New(t)
	for _, sig := range Topics() {
		_, ok := eventParsers[sig.Name]
		require.True(ok, "missing parser for %s", sig.Name)
	}
	require.Len(eventParsers, len(Topics()))
}

func TestDecodeLogErrors(t *testing.T) {
	tests := map[string]struct {
		log         types.Log
		expectedErr error
	}{
		"no topics": {
			log:         types.Log{Address: bindingstest.ContractAddress},
			expectedErr: errNoTopics,
		},
		"unknown topic": {
			log: types.Log{
				Address: bindingstest.ContractAddress,
				Topics:  []common.Hash{common.HexToHash("0x01")},
			},
			expectedErr: ErrUnknownEvent,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeLog(test.log)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestDecodeLogMalformed(t *testing.T) {
	log := bindingstest.EventLog(t, EventSubscriptionFundedWithNative, big.NewInt(4), big.NewInt(5), big.NewInt(6))
	log.Data = log.Data[:16]

	_, err := DecodeLog(log)
	require.ErrorContains(t, err, "failed to parse "+EventSubscriptionFundedWithNative)
}

func TestTopic(t *testing.T) {
	require := require.New(t)

	ev, ok := EventByTopic(Topic(EventRandomnessRequested))
	require.True(ok)
	require.Equal(EventRandomnessRequested, ev.Name)

	require.Panics(func() {
		Topic("NotAnEvent")
	})
}
