// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings/bindingstest"
)

func builtinRevert(t *testing.T, selector [4]byte, typ string, value interface{}) []byte {
	t.Helper()
	argType, err := abi.NewType(typ, "", nil)
	require.NoError(t, err)
	packed, err := abi.Arguments{{Type: argType}}.Pack(value)
	require.NoError(t, err)
	return append(selector[:], packed...)
}

func TestUnpackRevert(t *testing.T) {
	owner := common.HexToAddress("0x0000000000000000000000000000000000000abc")

	tests := map[string]struct {
		data         func(t *testing.T) []byte
		expectedErr  error
		expectedName string
		expectedArgs map[string]interface{}
		sentinel     error
	}{
		"custom error with arguments": {
			data: func(t *testing.T) []byte {
				return bindingstest.ErrorData(t, "InvalidConsumer", big.NewInt(5), owner)
			},
			expectedName: "InvalidConsumer",
			expectedArgs: map[string]interface{}{
				"subId":    big.NewInt(5),
				"consumer": owner,
			},
			sentinel: ErrInvalidConsumer,
		},
		"custom error without arguments": {
			data: func(t *testing.T) []byte {
				return bindingstest.ErrorData(t, "InsufficientBalance")
			},
			expectedName: "InsufficientBalance",
			expectedArgs: map[string]interface{}{},
			sentinel:     ErrInsufficientBalance,
		},
		"reentrancy guard": {
			data: func(t *testing.T) []byte {
				return bindingstest.ErrorData(t, "ReentrancyGuardReentrantCall")
			},
			expectedName: "ReentrancyGuardReentrantCall",
			expectedArgs: map[string]interface{}{},
			sentinel:     ErrReentrantCall,
		},
		"error string": {
			data: func(t *testing.T) []byte {
				return builtinRevert(t, errorStringSelector, "string", "Direct funding required for request fulfillment callback")
			},
			expectedName: errorStringName,
		},
		"panic": {
			data: func(t *testing.T) []byte {
				return builtinRevert(t, panicSelector, "uint256", big.NewInt(0x11))
			},
			expectedName: panicName,
		},
		"empty": {
			data:        func(*testing.T) []byte { return nil },
			expectedErr: ErrEmptyRevert,
		},
		"short": {
			data:        func(*testing.T) []byte { return []byte{0x01, 0x02} },
			expectedErr: ErrUnknownRevert,
		},
		"unknown selector": {
			data:        func(*testing.T) []byte { return []byte{0xde, 0xad, 0xbe, 0xef} },
			expectedErr: ErrUnknownRevert,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			data := test.data(t)
			contractErr, err := UnpackRevert(data)
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				return
			}
			require.Equal(test.expectedName, contractErr.Name)
			require.Equal(data, contractErr.Data)
			if test.expectedArgs != nil {
				require.Equal(test.expectedArgs, contractErr.Args)
				require.Empty(contractErr.Reason)
			} else {
				require.NotEmpty(contractErr.Reason)
			}
			if test.sentinel != nil {
				require.ErrorIs(contractErr, test.sentinel)
				require.NotErrorIs(contractErr, ErrMustBeSubOwner)
			}
		})
	}
}

func TestContractErrorString(t *testing.T) {
	require := require.New(t)
	owner := common.HexToAddress("0x0000000000000000000000000000000000000abc")

	contractErr, err := UnpackRevert(bindingstest.ErrorData(t, "MustBeSubOwner", owner))
	require.NoError(err)
	require.Equal(fmt.Sprintf("execution reverted: MustBeSubOwner(owner=%s)", owner), contractErr.Error())

	contractErr, err = UnpackRevert(bindingstest.ErrorData(t, "PendingRequestExists"))
	require.NoError(err)
	require.Equal("execution reverted: PendingRequestExists()", contractErr.Error())

	contractErr, err = UnpackRevert(builtinRevert(t, errorStringSelector, "string", "disabled"))
	require.NoError(err)
	require.Equal("execution reverted: disabled", contractErr.Error())
}

func TestWrapRevert(t *testing.T) {
	require := require.New(t)

	require.NoError(WrapRevert(nil))

	plain := errors.New("connection refused")
	require.Equal(plain, WrapRevert(plain))

	rpcErr := &bindingstest.RevertError{Data: bindingstest.ErrorData(t, "TooManyConsumers")}
	wrapped := WrapRevert(fmt.Errorf("estimate: %w", rpcErr))
	require.ErrorIs(wrapped, ErrTooManyConsumers)
	require.ErrorIs(wrapped, rpcErr)

	// Undecodable revert data keeps the original error.
	unknown := &bindingstest.RevertError{Data: []byte{0xde, 0xad, 0xbe, 0xef}}
	require.Equal(error(unknown), WrapRevert(unknown))
}

func TestRevertData(t *testing.T) {
	require := require.New(t)

	_, ok := RevertData(errors.New("boom"))
	require.False(ok)

	data := bindingstest.ErrorData(t, "FailedCall")
	got, ok := RevertData(fmt.Errorf("call: %w", &bindingstest.RevertError{Data: data}))
	require.True(ok)
	require.Equal(data, got)
}

func TestEveryErrorHasSentinel(t *testing.T) {
	require := require.New(t)
	for _, sig := range ErrorSelectors() {
		_, ok := contractErrors[sig.Name]
		require.True(ok, "missing sentinel for %s", sig.Name)
	}
	require.Len(contractErrors, len(ErrorSelectors()))
}
