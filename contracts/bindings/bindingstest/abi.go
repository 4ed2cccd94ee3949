// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bindingstest

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings"
)

// ContractAddress is where tests deploy the RandomnessSender proxy.
var ContractAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

// ABI returns the parsed RandomnessSender ABI.
func ABI(t testing.TB) *abi.ABI {
	t.Helper()
	parsed, err := bindings.RandomnessSenderMetaData.GetAbi()
	require.NoError(t, err)
	return parsed
}

// Selector returns the 4-byte selector of [method].
func Selector(t testing.TB, method string) [4]byte {
	t.Helper()
	m, ok := ABI(t).Methods[method]
	require.True(t, ok, "unknown method %q", method)
	var selector [4]byte
	copy(selector[:], m.ID)
	return selector
}

// NewContractBackend returns a Backend with code installed at
// [ContractAddress].
func NewContractBackend() *Backend {
	b := NewBackend()
	b.SetCode(ContractAddress, []byte{0x60, 0x80, 0x60, 0x40})
	return b
}

// Returns makes every eth_call to [method] return [values].
func (b *Backend) Returns(t testing.TB, method string, values ...interface{}) {
	t.Helper()
	m, ok := ABI(t).Methods[method]
	require.True(t, ok, "unknown method %q", method)
	out, err := m.Outputs.Pack(values...)
	require.NoError(t, err)
	b.HandleCall(Selector(t, method), func(common.Address, []byte) ([]byte, error) {
		return out, nil
	})
}

// Reverts makes every eth_call to [method] revert with [data].
func (b *Backend) Reverts(t testing.TB, method string, data []byte) {
	t.Helper()
	b.HandleCall(Selector(t, method), func(common.Address, []byte) ([]byte, error) {
		return nil, &RevertError{Data: data}
	})
}

// OnTransact registers [h] for transactions calling [method].
func (b *Backend) OnTransact(t testing.TB, method string, h TxHandler) {
	t.Helper()
	b.HandleTransaction(Selector(t, method), h)
}

// UnpackInput decodes the arguments of a call to [method].
func UnpackInput(t testing.TB, method string, input []byte) []interface{} {
	t.Helper()
	parsed := ABI(t)
	m, ok := parsed.Methods[method]
	require.True(t, ok, "unknown method %q", method)
	require.GreaterOrEqual(t, len(input), 4)
	require.Equal(t, m.ID, input[:4])
	args, err := m.Inputs.Unpack(input[4:])
	require.NoError(t, err)
	return args
}

// ErrorData returns the revert payload of custom error [name].
func ErrorData(t testing.TB, name string, args ...interface{}) []byte {
	t.Helper()
	e, ok := ABI(t).Errors[name]
	require.True(t, ok, "unknown error %q", name)
	packed, err := e.Inputs.Pack(args...)
	require.NoError(t, err)
	return append(append([]byte{}, e.ID[:4]...), packed...)
}

// EventLog builds a log for event [name] emitted by [ContractAddress]. [args]
// follow the declaration order, indexed and non-indexed interleaved.
func EventLog(t testing.TB, name string, args ...interface{}) types.Log {
	t.Helper()
	ev, ok := ABI(t).Events[name]
	require.True(t, ok, "unknown event %q", name)
	require.Len(t, args, len(ev.Inputs))

	topics := []common.Hash{ev.ID}
	var nonIndexed []interface{}
	for i, input := range ev.Inputs {
		if !input.Indexed {
			nonIndexed = append(nonIndexed, args[i])
			continue
		}
		hashes, err := abi.MakeTopics([]interface{}{args[i]})
		require.NoError(t, err)
		topics = append(topics, hashes[0][0])
	}
	data, err := ev.Inputs.NonIndexed().Pack(nonIndexed...)
	require.NoError(t, err)

	return types.Log{
		Address: ContractAddress,
		Topics:  topics,
		Data:    data,
	}
}
