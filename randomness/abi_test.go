// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"sort"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestMethodBySelector(t *testing.T) {
	tests := map[string]struct {
		input        []byte
		expectedName string
		expectedOK   bool
	}{
		"requestRandomness": {
			input:        common.FromHex("0x811ee32a"),
			expectedName: "requestRandomness",
			expectedOK:   true,
		},
		"with trailing arguments": {
			input:        append(crypto.Keccak256([]byte("createSubscription()"))[:4], 0x00, 0x01),
			expectedName: "createSubscription",
			expectedOK:   true,
		},
		"short input": {
			input: []byte{0x81, 0x1e},
		},
		"unknown selector": {
			input: []byte{0xde, 0xad, 0xbe, 0xef},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			m, ok := MethodBySelector(test.input)
			require.Equal(test.expectedOK, ok)
			if ok {
				require.Equal(test.expectedName, m.RawName)
			}
		})
	}
}

func TestErrorBySelector(t *testing.T) {
	require := require.New(t)

	e, ok := ErrorBySelector(crypto.Keccak256([]byte("MustBeSubOwner(address)"))[:4])
	require.True(ok)
	require.Equal("MustBeSubOwner", e.Name)

	_, ok = ErrorBySelector([]byte{0x01})
	require.False(ok)
}

func TestEventByTopic(t *testing.T) {
	require := require.New(t)

	ev, ok := EventByTopic(crypto.Keccak256Hash([]byte("RandomnessCallbackFailed(uint256)")))
	require.True(ok)
	require.Equal("RandomnessCallbackFailed", ev.Name)

	_, ok = EventByTopic(common.Hash{})
	require.False(ok)
}

func TestSignatureTables(t *testing.T) {
	tests := map[string]struct {
		sigs     []Signature
		expected int
		id       func(Signature) []byte
	}{
		"selectors": {
			sigs:     Selectors(),
			expected: 51,
			id: func(s Signature) []byte {
				return crypto.Keccak256([]byte(s.Signature))[:4]
			},
		},
		"topics": {
			sigs:     Topics(),
			expected: 19,
			id: func(s Signature) []byte {
				return crypto.Keccak256([]byte(s.Signature))
			},
		},
		"errors": {
			sigs:     ErrorSelectors(),
			expected: 22,
			id: func(s Signature) []byte {
				return crypto.Keccak256([]byte(s.Signature))[:4]
			},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			require.Len(test.sigs, test.expected)
			require.True(sort.SliceIsSorted(test.sigs, func(i, j int) bool {
				return test.sigs[i].Name < test.sigs[j].Name
			}))
			for _, sig := range test.sigs {
				require.Equal(test.id(sig), common.FromHex(sig.ID), sig.Signature)
			}
		})
	}
}
