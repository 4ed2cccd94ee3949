// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings"
)

var (
	parseOnce sync.Once
	parsedABI *abi.ABI
	parseErr  error

	methodsBySelector map[[4]byte]*abi.Method
	errorsBySelector  map[[4]byte]*abi.Error
)

// ABI returns the parsed RandomnessSender ABI. The result is shared and must
// not be modified.
func ABI() (*abi.ABI, error) {
	parseOnce.Do(func() {
		parsedABI, parseErr = bindings.RandomnessSenderMetaData.GetAbi()
		if parseErr != nil {
			parseErr = fmt.Errorf("failed to parse RandomnessSender ABI: %w", parseErr)
			return
		}

		methodsBySelector = make(map[[4]byte]*abi.Method, len(parsedABI.Methods))
		for name := range parsedABI.Methods {
			method := parsedABI.Methods[name]
			methodsBySelector[[4]byte(method.ID)] = &method
		}
		errorsBySelector = make(map[[4]byte]*abi.Error, len(parsedABI.Errors))
		for name := range parsedABI.Errors {
			e := parsedABI.Errors[name]
			errorsBySelector[[4]byte(e.ID[:4])] = &e
		}
	})
	return parsedABI, parseErr
}

func mustABI() *abi.ABI {
	parsed, err := ABI()
	if err != nil {
		panic(err)
	}
	return parsed
}

// MethodBySelector returns the contract method whose selector prefixes
// [input].
func MethodBySelector(input []byte) (*abi.Method, bool) {
	if len(input) < 4 {
		return nil, false
	}
	mustABI()
	m, ok := methodsBySelector[[4]byte(input[:4])]
	return m, ok
}

// EventByTopic returns the event whose signature hashes to [topic].
func EventByTopic(topic common.Hash) (*abi.Event, bool) {
	e, err := mustABI().EventByID(topic)
	return e, err == nil
}

// ErrorBySelector returns the custom error whose selector prefixes [data].
func ErrorBySelector(data []byte) (*abi.Error, bool) {
	if len(data) < 4 {
		return nil, false
	}
	mustABI()
	e, ok := errorsBySelector[[4]byte(data[:4])]
	return e, ok
}

// Signature pairs a canonical ABI signature with its identifier.
type Signature struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
	ID        string `json:"id"`
}

// Selectors lists every function selector, sorted by name.
func Selectors() []Signature {
	parsed := mustABI()
	sigs := make([]Signature, 0, len(parsed.Methods))
	for _, m := range parsed.Methods {
		sigs = append(sigs, Signature{
			Name:      m.RawName,
			Signature: m.Sig,
			ID:        common.Bytes2Hex(m.ID),
		})
	}
	return sortSignatures(sigs)
}

// Topics lists every event topic0, sorted by name.
func Topics() []Signature {
	parsed := mustABI()
	sigs := make([]Signature, 0, len(parsed.Events))
	for _, e := range parsed.Events {
		sigs = append(sigs, Signature{
			Name:      e.RawName,
			Signature: e.Sig,
			ID:        e.ID.Hex(),
		})
	}
	return sortSignatures(sigs)
}

// ErrorSelectors lists every custom error selector, sorted by name.
func ErrorSelectors() []Signature {
	parsed := mustABI()
	sigs := make([]Signature, 0, len(parsed.Errors))
	for _, e := range parsed.Errors {
		sigs = append(sigs, Signature{
			Name:      e.Name,
			Signature: e.Sig,
			ID:        common.Bytes2Hex(e.ID[:4]),
		})
	}
	return sortSignatures(sigs)
}

func sortSignatures(sigs []Signature) []Signature {
	sort.Slice(sigs, func(i, j int) bool {
		return sigs[i].Name < sigs[j].Name
	})
	return sigs
}
