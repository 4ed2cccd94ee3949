// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

const (
	// Names used for the two builtin Solidity revert payloads.
	errorStringName = "Error"
	panicName       = "Panic"
)

var (
	errorStringSelector = [4]byte{0x08, 0xc3, 0x79, 0xa0}
	panicSelector       = [4]byte{0x4e, 0x48, 0x7b, 0x71}

	ErrEmptyRevert   = errors.New("execution reverted without data")
	ErrUnknownRevert = errors.New("unknown revert selector")

	// Custom errors declared by RandomnessSender and the contracts it inherits.
	ErrAccessControlBadConfirmation     = errors.New("access control: bad confirmation")
	ErrAccessControlUnauthorizedAccount = errors.New("access control: unauthorized account")
	ErrAddressEmptyCode                 = errors.New("address has no code")
	ErrBalanceInvariantViolated         = errors.New("balance invariant violated")
	ErrERC1967InvalidImplementation     = errors.New("invalid ERC1967 implementation")
	ErrERC1967NonPayable                = errors.New("ERC1967 non payable")
	ErrFailedCall                       = errors.New("failed call")
	ErrFailedToSendNative               = errors.New("failed to send native token")
	ErrIndexOutOfRange                  = errors.New("index out of range")
	ErrInsufficientBalance              = errors.New("insufficient balance")
	ErrInvalidCalldata                  = errors.New("invalid calldata")
	ErrInvalidConsumer                  = errors.New("invalid consumer")
	ErrInvalidInitialization            = errors.New("invalid initialization")
	ErrInvalidSubscription              = errors.New("invalid subscription")
	ErrMustBeRequestedOwner             = errors.New("must be requested owner")
	ErrMustBeSubOwner                   = errors.New("must be subscription owner")
	ErrNotInitializing                  = errors.New("not initializing")
	ErrPendingRequestExists             = errors.New("pending request exists")
	ErrReentrantCall                    = errors.New("reentrant call")
	ErrTooManyConsumers                 = errors.New("too many consumers")
	ErrUUPSUnauthorizedCallContext      = errors.New("UUPS unauthorized call context")
	ErrUUPSUnsupportedProxiableUUID     = errors.New("UUPS unsupported proxiable UUID")

	contractErrors = map[string]error{
		"AccessControlBadConfirmation":     ErrAccessControlBadConfirmation,
		"AccessControlUnauthorizedAccount": ErrAccessControlUnauthorizedAccount,
		"AddressEmptyCode":                 ErrAddressEmptyCode,
		"BalanceInvariantViolated":         ErrBalanceInvariantViolated,
		"ERC1967InvalidImplementation":     ErrERC1967InvalidImplementation,
		"ERC1967NonPayable":                ErrERC1967NonPayable,
		"FailedCall":                       ErrFailedCall,
		"FailedToSendNative":               ErrFailedToSendNative,
		"IndexOutOfRange":                  ErrIndexOutOfRange,
		"InsufficientBalance":              ErrInsufficientBalance,
		"InvalidCalldata":                  ErrInvalidCalldata,
		"InvalidConsumer":                  ErrInvalidConsumer,
		"InvalidInitialization":            ErrInvalidInitialization,
		"InvalidSubscription":              ErrInvalidSubscription,
		"MustBeRequestedOwner":             ErrMustBeRequestedOwner,
		"MustBeSubOwner":                   ErrMustBeSubOwner,
		"NotInitializing":                  ErrNotInitializing,
		"PendingRequestExists":             ErrPendingRequestExists,
		"ReentrancyGuardReentrantCall":     ErrReentrantCall,
		"TooManyConsumers":                 ErrTooManyConsumers,
		"UUPSUnauthorizedCallContext":      ErrUUPSUnauthorizedCallContext,
		"UUPSUnsupportedProxiableUUID":     ErrUUPSUnsupportedProxiableUUID,
	}
)

// ContractError is a decoded revert. It matches the sentinel of its custom
// error with errors.Is.
type ContractError struct {
	// Name is the custom error name, or "Error"/"Panic" for builtin reverts.
	Name string
	// Reason is set for builtin reverts.
	Reason string
	// Args holds the decoded custom error arguments keyed by parameter name.
	Args map[string]interface{}
	// Data is the raw revert payload.
	Data []byte

	inputs abi.Arguments
	cause  error
}

func (e *ContractError) Error() string {
	var sb strings.Builder
	sb.WriteString("execution reverted: ")
	if e.Reason != "" {
		sb.WriteString(e.Reason)
		return sb.String()
	}
	sb.WriteString(e.Name)
	sb.WriteByte('(')
	for i, input := range e.inputs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", input.Name, e.Args[input.Name])
	}
	sb.WriteByte(')')
	return sb.String()
}

func (e *ContractError) Is(target error) bool {
	sentinel, ok := contractErrors[e.Name]
	return ok && sentinel == target
}

func (e *ContractError) Unwrap() error {
	return e.cause
}

// UnpackRevert decodes a revert payload returned by the contract.
func UnpackRevert(data []byte) (*ContractError, error) {
	if len(data) == 0 {
		return nil, ErrEmptyRevert
	}
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: short payload %x", ErrUnknownRevert, data)
	}

	switch selector := [4]byte(data[:4]); selector {
	case errorStringSelector, panicSelector:
		reason, err := abi.UnpackRevert(data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack builtin revert: %w", err)
		}
		name := errorStringName
		if selector == panicSelector {
			name = panicName
		}
		return &ContractError{
			Name:   name,
			Reason: reason,
			Data:   data,
		}, nil
	}

	e, ok := ErrorBySelector(data)
	if !ok {
		return nil, fmt.Errorf("%w: %x", ErrUnknownRevert, data[:4])
	}
	values, err := e.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", e.Name, err)
	}
	args := make(map[string]interface{}, len(values))
	for i, input := range e.Inputs {
		args[input.Name] = values[i]
	}
	return &ContractError{
		Name:   e.Name,
		Args:   args,
		Data:   data,
		inputs: e.Inputs,
	}, nil
}

// RevertData extracts the revert payload carried by a JSON-RPC error.
func RevertData(err error) ([]byte, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil, false
	}
	switch data := dataErr.ErrorData().(type) {
	case string:
		b, err := hexutil.Decode(data)
		if err != nil {
			return nil, false
		}
		return b, true
	case []byte:
		return data, true
	default:
		return nil, false
	}
}

// WrapRevert replaces an RPC revert error with the decoded ContractError. Any
// other error is returned unchanged.
func WrapRevert(err error) error {
	if err == nil {
		return nil
	}
	data, ok := RevertData(err)
	if !ok {
		return err
	}
	contractErr, unpackErr := UnpackRevert(data)
	if unpackErr != nil {
		return err
	}
	contractErr.cause = err
	return contractErr
}
