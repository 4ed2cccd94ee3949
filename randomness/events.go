// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings"
)

// Event names emitted by RandomnessSender.
const (
	EventConfigSet                          = "ConfigSet"
	EventDisabled                           = "Disabled"
	EventEnabled                            = "Enabled"
	EventInitialized                        = "Initialized"
	EventRandomnessCallbackFailed           = "RandomnessCallbackFailed"
	EventRandomnessCallbackSuccess          = "RandomnessCallbackSuccess"
	EventRandomnessRequested                = "RandomnessRequested"
	EventRoleAdminChanged                   = "RoleAdminChanged"
	EventRoleGranted                        = "RoleGranted"
	EventRoleRevoked                        = "RoleRevoked"
	EventSignatureSenderUpdated             = "SignatureSenderUpdated"
	EventSubscriptionCanceled               = "SubscriptionCanceled"
	EventSubscriptionConsumerAdded          = "SubscriptionConsumerAdded"
	EventSubscriptionConsumerRemoved        = "SubscriptionConsumerRemoved"
	EventSubscriptionCreated                = "SubscriptionCreated"
	EventSubscriptionFundedWithNative       = "SubscriptionFundedWithNative"
	EventSubscriptionOwnerTransferRequested = "SubscriptionOwnerTransferRequested"
	EventSubscriptionOwnerTransferred       = "SubscriptionOwnerTransferred"
	EventUpgraded                           = "Upgraded"
)

var (
	ErrUnknownEvent = errors.New("unknown event")
	errNoTopics     = errors.New("log has no topics")
)

// Event is a decoded RandomnessSender log. Payload holds the generated
// binding struct for the event, e.g. *bindings.RandomnessSenderRandomnessRequested.
type Event struct {
	Name    string
	Log     types.Log
	Payload interface{}
}

type parseFunc func(*bindings.RandomnessSenderFilterer, types.Log) (interface{}, error)

func parser[T any](parse func(*bindings.RandomnessSenderFilterer, types.Log) (*T, error)) parseFunc {
	return func(f *bindings.RandomnessSenderFilterer, log types.Log) (interface{}, error) {
		return parse(f, log)
	}
}

var eventParsers = map[string]parseFunc{
	EventConfigSet:                          parser((*bindings.RandomnessSenderFilterer).ParseConfigSet),
	EventDisabled:                           parser((*bindings.RandomnessSenderFilterer).ParseDisabled),
	EventEnabled:                            parser((*bindings.RandomnessSenderFilterer).ParseEnabled),
	EventInitialized:                        parser((*bindings.RandomnessSenderFilterer).ParseInitialized),
	EventRandomnessCallbackFailed:           parser((*bindings.RandomnessSenderFilterer).ParseRandomnessCallbackFailed),
	EventRandomnessCallbackSuccess:          parser((*bindings.RandomnessSenderFilterer).ParseRandomnessCallbackSuccess),
	EventRandomnessRequested:                parser((*bindings.RandomnessSenderFilterer).ParseRandomnessRequested),
	EventRoleAdminChanged:                   parser((*bindings.RandomnessSenderFilterer).ParseRoleAdminChanged),
	EventRoleGranted:                        parser((*bindings.RandomnessSenderFilterer).ParseRoleGranted),
	EventRoleRevoked:                        parser((*bindings.RandomnessSenderFilterer).ParseRoleRevoked),
	EventSignatureSenderUpdated:             parser((*bindings.RandomnessSenderFilterer).ParseSignatureSenderUpdated),
	EventSubscriptionCanceled:               parser((*bindings.RandomnessSenderFilterer).ParseSubscriptionCanceled),
	EventSubscriptionConsumerAdded:          parser((*bindings.RandomnessSenderFilterer).ParseSubscriptionConsumerAdded),
	EventSubscriptionConsumerRemoved:        parser((*bindings.RandomnessSenderFilterer).ParseSubscriptionConsumerRemoved),
	EventSubscriptionCreated:                parser((*bindings.RandomnessSenderFilterer).ParseSubscriptionCreated),
	EventSubscriptionFundedWithNative:       parser((*bindings.RandomnessSenderFilterer).ParseSubscriptionFundedWithNative),
	EventSubscriptionOwnerTransferRequested: parser((*bindings.RandomnessSenderFilterer).ParseSubscriptionOwnerTransferRequested),
	EventSubscriptionOwnerTransferred:       parser((*bindings.RandomnessSenderFilterer).ParseSubscriptionOwnerTransferred),
	EventUpgraded:                           parser((*bindings.RandomnessSenderFilterer).ParseUpgraded),
}

// EventDecoder turns raw logs into typed events.
type EventDecoder struct {
	filterer *bindings.RandomnessSenderFilterer
}

// NewEventDecoder returns a decoder for logs emitted by the contract at
// [address]. Parsing never touches the chain so no backend is required.
func NewEventDecoder(address common.Address) (*EventDecoder, error) {
	filterer, err := bindings.NewRandomnessSenderFilterer(address, nil)
	if err != nil {
		return nil, err
	}
	return &EventDecoder{filterer: filterer}, nil
}

// Decode dispatches [log] on its first topic.
func (d *EventDecoder) Decode(log types.Log) (*Event, error) {
	if len(log.Topics) == 0 {
		return nil, errNoTopics
	}
	ev, ok := EventByTopic(log.Topics[0])
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, log.Topics[0])
	}
	parse, ok := eventParsers[ev.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, ev.Name)
	}
	payload, err := parse(d.filterer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ev.Name, err)
	}
	return &Event{
		Name:    ev.Name,
		Log:     log,
		Payload: payload,
	}, nil
}

// DecodeLog decodes [log] without checking the emitting address.
func DecodeLog(log types.Log) (*Event, error) {
	d, err := NewEventDecoder(log.Address)
	if err != nil {
		return nil, err
	}
	return d.Decode(log)
}

// Topic returns topic0 of event [name]. It panics on unknown names so callers
// should pass the Event* constants.
func Topic(name string) common.Hash {
	ev, ok := mustABI().Events[name]
	if !ok {
		panic(fmt.Sprintf("unknown RandomnessSender event %q", name))
	}
	return ev.ID
}
