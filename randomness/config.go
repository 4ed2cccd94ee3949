// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const (
	DefaultCallbackGasLimit   uint32 = 100_000
	DefaultPriceBufferPercent uint64 = 10
	DefaultGasBufferPercent   uint64 = 20
	DefaultReceiptTimeout            = 2 * time.Minute
	DefaultFulfillmentTimeout        = 5 * time.Minute
	DefaultPollInterval              = 2 * time.Second
	DefaultPageSize           uint64 = 100

	DefaultMonitorWindow        uint64 = 1_000
	DefaultMonitorConfirmations uint64 = 0

	maxBufferPercent = 1_000
)

var (
	// ErrInvalidConfig is wrapped by every Config and MonitorConfig
	// verification failure.
	ErrInvalidConfig = errors.New("invalid config")

	errZeroAddress          = fmt.Errorf("%w: contract address must be set", ErrInvalidConfig)
	errZeroCallbackGasLimit = fmt.Errorf("%w: callback gas limit must be positive", ErrInvalidConfig)
	errBufferTooLarge       = fmt.Errorf("%w: buffer percentage must be at most %d", ErrInvalidConfig, maxBufferPercent)
	errNonPositiveDuration  = fmt.Errorf("%w: timeouts and poll interval must be positive", ErrInvalidConfig)
	errZeroPageSize         = fmt.Errorf("%w: page size must be positive", ErrInvalidConfig)
	errZeroWindow           = fmt.Errorf("%w: monitor window must be positive", ErrInvalidConfig)
)

// Config parameterizes a Client.
type Config struct {
	// Address of the RandomnessSender proxy.
	Address common.Address `json:"address"`
	// CallbackGasLimit is the gas forwarded to the consumer callback.
	CallbackGasLimit uint32 `json:"callbackGasLimit"`
	// PriceBufferPercent is added on top of the quoted request price to
	// absorb gas price movement between quoting and inclusion.
	PriceBufferPercent uint64 `json:"priceBufferPercent"`
	// GasLimit of sent transactions. Zero estimates and pads by
	// GasBufferPercent.
	GasLimit         uint64 `json:"gasLimit"`
	GasBufferPercent uint64 `json:"gasBufferPercent"`
	// PageSize bounds getActiveSubscriptionIds calls.
	PageSize uint64 `json:"pageSize"`

	ReceiptTimeout     time.Duration `json:"receiptTimeout"`
	FulfillmentTimeout time.Duration `json:"fulfillmentTimeout"`
	PollInterval       time.Duration `json:"pollInterval"`
}

func DefaultConfig(address common.Address) Config {
	return Config{
		Address:            address,
		CallbackGasLimit:   DefaultCallbackGasLimit,
		PriceBufferPercent: DefaultPriceBufferPercent,
		GasBufferPercent:   DefaultGasBufferPercent,
		PageSize:           DefaultPageSize,
		ReceiptTimeout:     DefaultReceiptTimeout,
		FulfillmentTimeout: DefaultFulfillmentTimeout,
		PollInterval:       DefaultPollInterval,
	}
}

func (c Config) Verify() error {
	switch {
	case c.Address == (common.Address{}):
		return errZeroAddress
	case c.CallbackGasLimit == 0:
		return errZeroCallbackGasLimit
	case c.PriceBufferPercent > maxBufferPercent, c.GasBufferPercent > maxBufferPercent:
		return errBufferTooLarge
	case c.ReceiptTimeout <= 0, c.FulfillmentTimeout <= 0, c.PollInterval <= 0:
		return errNonPositiveDuration
	case c.PageSize == 0:
		return errZeroPageSize
	default:
		return nil
	}
}

// MonitorConfig parameterizes a Monitor.
type MonitorConfig struct {
	Address common.Address `json:"address"`
	// StartBlock is the first block scanned. Zero starts at the current head.
	StartBlock uint64 `json:"startBlock"`
	// Window bounds the block range of a single eth_getLogs call.
	Window uint64 `json:"window"`
	// Confirmations keeps the monitor this many blocks behind the head.
	Confirmations uint64        `json:"confirmations"`
	PollInterval  time.Duration `json:"pollInterval"`
}

func DefaultMonitorConfig(address common.Address) MonitorConfig {
	return MonitorConfig{
		Address:       address,
		Window:        DefaultMonitorWindow,
		Confirmations: DefaultMonitorConfirmations,
		PollInterval:  DefaultPollInterval,
	}
}

func (c MonitorConfig) Verify() error {
	switch {
	case c.Address == (common.Address{}):
		return errZeroAddress
	case c.Window == 0:
		return errZeroWindow
	case c.PollInterval <= 0:
		return errNonPositiveDuration
	default:
		return nil
	}
}
