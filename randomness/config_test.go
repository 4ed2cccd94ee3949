// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings/bindingstest"
)

func TestConfigVerify(t *testing.T) {
	tests := map[string]struct {
		modify      func(*Config)
		expectedErr error
	}{
		"default": {
			modify: func(*Config) {},
		},
		"fixed gas limit": {
			modify: func(c *Config) { c.GasLimit = 500_000 },
		},
		"zero address": {
			modify:      func(c *Config) { c.Address = common.Address{} },
			expectedErr: errZeroAddress,
		},
		"zero callback gas limit": {
			modify:      func(c *Config) { c.CallbackGasLimit = 0 },
			expectedErr: errZeroCallbackGasLimit,
		},
		"price buffer too large": {
			modify:      func(c *Config) { c.PriceBufferPercent = maxBufferPercent + 1 },
			expectedErr: errBufferTooLarge,
		},
		"gas buffer too large": {
			modify:      func(c *Config) { c.GasBufferPercent = maxBufferPercent + 1 },
			expectedErr: errBufferTooLarge,
		},
		"zero receipt timeout": {
			modify:      func(c *Config) { c.ReceiptTimeout = 0 },
			expectedErr: errNonPositiveDuration,
		},
		"negative fulfillment timeout": {
			modify:      func(c *Config) { c.FulfillmentTimeout = -1 },
			expectedErr: errNonPositiveDuration,
		},
		"zero poll interval": {
			modify:      func(c *Config) { c.PollInterval = 0 },
			expectedErr: errNonPositiveDuration,
		},
		"zero page size": {
			modify:      func(c *Config) { c.PageSize = 0 },
			expectedErr: errZeroPageSize,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			config := DefaultConfig(bindingstest.ContractAddress)
			test.modify(&config)
			require.ErrorIs(t, config.Verify(), test.expectedErr)
		})
	}
}
