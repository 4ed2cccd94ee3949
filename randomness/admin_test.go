// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings/bindingstest"
)

var testContractConfig = ContractConfig{
	MaxGasLimit:                 2_500_000,
	GasAfterPaymentCalculation:  33_285,
	FulfillmentFlatFeeNativePPM: 1_000_000,
	WeiPerUnitGas:               3_000_000,
	BlsPairingCheckOverhead:     800_000,
	NativePremiumPercentage:     10,
	GasForCallExactCheck:        5_000,
}

func TestContractConfigVerify(t *testing.T) {
	tests := map[string]struct {
		modify      func(*ContractConfig)
		expectedErr error
	}{
		"valid": {
			modify: func(*ContractConfig) {},
		},
		"zero max gas limit": {
			modify:      func(c *ContractConfig) { c.MaxGasLimit = 0 },
			expectedErr: errZeroMaxGasLimit,
		},
		"zero call exact check": {
			modify:      func(c *ContractConfig) { c.GasForCallExactCheck = 0 },
			expectedErr: errZeroCallExactCheck,
		},
		"premium too large": {
			modify:      func(c *ContractConfig) { c.NativePremiumPercentage = 101 },
			expectedErr: errPremiumTooLarge,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			config := testContractConfig
			test.modify(&config)
			require.ErrorIs(t, config.Verify(), test.expectedErr)
		})
	}
}

func TestVerifyCallbackGasLimit(t *testing.T) {
	require := require.New(t)
	require.NoError(testContractConfig.VerifyCallbackGasLimit(2_500_000))
	require.ErrorIs(testContractConfig.VerifyCallbackGasLimit(2_500_001), errCallbackAboveMaxGasLim)
}

func TestGetConfig(t *testing.T) {
	require := require.New(t)
	client, backend, _ := newTestClient(t, testConfig())

	c := testContractConfig
	backend.Returns(t, "getConfig",
		c.MaxGasLimit,
		c.GasAfterPaymentCalculation,
		c.FulfillmentFlatFeeNativePPM,
		c.WeiPerUnitGas,
		c.BlsPairingCheckOverhead,
		c.NativePremiumPercentage,
		c.GasForCallExactCheck,
	)

	config, err := client.GetConfig(t.Context())
	require.NoError(err)
	require.Equal(testContractConfig, config)
}

func TestSetConfig(t *testing.T) {
	require := require.New(t)
	client, backend, _ := newTestClient(t, testConfig())

	require.NoError(client.SetConfig(t.Context(), testContractConfig))
	sent := backend.Sent()
	require.Len(sent, 1)
	c := testContractConfig
	require.Equal(
		[]interface{}{
			c.MaxGasLimit,
			c.GasAfterPaymentCalculation,
			c.FulfillmentFlatFeeNativePPM,
			c.WeiPerUnitGas,
			c.BlsPairingCheckOverhead,
			c.NativePremiumPercentage,
			c.GasForCallExactCheck,
		},
		bindingstest.UnpackInput(t, "setConfig", sent[0].Data()),
	)

	invalid := testContractConfig
	invalid.MaxGasLimit = 0
	require.ErrorIs(client.SetConfig(t.Context(), invalid), errZeroMaxGasLimit)
	require.Len(backend.Sent(), 1)
}

func TestAdminTransactions(t *testing.T) {
	recipient := common.HexToAddress("0x0000000000000000000000000000000000000fee")
	role := crypto.Keccak256Hash([]byte("ADMIN_ROLE"))

	tests := map[string]struct {
		method       string
		call         func(t *testing.T, client *Client) error
		expectedArgs []interface{}
	}{
		"disable": {
			method: "disable",
			call: func(t *testing.T, client *Client) error {
				return client.Disable(t.Context())
			},
			expectedArgs: []interface{}{},
		},
		"enable": {
			method: "enable",
			call: func(t *testing.T, client *Client) error {
				return client.Enable(t.Context())
			},
			expectedArgs: []interface{}{},
		},
		"set signature sender": {
			method: "setSignatureSender",
			call: func(t *testing.T, client *Client) error {
				return client.SetSignatureSender(t.Context(), recipient)
			},
			expectedArgs: []interface{}{recipient},
		},
		"owner cancel subscription": {
			method: "ownerCancelSubscription",
			call: func(t *testing.T, client *Client) error {
				return client.OwnerCancelSubscription(t.Context(), big.NewInt(3))
			},
			expectedArgs: []interface{}{big.NewInt(3)},
		},
		"withdraw subscription fees": {
			method: "withdrawSubscriptionFeesNative",
			call: func(t *testing.T, client *Client) error {
				return client.WithdrawSubscriptionFees(t.Context(), recipient)
			},
			expectedArgs: []interface{}{recipient},
		},
		"withdraw direct funding fees": {
			method: "withdrawDirectFundingFeesNative",
			call: func(t *testing.T, client *Client) error {
				return client.WithdrawDirectFundingFees(t.Context(), recipient)
			},
			expectedArgs: []interface{}{recipient},
		},
		"grant role": {
			method: "grantRole",
			call: func(t *testing.T, client *Client) error {
				return client.GrantRole(t.Context(), role, recipient)
			},
			expectedArgs: []interface{}{[32]byte(role), recipient},
		},
		"revoke role": {
			method: "revokeRole",
			call: func(t *testing.T, client *Client) error {
				return client.RevokeRole(t.Context(), role, recipient)
			},
			expectedArgs: []interface{}{[32]byte(role), recipient},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			client, backend, _ := newTestClient(t, testConfig())

			require.NoError(test.call(t, client))
			sent := backend.Sent()
			require.Len(sent, 1)
			require.Equal(test.expectedArgs, bindingstest.UnpackInput(t, test.method, sent[0].Data()))
		})
	}
}

func TestAdminRejectsZeroAddress(t *testing.T) {
	require := require.New(t)
	client, backend, _ := newTestClient(t, testConfig())

	require.ErrorIs(client.SetSignatureSender(t.Context(), common.Address{}), errZeroSignatureSender)
	require.ErrorIs(client.WithdrawSubscriptionFees(t.Context(), common.Address{}), errZeroRecipient)
	require.ErrorIs(client.WithdrawDirectFundingFees(t.Context(), common.Address{}), errZeroRecipient)
	require.Empty(backend.Sent())
}

func TestRoles(t *testing.T) {
	require := require.New(t)
	client, backend, signer := newTestClient(t, testConfig())

	role := crypto.Keccak256Hash([]byte("ADMIN_ROLE"))
	backend.Returns(t, "ADMIN_ROLE", [32]byte(role))
	backend.Returns(t, "hasRole", true)
	backend.Returns(t, "getRoleMembers", []common.Address{signer.Address()})

	adminRole, err := client.AdminRole(t.Context())
	require.NoError(err)
	require.Equal(role, adminRole)

	ok, err := client.HasRole(t.Context(), adminRole, signer.Address())
	require.NoError(err)
	require.True(ok)

	members, err := client.RoleMembers(t.Context(), adminRole)
	require.NoError(err)
	require.Equal([]common.Address{signer.Address()}, members)
}

func TestInfo(t *testing.T) {
	require := require.New(t)
	client, backend, _ := newTestClient(t, testConfig())

	sender := common.HexToAddress("0x0000000000000000000000000000000000005e4d")
	backend.Returns(t, "version", "0.0.1")
	backend.Returns(t, "SCHEME_ID", "BN254")
	backend.Returns(t, "signatureSender", sender)
	backend.Returns(t, "nonce", big.NewInt(12))
	backend.Returns(t, "MAX_CONSUMERS", uint16(100))
	backend.Returns(t, "s_currentSubNonce", uint64(4))
	backend.Returns(t, "s_totalNativeBalance", big.NewInt(1_000))
	backend.Returns(t, "s_withdrawableDirectFundingFeeNative", big.NewInt(20))
	backend.Returns(t, "s_withdrawableSubscriptionFeeNative", big.NewInt(30))
	c := testContractConfig
	backend.Returns(t, "getConfig",
		c.MaxGasLimit,
		c.GasAfterPaymentCalculation,
		c.FulfillmentFlatFeeNativePPM,
		c.WeiPerUnitGas,
		c.BlsPairingCheckOverhead,
		c.NativePremiumPercentage,
		c.GasForCallExactCheck,
	)

	info, err := client.Info(t.Context())
	require.NoError(err)
	require.Equal(&Info{
		Address:                      bindingstest.ContractAddress,
		Version:                      "0.0.1",
		SchemeID:                     "BN254",
		SignatureSender:              sender,
		Nonce:                        big.NewInt(12),
		MaxConsumers:                 100,
		CurrentSubNonce:              4,
		TotalNativeBalance:           big.NewInt(1_000),
		WithdrawableDirectFundingFee: big.NewInt(20),
		WithdrawableSubscriptionFee:  big.NewInt(30),
		Config:                       testContractConfig,
	}, info)
}

func TestInfoFailsOnRevert(t *testing.T) {
	client, backend, _ := newTestClient(t, testConfig())
	backend.Returns(t, "version", "0.0.1")
	backend.Reverts(t, "SCHEME_ID", bindingstest.ErrorData(t, "FailedCall"))

	_, err := client.Info(t.Context())
	require.ErrorIs(t, err, ErrFailedCall)
}
