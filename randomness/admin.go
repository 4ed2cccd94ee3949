// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const maxNativePremiumPercentage = 100

var (
	errZeroMaxGasLimit        = errors.New("max gas limit must be positive")
	errZeroCallExactCheck     = errors.New("gas for call exact check must be positive")
	errPremiumTooLarge        = fmt.Errorf("native premium percentage must be at most %d", maxNativePremiumPercentage)
	errZeroRecipient          = errors.New("recipient must be set")
	errZeroSignatureSender    = errors.New("signature sender must be set")
	errCallbackAboveMaxGasLim = errors.New("callback gas limit exceeds the contract's max gas limit")
)

// ContractConfig mirrors the fee parameters stored by the contract.
type ContractConfig struct {
	MaxGasLimit                 uint32 `json:"maxGasLimit"`
	GasAfterPaymentCalculation  uint32 `json:"gasAfterPaymentCalculation"`
	FulfillmentFlatFeeNativePPM uint32 `json:"fulfillmentFlatFeeNativePPM"`
	WeiPerUnitGas               uint32 `json:"weiPerUnitGas"`
	BlsPairingCheckOverhead     uint32 `json:"blsPairingCheckOverhead"`
	NativePremiumPercentage     uint8  `json:"nativePremiumPercentage"`
	GasForCallExactCheck        uint16 `json:"gasForCallExactCheck"`
}

func (c ContractConfig) Verify() error {
	switch {
	case c.MaxGasLimit == 0:
		return errZeroMaxGasLimit
	case c.GasForCallExactCheck == 0:
		return errZeroCallExactCheck
	case c.NativePremiumPercentage > maxNativePremiumPercentage:
		return errPremiumTooLarge
	default:
		return nil
	}
}

// VerifyCallbackGasLimit checks [limit] against the contract's cap.
func (c ContractConfig) VerifyCallbackGasLimit(limit uint32) error {
	if limit > c.MaxGasLimit {
		return fmt.Errorf("%w: %d > %d", errCallbackAboveMaxGasLim, limit, c.MaxGasLimit)
	}
	return nil
}

// Info summarizes the contract state.
type Info struct {
	Address                      common.Address `json:"address"`
	Version                      string         `json:"version"`
	SchemeID                     string         `json:"schemeId"`
	SignatureSender              common.Address `json:"signatureSender"`
	Nonce                        *big.Int       `json:"nonce"`
	MaxConsumers                 uint16         `json:"maxConsumers"`
	CurrentSubNonce              uint64         `json:"currentSubNonce"`
	TotalNativeBalance           *big.Int       `json:"totalNativeBalance"`
	WithdrawableDirectFundingFee *big.Int       `json:"withdrawableDirectFundingFee"`
	WithdrawableSubscriptionFee  *big.Int       `json:"withdrawableSubscriptionFee"`
	Config                       ContractConfig `json:"config"`
}

func (c *Client) GetConfig(ctx context.Context) (ContractConfig, error) {
	cfg, err := c.contract.GetConfig(c.callOpts(ctx))
	if err != nil {
		return ContractConfig{}, c.call("getConfig", err)
	}
	return ContractConfig{
		MaxGasLimit:                 cfg.MaxGasLimit,
		GasAfterPaymentCalculation:  cfg.GasAfterPaymentCalculation,
		FulfillmentFlatFeeNativePPM: cfg.FulfillmentFlatFeeNativePPM,
		WeiPerUnitGas:               cfg.WeiPerUnitGas,
		BlsPairingCheckOverhead:     cfg.BlsPairingCheckOverhead,
		NativePremiumPercentage:     cfg.NativePremiumPercentage,
		GasForCallExactCheck:        cfg.GasForCallExactCheck,
	}, nil
}

// SetConfig replaces the fee parameters. Requires ADMIN_ROLE.
func (c *Client) SetConfig(ctx context.Context, cfg ContractConfig) error {
	if err := cfg.Verify(); err != nil {
		return fmt.Errorf("invalid contract config: %w", err)
	}
	_, err := c.transact(ctx, nil, "setConfig",
		cfg.MaxGasLimit,
		cfg.GasAfterPaymentCalculation,
		cfg.FulfillmentFlatFeeNativePPM,
		cfg.WeiPerUnitGas,
		cfg.BlsPairingCheckOverhead,
		cfg.NativePremiumPercentage,
		cfg.GasForCallExactCheck,
	)
	if err != nil {
		return err
	}
	c.log.Info("updated contract config", zap.Reflect("config", cfg))
	return nil
}

func (c *Client) Disable(ctx context.Context) error {
	_, err := c.transact(ctx, nil, "disable")
	return err
}

func (c *Client) Enable(ctx context.Context) error {
	_, err := c.transact(ctx, nil, "enable")
	return err
}

func (c *Client) SetSignatureSender(ctx context.Context, sender common.Address) error {
	if sender == (common.Address{}) {
		return errZeroSignatureSender
	}
	_, err := c.transact(ctx, nil, "setSignatureSender", sender)
	return err
}

// OwnerCancelSubscription cancels [subID] as admin and refunds its owner.
func (c *Client) OwnerCancelSubscription(ctx context.Context, subID *big.Int) error {
	_, err := c.transact(ctx, nil, "ownerCancelSubscription", subID)
	return err
}

func (c *Client) WithdrawSubscriptionFees(ctx context.Context, recipient common.Address) error {
	if recipient == (common.Address{}) {
		return errZeroRecipient
	}
	_, err := c.transact(ctx, nil, "withdrawSubscriptionFeesNative", recipient)
	return err
}

func (c *Client) WithdrawDirectFundingFees(ctx context.Context, recipient common.Address) error {
	if recipient == (common.Address{}) {
		return errZeroRecipient
	}
	_, err := c.transact(ctx, nil, "withdrawDirectFundingFeesNative", recipient)
	return err
}

// AdminRole returns the ADMIN_ROLE identifier.
func (c *Client) AdminRole(ctx context.Context) (common.Hash, error) {
	role, err := c.contract.ADMINROLE(c.callOpts(ctx))
	return role, c.call("ADMIN_ROLE", err)
}

func (c *Client) HasRole(ctx context.Context, role common.Hash, account common.Address) (bool, error) {
	ok, err := c.contract.HasRole(c.callOpts(ctx), role, account)
	return ok, c.call("hasRole", err)
}

func (c *Client) RoleMembers(ctx context.Context, role common.Hash) ([]common.Address, error) {
	members, err := c.contract.GetRoleMembers(c.callOpts(ctx), role)
	return members, c.call("getRoleMembers", err)
}

func (c *Client) GrantRole(ctx context.Context, role common.Hash, account common.Address) error {
	_, err := c.transact(ctx, nil, "grantRole", role, account)
	return err
}

func (c *Client) RevokeRole(ctx context.Context, role common.Hash, account common.Address) error {
	_, err := c.transact(ctx, nil, "revokeRole", role, account)
	return err
}

// Info reads the contract's identity, balances and config.
func (c *Client) Info(ctx context.Context) (*Info, error) {
	var (
		opts = c.callOpts(ctx)
		info = &Info{Address: c.config.Address}
		err  error
	)
	if info.Version, err = c.contract.Version(opts); err != nil {
		return nil, c.call("version", err)
	}
	if info.SchemeID, err = c.contract.SCHEMEID(opts); err != nil {
		return nil, c.call("SCHEME_ID", err)
	}
	if info.SignatureSender, err = c.contract.SignatureSender(opts); err != nil {
		return nil, c.call("signatureSender", err)
	}
	if info.Nonce, err = c.contract.Nonce(opts); err != nil {
		return nil, c.call("nonce", err)
	}
	if info.MaxConsumers, err = c.contract.MAXCONSUMERS(opts); err != nil {
		return nil, c.call("MAX_CONSUMERS", err)
	}
	if info.CurrentSubNonce, err = c.contract.SCurrentSubNonce(opts); err != nil {
		return nil, c.call("s_currentSubNonce", err)
	}
	if info.TotalNativeBalance, err = c.contract.STotalNativeBalance(opts); err != nil {
		return nil, c.call("s_totalNativeBalance", err)
	}
	if info.WithdrawableDirectFundingFee, err = c.contract.SWithdrawableDirectFundingFeeNative(opts); err != nil {
		return nil, c.call("s_withdrawableDirectFundingFeeNative", err)
	}
	if info.WithdrawableSubscriptionFee, err = c.contract.SWithdrawableSubscriptionFeeNative(opts); err != nil {
		return nil, c.call("s_withdrawableSubscriptionFeeNative", err)
	}
	if info.Config, err = c.GetConfig(ctx); err != nil {
		return nil, err
	}
	return info, nil
}
