// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/randa-mu/dcipher-sub000/randomness"
)

const (
	maxGasLimitKey                 = "max-gas-limit"
	gasAfterPaymentCalculationKey  = "gas-after-payment-calculation"
	fulfillmentFlatFeeNativePPMKey = "fulfillment-flat-fee-native-ppm"
	weiPerUnitGasKey               = "wei-per-unit-gas"
	blsPairingCheckOverheadKey     = "bls-pairing-check-overhead"
	nativePremiumPercentageKey     = "native-premium-percentage"
	gasForCallExactCheckKey        = "gas-for-call-exact-check"
)

func adminCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "admin",
		Short: "Administers the contract. Requires the admin role",
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Reads or updates the fee configuration",
	}
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Prints the fee configuration",
			Args:  cobra.NoArgs,
			RunE:  run(false, getConfigFunc),
		},
		setConfigCommand(),
	)

	c.AddCommand(
		configCmd,
		&cobra.Command{
			Use:   "disable",
			Short: "Stops accepting requests",
			Args:  cobra.NoArgs,
			RunE: run(true, func(c *cobra.Command, _ []string, env *environment) error {
				return env.client.Disable(c.Context())
			}),
		},
		&cobra.Command{
			Use:   "enable",
			Short: "Resumes accepting requests",
			Args:  cobra.NoArgs,
			RunE: run(true, func(c *cobra.Command, _ []string, env *environment) error {
				return env.client.Enable(c.Context())
			}),
		},
		&cobra.Command{
			Use:   "set-signature-sender ADDRESS",
			Short: "Points the contract at a new signature sender",
			Args:  cobra.ExactArgs(1),
			RunE: run(true, withAddress(func(c *cobra.Command, env *environment, addr common.Address) error {
				return env.client.SetSignatureSender(c.Context(), addr)
			})),
		},
		&cobra.Command{
			Use:   "owner-cancel SUBSCRIPTION_ID",
			Short: "Cancels a subscription, refunding its owner",
			Args:  cobra.ExactArgs(1),
			RunE: run(true, func(c *cobra.Command, args []string, env *environment) error {
				subID, err := parseBigInt(args[0])
				if err != nil {
					return err
				}
				return env.client.OwnerCancelSubscription(c.Context(), subID)
			}),
		},
		withdrawCommand(),
		&cobra.Command{
			Use:   "roles",
			Short: "Lists the accounts holding the admin role",
			Args:  cobra.NoArgs,
			RunE:  run(false, rolesFunc),
		},
		&cobra.Command{
			Use:   "grant-role ACCOUNT",
			Short: "Grants the admin role",
			Args:  cobra.ExactArgs(1),
			RunE: run(true, withAdminRole(true, func(c *cobra.Command, env *environment, role common.Hash, account common.Address) error {
				return env.client.GrantRole(c.Context(), role, account)
			})),
		},
		&cobra.Command{
			Use:   "revoke-role ACCOUNT",
			Short: "Revokes the admin role",
			Args:  cobra.ExactArgs(1),
			RunE: run(true, withAdminRole(false, func(c *cobra.Command, env *environment, role common.Hash, account common.Address) error {
				return env.client.RevokeRole(c.Context(), role, account)
			})),
		},
	)
	return c
}

func getConfigFunc(c *cobra.Command, _ []string, env *environment) error {
	contractConfig, err := env.client.GetConfig(c.Context())
	if err != nil {
		return err
	}
	return printYAML(c, contractConfig)
}

func setConfigCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "set",
		Short: "Updates the fee configuration. Unset flags keep their current value",
		Args:  cobra.NoArgs,
		RunE:  run(true, setConfigFunc),
	}
	flags := c.Flags()
	flags.Uint32(maxGasLimitKey, 0, "Maximum callback gas limit")
	flags.Uint32(gasAfterPaymentCalculationKey, 0, "Gas used after the payment is calculated")
	flags.Uint32(fulfillmentFlatFeeNativePPMKey, 0, "Flat fee per fulfillment in millionths of ether")
	flags.Uint32(weiPerUnitGasKey, 0, "Wei charged per unit of gas")
	flags.Uint32(blsPairingCheckOverheadKey, 0, "Gas overhead of the BLS pairing check")
	flags.Uint8(nativePremiumPercentageKey, 0, "Premium added to the native price")
	flags.Uint16(gasForCallExactCheckKey, 0, "Gas reserved for the exact gas check")
	return c
}

func setConfigFunc(c *cobra.Command, _ []string, env *environment) error {
	ctx := c.Context()
	contractConfig, err := env.client.GetConfig(ctx)
	if err != nil {
		return err
	}
	if err := applyConfigFlags(c.Flags(), &contractConfig); err != nil {
		return err
	}
	if err := env.client.SetConfig(ctx, contractConfig); err != nil {
		return err
	}
	return printYAML(c, contractConfig)
}

// applyConfigFlags overwrites the fields of [cfg] whose flag was set.
func applyConfigFlags(flags *pflag.FlagSet, cfg *randomness.ContractConfig) error {
	uint32Fields := map[string]*uint32{
		maxGasLimitKey:                 &cfg.MaxGasLimit,
		gasAfterPaymentCalculationKey:  &cfg.GasAfterPaymentCalculation,
		fulfillmentFlatFeeNativePPMKey: &cfg.FulfillmentFlatFeeNativePPM,
		weiPerUnitGasKey:               &cfg.WeiPerUnitGas,
		blsPairingCheckOverheadKey:     &cfg.BlsPairingCheckOverhead,
	}
	for key, field := range uint32Fields {
		if !flags.Changed(key) {
			continue
		}
		v, err := flags.GetUint32(key)
		if err != nil {
			return err
		}
		*field = v
	}
	if flags.Changed(nativePremiumPercentageKey) {
		v, err := flags.GetUint8(nativePremiumPercentageKey)
		if err != nil {
			return err
		}
		cfg.NativePremiumPercentage = v
	}
	if flags.Changed(gasForCallExactCheckKey) {
		v, err := flags.GetUint16(gasForCallExactCheckKey)
		if err != nil {
			return err
		}
		cfg.GasForCallExactCheck = v
	}
	return nil
}

func withdrawCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraws accumulated fees",
	}
	c.AddCommand(
		&cobra.Command{
			Use:   "subscription RECIPIENT",
			Short: "Withdraws fees charged to subscriptions",
			Args:  cobra.ExactArgs(1),
			RunE: run(true, withAddress(func(c *cobra.Command, env *environment, recipient common.Address) error {
				return env.client.WithdrawSubscriptionFees(c.Context(), recipient)
			})),
		},
		&cobra.Command{
			Use:   "direct RECIPIENT",
			Short: "Withdraws fees paid by directly funded requests",
			Args:  cobra.ExactArgs(1),
			RunE: run(true, withAddress(func(c *cobra.Command, env *environment, recipient common.Address) error {
				return env.client.WithdrawDirectFundingFees(c.Context(), recipient)
			})),
		},
	)
	return c
}

func rolesFunc(c *cobra.Command, _ []string, env *environment) error {
	ctx := c.Context()
	role, err := env.client.AdminRole(ctx)
	if err != nil {
		return err
	}
	members, err := env.client.RoleMembers(ctx, role)
	if err != nil {
		return err
	}
	strs := make([]string, len(members))
	for i, member := range members {
		strs[i] = member.Hex()
	}
	return printYAML(c, map[string]interface{}{
		"role":    role.Hex(),
		"members": strs,
	})
}

func withAddress(
	f func(c *cobra.Command, env *environment, addr common.Address) error,
) func(*cobra.Command, []string, *environment) error {
	return func(c *cobra.Command, args []string, env *environment) error {
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		return f(c, env, addr)
	}
}

// withAdminRole resolves the admin role and skips the transaction when the
// account already holds the role, or already lacks it when revoking.
func withAdminRole(
	grant bool,
	f func(c *cobra.Command, env *environment, role common.Hash, account common.Address) error,
) func(*cobra.Command, []string, *environment) error {
	return withAddress(func(c *cobra.Command, env *environment, account common.Address) error {
		ctx := c.Context()
		role, err := env.client.AdminRole(ctx)
		if err != nil {
			return err
		}
		hasRole, err := env.client.HasRole(ctx, role, account)
		if err != nil {
			return err
		}
		if hasRole == grant {
			env.log.Info("role unchanged",
				zap.Stringer("account", account),
				zap.Bool("hasRole", hasRole),
			)
			return nil
		}
		return f(c, env, role, account)
	})
}
