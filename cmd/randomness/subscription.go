// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randa-mu/dcipher-sub000/utils/units"
)

func subscriptionCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "subscription",
		Short: "Manages subscriptions",
	}
	c.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "Creates a subscription owned by the sender",
			Args:  cobra.NoArgs,
			RunE:  run(true, createSubscriptionFunc),
		},
		&cobra.Command{
			Use:   "fund SUBSCRIPTION_ID AMOUNT",
			Short: "Adds AMOUNT ether to a subscription",
			Args:  cobra.ExactArgs(2),
			RunE:  run(true, fundSubscriptionFunc),
		},
		&cobra.Command{
			Use:   "add-consumer SUBSCRIPTION_ID CONSUMER",
			Short: "Allows a consumer contract to charge a subscription",
			Args:  cobra.ExactArgs(2),
			RunE: run(true, withSubAndAddress(func(c *cobra.Command, env *environment, subID *big.Int, consumer common.Address) error {
				return env.client.AddConsumer(c.Context(), subID, consumer)
			})),
		},
		&cobra.Command{
			Use:   "remove-consumer SUBSCRIPTION_ID CONSUMER",
			Short: "Removes a consumer from a subscription",
			Args:  cobra.ExactArgs(2),
			RunE: run(true, withSubAndAddress(func(c *cobra.Command, env *environment, subID *big.Int, consumer common.Address) error {
				return env.client.RemoveConsumer(c.Context(), subID, consumer)
			})),
		},
		&cobra.Command{
			Use:   "cancel SUBSCRIPTION_ID RECIPIENT",
			Short: "Cancels a subscription and refunds its balance",
			Args:  cobra.ExactArgs(2),
			RunE:  run(true, cancelSubscriptionFunc),
		},
		&cobra.Command{
			Use:   "transfer SUBSCRIPTION_ID NEW_OWNER",
			Short: "Proposes a new subscription owner",
			Args:  cobra.ExactArgs(2),
			RunE: run(true, withSubAndAddress(func(c *cobra.Command, env *environment, subID *big.Int, newOwner common.Address) error {
				return env.client.RequestSubscriptionOwnerTransfer(c.Context(), subID, newOwner)
			})),
		},
		&cobra.Command{
			Use:   "accept SUBSCRIPTION_ID",
			Short: "Accepts a proposed ownership transfer",
			Args:  cobra.ExactArgs(1),
			RunE:  run(true, acceptSubscriptionFunc),
		},
		&cobra.Command{
			Use:   "get SUBSCRIPTION_ID",
			Short: "Prints a subscription",
			Args:  cobra.ExactArgs(1),
			RunE:  run(false, getSubscriptionFunc),
		},
		&cobra.Command{
			Use:   "list",
			Short: "Lists the ids of funded subscriptions",
			Args:  cobra.NoArgs,
			RunE:  run(false, listSubscriptionsFunc),
		},
	)
	return c
}

func createSubscriptionFunc(c *cobra.Command, _ []string, env *environment) error {
	subID, err := env.client.CreateSubscription(c.Context())
	if err != nil {
		return err
	}
	return printYAML(c, map[string]string{"id": subID.String()})
}

func fundSubscriptionFunc(c *cobra.Command, args []string, env *environment) error {
	subID, err := parseBigInt(args[0])
	if err != nil {
		return err
	}
	amount, err := parseEther(args[1])
	if err != nil {
		return err
	}
	balance, err := env.client.FundSubscription(c.Context(), subID, amount)
	if err != nil {
		return err
	}
	return printYAML(c, map[string]string{
		"id":            subID.String(),
		"nativeBalance": units.FormatEther(balance),
	})
}

func cancelSubscriptionFunc(c *cobra.Command, args []string, env *environment) error {
	subID, err := parseBigInt(args[0])
	if err != nil {
		return err
	}
	to, err := parseAddress(args[1])
	if err != nil {
		return err
	}
	refund, err := env.client.CancelSubscription(c.Context(), subID, to)
	if err != nil {
		return err
	}
	return printYAML(c, map[string]string{
		"id":        subID.String(),
		"recipient": to.Hex(),
		"refund":    units.FormatEther(refund),
	})
}

func acceptSubscriptionFunc(c *cobra.Command, args []string, env *environment) error {
	subID, err := parseBigInt(args[0])
	if err != nil {
		return err
	}
	return env.client.AcceptSubscriptionOwnerTransfer(c.Context(), subID)
}

func getSubscriptionFunc(c *cobra.Command, args []string, env *environment) error {
	subID, err := parseBigInt(args[0])
	if err != nil {
		return err
	}
	ctx := c.Context()
	sub, err := env.client.GetSubscription(ctx, subID)
	if err != nil {
		return err
	}
	pending, err := env.client.PendingRequestExists(ctx, subID)
	if err != nil {
		return err
	}
	return printYAML(c, newSubscriptionView(sub, pending))
}

func listSubscriptionsFunc(c *cobra.Command, _ []string, env *environment) error {
	ids, err := env.client.ActiveSubscriptionIDs(c.Context())
	if err != nil {
		return err
	}
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}
	return printYAML(c, strs)
}

// withSubAndAddress parses the SUBSCRIPTION_ID ADDRESS arguments shared by
// several subcommands.
func withSubAndAddress(
	f func(c *cobra.Command, env *environment, subID *big.Int, addr common.Address) error,
) func(*cobra.Command, []string, *environment) error {
	return func(c *cobra.Command, args []string, env *environment) error {
		subID, err := parseBigInt(args[0])
		if err != nil {
			return err
		}
		addr, err := parseAddress(args[1])
		if err != nil {
			return err
		}
		if err := f(c, env, subID, addr); err != nil {
			return err
		}
		env.log.Info("updated subscription",
			zap.String("command", c.Name()),
			zap.Stringer("subscriptionID", subID),
			zap.Stringer("address", addr),
		)
		return nil
	}
}
