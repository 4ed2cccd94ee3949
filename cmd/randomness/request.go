// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randa-mu/dcipher-sub000/randomness"
	"github.com/randa-mu/dcipher-sub000/utils/units"
)

const (
	subscriptionKey = "subscription"
	waitKey         = "wait"
	gasPriceKey     = "gas-price"
)

func requestCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "request",
		Short: "Requests randomness, paying directly or through a subscription",
		Args:  cobra.NoArgs,
		RunE:  run(true, requestFunc),
	}
	flags := c.Flags()
	flags.String(subscriptionKey, "", "Subscription to charge. Pays the request price directly when empty")
	flags.Bool(waitKey, false, "Wait until the request is fulfilled")
	return c
}

func requestFunc(c *cobra.Command, _ []string, env *environment) error {
	flags := c.Flags()
	subStr, err := flags.GetString(subscriptionKey)
	if err != nil {
		return err
	}
	wait, err := flags.GetBool(waitKey)
	if err != nil {
		return err
	}

	ctx := c.Context()
	gasLimit := env.config.Client.CallbackGasLimit
	contractConfig, err := env.client.GetConfig(ctx)
	if err != nil {
		return err
	}
	if err := contractConfig.VerifyCallbackGasLimit(gasLimit); err != nil {
		return err
	}

	var req *randomness.Request
	if subStr == "" {
		req, err = env.client.RequestRandomness(ctx, gasLimit)
	} else {
		var subID *big.Int
		subID, err = parseBigInt(subStr)
		if err != nil {
			return err
		}
		req, err = env.client.RequestRandomnessWithSubscription(ctx, gasLimit, subID)
	}
	if err != nil {
		return err
	}
	env.log.Info("issued request",
		zap.Stringer("requestID", req.ID),
		zap.Stringer("txHash", req.TxHash),
	)

	if !wait {
		return printYAML(c, newRequestView(req))
	}
	fulfillment, err := env.client.WaitForFulfillment(ctx, req)
	if err != nil {
		return err
	}
	return printYAML(c, struct {
		Request     requestView     `json:"request"`
		Fulfillment fulfillmentView `json:"fulfillment"`
	}{
		Request:     newRequestView(req),
		Fulfillment: newFulfillmentView(fulfillment),
	})
}

func statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status REQUEST_ID",
		Short: "Prints a stored request and whether it awaits fulfillment",
		Args:  cobra.ExactArgs(1),
		RunE:  run(false, statusFunc),
	}
}

func statusFunc(c *cobra.Command, args []string, env *environment) error {
	id, err := parseBigInt(args[0])
	if err != nil {
		return err
	}
	ctx := c.Context()
	req, err := env.client.GetRequest(ctx, id)
	if err != nil {
		return err
	}
	inFlight, err := env.client.IsInFlight(ctx, id)
	if err != nil {
		return err
	}
	return printYAML(c, newStatusView(req, inFlight))
}

func priceCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "price",
		Short: "Quotes the direct funding price of a request",
		Args:  cobra.NoArgs,
		RunE:  run(false, priceFunc),
	}
	c.Flags().Uint64(gasPriceKey, 0, "Gas price in gwei to quote at. Quotes at the current maximum fee per gas when zero")
	return c
}

type priceView struct {
	CallbackGasLimit uint32 `json:"callbackGasLimit"`
	GasPrice         string `json:"gasPrice,omitempty"`
	Price            string `json:"price"`
	Paid             string `json:"paid,omitempty"`
}

func priceFunc(c *cobra.Command, _ []string, env *environment) error {
	gasPrice, err := c.Flags().GetUint64(gasPriceKey)
	if err != nil {
		return err
	}

	ctx := c.Context()
	view := priceView{
		CallbackGasLimit: env.config.Client.CallbackGasLimit,
	}
	if gasPrice != 0 {
		price, err := env.client.EstimatePrice(ctx, view.CallbackGasLimit, units.GWeiToWei(gasPrice))
		if err != nil {
			return err
		}
		view.GasPrice = fmt.Sprintf("%d gwei", gasPrice)
		view.Price = units.FormatEther(price)
		return printYAML(c, view)
	}

	price, err := env.client.Price(ctx, view.CallbackGasLimit)
	if err != nil {
		return err
	}
	buffered, err := env.client.BufferedPrice(ctx, view.CallbackGasLimit)
	if err != nil {
		return err
	}
	view.Price = units.FormatEther(price)
	view.Paid = units.FormatEther(buffered)
	return printYAML(c, view)
}

func requestsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "requests",
		Short: "Lists every request stored by the contract",
		Args:  cobra.NoArgs,
		RunE:  run(false, requestsFunc),
	}
}

func requestsFunc(c *cobra.Command, _ []string, env *environment) error {
	ctx := c.Context()
	reqs, err := env.client.AllRequests(ctx)
	if err != nil {
		return err
	}
	views := make([]statusView, len(reqs))
	for i, req := range reqs {
		inFlight, err := env.client.IsInFlight(ctx, req.RequestId)
		if err != nil {
			return err
		}
		views[i] = newStatusView(req, inFlight)
	}
	return printYAML(c, views)
}

func messageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "message NONCE CALLBACK",
		Short: "Prints the message the signers sign for a request",
		Args:  cobra.ExactArgs(2),
		RunE:  run(false, messageFunc),
	}
}

func messageFunc(c *cobra.Command, args []string, env *environment) error {
	nonce, err := parseBigInt(args[0])
	if err != nil {
		return err
	}
	callback, err := parseAddress(args[1])
	if err != nil {
		return err
	}
	message, err := env.client.MessageFor(c.Context(), nonce, callback)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), hexutil.Encode(message))
	return err
}
