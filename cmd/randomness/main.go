// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/randa-mu/dcipher-sub000/config"
)

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newCommand().ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "randomness failed %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "randomness",
		Short:         "Requests and tracks randomness from a RandomnessSender deployment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.AddFlags(cmd.PersistentFlags())
	cmd.AddCommand(
		requestCommand(),
		statusCommand(),
		requestsCommand(),
		priceCommand(),
		messageCommand(),
		subscriptionCommand(),
		adminCommand(),
		monitorCommand(),
		infoCommand(),
		decodeCommand(),
		abiCommand(),
	)
	return cmd
}
