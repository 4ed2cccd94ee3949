// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/randa-mu/dcipher-sub000/randomness"
	"github.com/randa-mu/dcipher-sub000/utils/metric"
)

func monitorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Follows contract events and serves metrics until interrupted",
		Args:  cobra.NoArgs,
		RunE:  run(false, monitorFunc),
	}
}

func monitorFunc(c *cobra.Command, _ []string, env *environment) error {
	monitor, err := randomness.NewMonitor(
		env.config.Monitor,
		env.eth,
		env.log,
		env.registry,
		printEvent(c.OutOrStdout()),
	)
	if err != nil {
		return err
	}

	server := metric.NewServer(env.config.MetricsAddr, env.registry, env.log)
	serverErrs, err := server.Start()
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", server, err)
	}

	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		select {
		case err := <-serverErrs:
			return fmt.Errorf("%s failed: %w", server, err)
		case <-ctx.Done():
			return server.Stop()
		}
	})
	g.Go(func() error {
		return monitor.Run(ctx)
	})
	return g.Wait()
}

// printEvent writes one line per event to [w].
func printEvent(w io.Writer) randomness.Handler {
	return func(_ context.Context, ev *randomness.Event) error {
		_, err := fmt.Fprintf(w, "%d\t%s\t%s\n", ev.Log.BlockNumber, ev.Log.TxHash.Hex(), ev.Name)
		return err
	}
}
