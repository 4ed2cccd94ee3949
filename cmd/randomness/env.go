// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randa-mu/dcipher-sub000/config"
	"github.com/randa-mu/dcipher-sub000/randomness"
	"github.com/randa-mu/dcipher-sub000/utils/logging"
)

const loggerName = "randomness"

var errMissingKeyFile = fmt.Errorf("--%s is required to send transactions", config.KeyFileKey)

// environment holds everything a command needs to talk to the contract.
type environment struct {
	config   config.Config
	logs     logging.Factory
	log      logging.Logger
	eth      *ethclient.Client
	registry *prometheus.Registry
	client   *randomness.Client
}

// newEnvironment loads the config bound to [cmd]'s flags and dials the
// endpoint. A key is only loaded when [withSigner] is set.
func newEnvironment(cmd *cobra.Command, withSigner bool) (*environment, error) {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return nil, err
	}
	cfg, err := config.GetConfig(v)
	if err != nil {
		return nil, err
	}

	var signer randomness.Signer
	if withSigner {
		if cfg.KeyFile == "" {
			return nil, errMissingKeyFile
		}
		keySigner, err := randomness.LoadKeySigner(cfg.KeyFile)
		if err != nil {
			return nil, err
		}
		signer = keySigner
	}

	logs := logging.NewFactory(cfg.Logging)
	log, err := logs.Make(loggerName)
	if err != nil {
		logs.Close()
		return nil, err
	}

	eth, err := ethclient.DialContext(cmd.Context(), cfg.Endpoint)
	if err != nil {
		logs.Close()
		return nil, fmt.Errorf("failed to dial %s: %w", cfg.Endpoint, err)
	}

	registry := prometheus.NewRegistry()
	client, err := randomness.NewClient(cfg.Client, eth, signer, log, registry)
	if err != nil {
		eth.Close()
		logs.Close()
		return nil, err
	}

	fields := []zap.Field{
		zap.String("endpoint", cfg.Endpoint),
		zap.Stringer("contract", cfg.Client.Address),
	}
	if signer != nil {
		fields = append(fields, zap.Stringer("sender", signer.Address()))
	}
	log.Debug("initialized client", fields...)
	return &environment{
		config:   cfg,
		logs:     logs,
		log:      log,
		eth:      eth,
		registry: registry,
		client:   client,
	}, nil
}

func (e *environment) Close() {
	e.eth.Close()
	e.logs.Close()
}

// run wraps a command body with environment setup and teardown.
func run(withSigner bool, f func(cmd *cobra.Command, args []string, env *environment) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment(cmd, withSigner)
		if err != nil {
			return err
		}
		defer env.Close()

		err = f(cmd, args, env)
		var contractErr *randomness.ContractError
		if errors.As(err, &contractErr) {
			env.log.Debug("contract reverted",
				zap.String("error", contractErr.Name),
				zap.Binary("data", contractErr.Data),
			)
		}
		return err
	}
}
