// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/randa-mu/dcipher-sub000/randomness"
)

var errUnknownTable = errors.New("unknown signature table")

func infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Prints the contract's identity, balances and fee configuration",
		Args:  cobra.NoArgs,
		RunE:  run(false, infoFunc),
	}
}

func infoFunc(c *cobra.Command, _ []string, env *environment) error {
	info, err := env.client.Info(c.Context())
	if err != nil {
		return err
	}
	return printYAML(c, newInfoView(info))
}

func decodeCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "decode",
		Short: "Decodes contract payloads offline",
	}
	c.AddCommand(&cobra.Command{
		Use:   "revert DATA",
		Short: "Decodes hex encoded revert data",
		Args:  cobra.ExactArgs(1),
		RunE:  decodeRevertFunc,
	})
	return c
}

type revertView struct {
	Name     string            `json:"name"`
	Selector string            `json:"selector"`
	Reason   string            `json:"reason,omitempty"`
	Args     map[string]string `json:"args,omitempty"`
}

func decodeRevertFunc(c *cobra.Command, args []string) error {
	data, err := hexutil.Decode(args[0])
	if err != nil {
		return fmt.Errorf("invalid revert data: %w", err)
	}
	contractErr, err := randomness.UnpackRevert(data)
	if err != nil {
		return err
	}
	view := revertView{
		Name:     contractErr.Name,
		Selector: hexutil.Encode(data[:4]),
		Reason:   contractErr.Reason,
	}
	if len(contractErr.Args) > 0 {
		view.Args = make(map[string]string, len(contractErr.Args))
		for name, arg := range contractErr.Args {
			view.Args[name] = fmt.Sprint(arg)
		}
	}
	return printYAML(c, view)
}

var signatureTables = map[string]func() []randomness.Signature{
	"functions": randomness.Selectors,
	"events":    randomness.Topics,
	"errors":    randomness.ErrorSelectors,
}

func abiCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "abi",
		Short: "Inspects the contract ABI",
	}
	c.AddCommand(&cobra.Command{
		Use:   "selectors [functions|events|errors]...",
		Short: "Prints function selectors, event topics and error selectors",
		RunE:  selectorsFunc,
	})
	return c
}

func selectorsFunc(c *cobra.Command, args []string) error {
	if len(args) == 0 {
		for name := range signatureTables {
			args = append(args, name)
		}
		sort.Strings(args)
	}
	tables := make(map[string][]randomness.Signature, len(args))
	for _, name := range args {
		table, ok := signatureTables[name]
		if !ok {
			return fmt.Errorf("%w: %q", errUnknownTable, name)
		}
		tables[name] = table()
	}
	return printYAML(c, tables)
}
