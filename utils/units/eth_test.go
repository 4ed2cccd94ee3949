// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package units

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatEther(t *testing.T) {
	tests := map[string]struct {
		wei      *big.Int
		expected string
	}{
		"nil":         {wei: nil, expected: "0"},
		"zero":        {wei: big.NewInt(0), expected: "0"},
		"one wei":     {wei: big.NewInt(1), expected: "0.000000000000000001"},
		"one gwei":    {wei: GWeiToWei(1), expected: "0.000000001"},
		"one ether":   {wei: EtherToWei(1), expected: "1"},
		"fractional":  {wei: new(big.Int).Add(EtherToWei(2), new(big.Int).SetUint64(Milli*250)), expected: "2.25"},
		"negative":    {wei: new(big.Int).Neg(EtherToWei(3)), expected: "-3"},
		"large whole": {wei: EtherToWei(1_000_000), expected: "1000000"},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, test.expected, FormatEther(test.wei))
		})
	}
}

func TestParseEther(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected *big.Int
		ok       bool
	}{
		"whole":         {input: "1", expected: EtherToWei(1), ok: true},
		"fraction":      {input: "0.000000001", expected: GWeiToWei(1), ok: true},
		"leading dot":   {input: ".5", expected: new(big.Int).SetUint64(Milli * 500), ok: true},
		"too precise":   {input: "0.0000000000000000001"},
		"empty":         {input: ""},
		"garbage":       {input: "1.x"},
		"negative":      {input: "-1"},
		"surrounded ws": {input: " 2 ", expected: EtherToWei(2), ok: true},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			wei, ok := ParseEther(test.input)
			require.Equal(test.ok, ok)
			if test.ok {
				require.Zero(test.expected.Cmp(wei), "got %s", wei)
			}
		})
	}
}
