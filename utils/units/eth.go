// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package units

import (
	"math/big"
	"strings"
)

// Denominations of value, in wei
const (
	Wei   uint64 = 1
	KWei  uint64 = 1000 * Wei
	MWei  uint64 = 1000 * KWei
	GWei  uint64 = 1000 * MWei
	Szabo uint64 = 1000 * GWei
	Milli uint64 = 1000 * Szabo
	Ether uint64 = 1000 * Milli
)

const etherDecimals = 18

// EtherToWei scales [ether] whole units to wei.
func EtherToWei(ether uint64) *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(ether), new(big.Int).SetUint64(Ether))
}

// GWeiToWei scales [gwei] to wei.
func GWeiToWei(gwei uint64) *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(gwei), new(big.Int).SetUint64(GWei))
}

// FormatEther renders [wei] as a decimal ether amount without trailing zeros.
// A nil amount formats as "0".
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	neg := wei.Sign() < 0
	digits := new(big.Int).Abs(wei).String()
	if len(digits) <= etherDecimals {
		digits = strings.Repeat("0", etherDecimals-len(digits)+1) + digits
	}
	whole := digits[:len(digits)-etherDecimals]
	frac := strings.TrimRight(digits[len(digits)-etherDecimals:], "0")

	s := whole
	if frac != "" {
		s += "." + frac
	}
	if neg {
		s = "-" + s
	}
	return s
}

// ParseEther parses a decimal ether amount such as "0.25" into wei.
func ParseEther(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > etherDecimals || (whole == "" && frac == "") {
		return nil, false
	}
	if whole == "" {
		whole = "0"
	}
	frac += strings.Repeat("0", etherDecimals-len(frac))
	wei, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok || wei.Sign() < 0 {
		return nil, false
	}
	return wei, true
}
