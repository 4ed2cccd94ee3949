// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bindings holds the generated Go bindings for the RandomnessSender
// contract and the TypesLib library it shares structs with.
package bindings

// The contract sources live in the randomness-solidity repository. Point
// RANDOMNESS_SOLIDITY at a checkout to regenerate.
//
// Step 1: Compile the Solidity contract, keeping only the ABI. The proxy is
// deployed by the Solidity tooling so no bytecode is embedded here.
//go:generate sh -c "solc --combined-json abi --base-path $RANDOMNESS_SOLIDITY --include-path $RANDOMNESS_SOLIDITY/lib $RANDOMNESS_SOLIDITY/src/randomness/RandomnessSender.sol | jq '.contracts |= with_entries(select(.key | test(\":(RandomnessSender|TypesLib)$\")))' > ../artifacts/combined.json"
// Step 2: Split the per-contract ABI artifacts used by the tests and tooling
//go:generate sh -c "jq -c '.contracts | to_entries[] | select(.key | endswith(\":RandomnessSender\")) | .value.abi' ../artifacts/combined.json > ../artifacts/RandomnessSender.abi"
//go:generate sh -c "jq -c '.contracts | to_entries[] | select(.key | endswith(\":TypesLib\")) | .value.abi' ../artifacts/combined.json > ../artifacts/TypesLib.abi"
// Step 3: Generate Go bindings for both contracts into one file so the
// TypesLib structs are declared once
//go:generate go run github.com/ethereum/go-ethereum/cmd/abigen --pkg bindings --combined-json ../artifacts/combined.json --out gen_randomnesssender_binding.go
