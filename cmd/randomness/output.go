// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings"
	"github.com/randa-mu/dcipher-sub000/randomness"
	"github.com/randa-mu/dcipher-sub000/utils/units"
)

var (
	errInvalidInteger = errors.New("invalid integer")
	errInvalidAddress = errors.New("invalid address")
	errInvalidAmount  = errors.New("invalid ether amount")
)

// printYAML writes [v] to the command's output. Amounts are rendered as
// strings beforehand since YAML would otherwise round large integers.
func printYAML(cmd *cobra.Command, v interface{}) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}

func parseBigInt(s string) (*big.Int, error) {
	i, ok := new(big.Int).SetString(s, 0)
	if !ok || i.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", errInvalidInteger, s)
	}
	return i, nil
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", errInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

func parseEther(s string) (*big.Int, error) {
	wei, ok := units.ParseEther(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errInvalidAmount, s)
	}
	return wei, nil
}

func formatInt(i *big.Int) string {
	if i == nil {
		return ""
	}
	return i.String()
}

type requestView struct {
	ID               string `json:"id"`
	Nonce            string `json:"nonce"`
	Requester        string `json:"requester"`
	SubscriptionID   string `json:"subscriptionId,omitempty"`
	CallbackGasLimit uint32 `json:"callbackGasLimit"`
	Paid             string `json:"paid"`
	TxHash           string `json:"txHash"`
	BlockNumber      uint64 `json:"blockNumber"`
}

func newRequestView(r *randomness.Request) requestView {
	return requestView{
		ID:               formatInt(r.ID),
		Nonce:            formatInt(r.Nonce),
		Requester:        r.Requester.Hex(),
		SubscriptionID:   formatInt(r.SubscriptionID),
		CallbackGasLimit: r.CallbackGasLimit,
		Paid:             units.FormatEther(r.Paid),
		TxHash:           r.TxHash.Hex(),
		BlockNumber:      r.BlockNumber,
	}
}

type fulfillmentView struct {
	RequestID   string `json:"requestId"`
	Success     bool   `json:"success"`
	Randomness  string `json:"randomness,omitempty"`
	Signature   string `json:"signature,omitempty"`
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
}

func newFulfillmentView(f *randomness.Fulfillment) fulfillmentView {
	view := fulfillmentView{
		RequestID:   formatInt(f.RequestID),
		Success:     f.Success,
		TxHash:      f.TxHash.Hex(),
		BlockNumber: f.BlockNumber,
	}
	if f.Success {
		view.Randomness = f.Randomness.Hex()
		view.Signature = hexutil.Encode(f.Signature)
	}
	return view
}

type statusView struct {
	ID                   string `json:"id"`
	Nonce                string `json:"nonce"`
	Callback             string `json:"callback"`
	SubscriptionID       string `json:"subscriptionId,omitempty"`
	DirectFundingFeePaid string `json:"directFundingFeePaid"`
	CallbackGasLimit     uint32 `json:"callbackGasLimit"`
	Message              string `json:"message,omitempty"`
	Signature            string `json:"signature,omitempty"`
	InFlight             bool   `json:"inFlight"`
}

func newStatusView(r bindings.TypesLibRandomnessRequest, inFlight bool) statusView {
	view := statusView{
		ID:                   formatInt(r.RequestId),
		Nonce:                formatInt(r.Nonce),
		Callback:             r.Callback.Hex(),
		DirectFundingFeePaid: units.FormatEther(r.DirectFundingFeePaid),
		CallbackGasLimit:     r.CallbackGasLimit,
		InFlight:             inFlight,
	}
	if r.SubId != nil && r.SubId.Sign() != 0 {
		view.SubscriptionID = r.SubId.String()
	}
	if len(r.Message) > 0 {
		view.Message = hexutil.Encode(r.Message)
	}
	if len(r.Signature) > 0 {
		view.Signature = hexutil.Encode(r.Signature)
	}
	return view
}

type subscriptionView struct {
	ID             string   `json:"id"`
	Owner          string   `json:"owner"`
	NativeBalance  string   `json:"nativeBalance"`
	ReqCount       uint64   `json:"reqCount"`
	Consumers      []string `json:"consumers"`
	PendingRequest bool     `json:"pendingRequest"`
}

func newSubscriptionView(s *randomness.Subscription, pending bool) subscriptionView {
	consumers := make([]string, len(s.Consumers))
	for i, consumer := range s.Consumers {
		consumers[i] = consumer.Hex()
	}
	return subscriptionView{
		ID:             formatInt(s.ID),
		Owner:          s.Owner.Hex(),
		NativeBalance:  units.FormatEther(s.NativeBalance),
		ReqCount:       s.ReqCount,
		Consumers:      consumers,
		PendingRequest: pending,
	}
}

type infoView struct {
	Address                      string                    `json:"address"`
	Version                      string                    `json:"version"`
	SchemeID                     string                    `json:"schemeId"`
	SignatureSender              string                    `json:"signatureSender"`
	Nonce                        string                    `json:"nonce"`
	MaxConsumers                 uint16                    `json:"maxConsumers"`
	CurrentSubNonce              uint64                    `json:"currentSubNonce"`
	TotalNativeBalance           string                    `json:"totalNativeBalance"`
	WithdrawableDirectFundingFee string                    `json:"withdrawableDirectFundingFee"`
	WithdrawableSubscriptionFee  string                    `json:"withdrawableSubscriptionFee"`
	Config                       randomness.ContractConfig `json:"config"`
}

func newInfoView(i *randomness.Info) infoView {
	return infoView{
		Address:                      i.Address.Hex(),
		Version:                      i.Version,
		SchemeID:                     i.SchemeID,
		SignatureSender:              i.SignatureSender.Hex(),
		Nonce:                        formatInt(i.Nonce),
		MaxConsumers:                 i.MaxConsumers,
		CurrentSubNonce:              i.CurrentSubNonce,
		TotalNativeBalance:           units.FormatEther(i.TotalNativeBalance),
		WithdrawableDirectFundingFee: units.FormatEther(i.WithdrawableDirectFundingFee),
		WithdrawableSubscriptionFee:  units.FormatEther(i.WithdrawableSubscriptionFee),
		Config:                       i.Config,
	}
}
