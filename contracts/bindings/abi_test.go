// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bindings_test

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings"
)

// Selectors and topics as reported by `cast sig` / `cast sig-event`.
var (
	expectedSelectors = map[string]string{
		"ADMIN_ROLE()":                                               "75b238fc",
		"DEFAULT_ADMIN_ROLE()":                                       "a217fddf",
		"MAX_CONSUMERS()":                                            "64d51a2a",
		"SCHEME_ID()":                                                "8a1f165a",
		"UPGRADE_INTERFACE_VERSION()":                                "ad3cb1cc",
		"acceptSubscriptionOwnerTransfer(uint256)":                   "b2a7cac5",
		"addConsumer(uint256,address)":                               "bec4c08c",
		"calculateRequestPriceNative(uint32)":                        "4b160935",
		"cancelSubscription(uint256,address)":                        "0ae09540",
		"createSubscription()":                                       "a21a23e4",
		"disable()":                                                  "2f2770db",
		"enable()":                                                   "a3907d71",
		"estimateRequestPriceNative(uint32,uint256)":                 "3255c456",
		"fundSubscriptionWithNative(uint256)":                        "95b55cfc",
		"getActiveSubscriptionIds(uint256,uint256)":                  "aefb212f",
		"getAllRequests()":                                           "fb1a002a",
		"getConfig()":                                                "c3f909d4",
		"getRequest(uint256)":                                        "c58343ef",
		"getRoleAdmin(bytes32)":                                      "248a9ca3",
		"getRoleMember(bytes32,uint256)":                             "9010d07c",
		"getRoleMemberCount(bytes32)":                                "ca15c873",
		"getRoleMembers(bytes32)":                                    "a3246ad3",
		"getSubscription(uint256)":                                   "dc311dd3",
		"grantRole(bytes32,address)":                                 "2f2ff15d",
		"hasRole(bytes32,address)":                                   "91d14854",
		"initialize(address,address)":                                "485cc955",
		"isInFlight(uint256)":                                        "cd802c91",
		"messageFrom((uint256,address))":                             "775b839c",
		"nonce()":                                                    "affed0e0",
		"ownerCancelSubscription(uint256)":                           "aa433aff",
		"pendingRequestExists(uint256)":                              "41af6c87",
		"proxiableUUID()":                                            "52d1902d",
		"receiveSignature(uint256,bytes)":                            "c8db6582",
		"removeConsumer(uint256,address)":                            "cb631797",
		"renounceRole(bytes32,address)":                              "36568abe",
		"requestRandomness(uint32)":                                  "811ee32a",
		"requestRandomnessWithSubscription(uint32,uint256)":          "1da53c9f",
		"requestSubscriptionOwnerTransfer(uint256,address)":          "dac83d29",
		"revokeRole(bytes32,address)":                                "d547741f",
		"s_currentSubNonce()":                                        "9d40a6fd",
		"s_totalNativeBalance()":                                     "18e3dd27",
		"s_withdrawableDirectFundingFeeNative()":                     "3bc32c75",
		"s_withdrawableSubscriptionFeeNative()":                      "995cb36e",
		"setConfig(uint32,uint32,uint32,uint32,uint32,uint8,uint16)": "3ef6599d",
		"setSignatureSender(address)":                                "f8fa0d66",
		"signatureSender()":                                          "7d468106",
		"supportsInterface(bytes4)":                                  "01ffc9a7",
		"upgradeToAndCall(address,bytes)":                            "4f1ef286",
		"version()":                                                  "54fd4d50",
		"withdrawDirectFundingFeesNative(address)":                   "54236fb3",
		"withdrawSubscriptionFeesNative(address)":                    "bd18636b",
	}
	expectedTopics = map[string]string{
		"ConfigSet(uint32,uint32,uint32,uint32,uint32,uint8,uint16)": "c27cf10acf734bb5eb1f8a79d881789f5c43cf74463ad462273be648f6b663e9",
		"Disabled()":                        "75884cdadc4a89e8b545db800057f06ec7f5338a08183c7ba515f2bfdd9fe1e1",
		"Enabled()":                         "c0f961051f97b04c496472d11cb6170d844e4b2c9dfd3b602a4fa0139712d484",
		"Initialized(uint64)":               "c7f505b2f371ae2175ee4913f4499e1f2633a7b5936321eed1cdaeb6115181d2",
		"RandomnessCallbackFailed(uint256)": "8f67472dde2126ccd0315b75dc482a5a73acb228a395553f8ae6edde5a0ca4fa",
		"RandomnessCallbackSuccess(uint256,bytes32,bytes)":            "b74b3204a538cd8021662d42e794681ddc339924ef675b8fd11e9eaf6aa19eb5",
		"RandomnessRequested(uint256,uint256,address,uint256)":        "eee7195b6cee0fa7044c3af0b86fe2febb1d2703d71191f44052ba0d60ffda64",
		"RoleAdminChanged(bytes32,bytes32,bytes32)":                   "bd79b86ffe0ab8e8776151514217cd7cacd52c909f66475c3af44e129f0b00ff",
		"RoleGranted(bytes32,address,address)":                        "2f8788117e7eff1d82e926ec794901d17c78024a50270940304540a733656f0d",
		"RoleRevoked(bytes32,address,address)":                        "f6391f5c32d9c69d2a47ea670b442974b53935d1edc7fd64eb21e047a839171b",
		"SignatureSenderUpdated(address)":                             "229f6c3b095d683755a99ab458956747a8b7066c3dd42927d850631c34c238f1",
		"SubscriptionCanceled(uint256,address,uint256)":               "3784f77e8e883de95b5d47cd713ced01229fa74d118c0a462224bcb0516d43f1",
		"SubscriptionConsumerAdded(uint256,address)":                  "1e980d04aa7648e205713e5e8ea3808672ac163d10936d36f91b2c88ac1575e1",
		"SubscriptionConsumerRemoved(uint256,address)":                "32158c6058347c1601b2d12bc696ac6901d8a9a9aa3ba10c27ab0a983e8425a7",
		"SubscriptionCreated(uint256,address)":                        "1d3015d7ba850fa198dc7b1a3f5d42779313a681035f77c8c03764c61005518d",
		"SubscriptionFundedWithNative(uint256,uint256,uint256)":       "7603b205d03651ee812f803fccde89f1012e545a9c99f0abfea9cedd0fd8e902",
		"SubscriptionOwnerTransferRequested(uint256,address,address)": "21a4dad170a6bf476c31bbcf4a16628295b0e450672eec25d7c93308e05344a1",
		"SubscriptionOwnerTransferred(uint256,address,address)":       "d4114ab6e9af9f597c52041f32d62dc57c5c4e4c0d4427006069635e216c9386",
		"Upgraded(address)":                                           "bc7cd75a20ee27fd9adebab32041f755214dbc6bffa90cc0225b39da2e5c2d3b",
	}
	expectedErrors = map[string]string{
		"AccessControlBadConfirmation()":                    "6697b232",
		"AccessControlUnauthorizedAccount(address,bytes32)": "e2517d3f",
		"AddressEmptyCode(address)":                         "9996b315",
		"BalanceInvariantViolated(uint256,uint256)":         "a99da302",
		"ERC1967InvalidImplementation(address)":             "4c9c8ce3",
		"ERC1967NonPayable()":                               "b398979f",
		"FailedCall()":                                      "d6bda275",
		"FailedToSendNative()":                              "950b2479",
		"IndexOutOfRange()":                                 "1390f2a1",
		"InsufficientBalance()":                             "f4d678b8",
		"InvalidCalldata()":                                 "8129bbcd",
		"InvalidConsumer(uint256,address)":                  "79bfd401",
		"InvalidInitialization()":                           "f92ee8a9",
		"InvalidSubscription()":                             "1f6a65b6",
		"MustBeRequestedOwner(address)":                     "d084e975",
		"MustBeSubOwner(address)":                           "d8a3fb52",
		"NotInitializing()":                                 "d7e6bcf8",
		"PendingRequestExists()":                            "b42f66e8",
		"ReentrancyGuardReentrantCall()":                    "3ee5aeb5",
		"TooManyConsumers()":                                "05a48e0f",
		"UUPSUnauthorizedCallContext()":                     "e07c8dba",
		"UUPSUnsupportedProxiableUUID(bytes32)":             "aa1d49a4",
	}
)

func TestMethodSelectors(t *testing.T) {
	require := require.New(t)

	parsed, err := bindings.RandomnessSenderMetaData.GetAbi()
	require.NoError(err)
	require.Len(parsed.Methods, len(expectedSelectors))

	for _, method := range parsed.Methods {
		want, ok := expectedSelectors[method.Sig]
		require.True(ok, "unexpected method %s", method.Sig)
		require.Equal(want, hex.EncodeToString(method.ID), method.Sig)
		require.Equal(crypto.Keccak256([]byte(method.Sig))[:4], method.ID, method.Sig)
	}
}

func TestEventTopics(t *testing.T) {
	require := require.New(t)

	parsed, err := bindings.RandomnessSenderMetaData.GetAbi()
	require.NoError(err)
	require.Len(parsed.Events, len(expectedTopics))

	for _, event := range parsed.Events {
		want, ok := expectedTopics[event.Sig]
		require.True(ok, "unexpected event %s", event.Sig)
		require.Equal(want, hex.EncodeToString(event.ID.Bytes()), event.Sig)
		require.False(event.Anonymous, event.Sig)
	}
}

func TestErrorSelectors(t *testing.T) {
	require := require.New(t)

	parsed, err := bindings.RandomnessSenderMetaData.GetAbi()
	require.NoError(err)
	require.Len(parsed.Errors, len(expectedErrors))

	for _, e := range parsed.Errors {
		want, ok := expectedErrors[e.Sig]
		require.True(ok, "unexpected error %s", e.Sig)
		require.Equal(want, hex.EncodeToString(e.ID[:4]), e.Sig)
	}
}

func TestIndexedEventArguments(t *testing.T) {
	tests := map[string][]string{
		"RandomnessRequested":       {"requestID", "nonce", "requester"},
		"RandomnessCallbackSuccess": {"requestID"},
		"RandomnessCallbackFailed":  {"requestID"},
		"SubscriptionCreated":       {"subId"},
		"SignatureSenderUpdated":    {"signatureSender"},
		"RoleGranted":               {"role", "account", "sender"},
		"ConfigSet":                 nil,
		"Enabled":                   nil,
	}
	parsed, err := bindings.RandomnessSenderMetaData.GetAbi()
	require.NoError(t, err)

	for name, indexed := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			event, ok := parsed.Events[name]
			require.True(ok)
			var got []string
			for _, input := range event.Inputs {
				if input.Indexed {
					got = append(got, input.Name)
				}
			}
			require.Equal(indexed, got)
		})
	}
}

func TestArtifactsMatchMetaData(t *testing.T) {
	require := require.New(t)

	b, err := os.ReadFile(filepath.Join("..", "artifacts", "RandomnessSender.abi"))
	require.NoError(err)
	fromArtifact, err := abi.JSON(strings.NewReader(string(b)))
	require.NoError(err)

	embedded, err := bindings.RandomnessSenderMetaData.GetAbi()
	require.NoError(err)

	require.Len(fromArtifact.Methods, len(embedded.Methods))
	for name, method := range embedded.Methods {
		require.Equal(method.ID, fromArtifact.Methods[name].ID, name)
	}
	require.Len(fromArtifact.Events, len(embedded.Events))
	for name, event := range embedded.Events {
		require.Equal(event.ID, fromArtifact.Events[name].ID, name)
	}
	require.Len(fromArtifact.Errors, len(embedded.Errors))

	b, err = os.ReadFile(filepath.Join("..", "artifacts", "TypesLib.abi"))
	require.NoError(err)
	require.JSONEq(bindings.TypesLibMetaData.ABI, string(b))
}

func TestTypesLibStructs(t *testing.T) {
	require := require.New(t)

	parsed, err := bindings.RandomnessSenderMetaData.GetAbi()
	require.NoError(err)

	request := parsed.Methods["getRequest"].Outputs[0].Type
	require.Equal(abi.TupleTy, request.T)
	require.Equal("TypesLibRandomnessRequest", request.TupleRawName)
	require.Equal(
		[]string{"subId", "directFundingFeePaid", "callbackGasLimit", "requestId", "message", "condition", "signature", "nonce", "callback"},
		request.TupleRawNames,
	)

	params := parsed.Methods["messageFrom"].Inputs[0].Type
	require.Equal(abi.TupleTy, params.T)
	require.Equal([]string{"nonce", "callback"}, params.TupleRawNames)

	lib, err := bindings.TypesLibMetaData.GetAbi()
	require.NoError(err)
	require.Empty(lib.Methods)
	require.Empty(lib.Events)
}
