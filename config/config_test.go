// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/randa-mu/dcipher-sub000/randomness"
	"github.com/randa-mu/dcipher-sub000/utils/logging"
)

const testAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func TestGetConfigDefaults(t *testing.T) {
	require := require.New(t)

	v := setupViper(t, "--contract-address", testAddress, "--log-format", "plain")
	config, err := GetConfig(v)
	require.NoError(err)

	address := common.HexToAddress(testAddress)
	expectedLogging := logging.DefaultConfig()
	expectedLogging.LogLevel = logging.Info
	expectedLogging.DisplayLevel = logging.Info
	expectedLogging.LogFormat = logging.Plain
	require.Equal(Config{
		Logging:     expectedLogging,
		Endpoint:    DefaultEndpoint,
		Client:      randomness.DefaultConfig(address),
		Monitor:     randomness.DefaultMonitorConfig(address),
		MetricsAddr: DefaultMetricsAddr,
	}, config)
}

func TestGetConfigFromFile(t *testing.T) {
	require := require.New(t)

	root := t.TempDir()
	configJSON := fmt.Sprintf(`{
	%q: %q,
	%q: "https://rpc.example.org",
	%q: 250000,
	%q: 50,
	%q: "5s",
	%q: "debug"
}`,
		ContractAddressKey, testAddress,
		EndpointKey,
		CallbackGasLimitKey,
		MonitorWindowKey,
		PollIntervalKey,
		LogDisplayLevelKey,
	)
	configFile := setupConfigJSON(t, root, configJSON)

	// Flags take precedence over the file.
	v := setupViper(t,
		"--"+ConfigFileKey, configFile,
		"--"+MonitorWindowKey, "10",
		"--"+LogFormatKey, "plain",
	)
	config, err := GetConfig(v)
	require.NoError(err)

	require.Equal("https://rpc.example.org", config.Endpoint)
	require.Equal(common.HexToAddress(testAddress), config.Client.Address)
	require.Equal(uint32(250_000), config.Client.CallbackGasLimit)
	require.Equal(5*time.Second, config.Client.PollInterval)
	require.Equal(5*time.Second, config.Monitor.PollInterval)
	require.Equal(uint64(10), config.Monitor.Window)
	require.Equal(logging.Info, config.Logging.LogLevel)
	require.Equal(logging.Debug, config.Logging.DisplayLevel)
}

func TestGetConfigFromEnv(t *testing.T) {
	require := require.New(t)

	keyDir := t.TempDir()
	t.Setenv("RANDOMNESS_CONTRACT_ADDRESS", testAddress)
	t.Setenv("RANDOMNESS_GAS_LIMIT", "750000")
	t.Setenv("RANDOMNESS_MONITOR_CONFIRMATIONS", "3")
	t.Setenv("KEY_DIR", keyDir)

	v := setupViper(t,
		"--"+KeyFileKey, "$KEY_DIR/operator.key",
		"--"+LogFormatKey, "plain",
	)
	config, err := GetConfig(v)
	require.NoError(err)

	require.Equal(common.HexToAddress(testAddress), config.Client.Address)
	require.Equal(uint64(750_000), config.Client.GasLimit)
	require.Equal(uint64(3), config.Monitor.Confirmations)
	require.Equal(filepath.Join(keyDir, "operator.key"), config.KeyFile)
}

func TestGetConfigErrors(t *testing.T) {
	tests := map[string]struct {
		args        []string
		expectedErr error
	}{
		"missing endpoint": {
			args:        []string{"--" + ContractAddressKey, testAddress, "--" + EndpointKey + "="},
			expectedErr: errMissingEndpoint,
		},
		"missing address": {
			args:        []string{},
			expectedErr: errInvalidAddress,
		},
		"malformed address": {
			args:        []string{"--" + ContractAddressKey, "0x1234"},
			expectedErr: errInvalidAddress,
		},
		"zero address": {
			args:        []string{"--" + ContractAddressKey, common.Address{}.Hex()},
			expectedErr: randomness.ErrInvalidConfig,
		},
		"zero window": {
			args:        []string{"--" + ContractAddressKey, testAddress, "--" + MonitorWindowKey, "0"},
			expectedErr: randomness.ErrInvalidConfig,
		},
		"unknown log level": {
			args:        []string{"--" + ContractAddressKey, testAddress, "--" + LogLevelKey, "loud"},
			expectedErr: logging.ErrUnknownLevel,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			args := append([]string{"--" + LogFormatKey, "plain"}, test.args...)
			_, err := GetConfig(setupViper(t, args...))
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestBuildViperMissingConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	_, err := BuildViper(BuildFlagSet(), []string{"--" + ConfigFileKey, path})
	require.ErrorContains(t, err, "failed to read config file")
}

func TestBuildViperUnknownFlag(t *testing.T) {
	_, err := BuildViper(BuildFlagSet(), []string{"--not-a-flag"})
	require.ErrorContains(t, err, "unknown flag")
}

// setups config json file and writes content
func setupConfigJSON(t *testing.T, rootPath string, value string) string {
	configFilePath := filepath.Join(rootPath, "config.json")
	require.NoError(t, os.WriteFile(configFilePath, []byte(value), 0o600))
	return configFilePath
}

func setupViper(t *testing.T, args ...string) *viper.Viper {
	v, err := BuildViper(BuildFlagSet(), args)
	require.NoError(t, err)
	return v
}
