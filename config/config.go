// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/randa-mu/dcipher-sub000/randomness"
	"github.com/randa-mu/dcipher-sub000/utils/logging"
)

const (
	ConfigFileKey = "config-file"

	EndpointKey        = "endpoint"
	ContractAddressKey = "contract-address"
	KeyFileKey         = "key-file"

	LogsDirKey         = "log-dir"
	LogLevelKey        = "log-level"
	LogDisplayLevelKey = "log-display-level"
	LogFormatKey       = "log-format"

	CallbackGasLimitKey   = "callback-gas-limit"
	PriceBufferKey        = "price-buffer-percent"
	GasLimitKey           = "gas-limit"
	GasBufferKey          = "gas-buffer-percent"
	PageSizeKey           = "page-size"
	ReceiptTimeoutKey     = "receipt-timeout"
	FulfillmentTimeoutKey = "fulfillment-timeout"
	PollIntervalKey       = "poll-interval"

	MonitorStartBlockKey    = "monitor-start-block"
	MonitorWindowKey        = "monitor-window"
	MonitorConfirmationsKey = "monitor-confirmations"
	MetricsAddrKey          = "metrics-addr"

	// EnvPrefix is prepended to the upper-cased flag name, with dashes
	// replaced by underscores, to form the environment variable of a key.
	EnvPrefix = "randomness"

	DefaultEndpoint    = "http://127.0.0.1:8545"
	DefaultMetricsAddr = "127.0.0.1:9090"
)

var (
	errMissingEndpoint = errors.New("rpc endpoint must be set")
	errInvalidAddress  = errors.New("invalid contract address")
)

// Config is everything the randomness CLI needs to reach and drive a
// RandomnessSender deployment.
type Config struct {
	Logging     logging.Config           `json:"logging"`
	Endpoint    string                   `json:"endpoint"`
	KeyFile     string                   `json:"keyFile"`
	Client      randomness.Config        `json:"client"`
	Monitor     randomness.MonitorConfig `json:"monitor"`
	MetricsAddr string                   `json:"metricsAddr"`
}

// BuildFlagSet returns the complete set of flags for the randomness CLI.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("randomness", pflag.ContinueOnError)
	AddFlags(fs)
	return fs
}

func AddFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "Specifies a JSON, YAML or TOML config file. Flags override values read from the file")

	// Chain
	fs.String(EndpointKey, DefaultEndpoint, "JSON-RPC endpoint of the chain hosting the contract")
	fs.String(ContractAddressKey, "", "Address of the RandomnessSender proxy")
	fs.String(KeyFileKey, "", "File holding the hex encoded private key used to send transactions")

	// Logging
	fs.String(LogsDirKey, "", "Logging directory. Logs are only written to disk when set")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level")
	fs.String(LogFormatKey, "auto", "The display log format. Should be one of {auto, plain, colors}")

	// Client
	fs.Uint32(CallbackGasLimitKey, randomness.DefaultCallbackGasLimit, "Gas forwarded to the consumer callback")
	fs.Uint64(PriceBufferKey, randomness.DefaultPriceBufferPercent, "Percentage added to the quoted request price")
	fs.Uint64(GasLimitKey, 0, "Gas limit of sent transactions. Zero estimates the limit")
	fs.Uint64(GasBufferKey, randomness.DefaultGasBufferPercent, "Percentage added to estimated gas")
	fs.Uint64(PageSizeKey, randomness.DefaultPageSize, "Number of subscription ids fetched per call")
	fs.Duration(ReceiptTimeoutKey, randomness.DefaultReceiptTimeout, "Maximum time to wait for a transaction to be mined")
	fs.Duration(FulfillmentTimeoutKey, randomness.DefaultFulfillmentTimeout, "Maximum time to wait for a request to be fulfilled")
	fs.Duration(PollIntervalKey, randomness.DefaultPollInterval, "Interval between chain polls")

	// Monitor
	fs.Uint64(MonitorStartBlockKey, 0, "First block scanned by the monitor. Zero starts at the current head")
	fs.Uint64(MonitorWindowKey, randomness.DefaultMonitorWindow, "Maximum number of blocks per log query")
	fs.Uint64(MonitorConfirmationsKey, randomness.DefaultMonitorConfirmations, "Number of blocks the monitor stays behind the head")
	fs.String(MetricsAddrKey, DefaultMetricsAddr, "Address the monitor serves metrics on")
}

// BuildViper parses [args] into [fs] and returns the resulting viper
// environment.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return NewViper(fs)
}

// NewViper binds the already parsed [fs], the environment, and the config
// file named by [ConfigFileKey], in decreasing priority.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if path := v.GetString(ConfigFileKey); path != "" {
		v.SetConfigFile(os.ExpandEnv(path))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}
	return v, nil
}

// GetConfig builds and verifies a Config from [v].
func GetConfig(v *viper.Viper) (Config, error) {
	loggingConfig, err := getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}

	endpoint := v.GetString(EndpointKey)
	if endpoint == "" {
		return Config{}, errMissingEndpoint
	}
	address, err := getAddress(v)
	if err != nil {
		return Config{}, err
	}

	clientConfig := getClientConfig(v, address)
	if err := clientConfig.Verify(); err != nil {
		return Config{}, fmt.Errorf("invalid client config: %w", err)
	}
	monitorConfig := getMonitorConfig(v, address)
	if err := monitorConfig.Verify(); err != nil {
		return Config{}, fmt.Errorf("invalid monitor config: %w", err)
	}

	return Config{
		Logging:     loggingConfig,
		Endpoint:    endpoint,
		KeyFile:     os.ExpandEnv(v.GetString(KeyFileKey)),
		Client:      clientConfig,
		Monitor:     monitorConfig,
		MetricsAddr: v.GetString(MetricsAddrKey),
	}, nil
}

func getAddress(v *viper.Viper) (common.Address, error) {
	addressStr := v.GetString(ContractAddressKey)
	if !common.IsHexAddress(addressStr) {
		return common.Address{}, fmt.Errorf("%w: %q", errInvalidAddress, addressStr)
	}
	return common.HexToAddress(addressStr), nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.DefaultConfig()
	if v.IsSet(LogsDirKey) {
		loggingConfig.Directory = os.ExpandEnv(v.GetString(LogsDirKey))
	}

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}

	displayLevel := v.GetString(LogLevelKey)
	if v.IsSet(LogDisplayLevelKey) {
		displayLevel = v.GetString(LogDisplayLevelKey)
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(displayLevel)
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.LogFormat, err = logging.ToHighlight(v.GetString(LogFormatKey), os.Stdout.Fd())
	return loggingConfig, err
}

func getClientConfig(v *viper.Viper, address common.Address) randomness.Config {
	return randomness.Config{
		Address:            address,
		CallbackGasLimit:   v.GetUint32(CallbackGasLimitKey),
		PriceBufferPercent: v.GetUint64(PriceBufferKey),
		GasLimit:           v.GetUint64(GasLimitKey),
		GasBufferPercent:   v.GetUint64(GasBufferKey),
		PageSize:           v.GetUint64(PageSizeKey),
		ReceiptTimeout:     v.GetDuration(ReceiptTimeoutKey),
		FulfillmentTimeout: v.GetDuration(FulfillmentTimeoutKey),
		PollInterval:       v.GetDuration(PollIntervalKey),
	}
}

func getMonitorConfig(v *viper.Viper, address common.Address) randomness.MonitorConfig {
	return randomness.MonitorConfig{
		Address:       address,
		StartBlock:    v.GetUint64(MonitorStartBlockKey),
		Window:        v.GetUint64(MonitorWindowKey),
		Confirmations: v.GetUint64(MonitorConfirmationsKey),
		PollInterval:  v.GetDuration(PollIntervalKey),
	}
}
