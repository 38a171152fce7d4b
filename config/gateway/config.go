// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package gateway

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"

	"github.com/ChainSafe/solana-gateway/chains/solana/executor"
)

type GatewayConfig struct {
	LogLevel zerolog.Level
	LogFile  string

	Endpoint                 string
	ChainID                  uint64
	GatewayProgram           solana.PublicKey
	ClientProgram            solana.PublicKey
	GasServiceProgram        solana.PublicKey
	LookupTable              solana.PublicKey
	MaxAttempts              int
	RetryBaseDelay           time.Duration
	ConfirmationTimeout      time.Duration
	ConfirmationPollInterval time.Duration
}

// RawGatewayConfig keeps every field a string so values can arrive from Env
// variables as well as from a config file.
type RawGatewayConfig struct {
	LogLevel string `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	LogFile  string `mapstructure:"LogFile" json:"logFile" default:"out.log"`

	Endpoint                 string `mapstructure:"Endpoint" json:"endpoint"`
	ChainID                  string `mapstructure:"ChainId" json:"chainId"`
	GatewayProgram           string `mapstructure:"GatewayProgram" json:"gatewayProgram"`
	ClientProgram            string `mapstructure:"ClientProgram" json:"clientProgram"`
	GasServiceProgram        string `mapstructure:"GasServiceProgram" json:"gasServiceProgram"`
	LookupTable              string `mapstructure:"LookupTable" json:"lookupTable"`
	MaxAttempts              string `mapstructure:"MaxAttempts" json:"maxAttempts" default:"5"`
	RetryBaseDelay           string `mapstructure:"RetryBaseDelay" json:"retryBaseDelay" default:"5s"`
	ConfirmationTimeout      string `mapstructure:"ConfirmationTimeout" json:"confirmationTimeout" default:"1m"`
	ConfirmationPollInterval string `mapstructure:"ConfirmationPollInterval" json:"confirmationPollInterval" default:"5s"`
}

func (c *RawGatewayConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("required field gateway.Endpoint empty")
	}
	if c.GatewayProgram == "" {
		return fmt.Errorf("required field gateway.GatewayProgram empty")
	}
	if c.ChainID == "" {
		return fmt.Errorf("required field gateway.ChainId empty")
	}
	return nil
}

// NewGatewayConfig parses RawGatewayConfig into GatewayConfig
func NewGatewayConfig(rawConfig RawGatewayConfig) (GatewayConfig, error) {
	config := GatewayConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}
	config.LogLevel = logLevel
	config.LogFile = rawConfig.LogFile
	config.Endpoint = rawConfig.Endpoint

	chainID, err := strconv.ParseUint(rawConfig.ChainID, 10, 64)
	if err != nil {
		return config, fmt.Errorf("invalid chain id %s: %w", rawConfig.ChainID, err)
	}
	if chainID == 0 {
		return config, fmt.Errorf("chain id must not be zero")
	}
	config.ChainID = chainID

	config.GatewayProgram, err = solana.PublicKeyFromBase58(rawConfig.GatewayProgram)
	if err != nil {
		return config, fmt.Errorf("invalid gateway program address %s: %w", rawConfig.GatewayProgram, err)
	}
	config.ClientProgram, err = optionalAddress(rawConfig.ClientProgram)
	if err != nil {
		return config, fmt.Errorf("invalid client program address %s: %w", rawConfig.ClientProgram, err)
	}
	config.GasServiceProgram, err = optionalAddress(rawConfig.GasServiceProgram)
	if err != nil {
		return config, fmt.Errorf("invalid gas service program address %s: %w", rawConfig.GasServiceProgram, err)
	}
	config.LookupTable, err = optionalAddress(rawConfig.LookupTable)
	if err != nil {
		return config, fmt.Errorf("invalid lookup table address %s: %w", rawConfig.LookupTable, err)
	}

	maxAttempts, err := strconv.Atoi(rawConfig.MaxAttempts)
	if err != nil {
		return config, fmt.Errorf("invalid max attempts %s: %w", rawConfig.MaxAttempts, err)
	}
	if maxAttempts < 1 {
		return config, fmt.Errorf("max attempts must be at least 1")
	}
	config.MaxAttempts = maxAttempts

	config.RetryBaseDelay, err = time.ParseDuration(rawConfig.RetryBaseDelay)
	if err != nil {
		return config, fmt.Errorf("unable to parse retry base delay: %w", err)
	}
	config.ConfirmationTimeout, err = time.ParseDuration(rawConfig.ConfirmationTimeout)
	if err != nil {
		return config, fmt.Errorf("unable to parse confirmation timeout: %w", err)
	}
	config.ConfirmationPollInterval, err = time.ParseDuration(rawConfig.ConfirmationPollInterval)
	if err != nil {
		return config, fmt.Errorf("unable to parse confirmation poll interval: %w", err)
	}

	return config, nil
}

// ExecutorConfig projects the validated configuration onto the executor's
// own config struct.
func (c GatewayConfig) ExecutorConfig() executor.Config {
	return executor.Config{
		ChainID:                  c.ChainID,
		GatewayProgramID:         c.GatewayProgram,
		ClientProgramID:          c.ClientProgram,
		GasServiceProgramID:      c.GasServiceProgram,
		LookupTableAddress:       c.LookupTable,
		MaxAttempts:              c.MaxAttempts,
		RetryBaseDelay:           c.RetryBaseDelay,
		ConfirmationTimeout:      c.ConfirmationTimeout,
		ConfirmationPollInterval: c.ConfirmationPollInterval,
	}
}

func optionalAddress(raw string) (solana.PublicKey, error) {
	if raw == "" {
		return solana.PublicKey{}, nil
	}
	return solana.PublicKeyFromBase58(raw)
}
