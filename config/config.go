// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"

	"github.com/ChainSafe/solana-gateway/config/gateway"
)

type Config struct {
	GatewayConfig gateway.GatewayConfig
}

type RawConfig struct {
	GatewayConfig gateway.RawGatewayConfig `mapstructure:"gateway" json:"gateway"`
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of GatewayConfig are expected to be defined as separate Env
// variables where Env variable name reflects properties position in structure.
// Each Env variable needs to be prefixed with SGW.
//
// For example, if you want to set Config.GatewayConfig.Endpoint this would
// translate to Env variable named SGW_GATEWAY_ENDPOINT.
func GetConfigFromENV() (Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return Config{}, err
	}

	return processRawConfig(rawConfig)
}

// GetConfigFromFile reads config from file, validates it and parses
// it into config suitable for application
func GetConfigFromFile(path string) (Config, error) {
	rawConfig, err := loadFromFile(path)
	if err != nil {
		return Config{}, err
	}

	return processRawConfig(rawConfig)
}

// GetConfig reads config from file and overlays Env variables on top of it,
// so a deployment can keep a shared file config and override single
// properties per instance.
func GetConfig(path string) (Config, error) {
	fileConfig, err := loadFromFile(path)
	if err != nil {
		return Config{}, err
	}
	rawConfig, err := loadFromEnv()
	if err != nil {
		return Config{}, err
	}

	err = mergo.Merge(&rawConfig, fileConfig)
	if err != nil {
		return Config{}, err
	}

	return processRawConfig(rawConfig)
}

func loadFromFile(path string) (RawConfig, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return rawConfig, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return rawConfig, err
	}

	return rawConfig, nil
}

func processRawConfig(rawConfig RawConfig) (Config, error) {
	config := Config{}
	if err := defaults.Set(&rawConfig); err != nil {
		return config, err
	}

	gatewayConfig, err := gateway.NewGatewayConfig(rawConfig.GatewayConfig)
	if err != nil {
		return config, err
	}

	config.GatewayConfig = gatewayConfig
	return config, nil
}
