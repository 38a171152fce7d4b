// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/solana-gateway/config/gateway"
)

type LoadFromEnvTestSuite struct {
	suite.Suite
}

func (s *LoadFromEnvTestSuite) TearDownTest() {
	os.Clearenv()
}

func TestRunLoadFromEnvTestSuite(t *testing.T) {
	suite.Run(t, new(LoadFromEnvTestSuite))
}

func (s *LoadFromEnvTestSuite) SetupTest() {
	os.Clearenv()
}

func (s *LoadFromEnvTestSuite) Test_ValidGatewayConfig() {
	_ = os.Setenv("SGW_GATEWAY_LOGLEVEL", "info")
	_ = os.Setenv("SGW_GATEWAY_LOGFILE", "test.log")
	_ = os.Setenv("SGW_GATEWAY_ENDPOINT", "https://api.devnet.solana.com")
	_ = os.Setenv("SGW_GATEWAY_CHAINID", "43113")
	_ = os.Setenv("SGW_GATEWAY_GATEWAYPROGRAM", "CVr35B5gmPuk5gKnMTBXoQBKjnap55Y9XSGmk5XZ47ki")
	_ = os.Setenv("SGW_GATEWAY_CLIENTPROGRAM", "7BiqCtMt6oXySUYPid8NkCYSRBd4miF8W6Kjfs9mRSrw")
	_ = os.Setenv("SGW_GATEWAY_GASSERVICEPROGRAM", "Hw5h54HBSX4MGh5FNeqChv4f9mzBt9Mvmy6anM9TzwiB")
	_ = os.Setenv("SGW_GATEWAY_LOOKUPTABLE", "6DLHDLXeHfS7rKAjgq8bSgtZFnTezLfrAbXbzGe55Tfi")
	_ = os.Setenv("SGW_GATEWAY_MAXATTEMPTS", "3")
	_ = os.Setenv("SGW_GATEWAY_RETRYBASEDELAY", "2s")
	_ = os.Setenv("SGW_GATEWAY_CONFIRMATIONTIMEOUT", "30s")
	_ = os.Setenv("SGW_GATEWAY_CONFIRMATIONPOLLINTERVAL", "1s")

	env, err := loadFromEnv()

	s.Nil(err)
	s.Equal(gateway.RawGatewayConfig{
		LogLevel:                 "info",
		LogFile:                  "test.log",
		Endpoint:                 "https://api.devnet.solana.com",
		ChainID:                  "43113",
		GatewayProgram:           "CVr35B5gmPuk5gKnMTBXoQBKjnap55Y9XSGmk5XZ47ki",
		ClientProgram:            "7BiqCtMt6oXySUYPid8NkCYSRBd4miF8W6Kjfs9mRSrw",
		GasServiceProgram:        "Hw5h54HBSX4MGh5FNeqChv4f9mzBt9Mvmy6anM9TzwiB",
		LookupTable:              "6DLHDLXeHfS7rKAjgq8bSgtZFnTezLfrAbXbzGe55Tfi",
		MaxAttempts:              "3",
		RetryBaseDelay:           "2s",
		ConfirmationTimeout:      "30s",
		ConfirmationPollInterval: "1s",
	}, env.GatewayConfig)
}

func (s *LoadFromEnvTestSuite) Test_UnrelatedVariablesIgnored() {
	_ = os.Setenv("SGW_GATEWAY_ENDPOINT", "https://api.devnet.solana.com")
	_ = os.Setenv("HOME_SGW_GATEWAY", "ignored")
	_ = os.Setenv("UNRELATED", "ignored")

	env, err := loadFromEnv()

	s.Nil(err)
	s.Equal("https://api.devnet.solana.com", env.GatewayConfig.Endpoint)
	s.Equal("", env.GatewayConfig.LogFile)
}
