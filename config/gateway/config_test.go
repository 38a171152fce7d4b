// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package gateway_test

import (
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/solana-gateway/config/gateway"
)

type NewGatewayConfigTestSuite struct {
	suite.Suite

	rawConfig gateway.RawGatewayConfig
}

func TestRunNewGatewayConfigTestSuite(t *testing.T) {
	suite.Run(t, new(NewGatewayConfigTestSuite))
}

func (s *NewGatewayConfigTestSuite) SetupTest() {
	s.rawConfig = gateway.RawGatewayConfig{
		LogLevel:                 "info",
		LogFile:                  "out.log",
		Endpoint:                 "https://api.devnet.solana.com",
		ChainID:                  "43113",
		GatewayProgram:           "CVr35B5gmPuk5gKnMTBXoQBKjnap55Y9XSGmk5XZ47ki",
		MaxAttempts:              "5",
		RetryBaseDelay:           "5s",
		ConfirmationTimeout:      "1m",
		ConfirmationPollInterval: "5s",
	}
}

func (s *NewGatewayConfigTestSuite) Test_MissingEndpoint() {
	s.rawConfig.Endpoint = ""

	_, err := gateway.NewGatewayConfig(s.rawConfig)

	s.NotNil(err)
}

func (s *NewGatewayConfigTestSuite) Test_InvalidLogLevel() {
	s.rawConfig.LogLevel = "loud"

	_, err := gateway.NewGatewayConfig(s.rawConfig)

	s.NotNil(err)
}

func (s *NewGatewayConfigTestSuite) Test_InvalidGatewayProgram() {
	s.rawConfig.GatewayProgram = "not-base58-0OIl"

	_, err := gateway.NewGatewayConfig(s.rawConfig)

	s.NotNil(err)
}

func (s *NewGatewayConfigTestSuite) Test_ZeroChainID() {
	s.rawConfig.ChainID = "0"

	_, err := gateway.NewGatewayConfig(s.rawConfig)

	s.NotNil(err)
}

func (s *NewGatewayConfigTestSuite) Test_InvalidRetryBaseDelay() {
	s.rawConfig.RetryBaseDelay = "fast"

	_, err := gateway.NewGatewayConfig(s.rawConfig)

	s.NotNil(err)
}

func (s *NewGatewayConfigTestSuite) Test_OptionalAddressesDefaultToZero() {
	cnf, err := gateway.NewGatewayConfig(s.rawConfig)

	s.Nil(err)
	s.True(cnf.ClientProgram.IsZero())
	s.True(cnf.GasServiceProgram.IsZero())
	s.True(cnf.LookupTable.IsZero())
}

func (s *NewGatewayConfigTestSuite) Test_ExecutorConfigProjection() {
	s.rawConfig.ClientProgram = "7BiqCtMt6oXySUYPid8NkCYSRBd4miF8W6Kjfs9mRSrw"
	s.rawConfig.LookupTable = "6DLHDLXeHfS7rKAjgq8bSgtZFnTezLfrAbXbzGe55Tfi"

	cnf, err := gateway.NewGatewayConfig(s.rawConfig)
	s.Nil(err)

	execCnf := cnf.ExecutorConfig()

	s.Equal(uint64(43113), execCnf.ChainID)
	s.Equal(solana.MustPublicKeyFromBase58("CVr35B5gmPuk5gKnMTBXoQBKjnap55Y9XSGmk5XZ47ki"), execCnf.GatewayProgramID)
	s.Equal(solana.MustPublicKeyFromBase58("7BiqCtMt6oXySUYPid8NkCYSRBd4miF8W6Kjfs9mRSrw"), execCnf.ClientProgramID)
	s.Equal(solana.MustPublicKeyFromBase58("6DLHDLXeHfS7rKAjgq8bSgtZFnTezLfrAbXbzGe55Tfi"), execCnf.LookupTableAddress)
	s.Equal(5, execCnf.MaxAttempts)
	s.Equal(5*time.Second, execCnf.RetryBaseDelay)
	s.Equal(time.Minute, execCnf.ConfirmationTimeout)
	s.Equal(5*time.Second, execCnf.ConfirmationPollInterval)
}
