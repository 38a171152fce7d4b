// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package message_test

import (
	"encoding/hex"
	"testing"

	"github.com/ChainSafe/solana-gateway/chains/solana/message"
	bin "github.com/gagliardetto/binary"
	"github.com/stretchr/testify/suite"
)

type HashTestSuite struct {
	suite.Suite
}

func TestRunHashTestSuite(t *testing.T) {
	suite.Run(t, new(HashTestSuite))
}

func (s *HashTestSuite) Test_Hash_Deterministic() {
	m := validMessage()

	first, err := message.Hash(m)
	s.Nil(err)
	second, err := message.Hash(m)
	s.Nil(err)

	s.Equal(first, second)
}

func (s *HashTestSuite) Test_Hash_KnownVector() {
	expected, err := hex.DecodeString("99b8b553bb74ceb07fdaa759891cf6679c281b8d71a9d9c1065a41dc7f363b01")
	s.Nil(err)

	digest, hashErr := message.Hash(validMessage())

	s.Nil(hashErr)
	s.Equal(expected, digest[:])
}

func (s *HashTestSuite) Test_Hash_AdjacentInputsDiffer() {
	base := validMessage()
	baseDigest, err := message.Hash(base)
	s.Nil(err)

	mutations := []func(m *message.Message){
		func(m *message.Message) { m.TxID = bin.Uint128{Lo: 2} },
		func(m *message.Message) { m.SourceChainID++ },
		func(m *message.Message) { m.DestChainID-- },
		func(m *message.Message) { m.Sender[0] = 1 },
		func(m *message.Message) { m.Recipient[31] = 1 },
		func(m *message.Message) { m.OnChainData[95] ^= 0xff },
		func(m *message.Message) { m.OffChainData = []byte{0} },
	}
	for i, mutate := range mutations {
		m := validMessage()
		mutate(m)

		digest, err := message.Hash(m)

		s.Nil(err)
		s.NotEqual(baseDigest, digest, "mutation %d", i)
	}
}

func (s *HashTestSuite) Test_Hash_InvalidMessageFails() {
	m := validMessage()
	m.Sender = make([]byte, message.MaxAddressLen+1)

	_, err := message.Hash(m)

	s.NotNil(err)
}
