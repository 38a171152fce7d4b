// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package message_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/ChainSafe/solana-gateway/chains/solana/message"
	bin "github.com/gagliardetto/binary"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type CodecTestSuite struct {
	suite.Suite
}

func TestRunCodecTestSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

func validMessage() *message.Message {
	return message.NewMessage(
		bin.Uint128{Lo: 1},
		43113,
		9999999999999999999,
		make([]byte, 20),
		make([]byte, 32),
		sequentialBytes(96),
		[]byte{},
	)
}

func sequentialBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func (s *CodecTestSuite) assertMessagesEqual(expected, actual *message.Message) {
	s.Equal(expected.TxID.Lo, actual.TxID.Lo)
	s.Equal(expected.TxID.Hi, actual.TxID.Hi)
	s.Equal(expected.SourceChainID, actual.SourceChainID)
	s.Equal(expected.DestChainID, actual.DestChainID)
	s.Equal(expected.Sender, actual.Sender)
	s.Equal(expected.Recipient, actual.Recipient)
	s.Equal(expected.OnChainData, actual.OnChainData)
	s.Equal(expected.OffChainData, actual.OffChainData)
}

func (s *CodecTestSuite) Test_RoundTrip() {
	m := validMessage()

	data, err := m.Encode()
	s.Nil(err)
	decoded, err := message.Decode(data)
	s.Nil(err)

	s.assertMessagesEqual(m, decoded)
}

func (s *CodecTestSuite) Test_RoundTrip_EmptyVariableFields() {
	m := message.NewMessage(bin.Uint128{Lo: 42, Hi: 7}, 1, 2, []byte{}, []byte{}, []byte{}, []byte{})

	data, err := m.Encode()
	s.Nil(err)
	s.Equal(16+8+8+4+4+4+4, len(data))

	decoded, err := message.Decode(data)
	s.Nil(err)
	s.assertMessagesEqual(m, decoded)
}

func (s *CodecTestSuite) Test_RoundTrip_MaximumLengthFields() {
	m := message.NewMessage(
		bin.Uint128{Lo: ^uint64(0), Hi: ^uint64(0)},
		1,
		2,
		bytes.Repeat([]byte{0xaa}, message.MaxAddressLen),
		bytes.Repeat([]byte{0xbb}, message.MaxAddressLen),
		bytes.Repeat([]byte{0xcc}, message.MaxPayloadLen),
		bytes.Repeat([]byte{0xdd}, message.MaxPayloadLen),
	)

	data, err := m.Encode()
	s.Nil(err)
	decoded, err := message.Decode(data)
	s.Nil(err)

	s.assertMessagesEqual(m, decoded)
}

func (s *CodecTestSuite) Test_Encode_FieldOverBoundFails() {
	overBound := []struct {
		field  string
		mutate func(m *message.Message)
		limit  int
	}{
		{"sender", func(m *message.Message) { m.Sender = make([]byte, message.MaxAddressLen+1) }, message.MaxAddressLen},
		{"recipient", func(m *message.Message) { m.Recipient = make([]byte, message.MaxAddressLen+1) }, message.MaxAddressLen},
		{"onChainData", func(m *message.Message) { m.OnChainData = make([]byte, message.MaxPayloadLen+1) }, message.MaxPayloadLen},
		{"offChainData", func(m *message.Message) { m.OffChainData = make([]byte, message.MaxPayloadLen+1) }, message.MaxPayloadLen},
	}

	for _, tc := range overBound {
		m := validMessage()
		tc.mutate(m)

		_, err := m.Encode()

		var fieldErr *message.FieldTooLargeError
		s.True(errors.As(err, &fieldErr), tc.field)
		s.Equal(tc.field, fieldErr.Field)
		s.Equal(tc.limit+1, fieldErr.Length)
		s.Equal(tc.limit, fieldErr.Limit)
	}
}

func (s *CodecTestSuite) Test_Encode_FieldAtBoundSucceeds() {
	m := validMessage()
	m.Sender = make([]byte, message.MaxAddressLen)
	m.Recipient = make([]byte, message.MaxAddressLen)
	m.OnChainData = make([]byte, message.MaxPayloadLen)
	m.OffChainData = make([]byte, message.MaxPayloadLen)

	_, err := m.Encode()

	s.Nil(err)
}

func (s *CodecTestSuite) Test_Encode_ZeroChainIDFails() {
	m := validMessage()
	m.SourceChainID = 0

	_, err := m.Encode()

	s.True(errors.Is(err, message.ErrZeroChainID))
}

func (s *CodecTestSuite) Test_Decode_TruncatedBuffer() {
	data, err := validMessage().Encode()
	s.Nil(err)

	for _, cut := range []int{1, 15, 16, 31, 35, len(data) - 1} {
		_, err := message.Decode(data[:cut])

		s.True(errors.Is(err, message.ErrTruncatedBuffer), "cut at %d", cut)
	}
}

func (s *CodecTestSuite) Test_Decode_TrailingBytes() {
	data, err := validMessage().Encode()
	s.Nil(err)

	_, err = message.Decode(append(data, 0x00))

	s.True(errors.Is(err, message.ErrTrailingBytes))
}

// Pins the exact wire format the gateway program deserializes. Any layout
// drift breaks this literal vector.
func (s *CodecTestSuite) Test_Encode_KnownVector() {
	expected, err := hex.DecodeString(
		"0100000000000000000000000000000069a8000000000000ffffe7890423c78a" +
			"1400000000000000000000000000000000000000000000002000000000000000" +
			"0000000000000000000000000000000000000000000000000000000060000000" +
			"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f" +
			"202122232425262728292a2b2c2d2e2f303132333435363738393a3b3c3d3e3f" +
			"404142434445464748494a4b4c4d4e4f505152535455565758595a5b5c5d5e5f" +
			"00000000")
	s.Nil(err)
	s.Equal(196, len(expected))

	data, encodeErr := validMessage().Encode()

	s.Nil(encodeErr)
	s.Equal(expected, data)

	decoded, decodeErr := message.Decode(expected)
	s.Nil(decodeErr)
	s.assertMessagesEqual(validMessage(), decoded)
}
