// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package message

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/pkg/errors"
)

const (
	// MaxAddressLen bounds sender and recipient. Addresses are opaque since
	// formats differ per chain (20 bytes EVM, 32 bytes Solana).
	MaxAddressLen = 64
	// MaxPayloadLen bounds onChainData and offChainData.
	MaxPayloadLen = 1024
)

var (
	ErrZeroChainID     = errors.New("chain ID cannot be zero")
	ErrTruncatedBuffer = errors.New("buffer ends before declared field length")
	ErrTrailingBytes   = errors.New("trailing bytes after last field")
)

// FieldTooLargeError is returned when a variable-length field exceeds the
// bound the gateway program enforces on deserialization.
type FieldTooLargeError struct {
	Field  string
	Length int
	Limit  int
}

func (e *FieldTooLargeError) Error() string {
	return fmt.Sprintf("field %s is %d bytes, maximum is %d", e.Field, e.Length, e.Limit)
}

// Message is a single cross-chain message. Its wire format has to match the
// gateway program's deserializer byte for byte: txId(16) || sourceChainId(8) ||
// destChainId(8) followed by the four variable fields, each prefixed with a
// u32 little-endian length. This is Borsh for this exact field sequence.
type Message struct {
	TxID          bin.Uint128
	SourceChainID uint64
	DestChainID   uint64
	Sender        []byte
	Recipient     []byte
	OnChainData   []byte
	OffChainData  []byte
}

func NewMessage(txID bin.Uint128, sourceChainID, destChainID uint64, sender, recipient, onChainData, offChainData []byte) *Message {
	return &Message{
		TxID:          txID,
		SourceChainID: sourceChainID,
		DestChainID:   destChainID,
		Sender:        sender,
		Recipient:     recipient,
		OnChainData:   onChainData,
		OffChainData:  offChainData,
	}
}

// Validate checks every size bound before serialization. A violated bound is
// a construction-time failure, never a silent truncation.
func (m *Message) Validate() error {
	if m.SourceChainID == 0 || m.DestChainID == 0 {
		return ErrZeroChainID
	}

	bounds := []struct {
		field string
		data  []byte
		limit int
	}{
		{"sender", m.Sender, MaxAddressLen},
		{"recipient", m.Recipient, MaxAddressLen},
		{"onChainData", m.OnChainData, MaxPayloadLen},
		{"offChainData", m.OffChainData, MaxPayloadLen},
	}
	for _, b := range bounds {
		if len(b.data) > b.limit {
			return &FieldTooLargeError{Field: b.field, Length: len(b.data), Limit: b.limit}
		}
	}
	return nil
}

// Encode serializes the message into the gateway program wire format.
func (m *Message) Encode() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	enc := bin.NewBorshEncoder(buf)
	if err := enc.WriteUint128(m.TxID, binary.LittleEndian); err != nil {
		return nil, errors.Wrap(err, "failed encoding txId")
	}
	if err := enc.WriteUint64(m.SourceChainID, binary.LittleEndian); err != nil {
		return nil, errors.Wrap(err, "failed encoding sourceChainId")
	}
	if err := enc.WriteUint64(m.DestChainID, binary.LittleEndian); err != nil {
		return nil, errors.Wrap(err, "failed encoding destChainId")
	}
	for _, field := range [][]byte{m.Sender, m.Recipient, m.OnChainData, m.OffChainData} {
		if err := enc.WriteBytes(field, true); err != nil {
			return nil, errors.Wrap(err, "failed encoding variable field")
		}
	}
	return buf.Bytes(), nil
}

// Decode deserializes a message, consuming the input exactly once. Inputs
// shorter than a declared length fail with ErrTruncatedBuffer and leftover
// bytes fail with ErrTrailingBytes.
func Decode(data []byte) (*Message, error) {
	dec := bin.NewBorshDecoder(data)
	m := &Message{}

	var err error
	if m.TxID, err = dec.ReadUint128(binary.LittleEndian); err != nil {
		return nil, errors.Wrap(ErrTruncatedBuffer, "txId")
	}
	if m.SourceChainID, err = dec.ReadUint64(binary.LittleEndian); err != nil {
		return nil, errors.Wrap(ErrTruncatedBuffer, "sourceChainId")
	}
	if m.DestChainID, err = dec.ReadUint64(binary.LittleEndian); err != nil {
		return nil, errors.Wrap(ErrTruncatedBuffer, "destChainId")
	}
	fields := []struct {
		name string
		dst  *[]byte
	}{
		{"sender", &m.Sender},
		{"recipient", &m.Recipient},
		{"onChainData", &m.OnChainData},
		{"offChainData", &m.OffChainData},
	}
	for _, f := range fields {
		if *f.dst, err = dec.ReadByteSlice(); err != nil {
			return nil, errors.Wrap(ErrTruncatedBuffer, f.name)
		}
	}

	if dec.Remaining() > 0 {
		return nil, errors.Wrapf(ErrTrailingBytes, "%d bytes", dec.Remaining())
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
