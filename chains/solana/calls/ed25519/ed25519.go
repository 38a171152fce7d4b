// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package ed25519 assembles the signature-verification instructions that
// precede a gateway operation. The gateway program never receives signatures
// as arguments; it introspects the transaction and expects one native
// ed25519-program instruction per signer, in the order the signers were
// supplied, directly before the main instruction.
package ed25519

import (
	"encoding/binary"

	"github.com/ChainSafe/solana-gateway/chains/solana/message"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// ProgramID is the native ed25519 signature-verification program.
var ProgramID = solana.MustPublicKeyFromBase58("Ed25519SigVerify111111111111111111111111111")

var ErrNoSignatures = errors.New("at least one signature is required")

const (
	SignatureLength = 64
	PublicKeyLength = 32

	// instructionIndexCurrent tells the ed25519 program that offsets refer
	// to the data of the verification instruction itself.
	instructionIndexCurrent = uint16(0xffff)

	headerLength  = 2
	offsetsLength = 14

	publicKeyOffset = headerLength + offsetsLength
	signatureOffset = publicKeyOffset + PublicKeyLength
	messageOffset   = signatureOffset + SignatureLength
)

// VerificationUnit is one signer's attestation over a message digest. The
// client never checks the signature itself; the ed25519 program does that
// on chain.
type VerificationUnit struct {
	Signature [SignatureLength]byte
	SignerKey [PublicKeyLength]byte
}

// VerificationInstructions packages units into ed25519-program instructions,
// one per unit, preserving the caller's order exactly. The gateway program
// discovers signatures by scanning preceding instructions positionally, so
// reordering here would attribute signatures to the wrong signers.
func VerificationInstructions(units []VerificationUnit, digest [message.DigestLength]byte) ([]solana.Instruction, error) {
	if len(units) == 0 {
		return nil, ErrNoSignatures
	}

	instructions := make([]solana.Instruction, 0, len(units))
	for _, unit := range units {
		instructions = append(instructions, solana.NewInstruction(
			ProgramID,
			solana.AccountMetaSlice{},
			instructionData(unit, digest),
		))
	}
	return instructions, nil
}

// instructionData lays out a single-signature verification payload:
// count || padding || offsets || pubkey || signature || digest, with every offset
// pointing back into this same instruction.
func instructionData(unit VerificationUnit, digest [message.DigestLength]byte) []byte {
	data := make([]byte, 0, messageOffset+len(digest))
	data = append(data, 1, 0)

	offsets := make([]byte, offsetsLength)
	binary.LittleEndian.PutUint16(offsets[0:], uint16(signatureOffset))
	binary.LittleEndian.PutUint16(offsets[2:], instructionIndexCurrent)
	binary.LittleEndian.PutUint16(offsets[4:], uint16(publicKeyOffset))
	binary.LittleEndian.PutUint16(offsets[6:], instructionIndexCurrent)
	binary.LittleEndian.PutUint16(offsets[8:], uint16(messageOffset))
	binary.LittleEndian.PutUint16(offsets[10:], uint16(len(digest)))
	binary.LittleEndian.PutUint16(offsets[12:], instructionIndexCurrent)
	data = append(data, offsets...)

	data = append(data, unit.SignerKey[:]...)
	data = append(data, unit.Signature[:]...)
	data = append(data, digest[:]...)
	return data
}
