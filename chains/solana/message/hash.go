// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package message

import (
	"github.com/ethereum/go-ethereum/crypto"
)

// DigestLength is the length of the signed message digest.
const DigestLength = 32

// Hash derives the digest signers attest to. The protocol mandates
// keccak-256 over the canonical bytes so signatures stay verifiable on the
// EVM chains in the network; the ledger's native sha-256 must not be
// substituted here.
func Hash(m *Message) ([DigestLength]byte, error) {
	var digest [DigestLength]byte

	data, err := m.Encode()
	if err != nil {
		return digest, err
	}

	copy(digest[:], crypto.Keccak256(data))
	return digest, nil
}
