// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package accounts derives every program account the gateway client touches.
// All derivations are pure functions over public inputs: same seeds, same
// program, same address. Nothing here is cached and nothing goes over the
// network, so callers recompute instead of risking stale addresses.
package accounts

import (
	"encoding/binary"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// RegistryType selects one of the gateway program's signer registries. The
// ordinals are part of the program's account derivation and have to match
// its enum exactly.
type RegistryType uint8

const (
	RegistryTypeProtocol RegistryType = 0
	RegistryTypeChain    RegistryType = 1
	RegistryTypeProject  RegistryType = 2
)

const (
	gatewaySeed         = "gateway"
	txSeed              = "tx"
	counterSeed         = "counter"
	txCounterSeed       = "tx_counter"
	signerRegistrySeed  = "signer_registry"
	feeConfigSeed       = "fee_config"
	clientFeeConfigSeed = "client_fee_config"
	gasConfigSeed       = "gas_config"
	clientGasConfigSeed = "client_gas_config"
	gasPoolSeed         = "gas_pool"
)

// Gateway derives the gateway state account for a chain.
func Gateway(programID solana.PublicKey, chainID uint64) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		[]byte(gatewaySeed),
		uint64LE(chainID),
	}, programID)
}

// TxPDA derives the replay guard record for a (source chain, txId) pair. Its
// existence on chain is what prevents a message from being processed twice.
func TxPDA(programID solana.PublicKey, sourceChainID uint64, txID bin.Uint128) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		[]byte(txSeed),
		uint64LE(sourceChainID),
		uint128LE(txID),
	}, programID)
}

// Counter derives the inbound message counter for a source chain.
func Counter(programID solana.PublicKey, sourceChainID uint64) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		[]byte(counterSeed),
		uint64LE(sourceChainID),
	}, programID)
}

// TxCounter derives the outbound transaction counter for a chain.
func TxCounter(programID solana.PublicKey, chainID uint64) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		[]byte(txCounterSeed),
		uint64LE(chainID),
	}, programID)
}

// SignerRegistry derives the signer registry of the given type for a chain.
func SignerRegistry(programID solana.PublicKey, registryType RegistryType, chainID uint64) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		[]byte(signerRegistrySeed),
		{byte(registryType)},
		uint64LE(chainID),
	}, programID)
}

// FeeConfig derives the protocol fee configuration account.
func FeeConfig(programID, gateway solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		[]byte(feeConfigSeed),
		gateway.Bytes(),
	}, programID)
}

// ClientFeeConfig derives the per-client fee configuration account.
func ClientFeeConfig(programID, gateway, clientProgram solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		[]byte(clientFeeConfigSeed),
		gateway.Bytes(),
		clientProgram.Bytes(),
	}, programID)
}

// GasConfig derives the protocol gas configuration account.
func GasConfig(programID, gateway solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		[]byte(gasConfigSeed),
		gateway.Bytes(),
	}, programID)
}

// ClientGasConfig derives the per-client gas configuration account.
func ClientGasConfig(programID, gateway, clientProgram solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		[]byte(clientGasConfigSeed),
		gateway.Bytes(),
		clientProgram.Bytes(),
	}, programID)
}

// GasPool derives the gas pool account funds are drawn from.
func GasPool(programID, gateway solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		[]byte(gasPoolSeed),
		gateway.Bytes(),
	}, programID)
}

func uint64LE(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func uint128LE(v bin.Uint128) []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint64(b[:8], v.Lo)
	binary.LittleEndian.PutUint64(b[8:], v.Hi)
	return b
}
