// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package gateway builds instructions for the externally deployed gateway
// program. The program's account lists are positional, so every builder
// takes an explicit accounts struct listing each slot, including optional
// slots, and renders absent optionals as the program ID instead of dropping
// them.
package gateway

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"

	"github.com/ChainSafe/solana-gateway/chains/solana/message"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// OptionalAccount is an account slot the gateway program treats as
// optional. Absent slots still occupy their position in the account list.
type OptionalAccount struct {
	Address solana.PublicKey
	Present bool
}

func Some(address solana.PublicKey) OptionalAccount {
	return OptionalAccount{Address: address, Present: true}
}

func Absent() OptionalAccount {
	return OptionalAccount{}
}

// GatewayContract builds instructions against one deployment of the gateway
// program.
type GatewayContract struct {
	programID solana.PublicKey
}

func NewGatewayContract(programID solana.PublicKey) *GatewayContract {
	return &GatewayContract{programID: programID}
}

func (c *GatewayContract) ProgramID() solana.PublicKey {
	return c.programID
}

type InitializeAccounts struct {
	Gateway   solana.PublicKey
	Authority solana.PublicKey
}

// Initialize creates the gateway state account for a chain.
func (c *GatewayContract) Initialize(chainID uint64, accounts InitializeAccounts) (solana.Instruction, error) {
	log.Debug().Uint64("chainID", chainID).Msg("Building initialize instruction")
	data, err := encodeArgs("initialize", chainID)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(c.programID, solana.AccountMetaSlice{
		solana.Meta(accounts.Gateway).WRITE(),
		solana.Meta(accounts.Authority).WRITE().SIGNER(),
		solana.Meta(solana.SystemProgramID),
	}, data), nil
}

type SetSystemEnabledAccounts struct {
	Gateway   solana.PublicKey
	Authority solana.PublicKey
}

func (c *GatewayContract) SetSystemEnabled(enabled bool, accounts SetSystemEnabledAccounts) (solana.Instruction, error) {
	log.Debug().Bool("enabled", enabled).Msg("Building set_system_enabled instruction")
	data, err := encodeArgs("set_system_enabled", enabled)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(c.programID, solana.AccountMetaSlice{
		solana.Meta(accounts.Gateway).WRITE(),
		solana.Meta(accounts.Authority).SIGNER(),
	}, data), nil
}

type CreateTxPdaAccounts struct {
	Gateway   solana.PublicKey
	TxPDA     solana.PublicKey
	TxCounter solana.PublicKey
	Payer     solana.PublicKey
}

// CreateTxPda creates the replay guard record for an outbound message.
func (c *GatewayContract) CreateTxPda(txID bin.Uint128, destChainID uint64, accounts CreateTxPdaAccounts) (solana.Instruction, error) {
	log.Debug().
		Str("txID", txID.BigInt().String()).
		Uint64("destChainID", destChainID).
		Msg("Building create_tx_pda instruction")
	data, err := encodeArgs("create_tx_pda", txID, destChainID)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(c.programID, solana.AccountMetaSlice{
		solana.Meta(accounts.Gateway),
		solana.Meta(accounts.TxPDA).WRITE(),
		solana.Meta(accounts.TxCounter).WRITE(),
		solana.Meta(accounts.Payer).WRITE().SIGNER(),
		solana.Meta(solana.SystemProgramID),
	}, data), nil
}

type ProcessMessageAccounts struct {
	Gateway          solana.PublicKey
	TxPDA            solana.PublicKey
	Counter          solana.PublicKey
	ProtocolRegistry solana.PublicKey
	ChainRegistry    solana.PublicKey
	ProjectRegistry  solana.PublicKey
	Payer            solana.PublicKey
	GasPool          solana.PublicKey
	ClientProgram    OptionalAccount
	ClientFeeConfig  OptionalAccount
	ClientGasConfig  OptionalAccount
}

// ProcessMessage builds the main operation. The instruction data is the
// canonical message itself; signatures are not arguments, they are the
// ed25519 instructions placed directly before this one.
func (c *GatewayContract) ProcessMessage(m *message.Message, accounts ProcessMessageAccounts) (solana.Instruction, error) {
	log.Debug().
		Str("txID", m.TxID.BigInt().String()).
		Uint64("sourceChainID", m.SourceChainID).
		Msg("Building process_message instruction")
	encoded, err := m.Encode()
	if err != nil {
		return nil, err
	}
	data := append(discriminator("process_message"), encoded...)

	return solana.NewInstruction(c.programID, solana.AccountMetaSlice{
		solana.Meta(accounts.Gateway).WRITE(),
		solana.Meta(accounts.TxPDA).WRITE(),
		solana.Meta(accounts.Counter).WRITE(),
		solana.Meta(accounts.ProtocolRegistry),
		solana.Meta(accounts.ChainRegistry),
		solana.Meta(accounts.ProjectRegistry),
		solana.Meta(accounts.Payer).WRITE().SIGNER(),
		solana.Meta(solana.SystemProgramID),
		solana.Meta(solana.SysVarInstructionsPubkey),
		c.optionalMeta(accounts.ClientProgram, false),
		c.optionalMeta(accounts.ClientFeeConfig, true),
		c.optionalMeta(accounts.ClientGasConfig, true),
		solana.Meta(accounts.GasPool).WRITE(),
	}, data), nil
}

type SignerRegistryAccounts struct {
	Gateway   solana.PublicKey
	Registry  solana.PublicKey
	Authority solana.PublicKey
}

func (c *GatewayContract) InitializeSignerRegistry(registryType uint8, chainID uint64, accounts SignerRegistryAccounts) (solana.Instruction, error) {
	log.Debug().
		Uint8("registryType", registryType).
		Uint64("chainID", chainID).
		Msg("Building initialize_signer_registry instruction")
	data, err := encodeArgs("initialize_signer_registry", registryType, chainID)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(c.programID, c.registryMetas(accounts), data), nil
}

// AddSigner registers a signer key in a registry. Keys are opaque since
// signers on other chains use their native address formats.
func (c *GatewayContract) AddSigner(registryType uint8, chainID uint64, signer []byte, accounts SignerRegistryAccounts) (solana.Instruction, error) {
	if len(signer) > message.MaxAddressLen {
		return nil, &message.FieldTooLargeError{Field: "signer", Length: len(signer), Limit: message.MaxAddressLen}
	}
	log.Debug().
		Uint8("registryType", registryType).
		Uint64("chainID", chainID).
		Msg("Building add_signer instruction")
	data, err := encodeArgs("add_signer", registryType, chainID, signer)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(c.programID, c.registryMetas(accounts), data), nil
}

func (c *GatewayContract) RemoveSigner(registryType uint8, chainID uint64, signer []byte, accounts SignerRegistryAccounts) (solana.Instruction, error) {
	if len(signer) > message.MaxAddressLen {
		return nil, &message.FieldTooLargeError{Field: "signer", Length: len(signer), Limit: message.MaxAddressLen}
	}
	log.Debug().
		Uint8("registryType", registryType).
		Uint64("chainID", chainID).
		Msg("Building remove_signer instruction")
	data, err := encodeArgs("remove_signer", registryType, chainID, signer)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(c.programID, c.registryMetas(accounts), data), nil
}

type ConfigAccounts struct {
	Gateway   solana.PublicKey
	Config    solana.PublicKey
	Authority solana.PublicKey
}

func (c *GatewayContract) SetFeeConfig(fee uint64, accounts ConfigAccounts) (solana.Instruction, error) {
	return c.setConfig("set_fee_config", fee, accounts)
}

func (c *GatewayContract) SetGasConfig(gasPrice uint64, accounts ConfigAccounts) (solana.Instruction, error) {
	return c.setConfig("set_gas_config", gasPrice, accounts)
}

type ClientConfigAccounts struct {
	Gateway       solana.PublicKey
	Config        solana.PublicKey
	ClientProgram solana.PublicKey
	Authority     solana.PublicKey
}

func (c *GatewayContract) SetClientFeeConfig(fee uint64, accounts ClientConfigAccounts) (solana.Instruction, error) {
	return c.setClientConfig("set_client_fee_config", fee, accounts)
}

func (c *GatewayContract) SetClientGasConfig(gasPrice uint64, accounts ClientConfigAccounts) (solana.Instruction, error) {
	return c.setClientConfig("set_client_gas_config", gasPrice, accounts)
}

type GasPoolAccounts struct {
	Gateway   solana.PublicKey
	GasPool   solana.PublicKey
	Authority solana.PublicKey
}

func (c *GatewayContract) InitializeGasPool(accounts GasPoolAccounts) (solana.Instruction, error) {
	log.Debug().Msg("Building initialize_gas_pool instruction")
	data, err := encodeArgs("initialize_gas_pool")
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(c.programID, solana.AccountMetaSlice{
		solana.Meta(accounts.Gateway),
		solana.Meta(accounts.GasPool).WRITE(),
		solana.Meta(accounts.Authority).WRITE().SIGNER(),
		solana.Meta(solana.SystemProgramID),
	}, data), nil
}

func (c *GatewayContract) setConfig(name string, value uint64, accounts ConfigAccounts) (solana.Instruction, error) {
	log.Debug().Uint64("value", value).Msgf("Building %s instruction", name)
	data, err := encodeArgs(name, value)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(c.programID, solana.AccountMetaSlice{
		solana.Meta(accounts.Gateway),
		solana.Meta(accounts.Config).WRITE(),
		solana.Meta(accounts.Authority).WRITE().SIGNER(),
		solana.Meta(solana.SystemProgramID),
	}, data), nil
}

func (c *GatewayContract) setClientConfig(name string, value uint64, accounts ClientConfigAccounts) (solana.Instruction, error) {
	log.Debug().Uint64("value", value).Msgf("Building %s instruction", name)
	data, err := encodeArgs(name, value)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(c.programID, solana.AccountMetaSlice{
		solana.Meta(accounts.Gateway),
		solana.Meta(accounts.Config).WRITE(),
		solana.Meta(accounts.ClientProgram),
		solana.Meta(accounts.Authority).WRITE().SIGNER(),
		solana.Meta(solana.SystemProgramID),
	}, data), nil
}

func (c *GatewayContract) registryMetas(accounts SignerRegistryAccounts) solana.AccountMetaSlice {
	return solana.AccountMetaSlice{
		solana.Meta(accounts.Gateway),
		solana.Meta(accounts.Registry).WRITE(),
		solana.Meta(accounts.Authority).WRITE().SIGNER(),
		solana.Meta(solana.SystemProgramID),
	}
}

// optionalMeta keeps absent optional slots positional by pointing them at
// the gateway program itself, the convention the program checks for.
func (c *GatewayContract) optionalMeta(account OptionalAccount, writable bool) *solana.AccountMeta {
	if !account.Present {
		return solana.Meta(c.programID)
	}
	meta := solana.Meta(account.Address)
	if writable {
		meta = meta.WRITE()
	}
	return meta
}

// discriminator derives the 8-byte instruction tag the gateway program
// dispatches on.
func discriminator(name string) []byte {
	hash := sha256.Sum256([]byte("global:" + name))
	return hash[:8]
}

// encodeArgs serializes instruction arguments in declaration order behind
// the discriminator.
func encodeArgs(name string, args ...interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(discriminator(name))

	enc := bin.NewBorshEncoder(buf)
	for _, arg := range args {
		var err error
		switch v := arg.(type) {
		case bool:
			err = enc.WriteBool(v)
		case uint8:
			err = enc.WriteByte(v)
		case uint64:
			err = enc.WriteUint64(v, binary.LittleEndian)
		case bin.Uint128:
			err = enc.WriteUint128(v, binary.LittleEndian)
		case []byte:
			err = enc.WriteBytes(v, true)
		default:
			return nil, errors.Errorf("unsupported argument type %T", arg)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed encoding %s argument", name)
		}
	}
	return buf.Bytes(), nil
}
