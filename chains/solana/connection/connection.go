// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package connection

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	addresslookuptable "github.com/gagliardetto/solana-go/programs/address-lookup-table"
)

// Connection exposes the RPC surface the executor needs. Endpoint selection
// and connection bootstrapping stay with the caller.
type Connection struct {
	client *rpc.Client
}

func NewConnection(endpoint string) *Connection {
	log.Debug().Str("url", endpoint).Msg("Connecting to solana RPC")
	return &Connection{
		client: rpc.New(endpoint),
	}
}

// LatestBlockhash fetches the reference point each submission envelope is
// bound to.
func (c *Connection) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	result, err := c.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, errors.Wrap(err, "failed fetching latest blockhash")
	}
	return result.Value.Blockhash, nil
}

func (c *Connection) SubmitTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := c.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed submitting transaction")
	}
	return sig, nil
}

// SignatureStatus returns the ledger-reported status of a submitted
// transaction, or nil while the ledger does not know it yet.
func (c *Connection) SignatureStatus(ctx context.Context, sig solana.Signature) (*rpc.SignatureStatusesResult, error) {
	result, err := c.client.GetSignatureStatuses(ctx, true, sig)
	if err != nil {
		return nil, errors.Wrap(err, "failed fetching signature status")
	}
	if len(result.Value) == 0 {
		return nil, nil
	}
	return result.Value[0], nil
}

// AccountInfo fetches raw account state. A missing account returns nil
// without an error so existence checks stay one call.
func (c *Connection) AccountInfo(ctx context.Context, account solana.PublicKey) (*rpc.Account, error) {
	result, err := c.client.GetAccountInfo(ctx, account)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed fetching account %s", account)
	}
	return result.Value, nil
}

// LookupTable fetches and decodes a published address lookup table.
func (c *Connection) LookupTable(ctx context.Context, address solana.PublicKey) (solana.PublicKeySlice, error) {
	account, err := c.AccountInfo(ctx, address)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors.Errorf("lookup table %s does not exist", address)
	}

	state, err := addresslookuptable.DecodeAddressLookupTableState(account.Data.GetBinary())
	if err != nil {
		return nil, errors.Wrapf(err, "failed decoding lookup table %s", address)
	}
	return state.Addresses, nil
}
