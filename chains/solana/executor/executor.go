// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/solana-gateway/chains/solana/calls/accounts"
	"github.com/ChainSafe/solana-gateway/chains/solana/calls/ed25519"
	"github.com/ChainSafe/solana-gateway/chains/solana/calls/gateway"
	"github.com/ChainSafe/solana-gateway/chains/solana/message"
	"github.com/ChainSafe/solana-gateway/store"
)

// SubmissionState tracks one submission through its lifecycle. Each
// submission moves linearly Building → Submitted → Confirming and ends in
// Confirmed or Failed.
type SubmissionState string

const (
	StateBuilding   SubmissionState = "building"
	StateSubmitted  SubmissionState = "submitted"
	StateConfirming SubmissionState = "confirming"
	StateConfirmed  SubmissionState = "confirmed"
	StateFailed     SubmissionState = "failed"
)

//go:generate mockgen -source=./executor.go -destination=./mock/executor.go -package mock_executor

// Connection is the RPC surface the executor submits through.
type Connection interface {
	LatestBlockhash(ctx context.Context) (solana.Hash, error)
	SubmitTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
	SignatureStatus(ctx context.Context, sig solana.Signature) (*rpc.SignatureStatusesResult, error)
	AccountInfo(ctx context.Context, account solana.PublicKey) (*rpc.Account, error)
	LookupTable(ctx context.Context, address solana.PublicKey) (solana.PublicKeySlice, error)
}

// SubmissionStorer persists submission outcomes so operators can resolve
// submissions whose outcome the confirmation poll never observed.
type SubmissionStorer interface {
	StoreSubmissionStatus(sourceChainID uint64, txID string, status store.SubmissionStatus) error
	SubmissionStatus(sourceChainID uint64, txID string) (store.SubmissionStatus, error)
}

// Config is resolved once by the caller's bootstrap layer and passed in
// whole; the executor never reads ambient state.
type Config struct {
	ChainID             uint64
	GatewayProgramID    solana.PublicKey
	ClientProgramID     solana.PublicKey
	GasServiceProgramID solana.PublicKey
	LookupTableAddress  solana.PublicKey

	MaxAttempts              int
	RetryBaseDelay           time.Duration
	ConfirmationTimeout      time.Duration
	ConfirmationPollInterval time.Duration
}

// Executor sequences submission plans into network envelopes, submits them
// and retries transient failures. Concurrent submissions share only the
// write-once lookup table; everything else is per call.
type Executor struct {
	conn     Connection
	contract *gateway.GatewayContract
	cfg      Config
	payer    solana.PrivateKey
	storer   SubmissionStorer

	lookupTable solana.PublicKeySlice
}

func NewExecutor(
	conn Connection,
	contract *gateway.GatewayContract,
	cfg Config,
	payer solana.PrivateKey,
	storer SubmissionStorer,
) *Executor {
	return &Executor{
		conn:     conn,
		contract: contract,
		cfg:      cfg,
		payer:    payer,
		storer:   storer,
	}
}

// LoadLookupTable fetches the published address table the compact variant
// compresses against. The gas service program missing from the table means
// an older deployment; that degrades compression but is not fatal.
func (e *Executor) LoadLookupTable(ctx context.Context) error {
	if e.cfg.LookupTableAddress.IsZero() {
		return errors.New("no lookup table address configured")
	}

	table, err := e.conn.LookupTable(ctx, e.cfg.LookupTableAddress)
	if err != nil {
		return err
	}

	if !containsAccount(table, e.cfg.GasServiceProgramID) {
		log.Warn().
			Str("lookupTable", e.cfg.LookupTableAddress.String()).
			Str("gasService", e.cfg.GasServiceProgramID.String()).
			Msg("Lookup table does not contain the gas service program, table is from an older deployment")
	}

	e.lookupTable = table
	log.Debug().
		Str("lookupTable", e.cfg.LookupTableAddress.String()).
		Int("accounts", len(table)).
		Msg("Loaded address lookup table")
	return nil
}

// ProcessMessage runs the full inbound flow: derive the digest, package the
// verification units, resolve every account the operation touches and
// submit the plan.
func (e *Executor) ProcessMessage(ctx context.Context, m *message.Message, units []ed25519.VerificationUnit, variant Variant) (solana.Signature, error) {
	digest, err := message.Hash(m)
	if err != nil {
		return solana.Signature{}, err
	}

	verifications, err := ed25519.VerificationInstructions(units, digest)
	if err != nil {
		return solana.Signature{}, err
	}

	operationAccounts, err := e.processMessageAccounts(ctx, m)
	if err != nil {
		return solana.Signature{}, err
	}

	operation, err := e.contract.ProcessMessage(m, operationAccounts)
	if err != nil {
		return solana.Signature{}, err
	}

	plan, err := NewSubmissionPlan(verifications, operation, variant)
	if err != nil {
		return solana.Signature{}, err
	}

	txID := m.TxID.BigInt().String()
	e.storeStatus(m.SourceChainID, txID, store.PendingSubmission)
	sig, err := e.Execute(ctx, plan)
	e.storeStatus(m.SourceChainID, txID, outcomeStatus(err))
	return sig, err
}

// Execute submits a plan with retry and backoff. Non-retryable rejections
// surface immediately with the program's own error text preserved; unknown
// outcomes are never blindly retried.
func (e *Executor) Execute(ctx context.Context, plan *SubmissionPlan) (solana.Signature, error) {
	if plan.Variant() == VariantCompact && len(e.lookupTable) == 0 {
		return solana.Signature{}, ErrLookupTableNotLoaded
	}

	delay := e.cfg.RetryBaseDelay
	var lastErr error
	for attempt := 1; attempt <= e.cfg.MaxAttempts; attempt++ {
		sig, err := e.submit(ctx, plan)
		if err == nil {
			return sig, nil
		}
		if !Retryable(err) {
			return sig, err
		}

		lastErr = err
		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("maxAttempts", e.cfg.MaxAttempts).
			Msg("Submission attempt failed")
		if attempt < e.cfg.MaxAttempts {
			time.Sleep(delay)
			delay *= 2
		}
	}
	return solana.Signature{}, &ExhaustedRetriesError{Attempts: e.cfg.MaxAttempts, Last: lastErr}
}

// submit runs one Building → Submitted → Confirming pass. Each attempt
// rebuilds only the envelope: a fresh blockhash binding around the plan's
// unchanged instruction list.
func (e *Executor) submit(ctx context.Context, plan *SubmissionPlan) (solana.Signature, error) {
	log.Debug().Str("state", string(StateBuilding)).Msg("Building submission envelope")
	blockhash, err := e.conn.LatestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, err
	}

	opts := []solana.TransactionOption{solana.TransactionPayer(e.payer.PublicKey())}
	if plan.Variant() == VariantCompact {
		opts = append(opts, solana.TransactionAddressTables(map[solana.PublicKey]solana.PublicKeySlice{
			e.cfg.LookupTableAddress: e.lookupTable,
		}))
	}

	tx, err := solana.NewTransaction(plan.Instructions(), blockhash, opts...)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed building transaction")
	}
	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(e.payer.PublicKey()) {
			return &e.payer
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed signing transaction")
	}

	sig, err := e.conn.SubmitTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, err
	}
	log.Debug().
		Str("state", string(StateSubmitted)).
		Str("signature", sig.String()).
		Msg("Submitted transaction")

	return sig, e.confirm(ctx, sig)
}

// confirm blocks until the ledger reports the envelope's outcome. An
// execution error inside an accepted envelope is a failure; a poll timeout
// is an unknown outcome, surfaced distinctly.
func (e *Executor) confirm(ctx context.Context, sig solana.Signature) error {
	log.Debug().Str("state", string(StateConfirming)).Str("signature", sig.String()).Msg("Awaiting confirmation")
	ticker := time.NewTicker(e.cfg.ConfirmationPollInterval)
	timeout := time.NewTimer(e.cfg.ConfirmationTimeout)
	defer ticker.Stop()
	defer timeout.Stop()

	for {
		select {
		case <-ticker.C:
			status, err := e.conn.SignatureStatus(ctx, sig)
			if err != nil {
				log.Warn().Err(err).Str("signature", sig.String()).Msg("Failed fetching signature status")
				continue
			}
			if status == nil {
				continue
			}
			if status.Err != nil {
				log.Debug().Str("state", string(StateFailed)).Str("signature", sig.String()).Msg("Transaction failed on chain")
				return &ExecutionError{Signature: sig, Reason: errorText(status.Err)}
			}
			if status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
				status.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				log.Debug().Str("state", string(StateConfirmed)).Str("signature", sig.String()).Msg("Transaction confirmed")
				return nil
			}
		case <-timeout.C:
			return &StatusUnknownError{
				Signature: sig,
				Err:       errors.Errorf("no confirmation within %s", e.cfg.ConfirmationTimeout),
			}
		case <-ctx.Done():
			return &StatusUnknownError{Signature: sig, Err: ctx.Err()}
		}
	}
}

// processMessageAccounts resolves every account the operation touches. The
// optional client slots are present only when the configured client program
// is actually deployed, checked through raw account bytes.
func (e *Executor) processMessageAccounts(ctx context.Context, m *message.Message) (gateway.ProcessMessageAccounts, error) {
	programID := e.contract.ProgramID()

	gatewayAccount, _, err := accounts.Gateway(programID, e.cfg.ChainID)
	if err != nil {
		return gateway.ProcessMessageAccounts{}, err
	}
	txPDA, _, err := accounts.TxPDA(programID, m.SourceChainID, m.TxID)
	if err != nil {
		return gateway.ProcessMessageAccounts{}, err
	}
	counter, _, err := accounts.Counter(programID, m.SourceChainID)
	if err != nil {
		return gateway.ProcessMessageAccounts{}, err
	}
	protocolRegistry, _, err := accounts.SignerRegistry(programID, accounts.RegistryTypeProtocol, m.SourceChainID)
	if err != nil {
		return gateway.ProcessMessageAccounts{}, err
	}
	chainRegistry, _, err := accounts.SignerRegistry(programID, accounts.RegistryTypeChain, m.SourceChainID)
	if err != nil {
		return gateway.ProcessMessageAccounts{}, err
	}
	projectRegistry, _, err := accounts.SignerRegistry(programID, accounts.RegistryTypeProject, m.SourceChainID)
	if err != nil {
		return gateway.ProcessMessageAccounts{}, err
	}
	gasPool, _, err := accounts.GasPool(programID, gatewayAccount)
	if err != nil {
		return gateway.ProcessMessageAccounts{}, err
	}

	operationAccounts := gateway.ProcessMessageAccounts{
		Gateway:          gatewayAccount,
		TxPDA:            txPDA,
		Counter:          counter,
		ProtocolRegistry: protocolRegistry,
		ChainRegistry:    chainRegistry,
		ProjectRegistry:  projectRegistry,
		Payer:            e.payer.PublicKey(),
		GasPool:          gasPool,
		ClientProgram:    gateway.Absent(),
		ClientFeeConfig:  gateway.Absent(),
		ClientGasConfig:  gateway.Absent(),
	}

	if e.cfg.ClientProgramID.IsZero() {
		return operationAccounts, nil
	}
	deployed, err := e.clientProgramDeployed(ctx)
	if err != nil {
		return gateway.ProcessMessageAccounts{}, err
	}
	if !deployed {
		log.Debug().
			Str("clientProgram", e.cfg.ClientProgramID.String()).
			Msg("Configured client program is not deployed, leaving optional slots absent")
		return operationAccounts, nil
	}

	clientFeeConfig, _, err := accounts.ClientFeeConfig(programID, gatewayAccount, e.cfg.ClientProgramID)
	if err != nil {
		return gateway.ProcessMessageAccounts{}, err
	}
	clientGasConfig, _, err := accounts.ClientGasConfig(programID, gatewayAccount, e.cfg.ClientProgramID)
	if err != nil {
		return gateway.ProcessMessageAccounts{}, err
	}
	operationAccounts.ClientProgram = gateway.Some(e.cfg.ClientProgramID)
	operationAccounts.ClientFeeConfig = gateway.Some(clientFeeConfig)
	operationAccounts.ClientGasConfig = gateway.Some(clientGasConfig)
	return operationAccounts, nil
}

func (e *Executor) clientProgramDeployed(ctx context.Context) (bool, error) {
	account, err := e.conn.AccountInfo(ctx, e.cfg.ClientProgramID)
	if err != nil {
		return false, err
	}
	return account != nil && account.Executable, nil
}

func (e *Executor) storeStatus(sourceChainID uint64, txID string, status store.SubmissionStatus) {
	if e.storer == nil {
		return
	}
	if err := e.storer.StoreSubmissionStatus(sourceChainID, txID, status); err != nil {
		log.Warn().Err(err).Str("txID", txID).Msg("Failed storing submission status")
	}
}

func outcomeStatus(err error) store.SubmissionStatus {
	switch {
	case err == nil:
		return store.ExecutedSubmission
	case isStatusUnknown(err):
		return store.UnknownSubmission
	default:
		return store.FailedSubmission
	}
}

func isStatusUnknown(err error) bool {
	var unknown *StatusUnknownError
	return errors.As(err, &unknown)
}

func errorText(txErr interface{}) string {
	return fmt.Sprintf("%v", txErr)
}

func containsAccount(table solana.PublicKeySlice, account solana.PublicKey) bool {
	for _, entry := range table {
		if entry.Equals(account) {
			return true
		}
	}
	return false
}
