// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package executor

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

var ErrLookupTableNotLoaded = errors.New("compact variant requires a loaded address lookup table")

// TooManySignaturesError is returned when a plan carries more verification
// units than the chosen encoding variant allows.
type TooManySignaturesError struct {
	Count int
	Limit int
}

func (e *TooManySignaturesError) Error() string {
	return fmt.Sprintf("%d verification units exceed the variant limit of %d", e.Count, e.Limit)
}

// ExhaustedRetriesError is returned after the attempt cap is reached,
// wrapping the last underlying failure.
type ExhaustedRetriesError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedRetriesError) Error() string {
	return fmt.Sprintf("submission failed after %d attempts: %s", e.Attempts, e.Last)
}

func (e *ExhaustedRetriesError) Unwrap() error {
	return e.Last
}

// StatusUnknownError is returned when the envelope reached the ledger but
// confirmation polling timed out. The true outcome is unknown and a blind
// resubmission could duplicate effects, so this is surfaced distinctly from
// a failure: callers should check the replay guard record before retrying.
type StatusUnknownError struct {
	Signature solana.Signature
	Err       error
}

func (e *StatusUnknownError) Error() string {
	return fmt.Sprintf("outcome of transaction %s is unknown, check replay guard state before resubmitting: %s", e.Signature, e.Err)
}

func (e *StatusUnknownError) Unwrap() error {
	return e.Err
}

// ExecutionError is a ledger-reported execution failure inside an accepted
// envelope. The envelope reached the ledger, the operation did not take
// effect.
type ExecutionError struct {
	Signature solana.Signature
	Reason    string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("transaction %s failed on chain: %s", e.Signature, e.Reason)
}

// nonRetryableErrors is the fixed vocabulary of gateway program rejections
// that no amount of retrying can fix. Matching is on error text because the
// RPC surfaces program errors as strings; keeping the table here, covered by
// tests, beats scattering the literals across call sites.
var nonRetryableErrors = []string{
	"TxAlreadyProcessed",
	"TxIdNotFound",
	"SystemDisabled",
	"SignerNotRegistered",
	"InvalidSignature",
	"ThresholdNotMet",
	"already in use",
	"already been processed",
}

// Retryable reports whether a submission failure is worth another attempt.
// Validation and construction failures never reach this point; everything
// not in the non-retryable vocabulary is assumed transient.
func Retryable(err error) bool {
	var unknown *StatusUnknownError
	if errors.As(err, &unknown) {
		return false
	}

	message := err.Error()
	for _, fatal := range nonRetryableErrors {
		if strings.Contains(message, fatal) {
			return false
		}
	}
	return true
}
