// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package executor

import (
	"github.com/ChainSafe/solana-gateway/chains/solana/calls/ed25519"
	"github.com/gagliardetto/solana-go"
)

// Variant selects how the submission envelope is encoded.
type Variant string

const (
	// VariantStandard lists every referenced account explicitly.
	VariantStandard Variant = "standard"
	// VariantCompact substitutes lookup-table indices for known accounts.
	// Each verification unit still costs its full bytes, so the unit count
	// is capped.
	VariantCompact Variant = "compact"
)

// CompactSignatureLimit is the hard cap on verification units under the
// compact variant.
const CompactSignatureLimit = 3

// SubmissionPlan is one ordered submission: verification units first, the
// main operation last. Plans are built per call and never mutated; retries
// rebuild only the network envelope around the same instruction list.
type SubmissionPlan struct {
	instructions []solana.Instruction
	variant      Variant
}

// NewSubmissionPlan orders verification instructions before the main
// operation and enforces the variant's verification-unit cap.
func NewSubmissionPlan(verifications []solana.Instruction, operation solana.Instruction, variant Variant) (*SubmissionPlan, error) {
	if len(verifications) == 0 {
		return nil, ed25519.ErrNoSignatures
	}
	if variant == VariantCompact && len(verifications) > CompactSignatureLimit {
		return nil, &TooManySignaturesError{Count: len(verifications), Limit: CompactSignatureLimit}
	}

	instructions := make([]solana.Instruction, 0, len(verifications)+1)
	instructions = append(instructions, verifications...)
	instructions = append(instructions, operation)
	return &SubmissionPlan{
		instructions: instructions,
		variant:      variant,
	}, nil
}

// NewUnsignedPlan is used for administrative operations that carry no
// verification units, such as gateway initialization and config updates.
func NewUnsignedPlan(operation solana.Instruction, variant Variant) *SubmissionPlan {
	return &SubmissionPlan{
		instructions: []solana.Instruction{operation},
		variant:      variant,
	}
}

// Instructions returns the plan's ordered instruction list. The returned
// slice is a copy so callers cannot reorder a built plan.
func (p *SubmissionPlan) Instructions() []solana.Instruction {
	instructions := make([]solana.Instruction, len(p.instructions))
	copy(instructions, p.instructions)
	return instructions
}

func (p *SubmissionPlan) Variant() Variant {
	return p.variant
}
