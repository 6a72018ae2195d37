package recon

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"giftcard-reconciliation/internal/domain"
)

// ErrEmptyPair reports a matched pair with neither side populated. This
// cannot occur when Match produced the pairs; encountering it means the
// pair set is corrupt and the run must abort.
var ErrEmptyPair = errors.New("matched pair has neither side populated")

var ten = decimal.NewFromInt(10)

// Classify assigns exactly one discrepancy label to a matched pair. Rules
// apply in fixed precedence, first match wins:
//
//  1. MISSING_IN_PROCESSOR - processor side absent
//  2. MISSING_IN_POS       - POS side absent
//  3. DECIMAL_SHIFT        - amounts differ beyond tolerance and relate by x10 or /10
//  4. AMOUNT_DISCREPANCY   - amounts differ beyond tolerance
//  5. NONE                 - amounts agree within tolerance
func Classify(cfg Config, pair domain.MatchedPair) (domain.DiscrepancyType, error) {
	switch {
	case pair.POS != nil && pair.Processor == nil:
		return domain.DiscrepancyMissingInProcessor, nil
	case pair.POS == nil && pair.Processor != nil:
		return domain.DiscrepancyMissingInPOS, nil
	case pair.POS == nil && pair.Processor == nil:
		return "", ErrEmptyPair
	}

	diff := pair.POS.Amount.Sub(pair.Processor.Amount)
	if diff.Abs().Cmp(cfg.Tolerance) <= 0 {
		return domain.DiscrepancyNone, nil
	}
	if isDecimalShift(cfg, pair.POS.Amount, pair.Processor.Amount) {
		return domain.DiscrepancyDecimalShift, nil
	}
	return domain.DiscrepancyAmount, nil
}

// isDecimalShift detects a misplaced decimal point: the POS amount times or
// divided by ten lands on the processor amount within tolerance. Checked
// before the generic amount rule so shifts are never double-counted as plain
// amount discrepancies.
func isDecimalShift(cfg Config, pos, proc decimal.Decimal) bool {
	shiftedUp := pos.Mul(ten).Sub(proc).Abs()
	shiftedDown := pos.Div(ten).Sub(proc).Abs()
	return shiftedUp.Cmp(cfg.Tolerance) <= 0 || shiftedDown.Cmp(cfg.Tolerance) <= 0
}

// ClassifyAll maps Classify over a pair set, attaching the computed amount
// difference to each row. It fails fast on the first invariant violation.
func ClassifyAll(cfg Config, pairs []domain.MatchedPair) ([]domain.PairResult, error) {
	results := make([]domain.PairResult, 0, len(pairs))
	for i, pair := range pairs {
		label, err := Classify(cfg, pair)
		if err != nil {
			return nil, fmt.Errorf("classify pair %d: %w", i, err)
		}
		result := domain.PairResult{
			POS:         pair.POS,
			Processor:   pair.Processor,
			Discrepancy: label,
		}
		if diff, ok := pair.AmountDifference(); ok {
			result.AmountDifference = &diff
		}
		results = append(results, result)
	}
	return results, nil
}
