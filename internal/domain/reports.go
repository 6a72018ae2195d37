package domain

import "github.com/shopspring/decimal"

// DiscrepancyType labels the single discrepancy category assigned to a
// matched pair. Exactly one label applies per pair.
type DiscrepancyType string

const (
	DiscrepancyNone               DiscrepancyType = "NONE"
	DiscrepancyMissingInProcessor DiscrepancyType = "MISSING_IN_PROCESSOR"
	DiscrepancyMissingInPOS       DiscrepancyType = "MISSING_IN_POS"
	DiscrepancyDecimalShift       DiscrepancyType = "DECIMAL_SHIFT"
	DiscrepancyAmount             DiscrepancyType = "AMOUNT_DISCREPANCY"
)

// MatchedPair is one row of the outer join between the two ledgers. At least
// one side is always populated; a pair with neither side is a matcher bug.
type MatchedPair struct {
	POS       *POSTransaction
	Processor *ProcessorTransaction
}

// AmountDifference returns posAmount - processorAmount when both sides are
// present. The second return value reports whether the difference exists.
func (p MatchedPair) AmountDifference() (decimal.Decimal, bool) {
	if p.POS == nil || p.Processor == nil {
		return decimal.Decimal{}, false
	}
	return p.POS.Amount.Sub(p.Processor.Amount), true
}

// PairResult is one classified row of the reconciliation output table.
// Absent sides and the difference of one-sided pairs are null in JSON.
type PairResult struct {
	POS              *POSTransaction       `json:"pos_transaction,omitempty"`
	Processor        *ProcessorTransaction `json:"processor_transaction,omitempty"`
	AmountDifference *decimal.Decimal      `json:"amount_difference,omitempty"`
	Discrepancy      DiscrepancyType       `json:"discrepancy_type"`
}

// Summary provides ledger-wide statistics of the reconciliation run.
// Amount totals are computed over the full input ledgers, so the net
// difference reflects value lost to missing or duplicated entries as well.
type Summary struct {
	TotalPOSTransactions       int             `json:"total_pos_transactions"`
	TotalProcessorTransactions int             `json:"total_processor_transactions"`
	MatchedPairs               int             `json:"matched_pairs"`
	PerfectlyMatched           int             `json:"perfectly_matched"`
	MissingInProcessor         int             `json:"missing_in_processor"`
	MissingInPOS               int             `json:"missing_in_pos"`
	DecimalShiftErrors         int             `json:"decimal_shift_errors"`
	AmountDiscrepancies        int             `json:"amount_discrepancies"`
	UnparseablePOS             int             `json:"unparseable_pos"`
	UnparseableProcessor       int             `json:"unparseable_processor"`
	POSAmountTotal             decimal.Decimal `json:"pos_amount_total"`
	ProcessorAmountTotal       decimal.Decimal `json:"processor_amount_total"`
	NetAmountDifference        decimal.Decimal `json:"net_amount_difference"`
}

// ReconciliationReport is the top-level structure for the final output.
type ReconciliationReport struct {
	Summary Summary      `json:"reconciliation_summary"`
	Results []PairResult `json:"results"`
}
