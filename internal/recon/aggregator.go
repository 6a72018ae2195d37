package recon

import "giftcard-reconciliation/internal/domain"

// Aggregate computes the ledger-wide summary in a single pass.
//
// Category counts come from the classified pair set. Ledger counts and
// amount totals are computed from the raw input ledgers, not from the pairs:
// a fan-out on an ambiguous key duplicates a record across pairs, and summing
// pair amounts would double-count it. The net difference therefore reflects
// the true cross-ledger imbalance, including value lost to missing or
// duplicated entries and records with unusable keys.
func Aggregate(pos []domain.POSTransaction, proc []domain.ProcessorTransaction, match MatchResult, results []domain.PairResult) domain.Summary {
	s := domain.Summary{
		TotalPOSTransactions:       len(pos),
		TotalProcessorTransactions: len(proc),
		UnparseablePOS:             len(match.UnparseablePOS),
		UnparseableProcessor:       len(match.UnparseableProcessor),
	}

	for i := range pos {
		s.POSAmountTotal = s.POSAmountTotal.Add(pos[i].Amount)
	}
	for i := range proc {
		s.ProcessorAmountTotal = s.ProcessorAmountTotal.Add(proc[i].Amount)
	}
	s.NetAmountDifference = s.POSAmountTotal.Sub(s.ProcessorAmountTotal)

	for _, r := range results {
		if r.POS != nil && r.Processor != nil {
			s.MatchedPairs++
		}
		switch r.Discrepancy {
		case domain.DiscrepancyNone:
			s.PerfectlyMatched++
		case domain.DiscrepancyMissingInProcessor:
			s.MissingInProcessor++
		case domain.DiscrepancyMissingInPOS:
			s.MissingInPOS++
		case domain.DiscrepancyDecimalShift:
			s.DecimalShiftErrors++
		case domain.DiscrepancyAmount:
			s.AmountDiscrepancies++
		}
	}

	return s
}

// Reconcile runs the full engine pipeline over two ledger snapshots:
// match, classify, aggregate. It is a pure function; the only error it can
// return is an internal-consistency violation from the classifier.
func Reconcile(cfg Config, pos []domain.POSTransaction, proc []domain.ProcessorTransaction) (*domain.ReconciliationReport, error) {
	match := Match(pos, proc)
	results, err := ClassifyAll(cfg, match.Pairs)
	if err != nil {
		return nil, err
	}
	return &domain.ReconciliationReport{
		Summary: Aggregate(pos, proc, match, results),
		Results: results,
	}, nil
}
