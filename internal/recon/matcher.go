package recon

import "giftcard-reconciliation/internal/domain"

// MatchResult is the complete outer join of the two ledgers plus the records
// that could not take part in matching because their join key was empty.
// Unparseable records are surfaced here so the aggregator can account for
// them instead of dropping them silently.
type MatchResult struct {
	Pairs                []domain.MatchedPair
	UnparseablePOS       []domain.POSTransaction
	UnparseableProcessor []domain.ProcessorTransaction
}

// Match performs a full outer join of the POS ledger against the processor
// ledger on POS.TransactionID == Processor.ReferenceID.
//
// The join is a hash join: processor records are indexed by reference id,
// then probed with POS records in POS ledger order; processor-only leftovers
// follow in processor ledger order. Key comparison is exact string equality
// with no normalization. Duplicate keys on either side fan out to one pair
// per pairing rather than collapsing or erroring, since each pairing is
// independently classifiable.
//
// Match is a pure function of its inputs and never fails: empty inputs
// degenerate to an all-unmatched (or empty) result.
func Match(pos []domain.POSTransaction, proc []domain.ProcessorTransaction) MatchResult {
	var res MatchResult

	byRef := make(map[string][]int, len(proc))
	for i := range proc {
		if proc[i].ReferenceID == "" {
			res.UnparseableProcessor = append(res.UnparseableProcessor, proc[i])
			continue
		}
		byRef[proc[i].ReferenceID] = append(byRef[proc[i].ReferenceID], i)
	}

	matchedProc := make([]bool, len(proc))
	res.Pairs = make([]domain.MatchedPair, 0, len(pos)+len(proc))

	for i := range pos {
		if pos[i].TransactionID == "" {
			res.UnparseablePOS = append(res.UnparseablePOS, pos[i])
			continue
		}
		refs := byRef[pos[i].TransactionID]
		if len(refs) == 0 {
			res.Pairs = append(res.Pairs, domain.MatchedPair{POS: &pos[i]})
			continue
		}
		for _, j := range refs {
			matchedProc[j] = true
			res.Pairs = append(res.Pairs, domain.MatchedPair{POS: &pos[i], Processor: &proc[j]})
		}
	}

	for j := range proc {
		if proc[j].ReferenceID == "" || matchedProc[j] {
			continue
		}
		res.Pairs = append(res.Pairs, domain.MatchedPair{Processor: &proc[j]})
	}

	return res
}
