package recon_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftcard-reconciliation/internal/domain"
	"giftcard-reconciliation/internal/recon"
)

func posTx(id, amount string) domain.POSTransaction {
	return domain.POSTransaction{
		TransactionID: id,
		Amount:        decimal.RequireFromString(amount),
	}
}

func procTx(id, ref, amount string) domain.ProcessorTransaction {
	return domain.ProcessorTransaction{
		TransactionID: id,
		ReferenceID:   ref,
		Amount:        decimal.RequireFromString(amount),
	}
}

func TestMatch_OuterJoin(t *testing.T) {
	pos := []domain.POSTransaction{
		posTx("TX-001", "50.00"),
		posTx("TX-002", "25.00"),
		posTx("TX-003", "19.99"),
	}
	proc := []domain.ProcessorTransaction{
		procTx("P-1", "TX-002", "25.00"),
		procTx("P-2", "TX-999", "10.00"), // references nothing in POS
		procTx("P-3", "TX-003", "199.90"),
	}

	res := recon.Match(pos, proc)

	require.Len(t, res.Pairs, 4)

	// POS ledger order first
	assert.Equal(t, "TX-001", res.Pairs[0].POS.TransactionID)
	assert.Nil(t, res.Pairs[0].Processor)

	assert.Equal(t, "TX-002", res.Pairs[1].POS.TransactionID)
	require.NotNil(t, res.Pairs[1].Processor)
	assert.Equal(t, "P-1", res.Pairs[1].Processor.TransactionID)

	assert.Equal(t, "TX-003", res.Pairs[2].POS.TransactionID)
	require.NotNil(t, res.Pairs[2].Processor)
	assert.Equal(t, "P-3", res.Pairs[2].Processor.TransactionID)

	// processor-only leftovers last, in processor ledger order
	assert.Nil(t, res.Pairs[3].POS)
	assert.Equal(t, "P-2", res.Pairs[3].Processor.TransactionID)

	assert.Empty(t, res.UnparseablePOS)
	assert.Empty(t, res.UnparseableProcessor)
}

func TestMatch_RecordConservation(t *testing.T) {
	// Every input record appears in exactly one pair (no fan-out here).
	pos := []domain.POSTransaction{
		posTx("A", "1.00"), posTx("B", "2.00"), posTx("C", "3.00"),
	}
	proc := []domain.ProcessorTransaction{
		procTx("P-1", "B", "2.00"), procTx("P-2", "D", "4.00"),
	}

	res := recon.Match(pos, proc)

	both, posOnly, procOnly := 0, 0, 0
	for _, p := range res.Pairs {
		switch {
		case p.POS != nil && p.Processor != nil:
			both++
		case p.POS != nil:
			posOnly++
		case p.Processor != nil:
			procOnly++
		}
	}
	assert.Equal(t, len(res.Pairs), both+posOnly+procOnly)
	assert.Equal(t, 1, both)
	assert.Equal(t, 2, posOnly)
	assert.Equal(t, 1, procOnly)
}

func TestMatch_FanOutOnAmbiguousKeys(t *testing.T) {
	tests := []struct {
		name      string
		pos       []domain.POSTransaction
		proc      []domain.ProcessorTransaction
		wantPairs int
	}{
		{
			name: "two processor records reference one POS record",
			pos:  []domain.POSTransaction{posTx("TX-001", "50.00")},
			proc: []domain.ProcessorTransaction{
				procTx("P-1", "TX-001", "50.00"),
				procTx("P-2", "TX-001", "50.00"),
			},
			wantPairs: 2,
		},
		{
			name: "duplicate POS id matched by one processor record",
			pos: []domain.POSTransaction{
				posTx("TX-001", "50.00"),
				posTx("TX-001", "50.00"), // injected double charge
			},
			proc:      []domain.ProcessorTransaction{procTx("P-1", "TX-001", "50.00")},
			wantPairs: 2,
		},
		{
			name: "duplicates on both sides fan out as cartesian product per key",
			pos: []domain.POSTransaction{
				posTx("TX-001", "50.00"),
				posTx("TX-001", "50.00"),
			},
			proc: []domain.ProcessorTransaction{
				procTx("P-1", "TX-001", "50.00"),
				procTx("P-2", "TX-001", "50.00"),
			},
			wantPairs: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := recon.Match(tt.pos, tt.proc)
			assert.Len(t, res.Pairs, tt.wantPairs)
			for _, p := range res.Pairs {
				assert.NotNil(t, p.POS)
				assert.NotNil(t, p.Processor)
			}
		})
	}
}

func TestMatch_ExactKeyEquality(t *testing.T) {
	// No case or whitespace normalization: a differing key is unmatched
	// on both sides.
	pos := []domain.POSTransaction{posTx("tx-001", "50.00")}
	proc := []domain.ProcessorTransaction{procTx("P-1", "TX-001", "50.00")}

	res := recon.Match(pos, proc)

	require.Len(t, res.Pairs, 2)
	assert.Nil(t, res.Pairs[0].Processor)
	assert.Nil(t, res.Pairs[1].POS)
}

func TestMatch_EmptyInputs(t *testing.T) {
	tests := []struct {
		name      string
		pos       []domain.POSTransaction
		proc      []domain.ProcessorTransaction
		wantPairs int
	}{
		{"both empty", nil, nil, 0},
		{"empty processor", []domain.POSTransaction{posTx("A", "50.00")}, nil, 1},
		{"empty POS", nil, []domain.ProcessorTransaction{procTx("P-1", "A", "50.00")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := recon.Match(tt.pos, tt.proc)
			assert.Len(t, res.Pairs, tt.wantPairs)
		})
	}
}

func TestMatch_UnparseableRecordsExcludedAndCounted(t *testing.T) {
	pos := []domain.POSTransaction{
		posTx("", "50.00"), // missing key
		posTx("TX-001", "25.00"),
	}
	proc := []domain.ProcessorTransaction{
		procTx("P-1", "", "25.00"), // missing key
		procTx("P-2", "TX-001", "25.00"),
	}

	res := recon.Match(pos, proc)

	require.Len(t, res.Pairs, 1)
	assert.Equal(t, "TX-001", res.Pairs[0].POS.TransactionID)
	assert.Equal(t, "P-2", res.Pairs[0].Processor.TransactionID)
	assert.Len(t, res.UnparseablePOS, 1)
	assert.Len(t, res.UnparseableProcessor, 1)
}
