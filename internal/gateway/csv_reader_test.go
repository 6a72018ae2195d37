package gateway

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftcard-reconciliation/internal/domain"
)

func TestCSVLedgerRepository_GetPOSTransactions(t *testing.T) {
	tests := []struct {
		name     string
		csvData  [][]string
		expected []domain.POSTransaction
		wantErr  bool
	}{
		{
			name: "valid POS transactions",
			csvData: [][]string{
				posHeader,
				{"POS0000000001", "6073-1111-2222-3333", "25.00", "PURCHASE", "2025-01-06T11:15:00Z", "STORE-0512", "POS-001", "BATCH-20250106-POS-001", "482910", "APPROVED"},
				{"POS0000000002", "GC-STORE-0512-000042", "19.99", "RELOAD", "2025-01-06T18:30:45Z", "STORE-0512", "POS-003", "BATCH-20250106-POS-003", "104477", "APPROVED"},
			},
			expected: []domain.POSTransaction{
				{
					TransactionID:     "POS0000000001",
					CardID:            "6073-1111-2222-3333",
					Amount:            decimal.RequireFromString("25.00"),
					Type:              domain.TransactionTypePurchase,
					Timestamp:         mustParseTime("2025-01-06T11:15:00Z"),
					StoreID:           "STORE-0512",
					TerminalID:        "POS-001",
					BatchID:           "BATCH-20250106-POS-001",
					AuthorizationCode: "482910",
					Status:            "APPROVED",
				},
				{
					TransactionID:     "POS0000000002",
					CardID:            "GC-STORE-0512-000042",
					Amount:            decimal.RequireFromString("19.99"),
					Type:              domain.TransactionTypeReload,
					Timestamp:         mustParseTime("2025-01-06T18:30:45Z"),
					StoreID:           "STORE-0512",
					TerminalID:        "POS-003",
					BatchID:           "BATCH-20250106-POS-003",
					AuthorizationCode: "104477",
					Status:            "APPROVED",
				},
			},
		},
		{
			name:     "empty file with header only",
			csvData:  [][]string{posHeader},
			expected: nil,
		},
		{
			name: "optional fields may be empty",
			csvData: [][]string{
				posHeader,
				{"POS0000000003", "", "50.00", "", "", "", "", "", "", ""},
			},
			expected: []domain.POSTransaction{
				{
					TransactionID: "POS0000000003",
					Amount:        decimal.RequireFromString("50.00"),
				},
			},
		},
		{
			name: "invalid amount format",
			csvData: [][]string{
				posHeader,
				{"POS0000000004", "", "not_a_number", "", "", "", "", "", "", ""},
			},
			wantErr: true,
		},
		{
			name: "invalid timestamp format",
			csvData: [][]string{
				posHeader,
				{"POS0000000005", "", "50.00", "", "yesterday", "", "", "", "", ""},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := createTempCSV(t, tt.csvData)

			repo := NewCSVLedgerRepository()
			got, err := repo.GetPOSTransactions(context.Background(), tmpFile)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCSVLedgerRepository_GetProcessorTransactions(t *testing.T) {
	tests := []struct {
		name     string
		csvData  [][]string
		expected []domain.ProcessorTransaction
		wantErr  bool
	}{
		{
			name: "valid processor transactions",
			csvData: [][]string{
				processorHeader,
				{"8f14e45f-ceea-467f-9b29-d38a64f36d53", "POS0000000001", "6073-1111-2222-3333", "25.00", "PURCHASE", "2025-01-06T11:15:03Z", "MER-STORE-0512", "POS-001", "BATCH-20250106-POS-001", "482910", "SETTLED"},
			},
			expected: []domain.ProcessorTransaction{
				{
					TransactionID:     "8f14e45f-ceea-467f-9b29-d38a64f36d53",
					ReferenceID:       "POS0000000001",
					CardID:            "6073-1111-2222-3333",
					Amount:            decimal.RequireFromString("25.00"),
					Type:              domain.TransactionTypePurchase,
					ProcessedAt:       mustParseTime("2025-01-06T11:15:03Z"),
					MerchantID:        "MER-STORE-0512",
					TerminalID:        "POS-001",
					BatchID:           "BATCH-20250106-POS-001",
					AuthorizationCode: "482910",
					Status:            "SETTLED",
				},
			},
		},
		{
			name: "missing reference id is loaded, not rejected",
			csvData: [][]string{
				processorHeader,
				{"8f14e45f-ceea-467f-9b29-d38a64f36d53", "", "", "10.00", "", "", "", "", "", "", ""},
			},
			expected: []domain.ProcessorTransaction{
				{
					TransactionID: "8f14e45f-ceea-467f-9b29-d38a64f36d53",
					Amount:        decimal.RequireFromString("10.00"),
				},
			},
		},
		{
			name: "wrong column count",
			csvData: [][]string{
				processorHeader,
				{"8f14e45f-ceea-467f-9b29-d38a64f36d53", "POS0000000001", "25.00"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := createTempCSV(t, tt.csvData)

			repo := NewCSVLedgerRepository()
			got, err := repo.GetProcessorTransactions(context.Background(), tmpFile)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCSVLedgerRepository_FileErrors(t *testing.T) {
	repo := NewCSVLedgerRepository()
	ctx := context.Background()

	t.Run("POS file not found", func(t *testing.T) {
		_, err := repo.GetPOSTransactions(ctx, "nonexistent_file.csv")
		assert.Error(t, err)
	})

	t.Run("processor file not found", func(t *testing.T) {
		_, err := repo.GetProcessorTransactions(ctx, "nonexistent_file.csv")
		assert.Error(t, err)
	})

	t.Run("empty file has no header", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "empty.csv")
		require.NoError(t, os.WriteFile(tmpFile, nil, 0o644))
		_, err := repo.GetPOSTransactions(ctx, tmpFile)
		assert.Error(t, err)
	})
}

func TestCSVLedgerWriter_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	posPath := filepath.Join(dir, "pos_transactions.csv")
	procPath := filepath.Join(dir, "processor_transactions.csv")

	pos := []domain.POSTransaction{
		{
			TransactionID: "POS0000000001",
			CardID:        "6073-1111-2222-3333",
			Amount:        decimal.RequireFromString("25.00"),
			Type:          domain.TransactionTypePurchase,
			Timestamp:     mustParseTime("2025-01-06T11:15:00Z"),
			StoreID:       "STORE-0512",
			TerminalID:    "POS-001",
			Status:        "APPROVED",
		},
	}
	proc := []domain.ProcessorTransaction{
		{
			TransactionID: "8f14e45f-ceea-467f-9b29-d38a64f36d53",
			ReferenceID:   "POS0000000001",
			Amount:        decimal.RequireFromString("25.00"),
			Type:          domain.TransactionTypePurchase,
			ProcessedAt:   mustParseTime("2025-01-06T11:15:03Z"),
			MerchantID:    "MER-STORE-0512",
			Status:        "SETTLED",
		},
	}

	writer := NewCSVLedgerWriter()
	require.NoError(t, writer.WritePOSTransactions(posPath, pos))
	require.NoError(t, writer.WriteProcessorTransactions(procPath, proc))

	repo := NewCSVLedgerRepository()
	gotPOS, err := repo.GetPOSTransactions(context.Background(), posPath)
	require.NoError(t, err)
	gotProc, err := repo.GetProcessorTransactions(context.Background(), procPath)
	require.NoError(t, err)

	require.Len(t, gotPOS, 1)
	assert.Equal(t, pos[0].TransactionID, gotPOS[0].TransactionID)
	assert.True(t, gotPOS[0].Amount.Equal(pos[0].Amount))
	assert.True(t, gotPOS[0].Timestamp.Equal(pos[0].Timestamp))

	require.Len(t, gotProc, 1)
	assert.Equal(t, proc[0].ReferenceID, gotProc[0].ReferenceID)
	assert.True(t, gotProc[0].Amount.Equal(proc[0].Amount))
	assert.True(t, gotProc[0].ProcessedAt.Equal(proc[0].ProcessedAt))
}

func createTempCSV(t *testing.T, data [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.csv")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	writer := csv.NewWriter(file)
	require.NoError(t, writer.WriteAll(data))
	return path
}

func mustParseTime(timeStr string) time.Time {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		panic(err)
	}
	return t
}
