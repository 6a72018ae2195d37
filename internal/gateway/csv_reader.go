package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"giftcard-reconciliation/internal/domain"
)

// Expected CSV layouts. These match the files written by the datagen
// exporter and ReportWriter; the first row is always a header.
const (
	posColumnCount       = 10
	processorColumnCount = 11
)

// CSVLedgerRepository implements the LedgerRepository interface for CSV files.
type CSVLedgerRepository struct{}

// NewCSVLedgerRepository creates a new repository instance.
func NewCSVLedgerRepository() *CSVLedgerRepository {
	return &CSVLedgerRepository{}
}

// GetPOSTransactions reads and parses a POS ledger CSV file.
// Columns: transaction_id, card_id, amount, transaction_type, timestamp,
// store_id, terminal_id, batch_id, authorization_code, status.
func (r *CSVLedgerRepository) GetPOSTransactions(ctx context.Context, source string) ([]domain.POSTransaction, error) {
	var transactions []domain.POSTransaction
	err := readCSV(source, posColumnCount, func(record []string) error {
		amount, err := decimal.NewFromString(record[2])
		if err != nil {
			return fmt.Errorf("could not parse amount '%s': %w", record[2], err)
		}
		timestamp, err := parseOptionalTime(record[4])
		if err != nil {
			return fmt.Errorf("could not parse timestamp '%s': %w", record[4], err)
		}
		transactions = append(transactions, domain.POSTransaction{
			TransactionID:     record[0],
			CardID:            record[1],
			Amount:            amount,
			Type:              domain.TransactionType(record[3]),
			Timestamp:         timestamp,
			StoreID:           record[5],
			TerminalID:        record[6],
			BatchID:           record[7],
			AuthorizationCode: record[8],
			Status:            record[9],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// GetProcessorTransactions reads and parses a processor ledger CSV file.
// Columns: transaction_id, reference_id, card_id, amount, transaction_type,
// processed_at, merchant_id, terminal_id, batch_id, authorization_code, status.
func (r *CSVLedgerRepository) GetProcessorTransactions(ctx context.Context, source string) ([]domain.ProcessorTransaction, error) {
	var transactions []domain.ProcessorTransaction
	err := readCSV(source, processorColumnCount, func(record []string) error {
		amount, err := decimal.NewFromString(record[3])
		if err != nil {
			return fmt.Errorf("could not parse amount '%s': %w", record[3], err)
		}
		processedAt, err := parseOptionalTime(record[5])
		if err != nil {
			return fmt.Errorf("could not parse processed_at '%s': %w", record[5], err)
		}
		transactions = append(transactions, domain.ProcessorTransaction{
			TransactionID:     record[0],
			ReferenceID:       record[1],
			CardID:            record[2],
			Amount:            amount,
			Type:              domain.TransactionType(record[4]),
			ProcessedAt:       processedAt,
			MerchantID:        record[6],
			TerminalID:        record[7],
			BatchID:           record[8],
			AuthorizationCode: record[9],
			Status:            record[10],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func readCSV(path string, columns int, handle func(record []string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open ledger file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = columns

	// Skip header
	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("error reading record from %s: %w", path, err)
		}
		if err := handle(record); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// parseOptionalTime parses an RFC3339 timestamp, treating the empty string
// as absent. Non-key fields may be missing without failing the load.
func parseOptionalTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}
