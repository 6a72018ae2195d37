package gateway

import (
	"encoding/csv"
	"fmt"
	"os"

	"giftcard-reconciliation/internal/domain"
)

var posHeader = []string{
	"transaction_id", "card_id", "amount", "transaction_type", "timestamp",
	"store_id", "terminal_id", "batch_id", "authorization_code", "status",
}

var processorHeader = []string{
	"transaction_id", "reference_id", "card_id", "amount", "transaction_type",
	"processed_at", "merchant_id", "terminal_id", "batch_id",
	"authorization_code", "status",
}

// CSVLedgerWriter persists generated ledgers as CSV files in the layout
// CSVLedgerRepository reads back.
type CSVLedgerWriter struct{}

// NewCSVLedgerWriter creates a new writer instance.
func NewCSVLedgerWriter() *CSVLedgerWriter {
	return &CSVLedgerWriter{}
}

// WritePOSTransactions writes the POS ledger to a CSV file.
func (w *CSVLedgerWriter) WritePOSTransactions(path string, transactions []domain.POSTransaction) error {
	rows := make([][]string, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, []string{
			tx.TransactionID,
			tx.CardID,
			tx.Amount.String(),
			string(tx.Type),
			formatOptionalTime(tx.Timestamp),
			tx.StoreID,
			tx.TerminalID,
			tx.BatchID,
			tx.AuthorizationCode,
			tx.Status,
		})
	}
	return writeCSV(path, posHeader, rows)
}

// WriteProcessorTransactions writes the processor ledger to a CSV file.
func (w *CSVLedgerWriter) WriteProcessorTransactions(path string, transactions []domain.ProcessorTransaction) error {
	rows := make([][]string, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, []string{
			tx.TransactionID,
			tx.ReferenceID,
			tx.CardID,
			tx.Amount.String(),
			string(tx.Type),
			formatOptionalTime(tx.ProcessedAt),
			tx.MerchantID,
			tx.TerminalID,
			tx.BatchID,
			tx.AuthorizationCode,
			tx.Status,
		})
	}
	return writeCSV(path, processorHeader, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create ledger file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}
