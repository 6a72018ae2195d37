package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"giftcard-reconciliation/internal/domain"
)

// SQLiteLedgerRepository implements the LedgerRepository interface for SQLite
// database files. Each ledger lives in its own database file with a
// `transactions` table, mirroring the upstream pos_system.db / processor.db
// layout. Amounts are stored as REAL and converted to decimal on load.
type SQLiteLedgerRepository struct{}

// NewSQLiteLedgerRepository creates a new repository instance.
func NewSQLiteLedgerRepository() *SQLiteLedgerRepository {
	return &SQLiteLedgerRepository{}
}

type posRow struct {
	TransactionID     string  `gorm:"column:transaction_id"`
	CardID            string  `gorm:"column:card_id"`
	Amount            float64 `gorm:"column:amount"`
	TransactionType   string  `gorm:"column:transaction_type"`
	Timestamp         string  `gorm:"column:timestamp"`
	StoreID           string  `gorm:"column:store_id"`
	TerminalID        string  `gorm:"column:terminal_id"`
	BatchID           string  `gorm:"column:batch_id"`
	AuthorizationCode string  `gorm:"column:authorization_code"`
	Status            string  `gorm:"column:status"`
}

type processorRow struct {
	TransactionID     string  `gorm:"column:transaction_id"`
	ReferenceID       string  `gorm:"column:reference_id"`
	CardID            string  `gorm:"column:card_id"`
	Amount            float64 `gorm:"column:amount"`
	TransactionType   string  `gorm:"column:transaction_type"`
	ProcessedAt       string  `gorm:"column:processed_at"`
	MerchantID        string  `gorm:"column:merchant_id"`
	TerminalID        string  `gorm:"column:terminal_id"`
	BatchID           string  `gorm:"column:batch_id"`
	AuthorizationCode string  `gorm:"column:authorization_code"`
	Status            string  `gorm:"column:status"`
}

// GetPOSTransactions loads the full POS ledger from a SQLite database file.
func (r *SQLiteLedgerRepository) GetPOSTransactions(ctx context.Context, source string) ([]domain.POSTransaction, error) {
	db, err := openSQLite(source)
	if err != nil {
		return nil, err
	}
	defer closeSQLite(db)

	var rows []posRow
	if err := db.WithContext(ctx).Table("transactions").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query POS transactions from %s: %w", source, err)
	}

	transactions := make([]domain.POSTransaction, 0, len(rows))
	for _, row := range rows {
		timestamp, err := parseOptionalTime(row.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%s: could not parse timestamp '%s': %w", source, row.Timestamp, err)
		}
		transactions = append(transactions, domain.POSTransaction{
			TransactionID:     row.TransactionID,
			CardID:            row.CardID,
			Amount:            decimal.NewFromFloat(row.Amount),
			Type:              domain.TransactionType(row.TransactionType),
			Timestamp:         timestamp,
			StoreID:           row.StoreID,
			TerminalID:        row.TerminalID,
			BatchID:           row.BatchID,
			AuthorizationCode: row.AuthorizationCode,
			Status:            row.Status,
		})
	}
	return transactions, nil
}

// GetProcessorTransactions loads the full processor ledger from a SQLite
// database file.
func (r *SQLiteLedgerRepository) GetProcessorTransactions(ctx context.Context, source string) ([]domain.ProcessorTransaction, error) {
	db, err := openSQLite(source)
	if err != nil {
		return nil, err
	}
	defer closeSQLite(db)

	var rows []processorRow
	if err := db.WithContext(ctx).Table("transactions").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query processor transactions from %s: %w", source, err)
	}

	transactions := make([]domain.ProcessorTransaction, 0, len(rows))
	for _, row := range rows {
		processedAt, err := parseOptionalTime(row.ProcessedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: could not parse processed_at '%s': %w", source, row.ProcessedAt, err)
		}
		transactions = append(transactions, domain.ProcessorTransaction{
			TransactionID:     row.TransactionID,
			ReferenceID:       row.ReferenceID,
			CardID:            row.CardID,
			Amount:            decimal.NewFromFloat(row.Amount),
			Type:              domain.TransactionType(row.TransactionType),
			ProcessedAt:       processedAt,
			MerchantID:        row.MerchantID,
			TerminalID:        row.TerminalID,
			BatchID:           row.BatchID,
			AuthorizationCode: row.AuthorizationCode,
			Status:            row.Status,
		})
	}
	return transactions, nil
}

// SQLiteLedgerWriter persists generated ledgers as SQLite database files in
// the same layout the repository reads back.
type SQLiteLedgerWriter struct{}

// NewSQLiteLedgerWriter creates a new writer instance.
func NewSQLiteLedgerWriter() *SQLiteLedgerWriter {
	return &SQLiteLedgerWriter{}
}

// WritePOSTransactions writes the POS ledger to a SQLite database file,
// replacing any existing transactions table.
func (w *SQLiteLedgerWriter) WritePOSTransactions(ctx context.Context, path string, transactions []domain.POSTransaction) error {
	rows := make([]posRow, 0, len(transactions))
	for _, tx := range transactions {
		amount, _ := tx.Amount.Float64()
		rows = append(rows, posRow{
			TransactionID:     tx.TransactionID,
			CardID:            tx.CardID,
			Amount:            amount,
			TransactionType:   string(tx.Type),
			Timestamp:         formatOptionalTime(tx.Timestamp),
			StoreID:           tx.StoreID,
			TerminalID:        tx.TerminalID,
			BatchID:           tx.BatchID,
			AuthorizationCode: tx.AuthorizationCode,
			Status:            tx.Status,
		})
	}
	return writeRows(ctx, path, &posRow{}, rows)
}

// WriteProcessorTransactions writes the processor ledger to a SQLite
// database file, replacing any existing transactions table.
func (w *SQLiteLedgerWriter) WriteProcessorTransactions(ctx context.Context, path string, transactions []domain.ProcessorTransaction) error {
	rows := make([]processorRow, 0, len(transactions))
	for _, tx := range transactions {
		amount, _ := tx.Amount.Float64()
		rows = append(rows, processorRow{
			TransactionID:     tx.TransactionID,
			ReferenceID:       tx.ReferenceID,
			CardID:            tx.CardID,
			Amount:            amount,
			TransactionType:   string(tx.Type),
			ProcessedAt:       formatOptionalTime(tx.ProcessedAt),
			MerchantID:        tx.MerchantID,
			TerminalID:        tx.TerminalID,
			BatchID:           tx.BatchID,
			AuthorizationCode: tx.AuthorizationCode,
			Status:            tx.Status,
		})
	}
	return writeRows(ctx, path, &processorRow{}, rows)
}

func writeRows[T any](ctx context.Context, path string, model *T, rows []T) error {
	db, err := openSQLite(path)
	if err != nil {
		return err
	}
	defer closeSQLite(db)

	if err := db.Migrator().DropTable("transactions"); err != nil {
		return fmt.Errorf("failed to reset transactions table in %s: %w", path, err)
	}
	if err := db.WithContext(ctx).Table("transactions").AutoMigrate(model); err != nil {
		return fmt.Errorf("failed to migrate transactions table in %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Table("transactions").CreateInBatches(rows, 500).Error; err != nil {
		return fmt.Errorf("failed to insert transactions into %s: %w", path, err)
	}
	return nil
}

func openSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return db, nil
}

func closeSQLite(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func formatOptionalTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
