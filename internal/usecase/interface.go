package usecase

import (
	"context"
	"giftcard-reconciliation/internal/domain"
)

// LedgerRepository defines the interface for fetching ledger snapshots.
// The usecase layer depends on this interface, not on a concrete
// implementation; CSV and SQLite gateways both satisfy it.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go LedgerRepository
type LedgerRepository interface {
	GetPOSTransactions(ctx context.Context, source string) ([]domain.POSTransaction, error)
	GetProcessorTransactions(ctx context.Context, source string) ([]domain.ProcessorTransaction, error)
}
