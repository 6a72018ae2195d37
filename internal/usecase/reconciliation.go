package usecase

import (
	"context"
	"fmt"

	"giftcard-reconciliation/internal/domain"
	"giftcard-reconciliation/internal/recon"
)

// ReconciliationUseCase orchestrates a reconciliation run: load both ledger
// snapshots through the repository, then hand them to the pure engine.
type ReconciliationUseCase struct {
	repo LedgerRepository
	cfg  recon.Config
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(repo LedgerRepository, cfg recon.Config) *ReconciliationUseCase {
	return &ReconciliationUseCase{repo: repo, cfg: cfg}
}

// Reconcile loads the POS and processor ledgers and reconciles them.
// Any load error fails the whole run: reconciliation correctness depends on
// having complete snapshots of both ledgers, so we never proceed on partial
// data.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, posSource, processorSource string) (*domain.ReconciliationReport, error) {
	posTransactions, err := uc.repo.GetPOSTransactions(ctx, posSource)
	if err != nil {
		return nil, fmt.Errorf("could not get POS transactions: %w", err)
	}

	processorTransactions, err := uc.repo.GetProcessorTransactions(ctx, processorSource)
	if err != nil {
		return nil, fmt.Errorf("could not get processor transactions: %w", err)
	}

	report, err := recon.Reconcile(uc.cfg, posTransactions, processorTransactions)
	if err != nil {
		return nil, fmt.Errorf("reconciliation engine: %w", err)
	}
	return report, nil
}
