package gateway

import (
	"encoding/csv"
	"fmt"
	"os"

	"giftcard-reconciliation/internal/domain"
)

var resultHeader = []string{
	"pos_transaction_id",
	"pos_amount",
	"processor_transaction_id",
	"processor_amount",
	"amount_difference",
	"discrepancy_type",
}

// ReportWriter exports a reconciliation report as a per-pair results CSV and
// a fixed-format summary text file. Currency values render with the
// configured number of decimal places.
type ReportWriter struct {
	precision int32
}

// NewReportWriter creates a writer rendering currency with the given number
// of fractional digits.
func NewReportWriter(precision int32) *ReportWriter {
	return &ReportWriter{precision: precision}
}

// WriteResultsCSV writes one row per classified pair. Sides that are absent
// from a pair leave their columns empty.
func (w *ReportWriter) WriteResultsCSV(path string, report *domain.ReconciliationReport) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(resultHeader); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}

	for _, result := range report.Results {
		row := make([]string, len(resultHeader))
		if result.POS != nil {
			row[0] = result.POS.TransactionID
			row[1] = result.POS.Amount.StringFixed(w.precision)
		}
		if result.Processor != nil {
			row[2] = result.Processor.TransactionID
			row[3] = result.Processor.Amount.StringFixed(w.precision)
		}
		if result.AmountDifference != nil {
			row[4] = result.AmountDifference.StringFixed(w.precision)
		}
		row[5] = string(result.Discrepancy)
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write result row to %s: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush results to %s: %w", path, err)
	}
	return nil
}

// WriteSummaryText writes the ledger-wide summary as key: value lines.
func (w *ReportWriter) WriteSummaryText(path string, summary domain.Summary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file %s: %w", path, err)
	}
	defer file.Close()

	for _, line := range w.summaryLines(summary) {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return fmt.Errorf("failed to write summary to %s: %w", path, err)
		}
	}
	return nil
}

func (w *ReportWriter) summaryLines(s domain.Summary) []string {
	return []string{
		"Transaction Reconciliation Summary",
		"=================================",
		"",
		fmt.Sprintf("Total POS Transactions: %d", s.TotalPOSTransactions),
		fmt.Sprintf("Total Processor Transactions: %d", s.TotalProcessorTransactions),
		fmt.Sprintf("Matched Pairs: %d", s.MatchedPairs),
		fmt.Sprintf("POS Amount Total: $%s", s.POSAmountTotal.StringFixed(w.precision)),
		fmt.Sprintf("Processor Amount Total: $%s", s.ProcessorAmountTotal.StringFixed(w.precision)),
		fmt.Sprintf("Net Amount Difference: $%s", s.NetAmountDifference.StringFixed(w.precision)),
		fmt.Sprintf("Missing in Processor: %d", s.MissingInProcessor),
		fmt.Sprintf("Missing in POS: %d", s.MissingInPOS),
		fmt.Sprintf("Decimal Shift Errors: %d", s.DecimalShiftErrors),
		fmt.Sprintf("Other Amount Discrepancies: %d", s.AmountDiscrepancies),
		fmt.Sprintf("Perfectly Matched: %d", s.PerfectlyMatched),
		fmt.Sprintf("Unparseable POS Records: %d", s.UnparseablePOS),
		fmt.Sprintf("Unparseable Processor Records: %d", s.UnparseableProcessor),
	}
}
