package gateway

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"giftcard-reconciliation/internal/domain"
)

// XLSXReportWriter exports a reconciliation report as a workbook with a
// Results sheet (one row per pair) and a Summary sheet (key/value rows).
type XLSXReportWriter struct {
	precision int32
}

// NewXLSXReportWriter creates a writer rendering currency with the given
// number of fractional digits.
func NewXLSXReportWriter(precision int32) *XLSXReportWriter {
	return &XLSXReportWriter{precision: precision}
}

// Write saves the report workbook to path.
func (w *XLSXReportWriter) Write(path string, report *domain.ReconciliationReport) error {
	f := excelize.NewFile()
	defer f.Close()

	const resultsSheet = "Results"
	index, err := f.NewSheet(resultsSheet)
	if err != nil {
		return fmt.Errorf("failed to create results sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for i, header := range resultHeader {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(resultsSheet, cell, header); err != nil {
			return fmt.Errorf("failed to write results header: %w", err)
		}
	}

	for idx, result := range report.Results {
		row := idx + 2
		if result.POS != nil {
			f.SetCellValue(resultsSheet, fmt.Sprintf("A%d", row), result.POS.TransactionID)
			f.SetCellValue(resultsSheet, fmt.Sprintf("B%d", row), result.POS.Amount.StringFixed(w.precision))
		}
		if result.Processor != nil {
			f.SetCellValue(resultsSheet, fmt.Sprintf("C%d", row), result.Processor.TransactionID)
			f.SetCellValue(resultsSheet, fmt.Sprintf("D%d", row), result.Processor.Amount.StringFixed(w.precision))
		}
		if result.AmountDifference != nil {
			f.SetCellValue(resultsSheet, fmt.Sprintf("E%d", row), result.AmountDifference.StringFixed(w.precision))
		}
		f.SetCellValue(resultsSheet, fmt.Sprintf("F%d", row), string(result.Discrepancy))
	}

	if err := w.writeSummarySheet(f, report.Summary); err != nil {
		return err
	}

	// Drop the default sheet so the workbook opens on Results.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func (w *XLSXReportWriter) writeSummarySheet(f *excelize.File, s domain.Summary) error {
	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	rows := [][2]interface{}{
		{"Total POS Transactions", s.TotalPOSTransactions},
		{"Total Processor Transactions", s.TotalProcessorTransactions},
		{"Matched Pairs", s.MatchedPairs},
		{"POS Amount Total", s.POSAmountTotal.StringFixed(w.precision)},
		{"Processor Amount Total", s.ProcessorAmountTotal.StringFixed(w.precision)},
		{"Net Amount Difference", s.NetAmountDifference.StringFixed(w.precision)},
		{"Missing in Processor", s.MissingInProcessor},
		{"Missing in POS", s.MissingInPOS},
		{"Decimal Shift Errors", s.DecimalShiftErrors},
		{"Other Amount Discrepancies", s.AmountDiscrepancies},
		{"Perfectly Matched", s.PerfectlyMatched},
		{"Unparseable POS Records", s.UnparseablePOS},
		{"Unparseable Processor Records", s.UnparseableProcessor},
	}
	for i, row := range rows {
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+1), row[0]); err != nil {
			return fmt.Errorf("failed to write summary sheet: %w", err)
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+1), row[1]); err != nil {
			return fmt.Errorf("failed to write summary sheet: %w", err)
		}
	}
	return nil
}
