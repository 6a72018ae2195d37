package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"giftcard-reconciliation/internal/config"
	"giftcard-reconciliation/internal/gateway"
	"giftcard-reconciliation/internal/usecase"
)

func main() {
	// Define command-line flags
	posSource := flag.String("pos", "", "Path to the POS ledger (CSV file or SQLite database) (required)")
	processorSource := flag.String("processor", "", "Path to the processor ledger (CSV file or SQLite database) (required)")
	sourceKind := flag.String("source", "csv", "Ledger source kind: csv or sqlite")
	configPath := flag.String("config", "", "Optional YAML config file (tolerance, currency_precision)")
	outDir := flag.String("out", "", "Optional directory for results CSV and summary text exports")
	xlsxOut := flag.Bool("xlsx", false, "Also export an XLSX workbook to the output directory")
	flag.Parse()

	// Validate required flags
	if *posSource == "" || *processorSource == "" {
		fmt.Println("Error: Both -pos and -processor are required.")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// --- Dependency Injection (Wiring the application) ---
	// In a larger app, this might be done with a DI container.
	// Here, we do it manually, which is clear and simple.

	// 1. Create the repository (the outermost layer)
	var repo usecase.LedgerRepository
	switch *sourceKind {
	case "csv":
		repo = gateway.NewCSVLedgerRepository()
	case "sqlite":
		repo = gateway.NewSQLiteLedgerRepository()
	default:
		log.Fatalf("Unknown source kind %q (want csv or sqlite)", *sourceKind)
	}

	// 2. Create the usecase and inject the repository (the core logic layer)
	reconciliationUseCase := usecase.NewReconciliationUseCase(repo, cfg)

	// --- Execute the Usecase ---
	report, err := reconciliationUseCase.Reconcile(context.Background(), *posSource, *processorSource)
	if err != nil {
		log.Fatalf("Reconciliation failed: %v", err)
	}

	// --- Present the Output ---
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
		writer := gateway.NewReportWriter(cfg.CurrencyPrecision)
		if err := writer.WriteResultsCSV(filepath.Join(*outDir, "reconciliation_results.csv"), report); err != nil {
			log.Fatalf("Failed to export results CSV: %v", err)
		}
		if err := writer.WriteSummaryText(filepath.Join(*outDir, "reconciliation_summary.txt"), report.Summary); err != nil {
			log.Fatalf("Failed to export summary: %v", err)
		}
		if *xlsxOut {
			xlsxWriter := gateway.NewXLSXReportWriter(cfg.CurrencyPrecision)
			if err := xlsxWriter.Write(filepath.Join(*outDir, "reconciliation_results.xlsx"), report); err != nil {
				log.Fatalf("Failed to export XLSX workbook: %v", err)
			}
		}
	}

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate JSON report: %v", err)
	}

	fmt.Println(string(output))
}
