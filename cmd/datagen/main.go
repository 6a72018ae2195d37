package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"giftcard-reconciliation/internal/datagen"
	"giftcard-reconciliation/internal/gateway"
)

func main() {
	count := flag.Int("count", 5000, "Number of base transactions to generate")
	cards := flag.Int("cards", 1000, "Size of the gift card pool")
	seed := flag.Int64("seed", 42, "Random seed (same seed, same ledgers)")
	days := flag.Int("days", 7, "Length of the trading window in days")
	startStr := flag.String("start", "", "Start date of the trading window (YYYY-MM-DD)")
	outDir := flag.String("out", "data", "Output directory")
	format := flag.String("format", "csv", "Output format: csv, sqlite or both")
	flag.Parse()

	var start time.Time
	if *startStr != "" {
		parsed, err := time.Parse("2006-01-02", *startStr)
		if err != nil {
			log.Fatalf("Error parsing start date: %v", err)
		}
		start = parsed
	}

	if *format != "csv" && *format != "sqlite" && *format != "both" {
		log.Fatalf("Unknown format %q (want csv, sqlite or both)", *format)
	}

	generator := datagen.New(datagen.Options{
		Seed:             *seed,
		TransactionCount: *count,
		CardPoolSize:     *cards,
		StartDate:        start,
		Days:             *days,
	})

	pool := generator.GenerateCards()
	pos, proc := generator.GenerateLedgers(pool)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	if *format == "csv" || *format == "both" {
		writer := gateway.NewCSVLedgerWriter()
		if err := writer.WritePOSTransactions(filepath.Join(*outDir, "pos_transactions.csv"), pos); err != nil {
			log.Fatalf("Failed to write POS CSV: %v", err)
		}
		if err := writer.WriteProcessorTransactions(filepath.Join(*outDir, "processor_transactions.csv"), proc); err != nil {
			log.Fatalf("Failed to write processor CSV: %v", err)
		}
	}

	if *format == "sqlite" || *format == "both" {
		ctx := context.Background()
		writer := gateway.NewSQLiteLedgerWriter()
		if err := writer.WritePOSTransactions(ctx, filepath.Join(*outDir, "pos_system.db"), pos); err != nil {
			log.Fatalf("Failed to write POS database: %v", err)
		}
		if err := writer.WriteProcessorTransactions(ctx, filepath.Join(*outDir, "processor.db"), proc); err != nil {
			log.Fatalf("Failed to write processor database: %v", err)
		}
	}

	fmt.Printf("Generated %d POS transactions and %d processor transactions in %s\n", len(pos), len(proc), *outDir)
}
