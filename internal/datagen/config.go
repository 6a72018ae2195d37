package datagen

import "github.com/shopspring/decimal"

// Business constants for synthetic ledger generation. Error rates are based
// on industry statistics, slightly exaggerated so every discrepancy class
// shows up in small samples.

// StoreConfig describes the simulated store.
type StoreConfig struct {
	StoreID           string
	Terminals         []string
	OpenHour          int
	CloseHour         int
	PeakWindows       [][2]int
	WeekendMultiplier float64
}

// ErrorRates are per-transaction probabilities of each injected failure mode.
type ErrorRates struct {
	DecimalShift       float64 // decimal point error
	DoubleCharge       float64 // same transaction appears twice in POS
	MissingTransaction float64 // transaction missing from processor
	TimingMismatch     float64 // significant delay between systems
	WrongAmount        float64 // different amount in processor vs POS
}

// DelayBands are processor delay ranges in seconds.
type DelayBands struct {
	NormalMin, NormalMax   int
	DelayedMin, DelayedMax int
}

// DefaultStoreConfig returns a five-terminal store with lunch and dinner
// rush windows.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		StoreID:           "STORE-0512",
		Terminals:         []string{"POS-001", "POS-002", "POS-003", "POS-004", "POS-005"},
		OpenHour:          8,
		CloseHour:         22,
		PeakWindows:       [][2]int{{11, 14}, {17, 20}},
		WeekendMultiplier: 1.5,
	}
}

// DefaultErrorRates returns the standard injection rates.
func DefaultErrorRates() ErrorRates {
	return ErrorRates{
		DecimalShift:       0.03,
		DoubleCharge:       0.02,
		MissingTransaction: 0.05,
		TimingMismatch:     0.05,
		WrongAmount:        0.03,
	}
}

// DefaultDelayBands returns the processor delay ranges.
func DefaultDelayBands() DelayBands {
	return DelayBands{NormalMin: 1, NormalMax: 5, DelayedMin: 30, DelayedMax: 120}
}

// Denominations returns the gift card amounts observed in retail: standard
// and special-occasion amounts, small increments, and marketing price points.
func Denominations() []decimal.Decimal {
	values := []string{
		"25.00", "50.00", "100.00",
		"75.00", "150.00", "200.00",
		"10.00", "15.00", "20.00",
		"19.99", "49.99", "99.99",
	}
	amounts := make([]decimal.Decimal, len(values))
	for i, v := range values {
		amounts[i] = decimal.RequireFromString(v)
	}
	return amounts
}

// CardStatuses are the lifecycle states a card in the pool can be in.
func CardStatuses() []string {
	return []string{"ACTIVE", "INACTIVE", "REDEEMED", "PENDING", "EXPIRED", "CANCELLED"}
}
