package recon

import "github.com/shopspring/decimal"

// Config carries the business constants of the engine. It is passed
// explicitly into classification and aggregation rather than read from
// ambient state.
type Config struct {
	// Tolerance is the monetary epsilon below which two amounts are
	// considered equal. Defaults to one minor currency unit.
	Tolerance decimal.Decimal

	// CurrencyPrecision is the number of fractional digits used when
	// rendering currency values.
	CurrencyPrecision int32
}

// DefaultConfig returns the engine defaults: 0.01 tolerance, 2 decimals.
func DefaultConfig() Config {
	return Config{
		Tolerance:         decimal.New(1, -2),
		CurrencyPrecision: 2,
	}
}
