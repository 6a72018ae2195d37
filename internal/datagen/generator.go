package datagen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"giftcard-reconciliation/internal/domain"
)

var ten = decimal.NewFromInt(10)

// Options controls the synthetic ledger generator. Zero values fall back to
// the defaults in New.
type Options struct {
	Seed             int64
	TransactionCount int
	CardPoolSize     int
	StartDate        time.Time
	Days             int
}

// Generator produces a POS ledger and the processor's view of it, with
// realistic timing delays and injected recording errors at configured rates.
// Output is deterministic for a given Options value: all randomness,
// including processor transaction ids, is drawn from one seeded source.
type Generator struct {
	opts   Options
	store  StoreConfig
	rates  ErrorRates
	delays DelayBands
	rng    *rand.Rand
}

// New creates a generator. Defaults: 5000 transactions, 1000 cards, a 7-day
// window starting 2025-01-06.
func New(opts Options) *Generator {
	if opts.TransactionCount <= 0 {
		opts.TransactionCount = 5000
	}
	if opts.CardPoolSize <= 0 {
		opts.CardPoolSize = 1000
	}
	if opts.Days <= 0 {
		opts.Days = 7
	}
	if opts.StartDate.IsZero() {
		opts.StartDate = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	}
	return &Generator{
		opts:   opts,
		store:  DefaultStoreConfig(),
		rates:  DefaultErrorRates(),
		delays: DefaultDelayBands(),
		rng:    rand.New(rand.NewSource(opts.Seed)),
	}
}

// GenerateCards builds the gift card pool.
func (g *Generator) GenerateCards() []GiftCard {
	denominations := Denominations()
	statuses := CardStatuses()

	cards := make([]GiftCard, 0, g.opts.CardPoolSize)
	for i := 0; i < g.opts.CardPoolSize; i++ {
		cards = append(cards, GiftCard{
			CardNumber:     cardNumber(g.rng, g.store.StoreID),
			Denomination:   denominations[g.rng.Intn(len(denominations))],
			ActivationDate: g.opts.StartDate.AddDate(0, 0, -g.rng.Intn(90)),
			Status:         statuses[g.rng.Intn(len(statuses))],
		})
	}
	return cards
}

// GenerateLedgers produces the two ledgers. Every POS transaction normally
// gets a processor counterpart referencing it after a short delay; the
// injected error modes are:
//
//   - missing transaction: no processor record at all
//   - double charge: the POS row is duplicated under the same id
//   - decimal shift: processor amount lands a factor of ten off
//   - wrong amount: processor amount perturbed by up to ten currency units
//   - timing mismatch: processor record delayed well beyond the normal band
func (g *Generator) GenerateLedgers(cards []GiftCard) ([]domain.POSTransaction, []domain.ProcessorTransaction) {
	pos := make([]domain.POSTransaction, 0, g.opts.TransactionCount)
	proc := make([]domain.ProcessorTransaction, 0, g.opts.TransactionCount)

	for i := 0; i < g.opts.TransactionCount; i++ {
		card := cards[g.rng.Intn(len(cards))]
		timestamp := g.transactionTime()
		terminal := g.store.Terminals[g.rng.Intn(len(g.store.Terminals))]

		posTx := domain.POSTransaction{
			TransactionID:     "POS" + digits(g.rng, 10),
			CardID:            card.CardNumber,
			Amount:            g.transactionAmount(card),
			Type:              g.transactionType(),
			Timestamp:         timestamp,
			StoreID:           g.store.StoreID,
			TerminalID:        terminal,
			BatchID:           fmt.Sprintf("BATCH-%s-%s", timestamp.Format("20060102"), terminal),
			AuthorizationCode: digits(g.rng, 6),
			Status:            "APPROVED",
		}
		pos = append(pos, posTx)

		if g.hit(g.rates.DoubleCharge) {
			pos = append(pos, posTx)
		}
		if g.hit(g.rates.MissingTransaction) {
			continue
		}
		proc = append(proc, g.processorView(posTx))
	}
	return pos, proc
}

// processorView derives the processor's record of a POS transaction,
// possibly with an injected amount error.
func (g *Generator) processorView(posTx domain.POSTransaction) domain.ProcessorTransaction {
	amount := posTx.Amount
	switch {
	case g.hit(g.rates.DecimalShift):
		if g.rng.Intn(2) == 0 {
			amount = amount.Mul(ten)
		} else {
			amount = amount.Div(ten)
		}
	case g.hit(g.rates.WrongAmount):
		// off by 0.01 .. 10.00 in either direction
		cents := int64(g.rng.Intn(1000) + 1)
		if g.rng.Intn(2) == 0 {
			cents = -cents
		}
		amount = amount.Add(decimal.New(cents, -2))
	}

	return domain.ProcessorTransaction{
		TransactionID:     g.uuidString(),
		ReferenceID:       posTx.TransactionID,
		CardID:            posTx.CardID,
		Amount:            amount,
		Type:              posTx.Type,
		ProcessedAt:       posTx.Timestamp.Add(g.processorDelay()),
		MerchantID:        "MER-" + g.store.StoreID,
		TerminalID:        posTx.TerminalID,
		BatchID:           posTx.BatchID,
		AuthorizationCode: posTx.AuthorizationCode,
		Status:            "SETTLED",
	}
}

// transactionTime picks a day in the window (weekends weighted up) and an
// hour biased toward the peak windows.
func (g *Generator) transactionTime() time.Time {
	day := g.opts.StartDate.AddDate(0, 0, g.rng.Intn(g.opts.Days))
	if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
		// re-roll once against the weekend multiplier
		if g.rng.Float64() < (g.store.WeekendMultiplier-1)/g.store.WeekendMultiplier {
			alt := g.opts.StartDate.AddDate(0, 0, g.rng.Intn(g.opts.Days))
			if wd := alt.Weekday(); wd == time.Saturday || wd == time.Sunday {
				day = alt
			}
		}
	}

	var hour int
	if g.rng.Float64() < 0.7 {
		window := g.store.PeakWindows[g.rng.Intn(len(g.store.PeakWindows))]
		hour = window[0] + g.rng.Intn(window[1]-window[0])
	} else {
		hour = g.store.OpenHour + g.rng.Intn(g.store.CloseHour-g.store.OpenHour)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, g.rng.Intn(60), g.rng.Intn(60), 0, time.UTC)
}

func (g *Generator) transactionAmount(card GiftCard) decimal.Decimal {
	if g.rng.Float64() < 0.6 {
		return card.Denomination
	}
	denominations := Denominations()
	return denominations[g.rng.Intn(len(denominations))]
}

func (g *Generator) transactionType() domain.TransactionType {
	types := []domain.TransactionType{
		domain.TransactionTypePurchase,
		domain.TransactionTypePurchase,
		domain.TransactionTypePurchase,
		domain.TransactionTypePurchase,
		domain.TransactionTypeActivate,
		domain.TransactionTypeReload,
		domain.TransactionTypeRefund,
		domain.TransactionTypeBalance,
	}
	return types[g.rng.Intn(len(types))]
}

func (g *Generator) processorDelay() time.Duration {
	band := g.delays
	if g.hit(g.rates.TimingMismatch) {
		return time.Duration(band.DelayedMin+g.rng.Intn(band.DelayedMax-band.DelayedMin+1)) * time.Second
	}
	return time.Duration(band.NormalMin+g.rng.Intn(band.NormalMax-band.NormalMin+1)) * time.Second
}

func (g *Generator) hit(rate float64) bool {
	return g.rng.Float64() < rate
}

// uuidString draws a v4 UUID from the generator's own random source so runs
// stay reproducible for a given seed.
func (g *Generator) uuidString() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// math/rand.Read never fails
		panic(err)
	}
	return id.String()
}
