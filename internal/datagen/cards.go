package datagen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// GiftCard is one card in the synthetic card pool.
type GiftCard struct {
	CardNumber     string
	Denomination   decimal.Decimal
	ActivationDate time.Time
	Status         string
}

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// cardNumber formats a card number in one of the common retail patterns.
func cardNumber(rng *rand.Rand, storeID string) string {
	switch rng.Intn(4) {
	case 0: // 16-digit retail format
		return fmt.Sprintf("6073-%04d-%04d-%04d", rng.Intn(10000), rng.Intn(10000), rng.Intn(10000))
	case 1: // store-specific format
		return fmt.Sprintf("GC-%s-%06d", storeID, rng.Intn(1000000))
	case 2: // Amazon-style alphanumeric
		return fmt.Sprintf("%s%02d-%s-%04d", randString(rng, 2), rng.Intn(100), randString(rng, 6), rng.Intn(10000))
	default: // Microsoft-style alphanumeric
		return fmt.Sprintf("MSFT-%04d-%s-%04d", rng.Intn(10000), randString(rng, 4), rng.Intn(10000))
	}
}

func randString(rng *rand.Rand, length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		b.WriteByte(alphanumeric[rng.Intn(len(alphanumeric))])
	}
	return b.String()
}

func digits(rng *rand.Rand, length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	return b.String()
}
