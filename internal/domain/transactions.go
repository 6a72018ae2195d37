package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType describes the nature of a gift card transaction.
type TransactionType string

const (
	TransactionTypeActivate    TransactionType = "ACTIVATE"
	TransactionTypePurchase    TransactionType = "PURCHASE"
	TransactionTypeRefund      TransactionType = "REFUND"
	TransactionTypeBalance     TransactionType = "BALANCE"
	TransactionTypeReload      TransactionType = "RELOAD"
	TransactionTypeVoid        TransactionType = "VOID"
	TransactionTypePartialAuth TransactionType = "PARTIAL_AUTH"
	TransactionTypeLoadFee     TransactionType = "LOAD_FEE"
)

// POSTransaction represents a transaction recorded by the point-of-sale
// system. TransactionID is the primary key used for matching; every field
// besides TransactionID and Amount is optional and only affects reporting.
type POSTransaction struct {
	TransactionID     string          `json:"transaction_id"`
	CardID            string          `json:"card_id,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Type              TransactionType `json:"transaction_type,omitempty"`
	Timestamp         time.Time       `json:"timestamp,omitempty"`
	StoreID           string          `json:"store_id,omitempty"`
	TerminalID        string          `json:"terminal_id,omitempty"`
	BatchID           string          `json:"batch_id,omitempty"`
	AuthorizationCode string          `json:"authorization_code,omitempty"`
	Status            string          `json:"status,omitempty"`
}

// ProcessorTransaction represents the payment processor's independent record
// of the same purchase. ReferenceID is expected to equal the originating POS
// TransactionID and is the join key for reconciliation.
type ProcessorTransaction struct {
	TransactionID     string          `json:"transaction_id"`
	ReferenceID       string          `json:"reference_id"`
	CardID            string          `json:"card_id,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Type              TransactionType `json:"transaction_type,omitempty"`
	ProcessedAt       time.Time       `json:"processed_at,omitempty"`
	MerchantID        string          `json:"merchant_id,omitempty"`
	TerminalID        string          `json:"terminal_id,omitempty"`
	BatchID           string          `json:"batch_id,omitempty"`
	AuthorizationCode string          `json:"authorization_code,omitempty"`
	Status            string          `json:"status,omitempty"`
}
