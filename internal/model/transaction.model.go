package model

import (
	"math"
	"strings"
	"time"
)

// TransactionType is the sign carrier of a ledger entry.
type TransactionType string

const (
	TransactionDebit  TransactionType = "debit"  // customer owes more
	TransactionCredit TransactionType = "credit" // customer paid
)

// ParseTransactionType coerces any unrecognized value to debit.
func ParseTransactionType(s string) TransactionType {
	if TransactionType(strings.TrimSpace(s)) == TransactionCredit {
		return TransactionCredit
	}
	return TransactionDebit
}

// TimeLayout is fixed-width UTC so that lexicographic order on created_at
// equals chronological order.
const TimeLayout = "2006-01-02T15:04:05.000000Z"

func NowUTC() string {
	return time.Now().UTC().Format(TimeLayout)
}

type Transaction struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customer_id"`
	Amount     float64         `json:"amount"` // magnitude; sign lives in Type
	Type       TransactionType `json:"type"`
	Note       *string         `json:"note,omitempty"`
	CreatedAt  string          `json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }

// TransactionCreateRequest is the input for appending a ledger entry.
// The customer reference is not validated on append.
type TransactionCreateRequest struct {
	CustomerID int64
	Amount     float64
	Type       string
	Note       string
	CreatedAt  string // empty means now
}

// Normalized applies the write-time rules: amount becomes its absolute
// value, unknown types become debit, empty note becomes nil and a missing
// timestamp defaults to the current UTC time.
func (p TransactionCreateRequest) Normalized() *Transaction {
	var note *string
	if n := strings.TrimSpace(p.Note); n != "" {
		note = &n
	}
	createdAt := p.CreatedAt
	if createdAt == "" {
		createdAt = NowUTC()
	}
	return &Transaction{
		CustomerID: p.CustomerID,
		Amount:     math.Abs(p.Amount),
		Type:       ParseTransactionType(p.Type),
		Note:       note,
		CreatedAt:  createdAt,
	}
}
