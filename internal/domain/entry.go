package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates the direction of a ledger entry. Amounts are always
// positive; direction is carried by the type.
type EntryType string

const (
	EntryTypeCredit EntryType = "credit"
	EntryTypeDebit  EntryType = "debit"
)

// IsValid checks if the entry type is known.
func (t EntryType) IsValid() bool {
	return t == EntryTypeCredit || t == EntryTypeDebit
}

// Entry is an immutable record of a single balance change. Entries are only
// ever appended; they are never updated or deleted.
//
// The two entries produced by a transfer share a correlation ID and carry
// IDs suffixed "-from" (debit side) and "-to" (credit side).
type Entry struct {
	ID                  string
	AccountID           string
	CorrelationID       string
	Type                EntryType
	Amount              decimal.Decimal
	Description         string
	Category            string
	TransferToAccount   *string
	TransferFromAccount *string
	PreviousBalance     decimal.Decimal
	CurrentBalance      decimal.Decimal
	AccountVersion      int64
	CreatedAt           time.Time
}
