package usecase

import "time"

const (
	// DefaultTransactionTimeout caps how long a ledger mutation may hold a
	// database transaction open.
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour

	// Entry ID suffixes for the two sides of a transfer.
	transferFromSuffix = "-from"
	transferToSuffix   = "-to"
)
