package domain

import "errors"

var (
	// Ledger errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrMissingCounterparty = errors.New("transfer requires a destination account")
	ErrSameAccount         = errors.New("cannot transfer to the same account")
	ErrInvalidEntryType    = errors.New("unknown mutation type")
	ErrEntryNotFound       = errors.New("ledger entry not found")

	// ErrStoreUnavailable marks transient store failures. Callers may retry;
	// business-rule failures above must not be retried.
	ErrStoreUnavailable = errors.New("store temporarily unavailable")

	// Member errors
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidRole    = errors.New("invalid member role")

	// Auth errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already in use")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// IsRetriable reports whether an error is a transient store failure rather
// than a business-rule rejection.
func IsRetriable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
