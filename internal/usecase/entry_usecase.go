package usecase

import (
	"context"

	"github.com/clubops/clubledger/internal/domain"
)

// EntryUseCase handles read access to ledger history.
type EntryUseCase struct {
	entryRepo EntryRepository
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(entryRepo EntryRepository) *EntryUseCase {
	return &EntryUseCase{
		entryRepo: entryRepo,
	}
}

// GetEntriesByAccountInput represents input for listing entries.
type GetEntriesByAccountInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// GetEntriesByAccount lists entries for an account in insertion order.
func (uc *EntryUseCase) GetEntriesByAccount(ctx context.Context, input GetEntriesByAccountInput) ([]*domain.Entry, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.entryRepo.GetByAccount(ctx, input.AccountID, limit, offset)
}

// GetEntriesByCorrelation returns all entries sharing a correlation ID: one
// entry for a plain mutation, the debit and credit pair for a transfer.
func (uc *EntryUseCase) GetEntriesByCorrelation(ctx context.Context, correlationID string) ([]*domain.Entry, error) {
	entries, err := uc.entryRepo.GetByCorrelation(ctx, correlationID)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, domain.ErrEntryNotFound
	}

	return entries, nil
}
