package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clubops/clubledger/internal/domain"
	"github.com/clubops/clubledger/internal/usecase"
	"github.com/clubops/clubledger/internal/usecase/mocks"
)

func TestEntryUseCase_GetEntriesByAccount(t *testing.T) {
	entryRepo := mocks.NewMockEntryRepository()
	for i := 0; i < 3; i++ {
		entryRepo.Create(context.Background(), nil, &domain.Entry{
			ID:        "entry-" + string(rune('a'+i)),
			AccountID: "acc-1",
			Type:      domain.EntryTypeCredit,
			Amount:    decimal.NewFromInt(int64(i + 1)),
		})
	}

	uc := usecase.NewEntryUseCase(entryRepo)

	entries, err := uc.GetEntriesByAccount(context.Background(), usecase.GetEntriesByAccountInput{
		AccountID: "acc-1",
		Limit:     2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}

func TestEntryUseCase_GetEntriesByCorrelation(t *testing.T) {
	entryRepo := mocks.NewMockEntryRepository()
	entryRepo.Create(context.Background(), nil, &domain.Entry{ID: "c1-from", CorrelationID: "c1", AccountID: "acc-1", Type: domain.EntryTypeDebit})
	entryRepo.Create(context.Background(), nil, &domain.Entry{ID: "c1-to", CorrelationID: "c1", AccountID: "acc-2", Type: domain.EntryTypeCredit})

	uc := usecase.NewEntryUseCase(entryRepo)

	entries, err := uc.GetEntriesByCorrelation(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected the transfer pair, got %d entries", len(entries))
	}

	if _, err := uc.GetEntriesByCorrelation(context.Background(), "ghost"); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}
