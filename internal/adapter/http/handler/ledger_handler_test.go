package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clubops/clubledger/internal/adapter/http/dto"
	"github.com/clubops/clubledger/internal/domain"
	"github.com/clubops/clubledger/internal/usecase"
)

type ledgerServiceStub struct {
	creditFn      func(ctx context.Context, input usecase.CreditInput) (*domain.Entry, error)
	debitFn       func(ctx context.Context, input usecase.DebitInput) (*domain.Entry, error)
	transferFn    func(ctx context.Context, input usecase.TransferInput) (*usecase.TransferResult, error)
	applyFn       func(ctx context.Context, accountID string, req usecase.MutationRequest) (*usecase.MutationResult, error)
	consistencyFn func(ctx context.Context, accountID string) (bool, error)
}

func (s *ledgerServiceStub) Credit(ctx context.Context, input usecase.CreditInput) (*domain.Entry, error) {
	return s.creditFn(ctx, input)
}

func (s *ledgerServiceStub) Debit(ctx context.Context, input usecase.DebitInput) (*domain.Entry, error) {
	return s.debitFn(ctx, input)
}

func (s *ledgerServiceStub) Transfer(ctx context.Context, input usecase.TransferInput) (*usecase.TransferResult, error) {
	return s.transferFn(ctx, input)
}

func (s *ledgerServiceStub) Apply(ctx context.Context, accountID string, req usecase.MutationRequest) (*usecase.MutationResult, error) {
	return s.applyFn(ctx, accountID, req)
}

func (s *ledgerServiceStub) CheckAccountConsistency(ctx context.Context, accountID string) (bool, error) {
	return s.consistencyFn(ctx, accountID)
}

func TestLedgerHandler_Apply_Success(t *testing.T) {
	entry := &domain.Entry{ID: "e-1", AccountID: "acc-1", Type: domain.EntryTypeCredit, Amount: decimal.NewFromInt(50)}
	var capturedAccount string
	var captured usecase.MutationRequest

	h := NewLedgerHandler(&ledgerServiceStub{
		applyFn: func(ctx context.Context, accountID string, req usecase.MutationRequest) (*usecase.MutationResult, error) {
			capturedAccount = accountID
			captured = req
			return &usecase.MutationResult{Entries: []*domain.Entry{entry}}, nil
		},
	})

	body, _ := json.Marshal(dto.MutationRequest{
		Amount:      decimal.NewFromInt(50),
		Type:        "credit",
		Description: "Monthly dues",
		Category:    "dues",
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/mutations", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	h.Apply(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if capturedAccount != "acc-1" || captured.Type != "credit" || captured.Category != "dues" {
		t.Fatalf("expected input to match request, got account=%s %+v", capturedAccount, captured)
	}

	var resp dto.MutationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Entries) != 1 || resp.Entries[0].ID != "e-1" {
		t.Fatalf("expected one entry e-1, got %+v", resp.Entries)
	}
}

func TestLedgerHandler_Apply_UnknownType(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		applyFn: func(ctx context.Context, accountID string, req usecase.MutationRequest) (*usecase.MutationResult, error) {
			return nil, domain.ErrInvalidEntryType
		},
	})

	body, _ := json.Marshal(dto.MutationRequest{Amount: decimal.NewFromInt(10), Type: "withdraw"})
	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/mutations", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	h.Apply(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLedgerHandler_Debit_InsufficientBalance(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		debitFn: func(ctx context.Context, input usecase.DebitInput) (*domain.Entry, error) {
			return nil, domain.ErrInsufficientBalance
		},
	})

	body, _ := json.Marshal(dto.DebitRequest{Amount: decimal.NewFromInt(150)})
	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/debit", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	h.Debit(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestLedgerHandler_Transfer_Success(t *testing.T) {
	fromEntry := &domain.Entry{ID: "corr-1-from", Type: domain.EntryTypeDebit}
	toEntry := &domain.Entry{ID: "corr-1-to", Type: domain.EntryTypeCredit}

	h := NewLedgerHandler(&ledgerServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferInput) (*usecase.TransferResult, error) {
			if input.FromAccountID != "acc-1" || input.ToAccountID != "acc-2" {
				t.Fatalf("unexpected input %+v", input)
			}
			return &usecase.TransferResult{
				CorrelationID: "corr-1",
				FromEntry:     fromEntry,
				ToEntry:       toEntry,
			}, nil
		},
	})

	body, _ := json.Marshal(dto.TransferRequest{
		ToAccountID: "acc-2",
		Amount:      decimal.NewFromInt(300),
		Description: "rent",
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/transfer", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	h.Transfer(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp dto.TransferResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.CorrelationID != "corr-1" || resp.FromEntry.ID != "corr-1-from" || resp.ToEntry.ID != "corr-1-to" {
		t.Fatalf("expected correlated entry pair, got %+v", resp)
	}
}

func TestLedgerHandler_Transfer_MissingCounterparty(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferInput) (*usecase.TransferResult, error) {
			return nil, domain.ErrMissingCounterparty
		},
	})

	body, _ := json.Marshal(dto.TransferRequest{Amount: decimal.NewFromInt(10)})
	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/transfer", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	h.Transfer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLedgerHandler_CheckConsistency(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		consistencyFn: func(ctx context.Context, accountID string) (bool, error) {
			return true, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/consistency", nil)
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	h.CheckConsistency(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ConsistencyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Consistent {
		t.Fatalf("expected consistent account, got %+v", resp)
	}
}

func TestLedgerHandler_CheckConsistency_Inconsistent(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		consistencyFn: func(ctx context.Context, accountID string) (bool, error) {
			return false, usecase.ErrInconsistentHistory
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/consistency", nil)
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	h.CheckConsistency(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ConsistencyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Consistent {
		t.Fatalf("expected inconsistent account, got %+v", resp)
	}
}
