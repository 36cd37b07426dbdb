package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubops/clubledger/internal/adapter/http/dto"
	"github.com/clubops/clubledger/internal/domain"
	"github.com/clubops/clubledger/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	Credit(ctx context.Context, input usecase.CreditInput) (*domain.Entry, error)
	Debit(ctx context.Context, input usecase.DebitInput) (*domain.Entry, error)
	Transfer(ctx context.Context, input usecase.TransferInput) (*usecase.TransferResult, error)
	Apply(ctx context.Context, accountID string, req usecase.MutationRequest) (*usecase.MutationResult, error)
	CheckAccountConsistency(ctx context.Context, accountID string) (bool, error)
}

// LedgerHandler handles ledger mutation HTTP requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Apply applies a mutation payload against an account. The mutation type in
// the body selects credit, debit or transfer.
func (h *LedgerHandler) Apply(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.MutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.ledgerUC.Apply(r.Context(), accountID, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to apply mutation", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MutationFromResult(result))
}

// Credit credits an account.
func (h *LedgerHandler) Credit(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.CreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.ledgerUC.Credit(r.Context(), usecase.CreditInput{
		AccountID:   accountID,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to credit account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// Debit debits an account.
func (h *LedgerHandler) Debit(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.DebitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.ledgerUC.Debit(r.Context(), usecase.DebitInput{
		AccountID:   accountID,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to debit account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// Transfer moves an amount from this account to another.
func (h *LedgerHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.ledgerUC.Transfer(r.Context(), usecase.TransferInput{
		FromAccountID: accountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		Description:   req.Description,
		Category:      req.Category,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to transfer", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransferFromResult(result))
}

// CheckConsistency verifies the account balance against its entry history.
func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	_, err := h.ledgerUC.CheckAccountConsistency(r.Context(), accountID)
	if err != nil {
		status := mapDomainError(err)
		if status == http.StatusConflict {
			writeJSON(w, http.StatusOK, dto.ConsistencyResponse{AccountID: accountID, Consistent: false})
			return
		}

		writeError(w, status, "failed to check consistency", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyResponse{AccountID: accountID, Consistent: true})
}
