package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubops/clubledger/internal/adapter/http/dto"
	"github.com/clubops/clubledger/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	GetCategorySummary(ctx context.Context, input usecase.CategorySummaryInput) (*usecase.CategorySummary, error)
}

// ReportHandler handles reporting HTTP requests.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// CategorySummary reports per-category credit and debit totals for an
// account. Optional from/to query parameters bound the range (RFC 3339).
func (h *ReportHandler) CategorySummary(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	from, err := parseTimeQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from parameter", err.Error())
		return
	}

	to, err := parseTimeQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to parameter", err.Error())
		return
	}

	summary, err := h.reportUC.GetCategorySummary(r.Context(), usecase.CategorySummaryInput{
		AccountID: accountID,
		From:      from,
		To:        to,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CategorySummaryFromUseCase(accountID, summary))
}
