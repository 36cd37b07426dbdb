package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubops/clubledger/internal/domain"
)

// ReportCacheTTL bounds how stale a cached category summary can be.
const ReportCacheTTL = time.Minute

// ReportUseCase handles aggregated income/expense reporting. Summaries are
// cached briefly because the dashboard polls them far more often than the
// ledger changes.
type ReportUseCase struct {
	reportRepo ReportRepository
	cache      Cache
}

// NewReportUseCase creates a new ReportUseCase. A nil cache disables caching.
func NewReportUseCase(reportRepo ReportRepository, cache Cache) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		cache:      cache,
	}
}

// CategorySummaryInput represents input for a category summary report.
type CategorySummaryInput struct {
	AccountID string
	From      *time.Time
	To        *time.Time
}

// CategorySummary holds per-category totals plus grand totals for the
// requested account and range.
type CategorySummary struct {
	Categories   []*domain.CategoryTotal `json:"categories"`
	TotalCredits decimal.Decimal         `json:"total_credits"`
	TotalDebits  decimal.Decimal         `json:"total_debits"`
}

// GetCategorySummary aggregates ledger activity per category.
func (uc *ReportUseCase) GetCategorySummary(ctx context.Context, input CategorySummaryInput) (*CategorySummary, error) {
	cacheKey := summaryCacheKey(input)

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, cacheKey); err == nil {
			var summary CategorySummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				return &summary, nil
			}
		}
	}

	totals, err := uc.reportRepo.CategorySummary(ctx, input.AccountID, input.From, input.To)
	if err != nil {
		return nil, err
	}

	summary := &CategorySummary{
		Categories:   totals,
		TotalCredits: decimal.Zero,
		TotalDebits:  decimal.Zero,
	}

	for _, t := range totals {
		summary.TotalCredits = summary.TotalCredits.Add(t.Credits)
		summary.TotalDebits = summary.TotalDebits.Add(t.Debits)
	}

	if uc.cache != nil {
		if data, err := json.Marshal(summary); err == nil {
			_ = uc.cache.Set(ctx, cacheKey, string(data), ReportCacheTTL)
		}
	}

	return summary, nil
}

func summaryCacheKey(input CategorySummaryInput) string {
	from, to := "", ""
	if input.From != nil {
		from = input.From.UTC().Format(time.RFC3339)
	}
	if input.To != nil {
		to = input.To.UTC().Format(time.RFC3339)
	}

	return fmt.Sprintf("report:categories:%s:%s:%s", input.AccountID, from, to)
}
