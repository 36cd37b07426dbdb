package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubops/clubledger/internal/domain"
)

// ReportRepository implements usecase.ReportRepository with SQL aggregation.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// CategorySummary aggregates credits, debits and entry counts per category
// for one account, optionally bounded by [from, to).
func (r *ReportRepository) CategorySummary(ctx context.Context, accountID string, from, to *time.Time) ([]*domain.CategoryTotal, error) {
	query := `
		SELECT
			COALESCE(NULLIF(category, ''), 'uncategorized') AS category,
			COALESCE(SUM(amount) FILTER (WHERE type = 'credit'), 0) AS credits,
			COALESCE(SUM(amount) FILTER (WHERE type = 'debit'), 0) AS debits,
			COUNT(*) AS entry_count
		FROM entries
		WHERE account_id = $1
			AND ($2::timestamptz IS NULL OR created_at >= $2)
			AND ($3::timestamptz IS NULL OR created_at < $3)
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := r.pool.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []*domain.CategoryTotal

	for rows.Next() {
		var (
			total   domain.CategoryTotal
			credits pgtype.Numeric
			debits  pgtype.Numeric
		)

		if err := rows.Scan(&total.Category, &credits, &debits, &total.Count); err != nil {
			return nil, err
		}

		total.Credits = numericToDecimal(credits)
		total.Debits = numericToDecimal(debits)

		totals = append(totals, &total)
	}

	return totals, rows.Err()
}
