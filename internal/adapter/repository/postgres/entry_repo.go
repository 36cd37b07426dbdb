package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/clubops/clubledger/internal/domain"
	"github.com/clubops/clubledger/internal/usecase"
)

const entryColumns = `id, account_id, correlation_id, type, amount, description, category,
	transfer_to_account, transfer_from_account, previous_balance, current_balance, account_version, created_at`

// EntryRepository implements usecase.EntryRepository. The entries table is
// insert-only: no UPDATE or DELETE statement exists in this package.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

// Create appends a new entry within the given transaction.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO entries (id, account_id, correlation_id, type, amount, description, category,
			transfer_to_account, transfer_from_account, previous_balance, current_balance, account_version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := pgxTx.Exec(ctx, query,
		entry.ID,
		entry.AccountID,
		entry.CorrelationID,
		string(entry.Type),
		decimalToNumeric(entry.Amount),
		entry.Description,
		entry.Category,
		entry.TransferToAccount,
		entry.TransferFromAccount,
		decimalToNumeric(entry.PreviousBalance),
		decimalToNumeric(entry.CurrentBalance),
		entry.AccountVersion,
		timeToPgTimestamptz(entry.CreatedAt),
	)

	return err
}

// GetByAccount retrieves entries for an account in insertion order.
func (r *EntryRepository) GetByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE account_id = $1 ORDER BY seq LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.Entry

	for rows.Next() {
		entry, err := scanEntryRow(rows)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// GetByCorrelation retrieves the entry (or transfer pair) sharing a
// correlation ID.
func (r *EntryRepository) GetByCorrelation(ctx context.Context, correlationID string) ([]*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE correlation_id = $1 ORDER BY seq`

	rows, err := r.pool.Query(ctx, query, correlationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.Entry

	for rows.Next() {
		entry, err := scanEntryRow(rows)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// SumByAccount returns total credits and debits for an account.
func (r *EntryRepository) SumByAccount(ctx context.Context, accountID string) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'credit'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'debit'), 0)
		FROM entries
		WHERE account_id = $1
	`

	var credits, debits pgtype.Numeric

	err := r.pool.QueryRow(ctx, query, accountID).Scan(&credits, &debits)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(credits), numericToDecimal(debits), nil
}

func scanEntryRow(row rowScanner) (*domain.Entry, error) {
	var (
		entry     domain.Entry
		entryType string
		amount    pgtype.Numeric
		previous  pgtype.Numeric
		current   pgtype.Numeric
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.CorrelationID,
		&entryType,
		&amount,
		&entry.Description,
		&entry.Category,
		&entry.TransferToAccount,
		&entry.TransferFromAccount,
		&previous,
		&current,
		&entry.AccountVersion,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Type = domain.EntryType(entryType)
	entry.Amount = numericToDecimal(amount)
	entry.PreviousBalance = numericToDecimal(previous)
	entry.CurrentBalance = numericToDecimal(current)
	entry.CreatedAt = createdAt.Time

	return &entry, nil
}
