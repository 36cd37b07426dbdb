package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/clubops/clubledger/internal/domain"
	"github.com/clubops/clubledger/internal/infrastructure/postgres"
)

// TestDB provides isolated test database connections.
type TestDB struct {
	Pool *pgxpool.Pool
	t    *testing.T
}

// NewTestDB connects to the database named by DATABASE_URL and skips the
// test when it is unset.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	migrationsPath := "migrations"
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		migrationsPath = "../../migrations"
	}

	if err := postgres.RunMigrations(dbURL, migrationsPath); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	return &TestDB{
		Pool: pool,
		t:    t,
	}
}

// Cleanup closes the database connection.
func (db *TestDB) Cleanup() {
	db.Pool.Close()
}

// TruncateAll removes all data from tables.
func (db *TestDB) TruncateAll(ctx context.Context) {
	db.t.Helper()

	_, err := db.Pool.Exec(ctx, `
		TRUNCATE TABLE entries CASCADE;
		TRUNCATE TABLE accounts CASCADE;
		TRUNCATE TABLE members CASCADE;
		TRUNCATE TABLE users CASCADE;
	`)
	if err != nil {
		db.t.Fatalf("failed to truncate tables: %v", err)
	}
}

// CreateTestAccount creates an account with a zero balance.
func (db *TestDB) CreateTestAccount(ctx context.Context, name string) *domain.Account {
	db.t.Helper()

	return db.CreateTestAccountWithBalance(ctx, name, decimal.Zero)
}

// CreateTestAccountWithBalance creates an account with the given balance.
func (db *TestDB) CreateTestAccountWithBalance(ctx context.Context, name string, balance decimal.Decimal) *domain.Account {
	db.t.Helper()

	now := time.Now().UTC()
	id := ulid.Make().String()

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO accounts (id, name, balance, version, created_at, updated_at)
		VALUES ($1, $2, $3, 0, $4, $4)
	`, id, name, balance.String(), now)
	if err != nil {
		db.t.Fatalf("failed to create test account: %v", err)
	}

	return &domain.Account{
		ID:        id,
		Name:      name,
		Balance:   balance,
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GenerateID generates a new ULID.
func GenerateID() string {
	return ulid.Make().String()
}
