package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clubops/clubledger/internal/adapter/repository/postgres"
	"github.com/clubops/clubledger/internal/usecase"
	"github.com/clubops/clubledger/tests/testutil"
)

func TestCategorySummaryReport(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	ledgerUC, _, _ := newLedgerUseCase(testDB)
	reportRepo := postgres.NewReportRepository(testDB.Pool)
	reportUC := usecase.NewReportUseCase(reportRepo, nil)

	testDB.TruncateAll(ctx)

	account := testDB.CreateTestAccountWithBalance(ctx, "team fund", decimal.NewFromInt(1000))

	mutations := []struct {
		credit   bool
		amount   int64
		category string
	}{
		{credit: true, amount: 200, category: "dues"},
		{credit: true, amount: 100, category: "dues"},
		{credit: false, amount: 150, category: "gear"},
		{credit: false, amount: 50, category: "dues"},
	}

	for _, m := range mutations {
		var err error
		if m.credit {
			_, err = ledgerUC.Credit(ctx, usecase.CreditInput{
				AccountID: account.ID,
				Amount:    decimal.NewFromInt(m.amount),
				Category:  m.category,
			})
		} else {
			_, err = ledgerUC.Debit(ctx, usecase.DebitInput{
				AccountID: account.ID,
				Amount:    decimal.NewFromInt(m.amount),
				Category:  m.category,
			})
		}
		if err != nil {
			t.Fatalf("mutation failed: %v", err)
		}
	}

	summary, err := reportUC.GetCategorySummary(ctx, usecase.CategorySummaryInput{AccountID: account.ID})
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}

	totals := map[string]struct{ credits, debits decimal.Decimal }{}
	for _, c := range summary.Categories {
		totals[c.Category] = struct{ credits, debits decimal.Decimal }{c.Credits, c.Debits}
	}

	dues, ok := totals["dues"]
	if !ok {
		t.Fatal("expected dues category in summary")
	}
	if !dues.credits.Equal(decimal.NewFromInt(300)) || !dues.debits.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected dues 300/50, got %s/%s", dues.credits, dues.debits)
	}

	gear, ok := totals["gear"]
	if !ok {
		t.Fatal("expected gear category in summary")
	}
	if !gear.debits.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected gear debits 150, got %s", gear.debits)
	}

	if !summary.TotalCredits.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected total credits 300, got %s", summary.TotalCredits)
	}
	if !summary.TotalDebits.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected total debits 200, got %s", summary.TotalDebits)
	}
}
