package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clubops/clubledger/internal/adapter/repository/postgres"
	"github.com/clubops/clubledger/internal/domain"
	"github.com/clubops/clubledger/internal/usecase"
	"github.com/clubops/clubledger/tests/testutil"
)

func TestAccountLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	ledgerUC, accountRepo, entryRepo := newLedgerUseCase(testDB)
	idGen := postgres.NewULIDGenerator()
	accountUC := usecase.NewAccountUseCase(accountRepo, ledgerUC, idGen, nil)

	t.Run("create with opening balance records initial credit", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		account, err := accountUC.CreateAccount(ctx, usecase.CreateAccountInput{
			Name:           "team fund",
			OpeningBalance: decimal.NewFromInt(250),
		})
		if err != nil {
			t.Fatalf("create account failed: %v", err)
		}

		if !account.Balance.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected balance 250, got %s", account.Balance)
		}

		entries, err := entryRepo.GetByAccount(ctx, account.ID, 10, 0)
		if err != nil {
			t.Fatalf("failed to list entries: %v", err)
		}
		if len(entries) != 1 || entries[0].Type != domain.EntryTypeCredit {
			t.Fatalf("expected one opening credit entry, got %+v", entries)
		}
		if entries[0].Description != "Opening balance" {
			t.Errorf("unexpected description %q", entries[0].Description)
		}

		if consistent, err := ledgerUC.CheckAccountConsistency(ctx, account.ID); err != nil || !consistent {
			t.Errorf("expected consistent account, got consistent=%v err=%v", consistent, err)
		}
	})

	t.Run("create rejects negative opening balance", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		_, err := accountUC.CreateAccount(ctx, usecase.CreateAccountInput{
			Name:           "team fund",
			OpeningBalance: decimal.NewFromInt(-1),
		})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("get unknown account returns not found", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		_, err := accountUC.GetAccount(ctx, testutil.GenerateID())
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("list returns created accounts", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		testDB.CreateTestAccount(ctx, "a")
		testDB.CreateTestAccount(ctx, "b")

		accounts, err := accountUC.ListAccounts(ctx, usecase.ListAccountsInput{Limit: 10})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(accounts) != 2 {
			t.Errorf("expected 2 accounts, got %d", len(accounts))
		}
	})
}

func TestMemberRegistry(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	memberRepo := postgres.NewMemberRepository(testDB.Pool)
	idGen := postgres.NewULIDGenerator()
	memberUC := usecase.NewMemberUseCase(memberRepo, idGen, nil)

	t.Run("deactivated members drop out of active listing", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		member, err := memberUC.CreateMember(ctx, usecase.CreateMemberInput{
			Name:  "Jo Smith",
			Email: "jo@club.example",
			Role:  domain.MemberRolePlayer,
		})
		if err != nil {
			t.Fatalf("create member failed: %v", err)
		}

		if _, err := memberUC.CreateMember(ctx, usecase.CreateMemberInput{
			Name: "Sam Coach",
			Role: domain.MemberRoleCoach,
		}); err != nil {
			t.Fatalf("create member failed: %v", err)
		}

		if err := memberUC.DeactivateMember(ctx, member.ID); err != nil {
			t.Fatalf("deactivate failed: %v", err)
		}

		active, err := memberUC.ListMembers(ctx, usecase.ListMembersInput{ActiveOnly: true, Limit: 10})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(active) != 1 || active[0].Name != "Sam Coach" {
			t.Errorf("expected only the coach to remain active, got %+v", active)
		}

		// The record survives deactivation.
		stored, err := memberUC.GetMember(ctx, member.ID)
		if err != nil {
			t.Fatalf("get member failed: %v", err)
		}
		if stored.Active {
			t.Error("expected member to be inactive")
		}
	})

	t.Run("update changes role", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		member, err := memberUC.CreateMember(ctx, usecase.CreateMemberInput{
			Name: "Jo Smith",
			Role: domain.MemberRolePlayer,
		})
		if err != nil {
			t.Fatalf("create member failed: %v", err)
		}

		role := domain.MemberRoleStaff
		updated, err := memberUC.UpdateMember(ctx, usecase.UpdateMemberInput{
			ID:   member.ID,
			Role: &role,
		})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if updated.Role != domain.MemberRoleStaff {
			t.Errorf("expected staff role, got %s", updated.Role)
		}
	})
}
