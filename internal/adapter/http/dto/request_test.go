package dto

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clubops/clubledger/internal/domain"
)

func TestCreateAccountRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateAccountRequest{
		Name:           "Team Fund",
		OpeningBalance: decimal.NewFromInt(250),
	}

	got := req.ToUseCaseInput()

	if got.Name != "Team Fund" || !got.OpeningBalance.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
}

func TestMutationRequest_ToUseCaseInput(t *testing.T) {
	req := &MutationRequest{
		Amount:            decimal.RequireFromString("12.34"),
		Type:              "transfer",
		Description:       "equipment",
		Category:          "gear",
		TransferToAccount: "acc-2",
	}

	got := req.ToUseCaseInput()

	if got.Type != "transfer" || got.TransferToAccount != "acc-2" {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
	if !got.Amount.Equal(decimal.RequireFromString("12.34")) {
		t.Fatalf("expected amount to carry over, got %s", got.Amount)
	}
	if got.Description != "equipment" || got.Category != "gear" {
		t.Fatalf("expected description and category to carry over, got %+v", got)
	}
}

func TestCreateMemberRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateMemberRequest{
		Name:  "Jo Smith",
		Email: "jo@club.example",
		Role:  "player",
	}

	got := req.ToUseCaseInput()

	if got.Name != "Jo Smith" || got.Role != domain.MemberRolePlayer {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
	if got.JoinedAt != nil {
		t.Fatalf("expected nil JoinedAt when absent, got %v", got.JoinedAt)
	}
}

func TestUpdateMemberRequest_ToUseCaseInput(t *testing.T) {
	name := "New Name"
	role := "coach"

	req := &UpdateMemberRequest{Name: &name, Role: &role}
	got := req.ToUseCaseInput("m-1")

	if got.ID != "m-1" {
		t.Fatalf("expected ID to be set, got %+v", got)
	}
	if got.Name == nil || *got.Name != "New Name" {
		t.Fatalf("expected name pointer to carry over, got %+v", got)
	}
	if got.Role == nil || *got.Role != domain.MemberRoleCoach {
		t.Fatalf("expected role conversion, got %+v", got)
	}
	if got.Email != nil {
		t.Fatalf("expected nil email when absent, got %+v", got)
	}
}

func TestCreateUserRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateUserRequest{
		Email:    "t@club.example",
		Name:     "Treasurer",
		Password: "secret-pass",
		Role:     "treasurer",
	}

	got := req.ToUseCaseInput()

	if got.Role != domain.RoleTreasurer || got.Email != "t@club.example" {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
}
