package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/clubops/clubledger/internal/domain"
	"github.com/clubops/clubledger/internal/usecase"
	"github.com/clubops/clubledger/internal/usecase/mocks"
)

func TestMemberUseCase_CreateMember(t *testing.T) {
	uc := usecase.NewMemberUseCase(mocks.NewMockMemberRepository(), mocks.NewMockIDGenerator(), nil)

	t.Run("valid player", func(t *testing.T) {
		member, err := uc.CreateMember(context.Background(), usecase.CreateMemberInput{
			Name:  "Jo Keeper",
			Email: "jo@club.example",
			Role:  domain.MemberRolePlayer,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !member.Active {
			t.Error("new members must start active")
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := uc.CreateMember(context.Background(), usecase.CreateMemberInput{
			Name: "Sam",
			Role: domain.MemberRole("mascot"),
		})
		if !errors.Is(err, domain.ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := uc.CreateMember(context.Background(), usecase.CreateMemberInput{
			Name:  "Sam",
			Email: "not-an-email",
			Role:  domain.MemberRoleStaff,
		})
		if !errors.Is(err, domain.ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})
}

func TestMemberUseCase_DeactivateMember(t *testing.T) {
	repo := mocks.NewMockMemberRepository()
	uc := usecase.NewMemberUseCase(repo, mocks.NewMockIDGenerator(), nil)

	member, err := uc.CreateMember(context.Background(), usecase.CreateMemberInput{
		Name: "Coach T",
		Role: domain.MemberRoleCoach,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.DeactivateMember(context.Background(), member.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := uc.GetMember(context.Background(), member.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Active {
		t.Error("member should be inactive after deactivation")
	}

	active, err := uc.ListMembers(context.Background(), usecase.ListMembersInput{ActiveOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, m := range active {
		if m.ID == member.ID {
			t.Error("deactivated member must not appear in active listing")
		}
	}
}

func TestMemberUseCase_UpdateMember(t *testing.T) {
	uc := usecase.NewMemberUseCase(mocks.NewMockMemberRepository(), mocks.NewMockIDGenerator(), nil)

	member, err := uc.CreateMember(context.Background(), usecase.CreateMemberInput{
		Name: "Alex",
		Role: domain.MemberRolePlayer,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newRole := domain.MemberRoleCoach
	updated, err := uc.UpdateMember(context.Background(), usecase.UpdateMemberInput{
		ID:   member.ID,
		Role: &newRole,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Role != domain.MemberRoleCoach {
		t.Errorf("expected coach, got %s", updated.Role)
	}

	if _, err := uc.UpdateMember(context.Background(), usecase.UpdateMemberInput{ID: "ghost"}); !errors.Is(err, domain.ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound, got %v", err)
	}
}
