package usecase

import (
	"context"
	"time"

	"github.com/clubops/clubledger/internal/domain"
	"github.com/clubops/clubledger/internal/infrastructure/metrics"
)

// MemberUseCase handles the club member registry.
type MemberUseCase struct {
	memberRepo MemberRepository
	idGen      IDGenerator
	metrics    *metrics.Metrics
}

// NewMemberUseCase creates a new MemberUseCase.
func NewMemberUseCase(memberRepo MemberRepository, idGen IDGenerator, metrics *metrics.Metrics) *MemberUseCase {
	return &MemberUseCase{
		memberRepo: memberRepo,
		idGen:      idGen,
		metrics:    metrics,
	}
}

// CreateMemberInput represents input for registering a member.
type CreateMemberInput struct {
	Name     string
	Email    string
	Role     domain.MemberRole
	JoinedAt *time.Time
}

// CreateMember registers a new player or staff member.
func (uc *MemberUseCase) CreateMember(ctx context.Context, input CreateMemberInput) (*domain.Member, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidMemberName
	}

	if input.Email != "" {
		if err := domain.ValidateEmail(input.Email); err != nil {
			return nil, err
		}
	}

	if !input.Role.IsValid() {
		return nil, domain.ErrInvalidRole
	}

	now := time.Now().UTC()

	joinedAt := now
	if input.JoinedAt != nil {
		joinedAt = *input.JoinedAt
	}

	member := &domain.Member{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Email:     input.Email,
		Role:      input.Role,
		JoinedAt:  joinedAt,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.MembersCreated.Inc()
	}

	return member, nil
}

// GetMember retrieves a member by ID.
func (uc *MemberUseCase) GetMember(ctx context.Context, id string) (*domain.Member, error) {
	return uc.memberRepo.GetByID(ctx, id)
}

// UpdateMemberInput represents input for updating a member.
type UpdateMemberInput struct {
	ID    string
	Name  *string
	Email *string
	Role  *domain.MemberRole
}

// UpdateMember updates member fields that are set.
func (uc *MemberUseCase) UpdateMember(ctx context.Context, input UpdateMemberInput) (*domain.Member, error) {
	member, err := uc.memberRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domain.ErrInvalidMemberName
		}
		member.Name = *input.Name
	}

	if input.Email != nil {
		if *input.Email != "" {
			if err := domain.ValidateEmail(*input.Email); err != nil {
				return nil, err
			}
		}
		member.Email = *input.Email
	}

	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domain.ErrInvalidRole
		}
		member.Role = *input.Role
	}

	member.UpdatedAt = time.Now().UTC()

	if err := uc.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// DeactivateMember marks a member inactive. Records are never deleted.
func (uc *MemberUseCase) DeactivateMember(ctx context.Context, id string) error {
	member, err := uc.memberRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	member.Active = false
	member.UpdatedAt = time.Now().UTC()

	return uc.memberRepo.Update(ctx, member)
}

// ListMembersInput represents input for listing members.
type ListMembersInput struct {
	ActiveOnly bool
	Limit      int
	Offset     int
}

// ListMembers lists members with pagination.
func (uc *MemberUseCase) ListMembers(ctx context.Context, input ListMembersInput) ([]*domain.Member, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.memberRepo.List(ctx, input.ActiveOnly, limit, offset)
}
