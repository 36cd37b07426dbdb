package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubops/clubledger/internal/domain"
	"github.com/clubops/clubledger/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:           r.Name,
		OpeningBalance: r.OpeningBalance,
	}
}

// MutationRequest represents a ledger mutation submitted against an account.
// Type selects credit, debit or transfer; transfer_to_account names the
// destination for transfers.
type MutationRequest struct {
	Amount            decimal.Decimal `json:"amount"`
	Type              string          `json:"type"`
	Description       string          `json:"description,omitempty"`
	Category          string          `json:"category,omitempty"`
	TransferToAccount string          `json:"transfer_to_account,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *MutationRequest) ToUseCaseInput() usecase.MutationRequest {
	return usecase.MutationRequest{
		Amount:            r.Amount,
		Type:              r.Type,
		Description:       r.Description,
		Category:          r.Category,
		TransferToAccount: r.TransferToAccount,
	}
}

// CreditRequest represents a direct credit against an account.
type CreditRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
}

// DebitRequest represents a direct debit against an account.
type DebitRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
}

// TransferRequest represents a transfer out of an account.
type TransferRequest struct {
	ToAccountID string          `json:"to_account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
}

// CreateMemberRequest represents a request to register a member.
type CreateMemberRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email,omitempty"`
	Role     string     `json:"role"`
	JoinedAt *time.Time `json:"joined_at,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateMemberRequest) ToUseCaseInput() usecase.CreateMemberInput {
	return usecase.CreateMemberInput{
		Name:     r.Name,
		Email:    r.Email,
		Role:     domain.MemberRole(r.Role),
		JoinedAt: r.JoinedAt,
	}
}

// UpdateMemberRequest represents a partial member update. Only set fields
// are applied.
type UpdateMemberRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateMemberRequest) ToUseCaseInput(id string) usecase.UpdateMemberInput {
	input := usecase.UpdateMemberInput{
		ID:    id,
		Name:  r.Name,
		Email: r.Email,
	}

	if r.Role != nil {
		role := domain.MemberRole(*r.Role)
		input.Role = &role
	}

	return input
}

// LoginRequest represents a login attempt.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest represents a request to create a dashboard user.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateUserRequest) ToUseCaseInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
		Role:     domain.Role(r.Role),
	}
}
