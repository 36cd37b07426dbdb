package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubops/clubledger/internal/domain"
	"github.com/clubops/clubledger/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Balance:   a.Balance,
		Version:   a.Version,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID                  string          `json:"id"`
	AccountID           string          `json:"account_id"`
	CorrelationID       string          `json:"correlation_id"`
	Type                string          `json:"type"`
	Amount              decimal.Decimal `json:"amount"`
	Description         string          `json:"description,omitempty"`
	Category            string          `json:"category,omitempty"`
	TransferToAccount   *string         `json:"transfer_to_account,omitempty"`
	TransferFromAccount *string         `json:"transfer_from_account,omitempty"`
	PreviousBalance     decimal.Decimal `json:"previous_balance"`
	CurrentBalance      decimal.Decimal `json:"current_balance"`
	AccountVersion      int64           `json:"account_version"`
	CreatedAt           time.Time       `json:"created_at"`
}

// EntryFromDomain converts domain entry to response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:                  e.ID,
		AccountID:           e.AccountID,
		CorrelationID:       e.CorrelationID,
		Type:                string(e.Type),
		Amount:              e.Amount,
		Description:         e.Description,
		Category:            e.Category,
		TransferToAccount:   e.TransferToAccount,
		TransferFromAccount: e.TransferFromAccount,
		PreviousBalance:     e.PreviousBalance,
		CurrentBalance:      e.CurrentBalance,
		AccountVersion:      e.AccountVersion,
		CreatedAt:           e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// ListEntriesResponse wraps a page of entries.
type ListEntriesResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Total   int64            `json:"total"`
}

// MutationResponse represents the outcome of an applied mutation.
type MutationResponse struct {
	Entries []*EntryResponse `json:"entries"`
}

// MutationFromResult converts a mutation result to response.
func MutationFromResult(result *usecase.MutationResult) *MutationResponse {
	return &MutationResponse{
		Entries: EntriesFromDomain(result.Entries),
	}
}

// TransferResponse represents the entry pair produced by a transfer.
type TransferResponse struct {
	CorrelationID string         `json:"correlation_id"`
	FromEntry     *EntryResponse `json:"from_entry"`
	ToEntry       *EntryResponse `json:"to_entry"`
}

// TransferFromResult converts a transfer result to response.
func TransferFromResult(result *usecase.TransferResult) *TransferResponse {
	return &TransferResponse{
		CorrelationID: result.CorrelationID,
		FromEntry:     EntryFromDomain(result.FromEntry),
		ToEntry:       EntryFromDomain(result.ToEntry),
	}
}

// MemberResponse represents a member in API responses.
type MemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MemberFromDomain converts domain member to response.
func MemberFromDomain(m *domain.Member) *MemberResponse {
	return &MemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      string(m.Role),
		JoinedAt:  m.JoinedAt,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MembersFromDomain converts domain members to responses.
func MembersFromDomain(members []*domain.Member) []*MemberResponse {
	result := make([]*MemberResponse, len(members))
	for i, m := range members {
		result[i] = MemberFromDomain(m)
	}
	return result
}

// ListMembersResponse wraps a page of members.
type ListMembersResponse struct {
	Members []*MemberResponse `json:"members"`
	Total   int64             `json:"total"`
}

// CategoryTotalResponse represents per-category totals.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Credits  decimal.Decimal `json:"credits"`
	Debits   decimal.Decimal `json:"debits"`
	Net      decimal.Decimal `json:"net"`
	Count    int64           `json:"count"`
}

// CategorySummaryResponse represents a category summary report.
type CategorySummaryResponse struct {
	AccountID    string                   `json:"account_id"`
	Categories   []*CategoryTotalResponse `json:"categories"`
	TotalCredits decimal.Decimal          `json:"total_credits"`
	TotalDebits  decimal.Decimal          `json:"total_debits"`
}

// CategorySummaryFromUseCase converts a summary to response.
func CategorySummaryFromUseCase(accountID string, summary *usecase.CategorySummary) *CategorySummaryResponse {
	categories := make([]*CategoryTotalResponse, len(summary.Categories))
	for i, c := range summary.Categories {
		categories[i] = &CategoryTotalResponse{
			Category: c.Category,
			Credits:  c.Credits,
			Debits:   c.Debits,
			Net:      c.Net(),
			Count:    c.Count,
		}
	}

	return &CategorySummaryResponse{
		AccountID:    accountID,
		Categories:   categories,
		TotalCredits: summary.TotalCredits,
		TotalDebits:  summary.TotalDebits,
	}
}

// ConsistencyResponse reports a ledger history check.
type ConsistencyResponse struct {
	AccountID  string `json:"account_id"`
	Consistent bool   `json:"consistent"`
}

// UserResponse represents a dashboard user in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromDomain converts domain user to response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
