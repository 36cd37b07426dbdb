package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubops/clubledger/internal/domain"
	"github.com/clubops/clubledger/internal/infrastructure/metrics"
)

// ErrInconsistentHistory is returned when an account balance does not match
// the sum of its ledger entries.
var ErrInconsistentHistory = errors.New("account balance does not match ledger history")

// Mutation types accepted at the request boundary.
const (
	MutationTypeCredit   = "credit"
	MutationTypeDebit    = "debit"
	MutationTypeTransfer = "transfer"
)

// LedgerUseCase applies balance mutations: credits, debits and inter-account
// transfers. Every mutation runs inside a single database transaction with
// the affected account rows locked, so concurrent mutations against the same
// account serialize instead of racing a stale balance read.
type LedgerUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	retrier     Retrier
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	retrier Retrier,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		retrier:     retrier,
		idGen:       idGen,
		metrics:     metrics,
	}
}

// CreditInput represents input for crediting an account.
type CreditInput struct {
	AccountID   string
	Amount      decimal.Decimal
	Description string
	Category    string
}

// DebitInput represents input for debiting an account.
type DebitInput struct {
	AccountID   string
	Amount      decimal.Decimal
	Description string
	Category    string
}

// TransferInput represents input for a transfer between two accounts.
type TransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Description   string
	Category      string
}

// TransferResult holds the two entries produced by a transfer.
type TransferResult struct {
	CorrelationID string
	FromEntry     *domain.Entry
	ToEntry       *domain.Entry
}

// MutationRequest is the plain payload shape the dashboard submits.
type MutationRequest struct {
	Amount            decimal.Decimal
	Type              string
	Description       string
	Category          string
	TransferToAccount string
}

// MutationResult holds the entries appended by a mutation.
type MutationResult struct {
	Entries []*domain.Entry
}

// Credit adds amount to the account balance and appends a credit entry.
func (uc *LedgerUseCase) Credit(ctx context.Context, input CreditInput) (*domain.Entry, error) {
	start := time.Now()

	entry, err := uc.credit(ctx, input)
	uc.observeMutation(MutationTypeCredit, input.Amount, start, err)

	return entry, err
}

func (uc *LedgerUseCase) credit(ctx context.Context, input CreditInput) (*domain.Entry, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	var entry *domain.Entry

	err := uc.retrier.Retry(ctx, func() error {
		e, err := uc.applySingle(ctx, input.AccountID, domain.EntryTypeCredit, input.Amount, input.Description, input.Category)
		if err != nil {
			return err
		}

		entry = e

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Debit subtracts amount from the account balance and appends a debit
// entry. The mutation is rejected if it would drive the balance negative;
// nothing is persisted in that case.
func (uc *LedgerUseCase) Debit(ctx context.Context, input DebitInput) (*domain.Entry, error) {
	start := time.Now()

	entry, err := uc.debit(ctx, input)
	uc.observeMutation(MutationTypeDebit, input.Amount, start, err)

	return entry, err
}

func (uc *LedgerUseCase) debit(ctx context.Context, input DebitInput) (*domain.Entry, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	var entry *domain.Entry

	err := uc.retrier.Retry(ctx, func() error {
		e, err := uc.applySingle(ctx, input.AccountID, domain.EntryTypeDebit, input.Amount, input.Description, input.Category)
		if err != nil {
			return err
		}

		entry = e

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Transfer moves amount between two accounts atomically: both balances and
// both entries commit together or not at all. The two entries share one
// correlation ID and reference each other's account.
func (uc *LedgerUseCase) Transfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	start := time.Now()

	result, err := uc.transfer(ctx, input)
	uc.observeMutation(MutationTypeTransfer, input.Amount, start, err)

	return result, err
}

func (uc *LedgerUseCase) transfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	if input.ToAccountID == "" {
		return nil, domain.ErrMissingCounterparty
	}

	if input.FromAccountID == input.ToAccountID {
		return nil, domain.ErrSameAccount
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	var result *TransferResult

	err := uc.retrier.Retry(ctx, func() error {
		r, err := uc.applyTransfer(ctx, input)
		if err != nil {
			return err
		}

		result = r

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Apply dispatches a dashboard mutation payload against the selected
// account. Unknown mutation types are rejected; a transfer without a
// destination fails before anything is read.
func (uc *LedgerUseCase) Apply(ctx context.Context, accountID string, req MutationRequest) (*MutationResult, error) {
	switch req.Type {
	case MutationTypeCredit:
		entry, err := uc.Credit(ctx, CreditInput{
			AccountID:   accountID,
			Amount:      req.Amount,
			Description: req.Description,
			Category:    req.Category,
		})
		if err != nil {
			return nil, err
		}

		return &MutationResult{Entries: []*domain.Entry{entry}}, nil

	case MutationTypeDebit:
		entry, err := uc.Debit(ctx, DebitInput{
			AccountID:   accountID,
			Amount:      req.Amount,
			Description: req.Description,
			Category:    req.Category,
		})
		if err != nil {
			return nil, err
		}

		return &MutationResult{Entries: []*domain.Entry{entry}}, nil

	case MutationTypeTransfer:
		if req.TransferToAccount == "" {
			return nil, domain.ErrMissingCounterparty
		}

		result, err := uc.Transfer(ctx, TransferInput{
			FromAccountID: accountID,
			ToAccountID:   req.TransferToAccount,
			Amount:        req.Amount,
			Description:   req.Description,
			Category:      req.Category,
		})
		if err != nil {
			return nil, err
		}

		return &MutationResult{Entries: []*domain.Entry{result.FromEntry, result.ToEntry}}, nil

	default:
		// The type label stays constant here; a raw request type would give
		// the metric unbounded cardinality.
		if uc.metrics != nil {
			uc.metrics.MutationErrors.WithLabelValues("unknown", "validation").Inc()
		}

		return nil, domain.ErrInvalidEntryType
	}
}

// CheckAccountConsistency verifies that the account balance equals the sum
// of its credits minus its debits.
func (uc *LedgerUseCase) CheckAccountConsistency(ctx context.Context, accountID string) (bool, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return false, err
	}

	credits, debits, err := uc.entryRepo.SumByAccount(ctx, accountID)
	if err != nil {
		return false, err
	}

	if !account.Balance.Equal(credits.Sub(debits)) {
		return false, ErrInconsistentHistory
	}

	return true, nil
}

func (uc *LedgerUseCase) applySingle(
	ctx context.Context,
	accountID string,
	entryType domain.EntryType,
	amount decimal.Decimal,
	description, category string,
) (*domain.Entry, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}

	var newBalance decimal.Decimal

	switch entryType {
	case domain.EntryTypeDebit:
		if err := account.ValidateDebit(amount); err != nil {
			return nil, err
		}

		newBalance = account.ApplyDebit(amount)
	case domain.EntryTypeCredit:
		newBalance = account.ApplyCredit(amount)
	default:
		return nil, domain.ErrInvalidEntryType
	}

	now := time.Now().UTC()
	id := uc.idGen.Generate()

	entry := &domain.Entry{
		ID:              id,
		AccountID:       account.ID,
		CorrelationID:   id,
		Type:            entryType,
		Amount:          amount,
		Description:     description,
		Category:        category,
		PreviousBalance: account.Balance,
		CurrentBalance:  newBalance,
		AccountVersion:  account.Version + 1,
		CreatedAt:       now,
	}

	if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, account.Version+1, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

func (uc *LedgerUseCase) applyTransfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock both rows in sorted ID order to avoid deadlocks between
	// concurrent opposing transfers.
	ids := []string{input.FromAccountID, input.ToAccountID}
	sort.Strings(ids)

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return nil, err
	}

	if len(accounts) != len(ids) {
		return nil, domain.ErrAccountNotFound
	}

	var from, to *domain.Account

	for _, a := range accounts {
		switch a.ID {
		case input.FromAccountID:
			from = a
		case input.ToAccountID:
			to = a
		}
	}

	if from == nil || to == nil {
		return nil, domain.ErrAccountNotFound
	}

	if err := from.ValidateDebit(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	correlationID := uc.idGen.Generate()

	fromEntry := &domain.Entry{
		ID:                transferEntryID(correlationID, transferFromSuffix),
		AccountID:         from.ID,
		CorrelationID:     correlationID,
		Type:              domain.EntryTypeDebit,
		Amount:            input.Amount,
		Description:       transferDescription("Transfer to", to.Name, input.Description),
		Category:          input.Category,
		TransferToAccount: &to.ID,
		PreviousBalance:   from.Balance,
		CurrentBalance:    from.ApplyDebit(input.Amount),
		AccountVersion:    from.Version + 1,
		CreatedAt:         now,
	}

	toEntry := &domain.Entry{
		ID:                  transferEntryID(correlationID, transferToSuffix),
		AccountID:           to.ID,
		CorrelationID:       correlationID,
		Type:                domain.EntryTypeCredit,
		Amount:              input.Amount,
		Description:         transferDescription("Transfer from", from.Name, input.Description),
		Category:            input.Category,
		TransferFromAccount: &from.ID,
		PreviousBalance:     to.Balance,
		CurrentBalance:      to.ApplyCredit(input.Amount),
		AccountVersion:      to.Version + 1,
		CreatedAt:           now,
	}

	if err := uc.entryRepo.Create(ctx, tx, fromEntry); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Create(ctx, tx, toEntry); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, from.ID, fromEntry.CurrentBalance, from.Version+1, now); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, to.ID, toEntry.CurrentBalance, to.Version+1, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &TransferResult{
		CorrelationID: correlationID,
		FromEntry:     fromEntry,
		ToEntry:       toEntry,
	}, nil
}

// observeMutation records the outcome of one mutation attempt. Successful
// mutations count toward applied totals and durations; rejected ones count
// toward the error counter labeled with a stable cause.
func (uc *LedgerUseCase) observeMutation(mutationType string, amount decimal.Decimal, start time.Time, err error) {
	if uc.metrics == nil {
		return
	}

	if err != nil {
		uc.metrics.MutationErrors.WithLabelValues(mutationType, mutationErrorLabel(err)).Inc()
		return
	}

	uc.metrics.MutationsApplied.WithLabelValues(mutationType).Inc()
	uc.metrics.MutationDuration.WithLabelValues(mutationType).Observe(time.Since(start).Seconds())

	amountValue, _ := amount.Float64()
	uc.metrics.MutationAmount.Observe(amountValue)
}

func mutationErrorLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "store_unavailable"
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrMissingCounterparty),
		errors.Is(err, domain.ErrSameAccount),
		errors.Is(err, domain.ErrInvalidEntryType):
		return "validation"
	default:
		return "internal"
	}
}

func transferEntryID(correlationID, suffix string) string {
	return correlationID + suffix
}

func transferDescription(prefix, counterpartyName, description string) string {
	if description == "" {
		return fmt.Sprintf("%s %s", prefix, counterpartyName)
	}

	return fmt.Sprintf("%s %s: %s", prefix, counterpartyName, description)
}
