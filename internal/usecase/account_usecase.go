package usecase

import (
	"context"
	"strings"

	"github.com/iho/voucherpost/internal/domain"
)

// AccountUseCase exposes the read-only account directory.
type AccountUseCase struct {
	accounts AccountDirectory
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accounts AccountDirectory) *AccountUseCase {
	return &AccountUseCase{accounts: accounts}
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	IDs        []string
	Groups     []string
	CurrencyID string
}

// ListAccounts lists accounts matching the filter.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	filter := domain.AccountFilter{IDs: input.IDs, CurrencyID: input.CurrencyID}

	for _, g := range input.Groups {
		group := domain.ClassificationGroup(strings.ToUpper(strings.TrimSpace(g)))
		if !group.IsValid() {
			return nil, domain.NewValidationError("group", "unknown classification group "+g)
		}
		filter.Groups = append(filter.Groups, group)
	}

	return uc.accounts.ListAccounts(ctx, filter)
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	accounts, err := uc.accounts.ListAccounts(ctx, domain.AccountFilter{IDs: []string{id}})
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, domain.ErrAccountNotFound
	}
	return accounts[0], nil
}
