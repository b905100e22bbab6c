package postgres

import (
	"context"

	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/infrastructure/postgres/generated"
)

// AccountRepository implements usecase.AccountDirectory over the accounts table.
type AccountRepository struct {
	queries *generated.Queries
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db generated.DBTX) *AccountRepository {
	return &AccountRepository{
		queries: generated.New(db),
	}
}

// ListAccounts returns accounts matching the filter, ordered by code.
func (r *AccountRepository) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]*domain.Account, error) {
	groups := make([]string, 0, len(filter.Groups))
	for _, g := range filter.Groups {
		groups = append(groups, string(g))
	}

	ids := filter.IDs
	if ids == nil {
		ids = []string{}
	}

	rows, err := r.queries.ListAccounts(ctx, generated.ListAccountsParams{
		Ids:        ids,
		Groups:     groups,
		CurrencyID: filter.CurrencyID,
	})
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, rowToAccount(row))
	}

	return accounts, nil
}

func rowToAccount(row generated.Account) *domain.Account {
	return &domain.Account{
		ID:         row.ID,
		Code:       row.Code,
		Name:       row.Name,
		CurrencyID: row.CurrencyID,
		Group:      domain.ClassificationGroup(row.ClassificationGroup),
	}
}
