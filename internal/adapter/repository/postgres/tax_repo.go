package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/infrastructure/postgres/generated"
)

// TaxRepository implements usecase.TaxRepository.
type TaxRepository struct {
	queries *generated.Queries
}

// NewTaxRepository creates a new TaxRepository.
func NewTaxRepository(db generated.DBTX) *TaxRepository {
	return &TaxRepository{
		queries: generated.New(db),
	}
}

// GetTaxCode retrieves a tax code header. Components are loaded separately.
func (r *TaxRepository) GetTaxCode(ctx context.Context, id string) (*domain.TaxCode, error) {
	row, err := r.queries.GetTaxCode(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaxCodeNotFound
		}

		return nil, err
	}

	return &domain.TaxCode{
		ID:        row.ID,
		Code:      row.Code,
		Name:      row.Name,
		AccountID: row.AccountID,
	}, nil
}

// GetTaxComponents returns the components of a tax code in sort order.
func (r *TaxRepository) GetTaxComponents(ctx context.Context, taxCodeID string) ([]domain.TaxComponent, error) {
	rows, err := r.queries.GetTaxComponents(ctx, taxCodeID)
	if err != nil {
		return nil, err
	}

	components := make([]domain.TaxComponent, 0, len(rows))
	for _, row := range rows {
		components = append(components, domain.TaxComponent{
			TaxCodeID:   row.TaxCodeID,
			Name:        row.Name,
			RatePercent: numericToDecimal(row.RatePercent),
			SortOrder:   int(row.SortOrder),
		})
	}

	return components, nil
}
