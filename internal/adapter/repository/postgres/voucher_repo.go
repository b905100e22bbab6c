package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/infrastructure/postgres/generated"
	"github.com/iho/voucherpost/internal/usecase"
)

const voucherNoConstraint = "vouchers_voucher_no_key"

// VoucherRepository implements usecase.VoucherRepository.
type VoucherRepository struct {
	queries *generated.Queries
}

// NewVoucherRepository creates a new VoucherRepository.
func NewVoucherRepository(db generated.DBTX) *VoucherRepository {
	return &VoucherRepository{
		queries: generated.New(db),
	}
}

// Create inserts the voucher header and its lines within a transaction.
// A duplicate voucher number is reported as *domain.NumberingConflictError.
func (r *VoucherRepository) Create(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error {
	queries := txQueries(tx)

	err := queries.CreateVoucher(ctx, generated.CreateVoucherParams{
		ID:           voucher.ID,
		VoucherType:  string(voucher.Type),
		VoucherNo:    voucher.VoucherNo,
		VoucherDate:  timeToPgDate(voucher.Date),
		FiscalYearID: voucher.FiscalYearID,
		Narration:    voucher.Narration,
		CurrencyID:   voucher.CurrencyID,
		ExchangeRate: decimalToNumeric(voucher.ExchangeRate),
		TotalDebit:   decimalToNumeric(voucher.TotalDebit()),
		TotalCredit:  decimalToNumeric(voucher.TotalCredit()),
		Status:       string(voucher.Status),
		WorkflowID:   stringPtrToText(voucher.WorkflowID),
		CreatedAt:    timeToPgTimestamptz(voucher.CreatedAt),
		UpdatedAt:    timeToPgTimestamptz(voucher.UpdatedAt),
	})
	if err != nil {
		if isUniqueViolation(err, voucherNoConstraint) {
			return &domain.NumberingConflictError{VoucherNo: voucher.VoucherNo}
		}
		return err
	}

	for i, line := range voucher.Lines {
		err := queries.CreateVoucherLine(ctx, generated.CreateVoucherLineParams{
			VoucherID:   voucher.ID,
			LineNo:      int32(i + 1),
			AccountID:   line.AccountID,
			Description: line.Description,
			Debit:       decimalToNumeric(line.Debit),
			Credit:      decimalToNumeric(line.Credit),
			ReferenceNo: line.ReferenceNo,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a voucher with its lines.
func (r *VoucherRepository) GetByID(ctx context.Context, id string) (*domain.Voucher, error) {
	row, err := r.queries.GetVoucherByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVoucherNotFound
		}

		return nil, err
	}

	return r.withLines(ctx, r.queries, row)
}

// GetByIDForUpdate retrieves a voucher with a FOR UPDATE lock.
func (r *VoucherRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Voucher, error) {
	queries := txQueries(tx)

	row, err := queries.GetVoucherByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVoucherNotFound
		}

		return nil, err
	}

	return r.withLines(ctx, queries, row)
}

// UpdateStatus sets the approval status and workflow of a voucher.
func (r *VoucherRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.VoucherStatus, workflowID *string, updatedAt time.Time) error {
	return txQueries(tx).UpdateVoucherStatus(ctx, generated.UpdateVoucherStatusParams{
		ID:         id,
		Status:     string(status),
		WorkflowID: stringPtrToText(workflowID),
		UpdatedAt:  timeToPgTimestamptz(updatedAt),
	})
}

// List lists vouchers newest first. An empty type lists all types.
func (r *VoucherRepository) List(ctx context.Context, voucherType domain.VoucherType, limit, offset int) ([]*domain.Voucher, error) {
	rows, err := r.queries.ListVouchers(ctx, generated.ListVouchersParams{
		VoucherType: string(voucherType),
		Limit:       int32(limit),
		Offset:      int32(offset),
	})
	if err != nil {
		return nil, err
	}

	vouchers := make([]*domain.Voucher, 0, len(rows))
	for _, row := range rows {
		v, err := r.withLines(ctx, r.queries, row)
		if err != nil {
			return nil, err
		}
		vouchers = append(vouchers, v)
	}

	return vouchers, nil
}

func (r *VoucherRepository) withLines(ctx context.Context, queries *generated.Queries, row generated.Voucher) (*domain.Voucher, error) {
	lines, err := queries.GetVoucherLines(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	v := rowToVoucher(row)
	v.Lines = make([]domain.VoucherLine, 0, len(lines))
	for _, l := range lines {
		v.Lines = append(v.Lines, domain.VoucherLine{
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       numericToDecimal(l.Debit),
			Credit:      numericToDecimal(l.Credit),
			ReferenceNo: l.ReferenceNo,
		})
	}

	return v, nil
}

func rowToVoucher(row generated.Voucher) *domain.Voucher {
	return &domain.Voucher{
		ID:           row.ID,
		Type:         domain.VoucherType(row.VoucherType),
		VoucherNo:    row.VoucherNo,
		Date:         row.VoucherDate.Time,
		FiscalYearID: row.FiscalYearID,
		Narration:    row.Narration,
		CurrencyID:   row.CurrencyID,
		ExchangeRate: numericToDecimal(row.ExchangeRate),
		Status:       domain.VoucherStatus(row.Status),
		WorkflowID:   textToStringPtr(row.WorkflowID),
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}

// SequenceRepository implements usecase.SequenceRepository with one counter
// row per voucher type. The upsert holds the row lock until the posting
// transaction ends, so concurrent postings of a type are numbered in commit order.
type SequenceRepository struct{}

// NewSequenceRepository creates a new SequenceRepository.
func NewSequenceRepository() *SequenceRepository {
	return &SequenceRepository{}
}

// Next increments and returns the sequence for voucherType.
func (r *SequenceRepository) Next(ctx context.Context, tx usecase.Transaction, voucherType domain.VoucherType) (int64, error) {
	return txQueries(tx).NextVoucherSequence(ctx, string(voucherType))
}
