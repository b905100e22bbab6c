package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/infrastructure/postgres/generated"
	"github.com/iho/voucherpost/internal/usecase"
)

// BillRepository implements usecase.BillRepository.
type BillRepository struct {
	queries *generated.Queries
}

// NewBillRepository creates a new BillRepository.
func NewBillRepository(db generated.DBTX) *BillRepository {
	return &BillRepository{
		queries: generated.New(db),
	}
}

// ListOutstanding returns a party's bills with a positive outstanding
// amount, oldest first.
func (r *BillRepository) ListOutstanding(ctx context.Context, partyID string) ([]domain.OutstandingBill, error) {
	rows, err := r.queries.ListOutstandingBills(ctx, partyID)
	if err != nil {
		return nil, err
	}

	return rowsToBills(rows), nil
}

// GetByIDsForUpdate locks the bills in ID order to avoid deadlocks between
// concurrent knock-offs.
func (r *BillRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]domain.OutstandingBill, error) {
	rows, err := txQueries(tx).GetBillsByIDsForUpdate(ctx, ids)
	if err != nil {
		return nil, err
	}

	return rowsToBills(rows), nil
}

// ApplyPayment stores the outstanding amount and status left after a knock-off.
func (r *BillRepository) ApplyPayment(ctx context.Context, tx usecase.Transaction, billID string, outstanding decimal.Decimal, status domain.PaymentStatus, updatedAt time.Time) error {
	n, err := txQueries(tx).UpdateBillOutstanding(ctx, generated.UpdateBillOutstandingParams{
		ID:            billID,
		Outstanding:   decimalToNumeric(outstanding),
		PaymentStatus: string(status),
		UpdatedAt:     timeToPgTimestamptz(updatedAt),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrBillNotFound
	}

	return nil
}

// RecordApplication links a voucher to the bill amount it settled.
func (r *BillRepository) RecordApplication(ctx context.Context, tx usecase.Transaction, voucherID string, allocation domain.Allocation, createdAt time.Time) error {
	return txQueries(tx).CreateBillApplication(ctx, generated.CreateBillApplicationParams{
		VoucherID: voucherID,
		BillID:    allocation.BillID,
		Amount:    decimalToNumeric(allocation.Amount),
		CreatedAt: timeToPgTimestamptz(createdAt),
	})
}

func rowsToBills(rows []generated.Bill) []domain.OutstandingBill {
	bills := make([]domain.OutstandingBill, 0, len(rows))
	for _, row := range rows {
		bills = append(bills, domain.OutstandingBill{
			ID:            row.ID,
			BillNo:        row.BillNo,
			PartyID:       row.PartyID,
			BillDate:      row.BillDate.Time,
			Total:         numericToDecimal(row.Total),
			Outstanding:   numericToDecimal(row.Outstanding),
			PaymentStatus: domain.PaymentStatus(row.PaymentStatus),
			UpdatedAt:     row.UpdatedAt.Time,
		})
	}
	return bills
}
