package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/voucherpost/internal/domain"
)

// BillUseCase proposes knock-off allocations against outstanding bills.
type BillUseCase struct {
	billRepo BillRepository
}

// NewBillUseCase creates a new BillUseCase.
func NewBillUseCase(billRepo BillRepository) *BillUseCase {
	return &BillUseCase{billRepo: billRepo}
}

// ListOutstanding returns the party's bills with an open balance.
func (uc *BillUseCase) ListOutstanding(ctx context.Context, partyID string) ([]domain.OutstandingBill, error) {
	if partyID == "" {
		return nil, domain.NewValidationError("party_id", "party is required")
	}
	return uc.billRepo.ListOutstanding(ctx, partyID)
}

// AllocateBillsInput represents input for a knock-off proposal.
//
// Either Bills is given directly, or PartyID (optionally narrowed and
// ordered by BillIDs) is used to load them.
type AllocateBillsInput struct {
	PartyID     string
	BillIDs     []string
	Bills       []domain.OutstandingBill
	Total       decimal.Decimal
	OrderByDate bool
}

// AllocateBills distributes Total across the selection FIFO. The result is
// advisory; nothing is written.
func (uc *BillUseCase) AllocateBills(ctx context.Context, input AllocateBillsInput) (domain.AllocationResult, error) {
	if input.Total.IsNegative() {
		return domain.AllocationResult{}, domain.NewValidationError("total", "must not be negative")
	}

	bills := input.Bills
	if len(bills) == 0 && input.PartyID != "" {
		loaded, err := uc.billRepo.ListOutstanding(ctx, input.PartyID)
		if err != nil {
			return domain.AllocationResult{}, err
		}
		bills, err = selectBills(loaded, input.BillIDs)
		if err != nil {
			return domain.AllocationResult{}, err
		}
	}

	if input.OrderByDate {
		bills = domain.SortBillsByDate(bills)
	}

	return domain.AllocateFIFO(bills, input.Total), nil
}

// selectBills keeps the bills named by ids, in the order of ids.
func selectBills(bills []domain.OutstandingBill, ids []string) ([]domain.OutstandingBill, error) {
	if len(ids) == 0 {
		return bills, nil
	}
	byID := make(map[string]domain.OutstandingBill, len(bills))
	for _, b := range bills {
		byID[b.ID] = b
	}
	out := make([]domain.OutstandingBill, 0, len(ids))
	for _, id := range ids {
		b, ok := byID[id]
		if !ok {
			return nil, domain.ErrBillNotFound
		}
		out = append(out, b)
	}
	return out, nil
}
