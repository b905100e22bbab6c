package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus of an outstanding bill or invoice.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// OutstandingBill is a bill or invoice that can be knocked off by a voucher.
type OutstandingBill struct {
	ID            string
	BillNo        string
	PartyID       string
	BillDate      time.Time
	Total         decimal.Decimal
	Outstanding   decimal.Decimal
	PaymentStatus PaymentStatus
	UpdatedAt     time.Time
}

// ApplyPayment returns the outstanding amount and status after knocking off amount.
func (b *OutstandingBill) ApplyPayment(amount decimal.Decimal) (decimal.Decimal, PaymentStatus, error) {
	if !amount.IsPositive() {
		return b.Outstanding, b.PaymentStatus, fmt.Errorf("%w: knock-off amount must be positive", ErrInvalidInput)
	}
	if amount.GreaterThan(b.Outstanding) {
		return b.Outstanding, b.PaymentStatus, fmt.Errorf("%w: bill %s outstanding %s, requested %s",
			ErrOverAllocation, b.BillNo, b.Outstanding.StringFixed(2), amount.StringFixed(2))
	}

	remaining := b.Outstanding.Sub(amount)
	switch {
	case remaining.IsZero():
		return remaining, PaymentStatusPaid, nil
	case b.Total.IsPositive() && remaining.GreaterThanOrEqual(b.Total):
		return remaining, PaymentStatusUnpaid, nil
	default:
		return remaining, PaymentStatusPartial, nil
	}
}

// Allocation assigns part of a voucher total to a bill.
type Allocation struct {
	BillID string
	BillNo string
	Amount decimal.Decimal
}

// AllocationResult is the outcome of a knock-off allocation, in selection order.
type AllocationResult struct {
	Allocations []Allocation
	Allocated   decimal.Decimal
	Unallocated decimal.Decimal
}

// ByBillID returns the allocation map keyed by bill id. Bill numbers are
// only unique per party, so they are not used as keys.
func (r AllocationResult) ByBillID() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(r.Allocations))
	for _, a := range r.Allocations {
		m[a.BillID] = m[a.BillID].Add(a.Amount)
	}
	return m
}

// Applied returns only allocations with a positive amount.
func (r AllocationResult) Applied() []Allocation {
	out := make([]Allocation, 0, len(r.Allocations))
	for _, a := range r.Allocations {
		if a.Amount.IsPositive() {
			out = append(out, a)
		}
	}
	return out
}

// AllocateFIFO distributes total over bills in the given order, exhausting
// each bill before moving to the next. Every bill appears in the result,
// possibly with a zero allocation. Whatever exceeds the summed outstanding
// is reported as Unallocated and not distributed further.
func AllocateFIFO(bills []OutstandingBill, total decimal.Decimal) AllocationResult {
	remaining := decimal.Max(total, decimal.Zero)

	result := AllocationResult{
		Allocations: make([]Allocation, 0, len(bills)),
		Allocated:   decimal.Zero,
	}
	for _, b := range bills {
		outstanding := decimal.Max(b.Outstanding, decimal.Zero)
		alloc := decimal.Min(outstanding, remaining)
		remaining = remaining.Sub(alloc)

		result.Allocations = append(result.Allocations, Allocation{
			BillID: b.ID,
			BillNo: b.BillNo,
			Amount: alloc,
		})
		result.Allocated = result.Allocated.Add(alloc)
	}
	result.Unallocated = remaining

	return result
}

// SortBillsByDate orders bills oldest first, then by bill number. It returns
// a new slice.
func SortBillsByDate(bills []OutstandingBill) []OutstandingBill {
	out := make([]OutstandingBill, len(bills))
	copy(out, bills)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].BillDate.Equal(out[j].BillDate) {
			return out[i].BillDate.Before(out[j].BillDate)
		}
		return out[i].BillNo < out[j].BillNo
	})
	return out
}
