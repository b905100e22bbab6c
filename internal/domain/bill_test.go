package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bills(outstanding ...string) []OutstandingBill {
	out := make([]OutstandingBill, len(outstanding))
	for i, o := range outstanding {
		out[i] = OutstandingBill{
			ID:          "bill-" + string(rune('a'+i)),
			BillNo:      "B-00" + string(rune('1'+i)),
			Outstanding: d(o),
		}
	}
	return out
}

func TestAllocateFIFO(t *testing.T) {
	tests := []struct {
		name        string
		bills       []OutstandingBill
		total       string
		want        map[string]string
		unallocated string
	}{
		{
			name:        "partial exhausts in order",
			bills:       bills("100", "200", "300"),
			total:       "250",
			want:        map[string]string{"bill-a": "100", "bill-b": "150", "bill-c": "0"},
			unallocated: "0",
		},
		{
			name:        "exact cover",
			bills:       bills("100", "200"),
			total:       "300",
			want:        map[string]string{"bill-a": "100", "bill-b": "200"},
			unallocated: "0",
		},
		{
			name:        "excess is not distributed",
			bills:       bills("100", "200"),
			total:       "500",
			want:        map[string]string{"bill-a": "100", "bill-b": "200"},
			unallocated: "200",
		},
		{
			name:        "zero total",
			bills:       bills("100"),
			total:       "0",
			want:        map[string]string{"bill-a": "0"},
			unallocated: "0",
		},
		{
			name:        "no bills",
			bills:       nil,
			total:       "75",
			want:        map[string]string{},
			unallocated: "75",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := AllocateFIFO(tt.bills, d(tt.total))

			got := res.ByBillID()
			require.Len(t, got, len(tt.want))
			for billID, amount := range tt.want {
				assert.True(t, got[billID].Equal(d(amount)), "%s: expected %s, got %s", billID, amount, got[billID])
			}
			assert.True(t, res.Unallocated.Equal(d(tt.unallocated)), "unallocated %s", res.Unallocated)
		})
	}
}

func TestAllocateFIFO_ConservesTotalUpToOutstanding(t *testing.T) {
	set := bills("10.50", "0", "99.99", "1000")
	sumOutstanding := decimal.Zero
	for _, b := range set {
		sumOutstanding = sumOutstanding.Add(b.Outstanding)
	}

	for _, total := range []string{"0", "5", "10.50", "110.49", "1110.49", "5000"} {
		res := AllocateFIFO(set, d(total))

		sum := decimal.Zero
		for _, v := range res.ByBillID() {
			sum = sum.Add(v)
		}
		want := decimal.Min(d(total), sumOutstanding)
		assert.True(t, sum.Equal(want), "total %s: allocated %s, want %s", total, sum, want)
		assert.True(t, res.Allocated.Add(res.Unallocated).Equal(d(total)))
	}
}

func TestAllocateFIFO_DeterministicAndNotCumulative(t *testing.T) {
	set := bills("100", "200")

	first := AllocateFIFO(set, d("150"))
	again := AllocateFIFO(set, d("150"))
	assert.Equal(t, first.ByBillID()["bill-b"].String(), again.ByBillID()["bill-b"].String())

	smaller := AllocateFIFO(set, d("50"))
	assert.True(t, smaller.ByBillID()["bill-a"].Equal(d("50")))
	assert.True(t, smaller.ByBillID()["bill-b"].IsZero())
	assert.Len(t, smaller.Applied(), 1)
}

func TestAllocateFIFO_DuplicateBillNumbersKeptApart(t *testing.T) {
	set := []OutstandingBill{
		{ID: "bill-a", BillNo: "INV-1", Outstanding: d("100")},
		{ID: "bill-b", BillNo: "INV-1", Outstanding: d("80")},
	}

	res := AllocateFIFO(set, d("150"))

	got := res.ByBillID()
	require.Len(t, got, 2)
	assert.True(t, got["bill-a"].Equal(d("100")))
	assert.True(t, got["bill-b"].Equal(d("50")))
	assert.True(t, res.Allocated.Equal(d("150")))
}

func TestSortBillsByDate(t *testing.T) {
	in := []OutstandingBill{
		{BillNo: "B-10", BillDate: day("2024-03-01")},
		{BillNo: "B-02", BillDate: day("2024-01-01")},
		{BillNo: "B-01", BillDate: day("2024-03-01")},
	}

	out := SortBillsByDate(in)

	assert.Equal(t, []string{"B-02", "B-01", "B-10"}, []string{out[0].BillNo, out[1].BillNo, out[2].BillNo})
	assert.Equal(t, "B-10", in[0].BillNo, "input must not be reordered")
}

func TestOutstandingBill_ApplyPayment(t *testing.T) {
	b := &OutstandingBill{BillNo: "B-1", Total: d("100"), Outstanding: d("100"), PaymentStatus: PaymentStatusUnpaid}

	remaining, status, err := b.ApplyPayment(d("40"))
	require.NoError(t, err)
	assert.True(t, remaining.Equal(d("60")))
	assert.Equal(t, PaymentStatusPartial, status)

	remaining, status, err = b.ApplyPayment(d("100"))
	require.NoError(t, err)
	assert.True(t, remaining.IsZero())
	assert.Equal(t, PaymentStatusPaid, status)

	_, _, err = b.ApplyPayment(d("100.01"))
	assert.True(t, errors.Is(err, ErrOverAllocation))

	_, _, err = b.ApplyPayment(decimal.Zero)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
