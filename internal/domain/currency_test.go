package domain

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPickLatestRate(t *testing.T) {
	rates := []CurrencyRate{
		{ID: "r1", RateDate: day("2024-01-01"), Rate: d("10")},
		{ID: "r3", RateDate: day("2024-03-01"), Rate: d("12")},
		{ID: "r2", RateDate: day("2024-02-01"), Rate: d("11")},
		{ID: "r0", RateDate: day("2024-02-15"), Rate: d("0")},
	}

	tests := []struct {
		name   string
		asOf   time.Time
		wantID string
		found  bool
	}{
		{name: "before any rate", asOf: day("2023-12-31"), found: false},
		{name: "on first rate date", asOf: day("2024-01-01"), wantID: "r1", found: true},
		{name: "between rates", asOf: day("2024-02-20"), wantID: "r2", found: true},
		{name: "after last rate", asOf: day("2025-01-01"), wantID: "r3", found: true},
		{name: "same day later time", asOf: day("2024-03-01").Add(15 * time.Hour), wantID: "r3", found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PickLatestRate(rates, tt.asOf)
			if ok != tt.found {
				t.Fatalf("expected found=%v, got %v", tt.found, ok)
			}
			if ok && got.ID != tt.wantID {
				t.Errorf("expected %s, got %s", tt.wantID, got.ID)
			}
		})
	}
}

func TestInverseRate(t *testing.T) {
	inv := InverseRate(d("4"))
	if !inv.Equal(d("0.25")) {
		t.Errorf("expected 0.25, got %s", inv)
	}
}
