package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate converts one unit of FromCurrencyID into ToCurrencyID.
type CurrencyRate struct {
	ID             string
	FromCurrencyID string
	ToCurrencyID   string
	RateDate       time.Time
	Rate           decimal.Decimal
}

// RateSource tells how a rate was resolved.
type RateSource string

const (
	RateSourceIdentity RateSource = "identity"
	RateSourceDirect   RateSource = "direct"
	RateSourceInverse  RateSource = "inverse"
	RateSourceManual   RateSource = "manual"
	RateSourceDefault  RateSource = "default"
)

// ResolvedRate is the outcome of a rate lookup.
type ResolvedRate struct {
	FromCurrencyID string
	ToCurrencyID   string
	AsOf           time.Time
	Rate           decimal.Decimal
	Source         RateSource
}

// PickLatestRate returns the rate with the latest RateDate not after asOf.
// Ties keep the first candidate. Non-positive rates are ignored.
func PickLatestRate(rates []CurrencyRate, asOf time.Time) (CurrencyRate, bool) {
	cutoff := EndOfDay(asOf)

	var (
		best  CurrencyRate
		found bool
	)
	for _, r := range rates {
		if r.RateDate.After(cutoff) || !r.Rate.IsPositive() {
			continue
		}
		if !found || r.RateDate.After(best.RateDate) {
			best = r
			found = true
		}
	}
	return best, found
}

// InverseRate returns 1/rate at the division precision of decimal.
func InverseRate(rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Div(rate)
}

// EndOfDay returns the last instant of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, dd := t.Date()
	return time.Date(y, m, dd, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
