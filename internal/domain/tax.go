package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TaxCode groups one or more tax components. AccountID is the GL account
// the computed tax is posted to.
type TaxCode struct {
	ID         string
	Code       string
	Name       string
	AccountID  string
	Components []TaxComponent
}

// TaxComponent is one rate of a tax code, e.g. VAT or NHIL.
type TaxComponent struct {
	TaxCodeID   string
	Name        string
	RatePercent decimal.Decimal
	SortOrder   int
}

// TaxComponentAmount is a computed component.
type TaxComponentAmount struct {
	Name   string
	Rate   decimal.Decimal
	Amount decimal.Decimal
}

// TaxBreakdown is the result of applying a tax code to a subtotal.
type TaxBreakdown struct {
	TaxCodeID  string
	AccountID  string
	Subtotal   decimal.Decimal
	Components []TaxComponentAmount
	Total      decimal.Decimal
}

// GrandTotal is subtotal plus tax.
func (b TaxBreakdown) GrandTotal() decimal.Decimal {
	return b.Subtotal.Add(b.Total)
}

// NoTax returns an empty breakdown for a subtotal.
func NoTax(subtotal decimal.Decimal) TaxBreakdown {
	return TaxBreakdown{Subtotal: subtotal, Total: decimal.Zero}
}

// ComputeTax applies every component to the same subtotal independently.
// Components are not compounded; the tax total is the plain sum.
func ComputeTax(subtotal decimal.Decimal, code *TaxCode) TaxBreakdown {
	if code == nil || len(code.Components) == 0 {
		b := NoTax(subtotal)
		if code != nil {
			b.TaxCodeID = code.ID
			b.AccountID = code.AccountID
		}
		return b
	}

	components := make([]TaxComponent, len(code.Components))
	copy(components, code.Components)
	sort.SliceStable(components, func(i, j int) bool {
		return components[i].SortOrder < components[j].SortOrder
	})

	out := TaxBreakdown{
		TaxCodeID:  code.ID,
		AccountID:  code.AccountID,
		Subtotal:   subtotal,
		Components: make([]TaxComponentAmount, 0, len(components)),
		Total:      decimal.Zero,
	}
	for _, c := range components {
		amount := subtotal.Mul(c.RatePercent).DivRound(hundred, 2)
		out.Components = append(out.Components, TaxComponentAmount{
			Name:   c.Name,
			Rate:   c.RatePercent,
			Amount: amount,
		})
		out.Total = out.Total.Add(amount)
	}

	return out
}

// EffectiveRate is the sum of component rates.
func (c *TaxCode) EffectiveRate() decimal.Decimal {
	rate := decimal.Zero
	for _, comp := range c.Components {
		rate = rate.Add(comp.RatePercent)
	}
	return rate
}
