package domain

import (
	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MinVoucherLines    = 2
	MaxVoucherLines    = 500
	MaxNarrationLength = 1000
	centsExponent      = 2
)

// PostableLines drops lines without an account or without an amount.
// Order of the remaining lines is preserved.
func PostableLines(lines []VoucherLine) []VoucherLine {
	out := make([]VoucherLine, 0, len(lines))
	for _, l := range lines {
		if l.IsBlank() {
			continue
		}
		out = append(out, l)
	}
	return out
}

// ValidateLines enforces the double-entry invariants on a line list:
//  1. at least two postable lines
//  2. every postable line has exactly one nonzero, non-negative side
//  3. no line amount is finer than a cent, since lines are stored per cent
//  4. total debit equals total credit at cent precision
//
// The check is pure: the same lines always produce the same verdict.
func ValidateLines(lines []VoucherLine) error {
	postable := PostableLines(lines)
	if len(postable) < MinVoucherLines {
		return &StructureError{Line: -1, Reason: "at least two lines with an account and an amount are required"}
	}
	if len(postable) > MaxVoucherLines {
		return &StructureError{Line: -1, Reason: "too many lines"}
	}

	for i, l := range postable {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return &StructureError{Line: i, Reason: "amounts must not be negative"}
		}
		if l.Debit.IsZero() == l.Credit.IsZero() {
			return &StructureError{Line: i, Reason: "line must have exactly one of debit or credit"}
		}
		if !IsWholeCents(l.Debit) || !IsWholeCents(l.Credit) {
			return &StructureError{Line: i, Reason: "amounts must not have more than two decimal places"}
		}
	}

	debit, credit := sumDebit(postable), sumCredit(postable)
	if toCents(debit) != toCents(credit) {
		return &BalanceError{TotalDebit: debit, TotalCredit: credit}
	}

	return nil
}

// IsWholeCents reports whether d has no precision below a cent.
func IsWholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(centsExponent))
}

// toCents rounds an amount to whole cents.
func toCents(d decimal.Decimal) int64 {
	return d.Shift(centsExponent).Round(0).IntPart()
}

// ValidateNarration validates the free-text narration.
func ValidateNarration(narration string) error {
	if len(narration) > MaxNarrationLength {
		return NewValidationError("narration", "exceeds maximum length")
	}
	return nil
}
