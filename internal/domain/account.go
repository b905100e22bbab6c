package domain

// ClassificationGroup is the chart-of-accounts group used to filter
// counter accounts on voucher forms.
type ClassificationGroup string

const (
	GroupBank      ClassificationGroup = "BANK"
	GroupCash      ClassificationGroup = "CASH"
	GroupDebtors   ClassificationGroup = "DEBTORS"
	GroupCreditors ClassificationGroup = "CREDITORS"
	GroupOther     ClassificationGroup = "OTHER"
)

// IsValid checks if the group is supported.
func (g ClassificationGroup) IsValid() bool {
	switch g {
	case GroupBank, GroupCash, GroupDebtors, GroupCreditors, GroupOther:
		return true
	}
	return false
}

// Account is a read-only view of a ledger account owned by the account directory.
type Account struct {
	ID         string
	Code       string
	Name       string
	CurrencyID string
	Group      ClassificationGroup
}

// IsLiquid reports whether the account can act as a payment/deposit account.
func (a *Account) IsLiquid() bool {
	return a.Group == GroupBank || a.Group == GroupCash
}

// AccountFilter narrows an account directory lookup. Empty fields match all.
type AccountFilter struct {
	IDs        []string
	Groups     []ClassificationGroup
	CurrencyID string
}
