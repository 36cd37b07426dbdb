package domain

import "github.com/shopspring/decimal"

// CategoryTotal aggregates ledger activity for one category of an account.
type CategoryTotal struct {
	Category string
	Credits  decimal.Decimal
	Debits   decimal.Decimal
	Count    int64
}

// Net returns credits minus debits for the category.
func (c *CategoryTotal) Net() decimal.Decimal {
	return c.Credits.Sub(c.Debits)
}
