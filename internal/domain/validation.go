package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidateAmount checks that an amount can be recorded. Zero is rejected:
// the sign carries the income/expense direction, so a zero amount is
// meaningless. Negative amounts are valid (expenses).
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsZero() {
		return ErrZeroAmount
	}
	return nil
}

// ValidateCurrency checks a currency code against the supported set.
func ValidateCurrency(code Currency) error {
	for _, c := range Currencies() {
		if code == c {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidCurrency, code)
}

// ParseFilter validates a history filter string. Empty means all.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterIncome, FilterExpense:
		return Filter(s), nil
	case "":
		return FilterAll, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}
