package domain

import "errors"

var (
	// ErrZeroAmount rejects transactions whose amount carries no direction.
	ErrZeroAmount = errors.New("transaction amount must be nonzero")

	// ErrInvalidCurrency rejects currency codes outside the supported set.
	ErrInvalidCurrency = errors.New("unsupported currency code")

	// ErrInvalidFilter rejects unknown history filter values.
	ErrInvalidFilter = errors.New("unknown transaction filter")
)
