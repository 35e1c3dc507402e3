package domain

// Currency is one of the four currencies the mini-app supports.
// There is no conversion between them; the code is display-only.
type Currency string

const (
	CurrencyUZS Currency = "UZS"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyRUB Currency = "RUB"
)

// Currencies lists the supported codes in the order the settings screen
// cycles through them.
func Currencies() []Currency {
	return []Currency{CurrencyUZS, CurrencyUSD, CurrencyEUR, CurrencyRUB}
}

// Settings holds user preferences persisted to the cloud store.
type Settings struct {
	Currency     Currency `json:"currency"`
	WeeklyDigest bool     `json:"weeklyDigest"`
}

// DefaultSettings returns the settings used when nothing is persisted.
func DefaultSettings() Settings {
	return Settings{
		Currency:     CurrencyUZS,
		WeeklyDigest: true,
	}
}
