package usecase

// Cloud store keys. The bot backend reads and writes the same three.
const (
	KeyCategories   = "categories"
	KeyTransactions = "transactions"
	KeySettings     = "settings"
)

const (
	// DefaultRecentLimit caps the dashboard's recent-transactions strip.
	DefaultRecentLimit = 5

	// MonthWindowSize is how many calendar months the bar chart spans.
	MonthWindowSize = 6
)
