package domain

// CategoryType restricts which transaction direction a category applies to.
type CategoryType string

const (
	CategoryExpense CategoryType = "expense"
	CategoryIncome  CategoryType = "income"
	CategoryBoth    CategoryType = "both"
)

// Category groups transactions for analytics and quick entry.
type Category struct {
	ID    int64        `json:"id"`
	Name  string       `json:"name"`
	Icon  string       `json:"icon"`
	Type  CategoryType `json:"type"`
	Color string       `json:"color"`
}

// AppliesTo reports whether the category is offered for the given type.
func (c *Category) AppliesTo(t CategoryType) bool {
	return c.Type == t || c.Type == CategoryBoth
}

// Fallbacks used when a transaction references a category that no longer
// exists (or never did). Categories are not cascade-deleted, so stats must
// always resolve to something displayable.
const (
	OtherCategoryID = 10
	FallbackIcon    = "📦"
	FallbackName    = "Other"
	FallbackColor   = "#8E8E93"
)

// DefaultCategories returns the seed set used when no persisted categories
// exist. IDs are stable; the bot backend references them by id.
func DefaultCategories() []Category {
	return []Category{
		{ID: 1, Name: "Food", Icon: "🍔", Type: CategoryExpense, Color: "#FF9500"},
		{ID: 2, Name: "Transport", Icon: "🚕", Type: CategoryExpense, Color: "#FF3B30"},
		{ID: 3, Name: "Housing", Icon: "🏠", Type: CategoryExpense, Color: "#AF52DE"},
		{ID: 4, Name: "Shopping", Icon: "🛒", Type: CategoryExpense, Color: "#FF2D55"},
		{ID: 5, Name: "Entertainment", Icon: "🎭", Type: CategoryExpense, Color: "#5856D6"},
		{ID: 6, Name: "Health", Icon: "❤️", Type: CategoryExpense, Color: "#FF2D55"},
		{ID: 7, Name: "Education", Icon: "📚", Type: CategoryExpense, Color: "#007AFF"},
		{ID: 8, Name: "Salary", Icon: "💰", Type: CategoryIncome, Color: "#34C759"},
		{ID: 9, Name: "Freelance", Icon: "💸", Type: CategoryIncome, Color: "#30D158"},
		{ID: 10, Name: "Other", Icon: "📦", Type: CategoryBoth, Color: "#8E8E93"},
	}
}
