package services

import "budgetbuddy/internal/core"

// DefaultCategories is the fixed starter set written once when the
// budget collection is empty at expense-flow read time. Colors come
// from the client's category palette.
func DefaultCategories() []core.Category {
	return []core.Category{
		{ID: "food", Name: "Food", Limit: core.Money{Cents: 50000}, Color: "#ef4444", Icon: "🍔"},
		{ID: "transportation", Name: "Transportation", Limit: core.Money{Cents: 20000}, Color: "#f97316", Icon: "🚗"},
		{ID: "shopping", Name: "Shopping", Limit: core.Money{Cents: 30000}, Color: "#eab308", Icon: "🛍️"},
		{ID: "entertainment", Name: "Entertainment", Limit: core.Money{Cents: 15000}, Color: "#22c55e", Icon: "🎬"},
		{ID: "bills", Name: "Bills", Limit: core.Money{Cents: 80000}, Color: "#06b6d4", Icon: "🧾"},
		{ID: "healthcare", Name: "Healthcare", Limit: core.Money{Cents: 20000}, Color: "#3b82f6", Icon: "🏥"},
		{ID: "education", Name: "Education", Limit: core.Money{Cents: 10000}, Color: "#8b5cf6", Icon: "🎓"},
		{ID: "travel", Name: "Travel", Limit: core.Money{Cents: 25000}, Color: "#ec4899", Icon: "✈️"},
		{ID: "personal", Name: "Personal", Limit: core.Money{Cents: 10000}, Color: "#ef4444", Icon: "🧍"},
		{ID: "other", Name: "Other", Limit: core.Money{Cents: 10000}, Color: "#6b7280", Icon: "📦"},
	}
}
