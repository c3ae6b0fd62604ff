package core

// CategoryStatus is a category with its spend recomputed from the
// expense list, plus progress indicators.
type CategoryStatus struct {
	Category
	Percent    float64 `json:"percent"`
	OverBudget bool    `json:"overBudget"`
}

// BarPercent clamps the progress to 100 for drawing a bar. The numeric
// Percent shown to the user is not clamped and may exceed 100.
func (cs CategoryStatus) BarPercent() float64 {
	if cs.Percent > 100 {
		return 100
	}
	return cs.Percent
}

// Summary is the derived dashboard view over the three collections.
// It is never persisted.
type Summary struct {
	TotalIncome   Money            `json:"totalIncome"`
	TotalSpent    Money            `json:"totalSpent"`
	TotalBudgeted Money            `json:"totalBudgeted"`
	Remaining     Money            `json:"remainingBudget"`
	Categories    []CategoryStatus `json:"categories"`
}

// Summarize combines the three collections into a dashboard summary.
// It is pure and order independent.
//
// TotalSpent sums every expense, including ones whose categoryId
// matches no category; those orphans are excluded from every
// per-category total. The asymmetry is deliberate: deleting a category
// must not erase its expenses from the overall spend.
func Summarize(income []Income, budgets []Category, expenses []Expense) Summary {
	var s Summary

	for _, in := range income {
		s.TotalIncome.Cents += in.Amount.Cents
	}

	spentByCategory := make(map[string]int64, len(budgets))
	for _, e := range expenses {
		s.TotalSpent.Cents += e.Amount.Cents
		spentByCategory[e.CategoryID] += e.Amount.Cents
	}

	s.Categories = make([]CategoryStatus, 0, len(budgets))
	for _, c := range budgets {
		c.Spent = Money{Cents: spentByCategory[c.ID]}
		s.TotalBudgeted.Cents += c.Limit.Cents

		// A zero or missing limit reads as 0% regardless of spend.
		var pct float64
		if c.Limit.Cents > 0 {
			pct = c.Spent.Float() / c.Limit.Float() * 100
		}
		s.Categories = append(s.Categories, CategoryStatus{
			Category:   c,
			Percent:    pct,
			OverBudget: pct > 100,
		})
	}

	s.Remaining = Money{Cents: s.TotalIncome.Cents - s.TotalSpent.Cents}
	return s
}

// SpentFor returns the recomputed spend for a single category id.
func SpentFor(expenses []Expense, categoryID string) Money {
	var cents int64
	for _, e := range expenses {
		if e.CategoryID == categoryID {
			cents += e.Amount.Cents
		}
	}
	return Money{Cents: cents}
}
