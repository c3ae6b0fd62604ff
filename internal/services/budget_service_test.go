package services

import (
	"context"
	"errors"
	"testing"

	"budgetbuddy/internal/core"
	"budgetbuddy/internal/storage"
)

func newBudgetFixture() (*BudgetService, *storage.Store) {
	store := storage.NewStore(storage.NewMemory())
	return NewBudgetService(store, nil), store
}

func TestBudgetListRecomputesSpent(t *testing.T) {
	ctx := context.Background()
	svc, store := newBudgetFixture()

	// Persist a category with a stale spent cache
	if err := store.SaveBudgets(ctx, []core.Category{
		{ID: "food", Name: "Food", Limit: core.Money{Cents: 30000}, Spent: core.Money{Cents: 77777}},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.SaveExpenses(ctx, []core.Expense{
		{ID: "e1", CategoryID: "food", Amount: core.Money{Cents: 5000}, Date: "2025-01-01", Description: "x"},
		{ID: "e2", CategoryID: "gone", Amount: core.Money{Cents: 9000}, Date: "2025-01-01", Description: "y"},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	list := svc.List(ctx)
	if len(list) != 1 {
		t.Fatalf("len = %d", len(list))
	}
	if list[0].Spent.Cents != 5000 {
		t.Fatalf("spent = %d, want 5000 (recomputed, not cached)", list[0].Spent.Cents)
	}
}

func TestBudgetAddValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBudgetFixture()

	if _, err := svc.Add(ctx, core.Category{Name: "", Limit: core.Money{Cents: 100}}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := svc.Add(ctx, core.Category{Name: "Pets", Limit: core.Money{Cents: -1}}); err == nil {
		t.Fatalf("expected error for negative limit")
	}

	c, err := svc.Add(ctx, core.Category{Name: "Pets", Limit: core.Money{Cents: 0}, Color: "#22c55e"})
	if err != nil {
		t.Fatalf("zero limit should be allowed: %v", err)
	}
	if c.ID == "" {
		t.Fatalf("no id assigned")
	}
}

func TestBudgetUpdateRefreshesSpentCache(t *testing.T) {
	ctx := context.Background()
	svc, store := newBudgetFixture()

	c, _ := svc.Add(ctx, core.Category{Name: "Food", Limit: core.Money{Cents: 30000}})
	if err := store.SaveExpenses(ctx, []core.Expense{
		{ID: "e1", CategoryID: c.ID, Amount: core.Money{Cents: 1500}, Date: "2025-01-01", Description: "x"},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	c.Limit = core.Money{Cents: 40000}
	updated, err := svc.Update(ctx, c)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Spent.Cents != 1500 {
		t.Fatalf("spent cache = %d, want 1500", updated.Spent.Cents)
	}

	if _, err := svc.Update(ctx, core.Category{ID: "missing", Name: "X"}); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBudgetDeleteKeepsExpenses(t *testing.T) {
	ctx := context.Background()
	svc, store := newBudgetFixture()

	c, _ := svc.Add(ctx, core.Category{Name: "Food", Limit: core.Money{Cents: 30000}})
	if err := store.SaveExpenses(ctx, []core.Expense{
		{ID: "e1", CategoryID: c.ID, Amount: core.Money{Cents: 1500}, Date: "2025-01-01", Description: "x"},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := store.Budgets(ctx); len(got) != 0 {
		t.Fatalf("budgets remain")
	}
	// Orphaned expense survives and still counts in the summary totals
	if got := store.Expenses(ctx); len(got) != 1 {
		t.Fatalf("expense was lost with its category")
	}
	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
}

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStore(storage.NewMemory())
	dash := NewDashboardService(store)

	if err := store.SaveIncome(ctx, []core.Income{{ID: "i", Label: "Pay", Amount: core.Money{Cents: 100000}, Date: "2025-01-01"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.SaveBudgets(ctx, []core.Category{{ID: "food", Name: "Food", Limit: core.Money{Cents: 30000}}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.SaveExpenses(ctx, []core.Expense{
		{ID: "e1", CategoryID: "food", Amount: core.Money{Cents: 20000}, Date: "2025-01-02", Description: "a"},
		{ID: "e2", CategoryID: "unknown", Amount: core.Money{Cents: 5000}, Date: "2025-01-03", Description: "b"},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	s := dash.Summary(ctx)
	if s.TotalIncome.Cents != 100000 || s.TotalSpent.Cents != 25000 || s.Remaining.Cents != 75000 {
		t.Fatalf("summary = %+v", s)
	}
	if s.Categories[0].Spent.Cents != 20000 {
		t.Fatalf("food spent = %d", s.Categories[0].Spent.Cents)
	}
}
