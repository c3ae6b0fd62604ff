package services

import (
	"context"

	"budgetbuddy/internal/core"
	"budgetbuddy/internal/storage"
)

// DashboardService derives the summary view. It re-reads all three
// collections on every call: the store is the single source of truth
// and nothing here caches across requests.
type DashboardService struct {
	store *storage.Store
}

func NewDashboardService(store *storage.Store) *DashboardService {
	return &DashboardService{store: store}
}

// Summary never fails: the gateway degrades broken reads to empty
// collections and the aggregation itself is total.
func (s *DashboardService) Summary(ctx context.Context) core.Summary {
	income := s.store.Income(ctx)
	budgets := s.store.Budgets(ctx)
	expenses := s.store.Expenses(ctx)
	return core.Summarize(income, budgets, expenses)
}
