package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"budgetbuddy/internal/core"
	"budgetbuddy/internal/events"
	"budgetbuddy/internal/storage"
)

// BudgetService manages the budget category collection. The persisted
// spent field is only a cache: reads always recompute it from the
// expense list, and writes refresh it.
type BudgetService struct {
	store  *storage.Store
	events Publisher
}

func NewBudgetService(store *storage.Store, events Publisher) *BudgetService {
	return &BudgetService{store: store, events: events}
}

// List returns all categories with spent recomputed from the current
// expenses, never the persisted value.
func (s *BudgetService) List(ctx context.Context) []core.Category {
	budgets := s.store.Budgets(ctx)
	expenses := s.store.Expenses(ctx)
	for i := range budgets {
		budgets[i].Spent = core.SpentFor(expenses, budgets[i].ID)
	}
	return budgets
}

func (s *BudgetService) Get(ctx context.Context, id string) (core.Category, error) {
	for _, c := range s.List(ctx) {
		if c.ID == id {
			return c, nil
		}
	}
	return core.Category{}, fmt.Errorf("budget %s: %w", id, core.ErrNotFound)
}

func (s *BudgetService) Add(ctx context.Context, c core.Category) (core.Category, error) {
	if err := c.Validate(); err != nil {
		return core.Category{}, err
	}
	c.ID = uuid.NewString()
	c.Spent = core.Money{}

	list := append(s.store.Budgets(ctx), c)
	if err := s.store.SaveBudgets(ctx, list); err != nil {
		return core.Category{}, fmt.Errorf("save budgets: %w", err)
	}

	publish(ctx, s.events, storage.KeyBudgets, c.ID, events.ActionCreated)
	return c, nil
}

func (s *BudgetService) Update(ctx context.Context, c core.Category) (core.Category, error) {
	if err := c.Validate(); err != nil {
		return core.Category{}, err
	}

	list := s.store.Budgets(ctx)
	idx := -1
	for i := range list {
		if list[i].ID == c.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.Category{}, fmt.Errorf("budget %s: %w", c.ID, core.ErrNotFound)
	}

	// Refresh the spent cache at write time
	c.Spent = core.SpentFor(s.store.Expenses(ctx), c.ID)
	list[idx] = c
	if err := s.store.SaveBudgets(ctx, list); err != nil {
		return core.Category{}, fmt.Errorf("save budgets: %w", err)
	}

	publish(ctx, s.events, storage.KeyBudgets, c.ID, events.ActionUpdated)
	return c, nil
}

// Delete removes a category. Expenses referencing it stay in place and
// degrade to "Unknown Category" on display; an absent id is a no-op.
func (s *BudgetService) Delete(ctx context.Context, id string) error {
	list := s.store.Budgets(ctx)
	kept := make([]core.Category, 0, len(list))
	for _, c := range list {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(list) {
		return nil
	}

	if err := s.store.SaveBudgets(ctx, kept); err != nil {
		return fmt.Errorf("save budgets: %w", err)
	}

	publish(ctx, s.events, storage.KeyBudgets, id, events.ActionDeleted)
	return nil
}
