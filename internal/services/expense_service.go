package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"budgetbuddy/internal/core"
	"budgetbuddy/internal/events"
	"budgetbuddy/internal/storage"
)

// ExpenseService manages the expense collection and the category
// choices the expense-logging flow presents.
type ExpenseService struct {
	store  *storage.Store
	events Publisher
}

func NewExpenseService(store *storage.Store, events Publisher) *ExpenseService {
	return &ExpenseService{store: store, events: events}
}

func (s *ExpenseService) List(ctx context.Context) []core.Expense {
	return s.store.Expenses(ctx)
}

func (s *ExpenseService) Get(ctx context.Context, id string) (core.Expense, error) {
	for _, e := range s.store.Expenses(ctx) {
		if e.ID == id {
			return e, nil
		}
	}
	return core.Expense{}, fmt.Errorf("expense %s: %w", id, core.ErrNotFound)
}

// Categories returns the budget categories available to the expense
// flow, seeding the default set the first time the collection is
// found empty.
func (s *ExpenseService) Categories(ctx context.Context) ([]core.Category, error) {
	budgets := s.store.Budgets(ctx)
	if len(budgets) > 0 {
		return budgets, nil
	}

	budgets = DefaultCategories()
	if err := s.store.SaveBudgets(ctx, budgets); err != nil {
		return nil, fmt.Errorf("seed default budgets: %w", err)
	}
	slog.InfoContext(ctx, "Seeded default budget categories", "count", len(budgets))
	return budgets, nil
}

// Add validates the expense, assigns a fresh id, and appends it.
// Validation runs before any I/O.
func (s *ExpenseService) Add(ctx context.Context, e core.Expense) (core.Expense, error) {
	e = e.Normalize()
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	e.ID = uuid.NewString()

	list := append(s.store.Expenses(ctx), e)
	if err := s.store.SaveExpenses(ctx, list); err != nil {
		return core.Expense{}, fmt.Errorf("save expenses: %w", err)
	}

	publish(ctx, s.events, storage.KeyExpenses, e.ID, events.ActionCreated)
	return e, nil
}

// Update replaces the expense with the same id in place. A missing id
// aborts before any write.
func (s *ExpenseService) Update(ctx context.Context, e core.Expense) (core.Expense, error) {
	e = e.Normalize()
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}

	list := s.store.Expenses(ctx)
	idx := -1
	for i := range list {
		if list[i].ID == e.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.Expense{}, fmt.Errorf("expense %s: %w", e.ID, core.ErrNotFound)
	}

	list[idx] = e
	if err := s.store.SaveExpenses(ctx, list); err != nil {
		return core.Expense{}, fmt.Errorf("save expenses: %w", err)
	}

	publish(ctx, s.events, storage.KeyExpenses, e.ID, events.ActionUpdated)
	return e, nil
}

// Delete removes the expense with the given id; an absent id is an
// idempotent no-op.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	list := s.store.Expenses(ctx)
	kept := make([]core.Expense, 0, len(list))
	for _, e := range list {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(list) {
		return nil
	}

	if err := s.store.SaveExpenses(ctx, kept); err != nil {
		return fmt.Errorf("save expenses: %w", err)
	}

	publish(ctx, s.events, storage.KeyExpenses, id, events.ActionDeleted)
	return nil
}
