package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"budgetbuddy/internal/core"
)

// Store is the typed gateway over the key-value store. Reads fail
// open: a missing key, a read error, or a corrupt value yields an
// empty collection with a logged warning, so the dashboard renders
// rather than crashing on a bad store. Writes replace the whole
// collection and propagate failures.
//
// There is no optimistic-concurrency check: two callers racing a
// read-modify-write cycle lose one writer's change (last write wins).
// Acceptable for a single-user, mostly-sequential UI.
type Store struct {
	kv KeyValue
}

func NewStore(kv KeyValue) *Store {
	return &Store{kv: kv}
}

func (s *Store) Income(ctx context.Context) []core.Income {
	return loadList[core.Income](ctx, s.kv, KeyIncome)
}

func (s *Store) SaveIncome(ctx context.Context, income []core.Income) error {
	return saveList(ctx, s.kv, KeyIncome, income)
}

func (s *Store) Budgets(ctx context.Context) []core.Category {
	return loadList[core.Category](ctx, s.kv, KeyBudgets)
}

func (s *Store) SaveBudgets(ctx context.Context, budgets []core.Category) error {
	return saveList(ctx, s.kv, KeyBudgets, budgets)
}

func (s *Store) Expenses(ctx context.Context) []core.Expense {
	return loadList[core.Expense](ctx, s.kv, KeyExpenses)
}

func (s *Store) SaveExpenses(ctx context.Context, expenses []core.Expense) error {
	return saveList(ctx, s.kv, KeyExpenses, expenses)
}

// Ping verifies the backing store answers a read. Used by readiness
// checks.
func (s *Store) Ping(ctx context.Context) error {
	if _, _, err := s.kv.Get(ctx, KeyBudgets); err != nil {
		return fmt.Errorf("ping store: %w", err)
	}
	return nil
}

func loadList[T any](ctx context.Context, kv KeyValue, key string) []T {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "Storage read failed, treating collection as empty",
			"key", key, "error", err)
		return []T{}
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []T{}
	}

	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		slog.WarnContext(ctx, "Corrupt collection value, treating as empty",
			"key", key, "error", err)
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

func saveList[T any](ctx context.Context, kv KeyValue, key string, list []T) error {
	if list == nil {
		// Persist an empty array, not null
		list = []T{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
