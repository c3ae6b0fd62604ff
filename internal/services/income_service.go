package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"budgetbuddy/internal/core"
	"budgetbuddy/internal/events"
	"budgetbuddy/internal/storage"
)

// IncomeService manages the income collection.
type IncomeService struct {
	store  *storage.Store
	events Publisher
}

func NewIncomeService(store *storage.Store, events Publisher) *IncomeService {
	return &IncomeService{store: store, events: events}
}

func (s *IncomeService) List(ctx context.Context) []core.Income {
	return s.store.Income(ctx)
}

func (s *IncomeService) Get(ctx context.Context, id string) (core.Income, error) {
	for _, in := range s.store.Income(ctx) {
		if in.ID == id {
			return in, nil
		}
	}
	return core.Income{}, fmt.Errorf("income %s: %w", id, core.ErrNotFound)
}

// Add validates the entry, assigns it a fresh id, and appends it to
// the stored collection. Validation runs before any I/O.
func (s *IncomeService) Add(ctx context.Context, in core.Income) (core.Income, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return core.Income{}, err
	}
	in.ID = uuid.NewString()

	list := append(s.store.Income(ctx), in)
	if err := s.store.SaveIncome(ctx, list); err != nil {
		return core.Income{}, fmt.Errorf("save income: %w", err)
	}

	publish(ctx, s.events, storage.KeyIncome, in.ID, events.ActionCreated)
	return in, nil
}

// Update replaces the entry with the same id, preserving the id. A
// missing id aborts before any write.
func (s *IncomeService) Update(ctx context.Context, in core.Income) (core.Income, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return core.Income{}, err
	}

	list := s.store.Income(ctx)
	idx := -1
	for i := range list {
		if list[i].ID == in.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.Income{}, fmt.Errorf("income %s: %w", in.ID, core.ErrNotFound)
	}

	list[idx] = in
	if err := s.store.SaveIncome(ctx, list); err != nil {
		return core.Income{}, fmt.Errorf("save income: %w", err)
	}

	publish(ctx, s.events, storage.KeyIncome, in.ID, events.ActionUpdated)
	return in, nil
}

// Delete removes the entry with the given id. Deleting an id that is
// already absent is a no-op success and never touches storage.
func (s *IncomeService) Delete(ctx context.Context, id string) error {
	list := s.store.Income(ctx)
	kept := make([]core.Income, 0, len(list))
	for _, in := range list {
		if in.ID != id {
			kept = append(kept, in)
		}
	}
	if len(kept) == len(list) {
		return nil
	}

	if err := s.store.SaveIncome(ctx, kept); err != nil {
		return fmt.Errorf("save income: %w", err)
	}

	publish(ctx, s.events, storage.KeyIncome, id, events.ActionDeleted)
	return nil
}
