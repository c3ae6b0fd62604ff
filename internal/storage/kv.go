// Package storage implements the persistence gateway: the three
// collections are stored whole as JSON array values under fixed keys
// in a key-value store.
package storage

import (
	"context"
	"fmt"
)

// Storage keys, one per collection. These match the mobile client's
// AsyncStorage layout so existing on-device data stays readable.
const (
	KeyIncome   = "INCOME"
	KeyBudgets  = "BUDGETS"
	KeyExpenses = "EXPENSES"
)

// KeyValue is the contract the gateway needs from a backing store:
// get/set/remove of raw string values by key. Implementations may
// suspend on I/O, hence the contexts.
type KeyValue interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// BackendType selects the key-value backend.
type BackendType string

const (
	MemoryBackend BackendType = "memory"
	SQLiteBackend BackendType = "sqlite"
)

// String implements fmt.Stringer.
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is known.
func (bt BackendType) IsValid() bool {
	switch bt {
	case MemoryBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases resources held by a backend.
type CleanupFunc func() error

// OpenKeyValue creates a key-value store for the given backend type.
// The returned cleanup func is never nil.
func OpenKeyValue(backend BackendType, dbPath string) (KeyValue, CleanupFunc, error) {
	switch backend {
	case SQLiteBackend:
		kv, err := OpenSQLite(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		return kv, kv.Close, nil
	case MemoryBackend:
		return NewMemory(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported backend type: %s", backend)
	}
}
