package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Weekly      Frequency = "weekly"
	BiWeekly    Frequency = "bi-weekly"
	SemiMonthly Frequency = "semi-monthly"
	Monthly     Frequency = "monthly"
)

// UnknownCategoryName is displayed when an expense references a
// category that no longer exists.
const UnknownCategoryName = "Unknown Category"

type (
	Frequency string

	// Income is a single income entry. Frequency is metadata only:
	// nothing materializes future occurrences.
	Income struct {
		ID          string    `json:"id"`
		Label       string    `json:"label"`
		Amount      Money     `json:"amount"`
		Date        string    `json:"date"`
		IsRecurring bool      `json:"isRecurring,omitempty"`
		Frequency   Frequency `json:"frequency,omitempty"`
	}

	// Category is a budget bucket with a spending ceiling. Spent is a
	// cache of a derived value; the authoritative number is the sum of
	// expenses pointing at this category, recomputed on every read.
	Category struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Limit Money  `json:"limit"`
		Spent Money  `json:"spent"`
		Color string `json:"color"`
		Icon  string `json:"icon,omitempty"`
	}

	Expense struct {
		ID          string    `json:"id"`
		CategoryID  string    `json:"categoryId"`
		Amount      Money     `json:"amount"`
		Note        string    `json:"note,omitempty"`
		Date        string    `json:"date"`
		Merchant    string    `json:"merchant,omitempty"`
		Description string    `json:"description"`
		IsRecurring bool      `json:"isRecurring,omitempty"`
		Frequency   Frequency `json:"frequency,omitempty"`
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyLabel       = errors.New("empty label")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyName        = errors.New("empty name")
	ErrMissingCategory  = errors.New("missing category")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrNegativeLimit    = errors.New("negative limit")
	ErrNotFound         = errors.New("not found")
)

func (f Frequency) Valid() bool {
	switch f {
	case Weekly, BiWeekly, SemiMonthly, Monthly:
		return true
	}
	return false
}

// ValidateDate checks that s is an ISO calendar date (YYYY-MM-DD).
func ValidateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func (in Income) Validate() error {
	if strings.TrimSpace(in.Label) == "" {
		return ErrEmptyLabel
	}
	if in.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	if err := ValidateDate(in.Date); err != nil {
		return err
	}
	if in.IsRecurring && !in.Frequency.Valid() {
		return ErrInvalidFrequency
	}
	return nil
}

// Normalize drops the frequency when the entry is not recurring, so
// toggling recurrence off never persists a stale frequency value.
func (in Income) Normalize() Income {
	if !in.IsRecurring {
		in.Frequency = ""
	}
	return in
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.CategoryID) == "" {
		return ErrMissingCategory
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if e.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	if err := ValidateDate(e.Date); err != nil {
		return err
	}
	if e.IsRecurring && !e.Frequency.Valid() {
		return ErrInvalidFrequency
	}
	return nil
}

// Normalize drops the frequency when the expense is not recurring.
func (e Expense) Normalize() Expense {
	if !e.IsRecurring {
		e.Frequency = ""
	}
	return e
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if c.Limit.Cents < 0 {
		return ErrNegativeLimit
	}
	return nil
}

// CategoryName resolves the display name for a category id, degrading
// to UnknownCategoryName when the id matches no category.
func CategoryName(categories []Category, id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return UnknownCategoryName
}
