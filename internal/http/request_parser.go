package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"budgetbuddy/internal/core"
)

// Request payloads carry amounts as JSON numbers; they are converted
// to cents with the same half-up parsing the original forms used.

type incomeRequest struct {
	Label       string      `json:"label"`
	Amount      json.Number `json:"amount"`
	Date        string      `json:"date"`
	IsRecurring bool        `json:"isRecurring"`
	Frequency   string      `json:"frequency"`
}

func (req incomeRequest) toIncome() (core.Income, error) {
	amount, err := core.ParseAmount(req.Amount.String())
	if err != nil {
		return core.Income{}, err
	}
	return core.Income{
		Label:       req.Label,
		Amount:      amount,
		Date:        req.Date,
		IsRecurring: req.IsRecurring,
		Frequency:   core.Frequency(req.Frequency),
	}, nil
}

type expenseRequest struct {
	CategoryID  string      `json:"categoryId"`
	Amount      json.Number `json:"amount"`
	Note        string      `json:"note"`
	Date        string      `json:"date"`
	Merchant    string      `json:"merchant"`
	Description string      `json:"description"`
	IsRecurring bool        `json:"isRecurring"`
	Frequency   string      `json:"frequency"`
}

func (req expenseRequest) toExpense() (core.Expense, error) {
	amount, err := core.ParseAmount(req.Amount.String())
	if err != nil {
		return core.Expense{}, err
	}
	return core.Expense{
		CategoryID:  req.CategoryID,
		Amount:      amount,
		Note:        req.Note,
		Date:        req.Date,
		Merchant:    req.Merchant,
		Description: req.Description,
		IsRecurring: req.IsRecurring,
		Frequency:   core.Frequency(req.Frequency),
	}, nil
}

type budgetRequest struct {
	Name  string      `json:"name"`
	Limit json.Number `json:"limit"`
	Color string      `json:"color"`
	Icon  string      `json:"icon"`
}

func (req budgetRequest) toCategory() (core.Category, error) {
	// A zero or absent limit is allowed for budgets
	limit, err := core.ParseLimit(req.Limit.String())
	if err != nil {
		return core.Category{}, err
	}
	return core.Category{
		Name:  req.Name,
		Limit: limit,
		Color: req.Color,
		Icon:  req.Icon,
	}, nil
}

// decodeBody parses a JSON request body into dst, limiting its size.
func decodeBody(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<16)
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
