package core

import (
	"errors"
	"strconv"
	"strings"
)

type (
	// Expense is a single persisted expense row.
	Expense struct {
		ID          int64
		Amount      float64
		Category    string
		Description string
		Date        string // sortable YYYY-MM-DD string
	}

	// ExpenseForm carries the raw form fields of a create or edit request.
	ExpenseForm struct {
		Amount      string
		Category    string
		Description string
		Date        string
	}
)

var (
	ErrMissingAmount   = errors.New("missing amount")
	ErrMissingCategory = errors.New("missing category")
	ErrMissingDate     = errors.New("missing date")
	ErrInvalidAmount   = errors.New("invalid amount")
)

// Parse validates the raw form fields and builds an Expense.
//
// Amount, category and date are required; description is optional. Amounts
// may be negative (refunds). Dates are treated as opaque sortable strings
// and are not calendar-validated.
func (f ExpenseForm) Parse() (Expense, error) {
	amount := strings.TrimSpace(f.Amount)
	category := strings.TrimSpace(f.Category)
	date := strings.TrimSpace(f.Date)

	if amount == "" {
		return Expense{}, ErrMissingAmount
	}
	if category == "" {
		return Expense{}, ErrMissingCategory
	}
	if date == "" {
		return Expense{}, ErrMissingDate
	}

	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return Expense{}, ErrInvalidAmount
	}

	return Expense{
		Amount:      value,
		Category:    category,
		Description: strings.TrimSpace(f.Description),
		Date:        date,
	}, nil
}
