package http

import (
	"context"

	"expensebook/internal/core"
)

// ExpenseStore is the persistence surface the handlers depend on.
// *storage.SQLiteRepository satisfies it; tests substitute fakes.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, e core.Expense) (int64, error)
	ListExpenses(ctx context.Context, f core.Filter) ([]core.Expense, error)
	GetExpense(ctx context.Context, id int64) (core.Expense, error)
	UpdateExpense(ctx context.Context, id int64, e core.Expense) error
	DeleteExpense(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}
