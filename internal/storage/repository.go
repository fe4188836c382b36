// Package storage persists expenses in a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"expensebook/internal/core"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("expense not found")

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping verifies the underlying connection, used by the readiness probe.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// CreateExpense inserts a new expense row and returns its assigned id.
func (r *SQLiteRepository) CreateExpense(ctx context.Context, e core.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (amount, category, description, date) VALUES (?, ?, ?, ?)`,
		e.Amount, e.Category, e.Description, e.Date)
	if err != nil {
		return 0, fmt.Errorf("create expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", id,
		"category", e.Category,
		"amount", e.Amount,
		"date", e.Date)

	return id, nil
}

// ListExpenses returns every row matching the filter, most recent first
// (date descending, ties broken by id descending). Filter criteria are
// combined conjunctively; inactive criteria add no clause.
func (r *SQLiteRepository) ListExpenses(ctx context.Context, f core.Filter) ([]core.Expense, error) {
	query := `SELECT id, amount, category, description, date FROM expenses`

	var clauses []string
	var args []any
	if f.Start != "" {
		clauses = append(clauses, "date >= ?")
		args = append(args, f.Start)
	}
	if f.End != "" {
		clauses = append(clauses, "date <= ?")
		args = append(args, f.End)
	}
	if f.HasCategory() {
		clauses = append(clauses, "category = ?")
		args = append(args, f.Category)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY date DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var e core.Expense
		var description sql.NullString
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &description, &e.Date); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Description = description.String
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return expenses, nil
}

// GetExpense returns the row with the given id, or ErrNotFound.
func (r *SQLiteRepository) GetExpense(ctx context.Context, id int64) (core.Expense, error) {
	var e core.Expense
	var description sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, amount, category, description, date FROM expenses WHERE id = ?`, id).
		Scan(&e.ID, &e.Amount, &e.Category, &description, &e.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, ErrNotFound
	}
	if err != nil {
		return core.Expense{}, fmt.Errorf("get expense %d: %w", id, err)
	}
	e.Description = description.String
	return e, nil
}

// UpdateExpense overwrites all four mutable fields of the row with the
// given id. Updating a nonexistent id affects zero rows and is not an
// error.
func (r *SQLiteRepository) UpdateExpense(ctx context.Context, id int64, e core.Expense) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET amount = ?, category = ?, description = ?, date = ? WHERE id = ?`,
		e.Amount, e.Category, e.Description, e.Date, id)
	if err != nil {
		return fmt.Errorf("update expense %d: %w", id, err)
	}

	slog.InfoContext(ctx, "Expense updated", "id", id, "category", e.Category, "amount", e.Amount)
	return nil
}

// DeleteExpense removes the row with the given id if present. Deleting an
// absent id is not an error.
func (r *SQLiteRepository) DeleteExpense(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}

	slog.InfoContext(ctx, "Expense deleted", "id", id)
	return nil
}

// Categories returns the distinct category labels of the whole table,
// sorted ascending. The list is independent of any active filter so the
// category selector always shows every label ever used.
func (r *SQLiteRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT category FROM expenses ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}
