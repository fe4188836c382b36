package http

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"expensebook/internal/core"
	"expensebook/internal/storage"
)

// indexView is the template payload of the list page. Chart fields carry
// pre-marshalled JSON arrays: category series in first-encounter order of
// the date-descending listing, date series ascending.
type indexView struct {
	Expenses     []core.Expense
	Total        float64
	TotalDisplay string
	Categories   []string
	Selected     string
	Start        string
	End          string

	CategoryLabels template.JS
	CategoryValues template.JS
	DateLabels     template.JS
	DateValues     template.JS
}

type editView struct {
	Expense    core.Expense
	Categories []string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	filter := core.Filter{
		Start:    sanitizeInput(q.Get("start")),
		End:      sanitizeInput(q.Get("end")),
		Category: sanitizeInput(q.Get("category")),
	}
	selected := filter.Category
	if selected == "" {
		selected = core.AllCategories
	}

	expenses, err := s.store.ListExpenses(r.Context(), filter)
	if err != nil {
		slog.ErrorContext(r.Context(), "List expenses error", "error", err)
		http.Error(w, "failed to load expenses", http.StatusInternalServerError)
		return
	}

	// Category selector lists every category ever used, not just those in
	// the current filtered view.
	categories, err := s.store.Categories(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List categories error", "error", err)
		http.Error(w, "failed to load categories", http.StatusInternalServerError)
		return
	}

	summary := core.Summarize(expenses)

	catLabels := make([]string, len(summary.ByCategory))
	catValues := make([]float64, len(summary.ByCategory))
	for i, c := range summary.ByCategory {
		catLabels[i] = c.Name
		catValues[i] = core.Round2(c.Amount)
	}
	dateLabels := make([]string, len(summary.ByDate))
	dateValues := make([]float64, len(summary.ByDate))
	for i, d := range summary.ByDate {
		dateLabels[i] = d.Date
		dateValues[i] = core.Round2(d.Amount)
	}

	data := indexView{
		Expenses:     expenses,
		Total:        summary.Total,
		TotalDisplay: formatAmount(summary.Total),
		Categories:   categories,
		Selected:     selected,
		Start:        filter.Start,
		End:          filter.End,

		CategoryLabels: chartJSON(catLabels),
		CategoryValues: chartJSON(catValues),
		DateLabels:     chartJSON(dateLabels),
		DateValues:     chartJSON(dateValues),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.WarnContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		redirect(w, r, "/")
		return
	}

	form := core.ExpenseForm{
		Amount:      sanitizeInput(r.Form.Get("amount")),
		Category:    sanitizeInput(r.Form.Get("category")),
		Description: sanitizeInput(r.Form.Get("description")),
		Date:        sanitizeInput(r.Form.Get("date")),
	}

	expense, err := form.Parse()
	if err != nil {
		// Invalid input creates nothing; the client is sent back to the
		// list view.
		slog.WarnContext(r.Context(), "Rejected expense create", "error", err)
		redirect(w, r, "/")
		return
	}

	if _, err := s.store.CreateExpense(r.Context(), expense); err != nil {
		slog.ErrorContext(r.Context(), "Create expense error", "error", err)
		http.Error(w, "failed to save expense", http.StatusInternalServerError)
		return
	}

	redirect(w, r, "/")
}

func (s *Server) handleEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		redirect(w, r, "/")
		return
	}

	expense, err := s.store.GetExpense(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		redirect(w, r, "/")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Get expense error", "error", err, "id", id)
		http.Error(w, "failed to load expense", http.StatusInternalServerError)
		return
	}

	categories, err := s.store.Categories(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List categories error", "error", err)
		http.Error(w, "failed to load categories", http.StatusInternalServerError)
		return
	}

	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	if err := s.templates.ExecuteTemplate(w, "edit.html", editView{Expense: expense, Categories: categories}); err != nil {
		slog.ErrorContext(r.Context(), "Edit template execution failed", "error", err, "template", "edit.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleEditSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		redirect(w, r, "/")
		return
	}

	if err := r.ParseForm(); err != nil {
		slog.WarnContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		redirect(w, r, r.URL.Path)
		return
	}

	form := core.ExpenseForm{
		Amount:      sanitizeInput(r.Form.Get("amount")),
		Category:    sanitizeInput(r.Form.Get("category")),
		Description: sanitizeInput(r.Form.Get("description")),
		Date:        sanitizeInput(r.Form.Get("date")),
	}

	expense, err := form.Parse()
	if err != nil {
		// Invalid input sends the client back to the same edit form.
		slog.WarnContext(r.Context(), "Rejected expense edit", "error", err, "id", id)
		redirect(w, r, r.URL.Path)
		return
	}

	// Updating an id that no longer exists affects zero rows and still
	// redirects to the list.
	if err := s.store.UpdateExpense(r.Context(), id, expense); err != nil {
		slog.ErrorContext(r.Context(), "Update expense error", "error", err, "id", id)
		http.Error(w, "failed to update expense", http.StatusInternalServerError)
		return
	}

	redirect(w, r, "/")
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		redirect(w, r, "/")
		return
	}

	if err := s.store.DeleteExpense(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Delete expense error", "error", err, "id", id)
		http.Error(w, "failed to delete expense", http.StatusInternalServerError)
		return
	}

	redirect(w, r, "/")
}
