package http

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"expensebook/internal/core"

	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	return "req_" + uuid.NewString()
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// parseID extracts the {id} path value of the request.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// formatAmount renders a float amount with two decimals for display.
func formatAmount(v float64) string {
	return strconv.FormatFloat(core.Round2(v), 'f', 2, 64)
}

// chartJSON marshals chart labels or values into a template-safe JSON
// array. Labels pass through json.Marshal so quoting is handled there.
func chartJSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return template.JS("[]")
	}
	return template.JS(b)
}

// redirect issues the 303 redirect every mutating handler responds with.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}
