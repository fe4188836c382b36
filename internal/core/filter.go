package core

// AllCategories is the sentinel a category selector submits when no
// category filter is active.
const AllCategories = "All"

// Filter narrows an expense listing. Every field is optional: empty start
// and end mean an unbounded date range, and an empty or "All" category
// means no category filter. Date bounds are inclusive and compared as
// strings, so callers must supply zero-padded ISO dates for correct
// ordering.
type Filter struct {
	Start    string
	End      string
	Category string
}

// HasCategory reports whether a category criterion is active.
func (f Filter) HasCategory() bool {
	return f.Category != "" && f.Category != AllCategories
}

// IsZero reports whether no criterion is active.
func (f Filter) IsZero() bool {
	return f.Start == "" && f.End == "" && !f.HasCategory()
}

// Matches reports whether e satisfies every active criterion.
func (f Filter) Matches(e Expense) bool {
	if f.Start != "" && e.Date < f.Start {
		return false
	}
	if f.End != "" && e.Date > f.End {
		return false
	}
	if f.HasCategory() && e.Category != f.Category {
		return false
	}
	return true
}
