// Package core holds the expense domain types and the filter/aggregate
// engine that derives chartable totals from a filtered row set.
package core

import (
	"math"
	"sort"
)

// Uncategorized is the fallback label for rows with an empty category.
const Uncategorized = "Uncategorized"

type (
	// CategoryTotal is the summed amount for one category label.
	CategoryTotal struct {
		Name   string
		Amount float64
	}

	// DateTotal is the summed amount for one date string.
	DateTotal struct {
		Date   string
		Amount float64
	}

	// Summary is the aggregate view of a filtered expense set.
	Summary struct {
		Total      float64
		ByCategory []CategoryTotal
		ByDate     []DateTotal
	}
)

// Summarize derives the aggregate view of an already-filtered expense list.
//
// ByCategory preserves first-encounter order of the input sequence, which
// for store results is date-descending; ByDate is re-sorted ascending by
// date string for time-series charts. Both orderings feed chart rendering
// and must stay distinct. Total is the exact float sum, left unrounded.
func Summarize(rows []Expense) Summary {
	var s Summary
	catIndex := make(map[string]int)
	dateIndex := make(map[string]int)

	for _, e := range rows {
		s.Total += e.Amount

		name := e.Category
		if name == "" {
			name = Uncategorized
		}
		if i, ok := catIndex[name]; ok {
			s.ByCategory[i].Amount += e.Amount
		} else {
			catIndex[name] = len(s.ByCategory)
			s.ByCategory = append(s.ByCategory, CategoryTotal{Name: name, Amount: e.Amount})
		}

		if i, ok := dateIndex[e.Date]; ok {
			s.ByDate[i].Amount += e.Amount
		} else {
			dateIndex[e.Date] = len(s.ByDate)
			s.ByDate = append(s.ByDate, DateTotal{Date: e.Date, Amount: e.Amount})
		}
	}

	sort.Slice(s.ByDate, func(i, j int) bool { return s.ByDate[i].Date < s.ByDate[j].Date })
	return s
}

// Round2 rounds v to two decimal places for display and chart values.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
