package core

import (
	"math"
	"testing"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0.0 {
		t.Fatalf("empty set total = %v, want 0.0", s.Total)
	}
	if len(s.ByCategory) != 0 || len(s.ByDate) != 0 {
		t.Fatalf("empty set should have empty breakdowns, got %+v", s)
	}
}

func TestSummarizeTotalUnrounded(t *testing.T) {
	// 0.1+0.2 is not representable exactly; the total must be the raw
	// float sum, not a rounded presentation value.
	rows := []Expense{
		{Amount: 0.1, Category: "A", Date: "2024-01-01"},
		{Amount: 0.2, Category: "A", Date: "2024-01-01"},
	}
	s := Summarize(rows)
	if s.Total != 0.1+0.2 {
		t.Fatalf("total = %v, want exact float sum %v", s.Total, 0.1+0.2)
	}
	if Round2(s.Total) != 0.3 {
		t.Fatalf("Round2(total) = %v, want 0.3", Round2(s.Total))
	}
}

func TestSummarizeCategoryInsertionOrder(t *testing.T) {
	// Input arrives date-descending from the store; first-encounter order
	// of that sequence decides chart ordering.
	rows := []Expense{
		{Amount: 3, Category: "Transport", Date: "2024-03-01"},
		{Amount: 1, Category: "Food", Date: "2024-02-01"},
		{Amount: 2, Category: "Transport", Date: "2024-01-01"},
	}
	s := Summarize(rows)

	if len(s.ByCategory) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(s.ByCategory))
	}
	if s.ByCategory[0].Name != "Transport" || s.ByCategory[1].Name != "Food" {
		t.Fatalf("category order = [%s %s], want [Transport Food]",
			s.ByCategory[0].Name, s.ByCategory[1].Name)
	}
	if s.ByCategory[0].Amount != 5 {
		t.Fatalf("Transport total = %v, want 5", s.ByCategory[0].Amount)
	}
}

func TestSummarizeUncategorizedFallback(t *testing.T) {
	rows := []Expense{
		{Amount: 5.00, Category: "", Date: "2024-01-02"},
		{Amount: 2.50, Category: "", Date: "2024-01-01"},
	}
	s := Summarize(rows)

	if len(s.ByCategory) != 1 || s.ByCategory[0].Name != Uncategorized {
		t.Fatalf("expected single %q bucket, got %+v", Uncategorized, s.ByCategory)
	}
	if s.ByCategory[0].Amount != 7.50 {
		t.Fatalf("Uncategorized total = %v, want 7.50", s.ByCategory[0].Amount)
	}
}

func TestSummarizeDatesSortedAscending(t *testing.T) {
	rows := []Expense{
		{Amount: 1, Category: "A", Date: "2024-03-05"},
		{Amount: 2, Category: "A", Date: "2024-01-20"},
		{Amount: 3, Category: "A", Date: "2024-02-11"},
		{Amount: 4, Category: "A", Date: "2024-01-20"},
	}
	s := Summarize(rows)

	want := []DateTotal{
		{Date: "2024-01-20", Amount: 6},
		{Date: "2024-02-11", Amount: 3},
		{Date: "2024-03-05", Amount: 1},
	}
	if len(s.ByDate) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(s.ByDate))
	}
	for i, w := range want {
		if s.ByDate[i] != w {
			t.Fatalf("ByDate[%d] = %+v, want %+v", i, s.ByDate[i], w)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, out float64
	}{
		{1.005, 1.0}, // stored just below the midpoint, rounds down
		{1.2349, 1.23},
		{2.675000001, 2.68},
		{-1.234, -1.23},
		{0, 0},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); math.Abs(got-tc.out) > 1e-9 {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.out)
		}
	}
}
