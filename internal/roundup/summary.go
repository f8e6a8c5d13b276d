package roundup

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is the part of a stored roundup that Summarize needs.
type Record struct {
	Rule          Rule
	RoundupAmount decimal.Decimal
	CreatedAt     time.Time
}

// Window is the half-open interval [Start, End). A zero bound is open.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && !t.Before(w.End) {
		return false
	}
	return true
}

// RuleStats aggregates the records of one rule.
type RuleStats struct {
	Rule         Rule
	Count        int
	TotalRoundup decimal.Decimal
}

// Summary aggregates roundups over a window.
type Summary struct {
	Window         Window
	Count          int
	TotalRoundup   decimal.Decimal
	AverageRoundup decimal.Decimal
	ByRule         []RuleStats
}

// Summarize totals the records that fall inside window. ByRule always lists
// every rule in Rules order; records with an unknown rule count toward the
// totals only.
func Summarize(records []Record, window Window) Summary {
	byRule := make(map[Rule]*RuleStats, len(Rules))
	summary := Summary{
		Window:         window,
		TotalRoundup:   decimal.Zero,
		AverageRoundup: decimal.Zero,
		ByRule:         make([]RuleStats, len(Rules)),
	}
	for i, rule := range Rules {
		summary.ByRule[i] = RuleStats{Rule: rule, TotalRoundup: decimal.Zero}
		byRule[rule] = &summary.ByRule[i]
	}

	for _, rec := range records {
		if !window.Contains(rec.CreatedAt) {
			continue
		}
		summary.Count++
		summary.TotalRoundup = summary.TotalRoundup.Add(rec.RoundupAmount)
		if stats, ok := byRule[rec.Rule]; ok {
			stats.Count++
			stats.TotalRoundup = stats.TotalRoundup.Add(rec.RoundupAmount)
		}
	}

	if summary.Count > 0 {
		summary.AverageRoundup = summary.TotalRoundup.DivRound(decimal.NewFromInt(int64(summary.Count)), CurrencyPlaces)
	}

	return summary
}
