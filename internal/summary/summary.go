// Package summary derives dashboard metrics from ledger entries.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/bueno-budget/bueno/internal/ledger"
	"github.com/bueno-budget/bueno/internal/model"
)

var one = decimal.NewFromInt(1)

// ProgressRatio returns actual/expected clamped to [0,1]. ok is false when
// expected is not positive; there is no meaningful ratio then and callers
// should show that there is not enough data rather than an empty bar.
func ProgressRatio(actual, expected decimal.Decimal) (ratio decimal.Decimal, ok bool) {
	if !expected.IsPositive() {
		return decimal.Zero, false
	}
	ratio = actual.Div(expected)
	switch {
	case ratio.GreaterThan(one):
		ratio = one
	case ratio.IsNegative():
		ratio = decimal.Zero
	}
	return ratio, true
}

// Metric is one side of the dashboard.
type Metric struct {
	Expected    decimal.Decimal
	Actual      decimal.Decimal
	Progress    decimal.Decimal
	HasProgress bool
}

// NewMetric computes a Metric from totals.
func NewMetric(expected, actual decimal.Decimal) Metric {
	p, ok := ProgressRatio(actual, expected)
	return Metric{Expected: expected, Actual: actual, Progress: p, HasProgress: ok}
}

// Overview is the expected vs. actual dashboard.
type Overview struct {
	Income   Metric
	Expenses Metric
}

// Build sums income and expense entries into an Overview.
func Build(income []model.Income, expenses []model.Expense) Overview {
	return Overview{
		Income:   NewMetric(ledger.TotalExpected(income), ledger.TotalActual(income)),
		Expenses: NewMetric(ledger.TotalExpected(expenses), ledger.TotalActual(expenses)),
	}
}
