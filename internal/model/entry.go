package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a row in expenses.csv.
type Expense struct {
	Date        time.Time
	Description string
	Expected    decimal.Decimal // planned amount
	Actual      decimal.Decimal // realized amount
	Recurring   bool
}

// Income is a row in income.csv.
type Income struct {
	Date     time.Time
	Source   string
	Expected decimal.Decimal
	Actual   decimal.Decimal
	Notes    string
}

// Suggestion is a row in suggestions.csv.
type Suggestion struct {
	Date time.Time
	Name string
	Text string
}

// ExpectedAmount returns the planned amount.
func (e Expense) ExpectedAmount() decimal.Decimal { return e.Expected }

// ActualAmount returns the realized amount.
func (e Expense) ActualAmount() decimal.Decimal { return e.Actual }

// ExpectedAmount returns the planned amount.
func (i Income) ExpectedAmount() decimal.Decimal { return i.Expected }

// ActualAmount returns the realized amount.
func (i Income) ActualAmount() decimal.Decimal { return i.Actual }
