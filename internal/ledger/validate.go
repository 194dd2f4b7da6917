package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bueno-budget/bueno/internal/model"
	"github.com/bueno-budget/bueno/internal/store"
)

// ValidationError describes a submitted field that is missing or cannot be
// coerced to its type.
type ValidationError struct {
	Table  string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s %s: %s", e.Table, e.Field, e.Reason)
}

// IncomeFields is the raw form input for an income entry.
type IncomeFields struct {
	Date     string
	Source   string
	Expected string
	Actual   string
	Notes    string
}

// ExpenseFields is the raw form input for an expense entry.
type ExpenseFields struct {
	Date        string
	Description string
	Expected    string
	Actual      string
	Recurring   string
}

// SuggestionFields is the raw form input for a suggestion.
type SuggestionFields struct {
	Name       string
	Suggestion string
}

// ParseIncome coerces form input to an Income. A blank date is today; blank
// amounts are zero.
func ParseIncome(f IncomeFields, today time.Time) (model.Income, error) {
	date, err := parseDateField(TableIncome, f.Date, today)
	if err != nil {
		return model.Income{}, err
	}
	expected, err := parseAmountField(TableIncome, "Expected", f.Expected)
	if err != nil {
		return model.Income{}, err
	}
	actual, err := parseAmountField(TableIncome, "Actual", f.Actual)
	if err != nil {
		return model.Income{}, err
	}
	return model.Income{
		Date:     date,
		Source:   f.Source,
		Expected: expected,
		Actual:   actual,
		Notes:    f.Notes,
	}, nil
}

// ParseExpense coerces form input to an Expense. A blank date is today; blank
// amounts are zero; a blank recurring flag is false.
func ParseExpense(f ExpenseFields, today time.Time) (model.Expense, error) {
	date, err := parseDateField(TableExpenses, f.Date, today)
	if err != nil {
		return model.Expense{}, err
	}
	expected, err := parseAmountField(TableExpenses, "Expected", f.Expected)
	if err != nil {
		return model.Expense{}, err
	}
	actual, err := parseAmountField(TableExpenses, "Actual", f.Actual)
	if err != nil {
		return model.Expense{}, err
	}
	recurring, err := store.ParseBool(f.Recurring)
	if err != nil {
		return model.Expense{}, &ValidationError{Table: TableExpenses, Field: "Recurring", Reason: fmt.Sprintf("%q is not true or false", f.Recurring)}
	}
	return model.Expense{
		Date:        date,
		Description: f.Description,
		Expected:    expected,
		Actual:      actual,
		Recurring:   recurring,
	}, nil
}

// ParseSuggestion stamps form input with today's date.
func ParseSuggestion(f SuggestionFields, today time.Time) model.Suggestion {
	return model.Suggestion{
		Date: day(today),
		Name: f.Name,
		Text: f.Suggestion,
	}
}

func parseDateField(table, value string, today time.Time) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return day(today), nil
	}
	t, err := store.ParseDate(value)
	if err != nil {
		return time.Time{}, &ValidationError{Table: table, Field: "Date", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", value)}
	}
	return t, nil
}

func parseAmountField(table, field, value string) (decimal.Decimal, error) {
	d, err := store.ParseDecimal(value)
	if errors.Is(err, store.ErrDecimalRange) {
		return decimal.Zero, &ValidationError{Table: table, Field: field, Reason: fmt.Sprintf("%q is out of range (at most %d integer digits)", value, store.MaxIntegerDigits)}
	}
	if err != nil {
		return decimal.Zero, &ValidationError{Table: table, Field: field, Reason: fmt.Sprintf("%q is not a decimal amount", value)}
	}
	return d, nil
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
