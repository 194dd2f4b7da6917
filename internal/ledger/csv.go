package ledger

import (
	"fmt"
	"strings"

	"github.com/bueno-budget/bueno/internal/model"
	"github.com/bueno-budget/bueno/internal/store"
)

// Table schemas. Column names and order are the on-disk format and must
// never change.
var (
	ExpenseSchema = store.Schema{
		{Name: "Date", Type: store.TypeDate},
		{Name: "Description", Type: store.TypeText},
		{Name: "Expected", Type: store.TypeDecimal},
		{Name: "Actual", Type: store.TypeDecimal},
		{Name: "Recurring", Type: store.TypeBool},
	}

	IncomeSchema = store.Schema{
		{Name: "Date", Type: store.TypeDate},
		{Name: "Source", Type: store.TypeText},
		{Name: "Expected", Type: store.TypeDecimal},
		{Name: "Actual", Type: store.TypeDecimal},
		{Name: "Notes", Type: store.TypeText},
	}

	SuggestionSchema = store.Schema{
		{Name: "Date", Type: store.TypeDate},
		{Name: "Name", Type: store.TypeText},
		{Name: "Suggestion", Type: store.TypeText},
	}
)

const (
	colDate     = 0
	colExpected = 2
	colActual   = 3

	colExpDesc      = 1
	colExpRecurring = 4

	colIncSource = 1
	colIncNotes  = 4

	colSugName = 1
	colSugText = 2
)

// MarshalExpense converts an Expense to a table row.
func MarshalExpense(e model.Expense) store.Row {
	row := make(store.Row, len(ExpenseSchema))
	row[colDate] = store.FormatDate(e.Date)
	row[colExpDesc] = cellText(e.Description)
	row[colExpected] = store.FormatDecimal(e.Expected)
	row[colActual] = store.FormatDecimal(e.Actual)
	row[colExpRecurring] = store.FormatBool(e.Recurring)
	return row
}

// UnmarshalExpense converts a table row to an Expense.
func UnmarshalExpense(row store.Row) (model.Expense, error) {
	if len(row) != len(ExpenseSchema) {
		return model.Expense{}, fmt.Errorf("expected %d fields, got %d", len(ExpenseSchema), len(row))
	}

	date, err := store.ParseDate(row[colDate])
	if err != nil {
		return model.Expense{}, err
	}
	expected, err := store.ParseDecimal(row[colExpected])
	if err != nil {
		return model.Expense{}, fmt.Errorf("expected: %w", err)
	}
	actual, err := store.ParseDecimal(row[colActual])
	if err != nil {
		return model.Expense{}, fmt.Errorf("actual: %w", err)
	}
	recurring, err := store.ParseBool(row[colExpRecurring])
	if err != nil {
		return model.Expense{}, fmt.Errorf("recurring: %w", err)
	}

	return model.Expense{
		Date:        date,
		Description: row[colExpDesc],
		Expected:    expected,
		Actual:      actual,
		Recurring:   recurring,
	}, nil
}

// MarshalIncome converts an Income to a table row.
func MarshalIncome(i model.Income) store.Row {
	row := make(store.Row, len(IncomeSchema))
	row[colDate] = store.FormatDate(i.Date)
	row[colIncSource] = cellText(i.Source)
	row[colExpected] = store.FormatDecimal(i.Expected)
	row[colActual] = store.FormatDecimal(i.Actual)
	row[colIncNotes] = cellText(i.Notes)
	return row
}

// UnmarshalIncome converts a table row to an Income.
func UnmarshalIncome(row store.Row) (model.Income, error) {
	if len(row) != len(IncomeSchema) {
		return model.Income{}, fmt.Errorf("expected %d fields, got %d", len(IncomeSchema), len(row))
	}

	date, err := store.ParseDate(row[colDate])
	if err != nil {
		return model.Income{}, err
	}
	expected, err := store.ParseDecimal(row[colExpected])
	if err != nil {
		return model.Income{}, fmt.Errorf("expected: %w", err)
	}
	actual, err := store.ParseDecimal(row[colActual])
	if err != nil {
		return model.Income{}, fmt.Errorf("actual: %w", err)
	}

	return model.Income{
		Date:     date,
		Source:   row[colIncSource],
		Expected: expected,
		Actual:   actual,
		Notes:    row[colIncNotes],
	}, nil
}

// MarshalSuggestion converts a Suggestion to a table row.
func MarshalSuggestion(s model.Suggestion) store.Row {
	row := make(store.Row, len(SuggestionSchema))
	row[colDate] = store.FormatDate(s.Date)
	row[colSugName] = cellText(s.Name)
	row[colSugText] = cellText(s.Text)
	return row
}

// UnmarshalSuggestion converts a table row to a Suggestion.
func UnmarshalSuggestion(row store.Row) (model.Suggestion, error) {
	if len(row) != len(SuggestionSchema) {
		return model.Suggestion{}, fmt.Errorf("expected %d fields, got %d", len(SuggestionSchema), len(row))
	}

	date, err := store.ParseDate(row[colDate])
	if err != nil {
		return model.Suggestion{}, err
	}

	return model.Suggestion{
		Date: date,
		Name: row[colSugName],
		Text: row[colSugText],
	}, nil
}

// cellText stores line breaks as "\n". The CSV reader turns a "\r\n" inside a
// quoted cell into "\n", so a written "\r\n" would not read back unchanged.
func cellText(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
