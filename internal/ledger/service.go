// Package ledger records income, expense and suggestion entries and sums them
// for the dashboard.
package ledger

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bueno-budget/bueno/internal/model"
	"github.com/bueno-budget/bueno/internal/store"
)

// Table names, used in errors and log lines.
const (
	TableExpenses    = "expenses"
	TableIncome      = "income"
	TableSuggestions = "suggestions"
)

// Files names the three table files inside the data directory.
type Files struct {
	Expenses    string
	Income      string
	Suggestions string
}

// DefaultFiles returns the file names the original dashboard used.
func DefaultFiles() Files {
	return Files{
		Expenses:    "expenses.csv",
		Income:      "income.csv",
		Suggestions: "suggestions.csv",
	}
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the function used for "today" when a date is not given.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service is the append-only API over the three ledger tables.
type Service struct {
	expenses    *store.Store
	income      *store.Store
	suggestions *store.Store
	log         zerolog.Logger
	now         func() time.Time
}

// Open builds the table handles under dir and creates any table file that
// does not exist yet.
func Open(dir string, files Files, log zerolog.Logger, opts ...Option) (*Service, error) {
	s := &Service{
		expenses:    store.New(filepath.Join(dir, files.Expenses), ExpenseSchema),
		income:      store.New(filepath.Join(dir, files.Income), IncomeSchema),
		suggestions: store.New(filepath.Join(dir, files.Suggestions), SuggestionSchema),
		log:         log,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, st := range []*store.Store{s.expenses, s.income, s.suggestions} {
		if err := st.Ensure(); err != nil {
			return nil, fmt.Errorf("initializing %s: %w", filepath.Base(st.Path()), err)
		}
	}
	return s, nil
}

// AddIncome appends an income entry.
func (s *Service) AddIncome(entry model.Income) error {
	if entry.Date.IsZero() {
		return &ValidationError{Table: TableIncome, Field: "Date", Reason: "required"}
	}
	return s.append(TableIncome, s.income, MarshalIncome(entry))
}

// AddExpense appends an expense entry.
func (s *Service) AddExpense(entry model.Expense) error {
	if entry.Date.IsZero() {
		return &ValidationError{Table: TableExpenses, Field: "Date", Reason: "required"}
	}
	return s.append(TableExpenses, s.expenses, MarshalExpense(entry))
}

// AddSuggestion appends a suggestion, dated today unless a date is set.
func (s *Service) AddSuggestion(entry model.Suggestion) error {
	if entry.Date.IsZero() {
		entry.Date = day(s.now())
	}
	return s.append(TableSuggestions, s.suggestions, MarshalSuggestion(entry))
}

// SubmitIncome parses raw form input and appends it.
func (s *Service) SubmitIncome(f IncomeFields) error {
	entry, err := ParseIncome(f, s.now())
	if err != nil {
		return err
	}
	return s.AddIncome(entry)
}

// SubmitExpense parses raw form input and appends it.
func (s *Service) SubmitExpense(f ExpenseFields) error {
	entry, err := ParseExpense(f, s.now())
	if err != nil {
		return err
	}
	return s.AddExpense(entry)
}

// SubmitSuggestion stamps raw form input with today's date and appends it.
func (s *Service) SubmitSuggestion(f SuggestionFields) error {
	return s.AddSuggestion(ParseSuggestion(f, s.now()))
}

// ListIncome returns every income entry in storage order.
func (s *Service) ListIncome() ([]model.Income, error) {
	return list(s, TableIncome, s.income, UnmarshalIncome)
}

// ListExpenses returns every expense entry in storage order.
func (s *Service) ListExpenses() ([]model.Expense, error) {
	return list(s, TableExpenses, s.expenses, UnmarshalExpense)
}

// ListSuggestions returns every suggestion in storage order.
func (s *Service) ListSuggestions() ([]model.Suggestion, error) {
	return list(s, TableSuggestions, s.suggestions, UnmarshalSuggestion)
}

func (s *Service) append(table string, st *store.Store, row store.Row) error {
	if err := st.Append(row); err != nil {
		return fmt.Errorf("adding %s entry: %w", table, err)
	}
	s.log.Debug().Str("table", table).Msg("appended entry")
	return nil
}

func list[T any](s *Service, table string, st *store.Store, unmarshal func(store.Row) (T, error)) ([]T, error) {
	t, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", table, err)
	}

	entries := make([]T, 0, t.Len())
	for i, row := range t.Rows {
		e, err := unmarshal(row)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", table, &store.ReadError{Path: st.Path(), Err: fmt.Errorf("row %d: %w", i+2, err)})
		}
		entries = append(entries, e)
	}
	s.log.Debug().Str("table", table).Int("rows", len(entries)).Msg("loaded table")
	return entries, nil
}

// Amounts is a row carrying a planned and a realized amount.
type Amounts interface {
	ExpectedAmount() decimal.Decimal
	ActualAmount() decimal.Decimal
}

// TotalExpected sums the Expected column. An empty table sums to zero.
func TotalExpected[T Amounts](rows []T) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.ExpectedAmount())
	}
	return total
}

// TotalActual sums the Actual column. An empty table sums to zero.
func TotalActual[T Amounts](rows []T) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.ActualAmount())
	}
	return total
}
