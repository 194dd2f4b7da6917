package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ColumnType is the semantic type of a table column.
type ColumnType string

const (
	TypeText    ColumnType = "text"
	TypeDate    ColumnType = "date"
	TypeDecimal ColumnType = "decimal"
	TypeBool    ColumnType = "bool"
)

// DateFormat is the on-disk layout of date cells.
const DateFormat = "2006-01-02"

// dateTimeFormat is accepted on read; pandas writes datetimes this way.
const dateTimeFormat = "2006-01-02 15:04:05"

// Column is one named, typed column of a table.
type Column struct {
	Name string
	Type ColumnType
}

// Schema is the fixed, ordered column set of a table.
type Schema []Column

// Header returns the column names in order.
func (s Schema) Header() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// CheckHeader reports whether header matches the schema exactly.
func (s Schema) CheckHeader(header []string) error {
	if len(header) != len(s) {
		return fmt.Errorf("header has %d columns, want %d (%s)", len(header), len(s), strings.Join(s.Header(), ","))
	}
	for i, c := range s {
		// Tolerate a UTF-8 BOM on the first column.
		name := header[i]
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if name != c.Name {
			return fmt.Errorf("column %d is %q, want %q", i+1, name, c.Name)
		}
	}
	return nil
}

// CheckRow verifies that every cell of row coerces to its column type.
func (s Schema) CheckRow(row Row) error {
	if len(row) != len(s) {
		return fmt.Errorf("expected %d fields, got %d", len(s), len(row))
	}
	for i, c := range s {
		if err := c.check(row[i]); err != nil {
			return fmt.Errorf("column %s: %w", c.Name, err)
		}
	}
	return nil
}

func (c Column) check(cell string) error {
	var err error
	switch c.Type {
	case TypeDate:
		_, err = ParseDate(cell)
	case TypeDecimal:
		_, err = ParseDecimal(cell)
	case TypeBool:
		_, err = ParseBool(cell)
	case TypeText:
	default:
		err = fmt.Errorf("unknown column type %q", c.Type)
	}
	return err
}

// ParseDate parses a date cell. A trailing midnight time component is accepted.
func ParseDate(cell string) (time.Time, error) {
	cell = strings.TrimSpace(cell)
	if t, err := time.Parse(DateFormat, cell); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateTimeFormat, cell)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: want YYYY-MM-DD", cell)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseDecimal parses a decimal cell. An empty cell is zero.
func ParseDecimal(cell string) (decimal.Decimal, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing decimal %q: %w", cell, err)
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}
	if err := checkDecimalRange(d); err != nil {
		return decimal.Zero, fmt.Errorf("parsing decimal %q: %w", cell, err)
	}
	return d, nil
}

// Bounds on decimal cells. Formatting expands the exponent into digits, so
// an unbounded exponent turns one cell into megabytes of text.
const (
	MaxIntegerDigits  = 15
	MaxFractionDigits = 20
)

// ErrDecimalRange is wrapped by ParseDecimal for values outside the bounds.
var ErrDecimalRange = errors.New("decimal out of range")

func checkDecimalRange(d decimal.Decimal) error {
	exp := d.Exponent()
	if exp < -MaxFractionDigits {
		return fmt.Errorf("%w: more than %d fraction digits", ErrDecimalRange, MaxFractionDigits)
	}
	coef := d.Coefficient()
	digits := len(coef.Text(10))
	if coef.Sign() < 0 {
		digits--
	}
	if intDigits := int64(digits) + int64(exp); intDigits > MaxIntegerDigits {
		return fmt.Errorf("%w: more than %d integer digits", ErrDecimalRange, MaxIntegerDigits)
	}
	return nil
}

// ParseBool parses a boolean cell. An empty cell is false.
func ParseBool(cell string) (bool, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(cell)
	if err != nil {
		return false, fmt.Errorf("parsing bool %q: %w", cell, err)
	}
	return b, nil
}

// FormatDate renders a date cell.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// FormatDecimal renders a decimal cell with two fraction digits, or more if
// the value needs them.
func FormatDecimal(d decimal.Decimal) string {
	if d.Exponent() < -2 {
		return d.String()
	}
	return d.StringFixed(2)
}

// FormatBool renders a boolean cell the way pandas does.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
