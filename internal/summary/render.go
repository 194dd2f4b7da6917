package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const barWidth = 20

// FormatMoney renders an amount with thousands separators and two fraction
// digits, e.g. "$3,000.00".
func FormatMoney(currency string, d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).Round(0)
	if cents.Equal(decimal.NewFromInt(100)) {
		whole = whole.Add(decimal.NewFromInt(1))
		cents = decimal.Zero
	}
	// Totals over many rows can pass int64 even with bounded cells.
	return fmt.Sprintf("%s%s%s.%02d", sign, currency, humanize.BigComma(whole.BigInt()), cents.IntPart())
}

// FormatProgress renders a ratio in [0,1] as a bar and a percentage.
func FormatProgress(ratio decimal.Decimal) string {
	filled := int(ratio.Mul(decimal.NewFromInt(barWidth)).Round(0).IntPart())
	pct := ratio.Shift(2).Round(0)
	return fmt.Sprintf("[%s%s] %s%%", strings.Repeat("#", filled), strings.Repeat(".", barWidth-filled), pct.String())
}

// Render writes the dashboard as text.
func Render(w io.Writer, ov Overview, currency string) error {
	var b strings.Builder
	b.WriteString("Overview: Expected vs. Actual\n")
	renderMetric(&b, "Income", "income", ov.Income, currency)
	renderMetric(&b, "Expenses", "expenses", ov.Expenses, currency)
	_, err := io.WriteString(w, b.String())
	return err
}

func renderMetric(b *strings.Builder, title, noun string, m Metric, currency string) {
	fmt.Fprintf(b, "\n%s\n", title)
	fmt.Fprintf(b, "  Expected %-9s %s\n", title, FormatMoney(currency, m.Expected))
	fmt.Fprintf(b, "  Actual %-11s %s\n", title, FormatMoney(currency, m.Actual))
	if m.HasProgress {
		fmt.Fprintf(b, "  %s\n", FormatProgress(m.Progress))
	} else {
		fmt.Fprintf(b, "  No expected %s entered yet.\n", noun)
	}
}
