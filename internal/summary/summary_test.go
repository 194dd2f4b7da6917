package summary

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bueno-budget/bueno/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProgressRatio(t *testing.T) {
	tests := []struct {
		actual, expected string
		want             string
		ok               bool
	}{
		{"50", "100", "0.5", true},
		{"150", "100", "1", true},
		{"100", "100", "1", true},
		{"0", "100", "0", true},
		{"-10", "100", "0", true},
		{"50", "0", "0", false},
		{"50", "-20", "0", false},
		{"0", "0", "0", false},
	}
	for _, tt := range tests {
		got, ok := ProgressRatio(dec(tt.actual), dec(tt.expected))
		assert.Equal(t, tt.ok, ok, "ProgressRatio(%s, %s) ok", tt.actual, tt.expected)
		assert.True(t, got.Equal(dec(tt.want)), "ProgressRatio(%s, %s) = %s, want %s", tt.actual, tt.expected, got, tt.want)
	}
}

func TestBuild(t *testing.T) {
	income := []model.Income{
		{Expected: dec("3000"), Actual: dec("1500")},
		{Expected: dec("500"), Actual: dec("250")},
	}
	ov := Build(income, nil)

	assert.True(t, ov.Income.Expected.Equal(dec("3500")))
	assert.True(t, ov.Income.Actual.Equal(dec("1750")))
	assert.True(t, ov.Income.HasProgress)
	assert.True(t, ov.Income.Progress.Equal(dec("0.5")))

	assert.True(t, ov.Expenses.Expected.IsZero())
	assert.False(t, ov.Expenses.HasProgress)
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0", "$0.00"},
		{"3000", "$3,000.00"},
		{"1234567.891", "$1,234,567.89"},
		{"0.995", "$1.00"},
		{"-25.5", "-$25.50"},
		{"99999999999999900000", "$99,999,999,999,999,900,000.00"},
		{"-12345678901234567890.5", "-$12,345,678,901,234,567,890.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney("$", dec(tt.in)), "FormatMoney(%s)", tt.in)
	}
}

func TestRender_TotalBeyondInt64(t *testing.T) {
	incomes := make([]model.Income, 100000)
	for i := range incomes {
		incomes[i] = model.Income{Expected: dec("999999999999999"), Actual: dec("999999999999999")}
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Build(incomes, nil), "$"))
	assert.Contains(t, buf.String(), "$99,999,999,999,999,900,000.00")
}

func TestFormatProgress(t *testing.T) {
	assert.Equal(t, "[##########..........] 50%", FormatProgress(dec("0.5")))
	assert.Equal(t, "[####################] 100%", FormatProgress(dec("1")))
	assert.Equal(t, "[....................] 0%", FormatProgress(decimal.Zero))
}

func TestRender(t *testing.T) {
	ov := Build(
		[]model.Income{{Expected: dec("3000"), Actual: dec("3000")}},
		nil,
	)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, ov, "$"))
	out := buf.String()

	assert.Contains(t, out, "Expected Income    $3,000.00")
	assert.Contains(t, out, "Actual Income      $3,000.00")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "Expected Expenses  $0.00")
	assert.Contains(t, out, "No expected expenses entered yet.")
	assert.NotContains(t, out, "No expected income entered yet.")
}
