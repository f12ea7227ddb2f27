package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-dashboard-api/internal/domain/report"
)

func TestFormatNumber(t *testing.T) {
	cases := map[string]string{
		"0":         "0",
		"200":       "200",
		"1234.5":    "1,234.5",
		"1234567.8": "1,234,567.8",
		"12.34567":  "12.346",
		"-1500":     "-1,500",
		"0.25":      "0.25",
	}
	for in, want := range cases {
		assert.Equal(t, want, report.FormatNumber(decimal.RequireFromString(in)), in)
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₱1,500", report.FormatCurrency("₱", decimal.NewFromInt(1500)))
	assert.Equal(t, "$0", report.FormatCurrency("$", decimal.Zero))
}

func TestFormatDateTime(t *testing.T) {
	utc := time.Date(2026, time.October, 17, 1, 5, 9, 0, time.UTC)
	assert.Equal(t, "10/17/2026, 9:05:09 AM", report.FormatDateTime(&utc, manila))
	assert.Equal(t, "", report.FormatDateTime(nil, manila))
}

func TestFileName(t *testing.T) {
	ts := time.Date(2026, time.January, 2, 3, 4, 5, 0, manila)
	assert.Equal(t, "sales_report_20260102030405", report.FileName(ts))
}
