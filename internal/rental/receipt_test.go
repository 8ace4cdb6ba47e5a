package rental

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptString(t *testing.T) {
	r, err := draft(t, "LADW", "3", "10", "7/2/2020").Finalize()
	require.NoError(t, err)

	want := strings.Join([]string{
		"Tool Code: LADW",
		"Tool Type: Ladder",
		"Tool Brand: Werner",
		"Rental Days: 3",
		"Checkout Date: 07/02/20",
		"Due Date: 07/05/20",
		"Daily Rental Charge: $1.99",
		"Charge Days: 2",
		"Pre-discount Charge: $3.98",
		"Discount Percent: 10%",
		"Discount Amount: $0.40",
		"Final Charge: $3.58",
	}, "\n")
	assert.Equal(t, want, r.String())
}

func TestFormatCurrency(t *testing.T) {
	tests := map[string]string{
		"0":                    "$0.00",
		"1.5":                  "$1.50",
		"14.95":                "$14.95",
		"999.995":              "$1,000.00",
		"1234.5":               "$1,234.50",
		"1234567.891":          "$1,234,567.89",
		"-1234.5":              "-$1,234.50",
		"90071992547409.93":    "$90,071,992,547,409.93",
		"12345678901234567.89": "$12,345,678,901,234,567.89",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatCurrency(decimal.RequireFromString(in)), in)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "09/09/15", FormatDate(date(2015, time.September, 9)))
	assert.Equal(t, "12/31/99", FormatDate(date(1999, time.December, 31)))
}

func TestReceiptJSON(t *testing.T) {
	r, err := draft(t, "JAKR", "4", "50", "7/2/2020").Finalize()
	require.NoError(t, err)

	js, err := json.Marshal(r)
	require.NoError(t, err)

	var back Receipt
	require.NoError(t, json.Unmarshal(js, &back))
	assert.Equal(t, r.String(), back.String())
	assert.Contains(t, string(js), `"due_date":"2020-07-06"`)
}
