package data

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	src := "LADW,Ladder,Werner,1.99,yes,yes,no\n" +
		"\n" +
		"chns, Chainsaw, Stihl, 1.49, YES, No, yes\n"

	c, err := LoadCatalog(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	chainsaw, err := c.Lookup("CHNS")
	require.NoError(t, err)
	assert.Equal(t, "CHNS", chainsaw.Code)
	assert.Equal(t, "Chainsaw", chainsaw.Type)
	assert.Equal(t, "Stihl", chainsaw.Brand)
	assert.True(t, chainsaw.DailyCharge.Equal(decimal.RequireFromString("1.49")))
	assert.True(t, chainsaw.WeekdayCharge)
	assert.False(t, chainsaw.WeekendCharge)
	assert.True(t, chainsaw.HolidayCharge)
}

func TestLoadCatalog_LastDuplicateWins(t *testing.T) {
	src := "JAKR,Jackhammer,Ridgid,2.99,yes,no,no\n" +
		"jakr,Jackhammer,Bosch,3.49,yes,yes,no\n"

	c, err := LoadCatalog(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	tool, err := c.Lookup("JAKR")
	require.NoError(t, err)
	assert.Equal(t, "Bosch", tool.Brand)
	assert.Equal(t, "3.49", tool.DailyCharge.StringFixed(2))
	assert.True(t, tool.WeekendCharge)
}

func TestLoadCatalog_WrongFieldCount(t *testing.T) {
	src := "LADW,Ladder,Werner,1.99,yes,yes,no\n" +
		"CHNS,Chainsaw,Stihl,1.49,yes,no\n"

	c, err := LoadCatalog(strings.NewReader(src))
	require.Error(t, err)
	assert.Nil(t, c)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.EqualError(t, err, "catalog line 2: expected 7 fields, got 6")
}

func TestLoadCatalog_BadDailyCharge(t *testing.T) {
	for _, charge := range []string{"abc", "-1.00", "1.995", "0.001"} {
		_, err := LoadCatalog(strings.NewReader("LADW,Ladder,Werner," + charge + ",yes,yes,no\n"))
		var pe *ParseError
		require.True(t, errors.As(err, &pe), "charge %q", charge)
		assert.Equal(t, 1, pe.Line)
	}
}

func TestLoadCatalog_SubCentCharge(t *testing.T) {
	_, err := LoadCatalog(strings.NewReader("LADW,Ladder,Werner,1.995,yes,yes,no\n"))
	assert.EqualError(t, err, `catalog line 1: daily charge "1.995" must not have more than 2 decimal places`)

	c, err := LoadCatalog(strings.NewReader("LADW,Ladder,Werner,1.5,yes,yes,no\n"))
	require.NoError(t, err)
	tool, err := c.Lookup("LADW")
	require.NoError(t, err)
	assert.Equal(t, "1.50", tool.DailyCharge.StringFixed(2))
}

func TestValidateDailyCharge(t *testing.T) {
	assert.NoError(t, ValidateDailyCharge(decimal.Zero))
	assert.NoError(t, ValidateDailyCharge(decimal.RequireFromString("2.990")))
	assert.Error(t, ValidateDailyCharge(decimal.RequireFromString("-0.01")))
	assert.Error(t, ValidateDailyCharge(decimal.RequireFromString("1.495")))
}

func TestLoadCatalogFile_Missing(t *testing.T) {
	_, err := LoadCatalogFile("does-not-exist.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open catalog")
}

func TestCatalogLookup(t *testing.T) {
	c := DefaultCatalog()

	for _, code := range []string{"LADW", "ladw", "LaDw", " ladw "} {
		tool, err := c.Lookup(code)
		require.NoError(t, err, code)
		assert.Equal(t, "LADW", tool.Code)
	}

	_, err := c.Lookup("NOPE")
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.Equal(t, 4, c.Len())

	codes := make([]string, 0, c.Len())
	for _, tool := range c.Tools() {
		codes = append(codes, tool.Code)
	}
	assert.Equal(t, []string{"CHNS", "JAKD", "JAKR", "LADW"}, codes)

	ladder, err := c.Lookup("LADW")
	require.NoError(t, err)
	assert.True(t, ladder.WeekdayCharge)
	assert.True(t, ladder.WeekendCharge)
	assert.False(t, ladder.HolidayCharge)
}

func TestNewCatalog_NormalizesCodes(t *testing.T) {
	c := NewCatalog(Tool{Code: "abcd", Type: "Drill"})

	tool, err := c.Lookup("ABCD")
	require.NoError(t, err)
	assert.Equal(t, "ABCD", tool.Code)
}
