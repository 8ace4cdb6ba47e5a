// Package data provides the tool catalog for the tool rental system: the
// billing policy of every rentable tool and the sources it can be loaded from.
package data

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Tool is the billing policy of a single rentable tool.
// Values are built once at catalog load time and handed out by copy.
type Tool struct {
	Code          string          `json:"code"`           // Unique tool code, always upper case
	Type          string          `json:"type"`           // Kind of tool, e.g. "Ladder"
	Brand         string          `json:"brand"`          // Manufacturer, e.g. "Werner"
	DailyCharge   decimal.Decimal `json:"daily_charge"`   // Charge per chargeable day
	WeekdayCharge bool            `json:"weekday_charge"` // Monday through Friday are billable
	WeekendCharge bool            `json:"weekend_charge"` // Saturday and Sunday are billable
	HolidayCharge bool            `json:"holiday_charge"` // Observed holidays are billable
}

// ChargePlaces is the most decimal places a daily charge may carry.
const ChargePlaces = 2

// ValidateDailyCharge reports whether d is a usable daily charge: not
// negative and expressed in whole cents.
func ValidateDailyCharge(d decimal.Decimal) error {
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	if !d.Equal(d.Round(ChargePlaces)) {
		return errors.New("must not have more than 2 decimal places")
	}
	return nil
}

// NormalizeCode returns the catalog key for a tool code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// parseFlag converts a "yes"/"no" catalog column into a bool.
// Anything other than a case-insensitive "yes" is false.
func parseFlag(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}
