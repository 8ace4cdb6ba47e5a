package rental

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/aoideee/toolrenter/internal/data"
)

// centsPlaces is the rounding precision of every currency amount.
const centsPlaces = 2

var hundred = decimal.NewFromInt(100)

// DayCounts is the calendar breakdown of a rental window.
type DayCounts struct {
	Weekdays        int // Monday through Friday, holidays included
	WeekendDays     int // Saturday and Sunday
	WeekdayHolidays int // observed holidays that fall on a weekday
}

// MaxRentalDays is the longest rental accepted, about a hundred years.
const MaxRentalDays = 36500

// DueDate returns checkout plus rentalDays calendar days.
func DueDate(checkout civil.Date, rentalDays int) (civil.Date, error) {
	if !checkout.IsValid() {
		return civil.Date{}, errors.New("checkout date must be a valid date")
	}
	if rentalDays <= 0 || rentalDays > MaxRentalDays {
		return civil.Date{}, fmt.Errorf("rental days must be between 1 and %d", MaxRentalDays)
	}
	return checkout.AddDays(rentalDays), nil
}

// CountDays classifies every day after checkout up to and including due.
// The checkout day itself is never counted.
func CountDays(checkout, due civil.Date) DayCounts {
	var counts DayCounts
	days := due.DaysSince(checkout)
	if days <= 0 {
		return counts
	}

	// Every full week holds five weekdays and two weekend days.
	weeks := days / 7
	counts.Weekdays = 5 * weeks
	counts.WeekendDays = 2 * weeks
	for d := checkout.AddDays(7*weeks + 1); !d.After(due); d = d.AddDays(1) {
		if isWeekend(d) {
			counts.WeekendDays++
		} else {
			counts.Weekdays++
		}
	}

	for h := range ObservedHolidays(checkout.Year, due.Year) {
		if h.After(checkout) && !h.After(due) && !isWeekend(h) {
			counts.WeekdayHolidays++
		}
	}
	return counts
}

// ChargeDays applies the tool's billing policy to a day breakdown. Holidays
// are part of the weekday bucket and are taken out of it when the tool does
// not charge for holidays.
func ChargeDays(tool data.Tool, counts DayCounts) int {
	weekdays := counts.Weekdays
	if !tool.HolidayCharge {
		weekdays -= counts.WeekdayHolidays
	}

	days := 0
	if tool.WeekdayCharge {
		days += weekdays
	}
	if tool.WeekendCharge {
		days += counts.WeekendDays
	}
	return days
}

// PreDiscountCharge is chargeDays * dailyCharge rounded half up to cents.
func PreDiscountCharge(chargeDays int, dailyCharge decimal.Decimal) decimal.Decimal {
	return dailyCharge.Mul(decimal.NewFromInt(int64(chargeDays))).Round(centsPlaces)
}

// DiscountAmount is percent of preDiscount rounded half up to cents.
func DiscountAmount(preDiscount decimal.Decimal, percent int) decimal.Decimal {
	if percent == 0 {
		return decimal.Zero
	}
	rate := decimal.NewFromInt(int64(percent)).Div(hundred)
	return preDiscount.Mul(rate).Round(centsPlaces)
}

// FinalCharge is preDiscount minus discount rounded half up to cents.
func FinalCharge(preDiscount, discount decimal.Decimal) decimal.Decimal {
	return preDiscount.Sub(discount).Round(centsPlaces)
}
