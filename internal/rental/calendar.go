package rental

import (
	"time"

	"cloud.google.com/go/civil"
)

// LaborDay returns the first Monday of September of year.
func LaborDay(year int) civil.Date {
	d := civil.Date{Year: year, Month: time.September, Day: 1}
	for weekday(d) != time.Monday {
		d = d.AddDays(1)
	}
	return d
}

// IndependenceDay returns the observed date of July 4th in year. A Saturday
// holiday is observed the Friday before, a Sunday holiday the Monday after.
func IndependenceDay(year int) civil.Date {
	d := civil.Date{Year: year, Month: time.July, Day: 4}
	switch weekday(d) {
	case time.Saturday:
		return d.AddDays(-1)
	case time.Sunday:
		return d.AddDays(1)
	}
	return d
}

// ObservedHolidays returns the observed holidays of every year from
// fromYear through toYear inclusive.
func ObservedHolidays(fromYear, toYear int) map[civil.Date]bool {
	holidays := make(map[civil.Date]bool, 2*(toYear-fromYear+1))
	for y := fromYear; y <= toYear; y++ {
		holidays[IndependenceDay(y)] = true
		holidays[LaborDay(y)] = true
	}
	return holidays
}

func weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}

func isWeekend(d civil.Date) bool {
	wd := weekday(d)
	return wd == time.Saturday || wd == time.Sunday
}
