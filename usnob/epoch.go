package usnob

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// EpochDate renders a Star's decimal-year Epoch as a civil UTC date,
// for diagnostics only — catalog matching and proper-motion propagation
// use the raw float year, not this calendar rendering.
func EpochDate(epoch float64) time.Time {
	year := int(epoch)
	frac := epoch - float64(year)

	leap := julian.LeapYearGregorian(year)
	daysInYear := 365
	if leap {
		daysInYear = 366
	}

	doy := int(frac*float64(daysInYear)) + 1
	if doy > daysInYear {
		doy = daysInYear
	}
	if doy < 1 {
		doy = 1
	}

	month, day := julian.DayOfYearToCalendar(doy, leap)
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
