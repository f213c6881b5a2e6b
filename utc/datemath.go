package utc

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	nanosPerSecond   = 1_000_000_000

	// epochYear begins at the reference epoch, 1900-01-01T00:00:00 UTC.
	epochYear = 1900

	usualDaysPerYear = 365
	// avgDaysPerMonth is the average Gregorian month length, used for the
	// first guess when decomposing an instant into calendar fields.
	avgDaysPerMonth = 30.4365
)

// usualDaysPerMonth[m-1] is the length of month m outside of leap years.
var usualDaysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysBeforeMonth[m-1] counts the days of a non-leap year before month m begins.
var daysBeforeMonth = [12]int64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// isLeapYear determines if the year is a leap year.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// leapYearsBefore returns the number of leap years in [1, year).
func leapYearsBefore(year int) int {
	y := year - 1
	return y/4 - y/100 + y/400
}

// yearStart returns the elapsed seconds, relative to the reference epoch, at
// which the given year begins. The value is negative for years before 1900.
func yearStart(year int) int64 {
	days := int64(year-epochYear)*usualDaysPerYear + int64(leapYearsBefore(year)-leapYearsBefore(epochYear))
	return days * secondsPerDay
}

// monthStart returns the seconds between the start of the year and the start
// of the given month.
func monthStart(year, month int) int64 {
	s := daysBeforeMonth[month-1] * secondsPerDay
	if month > 2 && isLeapYear(year) {
		s += secondsPerDay
	}
	return s
}
