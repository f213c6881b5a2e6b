package utc

import "slices"

// The leap seconds inserted into UTC are announced by the IERS and published
// at https://www.ietf.org/timezones/data/leap-seconds.list . They cannot be
// predicted: the two lists below are the complete historical record and are
// extended by hand when a new insertion is announced. Package leapdata can
// parse the published file to audit these lists; see cmd/leapcheck.

// januaryYears lists the years that begin immediately after an inserted leap
// second, i.e. a 60th second was inserted at 23:59 UTC on December 31 of the
// preceding year.
var januaryYears = []int{
	1972,
	1973,
	1974,
	1975,
	1976,
	1977,
	1978,
	1979,
	1980,
	1988,
	1990,
	1991,
	1996,
	1999,
	2006,
	2009,
	2017,
}

// julyYears lists the years in which a 60th second was inserted at 23:59 UTC
// on June 30.
var julyYears = []int{
	1972,
	1981,
	1982,
	1983,
	1985,
	1992,
	1993,
	1994,
	1997,
	2012,
	2015,
}

// leapSecondMinute reports whether the given calendar minute contains an
// inserted 60th second.
func leapSecondMinute(year, month, day, hour, minute int) bool {
	if hour != 23 || minute != 59 {
		return false
	}
	switch {
	case month == 6 && day == 30:
		return slices.Contains(julyYears, year)
	case month == 12 && day == 31:
		return slices.Contains(januaryYears, year+1)
	}
	return false
}

// LeapSecondYears returns copies of the two insertion-year lists: january
// holds the years that begin right after a December 31 insertion and july
// holds the years with a June 30 insertion. Both are in ascending order.
func LeapSecondYears() (january, july []int) {
	return slices.Clone(januaryYears), slices.Clone(julyYears)
}
