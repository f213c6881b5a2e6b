// Package utc converts between calendar dates on the UTC timescale and
// monotonic elapsed-time values, with support for the leap seconds inserted
// into UTC since 1972.
//
// UTC is not a uniform timescale: on dates announced by the IERS a 60th
// second is inserted into the last minute of June or December. A calendar
// value with Second == 60 is therefore valid on exactly those dates, and the
// inserted second counts as elapsed time. As a consequence the calendar
// ordering of Time values and the elapsed-time ordering of their Instants
// disagree right at a leap second: 23:59:60 sorts before the following
// midnight as a calendar value, but both map to the same Instant.
//
// Dates before the introduction of the Gregorian calendar in 1582 are not
// supported, and future leap seconds cannot be predicted; see the table in
// leapseconds.go.
package utc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ngrash/go-utc/instant"
)

// ErrCarry is returned by New for any field combination that would require
// carrying into the next unit, for example minute 60 or February 29 in a
// non-leap year. Malformed dates are never normalized, always rejected.
var ErrCarry = errors.New("date fields require carry")

// Time is a validated calendar date and time of day on the UTC timescale.
//
// The fields are exported for inspection, but values should be obtained from
// New, FromInstant or Parse so that the calendar bounds and the leap-second
// exception have been checked. Second is 60 only during an inserted leap
// second.
type Time struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
	Nanos  int
}

// New validates the given calendar fields and returns the Time they denote.
//
// Fields must be exact: any value outside its calendar bounds fails with an
// error wrapping ErrCarry. Second may be 60 only on the last second of a
// minute that contains an inserted leap second per the IERS table.
func New(year, month, day, hour, minute, second, nanos int) (Time, error) {
	maxSeconds := 59
	if leapSecondMinute(year, month, day, hour, minute) {
		maxSeconds = 60
	}
	switch {
	case month < 1 || month > 12:
		return Time{}, fmt.Errorf("month %d out of range: %w", month, ErrCarry)
	case day < 1 || day > 31:
		return Time{}, fmt.Errorf("day %d out of range: %w", day, ErrCarry)
	case hour < 0 || hour > 24:
		return Time{}, fmt.Errorf("hour %d out of range: %w", hour, ErrCarry)
	case minute < 0 || minute > 59:
		return Time{}, fmt.Errorf("minute %d out of range: %w", minute, ErrCarry)
	case second < 0 || second > maxSeconds:
		return Time{}, fmt.Errorf("second %d out of range: %w", second, ErrCarry)
	case nanos < 0 || nanos >= nanosPerSecond:
		return Time{}, fmt.Errorf("nanoseconds %d out of range: %w", nanos, ErrCarry)
	}
	if day > usualDaysPerMonth[month-1] && !(month == 2 && day == 29 && isLeapYear(year)) {
		return Time{}, fmt.Errorf("day %d does not exist in %04d-%02d: %w", day, year, month, ErrCarry)
	}
	return Time{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second, Nanos: nanos}, nil
}

// Compare orders t and o field-wise by year, month, day, hour, minute,
// second and nanoseconds.
//
// This calendar ordering treats an inserted leap second as later than the
// second before it and earlier than the following midnight. The elapsed-time
// ordering of the corresponding Instants does not: the leap second and the
// following midnight share an Instant. Callers that care about elapsed time
// must compare through AsInstant instead.
func (t Time) Compare(o Time) int {
	a := [...]int{t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second, t.Nanos}
	b := [...]int{o.Year, o.Month, o.Day, o.Hour, o.Minute, o.Second, o.Nanos}
	for k := range a {
		switch {
		case a[k] < b[k]:
			return -1
		case a[k] > b[k]:
			return 1
		}
	}
	return 0
}

// String formats the date as fixed-width ISO 8601 with the constant zero
// UTC offset, for example "2017-12-25T01:02:14+00:00". Nanoseconds are not
// rendered.
func (t Time) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d+00:00",
		t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}

// Parse reads the fixed-width form produced by String, with an optional
// fractional second, and validates the fields with New. The "+00:00" suffix
// may be omitted; no other offset is accepted.
func Parse(s string) (Time, error) {
	s = strings.TrimSuffix(s, "+00:00")
	var (
		year, month, day     int
		hour, minute, second int
		nanos                int
	)
	if dot := strings.IndexByte(s, '.'); dot != -1 {
		frac := s[dot+1:]
		if len(frac) == 0 || len(frac) > 9 {
			return Time{}, fmt.Errorf("parse %q: malformed fractional second", s)
		}
		n, err := strconv.Atoi(frac)
		if err != nil || n < 0 {
			return Time{}, fmt.Errorf("parse %q: malformed fractional second", s)
		}
		for i := len(frac); i < 9; i++ {
			n *= 10
		}
		nanos = n
		s = s[:dot]
	}
	if _, err := fmt.Sscanf(s, "%d-%d-%dT%d:%d:%d", &year, &month, &day, &hour, &minute, &second); err != nil {
		return Time{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return New(year, month, day, hour, minute, second, nanos)
}

// Offset is a time zone's fixed shift from UTC, expressed as an absolute
// hour and minute magnitude and the direction of the shift. Calendar systems
// for zones other than UTC report their shift through this type.
type Offset struct {
	Hours   int
	Minutes int
	Era     instant.Era
}

// UTCOffset returns the shift between UTC and itself, which is the zero
// offset.
func UTCOffset() Offset {
	return Offset{Era: instant.Present}
}
