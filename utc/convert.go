package utc

import (
	"fmt"

	"github.com/ngrash/go-utc/instant"
	"github.com/ngrash/go-utc/internal/quorem"
)

// AsInstant returns the elapsed time between the reference epoch and t.
//
// An inserted 60th second counts like any other elapsed second. This makes
// AsInstant of a leap second exactly one second after AsInstant of the
// second before it, and identical to AsInstant of the midnight that follows
// it: the two calendar values are distinct labels for the same moment on the
// uniform timescale.
func (t Time) AsInstant() instant.Instant {
	rel := yearStart(t.Year) + monthStart(t.Year, t.Month)
	rel += int64(t.Day-1) * secondsPerDay
	rel += int64(t.Hour)*secondsPerHour + int64(t.Minute)*secondsPerMinute + int64(t.Second)
	if rel >= 0 {
		return instant.New(uint64(rel), uint32(t.Nanos), instant.Present)
	}
	if t.Nanos == 0 {
		return instant.New(uint64(-rel), 0, instant.Past)
	}
	// Nanoseconds run forward within the calendar second while the Past
	// magnitude runs backward from the epoch, so borrow a second.
	return instant.New(uint64(-rel-1), uint32(nanosPerSecond-t.Nanos), instant.Past)
}

// FromInstant returns the calendar date at the given elapsed time from the
// reference epoch.
//
// The decomposition first approximates the year and month by dividing the
// elapsed seconds by the average unit lengths, then shifts to the exact unit
// boundaries, and finally re-validates the reconstructed fields with New.
// A validation failure at that point cannot be caused by the caller and is
// escalated as a panic.
//
// An instant that falls on an inserted leap second is ambiguous: FromInstant
// always returns the midnight reading, never a Second == 60 value.
func FromInstant(i instant.Instant) Time {
	rel := int64(i.Seconds())
	nanos := int(i.Nanos())
	if i.Era() == instant.Past {
		rel = -rel
		if nanos > 0 {
			rel--
			nanos = nanosPerSecond - nanos
		}
	}

	// The first guess assumes 365-day years. Real years are never shorter,
	// so the guess overshoots the epoch distance by at most a few years and
	// the loops below settle on the year containing rel.
	yearOff, _ := quorem.Div(float64(i.Seconds()), usualDaysPerYear*secondsPerDay)
	year := epochYear + int(yearOff)
	if i.Era() == instant.Past {
		year = epochYear - int(yearOff)
	}
	for yearStart(year) > rel {
		year--
	}
	for yearStart(year+1) <= rel {
		year++
	}
	rem := rel - yearStart(year)

	monthOff, _ := quorem.Div(float64(rem), avgDaysPerMonth*secondsPerDay)
	month := int(monthOff) + 1
	if month > 12 {
		month = 12
	}
	for monthStart(year, month) > rem {
		month--
	}
	for month < 12 && monthStart(year, month+1) <= rem {
		month++
	}

	day, dayRem := quorem.Div(float64(rem-monthStart(year, month)), secondsPerDay)
	hour, hourRem := quorem.Div(dayRem, secondsPerHour)
	minute, second := quorem.Div(hourRem, secondsPerMinute)

	t, err := New(year, month, int(day)+1, int(hour), int(minute), int(second), nanos)
	if err != nil {
		panic(fmt.Sprintf("utc: instant %d.%09ds (%v) decomposed to an invalid date: %v",
			i.Seconds(), i.Nanos(), i.Era(), err))
	}
	return t
}
