// Package julian provides Julian-day representations of moments in time.
//
// Julian day counts are a uniform timescale used in astronomy. They convert
// to and from calendar dates through the instant package, so leap-second
// handling stays entirely within package utc.
package julian

import (
	"math"

	"github.com/ngrash/go-utc/instant"
)

const (
	// SecondsPerDay is the length of a day on the uniform timescale.
	SecondsPerDay = 86400.0
	// epochMJD is the Modified Julian Date of the reference epoch,
	// 1900-01-01T00:00:00 UTC.
	epochMJD = 15020.0
	// mjdOffset converts a Modified Julian Date to a Julian Date.
	mjdOffset = 2400000.5
)

// ModifiedJulian is a moment expressed as a Modified Julian Date: the number
// of days, including the fraction of the day, since 1858-11-17T00:00:00.
type ModifiedJulian struct {
	Days float64
}

// FromInstant converts an elapsed-time value to a Modified Julian Date.
func FromInstant(i instant.Instant) ModifiedJulian {
	elapsed := (float64(i.Seconds()) + float64(i.Nanos())/1e9) / SecondsPerDay
	if i.Era() == instant.Past {
		return ModifiedJulian{Days: epochMJD - elapsed}
	}
	return ModifiedJulian{Days: epochMJD + elapsed}
}

// AsInstant returns the elapsed-time value of the Modified Julian Date.
//
// A float64 day count cannot resolve nanoseconds for dates far from the
// epoch; the fractional second is rounded to the representable value.
func (m ModifiedJulian) AsInstant() instant.Instant {
	days := m.Days - epochMJD
	era := instant.Present
	if days < 0 {
		days = -days
		era = instant.Past
	}
	elapsed := days * SecondsPerDay
	secs := uint64(elapsed)
	nanos := uint32(math.Round((elapsed - float64(secs)) * 1e9))
	return instant.New(secs, nanos, era)
}

// JulianDays returns the date as a Julian Date, the number of days since
// noon on January 1, 4713 BC.
func (m ModifiedJulian) JulianDays() float64 {
	return m.Days + mjdOffset
}
