// Package instant provides a monotonic elapsed-time value measured from the
// reference epoch 1900-01-01T00:00:00 UTC.
//
// An Instant is a plain count of elapsed seconds and nanoseconds on a uniform
// timescale. It carries no leap-second information: calendar systems that
// model leap seconds, such as package utc, convert through Instant as the
// common interchange representation, and two distinct calendar values may map
// to the same Instant.
package instant

import "time"

// nanosPerSecond is the number of nanoseconds in a second.
const nanosPerSecond = 1_000_000_000

// Era is the direction of an Instant relative to the reference epoch.
//
// Storing a direction next to an unsigned magnitude avoids signed overflow
// concerns in the seconds count.
type Era uint8

const (
	// Present marks instants at or after the reference epoch.
	Present Era = iota
	// Past marks instants strictly before the reference epoch.
	Past
)

// String returns the name of the era.
func (e Era) String() string {
	switch e {
	case Present:
		return "Present"
	case Past:
		return "Past"
	default:
		return "<undefined era>"
	}
}

// Instant is an immutable elapsed-time magnitude from the reference epoch in
// the direction given by its era.
//
// Instants are normalized: nanos is always below one second and the epoch
// itself is always Present, so two Instants denote the same moment exactly
// when they are equal with ==. The zero value is the reference epoch.
type Instant struct {
	secs  uint64
	nanos uint32
	era   Era
}

// New returns the Instant with the given elapsed seconds and nanoseconds in
// the direction of era. Nanoseconds of a second or more carry into the
// seconds count, and a zero magnitude is normalized to the Present era.
func New(secs uint64, nanos uint32, era Era) Instant {
	secs += uint64(nanos / nanosPerSecond)
	nanos %= nanosPerSecond
	if secs == 0 && nanos == 0 {
		era = Present
	}
	return Instant{secs: secs, nanos: nanos, era: era}
}

// Seconds returns the whole elapsed seconds of the magnitude.
func (i Instant) Seconds() uint64 { return i.secs }

// Nanos returns the nanosecond part of the magnitude. It is always below one
// second.
func (i Instant) Nanos() uint32 { return i.nanos }

// Era returns the direction of the Instant relative to the epoch.
func (i Instant) Era() Era { return i.era }

// Add returns the Instant shifted by d. The result may be on the other side
// of the epoch than i.
//
// Add supports instants within roughly 292 billion years of the epoch, which
// covers every date the utc package can represent.
func (i Instant) Add(d time.Duration) Instant {
	secs := int64(i.secs)
	nanos := int64(i.nanos)
	if i.era == Past {
		secs, nanos = -secs, -nanos
	}
	secs += int64(d / time.Second)
	nanos += int64(d % time.Second)
	if nanos <= -nanosPerSecond || nanos >= nanosPerSecond {
		secs += nanos / nanosPerSecond
		nanos %= nanosPerSecond
	}
	// Point secs and nanos in the same direction.
	if secs > 0 && nanos < 0 {
		secs--
		nanos += nanosPerSecond
	}
	if secs < 0 && nanos > 0 {
		secs++
		nanos -= nanosPerSecond
	}
	if secs < 0 || nanos < 0 {
		return New(uint64(-secs), uint32(-nanos), Past)
	}
	return New(uint64(secs), uint32(nanos), Present)
}

// Equal reports whether i and o denote the same moment.
func (i Instant) Equal(o Instant) bool { return i == o }

// Compare orders i and o by elapsed time: -1 if i is before o, 0 if they
// denote the same moment and +1 if i is after o.
//
// Note that this ordering and the calendar ordering of package utc disagree
// around a leap second: the calendar second 60 sorts before the following
// midnight while both share the same Instant.
func (i Instant) Compare(o Instant) int {
	if i.era != o.era {
		if i.era == Past {
			return -1
		}
		return 1
	}
	c := cmpMagnitude(i, o)
	if i.era == Past {
		return -c
	}
	return c
}

func cmpMagnitude(a, b Instant) int {
	switch {
	case a.secs < b.secs:
		return -1
	case a.secs > b.secs:
		return 1
	case a.nanos < b.nanos:
		return -1
	case a.nanos > b.nanos:
		return 1
	}
	return 0
}
