package leapdata

import (
	"errors"
	"fmt"
)

// secondsPerDay matches the NTP day length. Leap-second records always take
// effect at midnight.
const secondsPerDay = 86400

// Validate checks the internal consistency of a parsed leap-seconds.list
// file and returns all violations joined into a single error.
func Validate(f File) error {
	var errs []error

	if f.Updated == 0 {
		errs = append(errs, errors.New("missing update timestamp (#$ line)"))
	}
	if f.Expires == 0 {
		errs = append(errs, errors.New("missing expiry timestamp (#@ line)"))
	}
	if len(f.Entries) == 0 {
		errs = append(errs, errors.New("no leap second records"))
	}

	for i, e := range f.Entries {
		if e.Time%secondsPerDay != 0 {
			errs = append(errs, fmt.Errorf("record %d: timestamp %d is not at midnight", i, e.Time))
		}
		if f.Expires != 0 && e.Time >= f.Expires {
			errs = append(errs, fmt.Errorf("record %d: timestamp %d is not before the expiry %d", i, e.Time, f.Expires))
		}
		if i == 0 {
			continue
		}
		prev := f.Entries[i-1]
		if e.Time <= prev.Time {
			errs = append(errs, fmt.Errorf("record %d: timestamp %d is not after its predecessor %d", i, e.Time, prev.Time))
		}
		if d := e.Offset - prev.Offset; d != 1 && d != -1 {
			errs = append(errs, fmt.Errorf("record %d: offset changes by %d, expected exactly one inserted or skipped second", i, d))
		}
	}

	return errors.Join(errs...)
}
