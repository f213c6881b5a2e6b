// Package leapdata provides a parser for the leap-seconds.list file
// published by the IERS and mirrored by the IETF and IANA at
// https://www.ietf.org/timezones/data/leap-seconds.list .
//
// The file is the authoritative record of the leap seconds inserted into
// UTC. Package utc ships a compiled-in copy of that record; leapdata exists
// to audit the compiled-in table against the published file, see
// InsertionYears and cmd/leapcheck.
package leapdata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ngrash/go-utc/instant"
	"github.com/ngrash/go-utc/utc"
)

// File represents the result of parsing a leap-seconds.list file.
//
// All timestamps are in NTP form: seconds since 1900-01-01T00:00:00 UTC,
// counted without leap seconds.
type File struct {
	// Updated is the timestamp of the last update of the file,
	// from the "#$" line.
	Updated uint64
	// Expires is the timestamp after which the file must be considered
	// out of date, from the "#@" line. Leap seconds cannot be predicted,
	// so the absence of announced insertions is only known up to this
	// point.
	Expires uint64
	// Entries are the leap-second records in the order they appear.
	Entries []Entry
}

// Entry is a single leap-second record.
type Entry struct {
	// Time is the NTP timestamp of the midnight at which the offset
	// takes effect, immediately after the inserted second.
	Time uint64
	// Offset is the TAI-UTC difference in seconds from Time onward.
	Offset int
}

// parseError is an error that occurred during parsing.
// It contains the line number and the line where the error occurred.
type parseError struct {
	lineNumber int
	line       string
	err        error
}

// Error returns a string representation of the parse error, implementing
// the error interface.
func (e *parseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.lineNumber, e.line, e.err)
}

// Parse reads a leap-seconds.list file.
//
// Comment lines and blank lines are ignored, except for the special "#$"
// and "#@" comments carrying the update and expiry timestamps. Data lines
// consist of an NTP timestamp and a TAI-UTC offset; anything after a "#" on
// a data line is a comment.
func Parse(r io.Reader) (File, error) {
	var (
		result  File
		scanner = bufio.NewScanner(r)
		lineNum int
	)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, "#$"):
			v, err := parseTimestamp(strings.TrimPrefix(trimmed, "#$"))
			if err != nil {
				return File{}, &parseError{lineNum, line, fmt.Errorf("parse update timestamp: %w", err)}
			}
			result.Updated = v
			continue
		case strings.HasPrefix(trimmed, "#@"):
			v, err := parseTimestamp(strings.TrimPrefix(trimmed, "#@"))
			if err != nil {
				return File{}, &parseError{lineNum, line, fmt.Errorf("parse expiry timestamp: %w", err)}
			}
			result.Expires = v
			continue
		case strings.HasPrefix(trimmed, "#"):
			continue
		}

		// Strip a trailing comment, such as the human-readable date the
		// published file puts after each record.
		if i := strings.IndexByte(trimmed, '#'); i != -1 {
			trimmed = strings.TrimSpace(trimmed[:i])
		}

		entry, err := parseEntry(strings.Fields(trimmed))
		if err != nil {
			return File{}, &parseError{lineNum, line, fmt.Errorf("parse leap second record: %w", err)}
		}
		result.Entries = append(result.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return File{}, err
	}
	return result, nil
}

func parseTimestamp(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
}

func parseEntry(fields []string) (Entry, error) {
	if len(fields) != 2 {
		return Entry{}, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}
	t, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("timestamp: %w", err)
	}
	offset, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, fmt.Errorf("offset: %w", err)
	}
	return Entry{Time: t, Offset: offset}, nil
}

// InsertionYears classifies the file's records into insertion years:
// january holds the years that begin right after a December 31 insertion and
// july holds the years with a June 30 insertion, matching the shape of
// utc.LeapSecondYears.
//
// An error is reported for any record whose timestamp is not the first
// moment of a January or July.
func InsertionYears(f File) (january, july []int, err error) {
	for _, e := range f.Entries {
		d := utc.FromInstant(instant.New(e.Time, 0, instant.Present))
		if d.Day != 1 || d.Hour != 0 || d.Minute != 0 || d.Second != 0 {
			return nil, nil, fmt.Errorf("record %d is not at a month boundary: %v", e.Time, d)
		}
		switch d.Month {
		case 1:
			january = append(january, d.Year)
		case 7:
			july = append(july, d.Year)
		default:
			return nil, nil, fmt.Errorf("record %d is not in January or July: %v", e.Time, d)
		}
	}
	return january, july, nil
}
