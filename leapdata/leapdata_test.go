package leapdata

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ngrash/go-utc/utc"
)

// publishedList mirrors the data lines of the published leap-seconds.list.
// The human-readable comments follow the format of the original file.
const publishedList = `
#	In the following text, the symbol '#' introduces
#	a comment, which continues from that symbol until
#	the end of the line.
#
#	The following line shows the last update of this file:
#$	 3676924800
#
#	The NTP timestamps are in units of seconds since the NTP epoch,
#	which is 1 January 1900, 00:00:00.
#
2272060800	10	# 1 Jan 1972
2287785600	11	# 1 Jul 1972
2303683200	12	# 1 Jan 1973
2335219200	13	# 1 Jan 1974
2366755200	14	# 1 Jan 1975
2398291200	15	# 1 Jan 1976
2429913600	16	# 1 Jan 1977
2461449600	17	# 1 Jan 1978
2492985600	18	# 1 Jan 1979
2524521600	19	# 1 Jan 1980
2571782400	20	# 1 Jul 1981
2603318400	21	# 1 Jul 1982
2634854400	22	# 1 Jul 1983
2698012800	23	# 1 Jul 1985
2776982400	24	# 1 Jan 1988
2840140800	25	# 1 Jan 1990
2871676800	26	# 1 Jan 1991
2918937600	27	# 1 Jul 1992
2950473600	28	# 1 Jul 1993
2982009600	29	# 1 Jul 1994
3029443200	30	# 1 Jan 1996
3076704000	31	# 1 Jul 1997
3124137600	32	# 1 Jan 1999
3345062400	33	# 1 Jan 2006
3439756800	34	# 1 Jan 2009
3550089600	35	# 1 Jul 2012
3644697600	36	# 1 Jul 2015
3692217600	37	# 1 Jan 2017
#
#	The following line shows the expiry of this file:
#@	3991593600
`

func TestParse_Abridged(t *testing.T) {
	input := strings.TrimSpace(`
#	A comment.
#$	 3676924800
#@	3991593600

2272060800	10	# 1 Jan 1972
2287785600	11	# 1 Jul 1972
`)
	got, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := File{
		Updated: 3676924800,
		Expires: 3991593600,
		Entries: []Entry{
			{Time: 2272060800, Offset: 10},
			{Time: 2287785600, Offset: 11},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"bad update timestamp", "#$	later"},
		{"bad expiry timestamp", "#@	never"},
		{"missing offset", "2272060800"},
		{"extra field", "2272060800	10	extra"},
		{"bad timestamp", "soon	10"},
		{"bad offset", "2272060800	ten"},
		{"negative timestamp", "-2272060800	10"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(c.input)); err == nil {
				t.Errorf("Parse(%q) did not fail", c.input)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	parsed, err := Parse(strings.NewReader(publishedList))
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(parsed); err != nil {
		t.Errorf("Validate() of the published list failed: %v", err)
	}

	cases := []struct {
		name string
		mut  func(File) File
	}{
		{"missing update line", func(f File) File { f.Updated = 0; return f }},
		{"missing expiry line", func(f File) File { f.Expires = 0; return f }},
		{"no records", func(f File) File { f.Entries = nil; return f }},
		{"record not at midnight", func(f File) File {
			f.Entries[0].Time += 3600
			return f
		}},
		{"records out of order", func(f File) File {
			f.Entries[1].Time = f.Entries[0].Time
			return f
		}},
		{"offset jumps by two", func(f File) File {
			f.Entries[1].Offset += 1
			return f
		}},
		{"record after expiry", func(f File) File {
			f.Expires = f.Entries[len(f.Entries)-1].Time
			return f
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Parse(strings.NewReader(publishedList))
			if err != nil {
				t.Fatal(err)
			}
			if err := Validate(c.mut(f)); err == nil {
				t.Error("Validate() of mutated list did not fail")
			}
		})
	}
}

func TestInsertionYears(t *testing.T) {
	parsed, err := Parse(strings.NewReader(publishedList))
	if err != nil {
		t.Fatal(err)
	}
	january, july, err := InsertionYears(parsed)
	if err != nil {
		t.Fatal(err)
	}

	// The published record and the table compiled into package utc must
	// agree; a mismatch here means the compiled-in table needs updating.
	wantJanuary, wantJuly := utc.LeapSecondYears()
	if diff := cmp.Diff(wantJanuary, january); diff != "" {
		t.Errorf("january years mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantJuly, july); diff != "" {
		t.Errorf("july years mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertionYears_RejectsMisalignedRecord(t *testing.T) {
	f := File{Entries: []Entry{{Time: 2272060800 + 15*secondsPerDay, Offset: 10}}}
	if _, _, err := InsertionYears(f); err == nil {
		t.Error("InsertionYears() did not fail for a mid-month record")
	}
}
