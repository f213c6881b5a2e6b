package julian

import (
	"math"
	"testing"

	"github.com/ngrash/go-utc/instant"
	"github.com/ngrash/go-utc/utc"
)

func TestFromInstant(t *testing.T) {
	cases := []struct {
		name string
		in   instant.Instant
		want float64
	}{
		{"reference epoch", instant.New(0, 0, instant.Present), 15020},
		{"one day after the epoch", instant.New(86400, 0, instant.Present), 15021},
		{"half a day before the epoch", instant.New(43200, 0, instant.Past), 15019.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FromInstant(c.in).Days
			if math.Abs(got-c.want) > 1e-9 {
				t.Errorf("FromInstant(%+v).Days = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestChristmas2017(t *testing.T) {
	xmas, err := utc.New(2017, 12, 25, 1, 2, 14, 0)
	if err != nil {
		t.Fatal(err)
	}
	mjd := FromInstant(xmas.AsInstant())
	if want := 58112.043217592596; math.Abs(mjd.Days-want) > 1e-9 {
		t.Errorf("Days = %v, want %v", mjd.Days, want)
	}
	if want := 2458112.5432175924; math.Abs(mjd.JulianDays()-want) > 1e-6 {
		t.Errorf("JulianDays() = %v, want %v", mjd.JulianDays(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []instant.Instant{
		instant.New(0, 0, instant.Present),
		instant.New(3723152534, 0, instant.Present),
		instant.New(43200, 0, instant.Past),
		instant.New(1577836800, 0, instant.Past),
	}
	for _, in := range cases {
		got := FromInstant(in).AsInstant()
		if got.Era() != in.Era() || got.Seconds() != in.Seconds() {
			t.Errorf("FromInstant(%+v).AsInstant() = %+v", in, got)
		}
	}
}
