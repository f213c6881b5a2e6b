package quorem

import "testing"

func TestDiv(t *testing.T) {
	cases := []struct {
		num, den float64
		wantQuo  int64
		wantRem  float64
	}{
		{24, 6, 4, 0},
		{25, 6, 4, 1},
		{6, 6, 1, 0},
		{5, 6, 0, 5},
		{3540, 3600, 0, 3540},
		{3540, 60, 59, 0},
		{0, 60, 0, 0},
	}
	for _, c := range cases {
		quo, rem := Div(c.num, c.den)
		if quo != c.wantQuo || rem != c.wantRem {
			t.Errorf("Div(%v, %v) = (%v, %v), want (%v, %v)", c.num, c.den, quo, rem, c.wantQuo, c.wantRem)
		}
	}
}

func TestDivPanics(t *testing.T) {
	cases := []struct {
		name     string
		num, den float64
	}{
		{"negative numerator", -24, 6},
		{"negative denominator", 24, -6},
		{"negative operands", -24, -6},
		{"zero denominator", 24, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Div(%v, %v) did not panic", c.num, c.den)
				}
			}()
			Div(c.num, c.den)
		})
	}
}
