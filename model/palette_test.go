package model

import "testing"

func TestPaletteKnownEntries(t *testing.T) {
	p := Palette()
	if p[1] != [3]uint8{255, 0, 0} {
		t.Errorf("ACI 1 (red): got %v, want {255,0,0}", p[1])
	}
	if p[7] != [3]uint8{255, 255, 255} {
		t.Errorf("ACI 7 (white): got %v, want {255,255,255}", p[7])
	}
}

func TestLineweightMM(t *testing.T) {
	cases := []struct {
		code int
		want float64
	}{
		{0, 0.00},
		{25, 0.25},
		{211, 2.11},
		{-1, 0}, // ByLayer sentinel, resolved elsewhere; bare lookup floors at 0
		{9999, 99.99},
	}
	for _, c := range cases {
		if got := LineweightMM(c.code); got != c.want {
			t.Errorf("LineweightMM(%d) = %v, want %v", c.code, got, c.want)
		}
	}
}
