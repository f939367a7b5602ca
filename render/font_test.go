package render

import "testing"

func TestResolveFont(t *testing.T) {
	cases := []struct {
		fontFile   string
		wantFamily string
		wantRatio  float64
	}{
		{"ARIAL.ttf", "Arial", 0.716},
		{"times.ttf", "Times New Roman", 0.662},
		{"swissek.ttf", "Swis721 BlkEx BT, Helvetica, Arial", 0.716},
		{"swiss.ttf", "Swis721 BT, Helvetica, Arial", 0.716},
		{"lucon.ttf", "Lucida Console", 0.692},
		{"somethingelse.ttf", "Verdana", 0.727},
		{"txt.shx", "Courier", 0.616},
		{"", "Courier", 0.616},
	}
	for _, c := range cases {
		got := resolveFont(c.fontFile)
		if got.Family != c.wantFamily || got.CapHeightRatio != c.wantRatio {
			t.Errorf("resolveFont(%q) = %+v, want {%q %v}", c.fontFile, got, c.wantFamily, c.wantRatio)
		}
	}
}

func TestResolvedFontSize(t *testing.T) {
	f := resolveFont("arial.ttf")
	got := f.fontSize(2.5)
	want := 2.5 / 0.716
	if got != want {
		t.Errorf("fontSize: got %v, want %v", got, want)
	}
}
