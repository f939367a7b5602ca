package render

import (
	"testing"

	"github.com/RedRiverSoftware/dwg2svg/model"
)

func TestResolveColorNamed(t *testing.T) {
	got := resolveColor(model.ACIColor(1), nil)
	if got != "red" {
		t.Errorf("ACI 1: got %q, want red", got)
	}
	got = resolveColor(model.ACIColor(7), nil)
	if got != "white" {
		t.Errorf("ACI 7: got %q, want white", got)
	}
}

func TestResolveColorPalette(t *testing.T) {
	got := resolveColor(model.ACIColor(8), nil)
	if got != "#414141" {
		t.Errorf("ACI 8: got %q, want #414141", got)
	}
}

func TestResolveColorByLayer(t *testing.T) {
	layer := &model.Layer{Color: model.ACIColor(3)}
	got := resolveColor(model.ACIColor(256), layer)
	if got != "green" {
		t.Errorf("ByLayer -> ACI 3: got %q, want green", got)
	}

	got = resolveColor(model.ACIColor(256), nil)
	if got != "black" {
		t.Errorf("ByLayer with nil layer: got %q, want black", got)
	}
}

func TestResolveColorTrueRGB(t *testing.T) {
	got := resolveColor(model.RGBColor(0x12, 0x34, 0x56), nil)
	if got != "#123456" {
		t.Errorf("True RGB: got %q, want #123456", got)
	}
}

func TestResolveColorLayerEncodedACI(t *testing.T) {
	c := model.ColorSpec{Index: 256, RGB: 0xC3000003}
	got := resolveColor(c, nil)
	if got != "green" {
		t.Errorf("layer-encoded ACI 3: got %q, want green", got)
	}
}

func TestResolveColorByBlockDefault(t *testing.T) {
	got := resolveColor(model.ColorSpec{}, nil)
	if got != "black" {
		t.Errorf("ByBlock/default: got %q, want black", got)
	}
}

func TestResolveLineweightPx(t *testing.T) {
	cases := []struct {
		name  string
		code  int
		layer *model.Layer
		want  float64
	}{
		{"byblock/default", 0, nil, 0.1},
		{"negative", -3, nil, 0.1},
		{"explicit mm", 25, nil, 0.25},
		{"sub-0.1 floors", 5, nil, 0.1},
		{"by-layer falls back", model.LineweightByLayer, &model.Layer{Lineweight: 50}, 0.50},
		{"by-layer, nil layer", model.LineweightByLayer, nil, 0.1},
	}
	for _, c := range cases {
		if got := resolveLineweightPx(c.code, c.layer); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}
