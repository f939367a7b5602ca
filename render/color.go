package render

import (
	"fmt"

	"github.com/RedRiverSoftware/dwg2svg/model"
)

// aciByLayer is the ACI index used as the ByLayer sentinel. Index 0
// (ByBlock) needs no separate constant: it falls through every case below
// to the same "black" default a fully unresolved ByBlock color gets.
const aciByLayer = 256

// resolveColor maps a color specifier to an SVG color string. layer is
// consulted when the specifier is ByLayer and may be nil.
func resolveColor(c model.ColorSpec, layer *model.Layer) string {
	isTrueColor := c.RGB&0x80000000 != 0 && c.RGB&0x40000000 == 0
	if c.Index == aciByLayer {
		switch {
		case c.RGB>>24 == 0xC3:
			return resolveColor(model.ACIColor(uint16(c.RGB&0xFF)), layer)
		case isTrueColor:
			return fmt.Sprintf("#%06x", c.RGB&0xFFFFFF)
		case layer != nil:
			return resolveColor(layer.Color, nil)
		default:
			return "black"
		}
	}
	if c.Index >= 1 && c.Index <= 7 {
		if name := model.ACIName(c.Index); name != "" {
			return name
		}
	}
	if c.Index >= 8 && c.Index <= 255 {
		palette := model.Palette()
		rgb := palette[c.Index]
		return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
	}
	if isTrueColor {
		return fmt.Sprintf("#%06x", c.RGB&0xFFFFFF)
	}
	return "black"
}

// resolveLineweightPx maps a lineweight code and its layer to a stroke-width
// in px, floored at 0.1.
func resolveLineweightPx(code int, layer *model.Layer) float64 {
	if code == model.LineweightByLayer {
		if layer != nil {
			code = layer.Lineweight
		} else {
			code = 0
		}
	}
	if code <= 0 {
		return 0.1
	}
	mm := model.LineweightMM(code)
	if mm < 0.1 {
		return 0.1
	}
	return mm
}
