package model

// lineweightTableMM maps a DWG/DXF lineweight code to millimetres. Codes are
// the standard fixed set (hundredths of a millimetre in the file format,
// pre-divided here); LineweightMM handles codes not present in the table.
// -1 is ByLayer, -2 is ByBlock, -3 is Default — none of those index this
// table directly.
var lineweightTableMM = map[int]float64{
	0: 0.00, 5: 0.05, 9: 0.09, 13: 0.13, 15: 0.15, 18: 0.18, 20: 0.20,
	25: 0.25, 30: 0.30, 35: 0.35, 40: 0.40, 50: 0.50, 53: 0.53, 60: 0.60,
	70: 0.70, 80: 0.80, 90: 0.90, 100: 1.00, 106: 1.06, 120: 1.20,
	140: 1.40, 158: 1.58, 200: 2.00, 211: 2.11,
}

// LineweightByLayer, LineweightByBlockOrDefault are the sentinel lineweight
// codes a renderer must resolve (against the layer, or to a flat default)
// before the table lookup.
const (
	LineweightByLayer          = -1
	LineweightByBlockOrDefault = -2
)

// LineweightMM decodes a lineweight code into millimetres. Unknown positive codes return the value unscaled
// divided by 100, matching the file format's hundredths-of-mm units.
func LineweightMM(code int) float64 {
	if mm, ok := lineweightTableMM[code]; ok {
		return mm
	}
	if code <= 0 {
		return 0
	}
	return float64(code) / 100.0
}
