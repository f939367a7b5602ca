package render

import "strings"

// resolvedFont is an SVG font-family string paired with the cap-height
// ratio used to convert a DWG text height into an SVG font-size.
type resolvedFont struct {
	Family         string
	CapHeightRatio float64
}

var fontTable = []struct {
	substr string
	font   resolvedFont
}{
	{"arial", resolvedFont{"Arial", 0.716}},
	{"times", resolvedFont{"Times New Roman", 0.662}},
	{"swissek", resolvedFont{"Swis721 BlkEx BT, Helvetica, Arial", 0.716}},
	{"swiss", resolvedFont{"Swis721 BT, Helvetica, Arial", 0.716}},
	{"lucon", resolvedFont{"Lucida Console", 0.692}},
}

// resolveFont selects an SVG font family and cap-height ratio for a
// STYLE's font_file by case-insensitive substring match. Entries in
// fontTable are checked in order (so "swissek" is tried before the
// shorter "swiss" it contains); a ".ttf" file matching none of them falls
// back to Verdana, and an SHX or empty font_file falls back to Courier.
func resolveFont(fontFile string) resolvedFont {
	lower := strings.ToLower(fontFile)
	for _, e := range fontTable {
		if strings.Contains(lower, e.substr) {
			return e.font
		}
	}
	if strings.HasSuffix(lower, ".ttf") {
		return resolvedFont{"Verdana", 0.727}
	}
	return resolvedFont{"Courier", 0.616}
}

// fontSize returns the SVG font-size for a given DWG text height under
// this font's cap-height ratio.
func (f resolvedFont) fontSize(height float64) float64 {
	return height / f.CapHeightRatio
}
