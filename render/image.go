package render

import "github.com/RedRiverSoftware/dwg2svg/model"

// emitImage places a raster IMAGE entity as an SVG <image>, mapping its
// per-pixel U/V basis vectors onto a matrix transform anchored at the
// image's upper-left corner (Pt0 + VVec*height, since VVec points toward
// the image's WCS-up edge while <image> rows grow downward).
func (c *Context) emitImage(img *model.Image) {
	base := img.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	if hasNaN(img.Pt0.X, img.Pt0.Y, img.UVec.X, img.UVec.Y, img.VVec.X, img.VVec.Y) {
		return
	}
	if img.ImageDef == nil || img.ImageDef.FilePath == "" {
		return
	}

	upperLeft := model.Point3{
		X: img.Pt0.X + img.VVec.X*float64(img.ImageHeightPx),
		Y: img.Pt0.Y + img.VVec.Y*float64(img.ImageHeightPx),
	}
	x, y := c.toSVG(upperLeft)

	c.w.printf(`<image id="dwg-object-%d" href="%s" x="0" y="0" width="%d" height="%d" `+
		`preserveAspectRatio="none" transform="matrix(%f,%f,%f,%f,%f,%f)" />`+"\n",
		base.Index, img.ImageDef.FilePath, img.ImageWidthPx, img.ImageHeightPx,
		img.UVec.X, -img.UVec.Y, -img.VVec.X, img.VVec.Y, x, y)
}
