package render

import (
	"fmt"

	"github.com/RedRiverSoftware/dwg2svg/model"
)

func (c *Context) emitText(t *model.Text) {
	base := t.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	c.emitTextBase(base, &t.TextBase, 0)
}

func (c *Context) emitAttDef(a *model.AttDef) {
	base := a.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	c.emitTextBase(base, &a.TextBase, a.Rotation)
}

func (c *Context) emitTextBase(base *model.EntityBase, t *model.TextBase, rotation float64) {
	content, err := t.DecodedContent()
	if err != nil || content == "" {
		return
	}
	anchor := t.Insertion
	if t.Alignment != nil {
		anchor = model.Point3{X: t.Alignment.X, Y: t.Alignment.Y, Z: t.Insertion.Z}
	}
	if hasNaN(anchor.X, anchor.Y, t.Height) {
		return
	}
	wcs := model.OCSToWCS(anchor, t.Extrusion)
	x, y := c.toSVG(wcs)

	font := resolveFont(styleFontFile(t.Style))
	fontSize := font.fontSize(t.Height)
	wf := t.EffectiveWidthFactor()

	color := resolveColor(c.entityColor(base), c.layerOf(base))

	transform := ""
	rotDeg := svgRotationDeg(rotation)
	if rotation != 0 {
		transform += fmt.Sprintf("rotate(%f %f %f) ", rotDeg, x, y)
	}
	if wf != 1 {
		transform += fmt.Sprintf("scale(%f,1)", wf)
		x = x / wf
	}

	anchorAttr := textAnchor(t.HorizAlign)
	baselineAttr := dominantBaseline(t.VertAlign)

	transformAttr := ""
	if transform != "" {
		transformAttr = fmt.Sprintf(` transform="%s"`, transform)
	}
	c.w.printf(`<text id="dwg-object-%d" x="%f" y="%f" font-family="%s" font-size="%f" text-anchor="%s" dominant-baseline="%s" fill="%s"%s>%s</text>`+"\n",
		base.Index, x, y, font.Family, fontSize, anchorAttr, baselineAttr, color, transformAttr, content)
}

func styleFontFile(s *model.Style) string {
	if s == nil {
		return ""
	}
	return s.FontFile
}

func textAnchor(horizAlign int) string {
	switch horizAlign {
	case 1, 4:
		return "middle"
	case 2:
		return "end"
	default:
		return "start"
	}
}

func dominantBaseline(vertAlign int) string {
	switch vertAlign {
	case 1:
		return "text-after-edge"
	case 2:
		return "central"
	case 3:
		return "text-before-edge"
	default:
		return "auto"
	}
}
