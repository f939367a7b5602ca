package render

import (
	"fmt"
	"math"

	"github.com/RedRiverSoftware/dwg2svg/model"
)

// commonStyle formats the shared stroke style every emitter besides HATCH
// fills, TEXT, INSERT, and IMAGE uses.
func commonStyle(color string, strokeWidthPx float64) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.2fpx", color, strokeWidthPx)
}

func (c *Context) emitLine(l *model.Line) {
	base := l.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	start := model.OCSToWCS(l.Start, l.Extrusion)
	end := model.OCSToWCS(l.End, l.Extrusion)
	if hasNaN(start.X, start.Y, end.X, end.Y) {
		return
	}
	x1, y1 := c.toSVG(start)
	x2, y2 := c.toSVG(end)
	color := resolveColor(c.entityColor(base), c.layerOf(base))
	lw := resolveLineweightPx(base.Lineweight, base.Layer)
	c.w.printf(`<path id="dwg-object-%d" d="M %f,%f L %f,%f" style="%s" />`+"\n",
		base.Index, x1, y1, x2, y2, commonStyle(color, lw))
}

func (c *Context) emitPoint(p *model.Point) {
	base := p.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	pos := model.OCSToWCS(p.Position, p.Extrusion)
	if hasNaN(pos.X, pos.Y) {
		return
	}
	x, y := c.toSVG(pos)
	color := resolveColor(c.entityColor(base), c.layerOf(base))
	lw := resolveLineweightPx(base.Lineweight, base.Layer)
	c.w.printf(`<circle id="dwg-object-%d" cx="%f" cy="%f" r="0.1" style="%s" />`+"\n",
		base.Index, x, y, commonStyle(color, lw))
}

func (c *Context) emitCircle(circle *model.Circle) {
	base := circle.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	if hasNaN(circle.Center.X, circle.Center.Y, circle.Radius) || circle.Radius == 0 {
		return
	}
	center := model.OCSToWCS(circle.Center, circle.Extrusion)
	cx, cy := c.toSVG(center)
	color := resolveColor(c.entityColor(base), c.layerOf(base))
	lw := resolveLineweightPx(base.Lineweight, base.Layer)
	c.w.printf(`<circle id="dwg-object-%d" cx="%f" cy="%f" r="%f" style="%s" />`+"\n",
		base.Index, cx, cy, circle.Radius, commonStyle(color, lw))
}

func (c *Context) emitArc(a *model.Arc) {
	base := a.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	if hasNaN(a.Center.X, a.Center.Y, a.Radius, a.StartAngle, a.EndAngle) || a.Radius == 0 {
		return
	}
	startWCS, endWCS := arcEndpoints(a.Center, a.Radius, a.StartAngle, a.EndAngle)
	startWCS = model.OCSToWCS(startWCS, a.Extrusion)
	endWCS = model.OCSToWCS(endWCS, a.Extrusion)
	xs, ys := c.toSVG(startWCS)
	xe, ye := c.toSVG(endWCS)
	large := 0
	if largeArcFlag(a.StartAngle, a.EndAngle) {
		large = 1
	}
	color := resolveColor(c.entityColor(base), c.layerOf(base))
	lw := resolveLineweightPx(base.Lineweight, base.Layer)
	// Sweep is always 0: DWG arcs are stored CCW start->end, and the
	// viewport Y-flip turns that CCW sweep into a CW one in SVG space.
	c.w.printf(`<path id="dwg-object-%d" d="M %f,%f A %f,%f 0 %d,0 %f,%f" style="%s" />`+"\n",
		base.Index, xs, ys, a.Radius, a.Radius, large, xe, ye, commonStyle(color, lw))
}

func (c *Context) emitEllipse(e *model.Ellipse) {
	base := e.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	if hasNaN(e.Center.X, e.Center.Y, e.SMAxis.X, e.SMAxis.Y, e.AxisRatio) {
		return
	}
	rx := math.Hypot(e.SMAxis.X, e.SMAxis.Y)
	ry := rx * e.AxisRatio
	rotationDeg := math.Atan2(e.SMAxis.Y, e.SMAxis.X) * 180 / math.Pi
	cx, cy := c.toSVG(e.Center)
	color := resolveColor(c.entityColor(base), c.layerOf(base))
	lw := resolveLineweightPx(base.Lineweight, base.Layer)
	// The source always emits a full ellipse even when start/end angles
	// carve out a sub-arc; start_angle/end_angle are accepted but unused.
	c.w.printf(`<ellipse id="dwg-object-%d" cx="%f" cy="%f" rx="%f" ry="%f" transform="rotate(%f %f %f)" style="%s" />`+"\n",
		base.Index, cx, cy, rx, ry, -rotationDeg, cx, cy, commonStyle(color, lw))
}

func (c *Context) emitSolid(s *model.Solid) {
	base := s.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	// Draw order is 1,2,4,3, not 1,2,3,4: corners 3 and 4 are stored
	// diagonally opposite.
	order := [4]int{0, 1, 3, 2}
	var pts [4]model.Point3
	for i, idx := range order {
		p := s.Corners[idx]
		pts[i] = model.OCSToWCS(model.Point3{X: p.X, Y: p.Y}, s.Extrusion)
		if hasNaN(pts[i].X, pts[i].Y) {
			return
		}
	}
	color := resolveColor(c.entityColor(base), c.layerOf(base))
	lw := resolveLineweightPx(base.Lineweight, base.Layer)
	x0, y0 := c.toSVG(pts[0])
	d := fmt.Sprintf("M %f,%f", x0, y0)
	for _, p := range pts[1:] {
		x, y := c.toSVG(p)
		d += fmt.Sprintf(" L %f,%f", x, y)
	}
	d += " Z"
	c.w.printf(`<path id="dwg-object-%d" d="%s" style="%s" />`+"\n", base.Index, d, commonStyle(color, lw))
}

func (c *Context) emitFace3D(f *model.Face3D) {
	base := f.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	order := [4]int{0, 1, 3, 2}
	var pts [4]model.Point3
	for i, idx := range order {
		pts[i] = f.Corners[idx]
		if hasNaN(pts[i].X, pts[i].Y, pts[i].Z) {
			return
		}
	}
	color := resolveColor(c.entityColor(base), c.layerOf(base))
	lw := resolveLineweightPx(base.Lineweight, base.Layer)

	x0, y0 := c.toSVG(pts[0])
	d := fmt.Sprintf("M %f,%f", x0, y0)
	for i := 1; i <= 4; i++ {
		p := pts[i%4]
		edgeIdx := order[(i-1)%4]
		x, y := c.toSVG(p)
		if f.InvisFlags&(1<<uint(edgeIdx)) != 0 {
			d += fmt.Sprintf(" M %f,%f", x, y)
		} else {
			d += fmt.Sprintf(" L %f,%f", x, y)
		}
	}
	c.w.printf(`<path id="dwg-object-%d" d="%s" style="%s" />`+"\n", base.Index, d, commonStyle(color, lw))
}
