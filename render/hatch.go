package render

import (
	"fmt"
	"math"

	"github.com/RedRiverSoftware/dwg2svg/model"
)

func (c *Context) emitHatch(h *model.Hatch) {
	base := h.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	if len(h.Paths) == 0 {
		return
	}
	color := resolveColor(c.entityColor(base), c.layerOf(base))

	if h.SolidFill {
		var combined string
		for _, path := range h.Paths {
			combined += c.hatchPathData(path)
		}
		c.w.printf(`<path id="dwg-object-%d" d="%s" style="fill:%s;stroke:none;fill-rule:evenodd" />`+"\n",
			base.Index, combined, color)
		return
	}

	lw := resolveLineweightPx(base.Lineweight, base.Layer)
	for i, path := range h.Paths {
		c.w.printf(`<path id="dwg-object-%d-%d" d="%s" style="%s" />`+"\n",
			base.Index, i, c.hatchPathData(path), commonStyle(color, lw))
	}
}

func (c *Context) hatchPathData(path model.HatchPath) string {
	if path.Polyline {
		return c.hatchPolylinePathData(path)
	}
	return c.hatchSegmentedPathData(path)
}

func (c *Context) hatchPolylinePathData(path model.HatchPath) string {
	if len(path.Points) == 0 {
		return ""
	}
	d := ""
	var cur model.Point2
	for i, p := range path.Points {
		if hasNaN(p.X, p.Y) {
			return ""
		}
		x, y := c.toSVG(model.Point3{X: p.X, Y: p.Y})
		if i == 0 {
			d = fmt.Sprintf("M %f,%f", x, y)
			cur = p
			continue
		}
		bulge := 0.0
		if path.HasBulges && i-1 < len(path.Bulges) {
			bulge = path.Bulges[i-1]
		}
		d += c.bulgeOrLineSegment(cur, p, bulge)
		cur = p
	}
	if path.Closed {
		if path.HasBulges && len(path.Points) > 0 && len(path.Bulges) >= len(path.Points) {
			d += c.bulgeOrLineSegment(cur, path.Points[0], path.Bulges[len(path.Points)-1])
		} else {
			d += " Z"
		}
	}
	return d
}

func (c *Context) bulgeOrLineSegment(from, to model.Point2, bulge float64) string {
	x2, y2 := c.toSVG(model.Point3{X: to.X, Y: to.Y})
	if bulge == 0 {
		return fmt.Sprintf(" L %f,%f", x2, y2)
	}
	x1, y1 := c.toSVG(model.Point3{X: from.X, Y: from.Y})
	r, large, sweep := bulgeArc(x1, y1, x2, y2, bulge)
	largeFlag, sweepFlag := 0, 0
	if large {
		largeFlag = 1
	}
	if sweep {
		sweepFlag = 1
	}
	return fmt.Sprintf(" A %f,%f 0 %d,%d %f,%f", r, r, largeFlag, sweepFlag, x2, y2)
}

func (c *Context) hatchSegmentedPathData(path model.HatchPath) string {
	d := ""
	for _, seg := range path.Segments {
		switch seg.CurveType {
		case model.HatchLine:
			if hasNaN(seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y) {
				continue
			}
			x1, y1 := c.toSVG(model.Point3{X: seg.Start.X, Y: seg.Start.Y})
			x2, y2 := c.toSVG(model.Point3{X: seg.End.X, Y: seg.End.Y})
			if d == "" {
				d = fmt.Sprintf("M %f,%f", x1, y1)
			}
			d += fmt.Sprintf(" L %f,%f", x2, y2)
		case model.HatchCircularArc:
			d += c.hatchCircularArcSegment(d == "", seg)
		case model.HatchEllipticalArc:
			d += c.hatchEllipticalArcSegment(d == "", seg)
		case model.HatchSpline:
			d += c.hatchSplineSegment(d == "", seg)
		}
	}
	return d
}

func (c *Context) hatchCircularArcSegment(first bool, seg model.HatchSegment) string {
	if hasNaN(seg.Center.X, seg.Center.Y, seg.Radius, seg.StartAngle, seg.EndAngle) {
		return ""
	}
	start, end := arcEndpoints(model.Point3{X: seg.Center.X, Y: seg.Center.Y}, seg.Radius, seg.StartAngle, seg.EndAngle)
	xs, ys := c.toSVG(start)
	xe, ye := c.toSVG(end)
	large := 0
	if math.Abs(seg.EndAngle-seg.StartAngle) > math.Pi {
		large = 1
	}
	sweep := 0
	if seg.CCW {
		sweep = 1
	}
	out := ""
	if first {
		out += fmt.Sprintf("M %f,%f", xs, ys)
	}
	out += fmt.Sprintf(" A %f,%f 0 %d,%d %f,%f", seg.Radius, seg.Radius, large, sweep, xe, ye)
	return out
}

func (c *Context) hatchEllipticalArcSegment(first bool, seg model.HatchSegment) string {
	if hasNaN(seg.Center.X, seg.Center.Y, seg.EllipseEndpoint.X, seg.EllipseEndpoint.Y, seg.MinorMajorRatio) {
		return ""
	}
	rx := math.Hypot(seg.EllipseEndpoint.X, seg.EllipseEndpoint.Y)
	ry := rx * seg.MinorMajorRatio
	rotation := math.Atan2(seg.EllipseEndpoint.Y, seg.EllipseEndpoint.X)
	sin, cos := math.Sincos(rotation)

	pointAt := func(angle float64) model.Point3 {
		lx, ly := rx*math.Cos(angle), ry*math.Sin(angle)
		return model.Point3{X: seg.Center.X + lx*cos - ly*sin, Y: seg.Center.Y + lx*sin + ly*cos}
	}
	xs, ys := c.toSVG(pointAt(seg.StartAngle))
	xe, ye := c.toSVG(pointAt(seg.EndAngle))
	rotationDeg := rotation * 180 / math.Pi
	large := 0
	if math.Abs(seg.EndAngle-seg.StartAngle) > math.Pi {
		large = 1
	}
	sweep := 0
	if seg.CCW {
		sweep = 1
	}
	out := ""
	if first {
		out += fmt.Sprintf("M %f,%f", xs, ys)
	}
	out += fmt.Sprintf(" A %f,%f %f %d,%d %f,%f", rx, ry, rotationDeg, large, sweep, xe, ye)
	return out
}

// hatchSplineSegment approximates a SPLINE hatch boundary with a polyline
// through its control points, falling back to fit points when no control
// points are present.
func (c *Context) hatchSplineSegment(first bool, seg model.HatchSegment) string {
	pts := seg.ControlPoints
	if len(pts) == 0 {
		pts = seg.FitPoints
	}
	d := ""
	for i, p := range pts {
		if hasNaN(p.X, p.Y) {
			return ""
		}
		x, y := c.toSVG(model.Point3{X: p.X, Y: p.Y})
		if i == 0 && first {
			d = fmt.Sprintf("M %f,%f", x, y)
			continue
		}
		d += fmt.Sprintf(" L %f,%f", x, y)
	}
	return d
}
