package render

import (
	"math"

	"github.com/RedRiverSoftware/dwg2svg/model"
)

// toSVG converts a WCS point to SVG user-space, translating by the
// viewport's minimum corner and flipping Y (CAD is Y-up, SVG is Y-down). In
// block-definition mode the transform is the identity: block interiors are
// emitted in raw coordinates and the <use> site supplies the viewport
// transform via its own matrix.
func (c *Context) toSVG(p model.Point3) (x, y float64) {
	if c.inBlockDefinition {
		return p.X, p.Y
	}
	return p.X - c.extents.Xmin, c.pageHeight - (p.Y - c.extents.Ymin)
}

// hasNaN reports whether any of vs is NaN or infinite — the renderer's
// per-entity NaN guard applies to coordinates, vectors, and angles alike.
func hasNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// svgRotationDeg negates a CAD CCW angle (radians) to the CW-visual degrees
// SVG's rotate() expects, since the viewport Y-flip reverses apparent
// rotation sense.
func svgRotationDeg(radCCW float64) float64 {
	return -radCCW * 180 / math.Pi
}

// arcEndpoints computes the WCS start/end points of a circular arc given
// its center, radius, and CCW angles in radians.
func arcEndpoints(center model.Point3, radius, startAngle, endAngle float64) (start, end model.Point3) {
	start = model.Point3{
		X: center.X + radius*math.Cos(startAngle),
		Y: center.Y + radius*math.Sin(startAngle),
		Z: center.Z,
	}
	end = model.Point3{
		X: center.X + radius*math.Cos(endAngle),
		Y: center.Y + radius*math.Sin(endAngle),
		Z: center.Z,
	}
	return
}

// largeArcFlag reports whether the sweep from startAngle to endAngle (both
// CCW radians, endAngle >= startAngle by convention) spans a half-circle
// or more.
func largeArcFlag(startAngle, endAngle float64) bool {
	return math.Abs(endAngle-startAngle) >= math.Pi
}

// bulgeArc computes the SVG elliptical-arc parameters for a polyline
// segment (x1,y1)->(x2,y2) with the given bulge (tan(included_angle/4),
// positive is CCW in CAD).
func bulgeArc(x1, y1, x2, y2, bulge float64) (radius float64, largeArc, sweep bool) {
	dx, dy := x2-x1, y2-y1
	chord := math.Hypot(dx, dy)
	sagitta := math.Abs(bulge) * chord / 2
	if sagitta == 0 {
		return 0, false, false
	}
	radius = (chord*chord/4 + sagitta*sagitta) / (2 * sagitta)
	largeArc = math.Abs(bulge) > 1
	sweep = bulge > 0
	return
}

// slabClip clips the ray/line point+direction against the axis-aligned box
// [xmin,xmax]x[ymin,ymax] using reciprocal-direction slab intersection,
// returning the clipped segment's two WCS endpoints. ok is false when the
// ray/ine direction never intersects the box (degenerate or parallel-miss).
// tmin/tmax bound the parametric range: -inf..+inf for an XLINE (both
// directions unbounded), 0..+inf for a RAY (forward only).
func slabClip(point, direction model.Point3, xmin, ymin, xmax, ymax, tmin, tmax float64) (p0, p1 model.Point3, ok bool) {
	lo, hi := tmin, tmax

	clip := func(p, d, min, max float64) bool {
		if d == 0 {
			return p >= min && p <= max
		}
		t0 := (min - p) / d
		t1 := (max - p) / d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > lo {
			lo = t0
		}
		if t1 < hi {
			hi = t1
		}
		return lo <= hi
	}

	if !clip(point.X, direction.X, xmin, xmax) {
		return model.Point3{}, model.Point3{}, false
	}
	if !clip(point.Y, direction.Y, ymin, ymax) {
		return model.Point3{}, model.Point3{}, false
	}
	if lo > hi {
		return model.Point3{}, model.Point3{}, false
	}

	at := func(t float64) model.Point3 {
		return model.Point3{X: point.X + direction.X*t, Y: point.Y + direction.Y*t, Z: point.Z + direction.Z*t}
	}
	return at(lo), at(hi), true
}
