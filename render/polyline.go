package render

import (
	"fmt"

	"github.com/RedRiverSoftware/dwg2svg/model"
)

func (c *Context) emitPolyline2D(p *model.Polyline2D) {
	base := p.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	color := resolveColor(c.entityColor(base), c.layerOf(base))
	lw := resolveLineweightPx(base.Lineweight, base.Layer)

	d := c.polylineVertexPath(vertex2DPoints(p.Vertices), p.Extrusion, p.Closed)
	c.w.printf(`<path id="dwg-object-%d" d="%s" style="%s" />`+"\n", base.Index, d, commonStyle(color, lw))
}

func vertex2DPoints(vs []model.Vertex2D) []model.Point2 {
	var pts []model.Point2
	for _, v := range vs {
		if v.SplineFrame {
			continue
		}
		pts = append(pts, v.Point)
	}
	return pts
}

// polylineVertexPath walks OCS-projected vertices, emitting M for the
// first and L for the rest, closing with Z if closed is set. Bulges are
// not part of the path data (it serves POLYLINE_2D and LWPOLYLINE; only
// HATCH polyline paths apply the bulge->arc conversion).
func (c *Context) polylineVertexPath(pts []model.Point2, extrusion model.Point3, closed bool) string {
	if len(pts) == 0 {
		return ""
	}
	d := ""
	for i, p := range pts {
		wcs := model.OCSToWCS(model.Point3{X: p.X, Y: p.Y}, extrusion)
		if hasNaN(wcs.X, wcs.Y) {
			return ""
		}
		x, y := c.toSVG(wcs)
		if i == 0 {
			d = fmt.Sprintf("M %f,%f", x, y)
		} else {
			d += fmt.Sprintf(" L %f,%f", x, y)
		}
	}
	if closed {
		d += " Z"
	}
	return d
}

func (c *Context) emitLWPolyline(p *model.LWPolyline) {
	base := p.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	color := resolveColor(c.entityColor(base), c.layerOf(base))
	lw := resolveLineweightPx(base.Lineweight, base.Layer)

	d := c.lwPolylinePath(p.Vertices, p.Extrusion, p.Closed)
	c.w.printf(`<path id="dwg-object-%d" d="%s" style="%s" />`+"\n", base.Index, d, commonStyle(color, lw))
}

// lwPolylinePath mirrors POLYLINE_2D's walk, with bulges noted on each
// vertex but not rendered as arcs — the source reads LWPOLYLINE bulges and
// never applies the bulge->arc conversion it applies for HATCH polyline
// paths, and this implementation matches that rather than silently
// diverging.
func (c *Context) lwPolylinePath(vs []model.LWVertex, extrusion model.Point3, closed bool) string {
	pts := make([]model.Point2, len(vs))
	for i, v := range vs {
		pts[i] = v.Point
	}
	return c.polylineVertexPath(pts, extrusion, closed)
}
