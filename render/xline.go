package render

import (
	"math"

	"github.com/RedRiverSoftware/dwg2svg/model"
)

func (c *Context) emitXLine(x *model.XLine) {
	base := x.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	c.emitClippedLine(base, x.Point, x.Direction, math.Inf(-1), math.Inf(1))
}

func (c *Context) emitRay(r *model.Ray) {
	base := r.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	c.emitClippedLine(base, r.Point, r.Direction, 0, math.Inf(1))
}

func (c *Context) emitClippedLine(base *model.EntityBase, point, direction model.Point3, tmin, tmax float64) {
	if hasNaN(point.X, point.Y, direction.X, direction.Y) {
		return
	}
	if direction.X == 0 && direction.Y == 0 {
		return
	}
	p0, p1, ok := slabClip(point, direction, c.extents.Xmin, c.extents.Ymin, c.extents.Xmax, c.extents.Ymax, tmin, tmax)
	if !ok {
		return
	}
	x0, y0 := c.toSVG(p0)
	x1, y1 := c.toSVG(p1)
	color := resolveColor(c.entityColor(base), c.layerOf(base))
	lw := resolveLineweightPx(base.Lineweight, base.Layer)
	c.w.printf(`<path id="dwg-object-%d" d="M %f,%f L %f,%f" style="%s" />`+"\n",
		base.Index, x0, y0, x1, y1, commonStyle(color, lw))
}
