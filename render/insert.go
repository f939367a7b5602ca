package render

import (
	"math"

	"github.com/RedRiverSoftware/dwg2svg/model"
)

// emitEntity dispatches a single entity to its kind-specific emitter. It is
// the render-pass counterpart of addEntityExtents: one type switch, driven
// by the sealed model.Entity interface instead of an enum tag.
func (c *Context) emitEntity(e model.Entity) {
	base := e.Base()
	prevIndex := base.Index
	base.Index = c.nextIndex()
	defer func() { base.Index = prevIndex }()

	switch v := e.(type) {
	case *model.Line:
		c.emitLine(v)
	case *model.Point:
		c.emitPoint(v)
	case *model.Circle:
		c.emitCircle(v)
	case *model.Arc:
		c.emitArc(v)
	case *model.Ellipse:
		c.emitEllipse(v)
	case *model.Solid:
		c.emitSolid(v)
	case *model.Face3D:
		c.emitFace3D(v)
	case *model.Polyline2D:
		c.emitPolyline2D(v)
	case *model.LWPolyline:
		c.emitLWPolyline(v)
	case *model.Hatch:
		c.emitHatch(v)
	case *model.Text:
		c.emitText(v)
	case *model.AttDef:
		c.emitAttDef(v)
	case *model.Insert:
		c.emitInsert(v)
	case *model.Image:
		c.emitImage(v)
	case *model.XLine:
		c.emitXLine(v)
	case *model.Ray:
		c.emitRay(v)
	default:
		if c.opts.Verbose {
			c.opts.logger().Warn("skipping unsupported entity kind", "kind", e.Kind())
		}
	}
}

// emitInsert renders an INSERT either as a transformed reference to a
// registered <defs> symbol, or, when its block could not be resolved, as an
// HTML comment flagging the broken reference.
func (c *Context) emitInsert(ins *model.Insert) {
	base := ins.Base()
	if base.Invisible || !base.Layer.Visible() {
		return
	}
	if ins.Block == nil || !blockEligible(ins.Block.Name) {
		c.w.comment(" WRONG INSERT(unresolved block) ")
		return
	}
	if hasNaN(ins.InsertionPoint.X, ins.InsertionPoint.Y, ins.Scale.X, ins.Scale.Y, ins.Rotation) {
		return
	}

	c.requireSymbol(ins.Block.AbsoluteRef, ins.Block)

	insWCS := model.OCSToWCS(ins.InsertionPoint, ins.Extrusion)
	tx, ty := c.toSVG(insWCS)
	sx, sy := ins.Scale.X, ins.Scale.Y
	bx, by := ins.Block.BasePoint.X, ins.Block.BasePoint.Y
	href := "#" + svgSymbolID(ins.Block.AbsoluteRef)

	// Block interiors are emitted in raw local coordinates (toSVG is the
	// identity in-block), so the block's base point must be subtracted here,
	// at the <use> site, before the viewport translate is applied.
	if math.Abs(ins.Rotation) < 1e-9 {
		c.w.printf(`<use xlink:href="%s" transform="matrix(%f,0,0,%f,%f,%f)" />`+"\n",
			href, sx, -sy, tx-sx*bx, ty+sy*by)
		return
	}

	rotDeg := svgRotationDeg(ins.Rotation)
	c.w.printf(`<use xlink:href="%s" transform="translate(%f,%f) rotate(%f) scale(%f,%f) translate(%f,%f)" />`+"\n",
		href, tx, ty, rotDeg, sx, -sy, -bx, -by)
}
