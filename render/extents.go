package render

import (
	"math"

	"github.com/RedRiverSoftware/dwg2svg/model"
)

// pickSpace selects the block header the driver and the extents collector
// both render from: paper space, unless mspaceOnly is set or paper space
// has no owned entities, in which case model space is used instead. Using
// the same selection in both passes keeps the computed viewport consistent
// with what actually gets drawn.
func pickSpace(doc *model.Document, mspaceOnly bool) *model.BlockHeader {
	if !mspaceOnly && doc.PaperSpace != nil && len(doc.PaperSpace.Entities) > 0 {
		return doc.PaperSpace
	}
	return doc.ModelSpace
}

// computeExtents runs the extents collector over the document's active
// space, falling back to the document's stored extents and finally to a
// 100x100 default viewport at the origin when nothing renderable was
// found.
func computeExtents(doc *model.Document, opts Options) model.Extents {
	visited := map[uint64]bool{}
	var ext model.Extents

	if space := pickSpace(doc, opts.MspaceOnly); space != nil {
		ext = collectBlockExtents(doc, space, visited)
	}

	if !ext.Initialized || ext.Width() <= 0 || ext.Height() <= 0 || math.IsNaN(ext.Width()) || math.IsNaN(ext.Height()) {
		if doc.StoredExtents != nil && doc.StoredExtents.Initialized &&
			doc.StoredExtents.Width() > 0 && doc.StoredExtents.Height() > 0 {
			return *doc.StoredExtents
		}
		return model.Extents{Xmin: 0, Ymin: 0, Xmax: 100, Ymax: 100, Initialized: true}
	}
	return ext
}

// collectBlockExtents accumulates the WCS bounding box of every renderable
// entity owned by bh, recursing into INSERT references. visited guards
// against a block that (directly or through nested INSERTs) contains
// itself.
func collectBlockExtents(doc *model.Document, bh *model.BlockHeader, visited map[uint64]bool) model.Extents {
	var ext model.Extents
	for _, e := range bh.Entities {
		base := e.Base()
		if base.Invisible {
			continue
		}
		if !base.Layer.Visible() {
			continue
		}
		addEntityExtents(doc, e, &ext, visited)
	}
	return ext
}

func addEntityExtents(doc *model.Document, e model.Entity, ext *model.Extents, visited map[uint64]bool) {
	switch v := e.(type) {
	case *model.Line:
		addProjectedAll(ext, v.Extrusion, v.Start, v.End)
	case *model.Point:
		addProjectedAll(ext, v.Extrusion, v.Position)
	case *model.Solid:
		addProjectedAll(ext, v.Extrusion,
			model.Point3{X: v.Corners[0].X, Y: v.Corners[0].Y},
			model.Point3{X: v.Corners[1].X, Y: v.Corners[1].Y},
			model.Point3{X: v.Corners[2].X, Y: v.Corners[2].Y},
			model.Point3{X: v.Corners[3].X, Y: v.Corners[3].Y})
	case *model.Face3D:
		for _, c := range v.Corners {
			if hasNaN(c.X, c.Y, c.Z) {
				return
			}
		}
		for _, c := range v.Corners {
			ext.Add(c.X, c.Y)
		}
	case *model.Polyline2D:
		var pts []model.Point3
		for _, vtx := range v.Vertices {
			if vtx.SplineFrame {
				continue
			}
			pts = append(pts, model.Point3{X: vtx.Point.X, Y: vtx.Point.Y})
		}
		addProjectedAll(ext, v.Extrusion, pts...)
	case *model.LWPolyline:
		pts := make([]model.Point3, len(v.Vertices))
		for i, vtx := range v.Vertices {
			pts[i] = model.Point3{X: vtx.Point.X, Y: vtx.Point.Y}
		}
		addProjectedAll(ext, v.Extrusion, pts...)
	case *model.Circle:
		if hasNaN(v.Center.X, v.Center.Y, v.Radius) || v.Radius == 0 {
			return
		}
		addSquare(ext, v.Center.X, v.Center.Y, v.Radius)
	case *model.Arc:
		if hasNaN(v.Center.X, v.Center.Y, v.Radius, v.StartAngle, v.EndAngle) || v.Radius == 0 {
			return
		}
		addSquare(ext, v.Center.X, v.Center.Y, v.Radius)
	case *model.Ellipse:
		if hasNaN(v.Center.X, v.Center.Y, v.SMAxis.X, v.SMAxis.Y, v.AxisRatio) {
			return
		}
		rx := math.Hypot(v.SMAxis.X, v.SMAxis.Y)
		ry := rx * v.AxisRatio
		addSquare(ext, v.Center.X, v.Center.Y, math.Max(rx, ry))
	case *model.Text:
		addTextExtents(ext, v.TextBase)
	case *model.AttDef:
		addTextExtents(ext, v.TextBase)
	case *model.Hatch:
		addHatchExtents(ext, v)
	case *model.Image:
		addImageExtents(ext, v)
	case *model.Insert:
		addInsertExtents(doc, ext, v, visited)
	case *model.XLine, *model.Ray:
		// XLine/Ray are clipped against the final viewport at render time;
		// they contribute nothing to the extents that determine it.
	}
}

// addProjectedAll OCS-projects every point in pts and adds them to ext, but
// only if none of them end up NaN — one bad coordinate skips the whole
// entity rather than just that vertex.
func addProjectedAll(ext *model.Extents, extrusion model.Point3, pts ...model.Point3) {
	projected := make([]model.Point3, len(pts))
	for i, p := range pts {
		wcs := model.OCSToWCS(p, extrusion)
		if hasNaN(wcs.X, wcs.Y) {
			return
		}
		projected[i] = wcs
	}
	for _, p := range projected {
		ext.Add(p.X, p.Y)
	}
}

func addSquare(ext *model.Extents, cx, cy, r float64) {
	ext.Add(cx-r, cy-r)
	ext.Add(cx+r, cy+r)
}

func addTextExtents(ext *model.Extents, t model.TextBase) {
	if hasNaN(t.Insertion.X, t.Insertion.Y, t.Height) {
		return
	}
	ext.Add(t.Insertion.X, t.Insertion.Y)
	ext.Add(t.Insertion.X+5*t.Height, t.Insertion.Y+t.Height)
}

func addHatchExtents(ext *model.Extents, h *model.Hatch) {
	for _, path := range h.Paths {
		for _, p := range path.Points {
			if hasNaN(p.X, p.Y) {
				continue
			}
			ext.Add(p.X, p.Y)
		}
		for _, seg := range path.Segments {
			switch seg.CurveType {
			case model.HatchLine:
				if !hasNaN(seg.Start.X, seg.Start.Y) {
					ext.Add(seg.Start.X, seg.Start.Y)
				}
				if !hasNaN(seg.End.X, seg.End.Y) {
					ext.Add(seg.End.X, seg.End.Y)
				}
			case model.HatchCircularArc:
				if !hasNaN(seg.Center.X, seg.Center.Y, seg.Radius) {
					addSquare(ext, seg.Center.X, seg.Center.Y, seg.Radius)
				}
			case model.HatchEllipticalArc:
				if hasNaN(seg.Center.X, seg.Center.Y, seg.EllipseEndpoint.X, seg.EllipseEndpoint.Y) {
					continue
				}
				rx := math.Hypot(seg.EllipseEndpoint.X, seg.EllipseEndpoint.Y)
				ry := rx * seg.MinorMajorRatio
				addSquare(ext, seg.Center.X, seg.Center.Y, math.Max(rx, ry))
			case model.HatchSpline:
				for _, p := range seg.ControlPoints {
					if !hasNaN(p.X, p.Y) {
						ext.Add(p.X, p.Y)
					}
				}
				for _, p := range seg.FitPoints {
					if !hasNaN(p.X, p.Y) {
						ext.Add(p.X, p.Y)
					}
				}
			}
		}
	}
}

func addImageExtents(ext *model.Extents, img *model.Image) {
	if hasNaN(img.Pt0.X, img.Pt0.Y, img.UVec.X, img.UVec.Y, img.VVec.X, img.VVec.Y) {
		return
	}
	w, h := float64(img.ImageWidthPx), float64(img.ImageHeightPx)
	u := model.Point3{X: img.UVec.X * w, Y: img.UVec.Y * w}
	v := model.Point3{X: img.VVec.X * h, Y: img.VVec.Y * h}
	corners := []model.Point3{
		img.Pt0,
		{X: img.Pt0.X + u.X, Y: img.Pt0.Y + u.Y},
		{X: img.Pt0.X + u.X + v.X, Y: img.Pt0.Y + u.Y + v.Y},
		{X: img.Pt0.X + v.X, Y: img.Pt0.Y + v.Y},
	}
	for _, c := range corners {
		ext.Add(c.X, c.Y)
	}
}

func addInsertExtents(doc *model.Document, ext *model.Extents, ins *model.Insert, visited map[uint64]bool) {
	if ins.Block == nil {
		return
	}
	if hasNaN(ins.InsertionPoint.X, ins.InsertionPoint.Y, ins.Scale.X, ins.Scale.Y, ins.Rotation) {
		return
	}
	if visited[ins.Block.AbsoluteRef] {
		return
	}
	visited[ins.Block.AbsoluteRef] = true
	defer delete(visited, ins.Block.AbsoluteRef)

	inner := collectBlockExtents(doc, ins.Block, visited)
	if !inner.Initialized {
		return
	}

	insPt := model.OCSToWCS(ins.InsertionPoint, ins.Extrusion)
	base := ins.Block.BasePoint
	sin, cos := math.Sincos(ins.Rotation)

	corners := []model.Point3{
		{X: inner.Xmin, Y: inner.Ymin},
		{X: inner.Xmax, Y: inner.Ymin},
		{X: inner.Xmax, Y: inner.Ymax},
		{X: inner.Xmin, Y: inner.Ymax},
	}
	for _, c := range corners {
		dx := (c.X - base.X) * ins.Scale.X
		dy := (c.Y - base.Y) * ins.Scale.Y
		rx := dx*cos - dy*sin
		ry := dx*sin + dy*cos
		ext.Add(insPt.X+rx, insPt.Y+ry)
	}
}
