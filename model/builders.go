package model

// NewDocument creates an empty Document with initialized lookup tables.
//
// Example:
//
//	doc := model.NewDocument()
//	doc.ModelSpace = doc.NewBlockHeader("*Model_Space", 1)
func NewDocument() *Document {
	return &Document{
		Layers:    map[string]*Layer{},
		Styles:    map[string]*Style{},
		ImageDefs: map[uint64]*ImageDef{},
	}
}

// NewBlockHeader creates a block header and appends it to doc.Blocks.
//
// Example:
//
//	bh := doc.NewBlockHeader("MY_BLOCK", 0x1A)
func (d *Document) NewBlockHeader(name string, absRef uint64) *BlockHeader {
	bh := &BlockHeader{Name: name, AbsoluteRef: absRef}
	d.Blocks = append(d.Blocks, bh)
	return bh
}

// AddLayer registers a layer and returns it for chaining.
func (d *Document) AddLayer(name string, color ColorSpec) *Layer {
	l := &Layer{Name: name, Color: color}
	d.Layers[name] = l
	return l
}

// AddStyle registers a text style and returns it for chaining.
func (d *Document) AddStyle(name, fontFile string, widthFactor float64) *Style {
	s := &Style{Name: name, FontFile: fontFile, WidthFactor: widthFactor}
	d.Styles[name] = s
	return s
}

// AddEntity appends e to the block header's owned entity list, stamping e's
// Index from the current length (matching how a DWG parser assigns stable
// per-block entity indices).
func (bh *BlockHeader) AddEntity(e Entity) {
	e.Base().Index = len(bh.Entities)
	bh.Entities = append(bh.Entities, e)
}

// ACIColor builds a ColorSpec for an ACI index (1-255, or 256 for ByLayer,
// 0 for ByBlock).
func ACIColor(index uint16) ColorSpec {
	return ColorSpec{Index: index}
}

// RGBColor builds a true-color ColorSpec from 8-bit channels.
func RGBColor(r, g, b uint8) ColorSpec {
	rgb := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	return ColorSpec{Index: 256, RGB: rgb | 0x80000000}
}

// NewLine creates a LINE entity with the default extrusion (0,0,1).
func NewLine(start, end Point3) *Line {
	return &Line{Start: start, End: end, Extrusion: Point3{Z: 1}}
}

// NewCircle creates a CIRCLE entity with the default extrusion (0,0,1).
func NewCircle(center Point3, radius float64) *Circle {
	return &Circle{Center: center, Radius: radius, Extrusion: Point3{Z: 1}}
}

// NewArc creates an ARC entity with the default extrusion (0,0,1). Angles
// are in radians, CCW from +X.
func NewArc(center Point3, radius, startAngle, endAngle float64) *Arc {
	return &Arc{Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle, Extrusion: Point3{Z: 1}}
}

// NewEllipse creates an ELLIPSE entity spanning startAngle..endAngle
// (0..2π for a full ellipse).
func NewEllipse(center, smAxis Point3, axisRatio, startAngle, endAngle float64) *Ellipse {
	return &Ellipse{Center: center, SMAxis: smAxis, AxisRatio: axisRatio, StartAngle: startAngle, EndAngle: endAngle}
}

// NewPoint creates a POINT entity with the default extrusion (0,0,1).
func NewPoint(pos Point3) *Point {
	return &Point{Position: pos, Extrusion: Point3{Z: 1}}
}

// NewSolid creates a SOLID entity from its four OCS corners, in DWG storage
// order (1,2,3,4) — the emitter, not the constructor, applies the 1,2,4,3
// draw-order quirk.
func NewSolid(c1, c2, c3, c4 Point2) *Solid {
	return &Solid{Corners: [4]Point2{c1, c2, c3, c4}, Extrusion: Point3{Z: 1}}
}

// NewFace3D creates a 3DFACE entity from its four WCS corners.
func NewFace3D(c1, c2, c3, c4 Point3, invisFlags uint8) *Face3D {
	return &Face3D{Corners: [4]Point3{c1, c2, c3, c4}, InvisFlags: invisFlags}
}

// NewText creates a TEXT entity with UTF-8 content (no transcoding needed).
func NewText(insertion Point3, height float64, content string) *Text {
	return &Text{TextBase: TextBase{
		Insertion:  insertion,
		Height:     height,
		Extrusion:  Point3{Z: 1},
		RawContent: []byte(content),
		Encoding:   EncodingUTF8,
	}}
}

// NewInsert creates an INSERT entity referencing block, with the default
// extrusion (0,0,1). Scale is stored exactly as given; no (1,1,1) default
// is substituted for a zero scale.
func NewInsert(insertionPoint Point3, scale Point3, rotation float64, block *BlockHeader) *Insert {
	return &Insert{InsertionPoint: insertionPoint, Scale: scale, Rotation: rotation, Extrusion: Point3{Z: 1}, Block: block}
}
