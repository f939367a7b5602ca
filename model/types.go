package model

// Point3 is a 3D point or vector in WCS or OCS, depending on context.
type Point3 struct {
	X, Y, Z float64
}

// Point2 is a 2D point, used where an entity's geometry is inherently planar
// (OCS corners, polyline vertices).
type Point2 struct {
	X, Y float64
}

// Document is the DWG model a renderer consumes. It is owned and populated
// by the parser; the renderer only ever reads it.
type Document struct {
	// ModelSpace is the block header holding model-space entities, if any.
	ModelSpace *BlockHeader

	// PaperSpace is the block header holding paper-space entities, if any.
	PaperSpace *BlockHeader

	// Blocks lists every block header in the block control table, in table
	// order. ModelSpace and PaperSpace are themselves entries in this list
	// (a DWG's *Model_Space and *Paper_Space blocks are ordinary block
	// headers with reserved names).
	Blocks []*BlockHeader

	// Layers indexes layer definitions by name.
	Layers map[string]*Layer

	// Styles indexes text style definitions by name.
	Styles map[string]*Style

	// ImageDefs indexes raster image definitions by handle.
	ImageDefs map[uint64]*ImageDef

	// StoredExtents is the document's own cached extents, used as a fallback
	// when the renderer's own collection pass never initializes.
	StoredExtents *Extents
}

// BlockHeader is a named, owned-entity collection: a block definition, or
// one of the two reserved spaces (model-space, paper-space).
type BlockHeader struct {
	// Name is the block's name, e.g. "*Model_Space", "*Paper_Space",
	// or a user block name.
	Name string

	// AbsoluteRef uniquely identifies this block header across the
	// document; INSERT entities reference blocks by this handle.
	AbsoluteRef uint64

	// BasePoint is the block's insertion base point, in the block's own
	// raw coordinate space.
	BasePoint Point3

	// Entities is the block's owned entity list, in stable iteration order.
	Entities []Entity
}

// Layer is a DWG layer: visibility/printability state, default color, and
// default lineweight for entities that inherit ByLayer.
type Layer struct {
	Name       string
	Off        bool
	Frozen     bool
	Color      ColorSpec
	Lineweight int // lineweight code, same units as EntityBase.Lineweight
}

// Visible reports whether entities on this layer should be rendered at all.
func (l *Layer) Visible() bool {
	if l == nil {
		return true
	}
	return !l.Off && !l.Frozen
}

// Style is a DWG text style: the font file referenced by TEXT/ATTDEF and the
// style's default width factor.
type Style struct {
	Name        string
	FontFile    string
	WidthFactor float64
}

// ImageDef is a raster image definition referenced by IMAGE entities.
type ImageDef struct {
	FilePath string
}

// ColorSpec is a DWG color specifier: an ACI index, an optional true-color
// RGB value, and the flag byte distinguishing which applies.
type ColorSpec struct {
	// Index is the ACI index. 0 = ByBlock, 1-7 = named colors, 8-255 =
	// palette-indexed, 256 = ByLayer.
	Index uint16

	// RGB packs a 24-bit true color plus control bits in the high byte,
	// matching the DWG "Color256" encoding: bit 0x80 set with 0x40 clear
	// means "low 24 bits are true RGB"; top byte == 0xC3 with Index == 256
	// means "low byte of RGB is a layer-encoded ACI".
	RGB uint32
}

// Extents is an axis-aligned bounding box accumulated over a document's
// renderable geometry.
type Extents struct {
	Xmin, Ymin, Xmax, Ymax float64
	Initialized            bool
}

// Add extends the extents to include the point (x, y). NaN coordinates are
// the caller's responsibility to filter out before accumulation.
func (e *Extents) Add(x, y float64) {
	if !e.Initialized {
		e.Xmin, e.Xmax = x, x
		e.Ymin, e.Ymax = y, y
		e.Initialized = true
		return
	}
	if x < e.Xmin {
		e.Xmin = x
	}
	if x > e.Xmax {
		e.Xmax = x
	}
	if y < e.Ymin {
		e.Ymin = y
	}
	if y > e.Ymax {
		e.Ymax = y
	}
}

// Merge extends e to also cover o, if o is initialized.
func (e *Extents) Merge(o Extents) {
	if !o.Initialized {
		return
	}
	e.Add(o.Xmin, o.Ymin)
	e.Add(o.Xmax, o.Ymax)
}

// Width returns Xmax - Xmin.
func (e *Extents) Width() float64 { return e.Xmax - e.Xmin }

// Height returns Ymax - Ymin.
func (e *Extents) Height() float64 { return e.Ymax - e.Ymin }
