package model

// EntityBase holds the attributes every renderable entity shares: layer
// visibility, color and lineweight inheritance, the invisible bit, and the
// index used to form a stable per-entity output id.
type EntityBase struct {
	// Index is this entity's position in its owning list. While rendering,
	// the renderer sets it to a document-wide dispatch counter, which becomes
	// the "<index>" in the emitted id="dwg-object-<index>", and restores the
	// original value once the entity has been emitted.
	Index int

	// Layer is the entity's layer, or nil if it has none (never skipped for
	// that reason alone — only an explicitly off/frozen layer skips).
	Layer *Layer

	// Color is the entity's own color specifier (may resolve ByLayer).
	Color ColorSpec

	// Lineweight is the entity's own lineweight code; -1 means ByLayer, 0
	// means ByBlock/default.
	Lineweight int

	// Invisible mirrors the entity's invisible bit; when set, a renderer
	// must skip the entity entirely.
	Invisible bool
}

// Base returns the entity's common attributes.
func (b *EntityBase) Base() *EntityBase { return b }

// Entity is the sealed set of renderable DWG entity kinds. Every concrete
// type below embeds EntityBase and implements Kind with its own literal, so
// a type switch in package render can dispatch exhaustively.
type Entity interface {
	Base() *EntityBase
	Kind() string
}

// Line is a straight segment between two WCS points.
type Line struct {
	EntityBase
	Start, End Point3
	Extrusion  Point3
}

// Kind returns "LINE".
func (*Line) Kind() string { return "LINE" }

// Circle is a full circle in OCS.
type Circle struct {
	EntityBase
	Center    Point3
	Radius    float64
	Extrusion Point3
}

// Kind returns "CIRCLE".
func (*Circle) Kind() string { return "CIRCLE" }

// Arc is a circular arc in OCS, angles CCW from +X.
type Arc struct {
	EntityBase
	Center               Point3
	Radius               float64
	StartAngle, EndAngle float64
	Extrusion            Point3
}

// Kind returns "ARC".
func (*Arc) Kind() string { return "ARC" }

// Ellipse is a full or partial ellipse in WCS, defined by its major-axis
// endpoint vector and a minor/major axis ratio.
type Ellipse struct {
	EntityBase
	Center               Point3
	SMAxis               Point3 // vector from center to major-axis endpoint
	AxisRatio            float64
	StartAngle, EndAngle float64
}

// Kind returns "ELLIPSE".
func (*Ellipse) Kind() string { return "ELLIPSE" }

// Point is a single located point; rendered as a tiny circle.
type Point struct {
	EntityBase
	Position  Point3
	Extrusion Point3
}

// Kind returns "POINT".
func (*Point) Kind() string { return "POINT" }

// Solid is a 4-corner OCS polygon, typically used for hatching/shading fills.
type Solid struct {
	EntityBase
	Corners   [4]Point2
	Extrusion Point3
}

// Kind returns "SOLID".
func (*Solid) Kind() string { return "SOLID" }

// Face3D is a 4-corner WCS polygon with a per-edge visibility bitmask.
type Face3D struct {
	EntityBase
	Corners    [4]Point3
	InvisFlags uint8 // bit i set => edge i invisible
}

// Kind returns "3DFACE".
func (*Face3D) Kind() string { return "3DFACE" }

// Vertex2D is one owned vertex of a POLYLINE_2D.
type Vertex2D struct {
	Point       Point2
	Bulge       float64
	SplineFrame bool // flag bit 16: spline-frame control point, skipped
}

// Polyline2D is a POLYLINE_2D: an owned vertex list with a closed flag.
type Polyline2D struct {
	EntityBase
	Vertices  []Vertex2D
	Closed    bool
	Extrusion Point3
}

// Kind returns "POLYLINE_2D".
func (*Polyline2D) Kind() string { return "POLYLINE_2D" }

// LWVertex is one point of an LWPOLYLINE's point array, with its segment
// bulge (the bulge of the segment starting at this vertex).
type LWVertex struct {
	Point Point2
	Bulge float64
}

// LWPolyline is an LWPOLYLINE: a compact point array with a closed flag.
type LWPolyline struct {
	EntityBase
	Vertices  []LWVertex
	Closed    bool
	Extrusion Point3
}

// Kind returns "LWPOLYLINE".
func (*LWPolyline) Kind() string { return "LWPOLYLINE" }

// HatchCurveType enumerates HATCH segment kinds.
type HatchCurveType int

const (
	HatchLine HatchCurveType = iota + 1
	HatchCircularArc
	HatchEllipticalArc
	HatchSpline
)

// HatchSegment is one edge of a segmented (non-polyline) HATCH boundary
// path.
type HatchSegment struct {
	CurveType HatchCurveType

	// LINE
	Start, End Point2

	// CIRCULAR ARC / ELLIPTICAL ARC
	Center               Point2
	Radius               float64 // circular arc radius
	EllipseEndpoint      Point2  // elliptical arc: endpoint of major axis
	MinorMajorRatio      float64 // elliptical arc: minor/major ratio
	StartAngle, EndAngle float64
	CCW                  bool

	// SPLINE
	ControlPoints []Point2
	FitPoints     []Point2
}

// HatchPath is one boundary path of a HATCH entity: either a polyline
// (optionally bulged) or a list of mixed-kind segments.
type HatchPath struct {
	Polyline  bool // flag & 2
	Points    []Point2
	Bulges    []float64 // per-point bulge to the NEXT point, 0 if none
	HasBulges bool
	Closed    bool
	Segments  []HatchSegment
}

// Hatch is a HATCH entity: a set of boundary paths, solid-filled or not.
type Hatch struct {
	EntityBase
	SolidFill bool
	Paths     []HatchPath
}

// Kind returns "HATCH".
func (*Hatch) Kind() string { return "HATCH" }

// TextEncoding selects how TextBase.RawContent is transcoded.
type TextEncoding int

const (
	// EncodingUTF8 means RawContent is already UTF-8 (e.g. built in Go
	// code); it is only HTML-escaped, not transcoded.
	EncodingUTF8 TextEncoding = iota

	// EncodingUTF16LE means RawContent is little-endian UTF-16 and must be
	// transcoded to UTF-8 before HTML-escaping.
	EncodingUTF16LE

	// EncodingCodepageSingleByte means RawContent is a single-byte
	// document codepage (Windows-1252 is used as the stand-in codepage —
	// see model/transcode.go) and must be transcoded before escaping.
	EncodingCodepageSingleByte
)

// TextBase holds the fields shared by TEXT and ATTDEF.
type TextBase struct {
	Insertion   Point3
	Alignment   *Point2 // nil when neither alignment code is set
	Height      float64
	WidthFactor float64 // 0 means "use style default, then 1.0"
	Rotation    float64 // radians
	HorizAlign  int
	VertAlign   int
	Style       *Style
	Extrusion   Point3
	RawContent  []byte
	Encoding    TextEncoding
}

// DecodedContent transcodes RawContent to UTF-8 and HTML-escapes it.
func (t *TextBase) DecodedContent() (string, error) {
	return decodeAndEscape(t.RawContent, t.Encoding)
}

// EffectiveWidthFactor resolves WidthFactor against the style's default and
// then a flat 1.0.
func (t *TextBase) EffectiveWidthFactor() float64 {
	if t.WidthFactor != 0 {
		return t.WidthFactor
	}
	if t.Style != nil && t.Style.WidthFactor != 0 {
		return t.Style.WidthFactor
	}
	return 1.0
}

// Text is a TEXT entity. Its Rotation field is always treated as 0 by a
// renderer (unlike AttDef, which applies it); the field is kept on the
// shared TextBase for ATTDEF's benefit.
type Text struct {
	EntityBase
	TextBase
}

// Kind returns "TEXT".
func (*Text) Kind() string { return "TEXT" }

// AttDef is an ATTDEF entity: a TEXT-shaped entity whose rotation IS applied
// by the renderer, plus a tag string.
type AttDef struct {
	EntityBase
	TextBase
	Tag string
}

// Kind returns "ATTDEF".
func (*AttDef) Kind() string { return "ATTDEF" }

// Insert is a block reference. Block is nil when the referenced
// block header could not be resolved; the renderer emits a comment instead
// of a <use> in that case.
type Insert struct {
	EntityBase
	InsertionPoint Point3
	Scale          Point3
	Rotation       float64 // radians
	Extrusion      Point3
	Block          *BlockHeader
}

// Kind returns "INSERT".
func (*Insert) Kind() string { return "INSERT" }

// Image is a raster image placement.
type Image struct {
	EntityBase
	Pt0           Point3 // WCS lower-left corner
	UVec, VVec    Point3 // per-pixel basis vectors
	ImageWidthPx  int
	ImageHeightPx int
	ImageDef      *ImageDef
}

// Kind returns "IMAGE".
func (*Image) Kind() string { return "IMAGE" }

// XLine is an unbounded construction line, clipped to the model extents
// when rendered.
type XLine struct {
	EntityBase
	Point     Point3
	Direction Point3
}

// Kind returns "XLINE".
func (*XLine) Kind() string { return "XLINE" }

// Ray is a semi-infinite construction line, clipped to the model extents
// when rendered.
type Ray struct {
	EntityBase
	Point     Point3
	Direction Point3
}

// Kind returns "RAY".
func (*Ray) Kind() string { return "RAY" }
