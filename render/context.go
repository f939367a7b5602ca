package render

import (
	"io"

	"github.com/RedRiverSoftware/dwg2svg/model"
	"github.com/charmbracelet/log"
)

// Options configures a single rendering call. It replaces the source's
// CLI-flag-backed globals with an explicit, per-call value.
type Options struct {
	// MspaceOnly skips paper space entirely and renders model space, even
	// when a paper-space block exists and has drawable content.
	MspaceOnly bool

	// Verbose, when true, makes the renderer log a warning for each entity
	// of a kind it has no emitter for. Entities skipped as invisible, on a
	// hidden layer, or for NaN values are not logged.
	Verbose bool

	// Logger receives diagnostic output. A nil Logger discards it.
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}

// Context bundles the per-call mutable state the rendering passes thread
// through the emission call tree: extents, the in-block-definition mode
// switch, the base point of the block currently being emitted, and a guard
// against INSERT reference cycles. The source kept these as file-scope
// variables; a Context makes the same state explicit and
// re-entrant so two renders of two different documents never collide.
type Context struct {
	opts Options
	w    *fragmentWriter

	extents     model.Extents
	pageHeight  float64
	pageWidth   float64

	inBlockDefinition bool
	blockBase         model.Point3

	// visited is allocated by newContext but read by neither pass: the
	// extents pass keeps its own map in computeExtents, and the render pass
	// does not recurse into blocks (requireSymbol registers each block once).
	visited map[uint64]bool

	// symbols collects every block eligible to be a <defs> symbol and
	// actually referenced by at least one INSERT, keyed by absolute_ref, so
	// the driver can emit each exactly once.
	symbols map[uint64]*model.BlockHeader
	// symbolOrder preserves first-reference order for deterministic output.
	symbolOrder []uint64

	entityIndex int
}

func newContext(opts Options) *Context {
	return &Context{
		opts:    opts,
		visited: map[uint64]bool{},
		symbols: map[uint64]*model.BlockHeader{},
	}
}

// requireSymbol registers bh (keyed by absoluteRef) for emission in <defs>
// if it is eligible and has not already been registered.
func (c *Context) requireSymbol(absoluteRef uint64, bh *model.BlockHeader) {
	if !blockEligible(bh.Name) {
		return
	}
	if _, ok := c.symbols[absoluteRef]; ok {
		return
	}
	c.symbols[absoluteRef] = bh
	c.symbolOrder = append(c.symbolOrder, absoluteRef)
}

func (c *Context) nextIndex() int {
	i := c.entityIndex
	c.entityIndex++
	return i
}

// entityColor and layerOf are thin accessors kept as methods (rather than
// inlined field reads) so every emitter resolves color the same way.
func (c *Context) entityColor(base *model.EntityBase) model.ColorSpec { return base.Color }
func (c *Context) layerOf(base *model.EntityBase) *model.Layer        { return base.Layer }
