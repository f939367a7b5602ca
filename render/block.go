package render

import (
	"strconv"
	"strings"

	"github.com/RedRiverSoftware/dwg2svg/model"
)

// blockEligible reports whether bh may be registered as a reusable <defs>
// symbol. *Model_Space and every *Paper_Space variant are the document's
// own spaces, not reusable blocks, and are excluded case-insensitively.
func blockEligible(name string) bool {
	lower := strings.ToLower(name)
	if lower == "*model_space" {
		return false
	}
	if strings.HasPrefix(lower, "*paper_space") {
		return false
	}
	return true
}

// svgSymbolID turns a block's absolute_ref into a <defs> symbol id.
func svgSymbolID(absoluteRef uint64) string {
	return "symbol-" + strconv.FormatUint(absoluteRef, 10)
}

// escapeBlockName neutralizes "--" in a block name before it is dropped
// into an XML comment, where it would otherwise terminate the comment early.
func escapeBlockName(name string) string {
	return strings.ReplaceAll(name, "--", "__")
}

// emitBlockDefinition renders bh's entities inside a <g> wrapped for use as
// a <defs> symbol, in the block's raw coordinates: no viewport transform and
// no base-point offset (emitInsert folds the base point into the <use>
// transform).
func (c *Context) emitBlockDefinition(bh *model.BlockHeader) {
	prevInBlock := c.inBlockDefinition
	prevBase := c.blockBase
	c.inBlockDefinition = true
	c.blockBase = bh.BasePoint

	c.w.printf(`<g id="%s">`+"\n", svgSymbolID(bh.AbsoluteRef))
	c.w.comment(" block %s ", escapeBlockName(bh.Name))
	for _, e := range bh.Entities {
		c.emitEntity(e)
	}
	c.w.raw("</g>\n")

	c.inBlockDefinition = prevInBlock
	c.blockBase = prevBase
}
