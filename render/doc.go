// Package render turns a read-only model.Document into a single
// self-contained SVG document: entity dispatch, OCS/WCS/viewport coordinate
// transforms, block-reference instancing via <defs>/<use>, and the
// per-entity-kind translation rules (arcs, polylines with bulges, hatches,
// text with font mapping and alignment, image placement).
//
// The renderer borrows the model read-only; all per-call state (extents,
// in-block-definition mode, the open writer) lives in a Context created
// fresh for each call, so multiple renders — even concurrent ones, against
// different documents — never share mutable state.
package render
