// Package model is the read-only accessor surface a DWG object library
// exposes to a renderer: entities organized into model-space, paper-space,
// and block definitions, plus the supporting tables (layers, styles, image
// defs) the entities reference.
//
// model does not parse DWG files — that is explicitly out of scope. It only
// defines the in-memory shapes the renderer in package render is typed
// against, along with a handful of builder helpers for constructing a
// Document by hand (for tests, or for callers who already have geometry in
// Go and want to skip the file format entirely).
package model
