package render

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/RedRiverSoftware/dwg2svg/model"
)

// Stats summarizes one rendering pass. Emitted counts every entity
// dispatched to an emitter, in the active space and inside <defs> symbols,
// including entities that produced no output; Symbols counts the <defs>
// symbols written. Skipped is not filled in by RenderToWriter and is always
// zero.
type Stats struct {
	Emitted int
	Skipped int
	Symbols int
}

// svgGenVersion is the date-coded build identifier stamped into every
// output's data-gen-vers attribute. It names the renderer's release date
// rather than a render-time timestamp, so rendering the same document twice
// still produces byte-identical output.
const svgGenVersion = "dwg2svg-20260731"

func init() {
	// gob needs every concrete model.Entity implementation registered up
	// front since BlockHeader.Entities is stored as the interface type.
	gob.Register(&model.Line{})
	gob.Register(&model.Point{})
	gob.Register(&model.Circle{})
	gob.Register(&model.Arc{})
	gob.Register(&model.Ellipse{})
	gob.Register(&model.Solid{})
	gob.Register(&model.Face3D{})
	gob.Register(&model.Polyline2D{})
	gob.Register(&model.LWPolyline{})
	gob.Register(&model.Hatch{})
	gob.Register(&model.Text{})
	gob.Register(&model.AttDef{})
	gob.Register(&model.Insert{})
	gob.Register(&model.Image{})
	gob.Register(&model.XLine{})
	gob.Register(&model.Ray{})
}

// RenderToWriter renders doc's active space (paper space when it has
// entities and opts.MspaceOnly is not set, model space otherwise) to w as a
// complete SVG document. It returns ErrInvalidDWG if doc is nil.
func RenderToWriter(w io.Writer, doc *model.Document, opts Options) (Stats, error) {
	if doc == nil {
		return Stats{}, ErrInvalidDWG
	}

	c := newContext(opts)
	ext := computeExtents(doc, opts)
	c.extents = ext
	c.pageWidth = ext.Width()
	c.pageHeight = ext.Height()

	space := pickSpace(doc, opts.MspaceOnly)

	var body bytes.Buffer
	c.w = newFragmentWriter(&body)
	c.w.raw("<g>\n")
	if space != nil {
		for _, e := range space.Entities {
			c.emitEntity(e)
		}
	}
	c.w.raw("</g>\n")
	if err := c.w.Err(); err != nil {
		return Stats{}, fmt.Errorf("render: %w", err)
	}

	var defs bytes.Buffer
	defsWriter := newFragmentWriter(&defs)
	origWriter := c.w
	// Emitting a symbol can register further symbols (nested INSERTs), so
	// the length of symbolOrder is re-read on every iteration.
	for i := 0; i < len(c.symbolOrder); i++ {
		c.w = defsWriter
		c.emitBlockDefinition(c.symbols[c.symbolOrder[i]])
	}
	c.w = origWriter
	if err := defsWriter.Err(); err != nil {
		return Stats{}, fmt.Errorf("render: %w", err)
	}

	fw := newFragmentWriter(w)
	fw.raw(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n")
	fw.printf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" `+
		`version="1.1" baseProfile="basic" width="100%%" height="100%%" viewBox="0 0 %f %f" data-gen-vers="%s">`+"\n",
		c.pageWidth, c.pageHeight, svgGenVersion)
	fw.raw(body.String())
	if defs.Len() > 0 {
		fw.raw("<defs>\n")
		fw.raw(defs.String())
		fw.raw("</defs>\n")
	}
	fw.raw("</svg>\n")
	if err := fw.Err(); err != nil {
		return Stats{}, fmt.Errorf("render: %w", err)
	}

	return Stats{Emitted: c.entityIndex, Symbols: len(c.symbolOrder)}, nil
}

// RenderData renders an already-loaded model.Document to a byte slice, the
// Go analogue of the source's data_to_svg: no file I/O, no separate
// free_svg call since the returned slice is garbage collected normally.
func RenderData(doc *model.Document, opts Options) ([]byte, Stats, error) {
	var buf bytes.Buffer
	stats, err := RenderToWriter(&buf, doc, opts)
	if err != nil {
		return nil, Stats{}, err
	}
	return buf.Bytes(), stats, nil
}

// RenderFile loads a gob-encoded model.Document from path and renders it,
// the Go analogue of the source's to_svg. The renderer never parses DWG
// binary itself (model is an accessor surface, not a parser per its own
// package doc); gob is the stdlib's natural round-trip format for a
// document already expressed as Go structs, used here only as the
// file-based entry point's transport.
func RenderFile(path string, opts Options) ([]byte, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	var doc model.Document
	if err := gob.NewDecoder(f).Decode(&doc); err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return RenderData(&doc, opts)
}

// WriteSVGFile renders dwgPath to svgPath, the Go analogue of the source's
// write_svg.
func WriteSVGFile(dwgPath, svgPath string, opts Options) (Stats, error) {
	data, stats, err := RenderFile(dwgPath, opts)
	if err != nil {
		return Stats{}, err
	}
	if err := os.WriteFile(svgPath, data, 0o644); err != nil {
		return Stats{}, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return stats, nil
}
