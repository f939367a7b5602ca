package render

import (
	"fmt"
	"io"
)

// fragmentWriter accumulates formatted XML/SVG fragments into an io.Writer.
// Every emitter writes through printf-style helpers that record the first
// error encountered and become no-ops afterward, so the many small
// per-entity writes in the entity renderer don't each need their own
// error check — the driver checks Err() once at the end.
type fragmentWriter struct {
	w   io.Writer
	err error
}

func newFragmentWriter(w io.Writer) *fragmentWriter {
	return &fragmentWriter{w: w}
}

// printf writes a formatted fragment. Once a write has failed, printf is a
// no-op so that callers can keep calling it unconditionally through an
// entire emission without checking err after every line.
func (fw *fragmentWriter) printf(format string, args ...any) {
	if fw.err != nil {
		return
	}
	_, fw.err = fmt.Fprintf(fw.w, format, args...)
}

// raw writes s verbatim, with the same sticky-error behavior as printf.
func (fw *fragmentWriter) raw(s string) {
	if fw.err != nil {
		return
	}
	_, fw.err = io.WriteString(fw.w, s)
}

// comment writes an SVG/XML comment fragment.
func (fw *fragmentWriter) comment(format string, args ...any) {
	fw.raw("<!-- ")
	fw.printf(format, args...)
	fw.raw(" -->\n")
}

// Err returns the first error encountered by any write so far, or nil.
func (fw *fragmentWriter) Err() error {
	return fw.err
}
