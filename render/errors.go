package render

import "errors"

// ErrInvalidDWG is returned when the model passed to a rendering entry
// point is nil or otherwise unusable (the Go analogue of the original
// INVALIDDWG error code).
var ErrInvalidDWG = errors.New("render: invalid or missing document")

// ErrIO is returned when a file-based entry point cannot open its input or
// output path (the Go analogue of IOERROR). Allocation failure (OUTOFMEM)
// has no Go equivalent: Go's allocator panics via the runtime rather than
// returning a recoverable error, so RenderToWriter simply lets that panic
// propagate instead of inventing a sentinel for it.
var ErrIO = errors.New("render: I/O failure")
