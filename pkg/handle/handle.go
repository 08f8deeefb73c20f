// Package handle provides a scoped wrapper around an open file: the
// wrapper owns the descriptor until it is closed or taken by a caller.
package handle

import (
	"fmt"
	"io"
	"os"
)

// Handle owns an open file tied to its own lifetime. Configure Path,
// call Open, then either read through the file returned by Take or let
// Close release the descriptor.
//
// Exactly one of Take and Close releases responsibility for the
// descriptor: after Take the caller owns the file and Close becomes a
// no-op.
type Handle struct {
	Path string    // file to open
	Diag io.Writer // sink for open diagnostics; os.Stderr when nil

	file *os.File
}

// Open acquires Path for combined reading and writing. On failure the
// handle is left not open, a single "unable to open" line naming the
// path is written to Diag, and the underlying error is returned
// wrapped (errors.Is against fs.ErrNotExist / fs.ErrPermission works).
func (h *Handle) Open() error {
	f, err := os.OpenFile(h.Path, os.O_RDWR, 0)
	if err != nil {
		fmt.Fprintf(h.diag(), "unable to open the file: %s\n", h.Path)
		return fmt.Errorf("open %s: %w", h.Path, err)
	}
	h.file = f
	return nil
}

// IsOpen reports whether the handle still owns an open file.
func (h *Handle) IsOpen() bool {
	return h.file != nil
}

// Take transfers ownership of the open file to the caller, who becomes
// responsible for closing it. The handle keeps nothing: a later Close
// is a no-op. Returns nil when the handle is not open.
func (h *Handle) Take() *os.File {
	f := h.file
	h.file = nil
	return f
}

// Close releases the file if the handle still owns it. Safe to call
// any number of times, after a failed Open, and after Take.
func (h *Handle) Close() error {
	if h.file == nil {
		return nil
	}
	f := h.file
	h.file = nil
	return f.Close()
}

func (h *Handle) diag() io.Writer {
	if h.Diag != nil {
		return h.Diag
	}
	return os.Stderr
}
