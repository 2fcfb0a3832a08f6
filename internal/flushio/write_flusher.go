package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is an io.Writer whose writes may be held until Flush.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// NewWriteFlusher returns w itself if it can already flush; in-memory
// buffers and io.Discard get a no-op Flush, anything else is wrapped in a
// bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if wf, is := w.(WriteFlusher); is {
		return wf
	}
	if w == io.Discard || isBuffer(w) {
		return nopFlusher{w}
	}
	return bufio.NewWriter(w)
}

// isBuffer matches types like bytes.Buffer and strings.Builder.
func isBuffer(w io.Writer) bool {
	type buffer interface {
		io.Writer
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	_, is := w.(buffer)
	return is
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// Close flushes wf, then closes the underlying writer if it has a Close
// method; the first error encountered is returned.
func Close(wf WriteFlusher, under io.Writer) error {
	err := wf.Flush()
	if cl, ok := under.(io.Closer); ok {
		if cerr := cl.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
