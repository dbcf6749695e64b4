package render

import (
	"io"
	"strings"
)

// streamDriver owns the output sink and groups emitted fragments into
// chunks at well-defined boundaries. A chunk is flushed to the sink only
// when a boundary is crossed and the accumulated buffer is non-empty.
//
// Writing to the sink is where back-pressure happens: when the sink is an
// io.PipeWriter, Write blocks until a reader drains it, pausing the
// walker until the consumer catches up, with a goroutine standing in for
// a hand-rolled trampoline.
type streamDriver struct {
	buf strings.Builder
	w   io.Writer
	err error
}

func newStreamDriver(w io.Writer) *streamDriver {
	return &streamDriver{w: w}
}

// emit appends a fragment to the pending chunk. It never touches the
// sink directly; only boundary and finish do.
func (d *streamDriver) emit(s string) {
	if s == "" {
		return
	}
	d.buf.WriteString(s)
}

// boundary flushes the pending chunk to the sink if non-empty and resets
// the buffer. Returns the first error encountered (sticky: once set,
// further calls are no-ops that keep returning it).
func (d *streamDriver) boundary() error {
	if d.err != nil {
		return d.err
	}
	if d.buf.Len() == 0 {
		return nil
	}
	chunk := d.buf.String()
	d.buf.Reset()
	if _, err := d.w.Write([]byte(chunk)); err != nil {
		d.err = sinkError(err)
	}
	return d.err
}

// finish performs the final conditional flush and returns any error
// observed over the course of the walk.
func (d *streamDriver) finish() error {
	if err := d.boundary(); err != nil {
		return err
	}
	return d.err
}
