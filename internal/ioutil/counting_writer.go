// Package ioutil provides writer helpers used by URI renderers.
package ioutil

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter forwards writes to the wrapped writer and sums the written bytes.
// The first write error sticks: every later write is skipped and reports it again,
// so renderers may ignore intermediate errors and check [CountingWriter.Result] once.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// NewCountingWriter returns a writer that counts bytes written to w.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

func (cw *CountingWriter) do(fn func() (int, error)) (int, error) {
	if cw.err != nil {
		return 0, cw.err //errtrace:skip
	}
	n, err := fn()
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
	}
	return n, cw.err //errtrace:skip
}

// Write implements [io.Writer].
func (cw *CountingWriter) Write(p []byte) (int, error) {
	return cw.do(func() (int, error) { return cw.w.Write(p) }) //errtrace:skip
}

// WriteString writes the strings in order and returns the bytes written by this call.
func (cw *CountingWriter) WriteString(ss ...string) (int, error) {
	var total int
	for _, s := range ss {
		n, err := cw.do(func() (int, error) { return io.WriteString(cw.w, s) })
		total += n
		if err != nil {
			return total, err //errtrace:skip
		}
	}
	return total, nil
}

// Call passes the wrapped writer to a RenderTo-like function and counts what it wrote.
// The function is not called after a failed write.
func (cw *CountingWriter) Call(fn func(io.Writer) (int, error)) *CountingWriter {
	cw.do(func() (int, error) { return fn(cw.w) }) //nolint:errcheck
	return cw
}

// Result returns the total number of written bytes and the sticky error.
func (cw *CountingWriter) Result() (int, error) {
	return cw.num, cw.err //errtrace:skip
}

// Count returns the total number of written bytes.
func (cw *CountingWriter) Count() int { return cw.num }

var pool = sync.Pool{
	New: func() any { return new(CountingWriter) },
}

// GetCountingWriter takes a writer from the pool. Return it with [FreeCountingWriter].
func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := pool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

// FreeCountingWriter resets cw and puts it back to the pool.
func FreeCountingWriter(cw *CountingWriter) {
	*cw = CountingWriter{}
	pool.Put(cw)
}
