package channel

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/kbukum/logtree/record"
)

// Writer is a channel that writes one plain-text line per record to an
// io.Writer. Lines look like:
//
//	2026-01-02T15:04:05Z [svc.http] WARNING: slow response (handler.go:42)
//
// The source location suffix appears only when the record carries one.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter creates a writer channel on out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Log writes the record as a single line.
func (w *Writer) Log(r record.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.UTC().Format("2006-01-02T15:04:05Z"))
	b.WriteString(" [")
	b.WriteString(r.Source)
	b.WriteString("] ")
	b.WriteString(strings.ToUpper(r.Level.String()))
	b.WriteString(": ")
	b.WriteString(r.Text)
	if r.Line != 0 {
		fmt.Fprintf(&b, " (%s:%d)", r.File, r.Line)
	}
	b.WriteByte('\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := io.WriteString(w.out, b.String())
	return err
}
