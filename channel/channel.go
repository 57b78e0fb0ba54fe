package channel

import (
	"github.com/kbukum/logtree/record"
)

// Channel accepts a log record and delivers it to its destination. Delivery
// is fire-and-forget from the logger's point of view; a channel that fails
// reports the error to its caller but nothing in logtree retries.
//
// Implementations must be safe for concurrent use: a single channel is
// routinely shared by many loggers.
type Channel interface {
	Log(record.Record) error
}

// Func adapts an ordinary function to the Channel interface.
type Func func(record.Record) error

// Log calls f(r).
func (f Func) Log(r record.Record) error { return f(r) }

// Null is a channel that discards every record.
type Null struct{}

// Log discards the record.
func (Null) Log(record.Record) error { return nil }
