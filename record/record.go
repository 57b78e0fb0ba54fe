package record

import (
	"time"

	"github.com/kbukum/logtree/severity"
)

// Record is a single log message together with its metadata. Source is the
// name of the logger that produced it. File and Line are optional; a zero
// Line means no source location was captured.
type Record struct {
	Source string
	Level  severity.Level
	Text   string
	File   string
	Line   int
	Time   time.Time
}

// New builds a record with the current time and no source location.
func New(source string, level severity.Level, text string) Record {
	return Record{
		Source: source,
		Level:  level,
		Text:   text,
		Time:   time.Now(),
	}
}

// NewAt builds a record with the current time and an explicit source
// location.
func NewAt(source string, level severity.Level, text, file string, line int) Record {
	r := New(source, level, text)
	r.File = file
	r.Line = line
	return r
}
