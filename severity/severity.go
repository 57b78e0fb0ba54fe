package severity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLevel is returned by Parse for an unrecognized symbolic level.
var ErrInvalidLevel = errors.New("invalid log level")

// Level is a numeric severity rank. Lower is more severe; 0 disables
// emission. The ordering is fixed for the lifetime of the process.
type Level int

const (
	// None disables all emission when set as a logger's level.
	None Level = iota
	// Fatal is the most severe rank.
	Fatal
	Critical
	Error
	Warning
	Notice
	// Information is the default level of the root logger.
	Information
	Debug
	// Trace is the least severe rank.
	Trace
)

var names = [...]string{
	None:        "none",
	Fatal:       "fatal",
	Critical:    "critical",
	Error:       "error",
	Warning:     "warning",
	Notice:      "notice",
	Information: "information",
	Debug:       "debug",
	Trace:       "trace",
}

// String returns the symbolic name of the level, or a numeric placeholder
// for an out-of-range value. It is meant for diagnostics.
func (l Level) String() string {
	if l < None || l > Trace {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return names[l]
}

// Valid reports whether l is within the defined scale.
func (l Level) Valid() bool {
	return l >= None && l <= Trace
}

// Parse converts a symbolic level name into its rank. Matching is
// case-insensitive. Unrecognized names fail with ErrInvalidLevel.
func Parse(s string) (Level, error) {
	lower := strings.ToLower(s)
	for l, name := range names {
		if lower == name {
			return Level(l), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}
