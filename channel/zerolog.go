package channel

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kbukum/logtree/record"
	"github.com/kbukum/logtree/severity"
)

// zerologLevels maps severity ranks onto zerolog levels. Critical has no
// direct zerolog equivalent and is reported as fatal; zerolog's WithLevel
// does not terminate the process, so this is purely a labeling choice.
var zerologLevels = [...]zerolog.Level{
	severity.Fatal:       zerolog.FatalLevel,
	severity.Critical:    zerolog.FatalLevel,
	severity.Error:       zerolog.ErrorLevel,
	severity.Warning:     zerolog.WarnLevel,
	severity.Notice:      zerolog.InfoLevel,
	severity.Information: zerolog.InfoLevel,
	severity.Debug:       zerolog.DebugLevel,
	severity.Trace:       zerolog.TraceLevel,
}

// Zerolog bridges records into a zerolog.Logger. Level filtering has already
// happened in the logger by the time a record arrives here, so the wrapped
// zerolog logger should be constructed to pass everything through (NewJSON
// and NewConsole take care of that).
type Zerolog struct {
	zl zerolog.Logger
}

// NewZerolog wraps an existing zerolog.Logger as a channel.
func NewZerolog(zl zerolog.Logger) *Zerolog {
	return &Zerolog{zl: zl}
}

// NewJSON creates a zerolog channel emitting structured JSON lines to out.
func NewJSON(out io.Writer) *Zerolog {
	return &Zerolog{zl: zerolog.New(out).Level(zerolog.TraceLevel).With().Timestamp().Logger()}
}

// NewConsole creates a zerolog channel with human-readable console output.
func NewConsole(out io.Writer, noColor bool) *Zerolog {
	cw := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
	}
	return &Zerolog{zl: zerolog.New(cw).Level(zerolog.TraceLevel).With().Timestamp().Logger()}
}

// Log forwards the record to the wrapped zerolog logger. The logtree source
// name and severity are carried as structured fields.
func (z *Zerolog) Log(r record.Record) error {
	ev := z.zl.WithLevel(zerologLevels[r.Level])
	ev.Str("source", r.Source)
	ev.Str("severity", strings.ToUpper(r.Level.String()))
	if r.Line != 0 {
		ev.Str("caller", fmt.Sprintf("%s:%d", r.File, r.Line))
	}
	ev.Msg(r.Text)
	return nil
}
