package logger

import (
	"sync/atomic"

	"github.com/kbukum/logtree/channel"
	"github.com/kbukum/logtree/record"
	"github.com/kbukum/logtree/severity"
)

// Logger is a named node in the logger hierarchy. It holds a mutable level
// threshold and a mutable, shared channel reference; the name is fixed at
// creation. Level and channel are read atomically on the emit path, so a
// logger may be used concurrently with SetLevel/SetChannel on the same node.
//
// Loggers are created and owned by a Registry. Do not construct them
// directly.
type Logger struct {
	name  string
	level atomic.Int32
	ch    atomic.Pointer[chanHolder]
}

// chanHolder boxes the channel interface so it can sit behind an
// atomic.Pointer. A nil pointer means no channel is attached.
type chanHolder struct {
	ch channel.Channel
}

func newLogger(name string, ch channel.Channel, level severity.Level) *Logger {
	l := &Logger{name: name}
	l.level.Store(int32(level))
	l.SetChannel(ch)
	return l
}

// Name returns the logger's name. It is set as the record source on every
// message the logger emits.
func (l *Logger) Name() string { return l.name }

// Level returns the current level threshold.
func (l *Logger) Level() severity.Level {
	return severity.Level(l.level.Load())
}

// SetLevel sets the level threshold. severity.None turns the logger off.
func (l *Logger) SetLevel(level severity.Level) {
	l.level.Store(int32(level))
}

// SetLevelName sets the level threshold from a symbolic name. It fails with
// severity.ErrInvalidLevel for unrecognized names.
func (l *Logger) SetLevelName(name string) error {
	level, err := severity.Parse(name)
	if err != nil {
		return err
	}
	l.SetLevel(level)
	return nil
}

// Channel returns the attached channel, or nil if none is attached.
func (l *Logger) Channel() channel.Channel {
	if h := l.ch.Load(); h != nil {
		return h.ch
	}
	return nil
}

// SetChannel attaches ch to the logger. A nil channel detaches the current
// one; the logger then drops everything it would emit.
func (l *Logger) SetChannel(ch channel.Channel) {
	if ch == nil {
		l.ch.Store(nil)
		return
	}
	l.ch.Store(&chanHolder{ch: ch})
}

// Is reports whether messages of the given severity would pass the logger's
// threshold. severity.None is never enabled.
func (l *Logger) Is(level severity.Level) bool {
	return level > severity.None && level <= l.Level()
}

// FatalEnabled reports whether the level is at least severity.Fatal.
func (l *Logger) FatalEnabled() bool { return l.Is(severity.Fatal) }

// CriticalEnabled reports whether the level is at least severity.Critical.
func (l *Logger) CriticalEnabled() bool { return l.Is(severity.Critical) }

// ErrorEnabled reports whether the level is at least severity.Error.
func (l *Logger) ErrorEnabled() bool { return l.Is(severity.Error) }

// WarningEnabled reports whether the level is at least severity.Warning.
func (l *Logger) WarningEnabled() bool { return l.Is(severity.Warning) }

// NoticeEnabled reports whether the level is at least severity.Notice.
func (l *Logger) NoticeEnabled() bool { return l.Is(severity.Notice) }

// InformationEnabled reports whether the level is at least
// severity.Information.
func (l *Logger) InformationEnabled() bool { return l.Is(severity.Information) }

// DebugEnabled reports whether the level is at least severity.Debug.
func (l *Logger) DebugEnabled() bool { return l.Is(severity.Debug) }

// TraceEnabled reports whether the level is at least severity.Trace.
func (l *Logger) TraceEnabled() bool { return l.Is(severity.Trace) }

// Log emits text at the given severity. It is a no-op when the severity does
// not pass the threshold or no channel is attached. Delivery errors from the
// channel are discarded; delivery is fire-and-forget.
func (l *Logger) Log(level severity.Level, text string) {
	if !l.Is(level) {
		return
	}
	if h := l.ch.Load(); h != nil {
		_ = h.ch.Log(record.New(l.name, level, text))
	}
}

// LogAt is Log with an explicit source location attached to the record.
func (l *Logger) LogAt(level severity.Level, text, file string, line int) {
	if !l.Is(level) {
		return
	}
	if h := l.ch.Load(); h != nil {
		_ = h.ch.Log(record.NewAt(l.name, level, text, file, line))
	}
}

// Fatal emits text at severity.Fatal.
func (l *Logger) Fatal(text string) { l.Log(severity.Fatal, text) }

// Critical emits text at severity.Critical.
func (l *Logger) Critical(text string) { l.Log(severity.Critical, text) }

// Error emits text at severity.Error.
func (l *Logger) Error(text string) { l.Log(severity.Error, text) }

// Warning emits text at severity.Warning.
func (l *Logger) Warning(text string) { l.Log(severity.Warning, text) }

// Notice emits text at severity.Notice.
func (l *Logger) Notice(text string) { l.Log(severity.Notice, text) }

// Information emits text at severity.Information.
func (l *Logger) Information(text string) { l.Log(severity.Information, text) }

// Debug emits text at severity.Debug.
func (l *Logger) Debug(text string) { l.Log(severity.Debug, text) }

// Trace emits text at severity.Trace.
func (l *Logger) Trace(text string) { l.Log(severity.Trace, text) }

// Dump emits text followed by a canonical hex+ASCII dump of data, at the
// given severity. Like Log, it is a no-op below the threshold.
func (l *Logger) Dump(text string, data []byte, level severity.Level) {
	if !l.Is(level) {
		return
	}
	if h := l.ch.Load(); h != nil {
		_ = h.ch.Log(record.New(l.name, level, FormatDump(text, data)))
	}
}
