package msgalloc

import (
	"github.com/joeycumines/izerolog"
	"github.com/joeycumines/logiface"
	"github.com/rs/zerolog"
)

// LogifaceLogger adapts a github.com/joeycumines/logiface logger onto the
// Logger interface, so callers who already standardize on logiface (backed
// by zerolog, logrus, slog, or any other supported sink) can plug it
// straight into WithLogger instead of writing their own adapter.
type LogifaceLogger struct {
	L *logiface.Logger[logiface.Event]
}

var _ Logger = LogifaceLogger{}

// NewZerologLogger builds a LogifaceLogger backed by rs/zerolog, the
// concrete wiring this module ships out of the box (via
// github.com/joeycumines/izerolog).
func NewZerologLogger(z zerolog.Logger, level LogLevel) LogifaceLogger {
	root := izerolog.L.New(izerolog.L.WithZerolog(z), izerolog.L.WithLevel(logifaceLevel(level))).Logger()
	return LogifaceLogger{L: root}
}

func (l LogifaceLogger) IsEnabled(level LogLevel) bool {
	return l.L != nil && l.L.Level() >= logifaceLevel(level)
}

func (l LogifaceLogger) Log(entry LogEntry) {
	if l.L == nil {
		return
	}
	b := l.L.Build(logifaceLevel(entry.Level))
	if b == nil || !b.Enabled() {
		return
	}
	b = b.Str("category", entry.Category)
	if entry.Container != InvalidContainer {
		b = b.Int("container", int(entry.Container))
	}
	b = b.Int("offset", int(entry.Offset))
	if entry.Err != nil {
		b = b.Err(entry.Err)
	}
	b.Log(entry.Message)
}

func logifaceLevel(level LogLevel) logiface.Level {
	switch level {
	case LevelDebug:
		return logiface.LevelDebug
	case LevelInfo:
		return logiface.LevelInformational
	case LevelWarn:
		return logiface.LevelWarning
	case LevelError:
		return logiface.LevelError
	default:
		return logiface.LevelInformational
	}
}
