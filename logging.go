package msgalloc

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", l)
	}
}

// LogEntry is a single structured log record. Category names the kind of
// event that produced it ("evict", "drop", "relocate", "tx").
type LogEntry struct {
	Level     LogLevel
	Category  string
	Message   string
	Err       error
	Container Container
	Offset    Offset
	Timestamp time.Time
}

// Logger is the structured-logging collaborator. An Allocator never logs
// directly to stdout/stderr — every diagnostic passes through this
// interface, so embedding code can fan it into zerolog, drop it, or both
// (see LogifaceLogger, which adapts this interface onto
// github.com/joeycumines/logiface).
type Logger interface {
	Log(entry LogEntry)
	IsEnabled(level LogLevel) bool
}

// DefaultLogger is a minimal Logger writing pretty lines to an *os.File,
// suitable for local development and the test suite.
type DefaultLogger struct {
	level LogLevel
	mu    sync.Mutex
	Out   *os.File
}

// NewDefaultLogger constructs a DefaultLogger writing to os.Stderr at the
// given minimum level.
func NewDefaultLogger(level LogLevel) *DefaultLogger {
	return &DefaultLogger{level: level, Out: os.Stderr}
}

func (l *DefaultLogger) IsEnabled(level LogLevel) bool { return level >= l.level }

func (l *DefaultLogger) Log(entry LogEntry) {
	if !l.IsEnabled(entry.Level) {
		return
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.Out, "%s %s [%-9s] %s", entry.Timestamp.Format("15:04:05.000"), entry.Level, entry.Category, entry.Message)
	if entry.Container != InvalidContainer {
		fmt.Fprintf(l.Out, " container=%d", entry.Container)
	}
	fmt.Fprintf(l.Out, " offset=%d", entry.Offset)
	if entry.Err != nil {
		fmt.Fprintf(l.Out, " err=%v", entry.Err)
	}
	fmt.Fprintln(l.Out)
}

// NoopLogger discards every entry without formatting it, so IsEnabled-gated
// callers pay no cost on the hot ISR path.
type NoopLogger struct{}

func (NoopLogger) Log(LogEntry)          {}
func (NoopLogger) IsEnabled(LogLevel) bool { return false }
