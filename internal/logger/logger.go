// Package logger wraps zerolog behind a small leveled API for the cyclo
// binary. Library packages (digraph, kahn) stay log-free; only the command
// layer speaks to a Logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Options configures a Logger.
type Options struct {
	// Level is one of zerolog's named levels: trace, debug, info, warn,
	// error, fatal, panic. Empty defaults to info.
	Level string

	// Pretty switches from JSON lines to zerolog's human-readable console
	// format. Meant for interactive terminals.
	Pretty bool

	// Writer receives all log output; defaults to os.Stderr.
	Writer io.Writer
}

// Logger is a thin leveled façade over zerolog. Construct with New; all
// methods are safe on a nil receiver, so optional logging call sites need
// no guards.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger, failing fast on an unknown level name.
func New(opts Options) (*Logger, error) {
	name := strings.ToLower(strings.TrimSpace(opts.Level))
	if name == "" {
		name = zerolog.LevelInfoValue
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("logger: parse level %q: %w", opts.Level, err)
	}

	var w io.Writer = os.Stderr
	if opts.Writer != nil {
		w = opts.Writer
	}
	if opts.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	return &Logger{zl: zl}, nil
}

// WithFields returns a child logger with fields bound to every event.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	if len(fields) == 0 {
		return l
	}
	ctx := l.zl.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	child := ctx.Logger()

	return &Logger{zl: child}
}

// WithErr returns a child logger with err bound to every event.
// A nil err returns the receiver unchanged.
func (l *Logger) WithErr(err error) *Logger {
	if l == nil || err == nil {
		return l
	}
	child := l.zl.With().Err(err).Logger()

	return &Logger{zl: child}
}

// Debug logs msg at debug level with optional field maps.
func (l *Logger) Debug(msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	emit(l.zl.Debug(), msg, fields)
}

// Info logs msg at info level with optional field maps.
func (l *Logger) Info(msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	emit(l.zl.Info(), msg, fields)
}

// Warn logs msg at warn level with optional field maps.
func (l *Logger) Warn(msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	emit(l.zl.Warn(), msg, fields)
}

// Error logs msg at error level with optional field maps.
func (l *Logger) Error(msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	emit(l.zl.Error(), msg, fields)
}

// emit attaches every field map to the event and fires it.
func emit(ev *zerolog.Event, msg string, fields []map[string]any) {
	for _, m := range fields {
		for k, v := range m {
			ev = ev.Interface(k, v)
		}
	}
	ev.Msg(msg)
}
