// Package logger is the zerolog front end used by the swatch CLI.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	// Writer defaults to stderr so command output on stdout stays machine readable.
	Writer io.Writer
	// Component is stamped on every entry when set, usually the command name.
	Component string
}

func (o Options) level() (zerolog.Level, error) {
	if o.Level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(o.Level))
}

func (o Options) output() io.Writer {
	w := o.Writer
	if w == nil {
		w = os.Stderr
	}
	if !o.HumanReadable {
		return w
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
}

// Logger is a nil-safe handle around a zerolog.Logger.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger from opts. Unknown level names are rejected.
func New(opts Options) (*Logger, error) {
	level, err := opts.level()
	if err != nil {
		return nil, err
	}

	ctx := zerolog.New(opts.output()).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

// Nop returns a logger that discards every entry.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

func (l *Logger) derive(fn func(zerolog.Context) zerolog.Context) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: fn(l.base.With()).Logger()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	return l.derive(func(ctx zerolog.Context) zerolog.Context {
		return ctx.Fields(fields)
	})
}

// With returns a derived logger carrying a single string field.
func (l *Logger) With(key, value string) *Logger {
	return l.derive(func(ctx zerolog.Context) zerolog.Context {
		return ctx.Str(key, value)
	})
}

func (l *Logger) event(level zerolog.Level) *zerolog.Event {
	if l == nil {
		return nil
	}
	return l.base.WithLevel(level)
}

// Debug logs msg at debug level.
func (l *Logger) Debug(msg string) { l.event(zerolog.DebugLevel).Msg(msg) }

// Info logs msg at info level.
func (l *Logger) Info(msg string) { l.event(zerolog.InfoLevel).Msg(msg) }

// Warn logs msg at warn level.
func (l *Logger) Warn(msg string) { l.event(zerolog.WarnLevel).Msg(msg) }

// Error logs msg at error level with err attached when non-nil.
func (l *Logger) Error(err error, msg string) {
	l.event(zerolog.ErrorLevel).Err(err).Msg(msg)
}
