// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// HandlerType represents the type of logging handler.
type HandlerType string

const (
	// JSONHandler outputs structured JSON logs.
	JSONHandler HandlerType = "json"
	// TextHandler outputs key=value text logs.
	TextHandler HandlerType = "text"
	// ConsoleHandler outputs human-readable colored logs.
	ConsoleHandler HandlerType = "console"
)

// Level represents log level.
type Level = slog.Level

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// redactedKeys lists attribute keys whose values never reach the output.
var redactedKeys = map[string]struct{}{
	"password":      {},
	"token":         {},
	"secret":        {},
	"api_key":       {},
	"authorization": {},
}

// Logger wraps a [slog.Logger] built from functional options.
type Logger struct {
	handlerType HandlerType
	output      io.Writer
	level       *slog.LevelVar
	serviceName string
	addSource   bool
	replaceAttr func(groups []string, a slog.Attr) slog.Attr

	logger *slog.Logger
}

// Option is a functional option for configuring the logger.
type Option func(*Logger)

// WithHandlerType sets the output format.
func WithHandlerType(t HandlerType) Option {
	return func(l *Logger) { l.handlerType = t }
}

// WithJSONHandler selects JSON output. This is the default.
func WithJSONHandler() Option {
	return WithHandlerType(JSONHandler)
}

// WithTextHandler selects slog's key=value output.
func WithTextHandler() Option {
	return WithHandlerType(TextHandler)
}

// WithConsoleHandler selects colored output for terminals.
func WithConsoleHandler() Option {
	return WithHandlerType(ConsoleHandler)
}

// WithOutput sets the destination writer. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) { l.output = w }
}

// WithLevel sets the minimum level.
func WithLevel(level Level) Option {
	return func(l *Logger) { l.level.Set(level) }
}

// WithServiceName adds a "service" attribute to every entry.
func WithServiceName(name string) Option {
	return func(l *Logger) { l.serviceName = name }
}

// WithSource includes the source location in every entry.
func WithSource(enabled bool) Option {
	return func(l *Logger) { l.addSource = enabled }
}

// WithReplaceAttr installs an attribute rewriter that runs after redaction.
func WithReplaceAttr(fn func(groups []string, a slog.Attr) slog.Attr) Option {
	return func(l *Logger) { l.replaceAttr = fn }
}

// New creates a logger.
func New(opts ...Option) (*Logger, error) {
	l := &Logger{
		handlerType: JSONHandler,
		output:      os.Stderr,
		level:       new(slog.LevelVar),
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       l.level,
		AddSource:   l.addSource,
		ReplaceAttr: l.buildReplaceAttr(),
	}

	var handler slog.Handler
	switch l.handlerType {
	case JSONHandler:
		handler = slog.NewJSONHandler(l.output, handlerOpts)
	case TextHandler:
		handler = slog.NewTextHandler(l.output, handlerOpts)
	case ConsoleHandler:
		handler = newConsoleHandler(l.output, handlerOpts)
	}

	l.logger = slog.New(handler)
	if l.serviceName != "" {
		l.logger = l.logger.With("service", l.serviceName)
	}
	return l, nil
}

// MustNew is like [New] but panics on error.
func MustNew(opts ...Option) *Logger {
	l, err := New(opts...)
	if err != nil {
		panic("logging initialization failed: " + err.Error())
	}
	return l
}

// Validate checks the configuration.
func (l *Logger) Validate() error {
	if l.output == nil {
		return errors.New("output writer cannot be nil")
	}
	switch l.handlerType {
	case JSONHandler, TextHandler, ConsoleHandler:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidHandler, l.handlerType)
	}
	return nil
}

func (l *Logger) buildReplaceAttr() func(groups []string, a slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if _, ok := redactedKeys[strings.ToLower(a.Key)]; ok {
			return slog.String(a.Key, "***REDACTED***")
		}
		if l.replaceAttr != nil {
			return l.replaceAttr(groups, a)
		}
		return a
	}
}

// Slog returns the underlying [slog.Logger].
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// With returns a slog logger carrying additional attributes.
func (l *Logger) With(args ...any) *slog.Logger {
	return l.logger.With(args...)
}

// Debug logs at [LevelDebug].
func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

// Info logs at [LevelInfo].
func (l *Logger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

// Warn logs at [LevelWarn].
func (l *Logger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

// Error logs at [LevelError].
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// SetLevel changes the minimum level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(level)
}

// Level returns the current minimum level.
func (l *Logger) Level() Level {
	return l.level.Level()
}

// ParseLevel converts a level name such as "debug" or "WARN" into a [Level].
func ParseLevel(s string) (Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return level, nil
}

// ParseHandlerType converts a format name into a [HandlerType].
func ParseHandlerType(s string) (HandlerType, error) {
	t := HandlerType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case JSONHandler, TextHandler, ConsoleHandler:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidHandler, s)
}
