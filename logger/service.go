// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrBackendBoot is returned when the backend logger cannot be constructed.
var ErrBackendBoot = errors.New("logging backend boot error")

// Service owns the logging configuration and the backend logger built from
// it. The zero value is not usable: construct instances with New.
//
// Calling a leveled method before Boot panics with a nil pointer
// dereference. That is deliberate: a line logged before the backend exists
// is a programming error, not a condition to paper over.
type Service struct {
	config  Config
	console io.Writer

	// log stays nil until the first successful Boot and is never replaced
	// or torn down afterwards.
	log *logrus.Logger
}

// New returns a Service holding config, with the console stream bound to the
// process standard output. No file is opened and no backend is constructed
// until Boot is called.
func New(config Config) *Service {
	return NewWithConsole(config, os.Stdout)
}

// NewWithConsole returns a Service like New does, with the console stream
// redirected to writer. Used by tests and by embedders that own their output
// streams.
func NewWithConsole(config Config, writer io.Writer) *Service {
	return &Service{
		config:  config,
		console: writer,
	}
}

// Boot constructs the backend logger: minimum severity INFO, one line per
// entry in the LineFormatter layout, written to both the console stream and
// the append-only file at Config.LogPath. The first call wins: every later
// call returns nil without touching the backend. Opening the log file is the
// only operation that can fail, and its error is returned wrapped in
// ErrBackendBoot without retry.
func (s *Service) Boot() error {
	if s.log != nil {
		return nil
	}

	file, err := os.OpenFile(s.config.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendBoot, err)
	}

	backend := logrus.New()
	backend.SetLevel(minimumSeverity.backendLevel())
	backend.SetFormatter(&LineFormatter{})
	backend.SetOutput(io.MultiWriter(s.console, file))

	s.log = backend
	return nil
}

// Logger returns the backend logger handle: nil before the first successful
// Boot, the same instance on every call afterwards.
func (s *Service) Logger() *logrus.Logger {
	return s.log
}

// Log forwards args, gathered into a single slice, to the backend at the
// given severity.
func (s *Service) Log(level Level, args ...any) {
	s.emit(level, args)
}

// Info logs args at INFO severity.
func (s *Service) Info(args ...any) {
	s.emit(INFO, args)
}

// Warn logs args at WARN severity.
func (s *Service) Warn(args ...any) {
	s.emit(WARN, args)
}

// Error logs args at ERROR severity.
func (s *Service) Error(args ...any) {
	s.emit(ERROR, args)
}

// Debug logs args at DEBUG severity, below the fixed minimum: the backend
// accepts and discards the line.
func (s *Service) Debug(args ...any) {
	s.emit(DEBUG, args)
}

// Verbose logs args at VERBOSE severity, below the fixed minimum: the
// backend accepts and discards the line.
func (s *Service) Verbose(args ...any) {
	s.emit(VERBOSE, args)
}

// Help logs args at HELP severity.
func (s *Service) Help(args ...any) {
	s.emit(HELP, args)
}

// Data logs args at DATA severity.
func (s *Service) Data(args ...any) {
	s.emit(DATA, args)
}

// Console writes args, gathered into a single slice, directly to the console
// stream: no timestamp, no severity, no file copy. It works the same whether
// or not Boot was ever called.
func (s *Service) Console(args ...any) {
	fmt.Fprintln(s.console, args)
}

// Exception logs err at ERROR severity as the pair [message, stack]. The
// stack element is the error's own trace when it carries one and nil
// otherwise, forwarded as is in both cases.
func (s *Service) Exception(err error) {
	var stack any
	if tracer, ok := err.(stackTracer); ok {
		stack = tracer.StackTrace()
	}

	s.emit(ERROR, []any{err.Error(), stack})
}

// stackTracer is implemented by errors created with github.com/pkg/errors.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// emit forwards args as a single value to the backend, tagging the entry
// with the facade severity so the formatter can render names the backend
// does not know about.
func (s *Service) emit(level Level, args []any) {
	s.log.WithField(severityKey, level).Log(level.backendLevel(), args)
}
