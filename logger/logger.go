// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package logger provides the leveled logging capability handed to the
// bootstrap, backed by logrus.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Level is a logging verbosity tier
type Level int

// Tiers from the most to the least severe
const (
	Fatal Level = iota + 1
	Error
	Warn
	Info
	Verbose
	Debug
)

var levelNames = map[Level]string{
	Fatal:   "fatal",
	Error:   "error",
	Warn:    "warn",
	Info:    "info",
	Verbose: "verbose",
	Debug:   "debug",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLevel parses a tier name, or its number from 1 (fatal) to 6 (debug).
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for level, name := range levelNames {
		if s == name || (len(s) == 1 && s[0] == byte('0'+level)) {
			return level, nil
		}
	}
	if s == "warning" {
		return Warn, nil
	}
	return 0, errors.Errorf("unknown log level %q", s)
}

func (l Level) logrus() logrus.Level {
	switch l {
	case Fatal:
		return logrus.FatalLevel
	case Error:
		return logrus.ErrorLevel
	case Warn:
		return logrus.WarnLevel
	case Info:
		return logrus.InfoLevel
	case Verbose:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configure a Logger once at process start
type Options struct {
	// Output defaults to stderr.
	Output io.Writer
	// Level is the least severe tier written. Defaults to Verbose.
	Level  Level
	Format string
}

// Logger writes leveled lines to logrus. Fatalf never exits the process.
type Logger struct {
	entry *logrus.Entry
}

// New creates a Logger
func New(opts Options) (*Logger, error) {
	l := logrus.New()

	l.Out = os.Stderr
	if opts.Output != nil {
		l.Out = opts.Output
	}

	if opts.Level == 0 {
		opts.Level = Verbose
	}
	l.SetLevel(opts.Level.logrus())

	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	case FormatJSON:
		l.Formatter = &logrus.JSONFormatter{}
	default:
		return nil, errors.Errorf("unknown log format %q", opts.Format)
	}

	return &Logger{entry: logrus.NewEntry(l)}, nil
}

// WithComponent returns a Logger tagging every line with the component name
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{entry: l.entry.WithField("component", name)}
}

// Fatalf logs at fatal level
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.entry.Logf(logrus.FatalLevel, format, args...)
}

// Errorf logs at error level
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Logf(logrus.ErrorLevel, format, args...)
}

// Warnf logs at warn level
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry.Logf(logrus.WarnLevel, format, args...)
}

// Infof logs at info level
func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry.Logf(logrus.InfoLevel, format, args...)
}

// Verbosef logs at verbose level
func (l *Logger) Verbosef(format string, args ...interface{}) {
	l.entry.Logf(logrus.DebugLevel, format, args...)
}

// Debugf logs at debug level
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.entry.Logf(logrus.TraceLevel, format, args...)
}
