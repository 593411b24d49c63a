// Copyright the Vigil contributors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package options

import (
	"io"
	"log"
	"os"
)

// LogLevelKind is the verbosity of a LogGroup.
type LogLevelKind int

const (
	// ErrLevel=1 - the minimum level of logging.
	ErrLevel LogLevelKind = iota + 1

	// WarnLevel=2 - the level for logging warnings, and errors
	WarnLevel

	// InfoLevel=3 - the level for logging high-level information, results
	InfoLevel

	// DebugLevel=4 - the level for debugging information
	DebugLevel

	// TraceLevel=5 - the level for tracing, only usable on small test programs
	TraceLevel
)

// A LogGroup gates a set of prefixed loggers on the session's log level.
type LogGroup struct {
	level LogLevelKind
	trace *log.Logger
	debug *log.Logger
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
}

// NewLogGroup returns a log group configured to the log level stored in the
// session's options.
func NewLogGroup(o *AnalyzerOptions) *LogGroup {
	return &LogGroup{
		level: LogLevelKind(o.LogLevel()),
		trace: log.New(os.Stderr, "[TRACE] ", log.LstdFlags),
		debug: log.New(os.Stderr, "[DEBUG] ", log.LstdFlags),
		info:  log.New(os.Stderr, "[INFO] ", log.LstdFlags),
		warn:  log.New(os.Stderr, "[WARN] ", log.LstdFlags),
		err:   log.New(os.Stderr, "[ERROR] ", log.LstdFlags),
	}
}

// SetAllOutput sets all the output writers to the writer provided.
func (l *LogGroup) SetAllOutput(w io.Writer) {
	l.trace.SetOutput(w)
	l.debug.SetOutput(w)
	l.info.SetOutput(w)
	l.warn.SetOutput(w)
	l.err.SetOutput(w)
}

// SetAllFlags sets the flags of all loggers in the group.
func (l *LogGroup) SetAllFlags(x int) {
	l.trace.SetFlags(x)
	l.debug.SetFlags(x)
	l.info.SetFlags(x)
	l.warn.SetFlags(x)
	l.err.SetFlags(x)
}

// Tracef prints to the trace logger. Arguments are handled in the manner of Printf.
func (l *LogGroup) Tracef(format string, v ...any) {
	if l.level >= TraceLevel {
		l.trace.Printf(format, v...)
	}
}

// Debugf prints to the debug logger. Arguments are handled in the manner of Printf.
func (l *LogGroup) Debugf(format string, v ...any) {
	if l.level >= DebugLevel {
		l.debug.Printf(format, v...)
	}
}

// Infof prints to the info logger. Arguments are handled in the manner of Printf.
func (l *LogGroup) Infof(format string, v ...any) {
	if l.level >= InfoLevel {
		l.info.Printf(format, v...)
	}
}

// Warnf prints to the warning logger. Arguments are handled in the manner of Printf.
func (l *LogGroup) Warnf(format string, v ...any) {
	if l.level >= WarnLevel {
		l.warn.Printf(format, v...)
	}
}

// Errorf prints to the error logger. Arguments are handled in the manner of Printf.
func (l *LogGroup) Errorf(format string, v ...any) {
	if l.level >= ErrLevel {
		l.err.Printf(format, v...)
	}
}
