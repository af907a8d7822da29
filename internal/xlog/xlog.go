// Package xlog provides a nil-safe Logger interface for optional debug
// tracing of the preamble state machine. Calling Print/Printf/Println on a
// nil Logger is a no-op, so callers that never configure a logger pay
// nothing.
package xlog

import "fmt"

// Logger is satisfied by *log.Logger.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print logs v using fmt.Sprint if l is non-nil.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf logs v using the format string if l is non-nil.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println logs v using fmt.Sprintln if l is non-nil.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}

// Phase names one of the Coder's state-machine stages, for Transition's use.
type Phase string

// The stages a Coder moves through, in order, on every Encode/Decode call.
const (
	PhasePreamble Phase = "preamble"
	PhasePayload  Phase = "payload"
)

// Transition logs direction (e.g. "encode" or "decode") entering phase, if l
// is non-nil. It is the one shape Coder.encode/Coder.decode actually call;
// Print/Printf/Println remain for any lower-level caller that wants plain
// messages instead of phase-tagged ones.
func Transition(l Logger, direction string, phase Phase) {
	Printf(l, "%s: %s phase start", direction, phase)
}
