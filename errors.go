package hwsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrorKind identifies the invariant violated by a failed simulation.
//
type ErrorKind int

// Simulation error kinds.
//
const (
	NoSimulationInputs ErrorKind = iota + 1
	InputCountMismatch
	UndefinedTraceValue
	TraceLengthMismatch
	UndefinedSignal
	NotInitialized
	CycleOutOfRange
	RunAborted
)

var kindNames = [...]string{
	NoSimulationInputs:  "no simulation inputs",
	InputCountMismatch:  "mismatch between number of simulation inputs and number of inputs",
	UndefinedTraceValue: "undefined trace value",
	TraceLengthMismatch: "traces not the same length",
	UndefinedSignal:     "undefined signal",
	NotInitialized:      "circuit not initialized",
	CycleOutOfRange:     "cycle out of range",
	RunAborted:          "run aborted by a previous error",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Error is the error type returned by simulation operations. Errors returned
// by this package carry a stack trace; use errors.Cause to get to the *Error
// value, or IsKind.
//
type Error struct {
	Kind   ErrorKind
	Signal string // offending signal or trace name, if any.
	Cycle  int    // cycle index, -1 during initialization or outside of a run.
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Signal != "" {
		s += " " + strconv.Quote(e.Signal)
	}
	if e.Cycle >= 0 {
		s += " at cycle " + strconv.Itoa(e.Cycle)
	}
	return s
}

func newError(k ErrorKind, signal string, cycle int) error {
	return errors.WithStack(&Error{Kind: k, Signal: signal, Cycle: cycle})
}

// atCycle sets the cycle of the *Error cause of err if it has none.
//
func atCycle(err error, cycle int) error {
	if e, ok := errors.Cause(err).(*Error); ok && e.Cycle < 0 {
		e.Cycle = cycle
	}
	return err
}

// IsKind reports whether the cause of err is an *Error of kind k.
//
func IsKind(err error, k ErrorKind) bool {
	e, ok := errors.Cause(err).(*Error)
	return ok && e.Kind == k
}
