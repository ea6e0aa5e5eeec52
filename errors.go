package eightball

import "fmt"

// ErrorKind classifies the ways a Simulator can fail to make forward
// progress. Stale pops are deliberately absent from this list: they are
// expected event-loop behavior, not an error.
type ErrorKind uint8

const (
	// KindDegenerateGeometry indicates the collision kernel could not
	// define a line of centers because both participants' centers
	// coincide to within 1 ULP.
	KindDegenerateGeometry ErrorKind = iota + 1
	// KindTimeRegression indicates StepUntil was asked to move to a time
	// strictly before the current global time.
	KindTimeRegression
	// KindQueueExhausted indicates the event queue ran out of candidate
	// events while forced progress was requested.
	KindQueueExhausted
)

func (k ErrorKind) String() string {
	switch k {
	case KindDegenerateGeometry:
		return "degenerate geometry"
	case KindTimeRegression:
		return "time regression"
	case KindQueueExhausted:
		return "queue exhausted"
	default:
		panic("unknown error kind")
	}
}

// SimulationError is the single error type surfaced across the package's
// public API. Internal invariant violations that indicate a programming
// error rather than a reachable runtime condition (e.g. colliding a ball
// with itself) panic instead of returning a SimulationError.
type SimulationError struct {
	Kind ErrorKind
	msg  string
}

func (e *SimulationError) Error() string {
	if e.msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func newSimError(kind ErrorKind, format string, args ...interface{}) *SimulationError {
	return &SimulationError{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a *SimulationError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	se, ok := err.(*SimulationError)
	return ok && se.Kind == kind
}
