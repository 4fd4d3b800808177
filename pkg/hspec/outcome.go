package hspec

import (
	"errors"
	"fmt"
)

// Outcome is the result an example procedure produces.
// It is one of Success, Pending or Failed.
type Outcome interface {
	isOutcome()
}

// Success marks an example that passed.
type Success struct{}

// Pending marks an example that was deliberately skipped.
// An empty Reason means no reason was given.
type Pending struct {
	Reason string
}

// Failed marks an example that completed and reported a failure.
type Failed struct {
	Message string
}

func (Success) isOutcome() {}
func (Pending) isOutcome() {}
func (Failed) isOutcome()  {}

// FailureReason is the payload of a failed example. It is either Reported
// (the procedure said it failed) or *Fault (the procedure blew up).
// Both count as one failure.
type FailureReason interface {
	error
	isFailureReason()
}

// Reported is a failure the example signalled itself, through a Failed
// outcome or a failed assertion.
type Reported struct {
	Message string
}

func (r Reported) Error() string {
	return r.Message
}

func (Reported) isFailureReason() {}

// Fault is an uncaught runtime error raised while an example was running.
type Fault struct {
	// Value is what the procedure panicked with.
	Value any

	// Stack is the goroutine stack captured at recovery time.
	Stack []byte
}

// ErrGoexit is the fault value recorded when a procedure terminates its
// goroutine through runtime.Goexit, typically by calling t.FailNow.
var ErrGoexit = errors.New("example exited its goroutine before returning (runtime.Goexit)")

// Error returns a non-empty description of the fault. The value is printed
// through fmt, which recovers when its Error or String method panics
// (a typed nil error, for instance) instead of letting the panic escape.
func (f *Fault) Error() string {
	desc := fmt.Sprint(f.Value)
	if desc == "" {
		desc = fmt.Sprintf("panic with empty %T value", f.Value)
	}
	return desc
}

// Unwrap exposes a panicked error value to errors.Is and errors.As.
func (f *Fault) Unwrap() error {
	if err, ok := f.Value.(error); ok {
		return err
	}
	return nil
}

func (*Fault) isFailureReason() {}

// Status is the classification of a finished example.
type Status int

const (
	// StatusSuccess indicates the example passed.
	StatusSuccess Status = iota
	// StatusPending indicates the example was skipped on purpose.
	StatusPending
	// StatusFailed indicates a reported failure or a fault.
	StatusFailed
)

// String returns a human-readable label for the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "passed"
	case StatusPending:
		return "pending"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
