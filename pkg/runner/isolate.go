package runner

import (
	"errors"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/lehins/hspec/pkg/hspec"
)

var errNilOutcome = errors.New("example procedure returned a nil Outcome")

// verdict is the classified result of one protected call.
type verdict struct {
	status        hspec.Status
	reason        hspec.FailureReason
	pendingReason string
}

// protect runs fn to completion and classifies how it ended. fn runs on its
// own goroutine so that runtime.Goexit (t.FailNow and friends) is contained
// as well as panics; protect blocks until that goroutine is done.
func protect(fn func() hspec.Outcome) (v verdict) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		returned := false
		defer func() {
			if r := recover(); r != nil {
				v = fromPanic(r, debug.Stack())
				return
			}
			if !returned {
				v = verdict{status: hspec.StatusFailed, reason: &hspec.Fault{Value: hspec.ErrGoexit, Stack: debug.Stack()}}
			}
		}()
		outcome := fn()
		returned = true
		v = fromOutcome(outcome)
	}()
	<-done
	return v
}

func fromOutcome(outcome hspec.Outcome) verdict {
	switch o := outcome.(type) {
	case hspec.Success:
		return verdict{status: hspec.StatusSuccess}
	case hspec.Pending:
		return verdict{status: hspec.StatusPending, pendingReason: o.Reason}
	case hspec.Failed:
		return verdict{status: hspec.StatusFailed, reason: hspec.Reported{Message: o.Message}}
	default:
		return verdict{status: hspec.StatusFailed, reason: &hspec.Fault{Value: errNilOutcome}}
	}
}

func fromPanic(value any, stack []byte) verdict {
	switch p := value.(type) {
	case *hspec.AssertionFailure:
		return verdict{status: hspec.StatusFailed, reason: hspec.Reported{Message: p.Message}}
	case *hspec.PendingSignal:
		return verdict{status: hspec.StatusPending, pendingReason: p.Reason}
	default:
		return verdict{status: hspec.StatusFailed, reason: &hspec.Fault{Value: value, Stack: stack}}
	}
}

// suppressOutput points os.Stdout, os.Stderr and the standard logger at the
// null device. The returned function restores them and must always be called.
func suppressOutput(logger hspec.Logger) (release func()) {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		logger.Warn("cannot open null device, example output is not suppressed", "error", err)
		return func() {}
	}

	stdout, stderr, logOutput := os.Stdout, os.Stderr, log.Writer()
	os.Stdout, os.Stderr = devNull, devNull
	log.SetOutput(io.Discard)

	return func() {
		os.Stdout, os.Stderr = stdout, stderr
		log.SetOutput(logOutput)
		_ = devNull.Close()
	}
}
