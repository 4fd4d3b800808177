//go:generate mockgen -source=formatter.go -destination=formatter_mock.go -package=hspec
package hspec

import "io"

type (
	// Formatter renders the progress and results of a run. The runner calls
	// it synchronously, in traversal order, from a single goroutine.
	Formatter interface {
		// GroupStarted is called when the traversal enters a group.
		// path holds the labels of the groups enclosing this one.
		GroupStarted(path Path, label string)

		// Example outcomes. path holds the labels of the enclosing groups.
		ExampleSucceeded(path Path, requirement string)
		ExamplePending(path Path, requirement, reason string)
		ExampleFailed(path Path, requirement string, reason FailureReason)

		// FailedExamples renders the accumulated failure list.
		FailedExamples(report Report)

		// Footer renders the final counts.
		Footer(report Report)
	}

	// FormatterFactory builds a formatter writing to w. useColor is the
	// resolved color mode of the run.
	FormatterFactory func(w io.Writer, useColor bool) Formatter
)
