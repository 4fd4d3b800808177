package hspec

import "time"

// Summary counts the examples of a run and how many of them failed.
// The zero value is the identity of Combine.
type Summary struct {
	Examples int
	Failures int
}

// Combine adds two summaries pointwise. It is associative and commutative,
// so summaries of independent runs or sub-trees can be merged in any order.
func (s Summary) Combine(other Summary) Summary {
	return Summary{
		Examples: s.Examples + other.Examples,
		Failures: s.Failures + other.Failures,
	}
}

// Passed reports whether no example failed.
func (s Summary) Passed() bool {
	return s.Failures == 0
}

// CombineAll folds any number of summaries starting from the zero Summary.
func CombineAll(summaries ...Summary) Summary {
	var total Summary
	for _, s := range summaries {
		total = total.Combine(s)
	}
	return total
}

// ExampleResult holds the outcome of a single evaluated example.
type ExampleResult struct {
	// Path lists the labels of the enclosing groups.
	Path Path

	// Requirement is the example description.
	Requirement string

	// TopLevel numbers the top-level group enclosing the example, from 1 in
	// traversal order. It is 0 for examples outside any group. Unlike
	// Path[0] it tells apart top-level groups sharing a label.
	TopLevel int

	// Tags are the example's own tags (not the inherited ones).
	Tags []string

	// Status classifies the outcome.
	Status Status

	// Reason is set when Status is StatusFailed.
	Reason FailureReason

	// PendingReason is set when Status is StatusPending and a reason was given.
	PendingReason string

	// Duration is the wall-clock time spent in the procedure and its hooks.
	Duration time.Duration
}

// Report is everything a run observed. Formatters render it once the
// traversal is over.
type Report struct {
	// RunID identifies the run.
	RunID string

	// StartedAt is when the traversal began.
	StartedAt time.Time

	// Duration is the total wall-clock time of the traversal.
	Duration time.Duration

	// Successes and Pending count examples with those outcomes.
	Successes int
	Pending   int

	// Failures lists failed examples in traversal order.
	Failures []ExampleResult

	// Results lists every evaluated example in traversal order.
	Results []ExampleResult
}

// Examples is the number of evaluated examples.
func (r Report) Examples() int {
	return r.Successes + r.Pending + len(r.Failures)
}

// Summary projects the report to its example and failure counts.
func (r Report) Summary() Summary {
	return Summary{Examples: r.Examples(), Failures: len(r.Failures)}
}
