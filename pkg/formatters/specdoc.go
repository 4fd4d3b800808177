package formatters

import (
	"fmt"
	"io"

	"github.com/lehins/hspec/pkg/hspec"
)

// Specdoc prints the spec tree as an indented outline, one line per group
// and example, followed by the failure list and counts. It is the default
// formatter.
type Specdoc struct {
	printer
	failures int
}

// NewSpecdoc creates a Specdoc writing to w.
func NewSpecdoc(w io.Writer, useColors bool) *Specdoc {
	return &Specdoc{printer: printer{w: w, useColors: useColors}}
}

// GroupStarted prints the group label at its nesting depth.
func (f *Specdoc) GroupStarted(path hspec.Path, label string) {
	if path.Depth() == 0 {
		f.writeln("")
	}
	f.writeln(indent(path.Depth()) + f.color(colorGroup, label))
}

// ExampleSucceeded prints a passed example with a green checkmark.
func (f *Specdoc) ExampleSucceeded(path hspec.Path, requirement string) {
	f.writeln(fmt.Sprintf("%s%s %s", indent(path.Depth()), f.color(colorText, requirement), f.color(colorGreen, symbolPass)))
}

// ExamplePending prints a pending example and its reason, if any.
func (f *Specdoc) ExamplePending(path hspec.Path, requirement, reason string) {
	f.writeln(fmt.Sprintf("%s%s %s", indent(path.Depth()), f.color(colorSkipped, requirement), f.color(colorYellow, symbolPending)))
	if reason != "" {
		f.writeln(indent(path.Depth()+1) + f.color(colorYellow, "# PENDING: "+reason))
	} else {
		f.writeln(indent(path.Depth()+1) + f.color(colorYellow, "# PENDING: No reason given"))
	}
}

// ExampleFailed prints a failed example with its failure number.
func (f *Specdoc) ExampleFailed(path hspec.Path, requirement string, _ hspec.FailureReason) {
	f.failures++
	f.writeln(fmt.Sprintf("%s%s %s", indent(path.Depth()), f.color(colorRed, requirement), f.color(colorRed, fmt.Sprintf("%s FAILED [%d]", symbolFail, f.failures))))
}

// FailedExamples prints the failure details.
func (f *Specdoc) FailedExamples(report hspec.Report) {
	f.failedExamples(report)
}

// Footer prints the run counts.
func (f *Specdoc) Footer(report hspec.Report) {
	f.footer(report)
}
