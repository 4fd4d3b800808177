package formatters

import (
	"io"

	"github.com/lehins/hspec/pkg/hspec"
)

// Progress prints one character per example: "." passed, "p" pending,
// "F" failed.
type Progress struct {
	printer
}

// NewProgress creates a Progress formatter writing to w.
func NewProgress(w io.Writer, useColors bool) *Progress {
	return &Progress{printer: printer{w: w, useColors: useColors}}
}

func (f *Progress) GroupStarted(hspec.Path, string) {}

func (f *Progress) ExampleSucceeded(hspec.Path, string) {
	f.write(f.color(colorGreen, "."))
}

func (f *Progress) ExamplePending(hspec.Path, string, string) {
	f.write(f.color(colorYellow, "p"))
}

func (f *Progress) ExampleFailed(hspec.Path, string, hspec.FailureReason) {
	f.write(f.color(colorRed, "F"))
}

// FailedExamples ends the progress line and prints the failure details.
func (f *Progress) FailedExamples(report hspec.Report) {
	f.writeln("")
	f.failedExamples(report)
}

func (f *Progress) Footer(report hspec.Report) {
	f.footer(report)
}
