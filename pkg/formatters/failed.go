package formatters

import (
	"io"

	"github.com/lehins/hspec/pkg/hspec"
)

// FailedOnly prints nothing while running and only the failure list and
// counts at the end.
type FailedOnly struct {
	printer
}

// NewFailedOnly creates a FailedOnly formatter writing to w.
func NewFailedOnly(w io.Writer, useColors bool) *FailedOnly {
	return &FailedOnly{printer: printer{w: w, useColors: useColors}}
}

func (f *FailedOnly) GroupStarted(hspec.Path, string)                       {}
func (f *FailedOnly) ExampleSucceeded(hspec.Path, string)                   {}
func (f *FailedOnly) ExamplePending(hspec.Path, string, string)             {}
func (f *FailedOnly) ExampleFailed(hspec.Path, string, hspec.FailureReason) {}
func (f *FailedOnly) FailedExamples(report hspec.Report)                    { f.failedExamples(report) }
func (f *FailedOnly) Footer(report hspec.Report)                            { f.footer(report) }

// Silent discards everything.
type Silent struct{}

// NewSilent creates a Silent formatter.
func NewSilent(io.Writer, bool) *Silent {
	return &Silent{}
}

func (Silent) GroupStarted(hspec.Path, string)                       {}
func (Silent) ExampleSucceeded(hspec.Path, string)                   {}
func (Silent) ExamplePending(hspec.Path, string, string)             {}
func (Silent) ExampleFailed(hspec.Path, string, hspec.FailureReason) {}
func (Silent) FailedExamples(hspec.Report)                           {}
func (Silent) Footer(hspec.Report)                                   {}
