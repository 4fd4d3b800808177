package formatters

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/lehins/hspec/pkg/hspec"
)

// rootSuiteName names the suite collecting examples outside any group.
const rootSuiteName = "(root)"

type junitTestSuites struct {
	XMLName  xml.Name         `xml:"testsuites"`
	Name     string           `xml:"name,attr"`
	ID       string           `xml:"id,attr,omitempty"`
	Tests    int              `xml:"tests,attr"`
	Failures int              `xml:"failures,attr"`
	Skipped  int              `xml:"skipped,attr"`
	Time     string           `xml:"time,attr"`
	Suites   []junitTestSuite `xml:"testsuite"`
}

type junitTestSuite struct {
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Skipped   int             `xml:"skipped,attr"`
	Timestamp string          `xml:"timestamp,attr,omitempty"`
	Cases     []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Time      string        `xml:"time,attr"`
	Failure   *junitFailure `xml:"failure,omitempty"`
	Skipped   *junitSkipped `xml:"skipped,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Text    string `xml:",chardata"`
}

type junitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// JUnit writes a JUnit XML document once the run is over. Each top-level
// group becomes a test suite.
type JUnit struct {
	w io.Writer
}

// NewJUnit creates a JUnit formatter writing to w. Colors never apply.
func NewJUnit(w io.Writer, _ bool) *JUnit {
	return &JUnit{w: w}
}

func (f *JUnit) GroupStarted(hspec.Path, string)                       {}
func (f *JUnit) ExampleSucceeded(hspec.Path, string)                   {}
func (f *JUnit) ExamplePending(hspec.Path, string, string)             {}
func (f *JUnit) ExampleFailed(hspec.Path, string, hspec.FailureReason) {}
func (f *JUnit) FailedExamples(hspec.Report)                           {}

// Footer renders the whole document from the report.
func (f *JUnit) Footer(report hspec.Report) {
	doc := buildJUnit(report)
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		// The document only holds strings and ints; this cannot happen.
		panic(fmt.Sprintf("junit: marshal report: %v", err))
	}
	_, _ = io.WriteString(f.w, xml.Header)
	_, _ = f.w.Write(out)
	_, _ = io.WriteString(f.w, "\n")
}

func buildJUnit(report hspec.Report) junitTestSuites {
	doc := junitTestSuites{
		Name:     "hspec",
		ID:       report.RunID,
		Tests:    report.Examples(),
		Failures: len(report.Failures),
		Skipped:  report.Pending,
		Time:     seconds(report.Duration.Seconds()),
	}

	// Suites are keyed by top-level group, not label: two groups sharing a
	// label, or a group labelled like the root suite, stay separate.
	index := make(map[int]int)
	for _, r := range report.Results {
		suiteName := rootSuiteName
		if len(r.Path) > 0 {
			suiteName = r.Path[0]
		}
		i, ok := index[r.TopLevel]
		if !ok {
			i = len(doc.Suites)
			index[r.TopLevel] = i
			suite := junitTestSuite{Name: suiteName}
			if !report.StartedAt.IsZero() {
				suite.Timestamp = report.StartedAt.UTC().Format("2006-01-02T15:04:05")
			}
			doc.Suites = append(doc.Suites, suite)
		}
		suite := &doc.Suites[i]

		tc := junitTestCase{
			Name:      r.Requirement,
			ClassName: strings.Join(r.Path, "."),
			Time:      seconds(r.Duration.Seconds()),
		}
		suite.Tests++
		switch r.Status {
		case hspec.StatusFailed:
			suite.Failures++
			tc.Failure = junitFailureFor(r.Reason)
		case hspec.StatusPending:
			suite.Skipped++
			tc.Skipped = &junitSkipped{Message: stripansi.Strip(r.PendingReason)}
		}
		suite.Cases = append(suite.Cases, tc)
	}
	return doc
}

func junitFailureFor(reason hspec.FailureReason) *junitFailure {
	failure := &junitFailure{Type: "failure"}
	if reason == nil {
		return failure
	}
	message := stripansi.Strip(reason.Error())
	failure.Message = firstLine(message)
	failure.Text = message
	if fault, ok := reason.(*hspec.Fault); ok {
		failure.Type = "panic"
		if len(fault.Stack) > 0 {
			failure.Text = message + "\n\n" + string(fault.Stack)
		}
	}
	return failure
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func seconds(s float64) string {
	return fmt.Sprintf("%.3f", s)
}
