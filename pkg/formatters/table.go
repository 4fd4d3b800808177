package formatters

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/lehins/hspec/pkg/hspec"
)

// Table renders every example as a row of a table once the run is over.
type Table struct {
	printer
}

// NewTable creates a Table formatter writing to w.
func NewTable(w io.Writer, useColors bool) *Table {
	return &Table{printer: printer{w: w, useColors: useColors}}
}

func (f *Table) GroupStarted(hspec.Path, string)                       {}
func (f *Table) ExampleSucceeded(hspec.Path, string)                   {}
func (f *Table) ExamplePending(hspec.Path, string, string)             {}
func (f *Table) ExampleFailed(hspec.Path, string, hspec.FailureReason) {}

// FailedExamples does nothing; Footer prints the details below the table.
func (f *Table) FailedExamples(hspec.Report) {}

// Footer renders the table, then the failure details and counts.
func (f *Table) Footer(report hspec.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(f.w)
	t.AppendHeader(table.Row{"Group", "Example", "Status", "Duration"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Group", AutoMerge: true},
		{Name: "Example", WidthMax: 80, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
	})

	for _, r := range report.Results {
		t.AppendRow(table.Row{
			r.Path.String(),
			r.Requirement,
			f.statusText(r.Status),
			formatDuration(r.Duration),
		})
	}

	overall := "PASS"
	if len(report.Failures) > 0 {
		overall = "FAIL"
	}
	t.AppendFooter(table.Row{"TOTAL", plural(report.Examples(), "example"), overall, formatDuration(report.Duration)})

	if !f.useColors {
		t.SetStyle(table.StyleDefault)
	} else if len(report.Failures) > 0 {
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	} else if report.Pending > 0 {
		t.SetStyle(table.StyleColoredBlackOnYellowWhite)
	} else {
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	}
	t.Render()

	f.failedExamples(report)
	f.footer(report)
}

func (f *Table) statusText(s hspec.Status) string {
	switch s {
	case hspec.StatusSuccess:
		return "PASS"
	case hspec.StatusPending:
		return "PENDING"
	case hspec.StatusFailed:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}
