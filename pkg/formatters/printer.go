// Package formatters provides the built-in hspec.Formatter implementations.
package formatters

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lehins/hspec/pkg/hspec"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"

	colorGroup   = "\033[38;2;207;142;109m" // #CF8E6D - group labels
	colorText    = "\033[38;2;188;190;196m" // #BCBEC4 - requirements
	colorSkipped = "\033[38;2;111;115;122m" // #6F737A - pending requirements
)

// Symbols for example status
const (
	symbolPass    = "✓"
	symbolFail    = "✗"
	symbolPending = "-"
)

// printer is the output half shared by the text formatters.
type printer struct {
	w         io.Writer
	useColors bool
}

func (p *printer) write(s string) {
	_, _ = io.WriteString(p.w, s)
}

func (p *printer) writeln(s string) {
	p.write(s + "\n")
}

func (p *printer) color(c, s string) string {
	if p.useColors {
		return c + s + colorReset
	}
	return s
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// failedExamples prints the numbered failure list.
func (p *printer) failedExamples(report hspec.Report) {
	if len(report.Failures) == 0 {
		return
	}

	p.writeln("")
	p.writeln("Failures:")
	for i, f := range report.Failures {
		p.writeln("")
		p.writeln(fmt.Sprintf("  %d) %s", i+1, displayName(f.Path, f.Requirement)))
		for _, line := range strings.Split(describeReason(f.Reason), "\n") {
			p.writeln(p.color(colorRed, "       "+line))
		}
		p.writeln("")
		p.writeln(fmt.Sprintf("  To rerun use: --match %q", hspec.Join(f.Path, f.Requirement)))
	}
}

// footer prints the timing line and the counts.
func (p *printer) footer(report hspec.Report) {
	p.writeln("")
	p.writeln(fmt.Sprintf("Finished in %.4f seconds", report.Duration.Seconds()))

	line := plural(report.Examples(), "example") + ", " + plural(len(report.Failures), "failure")
	if report.Pending > 0 {
		line += fmt.Sprintf(", %d pending", report.Pending)
	}
	if len(report.Failures) > 0 {
		p.writeln(p.color(colorRed, line))
	} else if report.Pending > 0 {
		p.writeln(p.color(colorYellow, line))
	} else {
		p.writeln(p.color(colorGreen, line))
	}
}

// describeReason renders a failure payload; faults are marked so they can be
// told apart from reported failures.
func describeReason(reason hspec.FailureReason) string {
	switch r := reason.(type) {
	case hspec.Reported:
		return r.Message
	case *hspec.Fault:
		return "uncaught panic: " + r.Error()
	case nil:
		return ""
	default:
		return r.Error()
	}
}

func displayName(path hspec.Path, requirement string) string {
	parts := make([]string, 0, len(path)+1)
	parts = append(parts, path...)
	return strings.Join(append(parts, requirement), " ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Truncate(time.Millisecond).String()
}
