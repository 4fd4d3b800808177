package formatters

import (
	"fmt"
	"html/template"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/acarl005/stripansi"
	"github.com/lehins/hspec/pkg/hspec"
)

// untaggedLabel names the group of examples without tags. It is listed last.
const untaggedLabel = "Untagged"

// tagGroup holds examples sharing the same tag combination.
type tagGroup struct {
	TagLabel string
	Count    int
	Duration time.Duration
	Examples []htmlExample
}

// statusSection holds one status with its examples grouped by tags.
type statusSection struct {
	Label     string
	CSSClass  string
	Count     int
	Duration  time.Duration
	TagGroups []tagGroup
}

type htmlExample struct {
	hspec.ExampleResult
	Detail string
}

// reportData is the view model passed to the HTML template.
type reportData struct {
	RunID      string
	Summary    hspec.Summary
	Successes  int
	Pending    int
	Duration   time.Duration
	ExecutedAt time.Time
	Sections   []statusSection
}

// HTML writes a self-contained HTML page once the run is over. Failed
// examples come first, then pending, then succeeded ones; within a status
// examples are grouped by their tag set.
type HTML struct {
	w io.Writer
}

// NewHTML creates an HTML formatter writing to w. Terminal colors never apply.
func NewHTML(w io.Writer, _ bool) *HTML {
	return &HTML{w: w}
}

func (f *HTML) GroupStarted(hspec.Path, string)                       {}
func (f *HTML) ExampleSucceeded(hspec.Path, string)                   {}
func (f *HTML) ExamplePending(hspec.Path, string, string)             {}
func (f *HTML) ExampleFailed(hspec.Path, string, hspec.FailureReason) {}
func (f *HTML) FailedExamples(hspec.Report)                           {}

// Footer renders the page from the report.
func (f *HTML) Footer(report hspec.Report) {
	if err := htmlReport.Execute(f.w, buildReportData(report)); err != nil {
		_, _ = fmt.Fprintf(f.w, "\n<!-- render failed: %s -->\n", template.HTMLEscapeString(err.Error()))
	}
}

func buildReportData(report hspec.Report) reportData {
	byStatus := map[hspec.Status][]htmlExample{}
	for _, r := range report.Results {
		example := htmlExample{ExampleResult: r}
		switch r.Status {
		case hspec.StatusFailed:
			if r.Reason != nil {
				example.Detail = stripansi.Strip(r.Reason.Error())
			}
		case hspec.StatusPending:
			example.Detail = stripansi.Strip(r.PendingReason)
		}
		byStatus[r.Status] = append(byStatus[r.Status], example)
	}

	var sections []statusSection
	for _, s := range []struct {
		status   hspec.Status
		label    string
		cssClass string
	}{
		{hspec.StatusFailed, "Failed Examples", "failed"},
		{hspec.StatusPending, "Pending Examples", "pending"},
		{hspec.StatusSuccess, "Succeeded Examples", "passed"},
	} {
		examples := byStatus[s.status]
		if len(examples) == 0 {
			continue
		}
		sections = append(sections, statusSection{
			Label:     s.label,
			CSSClass:  s.cssClass,
			Count:     len(examples),
			Duration:  sumDurations(examples),
			TagGroups: groupByTags(examples),
		})
	}

	return reportData{
		RunID:      report.RunID,
		Summary:    report.Summary(),
		Successes:  report.Successes,
		Pending:    report.Pending,
		Duration:   report.Duration,
		ExecutedAt: report.StartedAt,
		Sections:   sections,
	}
}

func sumDurations(examples []htmlExample) time.Duration {
	var total time.Duration
	for _, e := range examples {
		total += e.Duration
	}
	return total
}

// groupByTags groups examples by their sorted tag set, untagged last.
func groupByTags(examples []htmlExample) []tagGroup {
	groups := make(map[string][]htmlExample)
	for _, e := range examples {
		key := tagKey(e.Tags)
		groups[key] = append(groups[key], e)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		if k != untaggedLabel {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := groups[untaggedLabel]; ok {
		keys = append(keys, untaggedLabel)
	}

	result := make([]tagGroup, 0, len(keys))
	for _, k := range keys {
		members := groups[k]
		result = append(result, tagGroup{TagLabel: k, Count: len(members), Duration: sumDurations(members), Examples: members})
	}
	return result
}

func tagKey(tags []string) string {
	if len(tags) == 0 {
		return untaggedLabel
	}
	sorted := make([]string, len(tags))
	copy(sorted, tags)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}

func shortDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.0fµs", float64(d)/float64(time.Microsecond))
	}
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

var htmlReport = template.Must(template.New("report").Funcs(template.FuncMap{
	"formatDuration": shortDuration,
	"joinPath": func(path hspec.Path) string {
		return strings.Join(path, " / ")
	},
	"summaryClass": func(failures int) string {
		if failures > 0 {
			return "has-failures"
		}
		return "all-passed"
	},
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04:05")
	},
}).Parse(htmlTemplate))

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>hspec report</title>
<style>
  :root {
    --ok: #1a7f37; --bad: #cf222e; --wait: #9a6700; --info: #0969da;
    --muted: #6e7781; --line: #d0d7de; --card: #ffffff; --page: #f6f8fa;
  }
  * { box-sizing: border-box; }
  body { margin: 0; padding: 24px 32px; background: var(--page); color: #1f2328; font: 14px/1.5 system-ui, sans-serif; }
  h1 { margin: 0 0 4px; font-size: 22px; }
  .executed-at, .section-meta, .tag-group-meta, .duration, .group-label { color: var(--muted); font-size: 12px; font-weight: normal; }
  .executed-at { margin-bottom: 20px; }
  .summary { display: flex; gap: 24px; padding: 12px 20px; margin-bottom: 24px; background: var(--card); border: 1px solid var(--line); border-top-width: 4px; }
  .summary.all-passed { border-top-color: var(--ok); }
  .summary.has-failures { border-top-color: var(--bad); }
  .summary-item .number { font-size: 26px; font-weight: bold; }
  .summary-item .label { color: var(--muted); font-size: 11px; letter-spacing: 0.05em; text-transform: uppercase; }
  .number.green { color: var(--ok); }
  .number.red { color: var(--bad); }
  .number.yellow { color: var(--wait); }
  .number.blue { color: var(--info); }
  .section { margin-bottom: 28px; }
  .section-header { font-size: 17px; font-weight: bold; border-bottom: 1px solid var(--line); margin-bottom: 10px; }
  .failed .section-header { color: var(--bad); }
  .pending .section-header { color: var(--wait); }
  .passed .section-header { color: var(--ok); }
  .tag-group { margin: 0 0 16px 4px; }
  .tag-group-label { font-weight: 600; margin-bottom: 6px; }
  .example { background: var(--card); border: 1px solid var(--line); border-left-width: 3px; padding: 6px 12px; margin-bottom: 6px; }
  .failed .example { border-left-color: var(--bad); }
  .pending .example { border-left-color: var(--wait); }
  .passed .example { border-left-color: var(--ok); }
  .example-header { display: flex; justify-content: space-between; }
  .requirement { font-weight: 600; }
  .tag { background: var(--page); border: 1px solid var(--line); padding: 0 4px; font-size: 11px; }
  .detail { margin: 6px 0 0; padding: 6px 8px; white-space: pre-wrap; background: var(--page); font: 12px/1.4 ui-monospace, monospace; }
  .failed .detail { color: var(--bad); }
  .empty-msg { color: var(--muted); text-align: center; padding: 16px; }
</style>
</head>
<body>
<h1>Examples report</h1>
{{if not .ExecutedAt.IsZero}}<div class="executed-at">Executed at {{formatTime .ExecutedAt}}{{if .RunID}} (run {{.RunID}}){{end}}</div>{{end}}

<div class="summary {{summaryClass .Summary.Failures}}">
  <div class="summary-item"><div class="number blue">{{.Summary.Examples}}</div><div class="label">Examples</div></div>
  <div class="summary-item"><div class="number green">{{.Successes}}</div><div class="label">Succeeded</div></div>
  <div class="summary-item"><div class="number red">{{.Summary.Failures}}</div><div class="label">Failed</div></div>
  <div class="summary-item"><div class="number yellow">{{.Pending}}</div><div class="label">Pending</div></div>
  <div class="summary-item"><div class="number blue">{{formatDuration .Duration}}</div><div class="label">Duration</div></div>
</div>

{{if not .Sections}}<div class="empty-msg">No examples were evaluated.</div>{{end}}

{{range .Sections}}
<div class="section {{.CSSClass}}">
  <div class="section-header">{{.Label}} <span class="section-meta">{{.Count}} examples, {{formatDuration .Duration}}</span></div>
  {{range .TagGroups}}
  <div class="tag-group">
    <div class="tag-group-label"># {{.TagLabel}} <span class="tag-group-meta">({{.Count}} examples, {{formatDuration .Duration}})</span></div>
    {{range .Examples}}
    <div class="example">
      <div class="example-header">
        <div>
          {{if .Path}}<span class="group-label">{{joinPath .Path}}</span><br>{{end}}
          <span class="requirement">{{.Requirement}}</span>
          {{range .Tags}}<span class="tag">{{.}}</span> {{end}}
        </div>
        <span class="duration">{{formatDuration .Duration}}</span>
      </div>
      {{if .Detail}}<div class="detail">{{.Detail}}</div>{{end}}
    </div>
    {{end}}
  </div>
  {{end}}
</div>
{{end}}
</body>
</html>
`
