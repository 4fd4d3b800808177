package runner

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/lehins/hspec/pkg/hspec"
)

// evaluator walks a spec tree once, driving the formatter and accumulating
// the report. It is not reused across runs.
type evaluator struct {
	ctx       context.Context
	formatter hspec.Formatter
	hooks     *hspec.HookExecutor
	verbose   bool
	out       io.Writer
	logger    hspec.Logger
	report    hspec.Report

	topLevel  int // groups entered at depth 0 so far
	enclosing int // TopLevel of the examples being walked
}

// Evaluate runs every example in nodes depth-first, in authoring order,
// and returns what it observed. Example failures and faults never escape:
// they are recorded in the report and passed to the formatter.
//
// When cfg.Verbose is false, anything an example writes to os.Stdout,
// os.Stderr, the standard logger or its Context output is discarded.
// out receives example output in verbose mode; logger receives runner
// diagnostics, and example logs in verbose mode.
func Evaluate(ctx context.Context, cfg hspec.Config, formatter hspec.Formatter, out io.Writer, logger hspec.Logger, nodes []hspec.Node) hspec.Report {
	if logger == nil {
		logger = hspec.NoopLogger()
	}
	e := &evaluator{
		ctx:       ctx,
		formatter: formatter,
		hooks:     hspec.NewHookExecutor(cfg.Hooks...),
		verbose:   cfg.Verbose,
		out:       out,
		logger:    logger,
		report: hspec.Report{
			RunID:     uuid.NewString(),
			StartedAt: time.Now(),
		},
	}

	e.logger.Debug("run started", "run_id", e.report.RunID, "examples", hspec.CountExamples(nodes))
	e.walk(nil, nodes)
	e.report.Duration = time.Since(e.report.StartedAt)

	e.formatter.FailedExamples(e.report)
	e.formatter.Footer(e.report)
	e.logger.Debug("run finished", "run_id", e.report.RunID, "examples", e.report.Examples(), "failures", len(e.report.Failures))

	return e.report
}

func (e *evaluator) walk(path hspec.Path, nodes []hspec.Node) {
	for _, node := range nodes {
		switch n := node.(type) {
		case hspec.Group:
			if len(path) == 0 {
				e.topLevel++
				e.enclosing = e.topLevel
			}
			e.formatter.GroupStarted(path, n.Label)
			e.walk(path.Append(n.Label), n.Children)
			if len(path) == 0 {
				e.enclosing = 0
			}
		case hspec.Example:
			e.example(path, n)
		}
	}
}

func (e *evaluator) example(path hspec.Path, ex hspec.Example) {
	info := hspec.ExampleInfo{Path: path, Requirement: ex.Requirement, Tags: ex.Tags}

	started := time.Now()
	v := e.execute(info, ex.Run)
	result := hspec.ExampleResult{
		Path:          path,
		Requirement:   ex.Requirement,
		TopLevel:      e.enclosing,
		Tags:          ex.Tags,
		Status:        v.status,
		Reason:        v.reason,
		PendingReason: v.pendingReason,
		Duration:      time.Since(started),
	}

	e.report.Results = append(e.report.Results, result)
	switch result.Status {
	case hspec.StatusSuccess:
		e.report.Successes++
		e.formatter.ExampleSucceeded(path, ex.Requirement)
	case hspec.StatusPending:
		e.report.Pending++
		e.formatter.ExamplePending(path, ex.Requirement, result.PendingReason)
	case hspec.StatusFailed:
		e.report.Failures = append(e.report.Failures, result)
		e.formatter.ExampleFailed(path, ex.Requirement, result.Reason)
	}
}

// execute runs the hooks and the procedure of one example with its output
// suppressed (unless verbose) and faults contained.
func (e *evaluator) execute(info hspec.ExampleInfo, proc hspec.Procedure) verdict {
	if !e.verbose {
		release := suppressOutput(e.logger)
		defer release()
	}

	out, logger := io.Discard, hspec.NoopLogger()
	if e.verbose {
		out, logger = e.out, e.logger
	}
	ctx := hspec.NewContext(e.ctx, info, out, logger)

	v := protect(func() hspec.Outcome {
		e.hooks.BeforeExample(info)
		if proc == nil {
			return hspec.Pending{Reason: "no procedure"}
		}
		return proc(ctx)
	})

	after := protect(func() hspec.Outcome {
		e.hooks.AfterExample(info, v.reason)
		return hspec.Success{}
	})
	if v.status != hspec.StatusFailed && after.status == hspec.StatusFailed {
		v = after
	}
	return v
}
