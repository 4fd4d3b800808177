package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/lehins/hspec/internal/config"
	"github.com/lehins/hspec/pkg/formatters"
	"github.com/lehins/hspec/pkg/hspec"
)

// Process exit codes returned by ExitCode.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Run evaluates nodes with cfg and returns the summary of the run.
//
// A non-nil error means the run itself could not be carried out or its
// output was lost: the sink could not be opened, written or closed, or the
// tag expression is invalid. Example failures are never errors; they are
// counted in the Summary.
func Run(cfg hspec.Config, nodes ...hspec.Node) (hspec.Summary, error) {
	return RunContext(context.Background(), cfg, nodes...)
}

// RunContext is Run with a parent context handed to every example Context.
func RunContext(ctx context.Context, cfg hspec.Config, nodes ...hspec.Node) (summary hspec.Summary, err error) {
	nodes = hspec.Filter(cfg.Filter, nodes)
	nodes, err = hspec.FilterTags(cfg.Tags, nodes)
	if err != nil {
		return hspec.Summary{}, err
	}

	out, closeSink, err := openSink(cfg)
	if err != nil {
		return hspec.Summary{}, err
	}
	defer func() {
		if cerr := closeSink(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output %s: %w", cfg.OutputPath, cerr)
		}
	}()

	useColor := hspec.ResolveColor(cfg.Color, out)
	sink := &sinkWriter{w: out}

	factory := cfg.Formatter
	if factory == nil {
		factory = func(w io.Writer, useColor bool) hspec.Formatter {
			return formatters.NewSpecdoc(w, useColor)
		}
	}
	formatter := factory(sink, useColor)

	logger := cfg.Logger
	if logger == nil {
		logger = hspec.NoopLogger()
		if cfg.Verbose {
			logger = slog.New(slog.NewTextHandler(sink, nil))
		}
	}

	report := Evaluate(ctx, cfg, formatter, sink, logger, nodes)
	if werr := sink.Err(); werr != nil {
		return report.Summary(), fmt.Errorf("failed to write output: %w", werr)
	}
	return report.Summary(), nil
}

// Passed runs nodes and reports whether no example failed.
func Passed(cfg hspec.Config, nodes ...hspec.Node) (bool, error) {
	summary, err := Run(cfg, nodes...)
	if err != nil {
		return false, err
	}
	return summary.Passed(), nil
}

// ExitCode runs nodes and maps the result to a process exit code. Fatal
// errors are printed to os.Stderr and give ExitFailure.
func ExitCode(cfg hspec.Config, nodes ...hspec.Node) int {
	passed, err := Passed(cfg, nodes...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hspec: %v\n", err)
		return ExitFailure
	}
	if !passed {
		return ExitFailure
	}
	return ExitSuccess
}

// Main configures a run from .hspec.yaml, HSPEC_OPTIONS and the command
// line, evaluates nodes and exits the process with the resulting code.
func Main(nodes ...hspec.Node) {
	opts, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			config.Usage(os.Stderr)
			os.Exit(ExitSuccess)
		}
		fmt.Fprintf(os.Stderr, "hspec: %v\n", err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitCode(hspec.NewConfig(opts...), nodes...))
}

// openSink returns the writer formatters render to. When cfg.OutputPath is
// set the file is created (truncated) and must be closed by the caller.
func openSink(cfg hspec.Config) (io.Writer, func() error, error) {
	if cfg.OutputPath == "" {
		return cfg.Output, func() error { return nil }, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open output %s: %w", cfg.OutputPath, err)
	}
	return f, f.Close, nil
}

// sinkWriter remembers the first write error. Once a write fails, later
// writes are dropped so the run can finish and report it.
type sinkWriter struct {
	mu  sync.Mutex
	w   io.Writer
	err error
}

func (s *sinkWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		s.err = err
	}
	return n, err
}

// Err returns the first write error, if any.
func (s *sinkWriter) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
