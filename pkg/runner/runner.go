package runner

import (
	"context"
	"errors"
	"fmt"

	messages "github.com/cucumber/messages/go/v21"

	"github.com/lehins/hspec/internal/config"
	"github.com/lehins/hspec/pkg/executor"
	"github.com/lehins/hspec/pkg/gherkin_parser"
	"github.com/lehins/hspec/pkg/hspec"
)

// ErrExamplesFailed is returned by CucumberRunner.Run when at least one
// scenario failed.
var ErrExamplesFailed = errors.New("examples failed")

type (
	// CucumberRunner turns .feature files into a spec tree whose examples
	// run registered step definitions, and evaluates it.
	CucumberRunner struct {
		options            []hspec.Option
		hooks              []*hspec.Hooks
		featureDirectories []string
		executor           Executor
		errs               []error
	}
)

// NewCucumberRunner creates a runner backed by an executor.StepExecutor.
func NewCucumberRunner() *CucumberRunner {
	return NewCucumberRunnerWithExecutor(executor.NewStepExecutor())
}

// NewCucumberRunnerWithExecutor creates a runner backed by exec.
func NewCucumberRunnerWithExecutor(exec Executor) *CucumberRunner {
	return &CucumberRunner{executor: exec}
}

// WithOptions adds run options. They are applied after the ones loaded from
// .hspec.yaml and HSPEC_OPTIONS.
func (c *CucumberRunner) WithOptions(opts ...hspec.Option) *CucumberRunner {
	c.options = append(c.options, opts...)

	return c
}

// WithHooks adds hooks that run around every scenario.
func (c *CucumberRunner) WithHooks(hooks ...*hspec.Hooks) *CucumberRunner {
	c.hooks = append(c.hooks, hooks...)

	return c
}

// WithFeaturesDirectories sets the directories searched for .feature files.
// The working directory is used when none is given.
func (c *CucumberRunner) WithFeaturesDirectories(directories ...string) *CucumberRunner {
	c.featureDirectories = directories

	return c
}

// RegisterStep adds a step definition. Registration errors are reported by
// Tree and Run.
func (c *CucumberRunner) RegisterStep(definition string, function any) *CucumberRunner {
	if err := c.executor.RegisterStep(definition, function); err != nil {
		c.errs = append(c.errs, err)
	}

	return c
}

// Tree builds the spec tree: one group per feature file, in file order.
func (c *CucumberRunner) Tree() ([]hspec.Node, error) {
	if len(c.errs) > 0 {
		return nil, errors.Join(c.errs...)
	}

	directories := c.featureDirectories
	if len(directories) == 0 {
		directories = []string{"."}
	}

	featureFiles, err := gherkin_parser.SearchFeatureFilesIn(directories)
	if err != nil {
		return nil, err
	}

	nodes := make([]hspec.Node, 0, len(featureFiles))
	for _, file := range featureFiles {
		document, err := gherkin_parser.LoadFeature(file)
		if err != nil {
			return nil, err
		}
		if group, ok := gherkin_parser.BuildTree(document, c.procedure); ok {
			nodes = append(nodes, group)
		}
	}
	return nodes, nil
}

func (c *CucumberRunner) procedure(pickle *messages.Pickle) hspec.Procedure {
	steps := pickle.Steps
	return func(ctx *hspec.Context) hspec.Outcome {
		return c.executor.RunSteps(ctx, steps)
	}
}

// Config returns the configuration Run uses: .hspec.yaml and HSPEC_OPTIONS
// first, then the options and hooks given to the runner.
func (c *CucumberRunner) Config() (hspec.Config, error) {
	opts, err := config.Load(nil)
	if err != nil {
		return hspec.Config{}, err
	}
	opts = append(opts, c.options...)
	opts = append(opts, hspec.WithHooks(c.hooks...))
	return hspec.NewConfig(opts...), nil
}

// Run evaluates every scenario. It returns ErrExamplesFailed (wrapped) when
// any scenario failed, and other errors when the run could not be carried
// out.
func (c *CucumberRunner) Run() error {
	return c.RunContext(context.Background())
}

// RunContext is Run with a parent context for every scenario.
func (c *CucumberRunner) RunContext(ctx context.Context) error {
	nodes, err := c.Tree()
	if err != nil {
		return err
	}
	cfg, err := c.Config()
	if err != nil {
		return err
	}

	summary, err := RunContext(ctx, cfg, nodes...)
	if err != nil {
		return err
	}
	if !summary.Passed() {
		return fmt.Errorf("%w: %d of %d", ErrExamplesFailed, summary.Failures, summary.Examples)
	}
	return nil
}
