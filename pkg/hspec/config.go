package hspec

import (
	"io"
	"os"
)

// Config holds the settings of one run. Build it with NewConfig; the runner
// only reads it.
type Config struct {
	// Output is the sink formatters write to. Defaults to os.Stdout.
	Output io.Writer

	// OutputPath, when set, names a file that is created at the start of the
	// run and used as the sink instead of Output.
	OutputPath string

	// Color selects colored output. Defaults to ColorAuto.
	Color ColorMode

	// Verbose lets example procedures write to stdout, stderr and their
	// Context output. When false, that output is discarded.
	Verbose bool

	// Formatter builds the formatter for the run. Nil selects the runner's
	// built-in human-readable formatter.
	Formatter FormatterFactory

	// Filter restricts the run to the examples it keeps. Nil keeps all.
	Filter Predicate

	// Tags is an optional cucumber tag expression, e.g. "@smoke and not @slow".
	Tags string

	// Logger receives runner diagnostics and, in verbose mode, example logs.
	// Defaults to a logger that discards everything.
	Logger Logger

	// Hooks run around every example, sorted by Order.
	Hooks []*Hooks
}

// Option configures a Config.
type Option func(*Config)

// NewConfig returns the default configuration with opts applied in order
// (last wins).
func NewConfig(opts ...Option) Config {
	cfg := Config{
		Output: os.Stdout,
		Color:  ColorAuto,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	return cfg
}

// WithOutput sets the output sink.
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// WithOutputPath makes the run write to the named file.
func WithOutputPath(path string) Option {
	return func(c *Config) {
		c.OutputPath = path
	}
}

// WithColor sets the color mode.
func WithColor(mode ColorMode) Option {
	return func(c *Config) {
		c.Color = mode
	}
}

// WithVerbose controls suppression of example output.
func WithVerbose(verbose bool) Option {
	return func(c *Config) {
		c.Verbose = verbose
	}
}

// WithFormatter selects the formatter.
func WithFormatter(factory FormatterFactory) Option {
	return func(c *Config) {
		c.Formatter = factory
	}
}

// WithFilter adds a filter predicate. Several filters are combined with All.
func WithFilter(pred Predicate) Option {
	return func(c *Config) {
		c.Filter = All(c.Filter, pred)
	}
}

// WithTags sets the tag expression.
func WithTags(expr string) Option {
	return func(c *Config) {
		c.Tags = expr
	}
}

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithHooks appends lifecycle hooks. Nil hooks are ignored.
func WithHooks(hooks ...*Hooks) Option {
	return func(c *Config) {
		for _, h := range hooks {
			if h != nil {
				c.Hooks = append(c.Hooks, h)
			}
		}
	}
}
