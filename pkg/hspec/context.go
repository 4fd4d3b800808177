// Package hspec defines the spec tree, outcomes, run configuration and the
// formatter protocol of the hspec test runner, together with the Context
// handed to every example.
package hspec

import (
	"context"
	"fmt"
	"io"
)

// Logger is the interface for structured logging.
// Compatible with *slog.Logger and other structured loggers.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoopLogger returns a Logger that discards all messages.
func NoopLogger() Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// AssertionFailure is the panic value Assert and Context.Fail use to stop an
// example. The runner reports it as a failure, not as a fault.
type AssertionFailure struct {
	Message string
}

func (f *AssertionFailure) Error() string {
	return f.Message
}

// PendingSignal is the panic value Context.Pending uses to stop an example.
type PendingSignal struct {
	Reason string
}

// Data provides example-scoped state shared between the steps of one example.
type Data struct {
	values map[string]any
}

// Set stores a value.
func (d *Data) Set(key string, value any) {
	d.values[key] = value
}

// Get retrieves a value and whether it was present.
func (d *Data) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// MustGet retrieves a value or fails the example if it is missing.
func (d *Data) MustGet(key string) any {
	v, ok := d.values[key]
	if !ok {
		panic(&AssertionFailure{Message: fmt.Sprintf("key %q not found in context data", key)})
	}
	return v
}

// Context is passed to every example procedure.
type Context struct {
	ctx    context.Context
	logger Logger
	assert *Assert
	data   *Data
	out    io.Writer
	info   ExampleInfo
}

// NewContext creates the context for one example. A nil out discards
// writes and a nil logger discards messages.
func NewContext(parent context.Context, info ExampleInfo, out io.Writer, logger Logger) *Context {
	if parent == nil {
		parent = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = noopLogger{}
	}
	return &Context{
		ctx:    parent,
		logger: logger,
		assert: &Assert{},
		data:   &Data{values: make(map[string]any)},
		out:    out,
		info:   info,
	}
}

// Context returns the underlying context.Context.
func (c *Context) Context() context.Context {
	return c.ctx
}

// WithContext replaces the underlying context.Context.
func (c *Context) WithContext(ctx context.Context) {
	c.ctx = ctx
}

// Logger returns the example logger. It discards everything unless the run
// is verbose.
func (c *Context) Logger() Logger {
	return c.logger
}

// Assert returns the assertion helper.
func (c *Context) Assert() *Assert {
	return c.assert
}

// Data returns the example-scoped data store.
func (c *Context) Data() *Data {
	return c.data
}

// Output is where the example may write diagnostics. It discards
// everything unless the run is verbose.
func (c *Context) Output() io.Writer {
	return c.out
}

// Printf writes formatted diagnostics to Output.
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Path returns the labels of the groups enclosing the example.
func (c *Context) Path() Path {
	return c.info.Path
}

// Requirement returns the example description.
func (c *Context) Requirement() string {
	return c.info.Requirement
}

// Tags returns the example's own tags.
func (c *Context) Tags() []string {
	return c.info.Tags
}

// Fail stops the example and reports it as failed with the given message.
func (c *Context) Fail(format string, args ...any) {
	panic(&AssertionFailure{Message: fmt.Sprintf(format, args...)})
}

// Pending stops the example and reports it as pending.
func (c *Context) Pending(reason string) {
	panic(&PendingSignal{Reason: reason})
}
