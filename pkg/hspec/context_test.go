package hspec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type testLogger struct {
	messages []string
}

func (l *testLogger) Debug(msg string, _ ...any) { l.messages = append(l.messages, "debug:"+msg) }
func (l *testLogger) Info(msg string, _ ...any)  { l.messages = append(l.messages, "info:"+msg) }
func (l *testLogger) Warn(msg string, _ ...any)  { l.messages = append(l.messages, "warn:"+msg) }
func (l *testLogger) Error(msg string, _ ...any) { l.messages = append(l.messages, "error:"+msg) }

// failureOf runs fn and returns the AssertionFailure it panicked with.
func failureOf(t *testing.T, fn func()) (failure *AssertionFailure) {
	t.Helper()
	defer func() {
		r := recover()
		var ok bool
		failure, ok = r.(*AssertionFailure)
		require.True(t, ok, "expected an AssertionFailure, got %#v", r)
	}()
	fn()
	return nil
}

func TestNewContext(t *testing.T) {
	t.Run("creates context with defaults", func(t *testing.T) {
		//nolint:staticcheck // nil parent is replaced by context.Background
		ctx := NewContext(nil, ExampleInfo{}, nil, nil)

		require.NotNil(t, ctx.Context())
		require.NotNil(t, ctx.Logger())
		require.NotNil(t, ctx.Assert())
		require.NotNil(t, ctx.Data())
		require.Equal(t, io.Discard, ctx.Output())
	})

	t.Run("creates context with custom logger", func(t *testing.T) {
		logger := &testLogger{}
		ctx := NewContext(context.Background(), ExampleInfo{}, nil, logger)

		ctx.Logger().Info("hello")
		require.Equal(t, []string{"info:hello"}, logger.messages)
	})

	t.Run("exposes the example info", func(t *testing.T) {
		info := ExampleInfo{Path: Path{"math"}, Requirement: "adds", Tags: []string{"@fast"}}
		ctx := NewContext(context.Background(), info, nil, nil)

		require.Equal(t, Path{"math"}, ctx.Path())
		require.Equal(t, "adds", ctx.Requirement())
		require.Equal(t, []string{"@fast"}, ctx.Tags())
	})

	t.Run("Printf writes to the output", func(t *testing.T) {
		var out bytes.Buffer
		ctx := NewContext(context.Background(), ExampleInfo{}, &out, nil)

		ctx.Printf("value=%d\n", 42)
		require.Equal(t, "value=42\n", out.String())
	})
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	require.NotPanics(t, func() {
		logger.Debug("d")
		logger.Info("i", "k", "v")
		logger.Warn("w")
		logger.Error("e")
	})
}

func TestData_SetGet(t *testing.T) {
	ctx := NewContext(context.Background(), ExampleInfo{}, nil, nil)

	t.Run("set and get values", func(t *testing.T) {
		ctx.Data().Set("user", "alice")
		ctx.Data().Set("count", 3)

		v, ok := ctx.Data().Get("user")
		require.True(t, ok)
		require.Equal(t, "alice", v)
		require.Equal(t, 3, ctx.Data().MustGet("count"))
	})

	t.Run("get returns false for missing key", func(t *testing.T) {
		_, ok := ctx.Data().Get("missing")
		require.False(t, ok)
	})

	t.Run("MustGet fails the example for missing key", func(t *testing.T) {
		failure := failureOf(t, func() { ctx.Data().MustGet("missing") })
		require.Equal(t, `key "missing" not found in context data`, failure.Message)
	})
}

func TestContext_WithContext(t *testing.T) {
	type key struct{}
	ctx := NewContext(context.Background(), ExampleInfo{}, nil, nil)

	ctx.WithContext(context.WithValue(ctx.Context(), key{}, "v"))

	require.Equal(t, "v", ctx.Context().Value(key{}))
}

func TestContext_FailAndPending(t *testing.T) {
	ctx := NewContext(context.Background(), ExampleInfo{}, nil, nil)

	t.Run("Fail panics with an assertion failure", func(t *testing.T) {
		failure := failureOf(t, func() { ctx.Fail("expected %d got %d", 1, 2) })
		require.Equal(t, "expected 1 got 2", failure.Message)
		require.Equal(t, "expected 1 got 2", failure.Error())
	})

	t.Run("Pending panics with a pending signal", func(t *testing.T) {
		require.PanicsWithValue(t, &PendingSignal{Reason: "later"}, func() { ctx.Pending("later") })
	})
}

func TestAssert(t *testing.T) {
	a := &Assert{}
	errBoom := errors.New("boom")

	passing := map[string]func(){
		"Equal":         func() { a.Equal(1, 1) },
		"NotEqual":      func() { a.NotEqual(1, 2) },
		"Nil":           func() { a.Nil(nil) },
		"NotNil":        func() { a.NotNil(1) },
		"True":          func() { a.True(true) },
		"False":         func() { a.False(false) },
		"NoError":       func() { a.NoError(nil) },
		"Error":         func() { a.Error(errBoom) },
		"ErrorIs":       func() { a.ErrorIs(fmt.Errorf("wrap: %w", errBoom), errBoom) },
		"ErrorContains": func() { a.ErrorContains(errBoom, "bo") },
		"Contains":      func() { a.Contains("hello", "ell") },
		"NotContains":   func() { a.NotContains([]int{1, 2}, 3) },
		"Len":           func() { a.Len([]int{1, 2}, 2) },
		"Empty":         func() { a.Empty("") },
		"NotEmpty":      func() { a.NotEmpty([]int{1}) },
		"Greater":       func() { a.Greater(2, 1) },
		"Less":          func() { a.Less(1, 2) },
	}
	for name, fn := range passing {
		t.Run(name+" passes", func(t *testing.T) {
			require.NotPanics(t, fn)
		})
	}

	failing := map[string]func(){
		"Equal":         func() { a.Equal(1, 2) },
		"NotEqual":      func() { a.NotEqual(1, 1) },
		"Nil":           func() { a.Nil(1) },
		"NotNil":        func() { a.NotNil(nil) },
		"True":          func() { a.True(false) },
		"False":         func() { a.False(true) },
		"NoError":       func() { a.NoError(errBoom) },
		"Error":         func() { a.Error(nil) },
		"ErrorIs":       func() { a.ErrorIs(errors.New("other"), errBoom) },
		"ErrorContains": func() { a.ErrorContains(errBoom, "xyz") },
		"Contains":      func() { a.Contains("hello", "xyz") },
		"NotContains":   func() { a.NotContains([]int{1, 2}, 2) },
		"Len":           func() { a.Len([]int{1}, 2) },
		"Empty":         func() { a.Empty("x") },
		"NotEmpty":      func() { a.NotEmpty("") },
		"Greater":       func() { a.Greater(1, 2) },
		"Less":          func() { a.Less(2, 1) },
		"Fail":          func() { a.Fail("always") },
	}
	for name, fn := range failing {
		t.Run(name+" fails", func(t *testing.T) {
			failure := failureOf(t, fn)
			require.NotEmpty(t, failure.Message)
		})
	}

	t.Run("message includes the custom text", func(t *testing.T) {
		failure := failureOf(t, func() { a.Equal(1, 2, "balance after %s", "withdrawal") })
		require.Contains(t, failure.Message, "balance after withdrawal")
		require.Contains(t, failure.Message, "Not equal")
	})
}
