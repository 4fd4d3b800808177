package runner

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"testing"

	messages "github.com/cucumber/messages/go/v21"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lehins/hspec/internal/config"
	"github.com/lehins/hspec/pkg/hspec"
)

type displayKey struct{}

func calculatorRunner(out *bytes.Buffer) *CucumberRunner {
	display := func(ctx context.Context) int {
		v, _ := ctx.Value(displayKey{}).(int)
		return v
	}
	return NewCucumberRunner().
		WithOptions(hspec.WithOutput(out), hspec.WithColor(hspec.ColorNever)).
		WithFeaturesDirectories("testdata/features").
		RegisterStep(`^a calculator showing (-?\d+)$`, func(ctx context.Context, n int) context.Context {
			return context.WithValue(ctx, displayKey{}, n)
		}).
		RegisterStep(`^I add (-?\d+)$`, func(ctx context.Context, n int) context.Context {
			return context.WithValue(ctx, displayKey{}, display(ctx)+n)
		}).
		RegisterStep(`^I subtract (-?\d+)$`, func(ctx context.Context, n int) context.Context {
			return context.WithValue(ctx, displayKey{}, display(ctx)-n)
		}).
		RegisterStep(`^the display shows (-?\d+)$`, func(c *hspec.Context, want int) {
			c.Assert().Equal(want, display(c.Context()), "display")
		})
}

func TestCucumberRunner_Tree(t *testing.T) {
	t.Run("builds one group per feature file", func(t *testing.T) {
		var out bytes.Buffer

		nodes, err := calculatorRunner(&out).Tree()

		require.NoError(t, err)
		require.Len(t, nodes, 2)
		require.Equal(t, "Calculator", nodes[0].(hspec.Group).Label)
		require.Equal(t, "Roadmap", nodes[1].(hspec.Group).Label)
		require.Equal(t, 3, hspec.CountExamples(nodes))
	})

	t.Run("reports registration errors", func(t *testing.T) {
		_, err := NewCucumberRunner().
			RegisterStep("^same$", func() {}).
			RegisterStep("^same$", func() {}).
			RegisterStep("[broken", func() {}).
			Tree()

		require.Error(t, err)
		require.Contains(t, err.Error(), "duplicate step pattern")
		require.Contains(t, err.Error(), "invalid step pattern")
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		_, err := NewCucumberRunner().WithFeaturesDirectories("testdata/nowhere").Tree()

		require.Error(t, err)
	})
}

func TestCucumberRunner_Run(t *testing.T) {
	t.Setenv(config.EnvOptions, "")

	t.Run("fails when a scenario fails", func(t *testing.T) {
		var out bytes.Buffer

		err := calculatorRunner(&out).Run()

		require.ErrorIs(t, err, ErrExamplesFailed)
		require.Contains(t, err.Error(), "1 of 3")
		require.Contains(t, out.String(), "subtracts")
		require.Contains(t, out.String(), "undefined step: I divide by 2")
	})

	t.Run("passes when failing scenarios are filtered out", func(t *testing.T) {
		var out bytes.Buffer

		err := calculatorRunner(&out).WithOptions(hspec.WithTags("not @wip")).Run()

		require.NoError(t, err)
		require.Contains(t, out.String(), "2 examples, 0 failures, 1 pending")
	})

	t.Run("runs hooks around scenarios", func(t *testing.T) {
		var out bytes.Buffer
		var before, after []string

		err := calculatorRunner(&out).
			WithOptions(hspec.WithFilter(hspec.Match("adds"))).
			WithHooks(&hspec.Hooks{
				BeforeExample: func(info hspec.ExampleInfo) { before = append(before, info.Requirement) },
				AfterExample: func(info hspec.ExampleInfo, reason hspec.FailureReason) {
					after = append(after, info.Requirement+":"+strconv.FormatBool(reason == nil))
				},
			}).
			Run()

		require.NoError(t, err)
		require.Equal(t, []string{"adds"}, before)
		require.Equal(t, []string{"adds:true"}, after)
	})
}

func TestCucumberRunner_WithExecutor(t *testing.T) {
	t.Setenv(config.EnvOptions, "")

	ctrl := gomock.NewController(t)
	exec := NewMockExecutor(ctrl)

	exec.EXPECT().RegisterStep(`^anything$`, gomock.Any()).Return(nil)
	exec.EXPECT().RunSteps(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx *hspec.Context, steps []*messages.PickleStep) hspec.Outcome {
			if ctx.Requirement() == "subtracts" {
				return hspec.Failed{Message: "wrong"}
			}
			return hspec.Success{}
		}).Times(3)

	var out bytes.Buffer
	err := NewCucumberRunnerWithExecutor(exec).
		WithOptions(hspec.WithOutput(&out), hspec.WithColor(hspec.ColorNever)).
		WithFeaturesDirectories("testdata/features").
		RegisterStep(`^anything$`, func() {}).
		Run()

	require.True(t, errors.Is(err, ErrExamplesFailed))
}
