package hspec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	a := Summary{Examples: 3, Failures: 1}
	b := Summary{Examples: 2}
	c := Summary{Examples: 5, Failures: 4}

	t.Run("zero value is the identity", func(t *testing.T) {
		require.Equal(t, a, a.Combine(Summary{}))
		require.Equal(t, a, Summary{}.Combine(a))
	})

	t.Run("combine is associative and commutative", func(t *testing.T) {
		require.Equal(t, a.Combine(b).Combine(c), a.Combine(b.Combine(c)))
		require.Equal(t, a.Combine(b), b.Combine(a))
		require.Equal(t, Summary{Examples: 10, Failures: 5}, CombineAll(a, b, c))
		require.Equal(t, Summary{}, CombineAll())
	})

	t.Run("passed means no failures", func(t *testing.T) {
		require.False(t, a.Passed())
		require.True(t, b.Passed())
		require.True(t, Summary{}.Passed())
	})
}

func TestReport(t *testing.T) {
	report := Report{
		Successes: 2,
		Pending:   1,
		Failures:  []ExampleResult{{Requirement: "subtracts", Status: StatusFailed}},
	}

	require.Equal(t, 4, report.Examples())
	require.Equal(t, Summary{Examples: 4, Failures: 1}, report.Summary())
}
