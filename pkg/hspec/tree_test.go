package hspec

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	ctx := NewContext(nil, ExampleInfo{}, nil, nil) //nolint:staticcheck

	t.Run("It succeeds when the body returns", func(t *testing.T) {
		ex := It("adds", func(*Context) {})
		require.Equal(t, "adds", ex.Requirement)
		require.Equal(t, Success{}, ex.Run(ctx))
	})

	t.Run("Specify keeps the procedure outcome", func(t *testing.T) {
		ex := Specify("subtracts", func(*Context) Outcome { return Failed{Message: "expected 1 got 2"} })
		require.Equal(t, Failed{Message: "expected 1 got 2"}, ex.Run(ctx))
	})

	t.Run("Pend is always pending", func(t *testing.T) {
		require.Equal(t, Pending{Reason: "later"}, Pend("divides", "later").Run(ctx))
	})

	t.Run("WithTags copies", func(t *testing.T) {
		base := It("x", func(*Context) {}).WithTags("@a")
		extended := base.WithTags("@b")

		require.Equal(t, []string{"@a"}, base.Tags)
		require.Equal(t, []string{"@a", "@b"}, extended.Tags)
		require.Equal(t, []string{"@g"}, Describe("g").WithTags("@g").Tags)
	})
}

func TestCountExamples(t *testing.T) {
	tree := []Node{
		Describe("a",
			It("1", func(*Context) {}),
			Describe("b", It("2", func(*Context) {}), Pend("3", "")),
			Describe("empty"),
		),
		It("4", func(*Context) {}),
	}

	require.Equal(t, 4, CountExamples(tree))
	require.Equal(t, 0, CountExamples(nil))
}

func TestPath(t *testing.T) {
	t.Run("Append does not share storage between siblings", func(t *testing.T) {
		parent := make(Path, 1, 4)
		parent[0] = "root"

		left := parent.Append("left")
		right := parent.Append("right")

		require.Equal(t, Path{"root", "left"}, left)
		require.Equal(t, Path{"root", "right"}, right)
		require.Equal(t, Path{"root"}, parent)
	})

	t.Run("String and Join", func(t *testing.T) {
		require.Equal(t, "", Path(nil).String())
		require.Equal(t, "a/b", Path{"a", "b"}.String())
		require.Equal(t, "adds", Join(nil, "adds"))
		require.Equal(t, "math/adds", Join(Path{"math"}, "adds"))
		require.Equal(t, `a\/b/c`, Join(Path{"a/b"}, "c"))
		require.Equal(t, `a/b/c\\d`, Join(Path{"a", "b"}, `c\d`))
		require.Equal(t, 2, Path{"a", "b"}.Depth())
	})
}

type explodingError struct{}

func (explodingError) Error() string { panic("kaboom") }

func TestFault(t *testing.T) {
	t.Run("describes every kind of panic value", func(t *testing.T) {
		require.Equal(t, "boom", (&Fault{Value: "boom"}).Error())
		require.Equal(t, "bad", (&Fault{Value: errors.New("bad")}).Error())
		require.Equal(t, "42", (&Fault{Value: 42}).Error())
		require.Equal(t, "panic with empty string value", (&Fault{Value: ""}).Error())
		require.Equal(t, "<nil>", (&Fault{}).Error())
	})

	t.Run("describes values whose Error method panics", func(t *testing.T) {
		var pathErr *os.PathError
		require.NotPanics(t, func() {
			require.Equal(t, "<nil>", (&Fault{Value: pathErr}).Error())
		})

		var desc string
		require.NotPanics(t, func() { desc = (&Fault{Value: explodingError{}}).Error() })
		require.Contains(t, desc, "PANIC=Error method: kaboom")
	})

	t.Run("unwraps error values", func(t *testing.T) {
		sentinel := errors.New("sentinel")
		var reason FailureReason = &Fault{Value: fmt.Errorf("wrapped: %w", sentinel)}

		require.ErrorIs(t, reason, sentinel)
		require.Nil(t, (&Fault{Value: "text"}).Unwrap())
	})

	t.Run("reported failures carry their message", func(t *testing.T) {
		var reason FailureReason = Reported{Message: "expected 1 got 2"}
		require.EqualError(t, reason, "expected 1 got 2")
	})
}

func TestStatus_String(t *testing.T) {
	require.Equal(t, "passed", StatusSuccess.String())
	require.Equal(t, "pending", StatusPending.String())
	require.Equal(t, "failed", StatusFailed.String())
	require.Equal(t, "unknown", Status(9).String())
}
