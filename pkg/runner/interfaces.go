//go:generate mockgen -source=interfaces.go -destination=interfaces_mock.go -package=runner
package runner

import (
	messages "github.com/cucumber/messages/go/v21"

	"github.com/lehins/hspec/pkg/hspec"
)

type (
	// Executor matches step texts to registered definitions and runs them.
	Executor interface {
		RegisterStep(pattern string, fn any) error
		RunSteps(ctx *hspec.Context, steps []*messages.PickleStep) hspec.Outcome
	}
)
