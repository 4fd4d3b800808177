package hspec

import "sort"

// ExampleInfo describes the example a hook runs around.
type ExampleInfo struct {
	// Path lists the labels of the enclosing groups.
	Path Path

	// Requirement is the example description.
	Requirement string

	// Tags are the example's own tags.
	Tags []string
}

// Hooks holds callbacks that run around every example, inside the same
// fault isolation as the example itself: a panicking hook fails only the
// example it ran for.
type Hooks struct {
	// Order determines execution order (lower = runs first).
	// Hooks with the same Order run in registration order.
	Order int

	// BeforeExample runs before each example's procedure.
	BeforeExample func(ExampleInfo)

	// AfterExample runs after each example's procedure, also when it failed.
	// The reason is nil unless the example failed.
	AfterExample func(ExampleInfo, FailureReason)
}

// SortHooks returns hooks sorted by Order (ascending), dropping nils.
// The input slice is not modified.
func SortHooks(hooks []*Hooks) []*Hooks {
	sorted := make([]*Hooks, 0, len(hooks))
	for _, h := range hooks {
		if h != nil {
			sorted = append(sorted, h)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	return sorted
}

// HookExecutor runs a sorted set of hooks.
type HookExecutor struct {
	hooks []*Hooks
}

// NewHookExecutor creates a HookExecutor over the given hooks.
func NewHookExecutor(hooks ...*Hooks) *HookExecutor {
	return &HookExecutor{hooks: SortHooks(hooks)}
}

// BeforeExample runs every BeforeExample hook in order.
func (e *HookExecutor) BeforeExample(info ExampleInfo) {
	for _, h := range e.hooks {
		if h.BeforeExample != nil {
			h.BeforeExample(info)
		}
	}
}

// AfterExample runs every AfterExample hook in order.
func (e *HookExecutor) AfterExample(info ExampleInfo, reason FailureReason) {
	for _, h := range e.hooks {
		if h.AfterExample != nil {
			h.AfterExample(info, reason)
		}
	}
}
