package hspec

import (
	"fmt"
	"strings"

	tagexpressions "github.com/cucumber/tag-expressions/go/v6"
)

// Predicate decides whether the example with the given requirement, inside
// the groups named by path, takes part in a run.
type Predicate func(path Path, requirement string) bool

// Filter prunes nodes to the examples pred keeps. Groups left without
// children are dropped; survivors keep their relative order. A nil
// predicate keeps everything and returns nodes unchanged.
func Filter(pred Predicate, nodes []Node) []Node {
	if pred == nil {
		return nodes
	}
	return prune(nodes, nil, nil, func(path Path, _ []string, ex Example) bool {
		return pred(path, ex.Requirement)
	})
}

// FilterTags prunes nodes with a cucumber tag expression such as
// "@smoke and not @slow". An example is evaluated against its own tags plus
// every tag of its enclosing groups. An empty expression keeps everything.
func FilterTags(expr string, nodes []Node) ([]Node, error) {
	if strings.TrimSpace(expr) == "" {
		return nodes, nil
	}
	evaluator, err := tagexpressions.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid tag expression %q: %w", expr, err)
	}
	return prune(nodes, nil, nil, func(_ Path, tags []string, _ Example) bool {
		return evaluator.Evaluate(tags)
	}), nil
}

// prune rebuilds the tree keeping the examples keep accepts. inherited holds
// the tags of the enclosing groups.
func prune(nodes []Node, path Path, inherited []string, keep func(Path, []string, Example) bool) []Node {
	kept := make([]Node, 0, len(nodes))
	for _, node := range nodes {
		switch v := node.(type) {
		case Group:
			children := prune(v.Children, path.Append(v.Label), mergeTags(inherited, v.Tags), keep)
			if len(children) == 0 {
				continue
			}
			kept = append(kept, Group{Label: v.Label, Tags: v.Tags, Children: children})
		case Example:
			if keep(path, mergeTags(inherited, v.Tags), v) {
				kept = append(kept, v)
			}
		}
	}
	return kept
}

func mergeTags(parent, child []string) []string {
	if len(child) == 0 {
		return parent
	}
	merged := make([]string, 0, len(parent)+len(child))
	merged = append(merged, parent...)
	return append(merged, child...)
}

// Match keeps examples whose full name ("group/.../requirement", see Join)
// contains any of the patterns. With no patterns it keeps everything.
// Matching is by substring, so slashes that are part of a label must be
// written escaped, as Join renders them.
func Match(patterns ...string) Predicate {
	return func(path Path, requirement string) bool {
		if len(patterns) == 0 {
			return true
		}
		return containsAny(Join(path, requirement), patterns)
	}
}

// Skip drops examples whose full name contains any of the patterns.
func Skip(patterns ...string) Predicate {
	return func(path Path, requirement string) bool {
		return !containsAny(Join(path, requirement), patterns)
	}
}

// All keeps an example only when every non-nil predicate keeps it.
// It returns nil when no predicate is given, which Filter treats as identity.
func All(preds ...Predicate) Predicate {
	active := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return nil
	}
	return func(path Path, requirement string) bool {
		for _, p := range active {
			if !p(path, requirement) {
				return false
			}
		}
		return true
	}
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
