package hspec

import "strings"

// Node is an element of a spec tree: either a Group or an Example.
type Node interface {
	isNode()
}

// Procedure is the executable body of an example. A procedure faults by
// panicking; the runner turns that into a failure of this example only.
type Procedure func(*Context) Outcome

// Group is an internal node with a label and ordered children.
// Children are evaluated in the order they appear.
type Group struct {
	Label    string
	Tags     []string
	Children []Node
}

// Example is a leaf pairing a requirement with its procedure.
type Example struct {
	Requirement string
	Tags        []string
	Run         Procedure
}

func (Group) isNode()   {}
func (Example) isNode() {}

// Describe builds a group.
func Describe(label string, children ...Node) Group {
	return Group{Label: label, Children: children}
}

// It builds an example from a body that passes unless it fails an
// assertion, calls ctx.Fail or ctx.Pending, or panics.
func It(requirement string, body func(*Context)) Example {
	return Example{
		Requirement: requirement,
		Run: func(ctx *Context) Outcome {
			body(ctx)
			return Success{}
		},
	}
}

// Specify builds an example from a procedure returning its own outcome.
func Specify(requirement string, proc Procedure) Example {
	return Example{Requirement: requirement, Run: proc}
}

// Pend builds an example that is always pending.
func Pend(requirement, reason string) Example {
	return Example{
		Requirement: requirement,
		Run: func(*Context) Outcome {
			return Pending{Reason: reason}
		},
	}
}

// WithTags returns a copy of the group carrying the given tags.
func (g Group) WithTags(tags ...string) Group {
	g.Tags = append(append([]string(nil), g.Tags...), tags...)
	return g
}

// WithTags returns a copy of the example carrying the given tags.
func (e Example) WithTags(tags ...string) Example {
	e.Tags = append(append([]string(nil), e.Tags...), tags...)
	return e
}

// CountExamples returns the number of examples reachable from nodes.
func CountExamples(nodes []Node) int {
	n := 0
	for _, node := range nodes {
		switch v := node.(type) {
		case Group:
			n += CountExamples(v.Children)
		case Example:
			n++
		}
	}
	return n
}

// Path is the sequence of group labels from the root to a node.
type Path []string

// Append returns a new path extended by label. The receiver is not modified,
// so sibling branches never share a backing array.
func (p Path) Append(label string) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, label)
}

// Depth is the number of enclosing groups.
func (p Path) Depth() int {
	return len(p)
}

// String joins the labels with "/".
func (p Path) String() string {
	return strings.Join(p, "/")
}

// Join renders path and requirement as one slash-separated name. A slash
// inside a label or the requirement is escaped as `\/` (and a backslash as
// `\\`), so "a/b" > "c" and "a" > "b" > "c" get different names.
func Join(path Path, requirement string) string {
	var b strings.Builder
	for _, label := range path {
		b.WriteString(nameEscaper.Replace(label))
		b.WriteByte('/')
	}
	b.WriteString(nameEscaper.Replace(requirement))
	return b.String()
}

var nameEscaper = strings.NewReplacer(`\`, `\\`, "/", `\/`)
