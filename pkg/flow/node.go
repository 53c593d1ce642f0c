package flow

import "strings"

// Outcome is a terminal result of a troubleshooting run. The three values
// are a fixed vocabulary shared with the remote agent; they are never
// created dynamically.
type Outcome string

const (
	// OutcomeDone means the steps resolved the customer's issue.
	OutcomeDone Outcome = "done"
	// OutcomeEscalate means the flow hands off to a human operator.
	OutcomeEscalate Outcome = "escalate"
	// OutcomeNotApplicable means the flow did not fit the situation. It is
	// also the safe fallback every unresolvable reference degrades to.
	OutcomeNotApplicable Outcome = "not_applicable"
)

// Target is where choosing an option leads: either another node in the
// graph or a terminal outcome. Exactly one of the two fields is set; the
// zero Target is empty and invalid.
type Target struct {
	NodeID  string
	Outcome Outcome
}

// NodeTarget points at another node by id.
func NodeTarget(id string) Target { return Target{NodeID: id} }

// TerminalTarget ends the run with the given outcome.
func TerminalTarget(o Outcome) Target { return Target{Outcome: o} }

// IsNode reports whether the target references a node.
func (t Target) IsNode() bool { return t.NodeID != "" }

// IsTerminal reports whether the target is a terminal outcome.
func (t Target) IsTerminal() bool { return t.NodeID == "" && t.Outcome != "" }

// IsEmpty reports whether the target is unset.
func (t Target) IsEmpty() bool { return t.NodeID == "" && t.Outcome == "" }

// Option is one answer a customer can give at a node.
type Option struct {
	Label  string
	Target Target
}

const (
	labelAffirmative = "yes"
	labelNegative    = "no"
)

// IsAffirmative reports whether the label reads as a yes answer.
func IsAffirmative(label string) bool {
	return strings.EqualFold(strings.TrimSpace(label), labelAffirmative)
}

// IsNegative reports whether the label reads as a no answer.
func IsNegative(label string) bool {
	return strings.EqualFold(strings.TrimSpace(label), labelNegative)
}

// Node is one question in the flow, shown with its title and body, answered
// by picking one of its options.
type Node struct {
	ID      string
	Title   string
	Body    string
	Options []Option
}

// HasContent reports whether the node has a title or body to show.
func (n *Node) HasContent() bool { return n.Title != "" || n.Body != "" }

// Affirmative returns the index of the node's yes option, or -1.
func (n *Node) Affirmative() int {
	for i, opt := range n.Options {
		if IsAffirmative(opt.Label) {
			return i
		}
	}
	return -1
}

// Negative returns the index of the node's no option, or -1.
func (n *Node) Negative() int {
	for i, opt := range n.Options {
		if IsNegative(opt.Label) {
			return i
		}
	}
	return -1
}

func (n *Node) clone() *Node {
	out := &Node{ID: n.ID, Title: n.Title, Body: n.Body}
	if n.Options != nil {
		out.Options = make([]Option, len(n.Options))
		copy(out.Options, n.Options)
	}
	return out
}
