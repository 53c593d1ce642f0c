// Package editor drives interactive authoring of a troubleshooting flow. It
// wraps the structural operations in pkg/flow with fresh-id generation,
// strict-variant defaults for new nodes, and the builder-versus-raw-JSON
// document mode the operator UI needs.
package editor

import (
	"github.com/google/uuid"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
)

// IDSource produces collision-improbable unique node ids. The exact scheme
// is not load-bearing; it only has to never repeat within an article's life.
type IDSource func() string

// RandomIDs is the default IDSource.
func RandomIDs() string {
	return "n_" + uuid.NewString()
}

// Editor applies authoring operations to a graph. All operations are total:
// unknown ids are no-ops and invalidity is surfaced by flow.Validate, never
// by an operation failing midway.
type Editor struct {
	graph   *flow.Graph
	variant flow.Variant
	ids     IDSource
}

// Option configures the editor.
type Option func(*Editor)

// WithIDSource overrides id generation, mainly for deterministic tests.
func WithIDSource(ids IDSource) Option {
	return func(e *Editor) { e.ids = ids }
}

// New creates an editor over the given graph.
func New(graph *flow.Graph, variant flow.Variant, opts ...Option) *Editor {
	e := &Editor{graph: graph, variant: variant, ids: RandomIDs}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Graph returns the graph under edit.
func (e *Editor) Graph() *flow.Graph { return e.graph }

// Validate re-checks the graph in the editor's variant.
func (e *Editor) Validate() *flow.Violation {
	return flow.Validate(e.graph, e.variant)
}

// AddNode inserts a fresh empty node after the given display index (or
// appends for an out-of-range index) and returns its id. In the strict
// variant the node comes pre-wired with an affirmative and a negative
// option pointing at a sensible default: the following node if one exists,
// else the NotApplicable terminal.
func (e *Editor) AddNode(afterIndex int) string {
	node := &flow.Node{ID: e.ids()}

	pos := afterIndex + 1
	if afterIndex < 0 || afterIndex >= e.graph.Len() {
		pos = e.graph.Len()
	}

	if e.variant == flow.Strict {
		target := flow.TerminalTarget(flow.OutcomeNotApplicable)
		if ids := e.graph.IDs(); pos < len(ids) {
			target = flow.NodeTarget(ids[pos])
		}
		node.Options = []flow.Option{
			{Label: "Yes", Target: target},
			{Label: "No", Target: target},
		}
	}

	e.graph.InsertAt(pos, node)
	return node.ID
}

// RemoveNode deletes a node. Every option anywhere that targeted it is
// rewritten to the NotApplicable terminal, and the start pointer moves if it
// pointed there. Removing the last remaining node is refused; a graph keeps
// at least one node.
func (e *Editor) RemoveNode(id string) bool {
	return e.graph.Remove(id)
}

// MoveNode shifts a node in display order only. No option is rewired.
func (e *Editor) MoveNode(id string, dir flow.Direction) bool {
	return e.graph.Move(id, dir)
}

// SetOptionTarget rewires one option on one node.
func (e *Editor) SetOptionTarget(nodeID string, option int, target flow.Target) bool {
	return e.graph.SetOptionTarget(nodeID, option, target)
}

// SetOptionLabel relabels one option, preserving its position and target.
func (e *Editor) SetOptionLabel(nodeID string, option int, label string) bool {
	n := e.graph.Node(nodeID)
	if n == nil || option < 0 || option >= len(n.Options) {
		return false
	}
	n.Options[option].Label = label
	return true
}

// SetContent replaces a node's title and body. Ids are immutable, content
// is not.
func (e *Editor) SetContent(nodeID, title, body string) bool {
	n := e.graph.Node(nodeID)
	if n == nil {
		return false
	}
	n.Title = title
	n.Body = body
	return true
}

// AppendOption adds a choice to the end of a node's option list.
func (e *Editor) AppendOption(nodeID, label string, target flow.Target) bool {
	n := e.graph.Node(nodeID)
	if n == nil {
		return false
	}
	n.Options = append(n.Options, flow.Option{Label: label, Target: target})
	return true
}

// InsertLinkedNode atomically creates a fresh node right after fromID and
// rewires fromID's option at the given index to point at it. The editor can
// never observe fromID's option dangling between the two halves. Returns the
// new node's id, or "" if fromID or the option does not exist.
func (e *Editor) InsertLinkedNode(fromID string, option int) string {
	node := &flow.Node{ID: e.ids()}
	if e.variant == flow.Strict {
		na := flow.TerminalTarget(flow.OutcomeNotApplicable)
		node.Options = []flow.Option{
			{Label: "Yes", Target: na},
			{Label: "No", Target: na},
		}
	}
	if !e.graph.InsertLinked(fromID, option, node) {
		return ""
	}
	return node.ID
}
