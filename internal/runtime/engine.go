// Package runtime executes a flow graph as a small state machine. It backs
// the author-side preview run and the read-only rendering of a remotely
// reported position. A live run must never dead-end on a crash, so every
// unresolvable reference degrades to the NotApplicable terminal instead of
// returning an error.
package runtime

import (
	"log/slog"
	"strings"

	"github.com/BristonLowell/vinnies-brain-app-sub000/internal/logging"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
)

// Engine steps a state through a graph. It keeps no history beyond the
// state the caller hands it; callers wanting a breadcrumb trail accumulate
// prior states themselves.
type Engine struct {
	graph   *flow.Graph
	variant flow.Variant
	logger  *slog.Logger
}

// Option configures the engine.
type Option func(*Engine)

// WithLogger attaches a logger for defensive-fallback events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New creates an engine over the given graph. The graph may be a stale
// snapshot of remotely-evolving content; the engine tolerates that.
func New(graph *flow.Graph, variant flow.Variant, opts ...Option) *Engine {
	e := &Engine{graph: graph, variant: variant, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Restart returns the initial state, positioned at the graph's start,
// regardless of any state the caller still holds.
func (e *Engine) Restart() flow.State {
	return flow.AtNode(e.graph.Start())
}

// Step computes the successor of state for the chosen option label.
//
// Terminal states are absorbing: stepping one is a no-op, so a caller that
// retained a stale reference cannot corrupt anything. A state at a node the
// graph no longer contains degrades to the NotApplicable terminal, as does
// an option targeting a missing node. An unmatched label leaves the state
// unchanged; that is a caller error, not an engine error.
func (e *Engine) Step(state flow.State, label string) flow.State {
	if state.Terminal() {
		return state
	}

	node := e.graph.Node(state.NodeID)
	if node == nil {
		e.logger.Debug("stepping from a node missing from the graph, ending run",
			"node_id", state.NodeID)
		return flow.AtTerminal(flow.OutcomeNotApplicable)
	}

	idx, ok := e.resolve(node, label)
	if !ok {
		return state
	}

	target := node.Options[idx].Target
	switch {
	case target.IsTerminal():
		return flow.AtTerminal(target.Outcome)
	case e.graph.Node(target.NodeID) != nil:
		return flow.AtNode(target.NodeID)
	default:
		e.logger.Debug("option targets a missing node, ending run",
			"node_id", node.ID, "target", target.NodeID)
		return flow.AtTerminal(flow.OutcomeNotApplicable)
	}
}

// Resolve reports the index of the option Step would follow from state for
// the chosen label. ok is false when the state is terminal, the node is
// missing, or no option matches; a self-loop option still resolves, even
// though stepping it returns an equal state.
func (e *Engine) Resolve(state flow.State, label string) (int, bool) {
	if state.Terminal() {
		return -1, false
	}
	node := e.graph.Node(state.NodeID)
	if node == nil {
		return -1, false
	}
	return e.resolve(node, label)
}

// Run replays a sequence of answers from the start and returns the final
// state. Convenience for headless preview runs.
func (e *Engine) Run(labels ...string) flow.State {
	state := e.Restart()
	for _, label := range labels {
		state = e.Step(state, label)
	}
	return state
}

// resolve finds the option matching the chosen label. The strict variant
// matches labels case-insensitively (the affirmative/negative pair included);
// the basic variant requires the exact label.
func (e *Engine) resolve(node *flow.Node, label string) (int, bool) {
	for i, opt := range node.Options {
		if e.variant == flow.Strict {
			if strings.EqualFold(strings.TrimSpace(opt.Label), strings.TrimSpace(label)) {
				return i, true
			}
			continue
		}
		if opt.Label == label {
			return i, true
		}
	}
	return -1, false
}
