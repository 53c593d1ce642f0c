package brain

import (
	"log/slog"

	"github.com/BristonLowell/vinnies-brain-app-sub000/internal/logging"
	"github.com/BristonLowell/vinnies-brain-app-sub000/internal/runtime"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/editor"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/wire"
)

// Version is the current release.
const Version = "0.4.1"

// Engine is the high-level entry point: one troubleshooting flow plus the
// validator, editor, and preview runner over it.
type Engine struct {
	graph   *flow.Graph
	variant flow.Variant
	logger  *slog.Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithVariant selects the editor rules (strict by default).
func WithVariant(v flow.Variant) Option {
	return func(e *Engine) { e.variant = v }
}

// WithLogger configures the logger used by the preview runner.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New creates an engine over an existing graph.
func New(graph *flow.Graph, opts ...Option) *Engine {
	e := &Engine{graph: graph, variant: flow.Strict, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load creates an engine from wire JSON, as stored in an article's
// decision_tree field.
func Load(data []byte, opts ...Option) (*Engine, error) {
	g, err := wire.Decode(data)
	if err != nil {
		return nil, err
	}
	return New(g, opts...), nil
}

// Graph returns the flow under this engine.
func (e *Engine) Graph() *flow.Graph { return e.graph }

// Variant returns the active rule set.
func (e *Engine) Variant() flow.Variant { return e.variant }

// Validate re-checks the graph and returns the first violation, or nil.
func (e *Engine) Validate() *flow.Violation {
	return flow.Validate(e.graph, e.variant)
}

// Encode projects the graph to wire JSON.
func (e *Engine) Encode() ([]byte, error) {
	return wire.Encode(e.graph)
}

// Edit returns a structural editor over the live graph.
func (e *Engine) Edit() *editor.Editor {
	return editor.New(e.graph, e.variant)
}

// Preview returns a traversal engine over a snapshot of the graph, so a
// running preview is unaffected by concurrent edits.
func (e *Engine) Preview() *runtime.Engine {
	return runtime.New(e.graph.Clone(), e.variant, runtime.WithLogger(e.logger))
}
