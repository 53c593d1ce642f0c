package editor

import (
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/wire"
)

// Mode says which representation of the flow is authoritative.
type Mode string

const (
	// BuilderDriven: the structured graph is the source of truth and the
	// JSON form is a pure projection recomputed on demand.
	BuilderDriven Mode = "builder"
	// JSONDriven: the operator edited the JSON text directly; the builder is
	// frozen and the raw text is what gets saved.
	JSONDriven Mode = "json"
)

// Document is one article's flow under edit. It holds exactly one source of
// truth at a time; the two representations are never kept in sync by
// observation.
type Document struct {
	editor *Editor
	mode   Mode
	raw    []byte
}

// NewDocument starts a builder-driven document over the given graph.
func NewDocument(graph *flow.Graph, variant flow.Variant, opts ...Option) *Document {
	return &Document{editor: New(graph, variant, opts...), mode: BuilderDriven}
}

// Mode returns the current authoritative representation.
func (d *Document) Mode() Mode { return d.mode }

// Editor returns the structured editor, or nil while the document is
// JSON-driven (the builder is frozen then).
func (d *Document) Editor() *Editor {
	if d.mode != BuilderDriven {
		return nil
	}
	return d.editor
}

// JSON projects the current state to wire JSON. In builder mode this is a
// fresh encode of the graph; in JSON mode it is the operator's literal text.
func (d *Document) JSON() ([]byte, error) {
	if d.mode == JSONDriven {
		out := make([]byte, len(d.raw))
		copy(out, d.raw)
		return out, nil
	}
	return wire.Encode(d.editor.Graph())
}

// SetJSON records a manual edit of the JSON text and switches the document
// to JSON-driven mode. The text is kept verbatim even when it does not
// decode; invalidity blocks saving, not typing.
func (d *Document) SetJSON(raw []byte) {
	d.raw = make([]byte, len(raw))
	copy(d.raw, raw)
	d.mode = JSONDriven
}

// AdoptJSON tries to decode the manual JSON back into a graph and, on
// success, returns the document to builder-driven mode. On failure the
// document stays JSON-driven and the decode error is returned.
func (d *Document) AdoptJSON() error {
	if d.mode == BuilderDriven {
		return nil
	}
	g, err := wire.Decode(d.raw)
	if err != nil {
		return err
	}
	d.editor.graph = g
	d.mode = BuilderDriven
	d.raw = nil
	return nil
}

// Validate checks whatever representation is authoritative. A JSON-driven
// document validates by decoding; a builder-driven one by the flow rules.
func (d *Document) Validate() error {
	if d.mode == JSONDriven {
		_, err := wire.Decode(d.raw)
		return err
	}
	if v := d.editor.Validate(); v != nil {
		return v
	}
	return nil
}
