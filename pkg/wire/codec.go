// Package wire maps flow graphs to and from the versioned JSON document
// embedded in an article's decision_tree field and consumed by the remote
// agent. Decoding is strict: an unknown version, an unresolved start, or a
// goto that is neither a terminal tag nor a node key is rejected, never
// coerced.
package wire

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
)

// Version is the wire format revision this package reads and writes.
const Version = 1

// Terminal goto tags. These literals are shared with the remote agent.
const (
	TagDone          = "end_done"
	TagEscalate      = "end_escalate"
	TagNotApplicable = "end_not_applicable"
)

type document struct {
	Version *int               `json:"version"`
	Start   string             `json:"start"`
	Nodes   map[string]payload `json:"nodes"`
}

type payload struct {
	Title   string       `json:"title,omitempty"`
	Body    string       `json:"body,omitempty"`
	Options []optionWire `json:"options,omitempty"`
}

type optionWire struct {
	Text string `json:"text"`
	Goto string `json:"goto"`
}

// Encode projects the graph to wire JSON.
func Encode(g *flow.Graph) ([]byte, error) {
	version := Version
	doc := document{
		Version: &version,
		Start:   g.Start(),
		Nodes:   make(map[string]payload, g.Len()),
	}
	for _, node := range g.Nodes() {
		p := payload{Title: node.Title, Body: node.Body}
		for _, opt := range node.Options {
			p.Options = append(p.Options, optionWire{Text: opt.Label, Goto: gotoTag(opt.Target)})
		}
		doc.Nodes[node.ID] = p
	}
	return json.Marshal(doc)
}

// Decode parses wire JSON into a graph. JSON objects carry no key order, so
// decoded nodes come out in sorted-id display order; round-tripping
// preserves ids, content, option order, and targets, not display order.
func Decode(data []byte) (*flow.Graph, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Reason: ReasonMalformed, cause: err}
	}
	if doc.Version == nil {
		return nil, &DecodeError{Field: "version", Reason: ReasonMissingVersion}
	}
	if *doc.Version != Version {
		return nil, &DecodeError{Field: "version", Reason: ReasonUnknownVersion, Value: strconv.Itoa(*doc.Version)}
	}
	if _, ok := doc.Nodes[doc.Start]; !ok {
		return nil, &DecodeError{Field: "start", Reason: ReasonMissingStart, Value: doc.Start}
	}

	ids := make([]string, 0, len(doc.Nodes))
	for id := range doc.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	g := flow.New()
	for _, id := range ids {
		p := doc.Nodes[id]
		node := &flow.Node{ID: id, Title: p.Title, Body: p.Body}
		for i, opt := range p.Options {
			target, ok := parseGoto(opt.Goto, doc.Nodes)
			if !ok {
				return nil, &DecodeError{
					Field:  "nodes." + id + ".options[" + strconv.Itoa(i) + "].goto",
					Reason: ReasonUnknownGoto,
					Value:  opt.Goto,
				}
			}
			node.Options = append(node.Options, flow.Option{Label: opt.Text, Target: target})
		}
		g.Put(node)
	}
	g.SetStart(doc.Start)
	return g, nil
}

func gotoTag(t flow.Target) string {
	if t.IsNode() {
		return t.NodeID
	}
	switch t.Outcome {
	case flow.OutcomeDone:
		return TagDone
	case flow.OutcomeEscalate:
		return TagEscalate
	default:
		return TagNotApplicable
	}
}

func parseGoto(tag string, nodes map[string]payload) (flow.Target, bool) {
	switch tag {
	case TagDone:
		return flow.TerminalTarget(flow.OutcomeDone), true
	case TagEscalate:
		return flow.TerminalTarget(flow.OutcomeEscalate), true
	case TagNotApplicable:
		return flow.TerminalTarget(flow.OutcomeNotApplicable), true
	}
	if _, ok := nodes[tag]; ok {
		return flow.NodeTarget(tag), true
	}
	return flow.Target{}, false
}
