package wire_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/wire"
)

func scenarioGraph() *flow.Graph {
	return flow.FromNodes("s1",
		&flow.Node{
			ID:    "s1",
			Title: "Is the power LED lit?",
			Body:  "Check the front panel.",
			Options: []flow.Option{
				{Label: "Yes", Target: flow.NodeTarget("s2")},
				{Label: "No", Target: flow.TerminalTarget(flow.OutcomeNotApplicable)},
			},
		},
		&flow.Node{
			ID:    "s2",
			Title: "Restart the appliance",
			Options: []flow.Option{
				{Label: "Continue", Target: flow.TerminalTarget(flow.OutcomeDone)},
			},
		},
	)
}

func TestRoundTrip(t *testing.T) {
	g := scenarioGraph()

	data, err := wire.Encode(g)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	got, err := wire.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	// Ids, content, option order, and targets survive; display order is
	// canonicalized to sorted ids, which here matches the original.
	if !got.Equal(g) {
		t.Errorf("decode(encode(g)) differs from g\ngot:  %v\nwant: %v", got.IDs(), g.IDs())
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		reason  wire.Reason
		field   string
	}{
		{
			name:    "Malformed JSON",
			payload: `{"version":1,`,
			reason:  wire.ReasonMalformed,
		},
		{
			name:    "Missing Version",
			payload: `{"start":"a","nodes":{"a":{}}}`,
			reason:  wire.ReasonMissingVersion,
			field:   "version",
		},
		{
			name:    "Unknown Version",
			payload: `{"version":2,"start":"a","nodes":{"a":{}}}`,
			reason:  wire.ReasonUnknownVersion,
			field:   "version",
		},
		{
			name:    "Start Not In Nodes",
			payload: `{"version":1,"start":"x","nodes":{"a":{}}}`,
			reason:  wire.ReasonMissingStart,
			field:   "start",
		},
		{
			name:    "Dangling Start On Empty Node Set",
			payload: `{"version":1,"start":"x","nodes":{}}`,
			reason:  wire.ReasonMissingStart,
			field:   "start",
		},
		{
			name:    "Unknown Goto",
			payload: `{"version":1,"start":"a","nodes":{"a":{"options":[{"text":"Yes","goto":"ghost"}]}}}`,
			reason:  wire.ReasonUnknownGoto,
			field:   "nodes.a.options[0].goto",
		},
		{
			name:    "Goto Tag Typo Is Not Coerced",
			payload: `{"version":1,"start":"a","nodes":{"a":{"options":[{"text":"Yes","goto":"end_finished"}]}}}`,
			reason:  wire.ReasonUnknownGoto,
			field:   "nodes.a.options[0].goto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := wire.Decode([]byte(tt.payload))
			if err == nil {
				t.Fatal("Decode() accepted a payload it must reject")
			}
			var de *wire.DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("Decode() error is %T, want *wire.DecodeError", err)
			}
			if de.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", de.Reason, tt.reason)
			}
			if de.Field != tt.field {
				t.Errorf("Field = %q, want %q", de.Field, tt.field)
			}
		})
	}
}

func TestDecode_TerminalTags(t *testing.T) {
	payload := `{
		"version": 1,
		"start": "a",
		"nodes": {
			"a": {"title": "Q", "options": [
				{"text": "Done", "goto": "end_done"},
				{"text": "Help", "goto": "end_escalate"},
				{"text": "Other", "goto": "end_not_applicable"}
			]}
		}
	}`

	g, err := wire.Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	want := []flow.Outcome{flow.OutcomeDone, flow.OutcomeEscalate, flow.OutcomeNotApplicable}
	opts := g.Node("a").Options
	for i, o := range want {
		if got := opts[i].Target; !got.IsTerminal() || got.Outcome != o {
			t.Errorf("option %d target = %+v, want terminal %q", i, got, o)
		}
	}
}

func TestDecode_TerminalTagsShadowNodeKeys(t *testing.T) {
	// A node keyed by a terminal tag cannot be referenced: the tag always
	// resolves to the terminal. The validator rejects such ids so they never
	// reach the wire from the editor side.
	payload := `{
		"version": 1,
		"start": "a",
		"nodes": {
			"a": {"title": "Q", "options": [{"text": "Yes", "goto": "end_done"}]},
			"end_done": {"title": "Shadowed"}
		}
	}`

	g, err := wire.Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	target := g.Node("a").Options[0].Target
	if !target.IsTerminal() || target.Outcome != flow.OutcomeDone {
		t.Errorf("option target = %+v, want terminal %q", target, flow.OutcomeDone)
	}
	if v := flow.Validate(g, flow.Basic); v == nil || v.Kind != flow.KindReservedNodeID {
		t.Errorf("Validate() = %v, want reserved_node_id violation", v)
	}
}

func TestDecode_SortsNodeOrder(t *testing.T) {
	payload := `{"version":1,"start":"b","nodes":{"c":{},"a":{},"b":{}}}`

	g, err := wire.Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	ids := g.IDs()
	if len(ids) != 3 || ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Errorf("IDs() = %v, want [a b c]", ids)
	}
	if g.Start() != "b" {
		t.Errorf("Start() = %q, want b", g.Start())
	}
}

func TestEncode_EmitsTerminalTags(t *testing.T) {
	g := flow.FromNodes("a", &flow.Node{
		ID:    "a",
		Title: "Q",
		Options: []flow.Option{
			{Label: "Yes", Target: flow.TerminalTarget(flow.OutcomeDone)},
			{Label: "No", Target: flow.TerminalTarget(flow.OutcomeEscalate)},
		},
	})

	data, err := wire.Encode(g)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	for _, tag := range []string{`"end_done"`, `"end_escalate"`, `"version":1`} {
		if !strings.Contains(string(data), tag) {
			t.Errorf("Encode() output missing %s:\n%s", tag, data)
		}
	}
}
