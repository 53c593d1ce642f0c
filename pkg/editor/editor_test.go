package editor_test

import (
	"fmt"
	"testing"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/editor"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
)

// sequentialIDs returns an IDSource yielding n1, n2, ...
func sequentialIDs() editor.IDSource {
	i := 0
	return func() string {
		i++
		return fmt.Sprintf("n%d", i)
	}
}

func authoredGraph() *flow.Graph {
	return flow.FromNodes("s1",
		&flow.Node{
			ID:    "s1",
			Title: "First question",
			Options: []flow.Option{
				{Label: "Yes", Target: flow.NodeTarget("s2")},
				{Label: "No", Target: flow.TerminalTarget(flow.OutcomeNotApplicable)},
			},
		},
		&flow.Node{
			ID:    "s2",
			Title: "Second question",
			Options: []flow.Option{
				{Label: "Yes", Target: flow.TerminalTarget(flow.OutcomeDone)},
				{Label: "No", Target: flow.TerminalTarget(flow.OutcomeEscalate)},
			},
		},
	)
}

func TestAddNode_StrictDefaults(t *testing.T) {
	g := authoredGraph()
	e := editor.New(g, flow.Strict, editor.WithIDSource(sequentialIDs()))

	id := e.AddNode(0) // between s1 and s2
	if id != "n1" {
		t.Fatalf("AddNode() = %q, want n1", id)
	}
	if got := g.IndexOf(id); got != 1 {
		t.Errorf("new node at index %d, want 1", got)
	}

	// Strict nodes come pre-wired: yes/no pointing at the following node.
	n := g.Node(id)
	if len(n.Options) != 2 {
		t.Fatalf("new node has %d options, want 2", len(n.Options))
	}
	for i, opt := range n.Options {
		if opt.Target != flow.NodeTarget("s2") {
			t.Errorf("option %d target = %+v, want node s2", i, opt.Target)
		}
	}
	if n.Affirmative() != 0 || n.Negative() != 1 {
		t.Errorf("pre-wired options are not a yes/no pair: %+v", n.Options)
	}
}

func TestAddNode_AppendedPointsAtTerminal(t *testing.T) {
	g := authoredGraph()
	e := editor.New(g, flow.Strict, editor.WithIDSource(sequentialIDs()))

	id := e.AddNode(-1) // out of range appends
	if got := g.IndexOf(id); got != 2 {
		t.Errorf("new node at index %d, want 2 (appended)", got)
	}
	for i, opt := range g.Node(id).Options {
		if opt.Target != flow.TerminalTarget(flow.OutcomeNotApplicable) {
			t.Errorf("option %d target = %+v, want NotApplicable terminal", i, opt.Target)
		}
	}
}

func TestAddNode_BasicIsBare(t *testing.T) {
	g := authoredGraph()
	e := editor.New(g, flow.Basic, editor.WithIDSource(sequentialIDs()))

	id := e.AddNode(1)
	if n := g.Node(id); len(n.Options) != 0 || n.Title != "" || n.Body != "" {
		t.Errorf("basic AddNode produced a non-empty node: %+v", n)
	}
}

func TestInsertLinkedNode(t *testing.T) {
	g := authoredGraph()
	e := editor.New(g, flow.Strict, editor.WithIDSource(sequentialIDs()))

	id := e.InsertLinkedNode("s1", 0)
	if id == "" {
		t.Fatal("InsertLinkedNode() = \"\", want a fresh id")
	}
	if got := g.Node("s1").Options[0].Target; got != flow.NodeTarget(id) {
		t.Errorf("s1 option 0 target = %+v, want node %s", got, id)
	}
	if got := g.IndexOf(id); got != 1 {
		t.Errorf("linked node at index %d, want 1 (right after s1)", got)
	}

	// Refused halves leave nothing behind.
	if got := e.InsertLinkedNode("ghost", 0); got != "" {
		t.Errorf("InsertLinkedNode with unknown source = %q, want \"\"", got)
	}
	if g.Len() != 3 {
		t.Errorf("Len() = %d, want 3", g.Len())
	}
}

func TestRemoveNode(t *testing.T) {
	g := authoredGraph()
	e := editor.New(g, flow.Strict)

	if !e.RemoveNode("s2") {
		t.Fatal("RemoveNode(s2) = false")
	}
	if got := g.Node("s1").Options[0].Target; got != flow.TerminalTarget(flow.OutcomeNotApplicable) {
		t.Errorf("dangling option rewritten to %+v, want NotApplicable terminal", got)
	}
	if g.Start() != "s1" {
		t.Errorf("Start() = %q, want s1 (untouched)", g.Start())
	}
	if e.RemoveNode("s1") {
		t.Error("removing the last node must refuse")
	}
}

func TestSetContentAndLabels(t *testing.T) {
	g := authoredGraph()
	e := editor.New(g, flow.Strict)

	if !e.SetContent("s1", "New title", "New body") {
		t.Fatal("SetContent = false")
	}
	if n := g.Node("s1"); n.Title != "New title" || n.Body != "New body" {
		t.Errorf("content = %q/%q, want updated", n.Title, n.Body)
	}

	if !e.SetOptionLabel("s1", 0, "Yep") {
		t.Fatal("SetOptionLabel = false")
	}
	if got := g.Node("s1").Options[0]; got.Label != "Yep" || got.Target != flow.NodeTarget("s2") {
		t.Errorf("relabel changed more than the label: %+v", got)
	}

	if e.SetContent("ghost", "x", "y") || e.SetOptionLabel("s1", 7, "x") {
		t.Error("unknown node or option must be a no-op")
	}
}

func TestAppendOption(t *testing.T) {
	g := authoredGraph()
	e := editor.New(g, flow.Basic)

	if !e.AppendOption("s1", "It's complicated", flow.TerminalTarget(flow.OutcomeEscalate)) {
		t.Fatal("AppendOption = false")
	}
	opts := g.Node("s1").Options
	if len(opts) != 3 || opts[2].Label != "It's complicated" {
		t.Errorf("options = %+v, want appended third option", opts)
	}
}

func TestEditor_Validate(t *testing.T) {
	g := authoredGraph()
	e := editor.New(g, flow.Strict)

	if v := e.Validate(); v != nil {
		t.Fatalf("Validate() = %v, want nil", v)
	}
	e.SetOptionLabel("s2", 0, "Sure")
	v := e.Validate()
	if v == nil || v.Kind != flow.KindMissingAffirmative {
		t.Errorf("Validate() = %v, want missing_affirmative on s2", v)
	}
}
