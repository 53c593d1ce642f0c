package flow_test

import (
	"reflect"
	"testing"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
)

func TestRemove_RewritesDanglingReferences(t *testing.T) {
	g := flow.FromNodes("s1",
		&flow.Node{ID: "s1", Title: "Q1", Options: yesNo(
			flow.NodeTarget("s2"), flow.NodeTarget("s3"),
		)},
		&flow.Node{ID: "s2", Title: "Q2", Options: yesNo(
			flow.NodeTarget("s3"), flow.TerminalTarget(flow.OutcomeDone),
		)},
		&flow.Node{ID: "s3", Title: "Q3", Options: yesNo(
			flow.TerminalTarget(flow.OutcomeDone), flow.TerminalTarget(flow.OutcomeEscalate),
		)},
	)

	if !g.Remove("s3") {
		t.Fatal("Remove(s3) = false, want true")
	}
	if g.Node("s3") != nil {
		t.Error("s3 still present after Remove")
	}

	// Every option that pointed at s3, on any node, now ends NotApplicable.
	na := flow.TerminalTarget(flow.OutcomeNotApplicable)
	if got := g.Node("s1").Options[1].Target; got != na {
		t.Errorf("s1 option 1 target = %+v, want NotApplicable terminal", got)
	}
	if got := g.Node("s2").Options[0].Target; got != na {
		t.Errorf("s2 option 0 target = %+v, want NotApplicable terminal", got)
	}
	// Untouched options stay untouched.
	if got := g.Node("s1").Options[0].Target; got != flow.NodeTarget("s2") {
		t.Errorf("s1 option 0 target = %+v, want node s2", got)
	}
}

func TestRemove_ReassignsStart(t *testing.T) {
	g := flow.FromNodes("s1",
		&flow.Node{ID: "s1", Title: "Q1"},
		&flow.Node{ID: "s2", Title: "Q2"},
	)

	if !g.Remove("s1") {
		t.Fatal("Remove(s1) = false, want true")
	}
	if g.Start() != "s2" {
		t.Errorf("Start() = %q, want s2", g.Start())
	}
}

func TestRemove_NoOps(t *testing.T) {
	g := flow.FromNodes("only", &flow.Node{ID: "only", Title: "Q"})

	if g.Remove("only") {
		t.Error("Remove of the last remaining node must refuse")
	}
	if g.Node("only") == nil || g.Len() != 1 {
		t.Error("refused Remove still mutated the graph")
	}
	if g.Remove("ghost") {
		t.Error("Remove of an unknown id must be a no-op")
	}
}

func TestMove(t *testing.T) {
	g := flow.FromNodes("a",
		&flow.Node{ID: "a"}, &flow.Node{ID: "b"}, &flow.Node{ID: "c"},
	)

	if !g.Move("b", flow.Up) {
		t.Fatal("Move(b, Up) = false")
	}
	if got := g.IDs(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Errorf("IDs() = %v, want [b a c]", got)
	}

	// Boundary and unknown-id moves are no-ops.
	if g.Move("b", flow.Up) {
		t.Error("Move at the top boundary must be a no-op")
	}
	if g.Move("c", flow.Down) {
		t.Error("Move at the bottom boundary must be a no-op")
	}
	if g.Move("ghost", flow.Down) {
		t.Error("Move of an unknown id must be a no-op")
	}
	if got := g.IDs(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Errorf("IDs() after no-op moves = %v, want [b a c]", got)
	}
}

func TestMove_DoesNotRewire(t *testing.T) {
	g := flow.FromNodes("a",
		&flow.Node{ID: "a", Options: yesNo(
			flow.NodeTarget("b"), flow.TerminalTarget(flow.OutcomeNotApplicable),
		)},
		&flow.Node{ID: "b", Options: yesNo(
			flow.TerminalTarget(flow.OutcomeDone), flow.TerminalTarget(flow.OutcomeEscalate),
		)},
	)
	before := g.Node("a").Options[0].Target

	g.Move("b", flow.Up)

	if got := g.Node("a").Options[0].Target; got != before {
		t.Errorf("Move changed a target: %+v -> %+v", before, got)
	}
	if g.Start() != "a" {
		t.Errorf("Move changed start to %q", g.Start())
	}
}

func TestInsertAt(t *testing.T) {
	g := flow.FromNodes("a", &flow.Node{ID: "a"}, &flow.Node{ID: "c"})

	g.InsertAt(1, &flow.Node{ID: "b"})
	if got := g.IDs(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("IDs() = %v, want [a b c]", got)
	}

	// Out-of-range positions clamp.
	g.InsertAt(99, &flow.Node{ID: "z"})
	g.InsertAt(-5, &flow.Node{ID: "x"})
	if got := g.IDs(); !reflect.DeepEqual(got, []string{"x", "a", "b", "c", "z"}) {
		t.Errorf("IDs() = %v, want [x a b c z]", got)
	}

	// Re-inserting an existing id replaces in place.
	g.InsertAt(0, &flow.Node{ID: "b", Title: "replaced"})
	if got := g.IDs(); !reflect.DeepEqual(got, []string{"x", "a", "b", "c", "z"}) {
		t.Errorf("IDs() after replace = %v, want unchanged order", got)
	}
	if g.Node("b").Title != "replaced" {
		t.Error("replacement content not applied")
	}
}

func TestSetOptionTarget(t *testing.T) {
	g := validTwoNodeGraph()

	if !g.SetOptionTarget("s1", 1, flow.TerminalTarget(flow.OutcomeEscalate)) {
		t.Fatal("SetOptionTarget = false, want true")
	}
	if got := g.Node("s1").Options[1].Target; got != flow.TerminalTarget(flow.OutcomeEscalate) {
		t.Errorf("target = %+v, want Escalate terminal", got)
	}

	if g.SetOptionTarget("ghost", 0, flow.TerminalTarget(flow.OutcomeDone)) {
		t.Error("unknown node must be a no-op")
	}
	if g.SetOptionTarget("s1", 5, flow.TerminalTarget(flow.OutcomeDone)) {
		t.Error("out-of-range option must be a no-op")
	}
}

func TestInsertLinked(t *testing.T) {
	g := validTwoNodeGraph()
	n := &flow.Node{ID: "s1b", Title: "New step"}

	if !g.InsertLinked("s1", 0, n) {
		t.Fatal("InsertLinked = false, want true")
	}
	if got := g.Node("s1").Options[0].Target; got != flow.NodeTarget("s1b") {
		t.Errorf("s1 option 0 target = %+v, want node s1b", got)
	}
	if got := g.IDs(); !reflect.DeepEqual(got, []string{"s1", "s1b", "s2"}) {
		t.Errorf("IDs() = %v, want [s1 s1b s2]", got)
	}
}

func TestInsertLinked_AllOrNothing(t *testing.T) {
	g := validTwoNodeGraph()

	if g.InsertLinked("ghost", 0, &flow.Node{ID: "new"}) {
		t.Error("InsertLinked with unknown source must refuse")
	}
	if g.InsertLinked("s1", 9, &flow.Node{ID: "new2"}) {
		t.Error("InsertLinked with unknown option must refuse")
	}
	if g.Node("new") != nil || g.Node("new2") != nil {
		t.Error("refused InsertLinked still inserted the node")
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
}

func TestClone_IsDeep(t *testing.T) {
	g := validTwoNodeGraph()
	c := g.Clone()

	if !g.Equal(c) {
		t.Fatal("Clone() not structurally equal to original")
	}

	c.Node("s1").Title = "changed"
	c.Node("s1").Options[0].Target = flow.TerminalTarget(flow.OutcomeDone)
	c.Remove("s2")

	if g.Node("s1").Title != "Is the light on?" {
		t.Error("mutating the clone changed the original's content")
	}
	if g.Node("s1").Options[0].Target != flow.NodeTarget("s2") {
		t.Error("mutating the clone changed the original's wiring")
	}
	if g.Len() != 2 {
		t.Error("mutating the clone changed the original's node set")
	}
}

func TestEqual_ConsidersOrder(t *testing.T) {
	a := flow.FromNodes("x", &flow.Node{ID: "x"}, &flow.Node{ID: "y"})
	b := flow.FromNodes("x", &flow.Node{ID: "y"}, &flow.Node{ID: "x"})

	if a.Equal(b) {
		t.Error("graphs with different display order must not be Equal")
	}
	b.Move("x", flow.Up)
	if !a.Equal(b) {
		t.Error("graphs with identical order and content must be Equal")
	}
}
