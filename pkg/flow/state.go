package flow

// State is a position in a running flow: at a node awaiting an answer, or
// at a terminal outcome. Transient; runs are never persisted by this core.
type State struct {
	NodeID  string
	Outcome Outcome
}

// AtNode returns a state positioned at the given node.
func AtNode(id string) State { return State{NodeID: id} }

// AtTerminal returns a finished state with the given outcome.
func AtTerminal(o Outcome) State { return State{Outcome: o} }

// Terminal reports whether the run has ended.
func (s State) Terminal() bool { return s.Outcome != "" }
