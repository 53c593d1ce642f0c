package flow

// Direction moves a node through display order.
type Direction int

const (
	// Up moves a node one position earlier in display order.
	Up Direction = -1
	// Down moves a node one position later in display order.
	Down Direction = 1
)

// Put appends the node to display order, or replaces an existing node with
// the same id in place.
func (g *Graph) Put(n *Node) {
	if _, ok := g.nodes[n.ID]; !ok {
		g.order = append(g.order, n.ID)
	}
	g.nodes[n.ID] = n
}

// InsertAt puts the node at the given display position, clamped to the
// valid range. Re-inserting an existing id replaces the node and keeps its
// current position.
func (g *Graph) InsertAt(pos int, n *Node) {
	if _, ok := g.nodes[n.ID]; ok {
		g.nodes[n.ID] = n
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(g.order) {
		pos = len(g.order)
	}
	g.order = append(g.order, "")
	copy(g.order[pos+1:], g.order[pos:])
	g.order[pos] = n.ID
	g.nodes[n.ID] = n
}

// Remove deletes a node and rewrites every option anywhere that targeted it
// to the NotApplicable terminal, so deletion can never leave a dangling
// reference. If the removed node was the start, the start moves to the
// first remaining node. Removing an unknown id, or the last remaining node,
// is a no-op returning false.
func (g *Graph) Remove(id string) bool {
	if _, ok := g.nodes[id]; !ok || len(g.order) <= 1 {
		return false
	}

	delete(g.nodes, id)
	idx := g.IndexOf(id)
	g.order = append(g.order[:idx], g.order[idx+1:]...)

	for _, n := range g.nodes {
		for i, opt := range n.Options {
			if opt.Target.NodeID == id {
				n.Options[i].Target = TerminalTarget(OutcomeNotApplicable)
			}
		}
	}

	if g.start == id {
		g.start = g.order[0]
	}
	return true
}

// Move shifts a node one step through display order. Targets are untouched;
// order is presentation only. No-op at the boundaries and for unknown ids.
func (g *Graph) Move(id string, dir Direction) bool {
	idx := g.IndexOf(id)
	if idx < 0 {
		return false
	}
	swap := idx + int(dir)
	if swap < 0 || swap >= len(g.order) {
		return false
	}
	g.order[idx], g.order[swap] = g.order[swap], g.order[idx]
	return true
}

// SetOptionTarget rewires one option on one node. No other node is touched.
// Returns false for an unknown node or an out-of-range option index.
func (g *Graph) SetOptionTarget(nodeID string, option int, target Target) bool {
	n := g.nodes[nodeID]
	if n == nil || option < 0 || option >= len(n.Options) {
		return false
	}
	n.Options[option].Target = target
	return true
}

// InsertLinked inserts the node right after fromID in display order and
// rewires fromID's option at the given index to point at it, as one step.
// Neither half happens unless both can: returns false, graph untouched,
// when fromID or the option does not exist.
func (g *Graph) InsertLinked(fromID string, option int, n *Node) bool {
	from := g.nodes[fromID]
	if from == nil || option < 0 || option >= len(from.Options) {
		return false
	}
	g.InsertAt(g.IndexOf(fromID)+1, n)
	from.Options[option].Target = NodeTarget(n.ID)
	return true
}
