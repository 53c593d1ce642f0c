package flow

// Graph is a troubleshooting flow: a start pointer plus nodes keyed by id,
// in an explicit display order. The order matters to authors (it is what
// the editor shows and what move/insert operations act on); it carries no
// traversal meaning.
type Graph struct {
	start string
	nodes map[string]*Node
	order []string
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// FromNodes builds a graph with the given start and nodes, displayed in the
// order given. A node repeating an earlier id replaces it in place.
func FromNodes(start string, nodes ...*Node) *Graph {
	g := New()
	for _, n := range nodes {
		g.Put(n)
	}
	g.start = start
	return g
}

// Start returns the id of the entry node.
func (g *Graph) Start() string { return g.start }

// SetStart repoints the entry node. The id is not checked here; the
// validator reports a start that resolves nowhere.
func (g *Graph) SetStart(id string) { g.start = id }

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node { return g.nodes[id] }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.order) }

// IDs returns the node ids in display order.
func (g *Graph) IDs() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Nodes returns the nodes in display order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// IndexOf returns the display position of the given id, or -1.
func (g *Graph) IndexOf(id string) int {
	for i, got := range g.order {
		if got == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy. Mutations on the copy never show through.
func (g *Graph) Clone() *Graph {
	out := New()
	out.start = g.start
	out.order = make([]string, len(g.order))
	copy(out.order, g.order)
	for id, n := range g.nodes {
		out.nodes[id] = n.clone()
	}
	return out
}

// Equal reports structural equality: start, display order, and every
// node's content, option order, and targets.
func (g *Graph) Equal(other *Graph) bool {
	if g.start != other.start || len(g.order) != len(other.order) {
		return false
	}
	for i, id := range g.order {
		if other.order[i] != id {
			return false
		}
		a, b := g.nodes[id], other.nodes[id]
		if a.ID != b.ID || a.Title != b.Title || a.Body != b.Body || len(a.Options) != len(b.Options) {
			return false
		}
		for j := range a.Options {
			if a.Options[j] != b.Options[j] {
				return false
			}
		}
	}
	return true
}
