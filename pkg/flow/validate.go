package flow

import "fmt"

// Variant selects the rule set a graph is checked against. The basic rules
// cover structural integrity only; the strict rules additionally demand the
// yes/no shape the guided editor builds.
type Variant int

const (
	// Basic requires at least one option per node, with non-empty labels
	// and targets.
	Basic Variant = iota
	// Strict additionally requires exactly one affirmative and one negative
	// option per node, and some title or body to show.
	Strict
)

// ViolationKind is a machine-checkable category of validation failure.
type ViolationKind string

const (
	KindMissingStart       ViolationKind = "missing_start"
	KindEmptyNodeSet       ViolationKind = "empty_node_set"
	KindEmptyNodeID        ViolationKind = "empty_node_id"
	KindReservedNodeID     ViolationKind = "reserved_node_id"
	KindEmptyContent       ViolationKind = "empty_content"
	KindMissingAffirmative ViolationKind = "missing_affirmative"
	KindMissingNegative    ViolationKind = "missing_negative"
	KindEmptyLabel         ViolationKind = "empty_label"
	KindEmptyTarget        ViolationKind = "empty_target"
	KindUnresolvedTarget   ViolationKind = "unresolved_target"
)

// Violation is the first rule a graph breaks. NodeID is empty for
// graph-level failures; Option is -1 unless the failure is tied to one
// option.
type Violation struct {
	Kind   ViolationKind
	NodeID string
	Option int
}

func (v *Violation) Error() string {
	switch {
	case v.NodeID == "":
		return fmt.Sprintf("flow is invalid: %s", v.Kind)
	case v.Option < 0:
		return fmt.Sprintf("node %q is invalid: %s", v.NodeID, v.Kind)
	default:
		return fmt.Sprintf("node %q option %d is invalid: %s", v.NodeID, v.Option, v.Kind)
	}
}

// reservedNodeIDs are the wire format's terminal goto tags. A node carrying
// one of these ids would be indistinguishable from a terminal once
// serialized, so the validator refuses them.
var reservedNodeIDs = map[string]bool{
	"end_done":           true,
	"end_escalate":       true,
	"end_not_applicable": true,
}

func graphViolation(kind ViolationKind) *Violation {
	return &Violation{Kind: kind, Option: -1}
}

func nodeViolation(kind ViolationKind, nodeID string) *Violation {
	return &Violation{Kind: kind, NodeID: nodeID, Option: -1}
}

func optionViolation(kind ViolationKind, nodeID string, option int) *Violation {
	return &Violation{Kind: kind, NodeID: nodeID, Option: option}
}

// Validate checks the graph against the variant's rules and returns the
// first violation, or nil. The walk is deterministic and fail-fast: the
// start pointer first, then nodes in display order, then each node's
// options in declared order. Read-only; cheap enough to run on every
// editor keystroke.
func Validate(g *Graph, variant Variant) *Violation {
	if g.Len() == 0 {
		return graphViolation(KindEmptyNodeSet)
	}
	if g.Node(g.Start()) == nil {
		return graphViolation(KindMissingStart)
	}

	for _, node := range g.Nodes() {
		if node.ID == "" {
			return nodeViolation(KindEmptyNodeID, node.ID)
		}
		if reservedNodeIDs[node.ID] {
			return nodeViolation(KindReservedNodeID, node.ID)
		}
		if variant == Strict {
			if !node.HasContent() {
				return nodeViolation(KindEmptyContent, node.ID)
			}
			if !exactlyOne(node.Options, IsAffirmative) {
				return nodeViolation(KindMissingAffirmative, node.ID)
			}
			if !exactlyOne(node.Options, IsNegative) {
				return nodeViolation(KindMissingNegative, node.ID)
			}
		} else if len(node.Options) == 0 {
			return nodeViolation(KindMissingAffirmative, node.ID)
		}

		for i, opt := range node.Options {
			if opt.Label == "" {
				return optionViolation(KindEmptyLabel, node.ID, i)
			}
			if opt.Target.IsEmpty() {
				return optionViolation(KindEmptyTarget, node.ID, i)
			}
			if opt.Target.IsNode() && g.Node(opt.Target.NodeID) == nil {
				return optionViolation(KindUnresolvedTarget, node.ID, i)
			}
		}
	}
	return nil
}

func exactlyOne(opts []Option, match func(string) bool) bool {
	count := 0
	for _, opt := range opts {
		if match(opt.Label) {
			count++
		}
	}
	return count == 1
}
