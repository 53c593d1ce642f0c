// Package graph renders a flow as a Mermaid flowchart for authoring review.
package graph

import (
	"fmt"
	"strings"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
)

// Overlay contains dynamic run state to visualize on the graph.
type Overlay struct {
	VisitedNodes []string
	CurrentNode  string
}

// GenerateMermaid produces Mermaid flowchart syntax (graph TD) from a flow.
// The start node renders as a circle, question nodes as rectangles, and
// terminal outcomes as stadium shapes shared by every edge that reaches them.
func GenerateMermaid(g *flow.Graph, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	terminals := map[flow.Outcome]bool{}

	for _, node := range g.Nodes() {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[", "]"
		if node.ID == g.Start() {
			opener, closer = "((", "))"
		}

		label := node.Title
		if label == "" {
			label = node.ID
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(label), closer))

		for _, opt := range node.Options {
			arrow := "-->"
			if opt.Label != "" {
				arrow = fmt.Sprintf("-- \"%s\" -->", escapeLabel(opt.Label))
			}
			var to string
			if opt.Target.IsNode() {
				to = sanitizeMermaidID(opt.Target.NodeID)
			} else {
				to = terminalID(opt.Target.Outcome)
				terminals[opt.Target.Outcome] = true
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, to))
		}
	}

	for _, o := range []flow.Outcome{flow.OutcomeDone, flow.OutcomeEscalate, flow.OutcomeNotApplicable} {
		if terminals[o] {
			sb.WriteString(fmt.Sprintf("    %s([\"%s\"])\n", terminalID(o), terminalLabel(o)))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}
		if overlay.CurrentNode != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode)))
		}
	}

	return sb.String()
}

func terminalID(o flow.Outcome) string {
	return "end_" + sanitizeMermaidID(string(o))
}

func terminalLabel(o flow.Outcome) string {
	switch o {
	case flow.OutcomeDone:
		return "Done"
	case flow.OutcomeEscalate:
		return "Escalate"
	default:
		return "Not applicable"
	}
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

// sanitizeMermaidID strips characters that break Mermaid node identifiers.
func sanitizeMermaidID(id string) string {
	var sb strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
