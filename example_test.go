package brain_test

import (
	"fmt"
	"log"

	brain "github.com/BristonLowell/vinnies-brain-app-sub000"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
)

// ExampleNew demonstrates building a flow in code, validating it, and
// preview-running it, without any wire JSON involved.
func ExampleNew() {
	// 1. Build the graph with type-safe constructors.
	g := flow.FromNodes("power",
		&flow.Node{
			ID:    "power",
			Title: "Is the appliance plugged in?",
			Options: []flow.Option{
				{Label: "Yes", Target: flow.NodeTarget("restart")},
				{Label: "No", Target: flow.TerminalTarget(flow.OutcomeNotApplicable)},
			},
		},
		&flow.Node{
			ID:    "restart",
			Title: "Did restarting fix it?",
			Options: []flow.Option{
				{Label: "Yes", Target: flow.TerminalTarget(flow.OutcomeDone)},
				{Label: "No", Target: flow.TerminalTarget(flow.OutcomeEscalate)},
			},
		},
	)

	// 2. Wrap it in an engine and validate.
	eng := brain.New(g)
	if v := eng.Validate(); v != nil {
		log.Fatal(v)
	}

	// 3. Walk the flow like the agent would.
	state := eng.Preview().Run("Yes", "No")
	fmt.Println(state.Outcome)
	// Output: escalate
}
