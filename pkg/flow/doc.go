// Package flow is the core model of a branching troubleshooting flow: a
// graph of question nodes whose options either point at another node or end
// the run with a terminal outcome. The package owns the structural rules
// (validation) and the structural operations (mutation); it knows nothing
// about persistence, transport, or rendering.
package flow
