// Package brain is the core of the guided appliance-troubleshooting client:
// a branching flow of yes/no question nodes that terminates in one of three
// fixed outcomes, with an integrity-preserving editor, a versioned wire
// format shared with the remote conversational agent, a defensive traversal
// engine for preview runs, and a polling layer that mirrors remote session
// state without redundant re-renders.
//
// The model and its rules live in pkg/flow, the wire codec in pkg/wire,
// authoring in pkg/editor, and the polling/dedup contract in pkg/session.
// This root package is a thin facade composing them.
package brain
