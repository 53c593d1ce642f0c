// Package mcp exposes the flow core as an MCP server, so a conversational
// agent can validate authored flows and walk them step by step over stdio.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	brain "github.com/BristonLowell/vinnies-brain-app-sub000"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/wire"
)

// StepResponse is the unified position payload returned by the step tool.
type StepResponse struct {
	NodeID   string `json:"node_id,omitempty" jsonschema_description:"Current node id, empty when terminal"`
	Outcome  string `json:"outcome,omitempty" jsonschema_description:"Terminal outcome when the run ended"`
	Title    string `json:"title,omitempty" jsonschema_description:"Current node title"`
	Body     string `json:"body,omitempty" jsonschema_description:"Current node body"`
	Terminal bool   `json:"terminal" jsonschema_description:"Whether the run has ended"`
}

// ValidateResponse reports the first problem with a flow payload, if any.
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Detail string `json:"detail,omitempty"`
}

// Server wraps one engine and exposes it over MCP.
type Server struct {
	engine    *brain.Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance over the given engine.
func NewServer(engine *brain.Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("vinnies-brain-mcp", strings.TrimSpace(brain.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	validateTool := mcp.NewTool("validate_flow",
		mcp.WithDescription("Validate a troubleshooting flow payload (wire JSON). If payload is omitted, validates the loaded flow."),
		mcp.WithString("payload", mcp.Description("Wire JSON of the flow (optional)")),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	stepTool := mcp.NewTool("preview_step",
		mcp.WithDescription("Advance the loaded flow from a node by choosing an option label. Omit node_id to start at the flow's start node."),
		mcp.WithString("node_id", mcp.Description("Current node id (optional)")),
		mcp.WithString("choice", mcp.Description("Chosen option label (optional on first call)")),
		mcp.WithOutputSchema[StepResponse](),
	)
	s.mcpServer.AddTool(stepTool, mcp.NewStructuredToolHandler(s.handleStep))

	s.mcpServer.AddTool(mcp.NewTool("get_flow",
		mcp.WithDescription("Get the loaded flow's wire JSON for introspection."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := s.engine.Encode()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	})
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ValidateResponse, error) {
	if payload, ok := args["payload"].(string); ok && payload != "" {
		g, err := wire.Decode([]byte(payload))
		if err != nil {
			return ValidateResponse{Detail: err.Error()}, nil
		}
		if v := flow.Validate(g, s.engine.Variant()); v != nil {
			return ValidateResponse{Detail: v.Error()}, nil
		}
		return ValidateResponse{Valid: true}, nil
	}

	if v := s.engine.Validate(); v != nil {
		return ValidateResponse{Detail: v.Error()}, nil
	}
	return ValidateResponse{Valid: true}, nil
}

func (s *Server) handleStep(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StepResponse, error) {
	engine := s.engine.Preview()

	state := engine.Restart()
	if nodeID, ok := args["node_id"].(string); ok && nodeID != "" {
		state = flow.AtNode(nodeID)
	}
	if choice, ok := args["choice"].(string); ok && choice != "" {
		state = engine.Step(state, choice)
	}

	return s.describe(state), nil
}

func (s *Server) describe(state flow.State) StepResponse {
	if state.Terminal() {
		return StepResponse{Outcome: string(state.Outcome), Terminal: true}
	}
	resp := StepResponse{NodeID: state.NodeID}
	if n := s.engine.Graph().Node(state.NodeID); n != nil {
		resp.Title = n.Title
		resp.Body = n.Body
	}
	return resp
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("brain://flow", "Loaded Flow Definition",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := s.engine.Encode()
		if err != nil {
			return nil, fmt.Errorf("failed to encode flow: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "brain://flow",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}
