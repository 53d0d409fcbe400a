package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fjl/giocalc/internal/calc"
	"github.com/fjl/giocalc/internal/session"
)

// Tool name prefix for all MCP tools
const ToolPrefix = "calc."

// Tool names
const (
	ToolPress        = ToolPrefix + "press"
	ToolEvaluate     = ToolPrefix + "evaluate"
	ToolNewSession   = ToolPrefix + "new_session"
	ToolCloseSession = ToolPrefix + "close_session"
)

const sessionParamHelp = "Session ID from calc.new_session. Empty selects the default session."

// PressTool presses a single calculator button.
type PressTool struct {
	sessions *session.Registry
}

func NewPressTool(sessions *session.Registry) *PressTool {
	return &PressTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *PressTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPress,
		mcp.WithDescription("Press one calculator button and return the display. "+
			"Buttons: 0-9 . + - * / = C DEL +/- Ans"),
		mcp.WithString("token", mcp.Required(), mcp.Description("Button label")),
		mcp.WithString("session", mcp.Description(sessionParamHelp)),
	)
}

// Handle processes the tool request
func (t *PressTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	token := mcp.ParseString(req, "token", "")
	if token == "" {
		return mcp.NewToolResultError("token parameter is required"), nil
	}
	id := session.ID(mcp.ParseString(req, "session", ""))
	out, err := t.sessions.Submit(id, token)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press %q: %v", token, err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

// EvaluateTool types a whole expression and presses "=".
type EvaluateTool struct {
	sessions *session.Registry
}

func NewEvaluateTool(sessions *session.Registry) *EvaluateTool {
	return &EvaluateTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *EvaluateTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolEvaluate,
		mcp.WithDescription("Type an expression such as 2+3*4 into the calculator and press =. "+
			"The expression continues from the session state, like pressing the buttons."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Digits, '.', and + - * /")),
		mcp.WithString("session", mcp.Description(sessionParamHelp)),
	)
}

// Handle processes the tool request
func (t *EvaluateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expr := mcp.ParseString(req, "expression", "")
	if strings.TrimSpace(expr) == "" {
		return mcp.NewToolResultError("expression parameter is required"), nil
	}
	id := session.ID(mcp.ParseString(req, "session", ""))

	var out string
	err := t.sessions.Do(id, func(e *calc.Engine) {
		e.Enter(expr)
		out = e.Submit(calc.KeyEquals)
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to evaluate: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

// NewSessionTool creates a fresh calculator.
type NewSessionTool struct {
	sessions *session.Registry
}

func NewNewSessionTool(sessions *session.Registry) *NewSessionTool {
	return &NewSessionTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *NewSessionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolNewSession,
		mcp.WithDescription("Create a new calculator session and return its ID"),
	)
}

// Handle processes the tool request
func (t *NewSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(string(t.sessions.New())), nil
}

// CloseSessionTool discards a calculator session.
type CloseSessionTool struct {
	sessions *session.Registry
}

func NewCloseSessionTool(sessions *session.Registry) *CloseSessionTool {
	return &CloseSessionTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *CloseSessionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolCloseSession,
		mcp.WithDescription("Close a calculator session. Closing the default session clears it."),
		mcp.WithString("session", mcp.Required(), mcp.Description(sessionParamHelp)),
	)
}

// Handle processes the tool request
func (t *CloseSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := session.ID(mcp.ParseString(req, "session", ""))
	if err := t.sessions.Close(id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to close session %q: %v", id, err)), nil
	}
	return mcp.NewToolResultText("closed"), nil
}
