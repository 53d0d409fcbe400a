// Package server exposes calculator sessions as MCP tools.
package server

import (
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/fjl/giocalc/internal/session"
)

const (
	Name    = "giocalc"
	Version = "0.1.0"
)

// CalcServer is an MCP server backed by a session registry.
type CalcServer struct {
	mcpServer *server.MCPServer
	sessions  *session.Registry
}

// NewCalcServer creates the server and registers its tools.
func NewCalcServer(sessions *session.Registry) *CalcServer {
	s := &CalcServer{
		mcpServer: server.NewMCPServer(Name, Version, server.WithToolCapabilities(false)),
		sessions:  sessions,
	}
	s.registerTools()
	return s
}

func (s *CalcServer) registerTools() {
	press := NewPressTool(s.sessions)
	s.mcpServer.AddTool(press.GetTool(), press.Handle)

	eval := NewEvaluateTool(s.sessions)
	s.mcpServer.AddTool(eval.GetTool(), eval.Handle)

	newSession := NewNewSessionTool(s.sessions)
	s.mcpServer.AddTool(newSession.GetTool(), newSession.Handle)

	closeSession := NewCloseSessionTool(s.sessions)
	s.mcpServer.AddTool(closeSession.GetTool(), closeSession.Handle)
}

// ServeStdio serves MCP requests on stdin/stdout until the input is closed.
func (s *CalcServer) ServeStdio() error {
	log.Printf("Starting %s MCP server %s", Name, Version)
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}
	return nil
}
