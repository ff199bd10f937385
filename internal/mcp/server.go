// Package mcp exposes the documentation corpus to AI agents over the Model
// Context Protocol: section listing, document retrieval, and title search
// against the same registry the viewer uses.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/Amor-Self-learning/docview/internal/content"
	"github.com/Amor-Self-learning/docview/internal/registry"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server over the section registry.
type Server struct {
	reg     *registry.Registry
	fetcher content.Fetcher
	home    string
	mcp     *server.MCPServer
}

// NewServer creates an MCP server reading documents through the given
// fetcher. home is the document returned for the corpus overview.
func NewServer(reg *registry.Registry, fetcher content.Fetcher, home string) *Server {
	s := &Server{
		reg:     reg,
		fetcher: fetcher,
		home:    home,
	}

	s.mcp = server.NewMCPServer(
		"docview",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers.
func (s *Server) registerTools() {
	s.mcp.AddTool(listSectionsTool, s.handleListSections)
	s.mcp.AddTool(getDocumentTool, s.handleGetDocument)
	s.mcp.AddTool(searchSectionsTool, s.handleSearchSections)
}

// Serve starts the MCP server on stdio. Stdout carries protocol messages;
// all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
