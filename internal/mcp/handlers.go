package mcp

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleListSections prints the registry in reading order.
func (s *Server) handleListSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	for _, sec := range s.reg.Sections() {
		fmt.Fprintf(&b, "%s — %s (%d files)\n", sec.ID, sec.Title, len(sec.Files))
		for _, f := range sec.Files {
			fmt.Fprintf(&b, "  %s\n", f)
		}
	}
	if b.Len() == 0 {
		return mcp.NewToolResultText("The registry has no sections. Run `docview init` to discover them."), nil
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleGetDocument reads one document through the fetcher.
func (s *Server) handleGetDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sectionID := request.GetString("section_id", "")
	if sectionID == "" {
		data, err := s.fetcher.Fetch(ctx, s.home)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("overview document %q could not be read: %v", s.home, err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}

	sec, ok := s.reg.Lookup(sectionID)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown section %q; use list_sections for valid ids", sectionID)), nil
	}

	file := request.GetString("file", "")
	if file == "" {
		file = sec.DefaultFile()
	}
	if file == "" {
		return mcp.NewToolResultText(fmt.Sprintf("Section %q has no documents yet.", sec.Title)), nil
	}
	if !sec.HasFile(file) {
		return mcp.NewToolResultError(fmt.Sprintf("section %q has no file %q", sectionID, file)), nil
	}

	data, err := s.fetcher.Fetch(ctx, path.Join(sec.Root, file))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("document could not be read: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleSearchSections matches section titles and file names, the same
// case-insensitive substring rule the sidebar filter uses.
func (s *Server) handleSearchSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	q := strings.ToLower(query)

	var b strings.Builder
	for _, sec := range s.reg.Sections() {
		if strings.Contains(strings.ToLower(sec.Title), q) {
			fmt.Fprintf(&b, "%s — %s\n", sec.ID, sec.Title)
		}
		for _, f := range sec.Files {
			if strings.Contains(strings.ToLower(f), q) {
				fmt.Fprintf(&b, "%s/%s\n", sec.ID, f)
			}
		}
	}
	if b.Len() == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No section titles or file names match %q.", query)), nil
	}
	return mcp.NewToolResultText(b.String()), nil
}
