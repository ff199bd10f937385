package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listSectionsTool defines the list_sections MCP tool.
var listSectionsTool = mcp.NewTool("list_sections",
	mcp.WithDescription("List the documentation sections and the files each one contains, in reading order."),
)

// getDocumentTool defines the get_document MCP tool.
var getDocumentTool = mcp.NewTool("get_document",
	mcp.WithDescription("Get the raw markdown of a documentation file. Omit the file to get the section's first document; omit the section to get the corpus overview."),
	mcp.WithString("section_id",
		mcp.Description("Section id as returned by list_sections"),
	),
	mcp.WithString("file",
		mcp.Description("File name within the section"),
	),
)

// searchSectionsTool defines the search_sections MCP tool.
var searchSectionsTool = mcp.NewTool("search_sections",
	mcp.WithDescription("Search section titles and file names case-insensitively. Body text is not searched."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Substring to look for"),
	),
)
