// Package mcpserver exposes the toolkit's two capabilities as MCP
// tools so coding agents can search a specification's operations and
// generate example requests over stdio.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fedefreue/developers-agent-toolkit/internal/lookup"
	"github.com/fedefreue/developers-agent-toolkit/internal/request"
	"github.com/fedefreue/developers-agent-toolkit/internal/search"
	"github.com/fedefreue/developers-agent-toolkit/internal/spec"
)

// New builds an MCP server wired to the given lookup source.
func New(src lookup.Source, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"developers-agent-toolkit",
		version,
		server.WithToolCapabilities(true),
	)

	s.AddTool(
		mcp.NewTool("search-api-operations",
			mcp.WithDescription("Search an API specification's operations by free-text query and optional tag. Returns the matching operation objects as a JSON array."),
			mcp.WithString("specId",
				mcp.Required(),
				mcp.Description("Identifier of the API specification"),
			),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Free-text query matched against operation summaries, descriptions and tags"),
			),
			mcp.WithString("tag",
				mcp.Description("Restrict results to operations carrying exactly this tag"),
			),
		),
		handleSearch(src),
	)

	s.AddTool(
		mcp.NewTool("generate-request-example",
			mcp.WithDescription("Generate a runnable curl example request for one operation of an API specification."),
			mcp.WithString("specId",
				mcp.Required(),
				mcp.Description("Identifier of the API specification"),
			),
			mcp.WithString("method",
				mcp.Required(),
				mcp.Description("HTTP method of the operation"),
			),
			mcp.WithString("path",
				mcp.Required(),
				mcp.Description("Path template of the operation, e.g. /payments/{paymentId}"),
			),
		),
		handleExample(src),
	)

	return s
}

func handleSearch(src lookup.Source) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		specID, err := req.RequireString("specId")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		query, err := req.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		tag := optionalString(req, "tag")

		payload, err := src.Operations(ctx, specID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(search.Render(payload, query, tag)), nil
	}
}

func handleExample(src lookup.Source) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		specID, err := req.RequireString("specId")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		method, err := req.RequireString("method")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		path, err := req.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		payload, err := src.Operation(ctx, specID, method, path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		doc, err := spec.ParseDocument(payload)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		curl, err := request.Assemble(doc, method, path).Curl()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(curl), nil
	}
}

// optionalString reads a string argument, treating absence as empty.
func optionalString(req mcp.CallToolRequest, name string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return ""
}
