package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/leonardcser/look-and-say/internal/sequence"
)

// MiddleHandler returns the MCP tool handler for the "look-and-say-middle" tool.
func MiddleHandler() func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		value, err := req.RequireString("value")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !sequence.ValidDigits(value) {
			return mcp.NewToolResultError("value must be a non-empty string of decimal digits"), nil
		}
		return mcp.NewToolResultText(sequence.MiddleTwo(value)), nil
	}
}
