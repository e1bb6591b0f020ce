package tools

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/leonardcser/look-and-say/internal/logger"
	"github.com/leonardcser/look-and-say/internal/sequence"
)

// TermHandler returns the MCP tool handler for the "look-and-say-term" tool.
func TermHandler(gen *sequence.Generator, def sequence.Strategy) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if ctx.Err() != nil {
			return mcp.NewToolResultError(ctx.Err().Error()), nil
		}
		n, err := requireIndex(req, "n")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		strategy := def
		if name := req.GetString("strategy", ""); name != "" {
			strategy, err = sequence.ParseStrategy(name)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}

		term, err := gen.Term(ctx, n, strategy)
		if err != nil {
			logger.Warnf("session %s: term %d (%s) failed: %v", gen.ID(), n, strategy, err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		logger.Debugf("session %s: term %d (%s) has %d digits", gen.ID(), n, strategy, len(term))

		return mcp.NewToolResultText(formatTerm(n, term, req.GetBool("full", false))), nil
	}
}

// requireIndex reads an integral numeric argument. JSON numbers arrive as
// float64, so 5.0 is accepted and 5.5 is not.
func requireIndex(req mcp.CallToolRequest, key string) (int, error) {
	raw, ok := req.GetArguments()[key]
	if !ok {
		return 0, fmt.Errorf("required argument %q not found", key)
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("argument %q must be an integer, got %v", key, v)
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("argument %q must be an integer, got %q", key, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("argument %q must be an integer, got %T", key, raw)
	}
}

func formatTerm(n int, term string, full bool) string {
	var sb strings.Builder
	sb.WriteString(sequence.MiddleTwo(term))
	if full {
		fmt.Fprintf(&sb, "\n\nTerm %d (%d digits):\n", n, len(term))
		sb.WriteString(term)
	}
	return sb.String()
}
