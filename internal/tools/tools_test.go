package tools

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardcser/look-and-say/internal/logger"
	"github.com/leonardcser/look-and-say/internal/sequence"
)

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), name string, args map[string]interface{}) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Content, 1)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return textContent.Text, result.IsError
}

func TestTermHandler(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWriter(&buf)
	t.Cleanup(func() { _ = logger.Close() })

	gen := sequence.NewGenerator(nil)
	handler := TermHandler(gen, sequence.Memoized)

	t.Run("middle digits", func(t *testing.T) {
		text, isErr := callTool(t, handler, "look-and-say-term", map[string]interface{}{"n": float64(5)})
		assert.False(t, isErr)
		assert.Equal(t, "12", text)
	})

	t.Run("full term", func(t *testing.T) {
		text, isErr := callTool(t, handler, "look-and-say-term", map[string]interface{}{
			"n":        float64(8),
			"strategy": "recursive",
			"full":     true,
		})
		assert.False(t, isErr)
		assert.Equal(t, "21\n\nTerm 8 (10 digits):\n1113213211", text)
	})

	t.Run("string index", func(t *testing.T) {
		text, isErr := callTool(t, handler, "look-and-say-term", map[string]interface{}{"n": "4"})
		assert.False(t, isErr)
		assert.Equal(t, "21", text)
	})

	t.Run("out of domain", func(t *testing.T) {
		for _, n := range []float64{3, 100} {
			text, isErr := callTool(t, handler, "look-and-say-term", map[string]interface{}{"n": n})
			assert.True(t, isErr)
			assert.Contains(t, text, "3 < n < 100")
		}
	})

	t.Run("not an integer", func(t *testing.T) {
		text, isErr := callTool(t, handler, "look-and-say-term", map[string]interface{}{"n": 4.5})
		assert.True(t, isErr)
		assert.Contains(t, text, "integer")

		_, isErr = callTool(t, handler, "look-and-say-term", map[string]interface{}{"n": true})
		assert.True(t, isErr)
	})

	t.Run("missing n", func(t *testing.T) {
		_, isErr := callTool(t, handler, "look-and-say-term", map[string]interface{}{})
		assert.True(t, isErr)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		text, isErr := callTool(t, handler, "look-and-say-term", map[string]interface{}{"n": float64(5), "strategy": "guess"})
		assert.True(t, isErr)
		assert.Contains(t, text, "unknown strategy")
	})
}

func TestTermHandler_SharesSessionCache(t *testing.T) {
	logger.InitWriter(io.Discard)
	t.Cleanup(func() { _ = logger.Close() })

	gen := sequence.NewGenerator(nil)
	handler := TermHandler(gen, sequence.Memoized)

	callTool(t, handler, "look-and-say-term", map[string]interface{}{"n": float64(20)})
	encodes := gen.Stats().Encodes
	callTool(t, handler, "look-and-say-term", map[string]interface{}{"n": float64(20)})
	assert.Equal(t, encodes, gen.Stats().Encodes)
	assert.Equal(t, int64(1), gen.Stats().CacheHits)
}

func TestMiddleHandler(t *testing.T) {
	handler := MiddleHandler()

	text, isErr := callTool(t, handler, "look-and-say-middle", map[string]interface{}{"value": "111221"})
	assert.False(t, isErr)
	assert.Equal(t, "12", text)

	text, isErr = callTool(t, handler, "look-and-say-middle", map[string]interface{}{"value": "7"})
	assert.False(t, isErr)
	assert.Equal(t, "7", text)

	_, isErr = callTool(t, handler, "look-and-say-middle", map[string]interface{}{"value": "12x4"})
	assert.True(t, isErr)

	_, isErr = callTool(t, handler, "look-and-say-middle", map[string]interface{}{})
	assert.True(t, isErr)
}
