package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/leonardcser/look-and-say/internal/config"
	"github.com/leonardcser/look-and-say/internal/logger"
	"github.com/leonardcser/look-and-say/internal/sequence"
	"github.com/leonardcser/look-and-say/internal/session"
	tools "github.com/leonardcser/look-and-say/internal/tools"
)

func main() {
	configPath := flag.String("config", os.Getenv("LOOKANDSAY_CONFIG"), "Path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lookandsay-mcp: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the MCP transport, so logs always go to a file
	logPath := cfg.LogPath
	if logPath == "" {
		logPath = logger.DefaultPath()
	}
	if err := logger.Init(logPath); err != nil {
		panic(err)
	}
	defer logger.Close()
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Warnf("%v, keeping info level", err)
	}

	logger.Infof("Starting look-and-say MCP server")

	sess, err := session.Open(cfg)
	if err != nil {
		logger.Errorf("Failed to open session: %v", err)
		panic(err)
	}
	defer sess.Close()
	logger.Infof("Session %s uses %s cache, default strategy %s", sess.ID(), sess.Backend(), cfg.DefaultStrategy())

	s := server.NewMCPServer(
		"Look-and-say MCP",
		"0.1.0",
		server.WithRecovery(),
		server.WithToolCapabilities(false),
	)
	logger.Infof("Created MCP server instance")

	toolTerm := mcp.NewTool("look-and-say-term",
		mcp.WithDescription(multiline(
			"Computes a term of the look-and-say sequence and returns its middle two digits",
			"\nFunctionality:",
			"- Term 1 is \"1\"; each next term reads the previous one aloud (1, 11, 21, 1211, 111221, ...)",
			"- Returns the two digits around the center of term n",
			"- With full=true the whole term is returned as well",
			"\nUsage notes:",
			fmt.Sprintf("- n must be an integer with %d < n < %d", sequence.MinExclusive, sequence.MaxExclusive),
			"- Terms grow by about 30% per index; term 99 has hundreds of thousands of digits",
			"- Computed terms are cached for the lifetime of this server when the memoized strategy is used",
		)),
		mcp.WithNumber("n", mcp.Required(), mcp.Description("Index of the term, 1-based")),
		mcp.WithString("strategy",
			mcp.Description("How to compute the term; defaults to the server configuration"),
			mcp.Enum(sequence.Recursive.String(), sequence.Iterative.String(), sequence.Memoized.String()),
		),
		mcp.WithBoolean("full", mcp.Description("Also return the full term")),
	)
	s.AddTool(toolTerm, tools.TermHandler(sess.Generator, cfg.DefaultStrategy()))
	logger.Infof("Registered look-and-say-term tool")

	toolMiddle := mcp.NewTool("look-and-say-middle",
		mcp.WithDescription(multiline(
			"Returns the middle two digits of a digit string",
			"\nUsage notes:",
			"- For odd lengths the digit before the center is paired with the center digit",
			"- Strings shorter than two digits are returned unchanged",
		)),
		mcp.WithString("value", mcp.Required(), mcp.Description("A string of decimal digits")),
	)
	s.AddTool(toolMiddle, tools.MiddleHandler())
	logger.Infof("Registered look-and-say-middle tool")

	logger.Infof("Starting MCP server on stdio")
	if err := server.ServeStdio(s); err != nil {
		logger.Errorf("server error: %v", err)
	}
}

// multiline joins lines with newlines for tool descriptions.
func multiline(lines ...string) string { return strings.Join(lines, "\n") }
