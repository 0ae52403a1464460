package main

import (
	"github.com/fwojciec/webmark/analyze"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run executes the mcp command. It serves the web_analyzer tool over
// stdin/stdout until the client disconnects.
func (c *MCPCmd) Run(deps *Dependencies) error {
	srv := mcp.NewServer(&mcp.Implementation{Name: "webmark", Version: version}, nil)
	analyze.RegisterMCP(srv, deps.Analyzer)
	return srv.Run(deps.Ctx, &mcp.StdioTransport{})
}
