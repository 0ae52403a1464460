package analyze

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/webmark"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterMCP registers the web_analyzer tool on an MCP server. The
// tool returns the report envelope as JSON text: analysis failures
// travel inside the envelope with success false, and only a malformed
// tool call produces an MCP-level tool error.
func RegisterMCP(srv *mcp.Server, analyzer *Analyzer) {
	tool := &mcp.Tool{
		Name:        "web_analyzer",
		Description: "Convert a web page into structured markdown. Returns a JSON report with success, error, and result fields.",
		InputSchema: inputSchema(map[string]any{
			"url": map[string]any{"type": "string", "description": "URL of the page to analyze"},
			"mode": map[string]any{
				"type":        "string",
				"enum":        []string{webmark.ModeDigest, webmark.ModeArticle},
				"description": "Analysis mode: digest ranks individual elements, article converts the main content wholesale. Defaults to digest.",
			},
		}, []string{"url"}),
	}

	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			URL  string `json:"url"`
			Mode string `json:"mode"`
		}
		if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
			var res mcp.CallToolResult
			res.SetError(err)
			return &res, nil
		}

		report := analyzer.Analyze(ctx, args.URL, args.Mode)

		data, err := json.Marshal(report)
		if err != nil {
			var res mcp.CallToolResult
			res.SetError(err)
			return &res, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		}, nil
	})
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}
