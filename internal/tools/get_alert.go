package tools

import (
	"context"

	"github.com/averycrespi/weather-mcp/internal/results"
	"github.com/averycrespi/weather-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetAlertTool handles active weather alert requests
type GetAlertTool struct {
	client types.AlertsClient
}

// NewGetAlertTool creates a new weather alert tool
func NewGetAlertTool(client types.AlertsClient) *GetAlertTool {
	return &GetAlertTool{
		client: client,
	}
}

// GetTool returns the MCP tool definition
func (t *GetAlertTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolGetAlert,
		mcp.WithDescription("Get active weather alerts for a US state"),
		mcp.WithString(ParamState, mcp.Required(), mcp.Description("Two-letter US state code (e.g. CA, NY)")),
	)
	return tool
}

// Handle processes the tool request.
// Upstream failures are not tool errors: they render the same text as an empty result.
func (t *GetAlertTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state := mcp.ParseString(req, ParamState, "")

	result := t.client.ActiveAlerts(ctx, state)

	return mcp.NewToolResultText(results.RenderAlerts(result)), nil
}
