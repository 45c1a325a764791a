package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Register registers the weather tools on the MCP server.
func (h *Handler) Register(s *server.MCPServer) {
	alerts := mcp.NewTool("get_alerts",
		mcp.WithDescription("Get weather alerts for a US state."),
		mcp.WithString("state",
			mcp.Required(),
			mcp.Description("Two-letter US state code (e.g. CA, NY)"),
		),
	)
	s.AddTool(alerts, h.handleGetAlerts)

	forecast := mcp.NewTool("get_forecast",
		mcp.WithDescription("Get weather forecast for a location."),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("Latitude of the location"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("Longitude of the location"),
		),
	)
	s.AddTool(forecast, h.handleGetForecast)
}

func (h *Handler) handleGetAlerts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := req.RequireString("state")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(h.GetAlerts(ctx, state)), nil
}

func (h *Handler) handleGetForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	latitude, err := req.RequireFloat("latitude")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	longitude, err := req.RequireFloat("longitude")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(h.GetForecast(ctx, latitude, longitude)), nil
}
