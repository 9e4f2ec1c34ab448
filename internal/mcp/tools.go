package mcp

import "github.com/mark3labs/mcp-go/mcp"

// fetchTrendsTool defines the fetch_trends MCP tool.
var fetchTrendsTool = mcp.NewTool("fetch_trends",
	mcp.WithDescription("Find YouTube search topics with high daily demand and very few existing videos."),
	mcp.WithString("date",
		mcp.Description("Calendar date to search for, YYYY-MM-DD (default today)"),
	),
	mcp.WithString("niche",
		mcp.Description("Optional niche the topics must belong to"),
	),
	mcp.WithString("search_volume",
		mcp.Description("Minimum daily searches (default 50000)"),
		mcp.Enum("10000", "50000", "100000", "500000"),
	),
	mcp.WithString("saturation_level",
		mcp.Description("Maximum ratio of existing videos to daily searches (default 0.01)"),
		mcp.Enum("0.05", "0.01", "0.001", "0.0001"),
	),
	mcp.WithString("sort_by",
		mcp.Description("Ordering of the returned topics (default dailySearches)"),
		mcp.Enum("dailySearches", "saturation", "videoCount"),
	),
)

// generateIdeasTool defines the generate_ideas MCP tool.
var generateIdeasTool = mcp.NewTool("generate_ideas",
	mcp.WithDescription("Generate five video titles and a sample outline for a search term."),
	mcp.WithString("term",
		mcp.Required(),
		mcp.Description("The search term to build a video around"),
	),
)
