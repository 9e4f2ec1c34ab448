package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/ytgap/internal/output"
	"github.com/ziadkadry99/ytgap/internal/trend"
	"github.com/ziadkadry99/ytgap/internal/trends"
)

func today() string {
	return time.Now().Format(trend.DateLayout)
}

// trendResult is one topic as returned to the MCP client.
type trendResult struct {
	trend.Trend
	SaturationPercent string `json:"saturationPercent"`
}

// handleFetchTrends runs a content-gap search and returns the topics as JSON.
func (s *Server) handleFetchTrends(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date := request.GetString("date", s.now())
	if _, err := time.Parse(trend.DateLayout, date); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", date)), nil
	}

	volume, err := trend.ParseSearchVolume(request.GetString("search_volume", trend.Volume50K.String()))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	saturation, err := trend.ParseSaturationLevel(request.GetString("saturation_level", string(trend.Saturation1Pct)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sortBy, err := trend.ParseSortBy(request.GetString("sort_by", string(trend.SortByDailySearches)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	found, err := s.svc.FetchTrends(ctx, trends.FetchTrendsPayload{
		SelectedDate:    date,
		Niche:           request.GetString("niche", ""),
		SearchVolume:    volume.String(),
		SaturationLevel: string(saturation),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fetching trends failed: %v", err)), nil
	}

	if len(found) == 0 {
		return mcp.NewToolResultText("No topics matched these criteria. Try a lower search volume or a looser saturation level."), nil
	}

	sorted := trend.Sort(found, sortBy)
	results := make([]trendResult, len(sorted))
	for i, t := range sorted {
		results[i] = trendResult{Trend: t, SaturationPercent: output.FormatSaturation(t)}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleGenerateIdeas returns titles and an outline for a term as markdown.
func (s *Server) handleGenerateIdeas(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term, err := request.RequireString("term")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: term"), nil
	}

	ideas, err := s.svc.GenerateIdeas(ctx, trends.GenerateIdeasPayload{Term: term})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generating ideas failed: %v", err)), nil
	}

	return mcp.NewToolResultText(formatIdeas(term, ideas)), nil
}

func formatIdeas(term string, ideas *trend.ContentIdeas) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Video ideas for %q\n\n## Titles\n\n", term)
	for i, title := range ideas.Titles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
	}
	b.WriteString("\n## Outline\n\n")
	b.WriteString(ideas.Outline)
	b.WriteString("\n")
	return b.String()
}
