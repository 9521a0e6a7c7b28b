// ABOUTME: MCP resource implementations for the keto tracker.
// ABOUTME: Provides keto://today, keto://summary, and keto://foods resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/keto/internal/derive"
	"github.com/harperreed/keto/internal/models"
	"github.com/harperreed/keto/internal/trend"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// keto://today - Today's food log and nutrition totals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "keto://today",
		Name:        "Today's Food Log",
		Description: "Entries logged today with carb and calorie totals against the limit",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// keto://summary - Dashboard with latest health values and derived indices
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "keto://summary",
		Name:        "Health Summary Dashboard",
		Description: "Latest value of each health field plus BMI and GKI",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// keto://foods - Full food catalog
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "keto://foods",
		Name:        "Food Catalog",
		Description: "All catalog foods with carb and calorie values per 100g",
		MIMEType:    "application/json",
	}, s.handleFoodsResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := models.Today()

	entries, err := s.repo.ListDailyLogsByDate(today)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's log: %w", err)
	}
	totals, err := s.repo.DailySummary(today)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily summary: %w", err)
	}

	result := map[string]any{
		"date":           today,
		"entries":        entries,
		"total_carbs":    totals.TotalCarbs,
		"total_calories": totals.TotalCalories,
		"carb_limit":     s.cfg.GetCarbLimitGrams(),
	}
	return jsonResource(req.Params.URI, result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary, err := s.repo.LatestHealthSummary()
	if err != nil {
		return nil, fmt.Errorf("failed to get health summary: %w", err)
	}

	result := map[string]any{"latest": summary}

	entries, err := s.repo.ListHealthMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to list health metrics: %w", err)
	}
	if latest := trend.LatestWeight(entries); latest != nil {
		if bmi, ok := derive.BMI(latest, s.cfg.GetHeightMeters()); ok {
			result["bmi"] = bmi
		}
	}
	for _, m := range entries {
		if gki, ok := derive.GKI(m); ok {
			result["gki"] = gki
			result["gki_date"] = m.Date
			break // entries are newest first
		}
	}

	return jsonResource(req.Params.URI, result)
}

func (s *Server) handleFoodsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	foods, err := s.repo.ListFoodItems()
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	return jsonResource(req.Params.URI, map[string]any{"foods": foods})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
