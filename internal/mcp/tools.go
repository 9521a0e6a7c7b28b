// ABOUTME: MCP tool implementations for the keto tracker.
// ABOUTME: Food logging, catalog management, summaries, and health entries.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/keto/internal/derive"
	"github.com/harperreed/keto/internal/models"
	"github.com/harperreed/keto/internal/trend"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Log consumption of a catalog food in grams for a date",
	}, s.handleLogFood)

	// daily_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "daily_summary",
		Description: "Get total carbs and calories logged for a date",
	}, s.handleDailySummary)

	// most_consumed_foods
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "most_consumed_foods",
		Description: "List foods ranked by how often they were logged",
	}, s.handleMostConsumedFoods)

	// weekly_carb_trend
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_carb_trend",
		Description: "Per-day carb totals for the trailing week",
	}, s.handleWeeklyCarbTrend)

	// add_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_food",
		Description: "Add or replace a food in the catalog (values per 100g)",
	}, s.handleAddFood)

	// list_foods
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_foods",
		Description: "List the food catalog",
	}, s.handleListFoods)

	// delete_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_food",
		Description: "Delete a food from the catalog, removing its log entries",
	}, s.handleDeleteFood)

	// save_health_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_health_entry",
		Description: "Save (upsert) a day's health measurements",
	}, s.handleSaveHealthEntry)

	// health_trend
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "health_trend",
		Description: "Time series for a health metric (weight, waist, glucose, ketones, gki, pulse)",
	}, s.handleHealthTrend)

	// latest_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "latest_summary",
		Description: "Most recent value of each health field plus derived BMI and GKI",
	}, s.handleLatestSummary)
}

// Tool input/output types

type logFoodInput struct {
	FoodName      string  `json:"food_name" jsonschema:"Catalog food name"`
	QuantityGrams float64 `json:"quantity_grams" jsonschema:"Amount consumed in grams"`
	Date          string  `json:"date,omitempty" jsonschema:"ISO date (YYYY-MM-DD), defaults to today"`
}

type logFoodOutput struct {
	ID            string  `json:"id"`
	FoodName      string  `json:"food_name"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalCalories float64 `json:"total_calories"`
	Message       string  `json:"message"`
}

type dateInput struct {
	Date string `json:"date,omitempty" jsonschema:"ISO date (YYYY-MM-DD), defaults to today"`
}

type limitInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 10)"`
}

type addFoodInput struct {
	Name            string  `json:"name" jsonschema:"Food name"`
	CarbsPer100g    float64 `json:"carbs_per_100g" jsonschema:"Carbohydrates per 100g"`
	CaloriesPer100g float64 `json:"calories_per_100g" jsonschema:"Calories per 100g"`
}

type deleteFoodInput struct {
	Name string `json:"name" jsonschema:"Food name"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type saveHealthEntryInput struct {
	Date         string   `json:"date,omitempty" jsonschema:"ISO date (YYYY-MM-DD), defaults to today"`
	WeightKg     *float64 `json:"weight_kg,omitempty" jsonschema:"Body weight in kg"`
	WaistCm      *float64 `json:"waist_cm,omitempty" jsonschema:"Waist circumference in cm"`
	GlucoseMgDl  *float64 `json:"glucose_mg_dl,omitempty" jsonschema:"Blood glucose in mg/dL"`
	KetonesMmolL *float64 `json:"ketones_mmol_l,omitempty" jsonschema:"Blood ketones in mmol/L"`
	BPSystolic   *int     `json:"bp_systolic,omitempty" jsonschema:"Systolic blood pressure in mmHg"`
	BPDiastolic  *int     `json:"bp_diastolic,omitempty" jsonschema:"Diastolic blood pressure in mmHg"`
	PulseBpm     *int     `json:"pulse_bpm,omitempty" jsonschema:"Resting pulse in bpm"`
	Notes        string   `json:"notes,omitempty" jsonschema:"Free-text notes"`
}

type healthTrendInput struct {
	Metric string `json:"metric" jsonschema:"One of weight, waist, glucose, ketones, gki, pulse, bp"`
	Days   int    `json:"days,omitempty" jsonschema:"Trailing window in days (default all)"`
}

// Tool handlers

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, logFoodOutput, error) {
	if input.QuantityGrams <= 0 {
		return nil, logFoodOutput{}, fmt.Errorf("quantity must be positive")
	}
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, logFoodOutput{}, err
	}

	food, err := s.repo.GetFoodItem(input.FoodName)
	if err != nil {
		return nil, logFoodOutput{}, err
	}

	entry := models.NewDailyLog(food, input.QuantityGrams, date)
	if err := s.repo.CreateDailyLog(entry); err != nil {
		return nil, logFoodOutput{}, fmt.Errorf("failed to log food: %w", err)
	}

	return nil, logFoodOutput{
		ID:            entry.ID.String()[:8],
		FoodName:      entry.FoodName,
		TotalCarbs:    entry.TotalCarbs,
		TotalCalories: entry.TotalCalories,
		Message: fmt.Sprintf("Logged %.0fg %s on %s: %.1fg carbs, %.0f kcal",
			entry.QuantityGrams, entry.FoodName, entry.Date, entry.TotalCarbs, entry.TotalCalories),
	}, nil
}

func (s *Server) handleDailySummary(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	totals, err := s.repo.DailySummary(date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get daily summary: %w", err)
	}

	return nil, map[string]any{
		"date":            date,
		"total_carbs":     totals.TotalCarbs,
		"total_calories":  totals.TotalCalories,
		"carb_limit":      s.cfg.GetCarbLimitGrams(),
		"carbs_remaining": s.cfg.GetCarbLimitGrams() - totals.TotalCarbs,
		"over_limit":      totals.TotalCarbs > s.cfg.GetCarbLimitGrams(),
	}, nil
}

func (s *Server) handleMostConsumedFoods(ctx context.Context, req *mcp.CallToolRequest, input limitInput) (*mcp.CallToolResult, any, error) {
	usages, err := s.repo.MostConsumedFoods(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to rank foods: %w", err)
	}
	return nil, map[string]any{"foods": usages}, nil
}

func (s *Server) handleWeeklyCarbTrend(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	reference, err := resolveDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	points, err := s.repo.WeeklyCarbTrend(reference)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get carb trend: %w", err)
	}
	return nil, map[string]any{"reference": reference, "days": points}, nil
}

func (s *Server) handleAddFood(ctx context.Context, req *mcp.CallToolRequest, input addFoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	food := models.NewFoodItem(input.Name, input.CarbsPer100g, input.CaloriesPer100g)
	if err := s.repo.SaveFoodItem(food); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save food: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Saved %s: %.1fg carbs, %.0f kcal per 100g", food.Name, food.CarbsPer100g, food.CaloriesPer100g),
	}, nil
}

func (s *Server) handleListFoods(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	foods, err := s.repo.ListFoodItems()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list foods: %w", err)
	}
	return nil, map[string]any{"foods": foods}, nil
}

func (s *Server) handleDeleteFood(ctx context.Context, req *mcp.CallToolRequest, input deleteFoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteFoodItem(input.Name); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted %s and its log entries", input.Name),
	}, nil
}

func (s *Server) handleSaveHealthEntry(ctx context.Context, req *mcp.CallToolRequest, input saveHealthEntryInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	entry := models.NewHealthMetric(date)
	entry.WeightKg = input.WeightKg
	entry.WaistCm = input.WaistCm
	entry.GlucoseMgDl = input.GlucoseMgDl
	entry.KetonesMmolL = input.KetonesMmolL
	entry.BPSystolic = input.BPSystolic
	entry.BPDiastolic = input.BPDiastolic
	entry.PulseBpm = input.PulseBpm
	if input.Notes != "" {
		entry.WithNotes(input.Notes)
	}

	if err := s.repo.SaveHealthMetric(entry); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save health entry: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Saved health entry for %s", date),
	}, nil
}

func (s *Server) handleHealthTrend(ctx context.Context, req *mcp.CallToolRequest, input healthTrendInput) (*mcp.CallToolResult, any, error) {
	if input.Metric == "bp" {
		points, err := s.repo.BloodPressureTrend(input.Days)
		if err != nil {
			return nil, nil, err
		}
		return nil, map[string]any{"metric": "bp", "points": points}, nil
	}

	points, err := s.repo.HealthSeries(input.Metric, input.Days)
	if err != nil {
		return nil, nil, err
	}
	return nil, map[string]any{"metric": input.Metric, "points": points}, nil
}

func (s *Server) handleLatestSummary(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	summary, err := s.repo.LatestHealthSummary()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get health summary: %w", err)
	}

	result := map[string]any{"summary": summary}

	entries, err := s.repo.ListHealthMetrics()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list health metrics: %w", err)
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

	return nil, result, nil
}

func resolveDate(date string) (string, error) {
	if date == "" {
		return models.Today(), nil
	}
	return models.ParseDate(date)
}
