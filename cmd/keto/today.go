// ABOUTME: CLI dashboard command for today's intake and latest health values.
// ABOUTME: Shows carb totals against the configured ketosis limit.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/keto/internal/derive"
	"github.com/harperreed/keto/internal/models"
	"github.com/harperreed/keto/internal/trend"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake and latest health values",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := models.Today()

		totals, err := store.DailySummary(date)
		if err != nil {
			return fmt.Errorf("failed to get daily summary: %w", err)
		}

		limit := cfg.GetCarbLimitGrams()
		fmt.Printf("%s\n\n", color.New(color.Bold).Sprintf("Today (%s)", date))
		carbLine := fmt.Sprintf("  carbs     %.1f / %.0f g", totals.TotalCarbs, limit)
		if totals.TotalCarbs > limit {
			color.Red("%s  over limit", carbLine)
		} else {
			color.Green(carbLine)
		}
		fmt.Printf("  calories  %.0f kcal\n\n", totals.TotalCalories)

		summary, err := store.LatestHealthSummary()
		if err != nil {
			return fmt.Errorf("failed to get health summary: %w", err)
		}
		printLatestSummary(summary)
		return nil
	},
}

func printLatestSummary(s trend.Summary) {
	faint := color.New(color.Faint)
	if s.LatestWeight != nil {
		fmt.Printf("  weight   %.1f kg\n", *s.LatestWeight)
	}
	if s.LatestGlucose != nil {
		fmt.Printf("  glucose  %.0f mg/dL\n", *s.LatestGlucose)
	}
	if s.LatestKetones != nil {
		fmt.Printf("  ketones  %.1f mmol/L\n", *s.LatestKetones)
	}
	if s.LatestSystolic != nil || s.LatestDiastolic != nil {
		m := &models.HealthMetric{BPSystolic: s.LatestSystolic, BPDiastolic: s.LatestDiastolic}
		if bp, ok := derive.FormatBloodPressure(m); ok {
			fmt.Printf("  bp       %s mmHg\n", bp)
		}
	}
	if s.LatestPulse != nil {
		fmt.Printf("  pulse    %d bpm\n", *s.LatestPulse)
	}
	if s.LatestWeight != nil {
		m := &models.HealthMetric{WeightKg: s.LatestWeight}
		if bmi, ok := derive.BMI(m, cfg.GetHeightMeters()); ok {
			fmt.Printf("  bmi      %.1f %s\n", bmi, faint.Sprintf("(height %.2f m)", cfg.GetHeightMeters()))
		}
	}
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
