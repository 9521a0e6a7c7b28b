// ABOUTME: CLI commands for date-range summaries and food usage ranking.
// ABOUTME: Wraps the nutrition aggregate queries for terminal output.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/keto/internal/models"
	"github.com/spf13/cobra"
)

var (
	summaryStart string
	summaryEnd   string
	topLimit     int
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Per-day nutrition totals for a date range",
	Long: `Show per-day carb and calorie totals for a date range, most recent
first. Days without log entries produce no row.

EXAMPLES:

  keto summary --start 2025-08-01 --end 2025-08-31`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if summaryStart == "" || summaryEnd == "" {
			return fmt.Errorf("--start and --end are required")
		}
		start, err := models.ParseDate(summaryStart)
		if err != nil {
			return err
		}
		end, err := models.ParseDate(summaryEnd)
		if err != nil {
			return err
		}
		if start > end {
			return fmt.Errorf("start must not be after end")
		}

		summaries, err := store.SummariesByRange(start, end)
		if err != nil {
			return fmt.Errorf("failed to get summaries: %w", err)
		}
		if len(summaries) == 0 {
			fmt.Println("No log entries in range.")
			return nil
		}

		limit := cfg.GetCarbLimitGrams()
		for _, s := range summaries {
			line := fmt.Sprintf("%s %6.1fg carbs %7.0f kcal", s.Date, s.TotalCarbs, s.TotalCalories)
			if s.TotalCarbs > limit {
				color.Red(line)
			} else {
				fmt.Println(line)
			}
		}
		return nil
	},
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Most consumed foods",
	Long:  `Rank foods by how often they were logged, with average quantity.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		usages, err := store.MostConsumedFoods(topLimit)
		if err != nil {
			return fmt.Errorf("failed to rank foods: %w", err)
		}
		if len(usages) == 0 {
			fmt.Println("No log entries found.")
			return nil
		}

		faint := color.New(color.Faint)
		for i, u := range usages {
			fmt.Printf("%2d. %s %3d× %s\n",
				i+1, padRight(u.FoodName, 24), u.Count,
				faint.Sprintf("avg %.0fg", u.AvgQuantityGrams))
		}
		return nil
	},
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Carb totals for the trailing week",
	Long: `Show per-day carb totals for the trailing seven days. Days without
log entries are skipped, not shown as zero.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := store.WeeklyCarbTrend(models.Today())
		if err != nil {
			return fmt.Errorf("failed to get carb trend: %w", err)
		}
		if len(points) == 0 {
			fmt.Println("No log entries this week.")
			return nil
		}

		limit := cfg.GetCarbLimitGrams()
		for _, p := range points {
			line := fmt.Sprintf("%s %6.1fg carbs", p.Date, p.TotalCarbs)
			if p.TotalCarbs > limit {
				color.Red(line)
			} else {
				fmt.Println(line)
			}
		}
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryStart, "start", "", "range start (YYYY-MM-DD)")
	summaryCmd.Flags().StringVar(&summaryEnd, "end", "", "range end (YYYY-MM-DD)")
	topCmd.Flags().IntVarP(&topLimit, "limit", "n", 0, "max number of foods (default 10)")
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(weekCmd)
}
