// ABOUTME: CLI commands for logging food consumption.
// ABOUTME: Log entries snapshot nutrition totals at the time of logging.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/keto/internal/models"
	"github.com/spf13/cobra"
)

var (
	logDate      string
	logListDate  string
	logListLimit int
	logClearDate string
)

var logCmd = &cobra.Command{
	Use:   "log <food> <grams>",
	Short: "Log food consumption",
	Long: `Log consumption of a catalog food.

Carbs and calories are computed from the food's per-100g values at logging
time and stored with the entry; later edits to the food do not change
existing log entries.

EXAMPLES:

  keto log "Eier (ganz)" 120
  keto log Avocado 80 --date 2025-08-30`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		grams, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid quantity: %s", args[1])
		}
		if grams <= 0 {
			return fmt.Errorf("quantity must be positive: %s", args[1])
		}

		date := models.Today()
		if logDate != "" {
			date, err = models.ParseDate(logDate)
			if err != nil {
				return err
			}
		}

		food, err := store.GetFoodItem(args[0])
		if err != nil {
			if matches, serr := store.SearchFoodItems(args[0]); serr == nil && len(matches) == 1 {
				food = matches[0]
			} else {
				return err
			}
		}

		entry := models.NewDailyLog(food, grams, date)
		if err := store.CreateDailyLog(entry); err != nil {
			return fmt.Errorf("failed to log food: %w", err)
		}

		color.Green("✓ Logged %.0fg %s", entry.QuantityGrams, entry.FoodName)
		fmt.Printf("  %s %s  %.1fg carbs  %.0f kcal\n",
			color.New(color.Faint).Sprint(entry.ID.String()[:8]),
			entry.Date, entry.TotalCarbs, entry.TotalCalories)
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List log entries",
	Long: `List recent log entries, most recent first.

The ID is an 8-character prefix you can use with 'keto log rm'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var entries []*models.DailyLog
		var err error

		if logListDate != "" {
			date, derr := models.ParseDate(logListDate)
			if derr != nil {
				return derr
			}
			entries, err = store.ListDailyLogsByDate(date)
		} else {
			entries, err = store.ListDailyLogs(logListLimit)
		}
		if err != nil {
			return fmt.Errorf("failed to list log entries: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No log entries found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			fmt.Printf("%s %s %s %6.0fg %6.1fg carbs %7.0f kcal\n",
				faint.Sprint(e.ID.String()[:8]),
				faint.Sprint(e.Date),
				padRight(e.FoodName, 24),
				e.QuantityGrams, e.TotalCarbs, e.TotalCalories)
		}
		return nil
	},
}

var logDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a log entry by ID or prefix",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := store.GetDailyLog(args[0])
		if err != nil {
			return fmt.Errorf("log entry not found: %s", args[0])
		}

		if err := store.DeleteDailyLog(args[0]); err != nil {
			return fmt.Errorf("failed to delete log entry: %w", err)
		}

		color.Yellow("✗ Deleted %.0fg %s on %s", entry.QuantityGrams, entry.FoodName, entry.Date)
		return nil
	},
}

var logClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all log entries for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		if logClearDate == "" {
			return fmt.Errorf("--date is required")
		}
		date, err := models.ParseDate(logClearDate)
		if err != nil {
			return err
		}
		if err := store.DeleteDailyLogsByDate(date); err != nil {
			return fmt.Errorf("failed to clear log: %w", err)
		}
		color.Yellow("✗ Cleared log for %s", date)
		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "date to log for (YYYY-MM-DD, default today)")
	logListCmd.Flags().StringVar(&logListDate, "date", "", "only show entries for this date")
	logListCmd.Flags().IntVarP(&logListLimit, "limit", "n", 20, "max number of results")
	logClearCmd.Flags().StringVar(&logClearDate, "date", "", "date to clear (YYYY-MM-DD)")
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logDeleteCmd)
	logCmd.AddCommand(logClearCmd)
	rootCmd.AddCommand(logCmd)
}
