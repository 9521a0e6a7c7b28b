// ABOUTME: CLI command for health metric time series.
// ABOUTME: Prints ascending per-date values suitable for charting.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var trendDays int

var trendCmd = &cobra.Command{
	Use:   "trend <metric>",
	Short: "Show a health metric's time series",
	Long: `Show the time series of a health metric, oldest first.

METRICS:

  weight, waist, glucose, ketones, gki, pulse, bp

Only dates where the metric was recorded appear; charts should treat
missing dates as gaps, not zeroes. The gki series covers dates with both
glucose and ketone readings (ketones must be above zero).

EXAMPLES:

  keto trend weight --days 30
  keto trend gki
  keto trend bp --days 90`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"weight", "waist", "glucose", "ketones", "gki", "pulse", "bp"},
	RunE: func(cmd *cobra.Command, args []string) error {
		metric := args[0]
		faint := color.New(color.Faint)

		if metric == "bp" {
			points, err := store.BloodPressureTrend(trendDays)
			if err != nil {
				return err
			}
			if len(points) == 0 {
				fmt.Println("No readings found.")
				return nil
			}
			for _, p := range points {
				sys, dia := "-", "-"
				if p.Systolic != nil {
					sys = fmt.Sprintf("%d", *p.Systolic)
				}
				if p.Diastolic != nil {
					dia = fmt.Sprintf("%d", *p.Diastolic)
				}
				fmt.Printf("%s %s/%s %s\n", faint.Sprint(p.Date), sys, dia, faint.Sprint("mmHg"))
			}
			return nil
		}

		points, err := store.HealthSeries(metric, trendDays)
		if err != nil {
			return err
		}
		if len(points) == 0 {
			fmt.Println("No readings found.")
			return nil
		}
		for _, p := range points {
			fmt.Printf("%s %8.1f\n", faint.Sprint(p.Date), p.Value)
		}
		return nil
	},
}

func init() {
	trendCmd.Flags().IntVar(&trendDays, "days", 0, "trailing window in days (default all)")
	rootCmd.AddCommand(trendCmd)
}
