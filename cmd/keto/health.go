// ABOUTME: CLI commands for daily health entries.
// ABOUTME: Save upserts by date; every measurement flag is optional.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/keto/internal/derive"
	"github.com/harperreed/keto/internal/models"
	"github.com/spf13/cobra"
)

var (
	healthDate    string
	healthWeight  float64
	healthWaist   float64
	healthGlucose float64
	healthKetones float64
	healthBP      string
	healthPulse   int
	healthNotes   string
	healthDays    int
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Track daily health measurements",
	Long: `Track weight, waist, glucose, ketones, blood pressure, and pulse.

One entry exists per date. Saving again for the same date replaces the
earlier entry. Every measurement is optional; record only what you measured.`,
}

var healthSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save (upsert) a day's health entry",
	Long: `Save the health entry for a date, replacing any earlier entry for it.

EXAMPLES:

  keto health save --weight 82.5
  keto health save --glucose 90 --ketones 1.5 --date 2025-08-30
  keto health save --bp 120/80 --pulse 62 --notes "after fasting"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := models.Today()
		if healthDate != "" {
			var err error
			date, err = models.ParseDate(healthDate)
			if err != nil {
				return err
			}
		}

		entry := models.NewHealthMetric(date)
		if cmd.Flags().Changed("weight") {
			entry.WithWeight(healthWeight)
		}
		if cmd.Flags().Changed("waist") {
			entry.WithWaist(healthWaist)
		}
		if cmd.Flags().Changed("glucose") {
			entry.WithGlucose(healthGlucose)
		}
		if cmd.Flags().Changed("ketones") {
			entry.WithKetones(healthKetones)
		}
		if cmd.Flags().Changed("pulse") {
			entry.WithPulse(healthPulse)
		}
		if healthNotes != "" {
			entry.WithNotes(healthNotes)
		}
		if healthBP != "" {
			sys, dia, err := parseBloodPressure(healthBP)
			if err != nil {
				return err
			}
			entry.WithBloodPressure(sys, dia)
		}

		if err := store.SaveHealthMetric(entry); err != nil {
			return fmt.Errorf("failed to save health entry: %w", err)
		}

		color.Green("✓ Saved health entry for %s", date)
		printHealthEntry(entry)
		return nil
	},
}

var healthListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List health entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.ListHealthMetrics()
		if err != nil {
			return fmt.Errorf("failed to list health entries: %w", err)
		}
		if healthDays > 0 && len(entries) > healthDays {
			entries = entries[:healthDays]
		}
		if len(entries) == 0 {
			fmt.Println("No health entries found.")
			return nil
		}
		for _, e := range entries {
			fmt.Println(color.New(color.Faint).Sprint(e.Date))
			printHealthEntry(e)
		}
		return nil
	},
}

var healthDeleteCmd = &cobra.Command{
	Use:     "delete <date>",
	Aliases: []string{"rm"},
	Short:   "Delete the health entry for a date",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := models.ParseDate(args[0])
		if err != nil {
			return err
		}
		if err := store.DeleteHealthMetric(date); err != nil {
			return err
		}
		color.Yellow("✗ Deleted health entry for %s", date)
		return nil
	},
}

func printHealthEntry(e *models.HealthMetric) {
	if e.WeightKg != nil {
		fmt.Printf("  weight   %.1f kg\n", *e.WeightKg)
	}
	if e.WaistCm != nil {
		fmt.Printf("  waist    %.1f cm\n", *e.WaistCm)
	}
	if e.GlucoseMgDl != nil {
		fmt.Printf("  glucose  %.0f mg/dL\n", *e.GlucoseMgDl)
	}
	if e.KetonesMmolL != nil {
		fmt.Printf("  ketones  %.1f mmol/L\n", *e.KetonesMmolL)
	}
	if bp, ok := derive.FormatBloodPressure(e); ok {
		fmt.Printf("  bp       %s mmHg\n", bp)
	}
	if e.PulseBpm != nil {
		fmt.Printf("  pulse    %d bpm\n", *e.PulseBpm)
	}
	if gki, ok := derive.GKI(e); ok {
		fmt.Printf("  gki      %.1f\n", gki)
	}
	if e.Notes != nil && *e.Notes != "" {
		fmt.Printf("  notes    %s\n", *e.Notes)
	}
}

// parseBloodPressure splits a "sys/dia" argument into its two readings.
func parseBloodPressure(s string) (int, int, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid blood pressure %q (want sys/dia, e.g. 120/80)", s)
	}
	sys, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid systolic value: %s", parts[0])
	}
	dia, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid diastolic value: %s", parts[1])
	}
	return sys, dia, nil
}

func init() {
	healthSaveCmd.Flags().StringVar(&healthDate, "date", "", "date of the entry (YYYY-MM-DD, default today)")
	healthSaveCmd.Flags().Float64Var(&healthWeight, "weight", 0, "body weight in kg")
	healthSaveCmd.Flags().Float64Var(&healthWaist, "waist", 0, "waist circumference in cm")
	healthSaveCmd.Flags().Float64Var(&healthGlucose, "glucose", 0, "blood glucose in mg/dL")
	healthSaveCmd.Flags().Float64Var(&healthKetones, "ketones", 0, "blood ketones in mmol/L")
	healthSaveCmd.Flags().StringVar(&healthBP, "bp", "", "blood pressure as sys/dia (e.g. 120/80)")
	healthSaveCmd.Flags().IntVar(&healthPulse, "pulse", 0, "resting pulse in bpm")
	healthSaveCmd.Flags().StringVar(&healthNotes, "notes", "", "notes for the entry")
	healthListCmd.Flags().IntVarP(&healthDays, "limit", "n", 0, "max number of entries")
	healthCmd.AddCommand(healthSaveCmd)
	healthCmd.AddCommand(healthListCmd)
	healthCmd.AddCommand(healthDeleteCmd)
	rootCmd.AddCommand(healthCmd)
}
