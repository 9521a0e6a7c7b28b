// ABOUTME: Root Cobra command for keto CLI.
// ABOUTME: Handles config loading and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/keto/internal/config"
	"github.com/harperreed/keto/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg   *config.Config
	store *storage.DB
)

var rootCmd = &cobra.Command{
	Use:     "keto",
	Version: "0.1.0",
	Short:   "Ketogenic diet and health tracker",
	Long: `Keto is a CLI tool for tracking food intake and health measurements
on a ketogenic diet.

WHAT IT TRACKS:

  Food       a catalog of foods with carbs and calories per 100g
  Intake     consumption events logged in grams against the catalog
  Health     daily weight, waist, glucose, ketones, blood pressure, pulse

QUICK START:

  $ keto log "Eier (ganz)" 120          # Log 120g of eggs for today
  $ keto today                          # Today's carbs/calories vs your limit
  $ keto food add "Feta" 4.1 264        # Add a food (carbs/kcal per 100g)
  $ keto health save --weight 82.5 --glucose 90 --ketones 1.5
  $ keto trend weight --days 30         # Weight series for charting
  $ keto summary --start 2025-08-01 --end 2025-08-31

DERIVED METRICS:

  BMI is computed from your latest weight and configured height.
  GKI (Glucose Ketone Index) is computed from same-day glucose and
  ketone readings and indicates ketosis depth.

SERVING:

  Run 'keto serve' to expose summaries and logging over HTTP, or
  'keto mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Data lives in a SQLite database at ~/.local/share/keto/keto.db.
  On first run the food catalog is seeded with 13 reference foods.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}
