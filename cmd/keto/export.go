// ABOUTME: CLI commands for exporting and importing tracker data.
// ABOUTME: Supports JSON and YAML with a versioned envelope.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/keto/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export tracker data",
	Long: `Export the food catalog, daily log, and health entries.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)

EXAMPLES:

  keto export json                  # Export all data as JSON to stdout
  keto export json -o backup.json   # Save to file
  keto export yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := store.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to collect data: %w", err)
		}

		out, err := storage.MarshalExport(data, args[0])
		if err != nil {
			return err
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, out, 0600); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			color.Green("✓ Exported %d foods, %d logs, %d health entries to %s",
				len(data.Foods), len(data.Logs), len(data.Metrics), exportOutput)
			return nil
		}

		fmt.Println(string(out))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tracker data from an export file",
	Long: `Import data from a JSON or YAML export. Records with colliding keys
replace the stored ones; everything else is added.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		data, err := storage.UnmarshalExport(raw)
		if err != nil {
			return err
		}

		if err := store.ImportData(data); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		color.Green("✓ Imported %d foods, %d logs, %d health entries",
			len(data.Foods), len(data.Logs), len(data.Metrics))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
