// ABOUTME: CLI command for the HTTP service.
// ABOUTME: Exposes summaries, trends, and logging over a local HTTP API.
package main

import (
	"fmt"

	"github.com/harperreed/keto/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP service",
	Long: `Serve the tracker over HTTP for dashboards and other local clients.

ENDPOINTS:

  GET  /daily-summary?date=YYYY-MM-DD
  GET  /daily-summaries?start=YYYY-MM-DD&end=YYYY-MM-DD
  GET  /most-consumed-foods?limit=N
  GET  /weekly-carb-trend?reference=YYYY-MM-DD
  GET  /health-trend/{metric}?days=N
  GET  /latest-summary
  GET  /foods
  POST /food-log        {"foodName":..., "quantityGrams":..., "date":...}
  POST /health-entry    {"date":..., "weightKg":..., ...}

Absent optional values serialize as null, never as zero.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := server.New(store, cfg)
		fmt.Printf("Serving on %s\n", serveAddr)
		return srv.Run(serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8420", "listen address")
	rootCmd.AddCommand(serveCmd)
}
