// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report [analysis-file]",
	Short: "Re-render a saved analysis file",
	Long: `Report loads an analysis file previously written by "analyze --save"
and renders it again in the selected format, without rescanning the
project.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	r, err := report.ReadAnalysisFile(args[0])
	if err != nil {
		return fmt.Errorf("loading analysis: %w", err)
	}
	return renderReport(cmd, r, assistantConfig())
}

func init() {
	reportCmd.Flags().String("format", "", "report format: text, json, or yaml")
	reportCmd.Flags().String("output", "", "write the report to a file instead of stdout")

	rootCmd.AddCommand(reportCmd)
}
