// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved analysis runs",
	Long: `History lists or searches analysis runs recorded with
"analyze --history". Search uses full-text matching over project names,
detected technologies, and generated queries.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent analysis runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistoryStore(func(s *history.Store) error {
			limit, _ := cmd.Flags().GetInt("limit")
			runs, err := s.List(context.Background(), limit)
			if err != nil {
				return err
			}
			jsonOutput, _ := cmd.Flags().GetBool("json")
			return formatRuns(runs, jsonOutput)
		})
	},
}

var historySearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search saved runs by project, technology, or query text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistoryStore(func(s *history.Store) error {
			limit, _ := cmd.Flags().GetInt("limit")
			runs, err := s.Search(context.Background(), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			jsonOutput, _ := cmd.Flags().GetBool("json")
			return formatRuns(runs, jsonOutput)
		})
	},
}

func withHistoryStore(fn func(*history.Store) error) error {
	store, err := history.NewStore(assistantConfig().History)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func formatRuns(runs []history.Run, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-34s  %-20s  %-6s  %s\n", "Run", "Project", "Files", "Technologies")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, r := range runs {
		techs := strings.Join(r.Technologies, ", ")
		if len(techs) > 36 {
			techs = techs[:33] + "..."
		}
		project := r.ProjectName
		if len(project) > 20 {
			project = project[:17] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-34s  %-20s  %-6d  %s\n", r.ID, project, r.FilesAnalyzed, techs)
	}

	fmt.Fprintf(os.Stdout, "\n%d runs\n", len(runs))
	return nil
}

func init() {
	historyCmd.PersistentFlags().Int("limit", 0, "maximum results (0 = use default)")
	historyCmd.PersistentFlags().Bool("json", false, "output results as JSON")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historySearchCmd)

	rootCmd.AddCommand(historyCmd)
}
