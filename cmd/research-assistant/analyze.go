// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/analyze"
	"github.com/pdiddy/research-assistant/internal/history"
	"github.com/pdiddy/research-assistant/internal/papers"
	"github.com/pdiddy/research-assistant/internal/remote"
	"github.com/pdiddy/research-assistant/internal/report"
	"github.com/pdiddy/research-assistant/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze a project directory and report findings",
	Long: `Analyze scans a project directory, extracts packaging and README
metadata, detects technologies, and renders a report with relevant papers
and improvement suggestions. Defaults to the current directory.

Use --save to write a reloadable analysis file and --history to record the
run in the local history database.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	cfg := assistantConfig()

	quiet, _ := cmd.Flags().GetBool("quiet")
	var progress io.Writer = os.Stderr
	if quiet {
		progress = io.Discard
	}

	project := analyze.New(cfg.Scan, cfg.Query)
	a, err := project.Run(root, progress)
	if err != nil {
		return err
	}

	r, err := buildReport(cmd.Context(), project, a, cfg)
	if err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		savePath = report.ResolvePath(cfg.Report.OutputDir, savePath)
		if err := report.WriteAnalysisFile(savePath, r); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved analysis to %s\n", savePath)
	}

	if saveHistory, _ := cmd.Flags().GetBool("history"); saveHistory {
		id, err := recordHistory(cmd.Context(), cfg.History, r)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Recorded run %s\n", id)
	}

	return renderReport(cmd, r, cfg)
}

// buildReport resolves queries, papers, and suggestions for a completed
// analysis. When the remote backend is enabled its results for the first
// query are merged ahead of the static catalog matches.
func buildReport(ctx context.Context, project *analyze.Project, a *types.ProjectAnalysis, cfg types.AssistantConfig) (*report.Report, error) {
	queries := project.Queries(a)
	matched := papers.Relevant(a, queries, cfg.Query.MaxPapers)

	if cfg.Remote.Enabled && len(queries) > 0 {
		backend := remote.ForConfig(cfg.Remote)
		found, err := backend.Search(ctx, queries[0], cfg.Query.MaxPapers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: backend %s failed: %v\n", backend.Name(), err)
		} else {
			matched = mergePapers(found, matched, cfg.Query.MaxPapers)
		}
	}

	return &report.Report{
		Analysis:    a,
		Queries:     queries,
		Papers:      matched,
		Suggestions: papers.Suggestions(a, matched),
	}, nil
}

// mergePapers prepends remote results to the static matches, deduplicating
// by title and keeping at most max entries.
func mergePapers(remoteResults, static []types.Paper, max int) []types.Paper {
	if max <= 0 {
		max = 5
	}
	seen := make(map[string]bool)
	merged := []types.Paper{}
	for _, p := range append(remoteResults, static...) {
		if p.Title == "" || seen[p.Title] {
			continue
		}
		seen[p.Title] = true
		merged = append(merged, p)
		if len(merged) == max {
			break
		}
	}
	return merged
}

func recordHistory(ctx context.Context, cfg types.HistoryConfig, r *report.Report) (string, error) {
	store, err := history.NewStore(cfg)
	if err != nil {
		return "", err
	}
	defer store.Close()
	return store.Save(ctx, r.Analysis, r.Queries)
}

// renderReport writes the report to stdout (or --output) in the selected
// format.
func renderReport(cmd *cobra.Command, r *report.Report, cfg types.AssistantConfig) error {
	format := cfg.Report.Format
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		format = types.ReportFormat(v)
	}

	var out io.Writer = os.Stdout
	if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
		outPath = report.ResolvePath(cfg.Report.OutputDir, outPath)
		if dir := filepath.Dir(outPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case types.ReportText, "":
		r.WriteText(out)
		return nil
	case types.ReportJSON:
		return r.WriteJSON(out)
	case types.ReportYAML:
		return r.WriteYAML(out)
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", format)
	}
}

func init() {
	analyzeCmd.Flags().String("format", "", "report format: text, json, or yaml")
	analyzeCmd.Flags().String("output", "", "write the report to a file instead of stdout (bare names go to report.output_dir)")
	analyzeCmd.Flags().String("save", "", "save a reloadable analysis file (bare names go to report.output_dir)")
	analyzeCmd.Flags().Bool("history", false, "record the run in the history database")
	analyzeCmd.Flags().Bool("quiet", false, "suppress progress output")

	rootCmd.AddCommand(analyzeCmd)
}
