// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the research-assistant CLI: analyze
// a project directory, render or re-render reports, generate README
// templates, and browse the analysis history.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-assistant/internal/secrets"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API tokens loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the research-assistant CLI.
var rootCmd = &cobra.Command{
	Use:   "research-assistant",
	Short: "Project analysis and research-paper recommendations",
	Long: `research-assistant scans a local project directory, extracts declared
metadata (pyproject.toml, setup.py, requirements.txt, and a structured
README), detects technologies against a fixed catalog, and reports relevant
papers and improvement suggestions.

Each workflow step is a subcommand: analyze, report, template, and history.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./research-assistant.yaml or ~/.config/research-assistant/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("research-assistant")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "research-assistant"))
		}
	}

	viper.SetEnvPrefix("RESEARCH_ASSISTANT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// assistantConfig merges the built-in defaults with any values set in the
// config file or environment.
func assistantConfig() types.AssistantConfig {
	cfg := types.DefaultConfig()

	if v := viper.GetStringSlice("scan.extensions"); len(v) > 0 {
		cfg.Scan.Extensions = v
	}
	if v := viper.GetInt("scan.max_depth"); v > 0 {
		cfg.Scan.MaxDepth = v
	}
	if v := viper.GetStringSlice("scan.exclude_dirs"); len(v) > 0 {
		cfg.Scan.ExcludeDirs = v
	}
	if v := viper.GetInt("query.max_queries"); v > 0 {
		cfg.Query.MaxQueries = v
	}
	if v := viper.GetInt("query.max_papers"); v > 0 {
		cfg.Query.MaxPapers = v
	}
	if v := viper.GetString("report.format"); v != "" {
		cfg.Report.Format = types.ReportFormat(v)
	}
	if v := viper.GetString("report.output_dir"); v != "" {
		cfg.Report.OutputDir = v
	}
	if viper.GetBool("remote.enabled") {
		cfg.Remote.Enabled = true
	}
	if v := viper.GetInt("remote.max_retries"); v > 0 {
		cfg.Remote.MaxRetries = v
	}
	if v := viper.GetString("history.dir"); v != "" {
		cfg.History.Dir = v
	}
	if v := viper.GetInt("history.max_results"); v > 0 {
		cfg.History.MaxResults = v
	}

	if cfg.Remote.APIToken == "" {
		cfg.Remote.APIToken = loadedSecrets[secrets.HuggingFaceToken]
	}

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
