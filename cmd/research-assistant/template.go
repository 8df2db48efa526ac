// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/readme"
)

var templateCmd = &cobra.Command{
	Use:   "template [path]",
	Short: "Write a structured README template",
	Long: `Template writes a README skeleton containing every heading the
assistant recognizes, with placeholder list items. Projects that keep the
structure get full research-metadata extraction. Defaults to ./README.md.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "README.md"
		if len(args) == 1 {
			path = args[0]
		}
		name, _ := cmd.Flags().GetString("name")

		if err := readme.WriteTemplate(path, name); err != nil {
			return err
		}
		fmt.Printf("Wrote README template to %s\n", path)
		return nil
	},
}

func init() {
	templateCmd.Flags().String("name", "", "project name for the template title")

	rootCmd.AddCommand(templateCmd)
}
