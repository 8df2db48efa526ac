// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders a completed analysis, its matched papers, and
// its suggestions as text, JSON, or YAML. Formatting details are
// cosmetic; the structured encodings are the stable surface.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// Report bundles everything one analysis run produced.
type Report struct {
	Analysis    *types.ProjectAnalysis `json:"analysis" yaml:"analysis"`
	Queries     []string               `json:"queries,omitempty" yaml:"queries,omitempty"`
	Papers      []types.Paper          `json:"papers" yaml:"papers"`
	Suggestions []types.Suggestion     `json:"suggestions" yaml:"suggestions"`
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes the report as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteText writes the human-readable report.
func (r *Report) WriteText(w io.Writer) {
	a := r.Analysis

	rule := strings.Repeat("=", 64)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "RESEARCH ASSISTANT REPORT")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Project: %s\n", a.ProjectName)
	fmt.Fprintf(w, "Files analyzed: %d\n", a.FilesAnalyzed)

	if m := a.Metadata; m != nil {
		fmt.Fprintln(w, "\nProject metadata:")
		fmt.Fprintf(w, "  Name:         %s\n", m.Name)
		fmt.Fprintf(w, "  Version:      %s\n", orNA(m.Version))
		fmt.Fprintf(w, "  Keywords:     %s\n", orNA(strings.Join(m.Keywords, ", ")))
		fmt.Fprintf(w, "  Dependencies: %d declared (%s)\n", len(m.Dependencies), m.Source)
	}

	if rm := a.ResearchMetadata; rm != nil {
		fmt.Fprintln(w, "\nResearch metadata (README):")
		fmt.Fprintf(w, "  Focus:       %s\n", orNA(strings.Join(rm.ResearchFocus, ", ")))
		fmt.Fprintf(w, "  Keywords:    %s\n", orNA(strings.Join(firstN(rm.Keywords, 5), ", ")))
		fmt.Fprintf(w, "  Questions:   %d\n", len(rm.ResearchQuestions))
		fmt.Fprintf(w, "  Goals:       %d\n", len(rm.Goals))
		fmt.Fprintf(w, "  Methodology: %d steps\n", len(rm.Methodology))
	}

	fmt.Fprintf(w, "\nDetected technologies (%d):\n", len(a.Technologies))
	if len(a.Technologies) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, tech := range a.Technologies {
		fmt.Fprintf(w, "  %-30s %s\n", tech.Name, strings.Join(tech.Sources, ", "))
	}

	if len(r.Queries) > 0 {
		fmt.Fprintln(w, "\nResearch queries:")
		for i, q := range r.Queries {
			fmt.Fprintf(w, "  %d. %s\n", i+1, q)
		}
	}

	fmt.Fprintln(w, "\nRelevant papers:")
	if len(r.Papers) == 0 {
		fmt.Fprintln(w, "  (none matched)")
	}
	for i, p := range r.Papers {
		fmt.Fprintf(w, "  %d. %s\n", i+1, p.Title)
		fmt.Fprintf(w, "     Authors:  %s\n", strings.Join(firstN(p.Authors, 3), ", "))
		if len(p.Keywords) > 0 {
			fmt.Fprintf(w, "     Keywords: %s\n", strings.Join(firstN(p.Keywords, 5), ", "))
		}
		fmt.Fprintf(w, "     URL:      %s\n", p.URL)
	}

	fmt.Fprintf(w, "\nSuggestions (%d):\n", len(r.Suggestions))
	for i, s := range r.Suggestions {
		fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, s.Category, s.Text)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
}

// ResolvePath places a bare file name under the configured output
// directory. A path that already names a directory (relative or
// absolute) is returned unchanged, as is any path when dir is empty.
func ResolvePath(dir, path string) string {
	if dir == "" || path == "" {
		return path
	}
	if filepath.IsAbs(path) || strings.ContainsAny(path, `/\`) {
		return path
	}
	return filepath.Join(dir, path)
}

// orNA substitutes "n/a" for an empty value.
func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}

// firstN returns the first n items of s, or s itself when shorter.
func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
