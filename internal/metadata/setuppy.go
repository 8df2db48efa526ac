// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// Best-effort patterns for the common setup(...) keyword arguments. A
// setup.py that computes these values dynamically simply yields partial
// metadata.
var (
	setupNameRe     = regexp.MustCompile(`name\s*=\s*["']([^"']+)["']`)
	setupVersionRe  = regexp.MustCompile(`version\s*=\s*["']([^"']+)["']`)
	setupDescRe     = regexp.MustCompile(`description\s*=\s*["']([^"']+)["']`)
	setupKeywordsRe = regexp.MustCompile(`keywords\s*=\s*\[([^\]]+)\]`)
	setupRequiresRe = regexp.MustCompile(`install_requires\s*=\s*\[([^\]]+)\]`)
)

// FromSetupPy extracts metadata from root/setup.py by pattern matching.
// It returns nil when the file is absent. A present file always yields a
// record with at least the directory name.
func FromSetupPy(root string) *types.ProjectMetadata {
	data, err := os.ReadFile(filepath.Join(root, "setup.py"))
	if err != nil {
		return nil
	}
	content := string(data)

	m := &types.ProjectMetadata{
		Name:   filepath.Base(root),
		Source: "setup.py",
	}

	if match := setupNameRe.FindStringSubmatch(content); match != nil {
		m.Name = match[1]
	}
	if match := setupVersionRe.FindStringSubmatch(content); match != nil {
		m.Version = match[1]
	}
	if match := setupDescRe.FindStringSubmatch(content); match != nil {
		m.Description = match[1]
	}
	if match := setupKeywordsRe.FindStringSubmatch(content); match != nil {
		m.Keywords = splitQuotedList(match[1])
	}
	if match := setupRequiresRe.FindStringSubmatch(content); match != nil {
		m.Dependencies = splitQuotedList(match[1])
	}

	return m
}

// splitQuotedList splits a Python list literal body ("a", 'b', ...) into
// trimmed, unquoted items, dropping empties.
func splitQuotedList(body string) []string {
	var items []string
	for _, part := range strings.Split(body, ",") {
		item := strings.Trim(strings.TrimSpace(part), `"'`)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
