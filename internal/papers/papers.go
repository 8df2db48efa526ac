// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package papers holds the static catalog that maps detected technologies
// and research queries to literal paper records and improvement
// suggestions. There is no retrieval or ranking here: lookups are plain
// substring and equality matches against frozen tables.
package papers

import (
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// queryAliases expands short query tokens into the canonical query used
// for catalog matching.
var queryAliases = map[string]string{
	"mcp":                    "model context protocol llm integration",
	"ai":                     "artificial intelligence machine learning",
	"anomaly detection":      "anomaly detection machine learning",
	"time series":            "time series forecasting deep learning",
	"predictive maintenance": "predictive maintenance ai",
	"partial discharge":      "partial discharge detection machine learning",
	"machine learning":       "machine learning algorithms",
	"deep learning":          "deep learning neural networks",
	"signal processing":      "signal processing analysis",
}

// catalogEntry ties a set of match needles to paper records. A query or
// technology name containing any needle (case-insensitive) yields the
// papers.
type catalogEntry struct {
	needles []string
	papers  []types.Paper
}

var paperCatalog = []catalogEntry{
	{
		needles: []string{"mcp", "model context protocol"},
		papers: []types.Paper{
			{
				Title:    "Model Context Protocol: Standardizing LLM-Tool Integration",
				Authors:  []string{"Anthropic Research Team"},
				Abstract: "A protocol for standardized integration between LLMs and external tools",
				Keywords: []string{"MCP", "LLM", "Tool Integration"},
				URL:      "https://modelcontextprotocol.io",
				Upvotes:  100,
			},
		},
	},
	{
		needles: []string{
			"lstm", "cnn", "random forest", "fault", "anomaly",
			"partial discharge", "machine learning", "deep learning",
			"time series", "signal processing", "predictive maintenance",
		},
		papers: []types.Paper{
			{
				Title:    "Benchmarking ML and DL for Fault Detection",
				Authors:  []string{"Bhuvan Saravanan"},
				Abstract: "Comparative analysis of ML and DL approaches to fault detection",
				Keywords: []string{"Random Forest", "LSTM", "1D-CNN"},
				URL:      "https://hf.co/papers/2505.06295",
				Accuracy: 0.94,
				Upvotes:  1,
			},
		},
	},
}

// ForQuery returns catalog papers whose needles match the query. Lookup
// misses return an empty, non-nil slice.
func ForQuery(query string) []types.Paper {
	lower := strings.ToLower(strings.TrimSpace(query))
	if expanded, ok := queryAliases[lower]; ok {
		lower = expanded
	}

	results := []types.Paper{}
	if lower == "" {
		return results
	}

	for _, entry := range paperCatalog {
		for _, needle := range entry.needles {
			if strings.Contains(lower, needle) {
				results = append(results, entry.papers...)
				break
			}
		}
	}
	return results
}

// ForTechnologies returns the union of catalog papers matched by any of
// the given canonical technology names, deduplicated by title and capped
// at maxPapers (0 means no cap).
func ForTechnologies(technologies []string, maxPapers int) []types.Paper {
	seen := make(map[string]bool)
	results := []types.Paper{}

	for _, tech := range technologies {
		for _, p := range ForQuery(tech) {
			if seen[p.Title] {
				continue
			}
			seen[p.Title] = true
			results = append(results, p)
			if maxPapers > 0 && len(results) == maxPapers {
				return results
			}
		}
	}
	return results
}

// Relevant resolves papers for an analysis: the generated queries are
// tried in order, then detected technology names. Results are
// deduplicated by title and capped at maxPapers.
func Relevant(a *types.ProjectAnalysis, queries []string, maxPapers int) []types.Paper {
	if maxPapers <= 0 {
		maxPapers = 5
	}

	seen := make(map[string]bool)
	results := []types.Paper{}

	add := func(found []types.Paper) bool {
		for _, p := range found {
			if seen[p.Title] {
				continue
			}
			seen[p.Title] = true
			results = append(results, p)
			if len(results) == maxPapers {
				return true
			}
		}
		return false
	}

	for _, q := range queries {
		if add(ForQuery(q)) {
			return results
		}
	}
	if add(ForTechnologies(a.TechnologyNames(), maxPapers)) {
		return results
	}
	return results
}
