// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readme

import (
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

const defaultMaxQueries = 5

// BuildQueries turns research metadata into an ordered list of paper
// search queries: focus areas first, then research questions (with the
// trailing question mark dropped), a combination of the top keywords, and
// finally methodology plus focus pairs. Results are trimmed, deduplicated
// case-insensitively, and capped at maxQueries (default 5).
//
// When meta is nil the keyword fallback is used instead; when both are
// empty the result is empty.
func BuildQueries(meta *types.ResearchMetadata, fallbackKeywords []string, maxQueries int) []string {
	if maxQueries <= 0 {
		maxQueries = defaultMaxQueries
	}

	var raw []string
	if meta != nil {
		raw = append(raw, meta.ResearchFocus...)

		for _, q := range meta.ResearchQuestions {
			raw = append(raw, strings.TrimRight(q, "?"))
		}

		if len(meta.Keywords) >= 2 {
			top := meta.Keywords
			if len(top) > 3 {
				top = top[:3]
			}
			raw = append(raw, strings.Join(top, " "))
		}

		for _, method := range head(meta.Methodology, 2) {
			for _, focus := range head(meta.ResearchFocus, 2) {
				raw = append(raw, method+" "+focus)
			}
		}
	} else {
		raw = fallbackKeywords
	}

	seen := make(map[string]bool)
	var queries []string
	for _, q := range raw {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		key := strings.ToLower(q)
		if seen[key] {
			continue
		}
		seen[key] = true
		queries = append(queries, q)
		if len(queries) == maxQueries {
			break
		}
	}
	return queries
}

// head returns the first n items of s, or s itself when shorter.
func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
