// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package readme parses structured README files into research metadata.
// Only a fixed heading vocabulary is recognized, and only list items under
// a recognized heading are captured; paragraph text is intentionally
// ignored. That keeps extraction mechanical and predictable for READMEs
// written against the template.
package readme

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// section identifies a ResearchMetadata field.
type section int

const (
	secFocus section = iota
	secQuestions
	secTechnologies
	secKeywords
	secRelatedPapers
	secGoals
	secMethodology
	secDatasets
)

// headingSections maps lowercased heading text to the metadata field it
// populates. Multi-word needles match as substrings; single-word needles
// require the whole heading, so generic words like "data" do not claim
// headings such as "Metadata" or "Data Cleaning Notes". Aliases cover the
// common ways research READMEs title these sections.
var headingSections = []struct {
	needle string
	sec    section
}{
	{"research focus", secFocus},
	{"research area", secFocus},
	{"research domain", secFocus},
	{"focus area", secFocus},
	{"research questions", secQuestions},
	{"research problem", secQuestions},
	{"key questions", secQuestions},
	{"questions", secQuestions},
	{"technologies", secTechnologies},
	{"tech stack", secTechnologies},
	{"tools", secTechnologies},
	{"frameworks", secTechnologies},
	{"keywords", secKeywords},
	{"tags", secKeywords},
	{"topics", secKeywords},
	{"related papers", secRelatedPapers},
	{"references", secRelatedPapers},
	{"papers", secRelatedPapers},
	{"literature", secRelatedPapers},
	{"goals", secGoals},
	{"objectives", secGoals},
	{"aims", secGoals},
	{"methodology", secMethodology},
	{"approach", secMethodology},
	{"methods", secMethodology},
	{"datasets", secDatasets},
	{"data sources", secDatasets},
	{"data", secDatasets},
}

var (
	headingRe  = regexp.MustCompile(`^#{2,3}\s+(.+)$`)
	listItemRe = regexp.MustCompile(`^(?:[-*+]|\d+\.|>)\s+(.*)$`)

	linkRe   = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	codeRe   = regexp.MustCompile("`([^`]+)`")
	boldRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*]+)\*`)
)

// ParseFile reads root/README.md and extracts research metadata. It
// returns nil when the file is missing, unreadable, or contains no items
// under any recognized heading.
func ParseFile(root string) *types.ResearchMetadata {
	data, err := os.ReadFile(filepath.Join(root, "README.md"))
	if err != nil {
		return nil
	}
	return Parse(string(data))
}

// Parse extracts research metadata from README text. Headings outside the
// recognized vocabulary are skipped along with their bodies. Returns nil
// when nothing was captured.
func Parse(content string) *types.ResearchMetadata {
	var meta types.ResearchMetadata

	collecting := false
	var current section

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if m := headingRe.FindStringSubmatch(trimmed); m != nil {
			current, collecting = matchHeading(m[1])
			continue
		}

		if !collecting {
			continue
		}

		item := listItemRe.FindStringSubmatch(trimmed)
		if item == nil {
			// Paragraph text under a recognized heading is not captured.
			continue
		}

		text := stripMarkup(item[1])
		if text == "" {
			continue
		}

		switch current {
		case secFocus:
			meta.ResearchFocus = append(meta.ResearchFocus, text)
		case secQuestions:
			meta.ResearchQuestions = append(meta.ResearchQuestions, text)
		case secTechnologies:
			meta.Technologies = append(meta.Technologies, text)
		case secKeywords:
			meta.Keywords = append(meta.Keywords, text)
		case secRelatedPapers:
			meta.RelatedPapers = append(meta.RelatedPapers, text)
		case secGoals:
			meta.Goals = append(meta.Goals, text)
		case secMethodology:
			meta.Methodology = append(meta.Methodology, text)
		case secDatasets:
			meta.Datasets = append(meta.Datasets, text)
		}
	}

	if meta.IsEmpty() {
		return nil
	}
	return &meta
}

// matchHeading resolves a heading against the recognized vocabulary.
func matchHeading(heading string) (section, bool) {
	lower := strings.ToLower(strings.TrimSpace(heading))
	for _, h := range headingSections {
		if strings.Contains(h.needle, " ") {
			if strings.Contains(lower, h.needle) {
				return h.sec, true
			}
		} else if lower == h.needle {
			return h.sec, true
		}
	}
	return 0, false
}

// stripMarkup removes markdown links (keeping the visible text), inline
// code, and emphasis from a list item.
func stripMarkup(s string) string {
	s = linkRe.ReplaceAllString(s, "$1")
	s = codeRe.ReplaceAllString(s, "$1")
	s = boldRe.ReplaceAllString(s, "$1")
	s = italicRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
