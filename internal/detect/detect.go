// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detect

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pdiddy/research-assistant/internal/metadata"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// accumulator collects matched technologies keyed by canonical name,
// preserving the priority order of provenance tags.
type accumulator map[string][]string

func (a accumulator) add(name, source string) bool {
	for _, s := range a[name] {
		if s == source {
			return false
		}
	}
	a[name] = append(a[name], source)
	return true
}

func (a accumulator) hasSource(name, source string) bool {
	for _, s := range a[name] {
		if s == source {
			return true
		}
	}
	return false
}

// Detect matches the merged metadata and the project's source tree against
// the technology catalog. Sources are applied in fixed priority order so
// provenance reads consistently: declared keywords, dependencies, source
// file contents, then README research text. Empty metadata yields an empty
// result. Progress is written to w.
func Detect(root string, meta *types.ProjectMetadata, research *types.ResearchMetadata, cfg types.ScanConfig, w io.Writer) []types.DetectedTechnology {
	acc := make(accumulator)

	// Declared keywords: project metadata plus README keyword and
	// technology lists. Catalog keys match as substrings.
	var keywords []string
	if meta != nil {
		keywords = append(keywords, meta.Keywords...)
	}
	if research != nil {
		keywords = append(keywords, research.Keywords...)
		keywords = append(keywords, research.Technologies...)
	}
	for _, kw := range keywords {
		lower := strings.ToLower(kw)
		for key, name := range catalog {
			if strings.Contains(lower, key) {
				if acc.add(name, types.SourceKeyword) {
					fmt.Fprintf(w, "  %s via keyword %q\n", name, kw)
				}
			}
		}
	}

	// Declared dependencies: exact lookup on the normalized name.
	if meta != nil {
		for _, dep := range meta.Dependencies {
			if name := catalog[metadata.DependencyName(dep)]; name != "" {
				if acc.add(name, types.SourceDependency) {
					fmt.Fprintf(w, "  %s via dependency %q\n", name, dep)
				}
			}
		}
	}

	// Source file contents: substring scan of each eligible file. A key is
	// skipped once its technology already carries the import-scan tag, so
	// a large tree is not rescanned for technologies already attributed.
	for _, path := range SourceFiles(root, cfg) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		content := strings.ToLower(string(data))
		for key, name := range catalog {
			if acc.hasSource(name, types.SourceImportScan) {
				continue
			}
			if strings.Contains(content, key) {
				acc.add(name, types.SourceImportScan)
			}
		}
	}

	// README research text: focus, methodology, and question items.
	if research != nil {
		var parts []string
		parts = append(parts, research.ResearchFocus...)
		parts = append(parts, research.Methodology...)
		parts = append(parts, research.ResearchQuestions...)
		text := strings.ToLower(strings.Join(parts, " "))
		if text != "" {
			for key, name := range catalog {
				if strings.Contains(text, key) {
					if acc.add(name, types.SourceReadme) {
						fmt.Fprintf(w, "  %s via README research sections\n", name)
					}
				}
			}
		}
	}

	detected := make([]types.DetectedTechnology, 0, len(acc))
	for name, sources := range acc {
		detected = append(detected, types.DetectedTechnology{Name: name, Sources: sources})
	}
	sort.Slice(detected, func(i, j int) bool {
		return detected[i].Name < detected[j].Name
	})
	return detected
}
