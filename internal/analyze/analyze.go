// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze orchestrates one analysis run: metadata extraction,
// README parsing, technology detection, and assembly of the final
// ProjectAnalysis record.
package analyze

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/research-assistant/internal/detect"
	"github.com/pdiddy/research-assistant/internal/metadata"
	"github.com/pdiddy/research-assistant/internal/readme"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// ErrProjectNotFound is returned when the project root does not exist or
// is not a directory. It is the only condition that stops a run; every
// nested extraction failure degrades to empty data instead.
var ErrProjectNotFound = errors.New("project directory not found")

// Project analyzes one project directory. It holds no state across runs;
// independent projects can be analyzed concurrently by the caller.
type Project struct {
	cfg types.ScanConfig
	qry types.QueryConfig
}

// New returns a Project analyzer with the given scan and query settings.
func New(cfg types.ScanConfig, qry types.QueryConfig) *Project {
	return &Project{cfg: cfg, qry: qry}
}

// Run analyzes the project at root and assembles the analysis record.
// Progress is written to w. The returned analysis is complete even when
// individual metadata sources were missing or malformed.
func (p *Project) Run(root string, w io.Writer) (*types.ProjectAnalysis, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, root)
	}

	fmt.Fprintf(w, "Analyzing %s\n", root)

	fmt.Fprintln(w, "Extracting packaging metadata")
	meta := metadata.Extract(root, w)

	fmt.Fprintln(w, "Parsing README research metadata")
	research := readme.ParseFile(root)
	if research == nil {
		fmt.Fprintln(w, "  no structured README found")
	}

	fmt.Fprintln(w, "Detecting technologies")
	technologies := detect.Detect(root, meta, research, p.cfg, w)

	files := detect.SourceFiles(root, p.cfg)

	name := filepath.Base(filepath.Clean(root))
	if meta != nil && meta.Name != "" {
		name = meta.Name
	}

	analysis := &types.ProjectAnalysis{
		ProjectName:      name,
		ProjectPath:      root,
		FilesAnalyzed:    len(files),
		Metadata:         meta,
		ResearchMetadata: research,
		Technologies:     technologies,
		Imports:          collectImports(files),
		Timestamp:        time.Now().UTC(),
	}

	fmt.Fprintf(w, "Analyzed %d files, detected %d technologies\n",
		analysis.FilesAnalyzed, len(analysis.Technologies))

	return analysis, nil
}

// Queries builds the research queries for an analysis, preferring README
// research metadata and falling back to declared project keywords.
func (p *Project) Queries(a *types.ProjectAnalysis) []string {
	var fallback []string
	if a.Metadata != nil {
		fallback = a.Metadata.Keywords
	}
	return readme.BuildQueries(a.ResearchMetadata, fallback, p.qry.MaxQueries)
}

// collectImports gathers the unique import statements from the given
// source files, sorted. Unreadable files are skipped.
func collectImports(files []string) []string {
	seen := make(map[string]bool)
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "from ") {
				seen[line] = true
			}
		}
	}

	imports := make([]string, 0, len(seen))
	for line := range seen {
		imports = append(imports, line)
	}
	sort.Strings(imports)
	return imports
}
