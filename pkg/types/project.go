// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data structures shared across the analysis
// pipeline: project metadata, research metadata, detected technologies,
// and the assembled analysis record.
package types

import "time"

// ProjectMetadata holds declarative metadata extracted from a project's
// packaging files (pyproject.toml, setup.py, requirements.txt).
type ProjectMetadata struct {
	// Name is the declared project name, or the directory name as fallback.
	Name string `json:"name" yaml:"name"`

	// Version is the declared version string, empty when undeclared.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Description is the short project description.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Keywords lists declared keywords in source order.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// Dependencies lists declared runtime dependencies in source order,
	// with version specifiers intact.
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`

	// DevDependencies lists declared development dependencies.
	DevDependencies []string `json:"dev_dependencies,omitempty" yaml:"dev_dependencies,omitempty"`

	// Source identifies which file produced this record
	// ("pyproject.toml", "setup.py", or "requirements.txt").
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// ResearchMetadata holds structured research information extracted from a
// README that uses the recognized heading vocabulary. Every field contains
// only list items found under the matching heading; paragraph text is
// never captured.
type ResearchMetadata struct {
	ResearchFocus     []string `json:"research_focus,omitempty" yaml:"research_focus,omitempty"`
	ResearchQuestions []string `json:"research_questions,omitempty" yaml:"research_questions,omitempty"`
	Technologies      []string `json:"technologies,omitempty" yaml:"technologies,omitempty"`
	Keywords          []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	RelatedPapers     []string `json:"related_papers,omitempty" yaml:"related_papers,omitempty"`
	Goals             []string `json:"goals,omitempty" yaml:"goals,omitempty"`
	Methodology       []string `json:"methodology,omitempty" yaml:"methodology,omitempty"`
	Datasets          []string `json:"datasets,omitempty" yaml:"datasets,omitempty"`
}

// IsEmpty reports whether no recognized section produced any items.
func (m ResearchMetadata) IsEmpty() bool {
	return len(m.ResearchFocus) == 0 && len(m.ResearchQuestions) == 0 &&
		len(m.Technologies) == 0 && len(m.Keywords) == 0 &&
		len(m.RelatedPapers) == 0 && len(m.Goals) == 0 &&
		len(m.Methodology) == 0 && len(m.Datasets) == 0
}

// Detection source tags recorded per technology.
const (
	SourceKeyword    = "keyword"
	SourceDependency = "dependency"
	SourceImportScan = "import-scan"
	SourceReadme     = "readme"
)

// DetectedTechnology records one catalog technology found in the project
// and the provenance of each match. Name is always a canonical catalog
// name; Sources is never empty.
type DetectedTechnology struct {
	// Name is the canonical technology name (e.g. "NumPy").
	Name string `json:"name" yaml:"name"`

	// Sources lists the provenance tags that contributed the match,
	// in detection-priority order without duplicates.
	Sources []string `json:"sources" yaml:"sources"`
}

// HasSource reports whether tag is among the recorded provenance tags.
func (d DetectedTechnology) HasSource(tag string) bool {
	for _, s := range d.Sources {
		if s == tag {
			return true
		}
	}
	return false
}

// ProjectAnalysis is the result of one analysis run. It is assembled once
// by the analyzer and read-only afterwards.
type ProjectAnalysis struct {
	// ProjectName is the metadata name, or the directory name when no
	// packaging file declared one.
	ProjectName string `json:"project_name" yaml:"project_name"`

	// ProjectPath is the analyzed project root.
	ProjectPath string `json:"project_path" yaml:"project_path"`

	// FilesAnalyzed counts eligible source files under the root.
	FilesAnalyzed int `json:"files_analyzed" yaml:"files_analyzed"`

	// Metadata is the merged packaging metadata, nil when no source existed.
	Metadata *ProjectMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// ResearchMetadata is the parsed README research metadata, nil when
	// the README was absent or had no recognized sections.
	ResearchMetadata *ResearchMetadata `json:"research_metadata,omitempty" yaml:"research_metadata,omitempty"`

	// Technologies lists detected technologies sorted by canonical name.
	Technologies []DetectedTechnology `json:"technologies" yaml:"technologies"`

	// Imports lists unique import statements found in source files, sorted.
	Imports []string `json:"imports,omitempty" yaml:"imports,omitempty"`

	// Timestamp records when the analysis ran.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// TechnologyNames returns the canonical names of all detected technologies,
// preserving the sorted order of Technologies.
func (a ProjectAnalysis) TechnologyNames() []string {
	names := make([]string, len(a.Technologies))
	for i, t := range a.Technologies {
		names[i] = t.Name
	}
	return names
}

// HasTechnology reports whether a technology with the given canonical name
// was detected.
func (a ProjectAnalysis) HasTechnology(name string) bool {
	for _, t := range a.Technologies {
		if t.Name == name {
			return true
		}
	}
	return false
}
