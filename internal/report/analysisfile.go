// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

// AnalysisFile is the on-disk representation of a completed report. A run
// can be saved and re-rendered later without rescanning the project.
type AnalysisFile struct {
	Report  Report          `yaml:"report"`
	Summary AnalysisSummary `yaml:"summary"`
}

// AnalysisSummary stores headline counts and the save timestamp.
type AnalysisSummary struct {
	Technologies int       `yaml:"technologies"`
	Papers       int       `yaml:"papers"`
	Suggestions  int       `yaml:"suggestions"`
	SavedAt      time.Time `yaml:"saved_at"`
}

// WriteAnalysisFile saves a report to a YAML file at path.
func WriteAnalysisFile(path string, r *Report) error {
	af := AnalysisFile{
		Report: *r,
		Summary: AnalysisSummary{
			Technologies: len(r.Analysis.Technologies),
			Papers:       len(r.Papers),
			Suggestions:  len(r.Suggestions),
			SavedAt:      time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&af)
	if err != nil {
		return fmt.Errorf("marshaling analysis file: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadAnalysisFile loads a previously saved report from disk.
func ReadAnalysisFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading analysis file: %w", err)
	}
	var af AnalysisFile
	if err := yaml.Unmarshal(data, &af); err != nil {
		return nil, fmt.Errorf("parsing analysis file: %w", err)
	}
	if af.Report.Analysis == nil {
		return nil, fmt.Errorf("analysis file %s has no analysis record", path)
	}
	return &af.Report, nil
}
