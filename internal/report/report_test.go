// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-assistant/pkg/types"
)

func sampleReport() *Report {
	return &Report{
		Analysis: &types.ProjectAnalysis{
			ProjectName:   "pd-detector",
			ProjectPath:   "/tmp/pd-detector",
			FilesAnalyzed: 7,
			Metadata: &types.ProjectMetadata{
				Name:         "pd-detector",
				Version:      "0.3.1",
				Keywords:     []string{"mcp", "lstm"},
				Dependencies: []string{"numpy>=1.26"},
				Source:       "pyproject.toml",
			},
			ResearchMetadata: &types.ResearchMetadata{
				ResearchFocus: []string{"anomaly detection"},
				Keywords:      []string{"lstm", "transformers"},
			},
			Technologies: []types.DetectedTechnology{
				{Name: "LSTM Networks", Sources: []string{types.SourceKeyword, types.SourceReadme}},
				{Name: "NumPy", Sources: []string{types.SourceDependency}},
			},
			Timestamp: time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
		},
		Queries: []string{"anomaly detection"},
		Papers: []types.Paper{
			{
				Title:   "Benchmarking ML and DL for Fault Detection",
				Authors: []string{"Bhuvan Saravanan"},
				URL:     "https://hf.co/papers/2505.06295",
			},
		},
		Suggestions: []types.Suggestion{
			{Text: "Add k-fold cross-validation", Category: types.CategoryEvaluation},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	sampleReport().WriteText(&buf)
	out := buf.String()

	assert.Contains(t, out, "Project: pd-detector")
	assert.Contains(t, out, "Files analyzed: 7")
	assert.Contains(t, out, "LSTM Networks")
	assert.Contains(t, out, "keyword, readme")
	assert.Contains(t, out, "Benchmarking ML and DL for Fault Detection")
	assert.Contains(t, out, "[evaluation] Add k-fold cross-validation")
}

func TestWriteTextEmptySections(t *testing.T) {
	r := &Report{Analysis: &types.ProjectAnalysis{ProjectName: "bare"}}
	var buf bytes.Buffer
	r.WriteText(&buf)
	out := buf.String()

	assert.Contains(t, out, "(none)")
	assert.Contains(t, out, "(none matched)")
	assert.NotContains(t, out, "Project metadata:")
	assert.NotContains(t, out, "Research metadata")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().WriteJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "pd-detector", decoded.Analysis.ProjectName)
	assert.Len(t, decoded.Papers, 1)
}

func TestAnalysisFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.yaml")
	original := sampleReport()

	require.NoError(t, WriteAnalysisFile(path, original))

	loaded, err := ReadAnalysisFile(path)
	require.NoError(t, err)
	assert.Equal(t, original.Analysis.ProjectName, loaded.Analysis.ProjectName)
	assert.Equal(t, original.Analysis.Technologies, loaded.Analysis.Technologies)
	assert.Equal(t, original.Queries, loaded.Queries)
	assert.Equal(t, original.Papers, loaded.Papers)
	assert.Equal(t, original.Suggestions, loaded.Suggestions)
}

func TestReadAnalysisFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadAnalysisFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("no analysis record", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("summary:\n  technologies: 0\n"), 0o644))
		_, err := ReadAnalysisFile(path)
		assert.ErrorContains(t, err, "no analysis record")
	})
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		path string
		want string
	}{
		{"bare name goes to dir", "output/reports", "run.yaml", filepath.Join("output/reports", "run.yaml")},
		{"relative path kept", "output/reports", "./run.yaml", "./run.yaml"},
		{"nested path kept", "output/reports", "elsewhere/run.yaml", "elsewhere/run.yaml"},
		{"absolute path kept", "output/reports", "/tmp/run.yaml", "/tmp/run.yaml"},
		{"no dir configured", "", "run.yaml", "run.yaml"},
		{"empty path", "output/reports", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePath(tt.dir, tt.path))
		})
	}
}

func TestWriteAnalysisFileCreatesDirectory(t *testing.T) {
	path := ResolvePath(filepath.Join(t.TempDir(), "output", "reports"), "run.yaml")
	require.NoError(t, WriteAnalysisFile(path, sampleReport()))

	loaded, err := ReadAnalysisFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pd-detector", loaded.Analysis.ProjectName)
}
