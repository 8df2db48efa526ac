// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-assistant/pkg/types"
)

func newTestProject() *Project {
	return New(types.ScanConfig{}, types.QueryConfig{MaxQueries: 5})
}

func writeProjectFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRunFullProject(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "pyproject.toml", `
[project]
name = "fault-finder"
version = "0.1.0"
keywords = ["mcp", "anomaly detection"]
dependencies = ["numpy>=1.26"]
`)
	writeProjectFile(t, dir, "README.md", `
## Research Focus

- Anomaly detection with LSTM models

## Keywords

- lstm
- transformers
`)
	writeProjectFile(t, dir, "train.py", "import numpy as np\nfrom torch import nn\n")

	a, err := newTestProject().Run(dir, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "fault-finder", a.ProjectName)
	assert.Equal(t, 1, a.FilesAnalyzed)
	require.NotNil(t, a.Metadata)
	assert.Equal(t, "pyproject.toml", a.Metadata.Source)
	require.NotNil(t, a.ResearchMetadata)
	assert.Equal(t, []string{"lstm", "transformers"}, a.ResearchMetadata.Keywords)

	assert.True(t, a.HasTechnology("Model Context Protocol"))
	assert.True(t, a.HasTechnology("NumPy"))
	assert.True(t, a.HasTechnology("LSTM Networks"))

	assert.Equal(t, []string{"from torch import nn", "import numpy as np"}, a.Imports)
	assert.False(t, a.Timestamp.IsZero())
}

func TestRunProjectNotFound(t *testing.T) {
	tests := []struct {
		name string
		root func(t *testing.T) string
	}{
		{
			name: "nonexistent path",
			root: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing")
			},
		},
		{
			name: "path is a file",
			root: func(t *testing.T) string {
				dir := t.TempDir()
				writeProjectFile(t, dir, "file.txt", "not a directory")
				return filepath.Join(dir, "file.txt")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := newTestProject().Run(tt.root(t), io.Discard)
			assert.Nil(t, a)
			assert.ErrorIs(t, err, ErrProjectNotFound)
		})
	}
}

func TestRunEmptyProjectDegrades(t *testing.T) {
	// A bare directory with no metadata sources still yields a complete
	// analysis, never an error.
	dir := t.TempDir()

	a, err := newTestProject().Run(dir, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), a.ProjectName)
	assert.Zero(t, a.FilesAnalyzed)
	assert.Nil(t, a.Metadata)
	assert.Nil(t, a.ResearchMetadata)
	assert.Empty(t, a.Technologies)
}

func TestRunMalformedSourcesDegrade(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "pyproject.toml", "[project\nbroken =")
	writeProjectFile(t, dir, "setup.py", `setup(name="salvaged")`)

	a, err := newTestProject().Run(dir, io.Discard)
	require.NoError(t, err)
	require.NotNil(t, a.Metadata)
	assert.Equal(t, "setup.py", a.Metadata.Source)
	assert.Equal(t, "salvaged", a.ProjectName)
}

func TestQueriesPrefersResearchMetadata(t *testing.T) {
	p := newTestProject()
	a := &types.ProjectAnalysis{
		Metadata: &types.ProjectMetadata{Keywords: []string{"fallback"}},
		ResearchMetadata: &types.ResearchMetadata{
			ResearchFocus: []string{"anomaly detection"},
		},
	}
	assert.Equal(t, []string{"anomaly detection"}, p.Queries(a))
}

func TestQueriesKeywordFallback(t *testing.T) {
	p := newTestProject()
	a := &types.ProjectAnalysis{
		Metadata: &types.ProjectMetadata{Keywords: []string{"mcp", "lstm"}},
	}
	assert.Equal(t, []string{"mcp", "lstm"}, p.Queries(a))
}

func TestQueriesEmpty(t *testing.T) {
	assert.Empty(t, newTestProject().Queries(&types.ProjectAnalysis{}))
}
