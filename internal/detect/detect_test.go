// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detect

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-assistant/pkg/types"
)

func findTech(t *testing.T, detected []types.DetectedTechnology, name string) types.DetectedTechnology {
	t.Helper()
	for _, d := range detected {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("technology %q not detected; got %v", name, detected)
	return types.DetectedTechnology{}
}

func TestDetectFromKeywords(t *testing.T) {
	meta := &types.ProjectMetadata{
		Keywords: []string{"mcp", "deep learning with LSTM"},
	}

	detected := Detect(t.TempDir(), meta, nil, types.ScanConfig{}, io.Discard)

	mcp := findTech(t, detected, "Model Context Protocol")
	assert.Equal(t, []string{types.SourceKeyword}, mcp.Sources)

	lstm := findTech(t, detected, "LSTM Networks")
	assert.True(t, lstm.HasSource(types.SourceKeyword))
}

func TestDetectFromDependencies(t *testing.T) {
	meta := &types.ProjectMetadata{
		Dependencies: []string{"numpy>=1.26", "Pandas==2.2.0", "unknown-lib"},
	}

	detected := Detect(t.TempDir(), meta, nil, types.ScanConfig{}, io.Discard)

	numpy := findTech(t, detected, "NumPy")
	assert.Equal(t, []string{types.SourceDependency}, numpy.Sources)
	findTech(t, detected, "Pandas")
	assert.Len(t, detected, 2)
}

func TestDetectFromImportScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "train.py"),
		[]byte("import torch\nimport numpy as np\n"), 0o644))

	detected := Detect(dir, nil, nil, types.ScanConfig{}, io.Discard)

	findTech(t, detected, "PyTorch")
	numpy := findTech(t, detected, "NumPy")
	assert.Equal(t, []string{types.SourceImportScan}, numpy.Sources)
}

func TestDetectFromReadmeResearchText(t *testing.T) {
	research := &types.ResearchMetadata{
		ResearchFocus: []string{"Random Forest baselines for fault detection"},
		Methodology:   []string{"compare CNN variants"},
	}

	detected := Detect(t.TempDir(), nil, research, types.ScanConfig{}, io.Discard)

	rf := findTech(t, detected, "Random Forest")
	assert.Equal(t, []string{types.SourceReadme}, rf.Sources)
	findTech(t, detected, "Convolutional Neural Networks")
}

func TestDetectMergesProvenance(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"),
		[]byte("import numpy\n"), 0o644))

	meta := &types.ProjectMetadata{
		Keywords:     []string{"numpy acceleration"},
		Dependencies: []string{"numpy>=1.26"},
	}

	detected := Detect(dir, meta, nil, types.ScanConfig{}, io.Discard)
	require.Len(t, detected, 1)

	numpy := detected[0]
	assert.Equal(t, "NumPy", numpy.Name)
	assert.Equal(t, []string{
		types.SourceKeyword,
		types.SourceDependency,
		types.SourceImportScan,
	}, numpy.Sources)
}

func TestDetectEmptyInputs(t *testing.T) {
	detected := Detect(t.TempDir(), nil, nil, types.ScanConfig{}, io.Discard)
	assert.Empty(t, detected)
}

func TestDetectSortedByName(t *testing.T) {
	meta := &types.ProjectMetadata{
		Dependencies: []string{"torch", "numpy", "flask"},
	}

	detected := Detect(t.TempDir(), meta, nil, types.ScanConfig{}, io.Discard)
	require.Len(t, detected, 3)
	assert.Equal(t, "Flask", detected[0].Name)
	assert.Equal(t, "NumPy", detected[1].Name)
	assert.Equal(t, "PyTorch", detected[2].Name)
}

func TestSourceFilesSkipsExcludedDirs(t *testing.T) {
	dir := t.TempDir()
	mustWrite := func(parts ...string) {
		path := filepath.Join(append([]string{dir}, parts...)...)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("import os\n"), 0o644))
	}

	mustWrite("main.py")
	mustWrite("pkg", "model.py")
	mustWrite("venv", "lib", "dep.py")
	mustWrite("__pycache__", "main.cpython-313.py")
	mustWrite("notes.txt")

	files := SourceFiles(dir, types.ScanConfig{})
	require.Len(t, files, 2)
	assert.Contains(t, files, filepath.Join(dir, "main.py"))
	assert.Contains(t, files, filepath.Join(dir, "pkg", "model.py"))
}

func TestSourceFilesBoundedDepth(t *testing.T) {
	dir := t.TempDir()

	// A deeply nested vendored-style tree must not be walked past the
	// depth bound.
	deep := dir
	for i := 0; i < 8; i++ {
		deep = filepath.Join(deep, "level")
	}
	require.NoError(t, os.MkdirAll(deep, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(deep, "deep.py"), []byte("import numpy\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shallow.py"), []byte("import os\n"), 0o644))

	files := SourceFiles(dir, types.ScanConfig{MaxDepth: 3})
	assert.Equal(t, []string{filepath.Join(dir, "shallow.py")}, files)
}

func TestSourceFilesCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notebook.ipynb"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), []byte(""), 0o644))

	files := SourceFiles(dir, types.ScanConfig{Extensions: []string{".ipynb"}})
	assert.Equal(t, []string{filepath.Join(dir, "notebook.ipynb")}, files)
}
