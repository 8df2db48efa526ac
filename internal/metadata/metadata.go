// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// Extract reads project metadata from the first source that yields a
// record, in fixed precedence order: pyproject.toml, then setup.py, then
// requirements.txt. When the winning source declared no dependencies,
// requirements.txt dependencies are merged in. Returns nil when no source
// exists. Progress is written to w.
func Extract(root string, w io.Writer) *types.ProjectMetadata {
	if m := FromPyproject(root); m != nil {
		fmt.Fprintf(w, "  pyproject.toml: %d keywords, %d dependencies\n",
			len(m.Keywords), len(m.Dependencies))
		return fillDependencies(root, m)
	}

	if m := FromSetupPy(root); m != nil {
		fmt.Fprintf(w, "  setup.py: name %q\n", m.Name)
		return fillDependencies(root, m)
	}

	if deps := FromRequirements(root); len(deps) > 0 {
		fmt.Fprintf(w, "  requirements.txt: %d dependencies\n", len(deps))
		return &types.ProjectMetadata{
			Name:         projectDirName(root),
			Dependencies: deps,
			Source:       "requirements.txt",
		}
	}

	fmt.Fprintln(w, "  no packaging metadata found")
	return nil
}

// fillDependencies merges requirements.txt dependencies into m when the
// winning source declared none of its own.
func fillDependencies(root string, m *types.ProjectMetadata) *types.ProjectMetadata {
	if len(m.Dependencies) == 0 {
		m.Dependencies = FromRequirements(root)
	}
	return m
}

// projectDirName returns the base name of the project root, used as the
// fallback project name.
func projectDirName(root string) string {
	return filepath.Base(filepath.Clean(root))
}
