// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metadata extracts declared project metadata from packaging
// files. Each extractor reads one artifact and fails softly: a missing or
// malformed file yields a nil record, never an error to the caller.
package metadata

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// pyprojectFile mirrors the [project] table of pyproject.toml. Unknown
// keys are ignored by the decoder.
type pyprojectFile struct {
	Project struct {
		Name                 string              `toml:"name"`
		Version              string              `toml:"version"`
		Description          string              `toml:"description"`
		Keywords             []string            `toml:"keywords"`
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
}

// FromPyproject extracts metadata from root/pyproject.toml. It returns nil
// when the file is absent, unreadable, or not valid TOML.
func FromPyproject(root string) *types.ProjectMetadata {
	data, err := os.ReadFile(filepath.Join(root, "pyproject.toml"))
	if err != nil {
		return nil
	}

	var f pyprojectFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil
	}

	name := f.Project.Name
	if name == "" {
		name = filepath.Base(root)
	}

	return &types.ProjectMetadata{
		Name:            name,
		Version:         f.Project.Version,
		Description:     f.Project.Description,
		Keywords:        f.Project.Keywords,
		Dependencies:    f.Project.Dependencies,
		DevDependencies: f.Project.OptionalDependencies["dev"],
		Source:          "pyproject.toml",
	}
}
