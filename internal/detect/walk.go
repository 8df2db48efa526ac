// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detect

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// defaultExcludeDirs lists directory names never descended into. Vendored
// and cache trees can be arbitrarily deep; skipping them keeps the walk
// bounded regardless of project shape.
var defaultExcludeDirs = map[string]bool{
	".git":          true,
	".hg":           true,
	".svn":          true,
	".idea":         true,
	".vscode":       true,
	".tox":          true,
	".mypy_cache":   true,
	".pytest_cache": true,
	".ruff_cache":   true,
	"__pycache__":   true,
	"venv":          true,
	".venv":         true,
	"env":           true,
	"node_modules":  true,
	"vendor":        true,
	"build":         true,
	"dist":          true,
	"site-packages": true,
	".eggs":         true,
}

const defaultMaxDepth = 12

// SourceFiles returns the paths of eligible source files under root,
// filtered by the configured extensions, skipping excluded directories,
// and descending at most cfg.MaxDepth levels. Unreadable subtrees are
// skipped rather than surfaced.
func SourceFiles(root string, cfg types.ScanConfig) []string {
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	extensions := cfg.Extensions
	if len(extensions) == 0 {
		extensions = []string{".py"}
	}

	exclude := make(map[string]bool, len(defaultExcludeDirs)+len(cfg.ExcludeDirs))
	for name := range defaultExcludeDirs {
		exclude[name] = true
	}
	for _, name := range cfg.ExcludeDirs {
		exclude[name] = true
	}

	cleanRoot := filepath.Clean(root)
	var files []string

	filepath.WalkDir(cleanRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == cleanRoot {
				return nil
			}
			if exclude[d.Name()] || walkDepth(cleanRoot, path) > maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		for _, ext := range extensions {
			if strings.EqualFold(filepath.Ext(path), ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})

	return files
}

// walkDepth returns how many levels below root the path sits.
func walkDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
