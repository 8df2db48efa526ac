// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"os"
	"path/filepath"
	"strings"
)

// versionSeparators are the specifier tokens that end a requirement name.
var versionSeparators = []string{"==", ">=", "<=", "~=", "!=", ">", "<", "[", ";", " "}

// FromRequirements extracts the dependency names declared in
// root/requirements.txt. Blank lines and comments are skipped; version
// specifiers and extras are stripped. A missing or unreadable file yields
// an empty list.
func FromRequirements(root string) []string {
	data, err := os.ReadFile(filepath.Join(root, "requirements.txt"))
	if err != nil {
		return nil
	}

	var deps []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		if name := DependencyName(line); name != "" {
			deps = append(deps, name)
		}
	}
	return deps
}

// DependencyName strips version specifiers, extras, and environment
// markers from a requirement string and lowercases the result
// (e.g. "NumPy>=1.26,<2" becomes "numpy").
func DependencyName(requirement string) string {
	name := strings.TrimSpace(requirement)
	for _, sep := range versionSeparators {
		if idx := strings.Index(name, sep); idx >= 0 {
			name = name[:idx]
		}
	}
	return strings.ToLower(strings.TrimSpace(name))
}
