// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

import (
	"fmt"
	"path/filepath"
)

// resolveImport resolves one import target against the directory containing
// the importing file. Absolute targets are only cleaned. Each nesting level
// resolves relative to its own immediate parent, never the root file.
func resolveImport(parent string, target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}

	return filepath.Join(filepath.Dir(parent), target)
}

// canonicalPath returns a stable absolute key for the visited-path set.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	return abs, nil
}
