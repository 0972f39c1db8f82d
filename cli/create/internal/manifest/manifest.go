// Package manifest computes which template files are copied into a new project
// and copies them.
package manifest

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/apex/log"
)

// Manifest is a sorted list of slash-separated file paths relative to the template root.
type Manifest []string

// Normalize converts a relative path to the form rules are matched against.
func Normalize(relPath string) string {
	return filepath.ToSlash(filepath.Clean(relPath))
}

// Build walks root and lists all files not excluded by rules.
// Excluded directories are not descended into.
func Build(root string, rules Rules) (Manifest, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	manifest := Manifest{}
	err := filepath.WalkDir(root, func(filePath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if filePath == root {
			return nil
		}

		relPath, err := filepath.Rel(root, filePath)
		if err != nil {
			return err
		}
		relPath = Normalize(relPath)

		if rule, excluded := rules.Excludes(relPath); excluded {
			log.Debugf("Skipping %s (%s)", relPath, rule.Kind)
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			return nil
		}
		if !entry.Type().IsRegular() && entry.Type()&fs.ModeSymlink == 0 {
			log.Debugf("Skipping %s: not a regular file", relPath)
			return nil
		}

		manifest = append(manifest, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list template files in %s: %w", root, err)
	}

	sort.Strings(manifest)
	return manifest, nil
}
