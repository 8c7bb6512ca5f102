package engine

import (
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// FindInputFiles expands glob patterns into the regular files they match.
// Patterns support doublestar syntax, so "data/**/*.txt" recurses into
// subdirectories. Directories, symlinks and other non-regular matches are
// skipped.
func FindInputFiles(patterns ...string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}
		for _, name := range matches {
			info, err := os.Lstat(name)
			if err != nil {
				continue
			}
			if info.Mode().IsRegular() {
				files = append(files, name)
			}
		}
	}
	return files, nil
}

// FileSize is the default map cost estimate: the unit's size in bytes.
// Units that cannot be stat'ed cost zero, so they are scheduled first and
// the map function decides how to handle them.
func FileSize(unit string) int64 {
	info, err := os.Stat(unit)
	if err != nil {
		return 0
	}
	return info.Size()
}
