package pathlocal

import (
	"os"
	"path/filepath"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/bmatcuk/doublestar/v4"
)

// Glob returns the paths below dir matching pattern. Patterns use the
// doublestar syntax:
//   - '*' matches any sequence of non-separator characters
//   - '**' matches zero or more directories
//   - '?' matches any single non-separator character
//   - '[abc]' matches any single character within brackets
//   - '{foo,bar}' matches any of the comma-separated patterns
//
// If dir is empty, it defaults to the current directory.
func Glob(dir string, pattern string) ([]string, error) {
	if dir == "" {
		dir = "."
	}

	// dir is the fs root, so its own metacharacters are never interpreted
	matches, err := doublestar.Glob(os.DirFS(dir), filepath.ToSlash(pattern))
	if err != nil {
		return nil, &pathmodels.PathError{Op: "local-glob-match", Path: filepath.Join(dir, pattern), Err: err}
	}

	for i, match := range matches {
		matches[i] = filepath.Join(dir, filepath.FromSlash(match))
	}
	return matches, nil
}
