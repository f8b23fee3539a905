package pathlocal

import (
	"io/fs"
	"os"
	"path/filepath"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
)

// List returns the paths of all items in the directory, joined onto dirPath.
// If recursive is true every descendant is included, parents before children.
func List(dirPath string, recursive bool) ([]string, error) {
	return list(dirPath, recursive, func(fs.DirEntry) bool { return true })
}

// ListFiles returns every non-directory entry below dirPath at any depth.
func ListFiles(dirPath string) ([]string, error) {
	return list(dirPath, true, func(entry fs.DirEntry) bool { return !entry.IsDir() })
}

// ListDirs returns every directory below dirPath at any depth.
func ListDirs(dirPath string) ([]string, error) {
	return list(dirPath, true, func(entry fs.DirEntry) bool { return entry.IsDir() })
}

// ListSubDirs returns only the direct child directories of dirPath.
func ListSubDirs(dirPath string) ([]string, error) {
	return list(dirPath, false, func(entry fs.DirEntry) bool { return entry.IsDir() })
}

func list(dirPath string, recursive bool, keep func(fs.DirEntry) bool) ([]string, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		return nil, &pathmodels.PathError{Op: "local-list-stat", Path: dirPath, Err: err}
	}
	if !info.IsDir() {
		return nil, &pathmodels.PathError{Op: "local-list-check", Path: dirPath, Err: pathmodels.ErrInvalid}
	}

	var paths []string

	if !recursive {
		entries, err := os.ReadDir(dirPath)
		if err != nil {
			return nil, &pathmodels.PathError{Op: "local-list-read", Path: dirPath, Err: err}
		}
		for _, entry := range entries {
			if keep(entry) {
				paths = append(paths, filepath.Join(dirPath, entry.Name()))
			}
		}
		return paths, nil
	}

	err = filepath.WalkDir(dirPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dirPath {
			return nil
		}
		if keep(entry) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, &pathmodels.PathError{Op: "local-list-walk", Path: dirPath, Err: err}
	}

	return paths, nil
}
