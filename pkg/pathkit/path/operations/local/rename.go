package pathlocal

import (
	"os"
	"path/filepath"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
)

// RenameFile gives oldPath a new last element and returns the resulting path.
// newName must be a bare name; moving to another directory is Move's job.
func RenameFile(oldPath string, newName string) (string, error) {
	oldPath = filepath.Clean(oldPath)

	if newName == "" || filepath.Base(newName) != newName {
		return "", &pathmodels.PathError{Op: "local-rename-validate", Path: oldPath, Err: pathmodels.ErrInvalid}
	}

	newPath := filepath.Join(filepath.Dir(oldPath), newName)
	if err := os.Rename(oldPath, newPath); err != nil {
		return "", &pathmodels.PathError{Op: "local-rename", Path: oldPath, Err: err}
	}

	return newPath, nil
}

// Move relocates src to dest with one rename call. Whatever the platform
// refuses, such as crossing devices, is reported as is.
func Move(src string, dest string) error {
	if err := os.Rename(src, dest); err != nil {
		return &pathmodels.PathError{Op: "local-move", Path: src, Err: err}
	}
	return nil
}
