package pathlocal

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
)

// Remove deletes a single file, or an empty directory.
func Remove(path string, missingOk bool) error {
	path = filepath.Clean(path)

	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) && missingOk {
			return nil
		}
		return &pathmodels.PathError{Op: "local-remove-stat", Path: path, Err: err}
	}

	if err := os.Remove(path); err != nil {
		if info.IsDir() && isDirectoryNotEmpty(err) {
			return &pathmodels.PathError{Op: "local-remove-notempty", Path: path, Err: pathmodels.ErrInvalid}
		}
		return &pathmodels.PathError{Op: "local-remove", Path: path, Err: err}
	}

	return nil
}

func isDirectoryNotEmpty(err error) bool {
	return errors.Is(err, syscall.ENOTEMPTY) || errors.Is(err, syscall.EEXIST)
}
