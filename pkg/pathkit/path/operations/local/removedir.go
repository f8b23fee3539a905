package pathlocal

import (
	"os"
	"path/filepath"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
)

func RemoveDir(path string, missingOk bool, recursive bool) error {
	path = filepath.Clean(path)

	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) && missingOk {
			return nil
		}
		return &pathmodels.PathError{Op: "local-removedir-stat", Path: path, Err: err}
	}

	if !info.IsDir() {
		return &pathmodels.PathError{Op: "local-removedir-notdir", Path: path, Err: pathmodels.ErrInvalid}
	}

	if recursive {
		if err := os.RemoveAll(path); err != nil {
			return &pathmodels.PathError{Op: "local-removedir-recursive", Path: path, Err: err}
		}
		return nil
	}

	if err := os.Remove(path); err != nil {
		if isDirectoryNotEmpty(err) {
			return &pathmodels.PathError{Op: "local-removedir-notempty", Path: path, Err: pathmodels.ErrInvalid}
		}
		return &pathmodels.PathError{Op: "local-removedir", Path: path, Err: err}
	}

	return nil
}
