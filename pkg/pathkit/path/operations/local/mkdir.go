package pathlocal

import (
	"os"
	"path/filepath"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
)

func MakeDir(path string, parents bool, existsOk bool, perm os.FileMode) error {
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return &pathmodels.PathError{Op: "local-mkdir-notdir", Path: path, Err: pathmodels.ErrExist}
		}
		if existsOk {
			return nil
		}
		return &pathmodels.PathError{Op: "local-mkdir-exists", Path: path, Err: pathmodels.ErrExist}
	}

	if !os.IsNotExist(err) {
		// e.g. permission denied on a parent
		return &pathmodels.PathError{Op: "local-mkdir-stat", Path: path, Err: err}
	}

	if !parents {
		if err := os.Mkdir(path, perm); err != nil {
			return &pathmodels.PathError{Op: "local-mkdir", Path: path, Err: err}
		}
		return nil
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return &pathmodels.PathError{Op: "local-mkdir-all", Path: path, Err: err}
	}

	return nil
}

// Touch creates an empty file at path unless something already exists there.
// Missing parent directories are created.
func Touch(path string, perm os.FileMode, dirPerm os.FileMode) error {
	path = filepath.Clean(path)

	if _, err := os.Lstat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return &pathmodels.PathError{Op: "local-touch-parents", Path: path, Err: err}
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, perm)
	if err != nil {
		return &pathmodels.PathError{Op: "local-touch", Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &pathmodels.PathError{Op: "local-touch-close", Path: path, Err: err}
	}

	return nil
}
