package pathlocal

import (
	"os"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
)

// Stat follows symlinks.
func Stat(path string) (*pathmodels.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &pathmodels.PathError{Op: "local-stat", Path: path, Err: err}
	}
	return pathmodels.NewFileInfo(info), nil
}
