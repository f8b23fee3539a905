package pathsftp

import (
	"path"
	"strings"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/pkg/sftp"
)

func RenameFile(client *sftp.Client, oldPath string, newName string) (string, error) {
	oldPath = path.Clean(oldPath)

	if newName == "" || strings.ContainsAny(newName, `/\`) || newName == "." || newName == ".." {
		return "", &pathmodels.PathError{Op: "sftp-renamefile-validate", Path: oldPath, Err: pathmodels.ErrInvalid}
	}

	newPath := path.Join(path.Dir(oldPath), newName)
	if err := client.Rename(oldPath, newPath); err != nil {
		return "", &pathmodels.PathError{Op: "sftp-renamefile", Path: oldPath, Err: err}
	}

	return newPath, nil
}

// Move relocates src to dest with a single rename request. Servers refuse
// to overwrite an existing dest.
func Move(client *sftp.Client, src string, dest string) error {
	if err := client.Rename(path.Clean(src), path.Clean(dest)); err != nil {
		return &pathmodels.PathError{Op: "sftp-move", Path: src, Err: err}
	}
	return nil
}
