package pathsftp

import (
	"errors"
	"io/fs"
	"os"
	"path"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/pkg/sftp"
)

func MakeDir(client *sftp.Client, dirPath string, parents bool, existsOk bool) error {
	dirPath = path.Clean(dirPath)

	info, err := client.Stat(dirPath)
	if err == nil {
		if !info.IsDir() {
			return &pathmodels.PathError{Op: "sftp-mkdir-notdir", Path: dirPath, Err: pathmodels.ErrExist}
		}
		if existsOk {
			return nil
		}
		return &pathmodels.PathError{Op: "sftp-mkdir-exists", Path: dirPath, Err: pathmodels.ErrExist}
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return &pathmodels.PathError{Op: "sftp-mkdir-stat", Path: dirPath, Err: err}
	}

	if !parents {
		if err := client.Mkdir(dirPath); err != nil {
			return &pathmodels.PathError{Op: "sftp-mkdir", Path: dirPath, Err: err}
		}
		return nil
	}

	if err := client.MkdirAll(dirPath); err != nil {
		return &pathmodels.PathError{Op: "sftp-mkdir-all", Path: dirPath, Err: err}
	}

	return nil
}

// Touch creates an empty remote file, and its parents, unless filePath
// already exists.
func Touch(client *sftp.Client, filePath string) error {
	filePath = path.Clean(filePath)

	if _, err := client.Stat(filePath); err == nil {
		return nil
	}

	if err := client.MkdirAll(path.Dir(filePath)); err != nil {
		return &pathmodels.PathError{Op: "sftp-touch-parents", Path: filePath, Err: err}
	}

	file, err := client.OpenFile(filePath, os.O_WRONLY|os.O_CREATE)
	if err != nil {
		return &pathmodels.PathError{Op: "sftp-touch", Path: filePath, Err: err}
	}
	if err := file.Close(); err != nil {
		return &pathmodels.PathError{Op: "sftp-touch-close", Path: filePath, Err: err}
	}

	return nil
}
