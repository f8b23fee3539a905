package pathsftp

import (
	"errors"
	"io/fs"
	"path"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/pkg/sftp"
)

// Remove deletes a remote file or an empty remote directory.
func Remove(client *sftp.Client, filePath string, missingOk bool) error {
	filePath = path.Clean(filePath)

	info, err := client.Lstat(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && missingOk {
			return nil
		}
		return &pathmodels.PathError{Op: "sftp-remove-stat", Path: filePath, Err: err}
	}

	if !info.IsDir() {
		if err := client.Remove(filePath); err != nil {
			return &pathmodels.PathError{Op: "sftp-remove", Path: filePath, Err: err}
		}
		return nil
	}

	entries, err := client.ReadDir(filePath)
	if err != nil {
		return &pathmodels.PathError{Op: "sftp-remove-readdir", Path: filePath, Err: err}
	}
	if len(entries) > 0 {
		return &pathmodels.PathError{Op: "sftp-remove-notempty", Path: filePath, Err: pathmodels.ErrInvalid}
	}

	if err := client.RemoveDirectory(filePath); err != nil {
		return &pathmodels.PathError{Op: "sftp-remove", Path: filePath, Err: err}
	}

	return nil
}

func RemoveDir(client *sftp.Client, dirPath string, missingOk bool, recursive bool) error {
	dirPath = path.Clean(dirPath)

	info, err := client.Lstat(dirPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && missingOk {
			return nil
		}
		return &pathmodels.PathError{Op: "sftp-removedir-stat", Path: dirPath, Err: err}
	}

	if !info.IsDir() {
		return &pathmodels.PathError{Op: "sftp-removedir-notdir", Path: dirPath, Err: pathmodels.ErrInvalid}
	}

	if recursive {
		if err := removeAll(client, dirPath); err != nil {
			return &pathmodels.PathError{Op: "sftp-removedir-recursive", Path: dirPath, Err: err}
		}
		return nil
	}

	entries, err := client.ReadDir(dirPath)
	if err != nil {
		return &pathmodels.PathError{Op: "sftp-removedir-readdir", Path: dirPath, Err: err}
	}
	if len(entries) > 0 {
		return &pathmodels.PathError{Op: "sftp-removedir-notempty", Path: dirPath, Err: pathmodels.ErrInvalid}
	}

	if err := client.RemoveDirectory(dirPath); err != nil {
		return &pathmodels.PathError{Op: "sftp-removedir", Path: dirPath, Err: err}
	}

	return nil
}

// removeAll deletes the contents of dirPath depth first, then dirPath.
func removeAll(client *sftp.Client, dirPath string) error {
	entries, err := client.ReadDir(dirPath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		fullPath := path.Join(dirPath, entry.Name())
		if entry.IsDir() {
			err = removeAll(client, fullPath)
		} else {
			err = client.Remove(fullPath)
		}
		if err != nil {
			return err
		}
	}

	return client.RemoveDirectory(dirPath)
}
