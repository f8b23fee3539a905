package pathsftp

import (
	"os"
	"path"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/pkg/sftp"
)

func List(client *sftp.Client, dirPath string, recursive bool) ([]string, error) {
	return list(client, dirPath, recursive, func(os.FileInfo) bool { return true })
}

func ListFiles(client *sftp.Client, dirPath string) ([]string, error) {
	return list(client, dirPath, true, func(info os.FileInfo) bool { return !info.IsDir() })
}

func ListDirs(client *sftp.Client, dirPath string) ([]string, error) {
	return list(client, dirPath, true, func(info os.FileInfo) bool { return info.IsDir() })
}

func ListSubDirs(client *sftp.Client, dirPath string) ([]string, error) {
	return list(client, dirPath, false, func(info os.FileInfo) bool { return info.IsDir() })
}

func list(client *sftp.Client, dirPath string, recursive bool, keep func(os.FileInfo) bool) ([]string, error) {
	dirPath = path.Clean(dirPath)

	// Check if path exists and is a directory
	info, err := client.Stat(dirPath)
	if err != nil {
		return nil, &pathmodels.PathError{Op: "sftp-list-stat", Path: dirPath, Err: err}
	}
	if !info.IsDir() {
		return nil, &pathmodels.PathError{Op: "sftp-list-check", Path: dirPath, Err: pathmodels.ErrInvalid}
	}

	var paths []string

	if !recursive {
		entries, err := client.ReadDir(dirPath)
		if err != nil {
			return nil, &pathmodels.PathError{Op: "sftp-list-read", Path: dirPath, Err: err}
		}
		for _, entry := range entries {
			if keep(entry) {
				paths = append(paths, path.Join(dirPath, entry.Name()))
			}
		}
		return paths, nil
	}

	walker := client.Walk(dirPath)
	for walker.Step() {
		if err := walker.Err(); err != nil {
			return nil, &pathmodels.PathError{Op: "sftp-list-walk", Path: dirPath, Err: err}
		}
		if walker.Path() == dirPath {
			continue
		}
		if keep(walker.Stat()) {
			paths = append(paths, walker.Path())
		}
	}

	return paths, nil
}
