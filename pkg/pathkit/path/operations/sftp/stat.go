package pathsftp

import (
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/pkg/sftp"
)

func Stat(client *sftp.Client, filePath string) (*pathmodels.FileInfo, error) {
	info, err := client.Stat(filePath)
	if err != nil {
		return nil, &pathmodels.PathError{Op: "sftp-stat", Path: filePath, Err: err}
	}
	return pathmodels.NewFileInfo(info), nil
}
