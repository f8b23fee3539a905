package pathsftp

import (
	"github.com/ImGajeed76/pathkit/pkg/pathkit/path/helpers"
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/pkg/sftp"
)

func ReadText(client *sftp.Client, filePath string, encodingName string) (string, error) {
	enc, err := helpers.LookupEncoding(encodingName)
	if err != nil {
		return "", &pathmodels.PathError{Op: "sftp-read-get-encoding", Path: filePath, Err: err}
	}

	content, err := ReadBytes(client, filePath)
	if err != nil {
		return "", err
	}

	decoded, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", &pathmodels.PathError{Op: "sftp-read-decode", Path: filePath, Err: err}
	}

	return string(decoded), nil
}
