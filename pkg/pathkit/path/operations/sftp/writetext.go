package pathsftp

import (
	"github.com/ImGajeed76/pathkit/pkg/pathkit/path/helpers"
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/pkg/sftp"
)

func WriteText(client *sftp.Client, filePath string, content string, encodingName string) error {
	enc, err := helpers.LookupEncoding(encodingName)
	if err != nil {
		return &pathmodels.PathError{Op: "sftp-write-get-encoding", Path: filePath, Err: err}
	}

	encoded, err := helpers.EncodeText(enc, content)
	if err != nil {
		return &pathmodels.PathError{Op: "sftp-write-encode", Path: filePath, Err: err}
	}

	return WriteBytes(client, filePath, encoded)
}
