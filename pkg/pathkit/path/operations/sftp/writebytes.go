package pathsftp

import (
	"bufio"
	"os"

	"github.com/ImGajeed76/pathkit/pkg/pathkit/path/helpers"
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/pkg/sftp"
)

// WriteBytes creates or truncates the remote file and writes data to it.
func WriteBytes(client *sftp.Client, filePath string, data []byte) error {
	file, err := client.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return &pathmodels.PathError{Op: "sftp-write-create", Path: filePath, Err: err}
	}

	writer := bufio.NewWriterSize(file, helpers.GetOptimalBufferSize(int64(len(data))))

	if _, err := writer.Write(data); err != nil {
		file.Close()
		return &pathmodels.PathError{Op: "sftp-write-write", Path: filePath, Err: err}
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return &pathmodels.PathError{Op: "sftp-write-flush", Path: filePath, Err: err}
	}

	// the server may only report a failed write on close
	if err := file.Close(); err != nil {
		return &pathmodels.PathError{Op: "sftp-write-close", Path: filePath, Err: err}
	}

	return nil
}
