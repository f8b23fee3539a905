package pathsftp

import (
	"bufio"
	"bytes"
	"io"
	"log"

	"github.com/ImGajeed76/pathkit/pkg/pathkit/path/helpers"
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/pkg/sftp"
)

func ReadBytes(client *sftp.Client, filePath string) ([]byte, error) {
	info, err := client.Stat(filePath)
	if err != nil {
		return nil, &pathmodels.PathError{Op: "sftp-read-stat", Path: filePath, Err: err}
	}
	if info.IsDir() {
		return nil, &pathmodels.PathError{Op: "sftp-read-check", Path: filePath, Err: pathmodels.ErrInvalid}
	}

	file, err := client.Open(filePath)
	if err != nil {
		return nil, &pathmodels.PathError{Op: "sftp-read-open", Path: filePath, Err: err}
	}
	defer func(file *sftp.File) {
		if err := file.Close(); err != nil {
			log.Printf("error closing SFTP file: %v", err)
		}
	}(file)

	reader := bufio.NewReaderSize(file, helpers.GetOptimalBufferSize(info.Size()))

	var content bytes.Buffer
	content.Grow(int(info.Size()))

	if _, err := io.Copy(&content, reader); err != nil {
		return nil, &pathmodels.PathError{Op: "sftp-read-copy", Path: filePath, Err: err}
	}

	return content.Bytes(), nil
}
