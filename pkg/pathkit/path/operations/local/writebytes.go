package pathlocal

import (
	"bufio"
	"log"
	"os"

	"github.com/ImGajeed76/pathkit/pkg/pathkit/path/helpers"
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
)

// WriteBytes creates or truncates filePath and writes data to it.
func WriteBytes(filePath string, data []byte, perm os.FileMode) error {
	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return &pathmodels.PathError{Op: "local-write-create", Path: filePath, Err: err}
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			log.Printf("error closing file: %v", err)
		}
	}(file)

	writer := bufio.NewWriterSize(file, helpers.GetOptimalBufferSize(int64(len(data))))

	if _, err := writer.Write(data); err != nil {
		return &pathmodels.PathError{Op: "local-write-write", Path: filePath, Err: err}
	}

	if err := writer.Flush(); err != nil {
		return &pathmodels.PathError{Op: "local-write-flush", Path: filePath, Err: err}
	}

	return nil
}
