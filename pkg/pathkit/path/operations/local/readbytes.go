package pathlocal

import (
	"bufio"
	"bytes"
	"log"
	"os"

	"github.com/ImGajeed76/pathkit/pkg/pathkit/path/helpers"
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
)

// ReadBytes returns the whole content of filePath. A directory is rejected
// with ErrInvalid before anything is opened.
func ReadBytes(filePath string) ([]byte, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, &pathmodels.PathError{Op: "local-read-stat", Path: filePath, Err: err}
	}
	if info.IsDir() {
		return nil, &pathmodels.PathError{Op: "local-read-check", Path: filePath, Err: pathmodels.ErrInvalid}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, &pathmodels.PathError{Op: "local-read-open", Path: filePath, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("error closing %s: %v", filePath, err)
		}
	}()

	var content bytes.Buffer
	content.Grow(int(info.Size()))
	if _, err := content.ReadFrom(bufio.NewReaderSize(file, helpers.GetOptimalBufferSize(info.Size()))); err != nil {
		return nil, &pathmodels.PathError{Op: "local-read-read", Path: filePath, Err: err}
	}
	return content.Bytes(), nil
}
