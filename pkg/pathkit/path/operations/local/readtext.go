package pathlocal

import (
	"github.com/ImGajeed76/pathkit/pkg/pathkit/path/helpers"
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
)

// ReadText reads the file and decodes it from the named IANA encoding.
// An empty name means utf-8.
func ReadText(filePath string, encodingName string) (string, error) {
	enc, err := helpers.LookupEncoding(encodingName)
	if err != nil {
		return "", &pathmodels.PathError{Op: "local-read-get-encoding", Path: filePath, Err: err}
	}

	content, err := ReadBytes(filePath)
	if err != nil {
		return "", err
	}

	decoded, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", &pathmodels.PathError{Op: "local-read-decode", Path: filePath, Err: err}
	}

	return string(decoded), nil
}
