package pathlocal

import (
	"os"

	"github.com/ImGajeed76/pathkit/pkg/pathkit/path/helpers"
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
)

// WriteText encodes content with the named IANA encoding and writes it to
// filePath. Content that does not survive a round trip through the encoding
// is rejected before anything is written.
func WriteText(filePath string, content string, encodingName string, perm os.FileMode) error {
	enc, err := helpers.LookupEncoding(encodingName)
	if err != nil {
		return &pathmodels.PathError{Op: "local-write-get-encoding", Path: filePath, Err: err}
	}

	encoded, err := helpers.EncodeText(enc, content)
	if err != nil {
		return &pathmodels.PathError{Op: "local-write-encode", Path: filePath, Err: err}
	}

	return WriteBytes(filePath, encoded, perm)
}
