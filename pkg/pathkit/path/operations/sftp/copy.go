package pathsftp

import (
	"io"
	"log"
	"os"
	"path"
	"time"

	"github.com/ImGajeed76/pathkit/pkg/pathkit/path/helpers"
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/pkg/sftp"
)

// CopyFile copies a remote file to another remote path on the same server.
// Bytes travel through the client since SFTP v3 has no server side copy.
func CopyFile(client *sftp.Client, src string, dest string, opts ...pathmodels.CopyOptions) error {
	options := pathmodels.DefaultCopyOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	srcInfo, err := client.Stat(src)
	if err != nil {
		return &pathmodels.PathError{Op: "sftp-copy-stat", Path: src, Err: err}
	}
	if srcInfo.IsDir() {
		return &pathmodels.PathError{Op: "sftp-copy-check", Path: src, Err: pathmodels.ErrInvalid}
	}
	if path.Clean(src) == path.Clean(dest) {
		return &pathmodels.PathError{Op: "sftp-copy-same", Path: dest, Err: pathmodels.ErrInvalid}
	}

	srcFile, err := client.Open(src)
	if err != nil {
		return &pathmodels.PathError{Op: "sftp-copy-open", Path: src, Err: err}
	}
	defer func(file *sftp.File) {
		if err := file.Close(); err != nil {
			log.Printf("error closing SFTP file: %v", err)
		}
	}(srcFile)

	destFile, err := client.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return &pathmodels.PathError{Op: "sftp-copy-create", Path: dest, Err: err}
	}

	bufferSize := helpers.GetOptimalBufferSize(srcInfo.Size())
	if options.BufferSize > 0 {
		bufferSize = options.BufferSize
	}
	buf := make([]byte, bufferSize)
	copied := int64(0)

	for {
		nr, readErr := srcFile.Read(buf)
		if nr > 0 {
			nw, err := destFile.Write(buf[:nr])
			if err != nil {
				destFile.Close()
				return &pathmodels.PathError{Op: "sftp-copy-write", Path: dest, Err: err}
			}
			if nw != nr {
				destFile.Close()
				return &pathmodels.PathError{Op: "sftp-copy-write", Path: dest, Err: io.ErrShortWrite}
			}

			copied += int64(nw)
			if options.ProgressFunc != nil {
				options.ProgressFunc(srcInfo.Size(), copied)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			destFile.Close()
			return &pathmodels.PathError{Op: "sftp-copy-read", Path: src, Err: readErr}
		}
	}

	if err := destFile.Close(); err != nil {
		return &pathmodels.PathError{Op: "sftp-copy-close", Path: dest, Err: err}
	}

	mode := os.FileMode(options.Permissions)
	if options.PreserveAttributes {
		mode = srcInfo.Mode().Perm()
		// setstat failures leave the copied bytes in place
		if err := client.Chtimes(dest, time.Now(), srcInfo.ModTime()); err != nil {
			log.Printf("sftp-copy-chtimes %s: %v", dest, err)
		}
	}
	if err := client.Chmod(dest, mode); err != nil {
		log.Printf("sftp-copy-chmod %s: %v", dest, err)
	}

	return nil
}
