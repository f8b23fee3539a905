package pathlocal

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/ImGajeed76/pathkit/pkg/pathkit/path/helpers"
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
)

// CopyFile copies the bytes of src to exactly dest, replacing dest if it is
// a file. The parent of dest must already exist. Copying a file onto itself
// fails with ErrInvalid.
func CopyFile(src string, dest string, opts ...pathmodels.CopyOptions) error {
	options := pathmodels.DefaultCopyOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return &pathmodels.PathError{Op: "local-copy-stat", Path: src, Err: err}
	}
	if srcInfo.IsDir() {
		return &pathmodels.PathError{Op: "local-copy-check", Path: src, Err: pathmodels.ErrInvalid}
	}
	// opening dest with O_TRUNC would empty src before it is read
	if destInfo, err := os.Stat(dest); err == nil && os.SameFile(srcInfo, destInfo) {
		return &pathmodels.PathError{Op: "local-copy-same", Path: dest, Err: pathmodels.ErrInvalid}
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return &pathmodels.PathError{Op: "local-copy-open", Path: src, Err: err}
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			log.Printf("error closing file: %v", err)
		}
	}(srcFile)

	permissions := os.FileMode(options.Permissions)
	if options.PreserveAttributes {
		permissions = srcInfo.Mode().Perm()
	}

	destFile, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, permissions)
	if err != nil {
		return &pathmodels.PathError{Op: "local-copy-create", Path: dest, Err: err}
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
				return &pathmodels.PathError{Op: "local-copy-write", Path: dest, Err: err}
			}
			if nw != nr {
				destFile.Close()
				return &pathmodels.PathError{Op: "local-copy-write", Path: dest, Err: io.ErrShortWrite}
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
			return &pathmodels.PathError{Op: "local-copy-read", Path: src, Err: readErr}
		}
	}

	if err := destFile.Sync(); err != nil {
		destFile.Close()
		return &pathmodels.PathError{Op: "local-copy-sync", Path: dest, Err: err}
	}
	if err := destFile.Close(); err != nil {
		return &pathmodels.PathError{Op: "local-copy-close", Path: dest, Err: err}
	}

	if options.PreserveAttributes {
		if err := os.Chtimes(dest, time.Now(), srcInfo.ModTime()); err != nil {
			return &pathmodels.PathError{Op: "local-copy-chtimes", Path: dest, Err: err}
		}
		// umask may have narrowed the mode on create
		if err := os.Chmod(dest, srcInfo.Mode().Perm()); err != nil {
			return &pathmodels.PathError{Op: "local-copy-chmod", Path: dest, Err: err}
		}
	}

	return nil
}
