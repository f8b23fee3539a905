package pathmodels

import (
	"io/fs"
	"time"
)

type FileMode uint32

type FileInfo struct {
	Name    string    // base Name of the file
	Size    int64     // length in bytes
	Mode    FileMode  // file Mode bits
	ModTime time.Time // modification time
	IsDir   bool      // is a directory
}

// NewFileInfo copies the fields handles care about out of a native FileInfo.
func NewFileInfo(info fs.FileInfo) *FileInfo {
	return &FileInfo{
		Name:    info.Name(),
		Size:    info.Size(),
		Mode:    FileMode(info.Mode()),
		ModTime: info.ModTime(),
		IsDir:   info.IsDir(),
	}
}

type PathOption struct {
	// Permissions for new files
	Permissions FileMode
	// Permissions for new directories
	DirPermissions FileMode
	// Whether to preserve file attributes during copy
	PreserveAttributes bool
	// Buffer size for copy operations, 0 picks one from the file size
	BufferSize int
	// Timeout for acquiring remote connections
	Timeout time.Duration
}

func DefaultPathOption() PathOption {
	return PathOption{
		Permissions:        0644,
		DirPermissions:     0755,
		PreserveAttributes: true,
		Timeout:            60 * time.Second,
	}
}

type CopyOptions struct {
	PathOption
	// ProgressFunc is called after every chunk with the total and copied byte counts
	ProgressFunc func(total, copied int64)
}

func DefaultCopyOptions() CopyOptions {
	return CopyOptions{PathOption: DefaultPathOption()}
}

var (
	ErrNotExist   = fs.ErrNotExist   // Item does not exist
	ErrExist      = fs.ErrExist      // Item already exists
	ErrPermission = fs.ErrPermission // Permission denied
	ErrInvalid    = fs.ErrInvalid    // Invalid operation
	ErrClosed     = fs.ErrClosed     // File already closed
)

type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Err == nil {
		return e.Op + " " + e.Path
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error { return e.Err }
