package path

import (
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
)

// File is a handle to a file path. Move and Rename update the handle in
// place, so every holder of the pointer sees the new location.
type File struct {
	path string
	fs   pathmodels.Provider
}

// NewFile joins parts into a local file handle.
func NewFile(parts ...string) *File {
	return NewFileOn(localProvider, parts...)
}

func NewFileOn(fs pathmodels.Provider, parts ...string) *File {
	return &File{path: fs.Join(parts...), fs: fs}
}

func (f *File) Provider() pathmodels.Provider { return f.fs }
func (f *File) String() string                { return f.path }
func (f *File) FullPath() string              { return f.fs.Abs(f.path) }
func (f *File) Name() string                  { return f.fs.Base(f.FullPath()) }
func (f *File) Exists() bool                  { return f.fs.IsFile(f.path) }
func (f *File) DoesNotExist() bool            { return !f.Exists() }

// Directory returns the directory holding the file.
func (f *File) Directory() *Directory {
	parent, ok := f.fs.Parent(f.FullPath())
	if !ok {
		parent = f.FullPath()
	}
	return NewDirectoryOn(f.fs, parent)
}

// Create makes an empty file, with any missing parent directories. An
// existing file is left untouched.
func (f *File) Create() error {
	return f.fs.Touch(f.FullPath())
}

func (f *File) Delete() error {
	return f.fs.Remove(f.FullPath(), false)
}

func (f *File) Stat() (*pathmodels.FileInfo, error) {
	return f.fs.Stat(f.FullPath())
}

// Destination reports where Copy or Move with the same parts would put f.
func (f *File) Destination(parts ...string) (string, error) {
	return destination(f.fs, "copy", f.Name(), parts)
}

// Copy copies the file and returns a handle to the copy. If the joined
// parts name an existing directory the copy keeps the file's name inside
// it; otherwise the joined path is the copy's exact path.
func (f *File) Copy(parts ...string) (*File, error) {
	return f.copy(nil, parts)
}

// CopyWith is Copy with explicit copy options instead of the provider's.
func (f *File) CopyWith(opts pathmodels.CopyOptions, parts ...string) (*File, error) {
	return f.copy([]pathmodels.CopyOptions{opts}, parts)
}

func (f *File) copy(opts []pathmodels.CopyOptions, parts []string) (*File, error) {
	target, err := destination(f.fs, "copy", f.Name(), parts)
	if err != nil {
		return nil, err
	}

	if err := f.fs.CopyFile(f.FullPath(), target, opts...); err != nil {
		return nil, err
	}

	return NewFileOn(f.fs, target), nil
}

// Move relocates the file with the same target policy as Copy and points
// the handle at the new location.
func (f *File) Move(parts ...string) error {
	target, err := destination(f.fs, "move", f.Name(), parts)
	if err != nil {
		return err
	}

	if err := f.fs.Move(f.FullPath(), target); err != nil {
		return err
	}
	f.path = target
	return nil
}

// Rename gives the file a new name in the same directory.
func (f *File) Rename(newName string) error {
	newPath, err := f.fs.Rename(f.FullPath(), newName)
	if err != nil {
		return err
	}
	f.path = newPath
	return nil
}

func (f *File) ReadBytes() ([]byte, error) {
	return f.fs.ReadBytes(f.FullPath())
}

func (f *File) WriteBytes(data []byte) error {
	return f.fs.WriteBytes(f.FullPath(), data)
}

// ReadText decodes the file from the named IANA encoding, utf-8 if empty.
func (f *File) ReadText(encodingName string) (string, error) {
	return f.fs.ReadText(f.FullPath(), encodingName)
}

func (f *File) WriteText(content string, encodingName string) error {
	return f.fs.WriteText(f.FullPath(), content, encodingName)
}
