package path

import (
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	pathrelative "github.com/ImGajeed76/pathkit/pkg/pathkit/path/relative"
)

// Directory is a handle to a directory path. Every listing goes back to the
// provider; nothing is cached between calls.
type Directory struct {
	path       string
	fs         pathmodels.Provider
	resolution pathrelative.Mode
}

// NewDirectory joins parts into a local directory handle.
func NewDirectory(parts ...string) *Directory {
	return NewDirectoryOn(localProvider, parts...)
}

func NewDirectoryOn(fs pathmodels.Provider, parts ...string) *Directory {
	return &Directory{path: fs.Join(parts...), fs: fs}
}

// WithResolution returns a copy of the handle that decides containment in
// Relative, Search and Copy with mode. Directories derived from it inherit
// the mode.
func (d *Directory) WithResolution(mode pathrelative.Mode) *Directory {
	clone := *d
	clone.resolution = mode
	return &clone
}

func (d *Directory) Provider() pathmodels.Provider { return d.fs }
func (d *Directory) String() string                { return d.path }
func (d *Directory) FullPath() string              { return d.fs.Abs(d.path) }
func (d *Directory) Name() string                  { return d.fs.Base(d.FullPath()) }
func (d *Directory) Exists() bool                  { return d.fs.IsDir(d.path) }
func (d *Directory) DoesNotExist() bool            { return !d.Exists() }

// Create makes the directory and any missing parents. It is not an error
// for the directory to exist already.
func (d *Directory) Create() error {
	return d.fs.MakeDir(d.FullPath(), true, true)
}

// Delete removes the directory and everything below it.
func (d *Directory) Delete() error {
	return d.fs.RemoveDir(d.FullPath(), false, true)
}

func (d *Directory) Stat() (*pathmodels.FileInfo, error) {
	return d.fs.Stat(d.FullPath())
}

// GetFile returns a handle for parts joined below the directory.
func (d *Directory) GetFile(parts ...string) *File {
	return NewFileOn(d.fs, d.join(parts)...)
}

// GetDirectory returns a handle for parts joined below the directory.
func (d *Directory) GetDirectory(parts ...string) *Directory {
	return d.derive(d.fs.Join(d.join(parts)...))
}

func (d *Directory) GetDir(parts ...string) *Directory { return d.GetDirectory(parts...) }

func (d *Directory) join(parts []string) []string {
	return append([]string{d.path}, parts...)
}

func (d *Directory) derive(p string) *Directory {
	return &Directory{path: p, fs: d.fs, resolution: d.resolution}
}

// Parent returns the enclosing directory, or false at the root.
func (d *Directory) Parent() (*Directory, bool) {
	parent, ok := d.fs.Parent(d.FullPath())
	if !ok {
		return nil, false
	}
	return d.derive(parent), true
}

// Files returns every file below the directory, at any depth.
func (d *Directory) Files() ([]*File, error) {
	paths, err := d.fs.ListFiles(d.FullPath())
	if err != nil {
		return nil, err
	}

	files := make([]*File, len(paths))
	for i, p := range paths {
		files[i] = NewFileOn(d.fs, p)
	}
	return files, nil
}

// Directories returns every directory below the directory, at any depth.
func (d *Directory) Directories() ([]*Directory, error) {
	paths, err := d.fs.ListDirs(d.FullPath())
	if err != nil {
		return nil, err
	}
	return d.deriveAll(paths), nil
}

func (d *Directory) Dirs() ([]*Directory, error) { return d.Directories() }

// SubDirectories returns only the direct children that are directories.
func (d *Directory) SubDirectories() ([]*Directory, error) {
	paths, err := d.fs.ListSubDirs(d.FullPath())
	if err != nil {
		return nil, err
	}
	return d.deriveAll(paths), nil
}

func (d *Directory) SubDirs() ([]*Directory, error) { return d.SubDirectories() }

func (d *Directory) deriveAll(paths []string) []*Directory {
	dirs := make([]*Directory, len(paths))
	for i, p := range paths {
		dirs[i] = d.derive(p)
	}
	return dirs
}

// Relative returns the path of target relative to d in the provider's
// separator, climbing with ".." when target is not below d. It reports
// false when the two share no ancestor, e.g. they sit on different drives.
func (d *Directory) Relative(target Entry) (string, bool) {
	return d.RelativePath(target.FullPath())
}

// RelativePath is Relative for a raw path on d's provider.
func (d *Directory) RelativePath(target string) (string, bool) {
	return pathrelative.Resolve(d.fs, d.FullPath(), target, pathrelative.Options{Mode: d.resolution})
}

// Glob runs pattern through the provider's own matcher, rooted at d. The
// dialect is provider specific; Search is the portable alternative.
func (d *Directory) Glob(pattern string) ([]string, error) {
	return d.fs.Glob(d.FullPath(), pattern)
}
