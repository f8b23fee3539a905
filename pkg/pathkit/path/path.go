// Package path provides file and directory handles on top of a filesystem
// provider. A handle is a path string bound to a provider; creating one
// never touches the filesystem, so a handle may name something that does
// not exist yet and operations fail at call time when it has to.
//
// Handles built with NewFile and NewDirectory use the local filesystem.
// NewFileOn and NewDirectoryOn bind any other pathmodels.Provider, such as
// the SFTP one.
package path

import (
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	pathlocal "github.com/ImGajeed76/pathkit/pkg/pathkit/path/operations/local"
)

// Entry is what files and directories have in common.
type Entry interface {
	// FullPath is the absolute, cleaned path on the entry's provider.
	FullPath() string
	Name() string
	Exists() bool
	Provider() pathmodels.Provider
	String() string
}

var (
	_ Entry = (*File)(nil)
	_ Entry = (*Directory)(nil)
)

var localProvider pathmodels.Provider = pathlocal.New()

// Local returns the provider used by NewFile and NewDirectory.
func Local() pathmodels.Provider {
	return localProvider
}

// FilePaths returns the full path of every file, in order.
func FilePaths(files []*File) []string {
	paths := make([]string, len(files))
	for i, file := range files {
		paths[i] = file.FullPath()
	}
	return paths
}

// DirectoryPaths returns the full path of every directory, in order.
func DirectoryPaths(dirs []*Directory) []string {
	paths := make([]string, len(dirs))
	for i, dir := range dirs {
		paths[i] = dir.FullPath()
	}
	return paths
}

// destination applies the copy and move target policy: when the joined
// parts name an existing directory the entry lands inside it under its own
// name, otherwise it lands at exactly the joined path.
func destination(fs pathmodels.Provider, op string, name string, parts []string) (string, error) {
	if len(parts) == 0 {
		return "", &pathmodels.PathError{Op: op + "-destination", Err: pathmodels.ErrInvalid}
	}

	joined := fs.Abs(fs.Join(parts...))
	if fs.IsDir(joined) {
		return fs.Join(joined, name), nil
	}
	return joined, nil
}
