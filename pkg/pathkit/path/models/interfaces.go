package pathmodels

// PathSyntax is the pure, I/O free part of a provider: how paths are spelled
// and normalized on that filesystem.
type PathSyntax interface {
	// Abs returns the absolute, cleaned form of p. When the working
	// directory cannot be determined the cleaned input is returned.
	Abs(p string) string
	// Parent returns the directory containing p, or false at the root.
	Parent(p string) (string, bool)
	Join(elem ...string) string
	Base(p string) string
	Separator() string
}

type Inspector interface {
	Exists(p string) bool
	IsDir(p string) bool
	IsFile(p string) bool
	Stat(p string) (*FileInfo, error)
}

// Lister enumerates directories. Every call goes back to the filesystem.
type Lister interface {
	// ListFiles returns every file below dir, at any depth.
	ListFiles(dir string) ([]string, error)
	// ListDirs returns every directory below dir, at any depth, parents first.
	ListDirs(dir string) ([]string, error)
	// ListSubDirs returns the direct child directories of dir.
	ListSubDirs(dir string) ([]string, error)
	// Glob evaluates pattern with the provider's native matcher, rooted at dir.
	Glob(dir string, pattern string) ([]string, error)
}

type Mutator interface {
	MakeDir(p string, parents bool, existsOk bool) error
	Touch(p string) error
	Remove(p string, missingOk bool) error
	RemoveDir(p string, missingOk bool, recursive bool) error
	CopyFile(src string, dest string, opts ...CopyOptions) error
	// Move relocates src to dest in a single native call.
	Move(src string, dest string) error
	// Rename changes the last element of p and returns the new path.
	Rename(p string, newName string) (string, error)
}

type ContentIO interface {
	ReadBytes(p string) ([]byte, error)
	WriteBytes(p string, data []byte) error
	ReadText(p string, encodingName string) (string, error)
	WriteText(p string, content string, encodingName string) error
}

// Provider is the full capability set handles are built on.
type Provider interface {
	PathSyntax
	Inspector
	Lister
	Mutator
	ContentIO
}
