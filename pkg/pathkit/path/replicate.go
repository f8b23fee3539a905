package path

import (
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
)

// ReplicateOptions tune a directory copy.
type ReplicateOptions struct {
	// File is handed to the provider for every file copied. Nil uses the
	// provider's defaults.
	File *pathmodels.CopyOptions
	// Progress is called after each file with the count done and the total.
	Progress func(done, total int, file *File)
}

// Destination reports where Copy or Move with the same parts would put d.
func (d *Directory) Destination(parts ...string) (string, error) {
	return destination(d.fs, "copy", d.Name(), parts)
}

// Copy replicates the tree below d. When the joined parts name an existing
// directory the copy is created inside it under d's name; otherwise the
// joined path becomes the copy's root. It returns d itself, unchanged.
func (d *Directory) Copy(parts ...string) (*Directory, error) {
	target, err := d.Destination(parts...)
	if err != nil {
		return nil, err
	}
	if err := d.CopyToExactPath(target); err != nil {
		return nil, err
	}
	return d, nil
}

// CopyToExactPath replicates the tree below d with target as its root. All
// directories, empty ones included, are created before any file is copied.
// The listing is taken up front, so a target inside d is not copied into
// itself. A target equal to d fails with ErrInvalid before anything is
// written.
func (d *Directory) CopyToExactPath(target string, opts ...ReplicateOptions) error {
	var options ReplicateOptions
	if len(opts) > 0 {
		options = opts[0]
	}

	root := d.FullPath()
	target = d.fs.Abs(target)
	if target == root {
		return &pathmodels.PathError{Op: "copy-same", Path: target, Err: pathmodels.ErrInvalid}
	}

	dirs, err := d.fs.ListDirs(root)
	if err != nil {
		return err
	}
	files, err := d.fs.ListFiles(root)
	if err != nil {
		return err
	}

	if err := d.fs.MakeDir(target, true, true); err != nil {
		return err
	}

	for _, dir := range dirs {
		dest, err := d.below(target, dir)
		if err != nil {
			return err
		}
		if err := d.fs.MakeDir(dest, true, true); err != nil {
			return err
		}
	}

	var copyOpts []pathmodels.CopyOptions
	if options.File != nil {
		copyOpts = append(copyOpts, *options.File)
	}

	for i, file := range files {
		dest, err := d.below(target, file)
		if err != nil {
			return err
		}
		if err := d.fs.CopyFile(file, dest, copyOpts...); err != nil {
			return err
		}
		if options.Progress != nil {
			options.Progress(i+1, len(files), NewFileOn(d.fs, dest))
		}
	}

	return nil
}

// below maps a descendant of d onto the same offset under target.
func (d *Directory) below(target string, descendant string) (string, error) {
	rel, ok := d.RelativePath(descendant)
	if !ok {
		return "", &pathmodels.PathError{Op: "copy-relative", Path: descendant, Err: pathmodels.ErrInvalid}
	}
	return d.fs.Join(target, rel), nil
}

// Move relocates the whole tree with a single provider call, using the same
// target policy as Copy, and points the handle at the new location. The
// provider's error is returned as is; there is no copy and delete fallback.
func (d *Directory) Move(parts ...string) error {
	target, err := destination(d.fs, "move", d.Name(), parts)
	if err != nil {
		return err
	}

	if err := d.fs.Move(d.FullPath(), target); err != nil {
		return err
	}
	d.path = target
	return nil
}
