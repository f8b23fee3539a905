// Package pathlocal implements the filesystem provider on top of the host
// operating system. Each operation is a free function; Provider binds them
// to the pathmodels.Provider interface with a fixed set of options.
package pathlocal

import (
	"os"
	"path/filepath"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
)

type Provider struct {
	options pathmodels.PathOption
}

var _ pathmodels.Provider = (*Provider)(nil)

func New(opts ...pathmodels.PathOption) *Provider {
	options := pathmodels.DefaultPathOption()
	if len(opts) > 0 {
		options = opts[0]
	}
	return &Provider{options: options}
}

func (p *Provider) Abs(path string) string            { return Abs(path) }
func (p *Provider) Parent(path string) (string, bool) { return Parent(path) }
func (p *Provider) Join(elem ...string) string        { return filepath.Join(elem...) }
func (p *Provider) Base(path string) string           { return filepath.Base(path) }
func (p *Provider) Separator() string                 { return Separator() }

func (p *Provider) Stat(path string) (*pathmodels.FileInfo, error) { return Stat(path) }

func (p *Provider) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (p *Provider) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (p *Provider) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (p *Provider) ListFiles(dir string) ([]string, error)   { return ListFiles(dir) }
func (p *Provider) ListDirs(dir string) ([]string, error)    { return ListDirs(dir) }
func (p *Provider) ListSubDirs(dir string) ([]string, error) { return ListSubDirs(dir) }

func (p *Provider) Glob(dir string, pattern string) ([]string, error) {
	return Glob(dir, pattern)
}

func (p *Provider) MakeDir(path string, parents bool, existsOk bool) error {
	return MakeDir(path, parents, existsOk, os.FileMode(p.options.DirPermissions))
}

func (p *Provider) Touch(path string) error {
	return Touch(path, os.FileMode(p.options.Permissions), os.FileMode(p.options.DirPermissions))
}

func (p *Provider) Remove(path string, missingOk bool) error { return Remove(path, missingOk) }

func (p *Provider) RemoveDir(path string, missingOk bool, recursive bool) error {
	return RemoveDir(path, missingOk, recursive)
}

func (p *Provider) CopyFile(src string, dest string, opts ...pathmodels.CopyOptions) error {
	if len(opts) == 0 {
		opts = []pathmodels.CopyOptions{{PathOption: p.options}}
	}
	return CopyFile(src, dest, opts...)
}

func (p *Provider) Move(src string, dest string) error { return Move(src, dest) }

func (p *Provider) Rename(path string, newName string) (string, error) {
	return RenameFile(path, newName)
}

func (p *Provider) ReadBytes(path string) ([]byte, error) { return ReadBytes(path) }

func (p *Provider) WriteBytes(path string, data []byte) error {
	return WriteBytes(path, data, os.FileMode(p.options.Permissions))
}

func (p *Provider) ReadText(path string, encodingName string) (string, error) {
	return ReadText(path, encodingName)
}

func (p *Provider) WriteText(path string, content string, encodingName string) error {
	return WriteText(path, content, encodingName, os.FileMode(p.options.Permissions))
}
