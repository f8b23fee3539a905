// Package pathsftp implements the filesystem provider for a remote host
// reached over SFTP. Operations are free functions on a *sftp.Client;
// Provider binds them to pathmodels.Provider and fetches the client for
// each call, so a pooled connection that died is replaced transparently.
package pathsftp

import (
	"context"
	"path"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	sftpmanager "github.com/ImGajeed76/pathkit/pkg/pathkit/sftp"
	"github.com/pkg/sftp"
)

// ClientFunc hands out the client for one operation.
type ClientFunc func() (*sftp.Client, error)

type Provider struct {
	client  ClientFunc
	cwd     string
	options pathmodels.PathOption
}

var _ pathmodels.Provider = (*Provider)(nil)

// New wraps an already connected client. The caller keeps ownership of it.
func New(client *sftp.Client, opts ...pathmodels.PathOption) (*Provider, error) {
	return newProvider(func() (*sftp.Client, error) { return client, nil }, opts...)
}

// Connect builds a provider on top of the connection pool. A nil manager
// means the process wide one. ctx bounds the initial connection only; each
// later operation waits at most the Timeout of the path options.
func Connect(ctx context.Context, manager *sftpmanager.Manager, details sftpmanager.ConnectionDetails, opts ...pathmodels.PathOption) (*Provider, error) {
	if manager == nil {
		manager = sftpmanager.GetGlobalManager()
	}

	if _, err := manager.GetClient(ctx, details); err != nil {
		return nil, &pathmodels.PathError{Op: "sftp-get-client", Path: details.String(), Err: err}
	}

	options := pathmodels.DefaultPathOption()
	if len(opts) > 0 {
		options = opts[0]
	}

	return newProvider(func() (*sftp.Client, error) {
		ctx, cancel := context.WithTimeout(context.Background(), options.Timeout)
		defer cancel()
		return manager.GetClient(ctx, details)
	}, options)
}

func newProvider(client ClientFunc, opts ...pathmodels.PathOption) (*Provider, error) {
	options := pathmodels.DefaultPathOption()
	if len(opts) > 0 {
		options = opts[0]
	}

	c, err := client()
	if err != nil {
		return nil, &pathmodels.PathError{Op: "sftp-get-client", Path: ".", Err: err}
	}
	cwd, err := c.Getwd()
	if err != nil {
		return nil, &pathmodels.PathError{Op: "sftp-getwd", Path: ".", Err: err}
	}

	return &Provider{client: client, cwd: cwd, options: options}, nil
}

func (p *Provider) get(op string, filePath string) (*sftp.Client, error) {
	c, err := p.client()
	if err != nil {
		return nil, &pathmodels.PathError{Op: op + "-get-client", Path: filePath, Err: err}
	}
	return c, nil
}

// WorkingDir is the remote directory relative paths are anchored at.
func (p *Provider) WorkingDir() string { return p.cwd }

func (p *Provider) Abs(filePath string) string            { return Abs(p.cwd, filePath) }
func (p *Provider) Parent(filePath string) (string, bool) { return Parent(filePath) }
func (p *Provider) Join(elem ...string) string            { return path.Join(elem...) }
func (p *Provider) Base(filePath string) string           { return path.Base(filePath) }
func (p *Provider) Separator() string                     { return Separator() }

func (p *Provider) Stat(filePath string) (*pathmodels.FileInfo, error) {
	c, err := p.get("sftp-stat", filePath)
	if err != nil {
		return nil, err
	}
	return Stat(c, filePath)
}

func (p *Provider) Exists(filePath string) bool {
	_, err := p.Stat(filePath)
	return err == nil
}

func (p *Provider) IsDir(filePath string) bool {
	info, err := p.Stat(filePath)
	return err == nil && info.IsDir
}

func (p *Provider) IsFile(filePath string) bool {
	info, err := p.Stat(filePath)
	return err == nil && !info.IsDir
}

func (p *Provider) ListFiles(dir string) ([]string, error) {
	c, err := p.get("sftp-list", dir)
	if err != nil {
		return nil, err
	}
	return ListFiles(c, dir)
}

func (p *Provider) ListDirs(dir string) ([]string, error) {
	c, err := p.get("sftp-list", dir)
	if err != nil {
		return nil, err
	}
	return ListDirs(c, dir)
}

func (p *Provider) ListSubDirs(dir string) ([]string, error) {
	c, err := p.get("sftp-list", dir)
	if err != nil {
		return nil, err
	}
	return ListSubDirs(c, dir)
}

func (p *Provider) Glob(dir string, pattern string) ([]string, error) {
	c, err := p.get("sftp-glob", dir)
	if err != nil {
		return nil, err
	}
	return Glob(c, dir, pattern)
}

func (p *Provider) MakeDir(dirPath string, parents bool, existsOk bool) error {
	c, err := p.get("sftp-mkdir", dirPath)
	if err != nil {
		return err
	}
	return MakeDir(c, dirPath, parents, existsOk)
}

func (p *Provider) Touch(filePath string) error {
	c, err := p.get("sftp-touch", filePath)
	if err != nil {
		return err
	}
	return Touch(c, filePath)
}

func (p *Provider) Remove(filePath string, missingOk bool) error {
	c, err := p.get("sftp-remove", filePath)
	if err != nil {
		return err
	}
	return Remove(c, filePath, missingOk)
}

func (p *Provider) RemoveDir(dirPath string, missingOk bool, recursive bool) error {
	c, err := p.get("sftp-removedir", dirPath)
	if err != nil {
		return err
	}
	return RemoveDir(c, dirPath, missingOk, recursive)
}

func (p *Provider) CopyFile(src string, dest string, opts ...pathmodels.CopyOptions) error {
	c, err := p.get("sftp-copy", src)
	if err != nil {
		return err
	}
	if len(opts) == 0 {
		opts = []pathmodels.CopyOptions{{PathOption: p.options}}
	}
	return CopyFile(c, src, dest, opts...)
}

func (p *Provider) Move(src string, dest string) error {
	c, err := p.get("sftp-move", src)
	if err != nil {
		return err
	}
	return Move(c, src, dest)
}

func (p *Provider) Rename(filePath string, newName string) (string, error) {
	c, err := p.get("sftp-renamefile", filePath)
	if err != nil {
		return "", err
	}
	return RenameFile(c, filePath, newName)
}

func (p *Provider) ReadBytes(filePath string) ([]byte, error) {
	c, err := p.get("sftp-read", filePath)
	if err != nil {
		return nil, err
	}
	return ReadBytes(c, filePath)
}

func (p *Provider) WriteBytes(filePath string, data []byte) error {
	c, err := p.get("sftp-write", filePath)
	if err != nil {
		return err
	}
	return WriteBytes(c, filePath, data)
}

func (p *Provider) ReadText(filePath string, encodingName string) (string, error) {
	c, err := p.get("sftp-read", filePath)
	if err != nil {
		return "", err
	}
	return ReadText(c, filePath, encodingName)
}

func (p *Provider) WriteText(filePath string, content string, encodingName string) error {
	c, err := p.get("sftp-write", filePath)
	if err != nil {
		return err
	}
	return WriteText(c, filePath, content, encodingName)
}
