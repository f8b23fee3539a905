package pathsftp

import (
	"path"
)

// Abs anchors p at cwd when it is relative and cleans it. SFTP paths are
// always slash separated, whatever the client platform.
func Abs(cwd string, p string) string {
	if !path.IsAbs(p) {
		p = path.Join(cwd, p)
	}
	return path.Clean(p)
}

func Parent(p string) (string, bool) {
	p = path.Clean(p)
	if p == "/" || p == "." {
		return "", false
	}
	return path.Dir(p), true
}

func Separator() string {
	return "/"
}
