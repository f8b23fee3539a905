package pathlocal

import (
	"os"
	"path/filepath"
)

// Abs returns the absolute, cleaned form of p. If the working directory is
// unknown the cleaned input is returned instead.
func Abs(p string) string {
	absPath, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return absPath
}

// Parent returns the directory holding p. At a volume root there is none.
func Parent(p string) (string, bool) {
	p = filepath.Clean(p)
	dir := filepath.Dir(p)
	if dir == p {
		return "", false
	}
	return dir, true
}

func Separator() string {
	return string(os.PathSeparator)
}
