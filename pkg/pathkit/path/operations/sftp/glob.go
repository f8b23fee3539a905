package pathsftp

import (
	"path"
	"strings"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/pkg/sftp"
)

// Glob returns the remote paths below dir that match pattern. The server
// side has no recursive wildcard, so the syntax is that of path.Match:
//   - '*' matches any sequence of non-separator characters
//   - '?' matches any single non-separator character
//   - '[abc]' matches any single character within brackets
func Glob(client *sftp.Client, dir string, pattern string) ([]string, error) {
	if dir == "" {
		dir = "."
	}

	fullPattern := path.Join(escapeGlob(dir), pattern)

	matches, err := client.Glob(fullPattern)
	if err != nil {
		return nil, &pathmodels.PathError{Op: "sftp-glob-match", Path: fullPattern, Err: err}
	}

	return matches, nil
}

// escapeGlob quotes the characters path.Match treats specially.
func escapeGlob(p string) string {
	var b strings.Builder
	for _, r := range p {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
