// Package pathrelative expresses one path relative to a directory, climbing
// with ".." when the target is not below it.
package pathrelative

import (
	"strings"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
)

// Mode selects how "target lies under base" is decided.
type Mode int

const (
	// Segments compares whole path elements, so "/home/al" does not
	// contain "/home/alice".
	Segments Mode = iota
	// Substring looks for base anywhere inside target, as older releases
	// did. "/home/al" against "/home/alice/readme" gives "ice/readme".
	Substring
)

func (m Mode) String() string {
	switch m {
	case Segments:
		return "segments"
	case Substring:
		return "substring"
	default:
		return "unknown"
	}
}

type Options struct {
	Mode Mode
}

func DefaultOptions() Options {
	return Options{Mode: Segments}
}

// Resolve returns target relative to the directory base, using the
// separator of syntax. Both paths are made absolute first; neither has to
// exist. When target is below base the result has no leading separator and
// is empty if they are the same path. Otherwise ancestors of base are tried
// in turn and the result starts with one ".." element per level climbed.
// The boolean is false when no ancestor up to the root relates the two.
func Resolve(syntax pathmodels.PathSyntax, base string, target string, opts ...Options) (string, bool) {
	options := DefaultOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	base = syntax.Abs(base)
	target = syntax.Abs(target)
	sep := syntax.Separator()

	if rel, ok := contains(base, target, sep, options.Mode); ok {
		return rel, true
	}

	dirsUp := 1
	ancestor, ok := syntax.Parent(base)
	for ok {
		if rel, found := contains(ancestor, target, sep, options.Mode); found {
			return strings.Repeat(".."+sep, dirsUp) + rel, true
		}
		dirsUp++
		ancestor, ok = syntax.Parent(ancestor)
	}

	return "", false
}

// contains reports whether target lies under dir and returns the remainder
// with leading separators removed.
func contains(dir string, target string, sep string, mode Mode) (string, bool) {
	if mode == Substring {
		index := strings.Index(target, dir)
		if index < 0 {
			return "", false
		}
		return trimSeparators(target[index+len(dir):], sep), true
	}

	if target == dir {
		return "", true
	}
	prefix := dir
	if !strings.HasSuffix(prefix, sep) {
		prefix += sep
	}
	if !strings.HasPrefix(target, prefix) {
		return "", false
	}
	return trimSeparators(target[len(prefix):], sep), true
}

func trimSeparators(p string, sep string) string {
	for {
		switch {
		case sep != "" && strings.HasPrefix(p, sep):
			p = p[len(sep):]
		case strings.HasPrefix(p, "/"):
			p = p[1:]
		default:
			return p
		}
	}
}
