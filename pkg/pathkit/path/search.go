package path

import (
	pathglob "github.com/ImGajeed76/pathkit/pkg/pathkit/path/glob"
	"github.com/ImGajeed76/pathkit/pkg/pathkit/path/helpers"
)

type SearchOptions struct {
	CaseSensitive bool
}

func DefaultSearchOptions() SearchOptions {
	return SearchOptions{CaseSensitive: false}
}

// Search returns every file below d whose path relative to d, written with
// forward slashes, matches glob. '*' stays inside one path element and '**'
// crosses elements. An invalid pattern is reported as the regexp engine's
// own error. The order is whatever the provider lists.
func (d *Directory) Search(glob string, opts ...SearchOptions) ([]*File, error) {
	options := DefaultSearchOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	pattern, err := pathglob.Compile(glob, options.CaseSensitive)
	if err != nil {
		return nil, err
	}
	return d.SearchMatcher(pattern)
}

// SearchMatcher is Search with a caller supplied matcher.
func (d *Directory) SearchMatcher(matcher pathglob.Matcher) ([]*File, error) {
	paths, err := d.fs.ListFiles(d.FullPath())
	if err != nil {
		return nil, err
	}

	sep := d.fs.Separator()
	var found []*File
	for _, p := range paths {
		rel, ok := d.RelativePath(p)
		if !ok {
			continue
		}
		if matcher.Match(helpers.ToSlash(rel, sep)) {
			found = append(found, NewFileOn(d.fs, p))
		}
	}
	return found, nil
}
