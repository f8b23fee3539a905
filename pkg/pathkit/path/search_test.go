package path

import (
	"errors"
	"regexp"
	"regexp/syntax"
	"testing"

	pathglob "github.com/ImGajeed76/pathkit/pkg/pathkit/path/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_Search(t *testing.T) {
	root := newTree(t, "a/x.txt", "a/b/y.txt", "a/b/z.md", "c.txt", "a/README.TXT")

	tests := []struct {
		name string
		glob string
		opts []SearchOptions
		want []string
	}{
		{
			name: "double star under a prefix",
			glob: "a/**/*.txt",
			opts: []SearchOptions{{CaseSensitive: true}},
			want: []string{"a/b/y.txt", "a/x.txt"},
		},
		{
			name: "case insensitive by default",
			glob: "a/**/*.txt",
			want: []string{"a/README.TXT", "a/b/y.txt", "a/x.txt"},
		},
		{
			name: "double star matches the top level too",
			glob: "**/*.txt",
			opts: []SearchOptions{{CaseSensitive: true}},
			want: []string{"a/b/y.txt", "a/x.txt", "c.txt"},
		},
		{
			name: "single star stays at the top",
			glob: "*.txt",
			want: []string{"c.txt"},
		},
		{
			name: "backslash separators",
			glob: `a\b\*`,
			want: []string{"a/b/y.txt", "a/b/z.md"},
		},
		{
			name: "nothing matches",
			glob: "**/*.go",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := root.Search(tt.glob, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, relativeNames(t, root, found))
		})
	}
}

func TestDirectory_SearchPatternError(t *testing.T) {
	root := newTree(t, "a.txt")

	_, err := root.Search("(unclosed*.txt")
	require.Error(t, err)

	var syntaxErr *syntax.Error
	assert.True(t, errors.As(err, &syntaxErr), "got %T", err)
}

func TestDirectory_SearchMissingRoot(t *testing.T) {
	_, err := NewDirectory(t.TempDir(), "missing").Search("*")
	assert.Error(t, err)
}

func TestDirectory_SearchMatcher(t *testing.T) {
	root := newTree(t, "src/main.go", "src/main_test.go", "docs/a.md")

	found, err := root.SearchMatcher(pathglob.Regexp(regexp.MustCompile(`_test\.go$`)))
	require.NoError(t, err)
	assert.Equal(t, []string{"src/main_test.go"}, relativeNames(t, root, found))

	found, err = root.SearchMatcher(pathglob.MatcherFunc(func(rel string) bool { return rel == "docs/a.md" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/a.md"}, relativeNames(t, root, found))
}

func TestDirectory_Glob(t *testing.T) {
	root := newTree(t, "a/x.txt", "a/b/y.txt", "a/b/z.md")

	matches, err := root.Glob("**/*.{txt,md}")
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}
