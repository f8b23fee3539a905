package pathglob

import (
	"errors"
	"regexp"
	"regexp/syntax"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Match(t *testing.T) {
	tests := []struct {
		name          string
		glob          string
		caseSensitive bool
		candidate     string
		want          bool
	}{
		{"double star crosses directories", "**/*.txt", true, "a/b/c.txt", true},
		{"double star rejects other extension", "**/*.txt", true, "a/b/c.md", false},
		{"double star matches zero directories", "**/*.txt", true, "c.txt", true},
		{"single star stays in one segment", "*.txt", true, "a/b.txt", false},
		{"single star matches in segment", "*.txt", true, "b.txt", true},
		{"dot is literal", "*.txt", true, "atxt", false},
		{"anchored at start", "b.txt", true, "ab.txt", false},
		{"anchored at end", "b.txt", true, "b.txt.bak", false},
		{"nested double star with prefix", "a/**/*.txt", true, "a/x.txt", true},
		{"nested double star deep", "a/**/*.txt", true, "a/b/c/y.txt", true},
		{"nested double star other root", "a/**/*.txt", true, "b/x.txt", false},
		{"trailing double star", "a/**", true, "a/b/c", true},
		{"bare double star", "**", true, "", true},
		{"backslashes read as separators", `a\*.txt`, true, "a/b.txt", true},
		{"case insensitive", "*.TXT", false, "readme.txt", true},
		{"case sensitive", "*.TXT", true, "readme.txt", false},
		{"character class passes through", "file[12].log", true, "file2.log", true},
		{"double star inside a name keeps the slash", "a**/b.txt", true, "ab.txt", false},
		{"double star inside a name crosses directories", "a**/b.txt", true, "ax/y/b.txt", true},
		{"double star after a prefix needs the slash", "src**/main.go", true, "srcmain.go", false},
		{"double star after a prefix matches deeper", "src**/main.go", true, "src/cmd/main.go", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.glob, tt.caseSensitive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Match(tt.candidate), "expr %s", p.Expr())
		})
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		glob          string
		caseSensitive bool
		want          string
	}{
		{"**/*.txt", true, `^(?:.*/)?[^/]*\.txt$`},
		{"a/**", true, `^a/.*$`},
		{"*.cs", false, `(?i)^[^/]*\.cs$`},
		{`dir\sub\**\x`, true, `^dir/sub/(?:.*/)?x$`},
		{"a**/b.txt", true, `^a.*/b\.txt$`},
	}

	for _, tt := range tests {
		t.Run(tt.glob, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.glob, tt.caseSensitive))
		})
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("src/**/*_test.go")
	want := []token{
		{kind: tokenLiteral, text: "src/"},
		{kind: tokenAnyDirs},
		{kind: tokenStar},
		{kind: tokenLiteral, text: "_test.go"},
	}
	assert.Equal(t, want, got)
}

func TestCompile_Deterministic(t *testing.T) {
	a := MustCompile("docs/**/*.md", false)
	b := MustCompile("docs/**/*.md", false)

	assert.Equal(t, a.Expr(), b.Expr())
	for _, candidate := range []string{"docs/a.md", "DOCS/x/y.MD", "docs/a.txt", "other/a.md"} {
		assert.Equal(t, a.Match(candidate), b.Match(candidate), candidate)
	}
}

func TestCompile_PatternError(t *testing.T) {
	_, err := Compile("broken(*.txt", true)
	require.Error(t, err)

	var syntaxErr *syntax.Error
	assert.True(t, errors.As(err, &syntaxErr), "want the engine's own error, got %T", err)
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("[", true) })
}

func TestRegexp(t *testing.T) {
	m := Regexp(regexp.MustCompile(`\.go$`))
	assert.True(t, m.Match("main.go"))
	assert.False(t, m.Match("main.rs"))
}
