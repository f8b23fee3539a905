// Package pathglob compiles shell style globs into anchored matchers.
//
// A glob is read as an alternating sequence of literal runs, single stars and
// double stars:
//   - '*'   matches any run of characters except '/'
//   - '**'  matches any run of characters including '/'
//   - '**/' at the start of an element matches zero or more whole directories,
//     so "**/*.txt" matches "c.txt"; elsewhere the '/' stays literal
//
// Backslashes are read as separators. Literal dots only match themselves. Any
// other regexp syntax in a literal run is handed to the regexp engine as is, and
// the engine's syntax error is returned unchanged when it is malformed.
package pathglob

import (
	"regexp"
	"strings"
)

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenStar
	tokenAny
	tokenAnyDirs
)

type token struct {
	kind tokenKind
	text string
}

// Matcher reports whether a slash separated relative path is accepted.
type Matcher interface {
	Match(candidate string) bool
}

// MatcherFunc adapts a plain function to Matcher.
type MatcherFunc func(candidate string) bool

func (f MatcherFunc) Match(candidate string) bool { return f(candidate) }

// Regexp wraps a caller built expression as a Matcher.
func Regexp(re *regexp.Regexp) Matcher {
	return MatcherFunc(re.MatchString)
}

// Pattern is a compiled glob. It is immutable and safe for concurrent use.
type Pattern struct {
	glob          string
	caseSensitive bool
	re            *regexp.Regexp
}

// Compile translates glob and compiles it. The same glob and flag always
// produce matchers that behave identically.
func Compile(glob string, caseSensitive bool) (*Pattern, error) {
	re, err := regexp.Compile(Translate(glob, caseSensitive))
	if err != nil {
		return nil, err
	}
	return &Pattern{glob: glob, caseSensitive: caseSensitive, re: re}, nil
}

// MustCompile is like Compile but panics if the glob cannot be compiled.
func MustCompile(glob string, caseSensitive bool) *Pattern {
	p, err := Compile(glob, caseSensitive)
	if err != nil {
		panic(`pathglob: Compile(` + glob + `): ` + err.Error())
	}
	return p
}

func (p *Pattern) Match(candidate string) bool { return p.re.MatchString(candidate) }

func (p *Pattern) String() string { return p.glob }

func (p *Pattern) CaseSensitive() bool { return p.caseSensitive }

// Expr returns the regular expression the glob was rendered to.
func (p *Pattern) Expr() string { return p.re.String() }

// Translate renders glob to an anchored regular expression without compiling it.
func Translate(glob string, caseSensitive bool) string {
	var b strings.Builder
	if !caseSensitive {
		b.WriteString("(?i)")
	}
	b.WriteByte('^')
	for _, t := range tokenize(glob) {
		switch t.kind {
		case tokenLiteral:
			b.WriteString(strings.ReplaceAll(t.text, ".", `\.`))
		case tokenStar:
			b.WriteString(`[^/]*`)
		case tokenAny:
			b.WriteString(`.*`)
		case tokenAnyDirs:
			b.WriteString(`(?:.*/)?`)
		}
	}
	b.WriteByte('$')
	return b.String()
}

// tokenize splits a glob into literal runs and stars. Double stars are taken
// before single ones so a '**' is never read as two '*'. Only a '**/' that
// opens a path element may match zero directories.
func tokenize(glob string) []token {
	glob = strings.ReplaceAll(glob, `\`, "/")

	var tokens []token
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{kind: tokenLiteral, text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(glob); {
		switch {
		case strings.HasPrefix(glob[i:], "**/") && (i == 0 || glob[i-1] == '/'):
			flush()
			tokens = append(tokens, token{kind: tokenAnyDirs})
			i += 3
		case strings.HasPrefix(glob[i:], "**"):
			flush()
			tokens = append(tokens, token{kind: tokenAny})
			i += 2
		case glob[i] == '*':
			flush()
			tokens = append(tokens, token{kind: tokenStar})
			i++
		default:
			lit.WriteByte(glob[i])
			i++
		}
	}
	flush()

	return tokens
}
