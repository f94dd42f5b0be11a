// Package filter holds the text stages that surround tokenization: regex
// stripping, Unicode normalization and per-token rewriting.
package filter

import (
	"fmt"
	"regexp"
)

// DefaultPreFilter strips HTML-tag-like spans, escaped \n \r \t sequences
// and a fixed class of ASCII punctuation.
const DefaultPreFilter = `(<[^>]*>)|\\n|\\r|\\t|([\\,.;:&^/\-\#'"\(\)\[\]{}])`

// Pattern removes every match of a regular expression. A nil *Pattern
// matches nothing.
type Pattern struct {
	re *regexp.Regexp
}

// Compile parses expr. An empty expression yields a nil Pattern.
func Compile(expr string) (*Pattern, error) {
	if expr == "" {
		return nil, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", expr, err)
	}
	return &Pattern{re: re}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Replace deletes all matches in s and reports whether anything matched.
func (p *Pattern) Replace(s string) (string, bool) {
	if p == nil || s == "" {
		return s, false
	}
	if !p.re.MatchString(s) {
		return s, false
	}
	return p.re.ReplaceAllLiteralString(s, ""), true
}

// Strip is Replace without the match report.
func (p *Pattern) Strip(s string) string {
	out, _ := p.Replace(s)
	return out
}

func (p *Pattern) String() string {
	if p == nil {
		return ""
	}
	return p.re.String()
}
