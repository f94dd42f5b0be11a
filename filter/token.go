package filter

import (
	"strings"

	"github.com/jamesainslie/go-strsplit/lexicon"
)

const (
	// prolongMinBytes is the shortest token, in bytes, whose trailing prolong
	// mark is cut. Four three-byte kana.
	prolongMinBytes = 12

	prolongFull = "ー" // U+30FC
	prolongHalf = "ｰ" // U+FF70
)

// TokenFilter rewrites a space-delimited token string token by token.
type TokenFilter struct {
	// Lexicon replaces tokens with their base form when set.
	Lexicon lexicon.Lexicon
	// CutProlong drops one trailing prolong mark from long tokens.
	CutProlong bool
	// Pattern is stripped from every token when set.
	Pattern *Pattern
}

// Active reports whether the filter would change anything.
func (f *TokenFilter) Active() bool {
	return f != nil && (f.Lexicon != nil || f.CutProlong || f.Pattern != nil)
}

// Apply splits s on ASCII spaces, rewrites each token and joins the
// non-empty results with exactly one space.
func (f *TokenFilter) Apply(s string) string {
	if !f.Active() {
		return s
	}

	fields := strings.Split(s, " ")
	out := make([]string, 0, len(fields))
	for _, tok := range fields {
		if tok == "" {
			continue
		}
		if tok = f.token(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return strings.Join(out, " ")
}

func (f *TokenFilter) token(tok string) string {
	if f.Lexicon != nil {
		tok = lexicon.Lemma(f.Lexicon, tok)
	}
	if f.CutProlong {
		tok = CutProlong(tok)
	}
	return f.Pattern.Strip(tok)
}

// CutProlong removes a single trailing prolong mark from tokens of at least
// twelve bytes.
func CutProlong(tok string) string {
	if len(tok) < prolongMinBytes {
		return tok
	}
	if t, ok := strings.CutSuffix(tok, prolongFull); ok {
		return t
	}
	if t, ok := strings.CutSuffix(tok, prolongHalf); ok {
		return t
	}
	return tok
}
