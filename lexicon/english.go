package lexicon

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// English looks ASCII words up in an English lemma dictionary, so irregular
// forms resolve to real words ("went" to "go", "mice" to "mouse"). The
// dictionary is not tagged by part of speech: a known word is answered for
// every POS, which makes Lemma take the first query. Unknown words are not
// answered.
type English struct {
	lm *golem.Lemmatizer
}

// NewEnglish loads the English lemma dictionary.
func NewEnglish() (*English, error) {
	lm, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("initializing english lemmatizer: %w", err)
	}
	return &English{lm: lm}, nil
}

// BaseForm implements Lexicon.
func (e *English) BaseForm(token string, _ POS) (string, bool) {
	if !isASCIILetters(token) {
		return "", false
	}
	word := strings.ToLower(token)
	if !e.lm.InDict(word) {
		return "", false
	}
	base := e.lm.Lemma(word)
	if base == "" {
		return "", false
	}
	return base, true
}

// ByScript routes ASCII tokens to one lexicon and everything else to
// another. A nil route never answers.
type ByScript struct {
	ASCII Lexicon
	Other Lexicon
}

// BaseForm implements Lexicon.
func (s ByScript) BaseForm(token string, pos POS) (string, bool) {
	lx := s.Other
	if isASCII(token) {
		lx = s.ASCII
	}
	if lx == nil {
		return "", false
	}
	return lx.BaseForm(token, pos)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func isASCIILetters(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'))
	}) < 0
}
