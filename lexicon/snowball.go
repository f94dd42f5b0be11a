package lexicon

import "github.com/kljensen/snowball"

// Snowball reduces ASCII words to their English stem. Stems are not always
// words ("studies" becomes "studi"); prefer English unless recall on
// out-of-dictionary words matters more. It answers for verbs and nouns only.
type Snowball struct{}

// NewSnowball returns an English Snowball lexicon.
func NewSnowball() Snowball {
	return Snowball{}
}

// BaseForm implements Lexicon.
func (Snowball) BaseForm(token string, pos POS) (string, bool) {
	if pos != Verb && pos != Noun {
		return "", false
	}
	if !isASCIIWord(token) {
		return "", false
	}
	stem, err := snowball.Stem(token, "english", false)
	if err != nil || stem == "" {
		return "", false
	}
	return stem, true
}

func isASCIIWord(s string) bool {
	return len(s) >= 3 && isASCIILetters(s)
}
