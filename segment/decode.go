package segment

import (
	"iter"
	"unicode/utf8"
)

// Backward yields the start offset and rune of every character whose first
// byte lies in (start, end], rightmost first.
//
// If end falls inside a character, the first value yielded is the start of
// that character. An end at or past len(text) starts from the last character.
func Backward(text string, start, end int) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		if start < 0 {
			start = 0
		}
		pos := end
		if pos >= len(text) {
			pos = len(text)
		} else {
			for pos > start && !utf8.RuneStart(text[pos]) {
				pos--
			}
			if pos > start {
				r, _ := utf8.DecodeRuneInString(text[pos:])
				if !yield(pos, r) {
					return
				}
			}
		}

		for pos > start {
			r, width := utf8.DecodeLastRuneInString(text[:pos])
			pos -= width
			if pos <= start {
				return
			}
			if !yield(pos, r) {
				return
			}
		}
	}
}

// runeWidth returns the encoded width of the character starting at pos,
// or 0 when pos is at or past the end of text.
func runeWidth(text string, pos int) int {
	if pos >= len(text) {
		return 0
	}
	_, width := utf8.DecodeRuneInString(text[pos:])
	return width
}
