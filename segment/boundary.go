package segment

import "unicode/utf8"

// LocateBoundary returns the largest offset pos with start <= pos <= end at
// which a character begins. The end of text counts as a boundary.
//
// At most utf8.UTFMax-1 bytes are examined below end. When no lead byte is
// found in that window, end is returned unchanged: the caller cannot improve
// on it, which is not an error.
func LocateBoundary(text string, start, end int) int {
	if end >= len(text) {
		return len(text)
	}
	if start < 0 {
		start = 0
	}
	for pos := end; pos >= start && pos > end-utf8.UTFMax; pos-- {
		if utf8.RuneStart(text[pos]) {
			return pos
		}
	}
	return end
}
