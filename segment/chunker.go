package segment

import (
	"fmt"
	"iter"
)

// Range is a half-open byte interval [Start, End) of a text.
type Range struct {
	Start int
	End   int
}

// Len returns the byte length of the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Slice returns the part of text covered by the range.
func (r Range) Slice(text string) string {
	return text[r.Start:r.End]
}

func (r Range) String() string {
	return fmt.Sprintf("[%d:%d]", r.Start, r.End)
}

// Chunk is a range together with its position in the sequence and the text
// it covers. Text shares memory with the input string.
type Chunk struct {
	Range
	Index int
	Text  string
}

// Ranges yields contiguous ranges covering text, each at most limit bytes
// long except when a single character is wider than limit.
//
// Empty text yields no ranges. A limit <= 0 means unbounded and yields the
// whole text as one range. Every boundary is a character boundary and, when
// the window contains one, a soft break.
func Ranges(text string, limit int) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		if text == "" {
			return
		}
		if limit <= 0 || len(text) < limit {
			yield(Range{Start: 0, End: len(text)})
			return
		}

		start := 0
		for start+limit < len(text) {
			brk := FindBreak(text, start, start+limit)
			if brk <= start {
				// The window holds no boundary past start; take one
				// whole character so the loop always advances.
				brk = start + runeWidth(text, start)
			}
			if !yield(Range{Start: start, End: brk}) {
				return
			}
			start = brk
		}
		if start < len(text) {
			yield(Range{Start: start, End: len(text)})
		}
	}
}

// Chunks is Ranges with each range paired with its index and text.
func Chunks(text string, limit int) iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		i := 0
		for r := range Ranges(text, limit) {
			if !yield(Chunk{Range: r, Index: i, Text: r.Slice(text)}) {
				return
			}
			i++
		}
	}
}

// Split collects Chunks into a slice.
func Split(text string, limit int) []Chunk {
	var chunks []Chunk
	for c := range Chunks(text, limit) {
		chunks = append(chunks, c)
	}
	return chunks
}
