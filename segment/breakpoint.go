package segment

// BreakClass classifies a character for break eligibility.
type BreakClass uint8

const (
	// ClassOther is any character that is not a break candidate.
	ClassOther BreakClass = iota
	// ClassPunct is ASCII punctuation.
	ClassPunct
	// ClassSpace is the ASCII space and the line-break controls LF, VT, FF, CR.
	ClassSpace
	// ClassJapanesePunct is Japanese sentence punctuation.
	ClassJapanesePunct
)

// Soft reports whether a character of this class is a preferred split point.
func (c BreakClass) Soft() bool {
	return c != ClassOther
}

func (c BreakClass) String() string {
	switch c {
	case ClassPunct:
		return "punct"
	case ClassSpace:
		return "space"
	case ClassJapanesePunct:
		return "ja-punct"
	default:
		return "other"
	}
}

type breakRange struct {
	lo, hi rune
	class  BreakClass
}

// breakTable lists every soft break character. Ranges are inclusive and must
// not overlap.
var breakTable = []breakRange{
	{0x0A, 0x0D, ClassSpace},
	{0x20, 0x20, ClassSpace},
	{0x21, 0x2E, ClassPunct},
	{0x3A, 0x40, ClassPunct},
	{0x5B, 0x60, ClassPunct},
	{0x7B, 0x7D, ClassPunct},
	{'、', '。', ClassJapanesePunct}, // U+3001, U+3002
	{'「', '」', ClassJapanesePunct}, // U+300C, U+300D
	{'・', '・', ClassJapanesePunct}, // U+30FB
}

// Classify returns the break class of r.
func Classify(r rune) BreakClass {
	for _, br := range breakTable {
		if r >= br.lo && r <= br.hi {
			return br.class
		}
	}
	return ClassOther
}

// FindBreak returns the split offset for the window [start, end].
//
// It scans characters beginning in (start, end] from the right and returns
// the offset of the first soft break found, so the chunk ends just before
// that character. Without a soft break it falls back to LocateBoundary,
// which yields a hard cut on a character boundary.
func FindBreak(text string, start, end int) int {
	for pos, r := range Backward(text, start, end) {
		if Classify(r).Soft() {
			return pos
		}
	}
	return LocateBoundary(text, start, end)
}
