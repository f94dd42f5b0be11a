package segment

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateBoundary(t *testing.T) {
	text := "ab" + "あ" + "cd" // あ occupies bytes 2..4

	tests := []struct {
		name       string
		start, end int
		want       int
	}{
		{"on ascii", 0, 1, 1},
		{"on lead byte", 0, 2, 2},
		{"first continuation", 0, 3, 2},
		{"second continuation", 0, 4, 2},
		{"after character", 0, 5, 5},
		{"end of text", 0, len(text), len(text)},
		{"past end of text", 0, len(text) + 3, len(text)},
		{"start bounds lookback", 3, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocateBoundary(text, tt.start, tt.end))
		})
	}
}

func TestLocateBoundary_FourByte(t *testing.T) {
	text := "x" + "😀" + "y" // 😀 occupies bytes 1..4
	for end := 1; end <= 4; end++ {
		assert.Equal(t, 1, LocateBoundary(text, 0, end), "end=%d", end)
	}
	assert.Equal(t, 5, LocateBoundary(text, 0, 5))
}

func TestBackward(t *testing.T) {
	text := "aあb。"

	type hit struct {
		pos int
		r   rune
	}
	collect := func(start, end int) []hit {
		var got []hit
		for pos, r := range Backward(text, start, end) {
			got = append(got, hit{pos, r})
		}
		return got
	}

	assert.Equal(t, []hit{{5, '。'}, {4, 'b'}, {1, 'あ'}}, collect(0, 5))
	assert.Equal(t, []hit{{5, '。'}, {4, 'b'}, {1, 'あ'}}, collect(0, len(text)))
	// end inside あ starts at that character
	assert.Equal(t, []hit{{1, 'あ'}}, collect(0, 3))
	// start itself is never yielded
	assert.Equal(t, []hit{{4, 'b'}}, collect(1, 4))
	assert.Empty(t, collect(4, 4))
}

func TestBackward_EarlyStop(t *testing.T) {
	n := 0
	for range Backward("abcdef", 0, 5) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want BreakClass
	}{
		{' ', ClassSpace},
		{'\n', ClassSpace},
		{'\r', ClassSpace},
		{'\t', ClassOther},
		{'!', ClassPunct},
		{'.', ClassPunct},
		{'/', ClassOther},
		{'0', ClassOther},
		{':', ClassPunct},
		{'@', ClassPunct},
		{'A', ClassOther},
		{'[', ClassPunct},
		{'`', ClassPunct},
		{'a', ClassOther},
		{'{', ClassPunct},
		{'}', ClassPunct},
		{'~', ClassOther},
		{'。', ClassJapanesePunct},
		{'、', ClassJapanesePunct},
		{'「', ClassJapanesePunct},
		{'」', ClassJapanesePunct},
		{'・', ClassJapanesePunct},
		{'あ', ClassOther},
		{'漢', ClassOther},
		{'！', ClassOther},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			got := Classify(tt.r)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != ClassOther, got.Soft())
		})
	}
}

func TestFindBreak(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		want       int
	}{
		{"window ends on punctuation", "abc.def", 0, 3, 3},
		{"rightmost punctuation wins", "a.b.cdef", 0, 6, 3},
		{"space", "hello world", 0, 8, 5},
		{"start is not a candidate", ".bcdef", 0, 4, 4},
		{"japanese period", "あいう。えお", 0, 14, 9},
		{"japanese comma", "あい、うえお", 0, 12, 6},
		{"corner bracket", "あ「いう」え", 0, 11, 3},
		{"middle dot", "カタ・カナ", 0, 11, 6},
		{"no break falls back to hard cut", strings.Repeat("a", 20), 0, 10, 10},
		{"hard cut avoids splitting character", "abあcd", 0, 4, 2},
		{"break inside later window", "abc def ghi", 4, 10, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindBreak(tt.text, tt.start, tt.end))
		})
	}
}

func collectRanges(text string, limit int) []Range {
	var got []Range
	for r := range Ranges(text, limit) {
		got = append(got, r)
	}
	return got
}

func texts(text string, ranges []Range) []string {
	out := make([]string, len(ranges))
	for i, r := range ranges {
		out[i] = r.Slice(text)
	}
	return out
}

func TestRanges_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{"empty", "", 8, nil},
		{"shorter than limit", "abc", 8, []string{"abc"}},
		{"unbounded", "abc.def.ghi", 0, []string{"abc.def.ghi"}},
		{"rightmost period", "abc.def.ghi", 8, []string{"abc.def", ".ghi"}},
		{"hard cut", strings.Repeat("a", 20), 10, []string{strings.Repeat("a", 10), strings.Repeat("a", 10)}},
		{"straddling character", "abあcd", 4, []string{"ab", "あc", "d"}},
		{"japanese sentences", "すもも。もものうち", 20, []string{"すもも", "。もものうち"}},
		{"wide character beyond limit", "あいう", 2, []string{"あ", "い", "う"}},
		{"exactly limit", "abcd", 4, []string{"abcd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectRanges(tt.text, tt.limit)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, texts(tt.text, got))
		})
	}
}

// Mixed ASCII, kana, kanji, punctuation and four-byte runes.
var alphabet = []string{
	"a", "b", "z", "0", " ", ".", ",", "\n",
	"あ", "い", "漢", "字", "。", "、", "「", "」", "・", "ー",
	"é", "ß", "😀", "𠮷",
}

func randomText(rng *rand.Rand, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(alphabet[rng.IntN(len(alphabet))])
	}
	return b.String()
}

func TestRanges_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 200; i++ {
		text := randomText(rng, rng.IntN(120))
		require.True(t, utf8.ValidString(text))

		for limit := 4; limit <= 24; limit++ {
			ranges := collectRanges(text, limit)

			if text == "" {
				assert.Empty(t, ranges)
				continue
			}
			if len(text) < limit {
				require.Equal(t, []Range{{0, len(text)}}, ranges)
				continue
			}

			require.NotEmpty(t, ranges)
			assert.Equal(t, 0, ranges[0].Start)
			assert.Equal(t, len(text), ranges[len(ranges)-1].End)

			var joined strings.Builder
			for j, r := range ranges {
				require.Greater(t, r.Len(), 0, "empty range %v in %q", r, text)
				if j > 0 {
					require.Equal(t, ranges[j-1].End, r.Start, "gap or overlap")
				}
				if j < len(ranges)-1 {
					require.LessOrEqual(t, r.Len(), limit, "range %v over limit %d", r, limit)
					require.True(t, utf8.RuneStart(text[r.End]), "split inside a character at %d", r.End)
				}
				joined.WriteString(r.Slice(text))
			}
			require.Equal(t, text, joined.String())
		}
	}
}

func TestRanges_PrefersSoftBreaks(t *testing.T) {
	text := strings.Repeat("ことば、", 50)
	for _, r := range collectRanges(text, 64)[1:] {
		assert.True(t, strings.HasPrefix(r.Slice(text), "、"), "range %v starts with %q", r, r.Slice(text))
	}
}

func TestRanges_EarlyStop(t *testing.T) {
	n := 0
	for range Ranges(strings.Repeat("a", 100), 10) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestSplit(t *testing.T) {
	text := "abc.def.ghi"
	chunks := Split(text, 8)
	require.Len(t, chunks, 2)

	assert.Equal(t, Chunk{Range: Range{0, 7}, Index: 0, Text: "abc.def"}, chunks[0])
	assert.Equal(t, Chunk{Range: Range{7, 11}, Index: 1, Text: ".ghi"}, chunks[1])
	assert.Equal(t, "[7:11]", chunks[1].String())
	assert.Nil(t, Split("", 8))
}
