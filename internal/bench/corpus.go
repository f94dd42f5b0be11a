// Package bench measures how well the chunker places chunk boundaries on a
// corpus of documents.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Header contains metadata parsed from a document's header comments.
type Header struct {
	Source string
	Title  string
	Lang   string
}

// ParseHeader extracts metadata from leading "# Key: value" lines.
// Returns the header, remaining text after header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	bodyStart := len(text)
	var lineEnd int

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Lang:"); ok {
			h.Lang = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	return h, strings.TrimSpace(text[bodyStart:]), nil
}

// Sentence is a sentence with byte offsets into the document body.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// Common abbreviations that shouldn't end sentences.
var abbreviations = regexp.MustCompile(`(?i)\b(Mr|Mrs|Ms|Dr|Prof|Sr|Jr|vs|etc|i\.e|e\.g|U\.S|U\.K)\.$`)

// Japanese terminators end a sentence without following whitespace.
func isJapaneseTerminator(r rune) bool {
	return r == '。' || r == '！' || r == '？'
}

func isClosingQuote(r rune) bool {
	return r == '」' || r == '』' || r == '）'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n'
}

// ParseSentences splits text at ASCII and Japanese sentence-ending
// punctuation, skipping common English abbreviations.
func ParseSentences(text string) []Sentence {
	if text == "" {
		return nil
	}

	var sentences []Sentence
	start := 0

	emit := func(end int) {
		if s := strings.TrimSpace(text[start:end]); s != "" {
			sentences = append(sentences, Sentence{Text: s, Start: start, End: end})
		}
		for end < len(text) && isSpace(text[end]) {
			end++
		}
		start = end
	}

	for i := 0; i < len(text); {
		r, w := utf8.DecodeRuneInString(text[i:])
		next := i + w

		switch {
		case isJapaneseTerminator(r):
			for next < len(text) {
				q, qw := utf8.DecodeRuneInString(text[next:])
				if !isClosingQuote(q) {
					break
				}
				next += qw
			}
			emit(next)
			i = start
			continue
		case r == '.' || r == '?' || r == '!':
			if next < len(text) && !isSpace(text[next]) {
				break
			}
			if r == '.' && abbreviations.MatchString(text[start:next]) {
				break
			}
			emit(next)
			i = start
			continue
		}
		i = next
	}

	if start < len(text) {
		if remaining := strings.TrimSpace(text[start:]); remaining != "" {
			sentences = append(sentences, Sentence{Text: remaining, Start: start, End: len(text)})
		}
	}

	return sentences
}

// Document is a loaded corpus file.
type Document struct {
	ID        string // filename without extension
	Source    string
	Title     string
	Lang      string
	Text      string // body text
	Sentences []Sentence
}

// Lines returns the non-empty lines of the body.
func (d *Document) Lines() []string {
	var lines []string
	for line := range strings.SplitSeq(d.Text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// LoadDocument loads and parses a corpus file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: not valid UTF-8", path)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	base := filepath.Base(path)
	return &Document{
		ID:        strings.TrimSuffix(base, filepath.Ext(base)),
		Source:    header.Source,
		Title:     header.Title,
		Lang:      header.Lang,
		Text:      body,
		Sentences: ParseSentences(body),
	}, nil
}

// LoadCorpus loads all .txt files from a directory.
func LoadCorpus(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		doc, err := LoadDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
