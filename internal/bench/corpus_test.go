package bench

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Header
		wantBody string
		wantErr  bool
	}{
		{
			name: "valid header",
			input: `# Source: https://example.com/neko
# Title: 吾輩は猫である
# Lang: ja

吾輩は猫である。`,
			want: Header{
				Source: "https://example.com/neko",
				Title:  "吾輩は猫である",
				Lang:   "ja",
			},
			wantBody: "吾輩は猫である。",
		},
		{
			name:     "header only",
			input:    "# Source: local\n",
			want:     Header{Source: "local"},
			wantBody: "",
		},
		{
			name: "missing source",
			input: `# Title: My Text

Hello.`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, body, err := ParseHeader(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHeader() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseHeader() header = %+v, want %+v", got, tt.want)
			}
			if body != tt.wantBody {
				t.Errorf("ParseHeader() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Sentence
	}{
		{
			name:  "simple sentences",
			input: "Hello world. How are you?",
			want: []Sentence{
				{Text: "Hello world.", Start: 0, End: 12},
				{Text: "How are you?", Start: 13, End: 25},
			},
		},
		{
			name:  "abbreviation Mr.",
			input: "Mr. Smith went home. He was tired.",
			want: []Sentence{
				{Text: "Mr. Smith went home.", Start: 0, End: 20},
				{Text: "He was tired.", Start: 21, End: 34},
			},
		},
		{
			name:  "japanese",
			input: "吾輩は猫である。名前はまだ無い。",
			want: []Sentence{
				{Text: "吾輩は猫である。", Start: 0, End: 24},
				{Text: "名前はまだ無い。", Start: 24, End: 48},
			},
		},
		{
			name:  "closing quote stays with sentence",
			input: "「こんにちは。」と言った。",
			want: []Sentence{
				{Text: "「こんにちは。」", Start: 0, End: 24},
				{Text: "と言った。", Start: 24, End: 39},
			},
		},
		{
			name:  "no terminator",
			input: "すもも",
			want: []Sentence{
				{Text: "すもも", Start: 0, End: 9},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSentences(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("ParseSentences() got %d sentences, want %d", len(got), len(tt.want))
				for i, s := range got {
					t.Logf("  got[%d]: %+v", i, s)
				}
				return
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sentence[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}

	if got := ParseSentences(""); got != nil {
		t.Errorf("ParseSentences(\"\") = %v, want nil", got)
	}
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "neko.txt")
	content := `# Source: https://example.com
# Title: Neko

吾輩は猫である。名前はまだ無い。

どこで生れたかとんと見当がつかぬ。`

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}

	if doc.ID != "neko" {
		t.Errorf("ID = %q, want %q", doc.ID, "neko")
	}
	if doc.Title != "Neko" {
		t.Errorf("Title = %q, want %q", doc.Title, "Neko")
	}
	if len(doc.Sentences) != 3 {
		t.Errorf("got %d sentences, want 3", len(doc.Sentences))
	}
	if lines := doc.Lines(); len(lines) != 2 {
		t.Errorf("got %d lines, want 2: %q", len(lines), lines)
	}
}

func TestLoadDocument_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("# Source: x\n\n\xff\xfe"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDocument(path); err == nil {
		t.Error("expected error for invalid UTF-8")
	}
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"a.txt", "b.txt"} {
		content := "# Source: https://example.com\n\nすもも。"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Readme"), 0644); err != nil {
		t.Fatal(err)
	}

	docs, err := LoadCorpus(dir)
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("got %d documents, want 2", len(docs))
	}

	if _, err := LoadCorpus(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}
