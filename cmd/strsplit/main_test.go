package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	strsplit "github.com/jamesainslie/go-strsplit"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCmd_StdinStopsAtSentinel(t *testing.T) {
	out, err := execute(t, "Hello, World\nEOS\nignored\n", "--no_tokenize")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)
}

func TestRootCmd_InputFile(t *testing.T) {
	path := writeFile(t, "in.txt", "すもももももももものうち\nEOS\n")

	out, err := execute(t, "", "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "すもも も もも も もも の うち\neos\n", out, "EOS is only a sentinel on stdin")
}

func TestRootCmd_InputNotFound(t *testing.T) {
	_, err := execute(t, "", "--input", filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, strsplit.ErrInputNotFound))
}

func TestRootCmd_Flags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		in   string
		want string
	}{
		{"base form", []string{"--use_baseform"}, "美しく走った\n", "美しい 走る た\n"},
		{"no normalize", []string{"--no_tokenize", "--no_normalize"}, "ＡＢＣ\n", "ＡＢＣ\n"},
		{"empty pre-filter", []string{"--no_tokenize", "--pre_filter", ""}, "a,b\n", "a,b\n"},
		{"token filter", []string{"--no_tokenize", "--token_filter", "[0-9]"}, "a1 22 b\n", "a b\n"},
		{"cut prolong", []string{"--no_tokenize", "--cut_prolong"}, "コンピューター\n", "コンピュータ\n"},
		{"default lexicon lemmatizes english", []string{"--no_tokenize", "--use_wordnet"}, "Studies went mice\n", "study go mouse\n"},
		{"snowball lexicon", []string{"--no_tokenize", "--use_wordnet", "--lexicon", "snowball"}, "cats running\n", "cat run\n"},
		{"unknown lexicon skips stage", []string{"--no_tokenize", "--use_wordnet", "--lexicon", "nope", "--cut_prolong"}, "コンピューター\n", "コンピューター\n"},
		{"workers", []string{"--no_tokenize", "--workers", "3"}, "A\nB\nC\nD\n", "a\nb\nc\nd\n"},
		{"chunk limit", []string{"--chunk_limit", "16"}, "すもも\n", "すもも\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.in, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRootCmd_Env(t *testing.T) {
	t.Setenv("STRSPLIT_NO_TOKENIZE", "true")

	out, err := execute(t, "ＡＢＣ\n")
	require.NoError(t, err)
	assert.Equal(t, "abc\n", out)
}

func TestRootCmd_FlagOverridesEnv(t *testing.T) {
	t.Setenv("STRSPLIT_TOKEN_FILTER", "a")

	out, err := execute(t, "abc\n", "--no_tokenize", "--token_filter", "b")
	require.NoError(t, err)
	assert.Equal(t, "ac\n", out)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	path := writeFile(t, "strsplit.yaml", "no_tokenize: true\npre_filter: \"\"\n")

	out, err := execute(t, "<b>X</b>\n", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "<b>x</b>\n", out)
}

func TestRootCmd_Errors(t *testing.T) {
	_, err := execute(t, "", "--log_level", "loud")
	assert.Error(t, err)

	_, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "", "--pre_filter", "(")
	assert.True(t, errors.Is(err, strsplit.ErrInvalidPattern))

	_, err = execute(t, "", "--mecab_dic", filepath.Join(t.TempDir(), "missing.zip"))
	assert.True(t, errors.Is(err, strsplit.ErrDictNotFound))

	_, err = execute(t, "", "stray")
	assert.Error(t, err)
}

func TestRootCmd_Help(t *testing.T) {
	out, err := execute(t, "", "--help")
	require.NoError(t, err)
	for _, flag := range []string{"--input", "--pre_filter", "--mecab_dic", "--use_wordnet", "--cut_prolong"} {
		assert.Contains(t, out, flag)
	}
}
